package store

import (
	"context"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/apiclient"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/books"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/cart"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/orders"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/status"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
)

type AuthAPI interface {
	Login(ctx context.Context, in users.Credentials) (apiclient.AuthResult, error)
	Register(ctx context.Context, in users.Registration) (apiclient.AuthResult, error)
	Me(ctx context.Context, token string) (users.User, error)
}

type CartAPI interface {
	Cart(ctx context.Context, token string) (cart.Cart, error)
	AddToCart(ctx context.Context, token string, in cart.AddInput) (cart.Cart, error)
	UpdateCartItem(ctx context.Context, token string, itemID int64, quantity int) (cart.Cart, error)
	RemoveCartItem(ctx context.Context, token string, itemID int64) error
	ClearCart(ctx context.Context, token string) error
	Checkout(ctx context.Context, token string, in orders.CheckoutInput) (orders.Order, error)
}

type OrdersAPI interface {
	MyOrders(ctx context.Context, token string) ([]orders.Order, error)
	Orders(ctx context.Context, token string, ch orders.Channel) ([]orders.Order, error)
	Order(ctx context.Context, token string, ch orders.Channel, id int64) (orders.Order, error)
	CreateInStoreOrder(ctx context.Context, token string, in orders.InStoreInput) (orders.Order, error)
	UpdateOrderStatus(ctx context.Context, token string, ch orders.Channel, id int64, to status.OrderStatus) (orders.Order, error)
	UpdatePaymentStatus(ctx context.Context, token string, ch orders.Channel, id int64, to status.PaymentStatus) (orders.Order, error)
}

type UsersAPI interface {
	Users(ctx context.Context, token string) ([]users.User, error)
	Customers(ctx context.Context, token string) ([]users.User, error)
	User(ctx context.Context, token string, id int64) (users.User, error)
	UserByAccount(ctx context.Context, token, accountNumber string) (users.User, error)
	CreateUser(ctx context.Context, token string, in users.Input) (users.User, error)
	UpdateUser(ctx context.Context, token string, id int64, in users.Input) (users.User, error)
	DeleteUser(ctx context.Context, token string, id int64) error
}

type CatalogAPI interface {
	Books(ctx context.Context, token string) ([]books.Book, error)
	Book(ctx context.Context, token string, id int64) (books.Book, error)
	CreateBook(ctx context.Context, token string, in books.Input) (books.Book, error)
	UpdateBook(ctx context.Context, token string, id int64, in books.Input) (books.Book, error)
	DeleteBook(ctx context.Context, token string, id int64) error

	Categories(ctx context.Context, token string) ([]books.Category, error)
	Category(ctx context.Context, token string, id int64) (books.Category, error)
	CreateCategory(ctx context.Context, token string, in books.CategoryInput) (books.Category, error)
	UpdateCategory(ctx context.Context, token string, id int64, in books.CategoryInput) (books.Category, error)
	DeleteCategory(ctx context.Context, token string, id int64) error

	Publishers(ctx context.Context, token string) ([]books.Publisher, error)
	Publisher(ctx context.Context, token string, id int64) (books.Publisher, error)
	CreatePublisher(ctx context.Context, token string, in books.PublisherInput) (books.Publisher, error)
	UpdatePublisher(ctx context.Context, token string, id int64, in books.PublisherInput) (books.Publisher, error)
	DeletePublisher(ctx context.Context, token string, id int64) error
}

// Backend is everything the slices need from the REST backend;
// *apiclient.Client satisfies it.
type Backend interface {
	AuthAPI
	CartAPI
	OrdersAPI
	UsersAPI
	CatalogAPI
}

var _ Backend = (*apiclient.Client)(nil)

// Auditor records status changes after the backend accepted them.
type Auditor interface {
	Record(ctx context.Context, in orders.RecordInput) (orders.OrderEvent, error)
}
