package http

import (
	"log/slog"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/http/handlers"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/http/middleware"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/http/sessioncookie"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/books"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/store"
)

type RouterDeps struct {
	Log      *slog.Logger
	Registry *store.Registry
	Cookie   *sessioncookie.Codec
	Invoices handlers.Invoices
	Events   handlers.EventLister // optional
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Session(d.Registry, d.Cookie),
		middleware.Logger(d.Log),
		middleware.ErrorHandler(d.Log),
		middleware.Recovery(d.Log),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(stdhttp.StatusOK, gin.H{"ok": true, "sessions": d.Registry.Len()})
	})

	authH := handlers.NewAuthHandler()
	catalogH := handlers.NewCatalogHandler()
	cartH := handlers.NewCartHandler()
	ordersH := handlers.NewOrdersHandler(d.Invoices)
	staffH := handlers.NewStaffOrdersHandler(d.Events, d.Invoices)
	instoreH := handlers.NewInStoreHandler()
	usersH := handlers.NewUsersHandler()

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/register", authH.Register)
	auth.POST("/logout", authH.Logout)
	auth.GET("/me", authH.Me)

	api.GET("/books", catalogH.List)
	api.GET("/books/:id", catalogH.Get)
	api.GET("/categories", catalogH.Categories)
	api.GET("/publishers", catalogH.Publishers)

	private := api.Group("", middleware.RequireAuth())

	cartG := private.Group("/cart")
	cartG.GET("", cartH.Get)
	cartG.DELETE("", cartH.Clear)
	cartG.POST("/items", cartH.Add)
	cartG.PUT("/items/:id", cartH.Update)
	cartG.DELETE("/items/:id", cartH.Remove)
	cartG.POST("/checkout", cartH.Checkout)

	ordersG := private.Group("/orders")
	ordersG.GET("", ordersH.List)
	ordersG.GET("/:id", ordersH.Detail)
	ordersG.GET("/:id/invoice", ordersH.Invoice)
	ordersG.POST("/:id/invoice/export", ordersH.ExportInvoice)
	ordersG.POST("/:id/invoice/email", ordersH.EmailInvoice)

	staff := private.Group("/staff", middleware.RequireStaff())
	staff.GET("/orders", staffH.List)
	staff.GET("/orders/pending", staffH.Pending)
	staff.DELETE("/orders/pending", staffH.CancelPending)
	staff.POST("/orders/pending/confirm", staffH.ConfirmPending)
	staff.GET("/orders/:id", staffH.Detail)
	staff.PATCH("/orders/:id/status", staffH.Status)
	staff.PATCH("/orders/:id/payment-status", staffH.PaymentStatus)
	staff.GET("/orders/:id/events", staffH.Events)
	staff.GET("/orders/:id/invoice", staffH.Invoice)
	staff.POST("/orders/:id/invoice/export", staffH.ExportInvoice)
	staff.POST("/orders/:id/invoice/email", staffH.EmailInvoice)
	staff.GET("/customers", usersH.Customers)

	instore := staff.Group("/instore")
	instore.GET("", instoreH.Draft)
	instore.DELETE("", instoreH.Reset)
	instore.POST("/customer", instoreH.SelectCustomer)
	instore.POST("/books", instoreH.AddBook)
	instore.DELETE("/books/:bookId", instoreH.RemoveBook)
	instore.PUT("/payment-status", instoreH.SetPaymentStatus)
	instore.POST("/confirm", instoreH.Confirm)

	manage := private.Group("/manage", middleware.RequireManager())
	usersG := manage.Group("/users")
	usersG.GET("", usersH.List)
	usersG.POST("", usersH.Create)
	usersG.GET("/:id", usersH.Get)
	usersG.PUT("/:id", usersH.Update)
	usersG.DELETE("/:id", usersH.Delete)

	(&handlers.CollectionHandler[books.Book, books.Input]{
		Key: "book", Plural: "books", Noun: "Book",
		Pick: func(st *store.Store) *store.Collection[books.Book, books.Input] { return st.Books },
	}).Register(manage.Group("/books"))
	(&handlers.CollectionHandler[books.Category, books.CategoryInput]{
		Key: "category", Plural: "categories", Noun: "Category",
		Pick: func(st *store.Store) *store.Collection[books.Category, books.CategoryInput] { return st.Categories },
	}).Register(manage.Group("/categories"))
	(&handlers.CollectionHandler[books.Publisher, books.PublisherInput]{
		Key: "publisher", Plural: "publishers", Noun: "Publisher",
		Pick: func(st *store.Store) *store.Collection[books.Publisher, books.PublisherInput] { return st.Publishers },
	}).Register(manage.Group("/publishers"))

	return r
}
