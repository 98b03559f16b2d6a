package apiclient

import (
	"context"
	"net/http"
	"strconv"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/books"
)

func idPath(base string, id int64) string { return base + "/" + strconv.FormatInt(id, 10) }

// Books

func (c *Client) Books(ctx context.Context, token string) ([]books.Book, error) {
	body, err := c.get(ctx, token, "/book")
	if err != nil {
		return nil, err
	}
	list, err := decodeEnvelope[[]books.Book](body, "books")
	if err != nil {
		return nil, err
	}
	return books.NormalizeAll(list), nil
}

func (c *Client) Book(ctx context.Context, token string, id int64) (books.Book, error) {
	body, err := c.get(ctx, token, idPath("/book", id))
	if err != nil {
		return books.Book{}, err
	}
	return c.decodeBook(body)
}

func (c *Client) CreateBook(ctx context.Context, token string, in books.Input) (books.Book, error) {
	body, err := c.do(ctx, call{method: http.MethodPost, path: "/book", token: token, body: in})
	if err != nil {
		return books.Book{}, err
	}
	return c.decodeBook(body)
}

func (c *Client) UpdateBook(ctx context.Context, token string, id int64, in books.Input) (books.Book, error) {
	body, err := c.do(ctx, call{method: http.MethodPut, path: idPath("/book", id), token: token, body: in})
	if err != nil {
		return books.Book{}, err
	}
	return c.decodeBook(body)
}

func (c *Client) DeleteBook(ctx context.Context, token string, id int64) error {
	return c.delete(ctx, token, idPath("/book", id))
}

func (c *Client) decodeBook(body []byte) (books.Book, error) {
	b, err := decodeEnvelope[books.Book](body, "book")
	if err != nil {
		return books.Book{}, err
	}
	return books.Normalize(b), nil
}

// Categories

func (c *Client) Categories(ctx context.Context, token string) ([]books.Category, error) {
	body, err := c.get(ctx, token, "/category")
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[[]books.Category](body, "categories")
}

func (c *Client) Category(ctx context.Context, token string, id int64) (books.Category, error) {
	body, err := c.get(ctx, token, idPath("/category", id))
	if err != nil {
		return books.Category{}, err
	}
	return decodeEnvelope[books.Category](body, "category")
}

func (c *Client) CreateCategory(ctx context.Context, token string, in books.CategoryInput) (books.Category, error) {
	body, err := c.do(ctx, call{method: http.MethodPost, path: "/category", token: token, body: in})
	if err != nil {
		return books.Category{}, err
	}
	return decodeEnvelope[books.Category](body, "category")
}

func (c *Client) UpdateCategory(ctx context.Context, token string, id int64, in books.CategoryInput) (books.Category, error) {
	body, err := c.do(ctx, call{method: http.MethodPut, path: idPath("/category", id), token: token, body: in})
	if err != nil {
		return books.Category{}, err
	}
	return decodeEnvelope[books.Category](body, "category")
}

func (c *Client) DeleteCategory(ctx context.Context, token string, id int64) error {
	return c.delete(ctx, token, idPath("/category", id))
}

// Publishers

func (c *Client) Publishers(ctx context.Context, token string) ([]books.Publisher, error) {
	body, err := c.get(ctx, token, "/publisher")
	if err != nil {
		return nil, err
	}
	return decodeEnvelope[[]books.Publisher](body, "publishers")
}

func (c *Client) Publisher(ctx context.Context, token string, id int64) (books.Publisher, error) {
	body, err := c.get(ctx, token, idPath("/publisher", id))
	if err != nil {
		return books.Publisher{}, err
	}
	return decodeEnvelope[books.Publisher](body, "publisher")
}

func (c *Client) CreatePublisher(ctx context.Context, token string, in books.PublisherInput) (books.Publisher, error) {
	body, err := c.do(ctx, call{method: http.MethodPost, path: "/publisher", token: token, body: in})
	if err != nil {
		return books.Publisher{}, err
	}
	return decodeEnvelope[books.Publisher](body, "publisher")
}

func (c *Client) UpdatePublisher(ctx context.Context, token string, id int64, in books.PublisherInput) (books.Publisher, error) {
	body, err := c.do(ctx, call{method: http.MethodPut, path: idPath("/publisher", id), token: token, body: in})
	if err != nil {
		return books.Publisher{}, err
	}
	return decodeEnvelope[books.Publisher](body, "publisher")
}

func (c *Client) DeletePublisher(ctx context.Context, token string, id int64) error {
	return c.delete(ctx, token, idPath("/publisher", id))
}
