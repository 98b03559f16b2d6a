package store

import (
	"context"
	"strconv"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/books"
)

// Collection is a plain CRUD slice. Reads work without a token; writes need
// one.
type Collection[T any, In any] struct {
	sess *session
	name string
	id   func(T) int64

	list    Resource[[]T]
	current Resource[T]
	mut     Serializer

	fetch  func(ctx context.Context, token string) ([]T, error)
	get    func(ctx context.Context, token string, id int64) (T, error)
	create func(ctx context.Context, token string, in In) (T, error)
	update func(ctx context.Context, token string, id int64, in In) (T, error)
	remove func(ctx context.Context, token string, id int64) error
}

func newBooks(sess *session) *Collection[books.Book, books.Input] {
	api := func() CatalogAPI { return sess.deps.API }
	return &Collection[books.Book, books.Input]{
		sess: sess,
		name: "book",
		id:   func(b books.Book) int64 { return b.ID },
		fetch: func(ctx context.Context, tok string) ([]books.Book, error) {
			return api().Books(ctx, tok)
		},
		get: func(ctx context.Context, tok string, id int64) (books.Book, error) {
			return api().Book(ctx, tok, id)
		},
		create: func(ctx context.Context, tok string, in books.Input) (books.Book, error) {
			return api().CreateBook(ctx, tok, in)
		},
		update: func(ctx context.Context, tok string, id int64, in books.Input) (books.Book, error) {
			return api().UpdateBook(ctx, tok, id, in)
		},
		remove: func(ctx context.Context, tok string, id int64) error {
			return api().DeleteBook(ctx, tok, id)
		},
	}
}

func newCategories(sess *session) *Collection[books.Category, books.CategoryInput] {
	api := func() CatalogAPI { return sess.deps.API }
	return &Collection[books.Category, books.CategoryInput]{
		sess: sess,
		name: "category",
		id:   func(c books.Category) int64 { return c.ID },
		fetch: func(ctx context.Context, tok string) ([]books.Category, error) {
			return api().Categories(ctx, tok)
		},
		get: func(ctx context.Context, tok string, id int64) (books.Category, error) {
			return api().Category(ctx, tok, id)
		},
		create: func(ctx context.Context, tok string, in books.CategoryInput) (books.Category, error) {
			return api().CreateCategory(ctx, tok, in)
		},
		update: func(ctx context.Context, tok string, id int64, in books.CategoryInput) (books.Category, error) {
			return api().UpdateCategory(ctx, tok, id, in)
		},
		remove: func(ctx context.Context, tok string, id int64) error {
			return api().DeleteCategory(ctx, tok, id)
		},
	}
}

func newPublishers(sess *session) *Collection[books.Publisher, books.PublisherInput] {
	api := func() CatalogAPI { return sess.deps.API }
	return &Collection[books.Publisher, books.PublisherInput]{
		sess: sess,
		name: "publisher",
		id:   func(p books.Publisher) int64 { return p.ID },
		fetch: func(ctx context.Context, tok string) ([]books.Publisher, error) {
			return api().Publishers(ctx, tok)
		},
		get: func(ctx context.Context, tok string, id int64) (books.Publisher, error) {
			return api().Publisher(ctx, tok, id)
		},
		create: func(ctx context.Context, tok string, in books.PublisherInput) (books.Publisher, error) {
			return api().CreatePublisher(ctx, tok, in)
		},
		update: func(ctx context.Context, tok string, id int64, in books.PublisherInput) (books.Publisher, error) {
			return api().UpdatePublisher(ctx, tok, id, in)
		},
		remove: func(ctx context.Context, tok string, id int64) error {
			return api().DeletePublisher(ctx, tok, id)
		},
	}
}

func (c *Collection[T, In]) Snapshot() Snapshot[[]T] { return c.list.Snapshot() }

// Fetch always asks the backend; concurrent calls share one request.
func (c *Collection[T, In]) Fetch(ctx context.Context) ([]T, error) {
	tok := c.sess.Token()
	return c.list.Load(ctx, "all", func(ctx context.Context) ([]T, error) {
		list, err := c.fetch(ctx, tok)
		return list, c.sess.check(err)
	})
}

func (c *Collection[T, In]) Get(ctx context.Context, id int64) (T, error) {
	tok := c.sess.Token()
	return c.current.Load(ctx, c.key(id), func(ctx context.Context) (T, error) {
		v, err := c.get(ctx, tok, id)
		return v, c.sess.check(err)
	})
}

func (c *Collection[T, In]) Create(ctx context.Context, in In) (T, error) {
	var zero T
	tok, err := c.sess.authed()
	if err != nil {
		return zero, err
	}
	v, err := c.create(ctx, tok, in)
	if err != nil {
		return zero, c.sess.check(err)
	}
	c.list.Update(func(list []T) []T { return append(list, v) })
	return v, nil
}

func (c *Collection[T, In]) Update(ctx context.Context, id int64, in In) (T, error) {
	var out T
	tok, err := c.sess.authed()
	if err != nil {
		return out, err
	}
	err = c.mut.Do(ctx, c.key(id), func(ctx context.Context) error {
		v, err := c.update(ctx, tok, id, in)
		if err != nil {
			return c.sess.check(err)
		}
		out = v
		if c.id(v) == 0 {
			// message-only answer; reload so the list is not left stale
			c.list.Reset()
			return nil
		}
		c.list.Update(func(list []T) []T {
			next := make([]T, len(list))
			copy(next, list)
			for i := range next {
				if c.id(next[i]) == id {
					next[i] = v
				}
			}
			return next
		})
		return nil
	})
	return out, err
}

func (c *Collection[T, In]) Delete(ctx context.Context, id int64) error {
	tok, err := c.sess.authed()
	if err != nil {
		return err
	}
	return c.mut.Do(ctx, c.key(id), func(ctx context.Context) error {
		if err := c.remove(ctx, tok, id); err != nil {
			return c.sess.check(err)
		}
		c.list.Update(func(list []T) []T {
			next := make([]T, 0, len(list))
			for _, v := range list {
				if c.id(v) != id {
					next = append(next, v)
				}
			}
			return next
		})
		return nil
	})
}

func (c *Collection[T, In]) key(id int64) string { return c.name + ":" + strconv.FormatInt(id, 10) }
