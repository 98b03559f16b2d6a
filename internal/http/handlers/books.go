package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/books"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/pkg/view"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

type catalogQuery struct {
	Q string `form:"q"`
	books.Filters
}

// List handles GET /api/books. Books, categories and publishers are fetched
// again on every page load, in parallel; the option lists need all three.
func (h *CatalogHandler) List(c *gin.Context) {
	var q catalogQuery
	_ = c.ShouldBindQuery(&q)

	st := mustStore(c)
	var (
		all  []books.Book
		cats []books.Category
		pubs []books.Publisher
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) { all, err = st.Books.Fetch(ctx); return })
	g.Go(func() (err error) { cats, err = st.Categories.Fetch(ctx); return })
	g.Go(func() (err error) { pubs, err = st.Publishers.Fetch(ctx); return })
	if err := g.Wait(); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, view.NewCatalog(all, cats, pubs, strings.TrimSpace(q.Q), q.Filters))
}

func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	b, err := mustStore(c).Books.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view.NewBookDetail(b))
}

func (h *CatalogHandler) Categories(c *gin.Context) {
	st := mustStore(c)
	list, err := st.Categories.Fetch(c.Request.Context())
	if err != nil {
		failOrStale(c, err, st.Categories.Snapshot(), func(list []books.Category) gin.H {
			return gin.H{"categories": nonNil(list)}
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": nonNil(list)})
}

func (h *CatalogHandler) Publishers(c *gin.Context) {
	st := mustStore(c)
	list, err := st.Publishers.Fetch(c.Request.Context())
	if err != nil {
		failOrStale(c, err, st.Publishers.Snapshot(), func(list []books.Publisher) gin.H {
			return gin.H{"publishers": nonNil(list)}
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"publishers": nonNil(list)})
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
