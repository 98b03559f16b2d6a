package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/store"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/pkg/view"
)

// CollectionHandler is the manager CRUD for one catalog collection (books,
// categories or publishers).
type CollectionHandler[T any, In any] struct {
	Key    string // JSON field of one item
	Plural string // JSON field of the list
	Noun   string
	Pick   func(*store.Store) *store.Collection[T, In]
}

func (h *CollectionHandler[T, In]) List(c *gin.Context) {
	coll := h.Pick(mustStore(c))
	list, err := coll.Fetch(c.Request.Context())
	if err != nil {
		failOrStale(c, err, coll.Snapshot(), func(list []T) gin.H {
			return gin.H{h.Plural: nonNil(list)}
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{h.Plural: nonNil(list)})
}

func (h *CollectionHandler[T, In]) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	v, err := h.Pick(mustStore(c)).Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{h.Key: v})
}

func (h *CollectionHandler[T, In]) Create(c *gin.Context) {
	var in In
	if !bindJSON(c, &in) {
		return
	}
	v, err := h.Pick(mustStore(c)).Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{h.Key: v, "toast": view.Success(h.Noun + " created.")})
}

func (h *CollectionHandler[T, In]) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in In
	if !bindJSON(c, &in) {
		return
	}
	v, err := h.Pick(mustStore(c)).Update(c.Request.Context(), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{h.Key: v, "toast": view.Success(h.Noun + " updated.")})
}

func (h *CollectionHandler[T, In]) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.Pick(mustStore(c)).Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"toast": view.Info(h.Noun + " deleted.")})
}

// Register mounts the five CRUD routes under g.
func (h *CollectionHandler[T, In]) Register(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
