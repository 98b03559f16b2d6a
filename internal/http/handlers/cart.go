package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/cart"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/orders"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/pkg/view"
)

type CartHandler struct{}

func NewCartHandler() *CartHandler { return &CartHandler{} }

type cartResponse struct {
	Cart  view.Cart   `json:"cart"`
	Toast *view.Toast `json:"toast,omitempty"`
}

type checkoutRequest struct {
	Address string `json:"address" binding:"required,max=255"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
	Notes   string `json:"notes" binding:"omitempty,max=500"`
}

func (h *CartHandler) Get(c *gin.Context) {
	st := mustStore(c)
	ct, err := st.Cart.Fetch(c.Request.Context())
	if err != nil {
		failOrStale(c, err, st.Cart.Snapshot(), func(ct cart.Cart) gin.H {
			return gin.H{"cart": view.NewCart(ct)}
		})
		return
	}
	c.JSON(http.StatusOK, cartResponse{Cart: view.NewCart(ct)})
}

// Add handles POST /api/cart/items.
func (h *CartHandler) Add(c *gin.Context) {
	var in cart.AddInput
	if !bindJSON(c, &in) {
		return
	}
	ct, err := mustStore(c).Cart.Add(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse{Cart: view.NewCart(ct), Toast: view.Success("Added to cart.")})
}

// Update handles PUT /api/cart/items/:id.
func (h *CartHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in cart.QuantityInput
	if !bindJSON(c, &in) {
		return
	}
	ct, err := mustStore(c).Cart.UpdateQuantity(c.Request.Context(), id, in.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse{Cart: view.NewCart(ct)})
}

func (h *CartHandler) Remove(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ct, err := mustStore(c).Cart.Remove(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse{Cart: view.NewCart(ct), Toast: view.Info("Removed from cart.")})
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := mustStore(c).Cart.Clear(c.Request.Context()); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cartResponse{Cart: view.NewCart(cart.Cart{}), Toast: view.Info("Cart cleared.")})
}

// Checkout handles POST /api/cart/checkout and answers with the new order.
func (h *CartHandler) Checkout(c *gin.Context) {
	var in checkoutRequest
	if !bindJSON(c, &in) {
		return
	}
	o, err := mustStore(c).Cart.Checkout(c.Request.Context(), orders.CheckoutInput{
		Address: in.Address,
		Phone:   in.Phone,
		Notes:   in.Notes,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"order": view.NewOrderDetail(o, false),
		"toast": view.Success("Order " + o.OrderNumber + " placed."),
	})
}
