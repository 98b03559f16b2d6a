package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/status"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/shared/apperr"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/pkg/view"
)

// InStoreHandler drives the employee's in-store order draft.
type InStoreHandler struct{}

func NewInStoreHandler() *InStoreHandler { return &InStoreHandler{} }

type customerRequest struct {
	AccountNumber string `json:"accountNumber" binding:"required,max=32"`
}

type draftBookRequest struct {
	BookID   int64 `json:"bookId" binding:"required,gt=0"`
	Quantity int   `json:"quantity" binding:"required,gt=0,lte=99"`
}

type paymentRequest struct {
	Status string `json:"status" binding:"required"`
}

type draftResponse struct {
	Draft view.InStoreDraft `json:"draft"`
	Toast *view.Toast       `json:"toast,omitempty"`
}

func (h *InStoreHandler) Draft(c *gin.Context) {
	c.JSON(http.StatusOK, draftResponse{Draft: view.NewInStoreDraft(mustStore(c).EmployeeOrders.Draft())})
}

func (h *InStoreHandler) SelectCustomer(c *gin.Context) {
	var in customerRequest
	if !bindJSON(c, &in) {
		return
	}
	eo := mustStore(c).EmployeeOrders
	u, err := eo.SelectCustomer(c.Request.Context(), in.AccountNumber)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, draftResponse{Draft: view.NewInStoreDraft(eo.Draft()), Toast: view.Info("Customer " + u.Name + " selected.")})
}

func (h *InStoreHandler) AddBook(c *gin.Context) {
	var in draftBookRequest
	if !bindJSON(c, &in) {
		return
	}
	d, err := mustStore(c).EmployeeOrders.AddBook(c.Request.Context(), in.BookID, in.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, draftResponse{Draft: view.NewInStoreDraft(d)})
}

func (h *InStoreHandler) RemoveBook(c *gin.Context) {
	id, ok := paramID(c, "bookId")
	if !ok {
		return
	}
	d := mustStore(c).EmployeeOrders.RemoveBook(id)
	c.JSON(http.StatusOK, draftResponse{Draft: view.NewInStoreDraft(d)})
}

func (h *InStoreHandler) SetPaymentStatus(c *gin.Context) {
	var in paymentRequest
	if !bindJSON(c, &in) {
		return
	}
	p := status.PaymentStatus(strings.ToUpper(strings.TrimSpace(in.Status)))
	if !p.Valid() {
		fail(c, apperr.InvalidErr("Unknown payment status.", map[string]string{"status": "Invalid value."}))
		return
	}
	eo := mustStore(c).EmployeeOrders
	if err := eo.SetPaymentStatus(p); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, draftResponse{Draft: view.NewInStoreDraft(eo.Draft())})
}

func (h *InStoreHandler) Reset(c *gin.Context) {
	eo := mustStore(c).EmployeeOrders
	eo.Reset()
	c.JSON(http.StatusOK, draftResponse{Draft: view.NewInStoreDraft(eo.Draft())})
}

// Confirm submits the draft as an in-store order.
func (h *InStoreHandler) Confirm(c *gin.Context) {
	o, err := mustStore(c).EmployeeOrders.Confirm(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"order": view.NewOrderDetail(o, true),
		"toast": view.Success("In-store order " + o.OrderNumber + " created."),
	})
}
