package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/orders"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/status"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/store"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/pkg/view"
)

// orderBook is what both order channels of a store offer staff.
type orderBook interface {
	FetchAll(ctx context.Context) ([]orders.Order, error)
	FetchByID(ctx context.Context, id int64) (orders.Order, error)
	Select(ctx context.Context, id int64, field, to string) (store.StatusEdit, error)
	Pending() (store.StatusEdit, bool)
	CancelEdit()
	ConfirmEdit(ctx context.Context) (orders.Order, error)
	UpdateStatus(ctx context.Context, id int64, to status.OrderStatus) (orders.Order, error)
	UpdatePaymentStatus(ctx context.Context, id int64, to status.PaymentStatus) (orders.Order, error)
	Snapshot() store.Snapshot[[]orders.Order]
}

type EventLister interface {
	ListByOrder(ctx context.Context, orderID int64, ch orders.Channel) ([]orders.OrderEvent, error)
}

type StaffOrdersHandler struct {
	EventLog EventLister // nil when the audit database is not configured
	Invoices Invoices
}

func NewStaffOrdersHandler(events EventLister, iv Invoices) *StaffOrdersHandler {
	return &StaffOrdersHandler{EventLog: events, Invoices: iv}
}

type statusRequest struct {
	Status  string `json:"status" binding:"required"`
	Confirm bool   `json:"confirm"`
}

// channel reads ?channel=IN_STORE; anything else is the online book.
func channel(c *gin.Context) orders.Channel {
	if strings.EqualFold(c.Query("channel"), string(orders.ChannelInStore)) {
		return orders.ChannelInStore
	}
	return orders.ChannelOnline
}

func book(c *gin.Context) (orderBook, orders.Channel) {
	st := mustStore(c)
	if ch := channel(c); ch == orders.ChannelInStore {
		return st.EmployeeOrders, ch
	}
	return st.Orders, orders.ChannelOnline
}

func (h *StaffOrdersHandler) List(c *gin.Context) {
	b, ch := book(c)
	list, err := b.FetchAll(c.Request.Context())
	if err != nil {
		failOrStale(c, err, b.Snapshot(), func(list []orders.Order) gin.H {
			return gin.H{"channel": ch, "orders": view.NewOrderList(list)}
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"channel": ch, "orders": view.NewOrderList(list)})
}

func (h *StaffOrdersHandler) Detail(c *gin.Context) {
	o, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": view.NewOrderDetail(o, true)})
}

// Status handles PATCH /api/staff/orders/:id/status.
func (h *StaffOrdersHandler) Status(c *gin.Context) {
	h.change(c, orders.FieldOrderStatus)
}

// PaymentStatus handles PATCH /api/staff/orders/:id/payment-status.
func (h *StaffOrdersHandler) PaymentStatus(c *gin.Context) {
	h.change(c, orders.FieldPaymentStatus)
}

// change stages the edit in the session draft. With confirm=true the
// request's own order and target are dispatched, not the draft.
func (h *StaffOrdersHandler) change(c *gin.Context, field string) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in statusRequest
	if !bindJSON(c, &in) {
		return
	}
	to := strings.ToUpper(strings.TrimSpace(in.Status))

	b, _ := book(c)
	if !in.Confirm {
		edit, err := b.Select(c.Request.Context(), id, field, to)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"pending": edit, "options": options(field, edit.From)})
		return
	}

	var (
		o   orders.Order
		err error
	)
	if field == orders.FieldPaymentStatus {
		o, err = b.UpdatePaymentStatus(c.Request.Context(), id, status.PaymentStatus(to))
	} else {
		o, err = b.UpdateStatus(c.Request.Context(), id, status.OrderStatus(to))
	}
	if pending, ok := b.Pending(); ok && pending.OrderID == id && pending.Field == field {
		b.CancelEdit()
	}
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order": view.NewOrderDetail(o, true),
		"toast": view.Success("Order " + o.OrderNumber + " updated."),
	})
}

func (h *StaffOrdersHandler) Pending(c *gin.Context) {
	b, _ := book(c)
	edit, ok := b.Pending()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"pending": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": edit, "options": options(edit.Field, edit.From)})
}

// ConfirmPending dispatches the edit staged by an earlier PATCH without
// confirm.
func (h *StaffOrdersHandler) ConfirmPending(c *gin.Context) {
	b, _ := book(c)
	o, err := b.ConfirmEdit(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order": view.NewOrderDetail(o, true),
		"toast": view.Success("Order " + o.OrderNumber + " updated."),
	})
}

func (h *StaffOrdersHandler) CancelPending(c *gin.Context) {
	b, _ := book(c)
	b.CancelEdit()
	c.Status(http.StatusNoContent)
}

func (h *StaffOrdersHandler) Events(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if h.EventLog == nil {
		fail(c, orders.ErrAuditDisabled)
		return
	}
	evs, err := h.EventLog.ListByOrder(c.Request.Context(), id, channel(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": view.NewOrderEvents(evs)})
}

func (h *StaffOrdersHandler) Invoice(c *gin.Context) {
	if o, ok := h.load(c); ok {
		h.Invoices.download(c, o, nil)
	}
}

func (h *StaffOrdersHandler) ExportInvoice(c *gin.Context) {
	if o, ok := h.load(c); ok {
		h.Invoices.export(c, o, nil)
	}
}

func (h *StaffOrdersHandler) EmailInvoice(c *gin.Context) {
	if o, ok := h.load(c); ok {
		h.Invoices.email(c, o, nil)
	}
}

func (h *StaffOrdersHandler) load(c *gin.Context) (orders.Order, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return orders.Order{}, false
	}
	b, _ := book(c)
	o, err := b.FetchByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return orders.Order{}, false
	}
	return o, true
}

func options(field, from string) []view.Badge {
	var out []view.Badge
	if field == orders.FieldPaymentStatus {
		for _, s := range status.PaymentOptions(status.PaymentStatus(from)) {
			out = append(out, view.PaymentBadge(s))
		}
		return out
	}
	for _, s := range status.OrderOptions(status.OrderStatus(from)) {
		out = append(out, view.OrderBadge(s))
	}
	return out
}
