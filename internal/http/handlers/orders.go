package handlers

import (
	"context"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/http/middleware"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/invoice"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/orders"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/shared/apperr"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/pkg/view"
)

type InvoiceExporter interface {
	Export(ctx context.Context, o orders.Order, customer *users.User) (invoice.Exported, error)
}

type InvoiceSender interface {
	Send(ctx context.Context, o orders.Order, customer *users.User) (string, error)
}

// Invoices is shared by the customer and staff order handlers. Both fields
// are optional.
type Invoices struct {
	Exporter InvoiceExporter
	Sender   InvoiceSender
}

// download streams the invoice as a file attachment.
func (iv Invoices) download(c *gin.Context, o orders.Order, customer *users.User) {
	c.Header("Content-Disposition", attachment(invoice.FileName(o)))
	c.Data(http.StatusOK, invoice.ContentType, []byte(invoice.Render(o, customer)))
}

// attachment builds a Content-Disposition value; the order number comes from
// the backend and is quoted or encoded as needed.
func attachment(name string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": name}); v != "" {
		return v
	}
	return "attachment"
}

func (iv Invoices) export(c *gin.Context, o orders.Order, customer *users.User) {
	if iv.Exporter == nil {
		fail(c, apperr.NotFoundErr("Invoice storage is not enabled."))
		return
	}
	res, err := iv.Exporter.Export(c.Request.Context(), o, customer)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"invoice": res, "toast": view.Success("Invoice saved.")})
}

func (iv Invoices) email(c *gin.Context, o orders.Order, customer *users.User) {
	if iv.Sender == nil {
		fail(c, apperr.NotFoundErr("Invoice e-mail is not enabled."))
		return
	}
	to, err := iv.Sender.Send(c.Request.Context(), o, customer)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sentTo": to, "toast": view.Success("Invoice sent to " + to + ".")})
}

// OrdersHandler serves the signed-in customer's own orders.
type OrdersHandler struct {
	Invoices Invoices
}

func NewOrdersHandler(iv Invoices) *OrdersHandler { return &OrdersHandler{Invoices: iv} }

func (h *OrdersHandler) List(c *gin.Context) {
	st := mustStore(c)
	list, err := st.Orders.FetchMine(c.Request.Context())
	if err != nil {
		failOrStale(c, err, st.Orders.Mine(), func(list []orders.Order) gin.H {
			return gin.H{"orders": view.NewOrderList(list)}
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": view.NewOrderList(list)})
}

func (h *OrdersHandler) Detail(c *gin.Context) {
	o, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": view.NewOrderDetail(o, false)})
}

func (h *OrdersHandler) Invoice(c *gin.Context) {
	if o, ok := h.load(c); ok {
		h.Invoices.download(c, o, h.customer(c))
	}
}

func (h *OrdersHandler) ExportInvoice(c *gin.Context) {
	if o, ok := h.load(c); ok {
		h.Invoices.export(c, o, h.customer(c))
	}
}

func (h *OrdersHandler) EmailInvoice(c *gin.Context) {
	if o, ok := h.load(c); ok {
		h.Invoices.email(c, o, h.customer(c))
	}
}

func (h *OrdersHandler) load(c *gin.Context) (orders.Order, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return orders.Order{}, false
	}
	o, err := mustStore(c).Orders.FetchByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return orders.Order{}, false
	}
	return o, true
}

// customer is the signed-in user; an online order always belongs to them.
func (h *OrdersHandler) customer(c *gin.Context) *users.User {
	if u, ok := middleware.CurrentUser(c); ok && u.Role == users.RoleCustomer {
		return &u
	}
	return nil
}
