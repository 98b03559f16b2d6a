// Package invoice renders an order as a plain-text invoice and delivers it
// as a file or an e-mail.
package invoice

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/books"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/orders"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/status"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/users"
)

const ContentType = "text/plain; charset=utf-8"

const rule = "----------------------------------------"

var tmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": money,
	"inc":   func(i int) int { return i + 1 },
}).Parse(`PAHANA EDU BOOKSHOP
INVOICE
========================================
Invoice No: {{.Number}}
Date: {{.Date}}
Channel: {{.Channel}}

Bill To:
  Name: {{.Customer.Name}}
  Account: {{.Customer.AccountNumber}}
  Email: {{.Customer.Email}}
  Phone: {{.Customer.Phone}}
  Address: {{.Address}}

Items:
` + rule + `
{{range $i, $it := .Items}}{{inc $i}}. {{$it.Name}}
   Qty: {{$it.Quantity}} x {{money $it.UnitPrice}} = {{money $it.Total}}
{{else}}(no items)
{{end}}` + rule + `
Subtotal: {{money .Subtotal}}
Discount: {{money .Discount}}
Total: {{money .Total}}

Order Status: {{.OrderStatus}}
Payment Status: {{.PaymentStatus}}

Thank you for shopping with Pahana Edu!
`))

type view struct {
	Number        string
	Date          string
	Channel       string
	Customer      users.User
	Address       string
	Items         []lineView
	Subtotal      *float64
	Discount      *float64
	Total         *float64
	OrderStatus   string
	PaymentStatus string
}

type lineView struct {
	Name      string
	Quantity  int
	UnitPrice *float64
	Total     *float64
}

// Render builds the invoice text. customer, when non-nil, overrides the
// customer snapshot carried by the order. Totals the backend did not send
// print as NaN; they are not recomputed.
func Render(o orders.Order, customer *users.User) string {
	v := view{
		Number:        o.OrderNumber,
		Date:          o.CreatedAt.Format("2006-01-02 15:04"),
		Channel:       channelLabel(o.Channel),
		Customer:      customerOf(o, customer),
		Items:         make([]lineView, 0, len(o.Items)),
		Subtotal:      o.Subtotal,
		Discount:      o.Discount,
		Total:         o.TotalAmount,
		OrderStatus:   status.OrderLabel(o.OrderStatus),
		PaymentStatus: status.PaymentLabel(o.PaymentStatus),
	}
	v.Address = o.Address
	if v.Address == "" {
		v.Address = v.Customer.Address
	}
	for _, it := range o.Items {
		lv := lineView{Name: it.BookName, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
		if lv.Name == "" {
			lv.Name = "Book #" + strconv.FormatInt(it.BookID, 10)
		}
		if it.UnitPrice != nil {
			t := *it.UnitPrice * float64(it.Quantity)
			lv.Total = &t
		}
		v.Items = append(v.Items, lv)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, v); err != nil {
		// the template is fixed and the view holds no funcs that fail
		panic(fmt.Sprintf("invoice: %v", err))
	}
	return b.String()
}

// FileName is invoice-<orderNumber>.txt.
func FileName(o orders.Order) string {
	return "invoice-" + o.OrderNumber + ".txt"
}

func customerOf(o orders.Order, override *users.User) users.User {
	if override != nil {
		return *override
	}
	if o.Customer != nil {
		return *o.Customer
	}
	return users.User{
		ID:            o.CustomerID,
		Name:          o.CustomerName,
		AccountNumber: o.CustomerAccountNumber,
		Email:         o.CustomerEmail,
		Phone:         o.CustomerPhone,
	}
}

func channelLabel(ch orders.Channel) string {
	if ch == orders.ChannelInStore {
		return "In-store"
	}
	return "Online"
}

// money prints "LKR <amount>" and "LKR NaN" when the amount is missing.
func money(v *float64) string {
	if v == nil || math.IsNaN(*v) {
		return books.Currency + " NaN"
	}
	return books.FormatPrice(*v)
}
