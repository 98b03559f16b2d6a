package view

import (
	"github.com/shopspring/decimal"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/books"
)

// Money formats an optional amount; a missing amount renders as "-".
func Money(v *float64) string {
	if v == nil {
		return "-"
	}
	return books.FormatPrice(*v)
}

func MoneyDecimal(d decimal.Decimal) string { return books.FormatPrice(d) }

const dateLayout = "2006-01-02 15:04"
