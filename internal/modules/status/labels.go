package status

const defaultColor = "default"

var orderLabels = map[OrderStatus]string{
	OrderPending:    "Pending",
	OrderProcessing: "Processing",
	OrderShipped:    "Shipped",
	OrderDelivered:  "Delivered",
	OrderCompleted:  "Completed",
	OrderCancelled:  "Cancelled",
}

var orderColors = map[OrderStatus]string{
	OrderPending:    "orange",
	OrderProcessing: "blue",
	OrderShipped:    "purple",
	OrderDelivered:  "cyan",
	OrderCompleted:  "green",
	OrderCancelled:  "red",
}

var paymentLabels = map[PaymentStatus]string{
	PaymentPending:   "Pending",
	PaymentPaid:      "Paid",
	PaymentCancelled: "Cancelled",
}

var paymentColors = map[PaymentStatus]string{
	PaymentPending:   "orange",
	PaymentPaid:      "green",
	PaymentCancelled: "red",
}

func OrderLabel(s OrderStatus) string {
	if l, ok := orderLabels[s]; ok {
		return l
	}
	return string(s)
}

func OrderColor(s OrderStatus) string {
	if c, ok := orderColors[s]; ok {
		return c
	}
	return defaultColor
}

func PaymentLabel(s PaymentStatus) string {
	if l, ok := paymentLabels[s]; ok {
		return l
	}
	return string(s)
}

func PaymentColor(s PaymentStatus) string {
	if c, ok := paymentColors[s]; ok {
		return c
	}
	return defaultColor
}
