package view

type ToastKind string

const (
	ToastInfo    ToastKind = "info"
	ToastSuccess ToastKind = "success"
	ToastWarning ToastKind = "warning"
	ToastError   ToastKind = "error"
)

// Toast is the one-line notice the browser shell shows after an action.
type Toast struct {
	Kind    ToastKind `json:"kind"`
	Message string    `json:"message"`
}

func Success(msg string) *Toast { return &Toast{Kind: ToastSuccess, Message: msg} }
func Info(msg string) *Toast    { return &Toast{Kind: ToastInfo, Message: msg} }
