package apperr

type Kind string

type AppError struct {
	Kind      Kind
	PublicMsg string            // safe to show the user
	Fields    map[string]string // per-field validation messages (optional)
	Status    int               // backend HTTP status, 0 when not from a response
	Err       error             // internal cause (logged only)
}
