package apperr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const (
	msgSessionExpired = "Your session has expired. Please log in again."
	msgForbidden      = "You do not have permission to do that."
	msgNotFound       = "The requested resource was not found."
	msgConflict       = "The request conflicts with the current state."
	msgInvalid        = "Please check the submitted data."
	msgValidation     = "Validation failed."
	msgUnreachable    = "The bookstore service is unreachable. Please try again."
)

// backendError covers the error bodies the backend is known to send:
// {message}, {error}, and the validation shape
// {message: "Validation failed", errors: [{field, defaultMessage}]}.
type backendError struct {
	Message string       `json:"message"`
	Error   string       `json:"error"`
	Errors  []fieldError `json:"errors"`
}

type fieldError struct {
	Field          string `json:"field"`
	DefaultMessage string `json:"defaultMessage"`
	Message        string `json:"message"`
}

// FromResponse maps a non-2xx backend response onto the error taxonomy.
// It is the only place backend status codes are interpreted.
func FromResponse(status int, body []byte) *AppError {
	be := parseBackendError(body)
	msg := strings.TrimSpace(be.Message)
	if msg == "" {
		msg = strings.TrimSpace(be.Error)
	}
	cause := fmt.Errorf("backend responded %d: %s", status, truncate(strings.TrimSpace(string(body)), 200))

	switch status {
	case http.StatusUnauthorized:
		return &AppError{Kind: Unauthorized, PublicMsg: msgSessionExpired, Status: status, Err: cause}
	case http.StatusForbidden:
		return &AppError{Kind: Forbidden, PublicMsg: msgForbidden, Status: status, Err: cause}
	case http.StatusBadRequest:
		fields := validationFields(be.Errors)
		switch {
		case len(fields) > 0:
			if msg == "" {
				msg = msgValidation
			}
			return &AppError{Kind: Invalid, PublicMsg: msg, Fields: fields, Status: status, Err: cause}
		case msg != "":
			return &AppError{Kind: Invalid, PublicMsg: msg, Status: status, Err: cause}
		default:
			return &AppError{Kind: Invalid, PublicMsg: msgInvalid, Status: status, Err: cause}
		}
	case http.StatusNotFound:
		return &AppError{Kind: NotFound, PublicMsg: orDefault(msg, msgNotFound), Status: status, Err: cause}
	case http.StatusConflict:
		return &AppError{Kind: Conflict, PublicMsg: orDefault(msg, msgConflict), Status: status, Err: cause}
	default:
		return &AppError{Kind: Internal, PublicMsg: genericMsg, Status: status, Err: cause}
	}
}

// FromTransport wraps a network-level failure (no response received).
func FromTransport(err error) *AppError {
	return UnavailableErr(msgUnreachable, err)
}

func parseBackendError(body []byte) backendError {
	var be backendError
	if len(body) == 0 {
		return be
	}
	if err := json.Unmarshal(body, &be); err != nil {
		// plain-text bodies become the message
		s := strings.TrimSpace(string(body))
		if s != "" && !strings.HasPrefix(s, "<") {
			be.Message = truncate(s, 200)
		}
	}
	return be
}

func validationFields(errs []fieldError) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		key := strings.TrimSpace(fe.Field)
		if key == "" {
			key = "_"
		}
		msg := orDefault(strings.TrimSpace(fe.DefaultMessage), strings.TrimSpace(fe.Message))
		if msg == "" {
			msg = "Invalid value."
		}
		if _, dup := out[key]; !dup {
			out[key] = msg
		}
	}
	return out
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
