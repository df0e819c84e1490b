package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error carrying a stable code. HTTPStatus is used
// when the error surfaces on the ops endpoint.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError with the same code, so callers can compare
// against the constructors below with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Event source (SRC) ----

func ErrSubscribe(err error) *AppError {
	return Wrap("SRC_001", "Failed to register invoice listener", http.StatusServiceUnavailable, err)
}

func ErrSubscriptionClosed() *AppError {
	return New("SRC_002", "Subscription closed", http.StatusServiceUnavailable)
}

func ErrMalformedEvent(err error) *AppError {
	return Wrap("SRC_003", "Malformed payment event", http.StatusBadRequest, err)
}

// ---- Metadata store (STORE) ----

func ErrStore(err error) *AppError {
	return Wrap("STORE_001", "Payment metadata store failure", http.StatusInternalServerError, err)
}

func ErrPaymentNotFound(paymentHash string) *AppError {
	return New("STORE_002", fmt.Sprintf("payment %s not found", paymentHash), http.StatusNotFound)
}

// ---- Delivery (DLV) ----

func ErrInvalidTemplate(field string, err error) *AppError {
	return Wrap("DLV_001", fmt.Sprintf("Invalid %s template", field), http.StatusUnprocessableEntity, err)
}

// ---- Side channel (RLY / SIG) ----

func ErrRelay(err error) *AppError {
	return Wrap("RLY_001", "Relay publish failed", http.StatusBadGateway, err)
}

func ErrSigning(err error) *AppError {
	return Wrap("SIG_001", "Receipt signing failed", http.StatusInternalServerError, err)
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
