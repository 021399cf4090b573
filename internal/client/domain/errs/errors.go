// Package errs defines the tagged errors surfaced by the goodnotes client.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind классифицирует ошибку.
type Kind int

// Виды ошибок.
const (
	KindUnknown Kind = iota
	// KindTransport - сетевой сбой или ответ с кодом вне 2xx.
	KindTransport
	// KindNotFound - сущность с указанным id отсутствует.
	KindNotFound
	// KindValidation - входные данные отклонены до отправки.
	KindValidation
	// KindNotImplemented - операция не поддерживается бэкендом.
	KindNotImplemented
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindNotImplemented:
		return "not_implemented"
	default:
		return "unknown"
	}
}

// Sentinel errors for errors.Is checks against a Kind.
var (
	ErrTransport      = &Error{Kind: KindTransport}
	ErrNotFound       = &Error{Kind: KindNotFound}
	ErrValidation     = &Error{Kind: KindValidation}
	ErrNotImplemented = &Error{Kind: KindNotImplemented}
)

// Error is the single error type returned by the client layers.
type Error struct {
	Kind       Kind
	Op         string
	Status     int
	StatusText string
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Kind == KindTransport && e.Status != 0:
		return fmt.Sprintf("API Error: %d - %s", e.Status, e.StatusText)
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String() + " error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so errors.Is(err, ErrNotFound) works
// for every not-found error regardless of its message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Status == 0 && t.Message == ""
}

// HTTP builds a transport error from a non-2xx response.
func HTTP(op string, status int, statusText string) *Error {
	if statusText == "" {
		statusText = http.StatusText(status)
	}
	return &Error{Kind: KindTransport, Op: op, Status: status, StatusText: statusText}
}

// Transport wraps a failure that happened before a response was received.
func Transport(op string, err error) *Error {
	return &Error{Kind: KindTransport, Op: op, Message: "API request failed", Err: err}
}

// NotFound reports a missing entity.
func NotFound(op, message string) *Error {
	return &Error{Kind: KindNotFound, Op: op, Message: message}
}

// Validation reports rejected input.
func Validation(op string, err error) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: "invalid input", Err: err}
}

// NotImplemented reports an unsupported operation.
func NotImplemented(op string) *Error {
	return &Error{Kind: KindNotImplemented, Op: op, Message: op + " is not implemented"}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound is true for local not-found errors and for HTTP 404 responses.
func IsNotFound(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == KindNotFound || (e.Kind == KindTransport && e.Status == http.StatusNotFound)
}

// Message returns the text shown to users for err, or fallback when err
// carries nothing readable.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
