package proxy

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ForbiddenMessage is the message returned for every failed authentication.
const ForbiddenMessage = "Forbidden Access"

// StatusError is an error that carries the http status code and the message
// that should be shown to the caller.
//
// Handlers return a StatusError (possibly wrapped) when the envelope should
// use a status other than 500. Err is kept for logging only.
type StatusError struct {
	Status  int
	Message string
	Err     error
}

func (e *StatusError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

// Unwrap returns the underlying error, if any.
func (e *StatusError) Unwrap() error {
	return e.Err
}

// Unauthorized returns the error used when the credential does not match the
// configured secret.
func Unauthorized() error {
	return &StatusError{Status: http.StatusForbidden, Message: ForbiddenMessage}
}

// NotFound returns the error used when apiKey does not name a known variant.
func NotFound(apiKey string) error {
	return &StatusError{Status: http.StatusNotFound, Message: fmt.Sprintf("ApiKey %s Not Valid", apiKey)}
}

// BadRequest returns an error with status 400 and the given message.
func BadRequest(format string, args ...interface{}) error {
	return &StatusError{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// UpstreamError wraps any failure raised while fetching from an upstream api.
// It carries no status of its own; a StatusError further down the chain still
// decides the status.
type UpstreamError struct {
	Variant Variant
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Variant, e.Err)
}

// Unwrap returns the underlying fetch error.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Upstream wraps err as an UpstreamError for variant. A nil err returns nil.
func Upstream(variant Variant, err error) error {
	if err == nil {
		return nil
	}

	return &UpstreamError{Variant: variant, Err: err}
}

// StatusCode returns the status of the first StatusError in err's chain, or
// 500 when there is none.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) && se.Status != 0 {
		return se.Status
	}

	return http.StatusInternalServerError
}

// InternalMessage is the caller facing message of every error without an
// explicit StatusError message. The full error is only logged.
const InternalMessage = "Internal Server Error"

// Message returns the caller facing message for err. Only a StatusError
// message is exposed; everything else yields InternalMessage since upstream
// errors may carry urls with server held keys.
func Message(err error) string {
	var se *StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}

	return InternalMessage
}
