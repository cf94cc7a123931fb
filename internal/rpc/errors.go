package rpc

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/c00p75/fitness-league-sub000/internal/schema"
)

// Code is the machine-readable error category sent to clients.
type Code string

const (
	CodeBadRequest   Code = "BAD_REQUEST"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeNotFound     Code = "NOT_FOUND"
	CodeConflict     Code = "CONFLICT"
	CodeInternal     Code = "INTERNAL_SERVER_ERROR"
)

// CodeOK labels successful calls in metrics and logs. It never appears in an error.
const CodeOK Code = "OK"

func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// CodeFromHTTPStatus maps a transport status back to a code for responses
// whose body could not be decoded.
func CodeFromHTTPStatus(status int) Code {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity:
		return CodeBadRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		return CodeUnauthorized
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	default:
		return CodeInternal
	}
}

// Error is the typed failure of a procedure call.
type Error struct {
	Code       Code
	Message    string
	Violations schema.Violations
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause that is logged but never sent to the caller.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

func BadRequest(message string, violations schema.Violations) *Error {
	return &Error{Code: CodeBadRequest, Message: message, Violations: violations}
}

func Unauthorized() *Error {
	return NewError(CodeUnauthorized, "authentication required")
}

func Internal(cause error) *Error {
	return Wrap(CodeInternal, "internal server error", cause)
}

// AsError returns err as an *Error, treating anything untyped as internal.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return rpcErr
	}
	return Internal(err)
}

func IsCode(err error, code Code) bool {
	var rpcErr *Error
	return errors.As(err, &rpcErr) && rpcErr.Code == code
}
