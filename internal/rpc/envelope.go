package rpc

import (
	"encoding/json"

	"github.com/c00p75/fitness-league-sub000/internal/schema"
)

// Response is the wire envelope of one call: exactly one of Result or Error is set.
type Response struct {
	Result *ResultBody `json:"result,omitempty"`
	Error  *ErrorBody  `json:"error,omitempty"`
}

type ResultBody struct {
	Data any `json:"data"`
}

type ErrorBody struct {
	Code    Code      `json:"code"`
	Message string    `json:"message"`
	Data    ErrorData `json:"data"`
}

type ErrorData struct {
	Code       Code              `json:"code"`
	HTTPStatus int               `json:"httpStatus"`
	Path       string            `json:"path,omitempty"`
	Violations schema.Violations `json:"violations,omitempty"`
}

// RawResponse is the client-side view of Response with the data left encoded.
type RawResponse struct {
	Result *struct {
		Data json.RawMessage `json:"data"`
	} `json:"result,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
}

func (b *ErrorBody) Err() *Error {
	return &Error{Code: b.Code, Message: b.Message, Violations: b.Data.Violations}
}

func successResponse(data any) Response {
	return Response{Result: &ResultBody{Data: data}}
}

func errorResponse(path string, err *Error) Response {
	message := err.Message
	if err.Code == CodeInternal {
		message = "internal server error"
	}
	return Response{Error: &ErrorBody{
		Code:    err.Code,
		Message: message,
		Data: ErrorData{
			Code:       err.Code,
			HTTPStatus: err.Code.HTTPStatus(),
			Path:       path,
			Violations: err.Violations,
		},
	}}
}
