package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope wraps every JSON body the server writes. Status mirrors the HTTP status.
type Envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// ValidationError is one rejected input.
type ValidationError struct {
	Code    string                 `json:"code,omitempty"`
	Field   string                 `json:"field,omitempty"`
	Message string                 `json:"message,omitempty"`
	Params  map[string]interface{} `json:"params,omitempty"`
}

// Problem is a handler failure that knows its HTTP status and public code.
type Problem struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (p *Problem) Error() string {
	if p.Err != nil {
		return fmt.Sprintf("%s: %v", p.Message, p.Err)
	}
	return p.Message
}

func (p *Problem) Unwrap() error { return p.Err }

// Internal is a 500 problem; err stays in logs and out of the body.
func Internal(code, message string, err error) *Problem {
	return &Problem{Status: http.StatusInternalServerError, Code: code, Message: message, Err: err}
}

func write(c echo.Context, status int, data interface{}, errs []ValidationError) error {
	return c.JSON(status, Envelope{
		Status:  status,
		Message: http.StatusText(status),
		Data:    data,
		Errors:  errs,
	})
}

// OK writes data with 200.
func OK(c echo.Context, data interface{}) error {
	return write(c, http.StatusOK, data, nil)
}

// Invalid writes rejected inputs with 400.
func Invalid(c echo.Context, errs []ValidationError) error {
	return write(c, http.StatusBadRequest, nil, errs)
}

// Fail writes err as its Problem status, or a bare 500 for anything else.
func Fail(c echo.Context, err error) error {
	var p *Problem
	if errors.As(err, &p) {
		return write(c, p.Status, nil, []ValidationError{{Code: p.Code, Message: p.Message}})
	}
	return write(c, http.StatusInternalServerError, nil, nil)
}
