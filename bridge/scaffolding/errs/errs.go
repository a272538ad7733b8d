// Package errs provides the error type returned by bridge handlers.
package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
)

// ErrCode is a transport independent error class.
type ErrCode struct {
	value int
}

func (ec ErrCode) Value() int {
	return ec.value
}

func (ec ErrCode) String() string {
	return codeNames[ec]
}

func (ec ErrCode) MarshalText() ([]byte, error) {
	return []byte(ec.String()), nil
}

var (
	OK                 = ErrCode{value: 0}
	InvalidArgument    = ErrCode{value: 1}
	NotFound           = ErrCode{value: 2}
	Internal           = ErrCode{value: 3}
	InternalOnlyLog    = ErrCode{value: 4}
	Unavailable        = ErrCode{value: 5}
	FailedPrecondition = ErrCode{value: 6}
)

var codeNames = map[ErrCode]string{
	OK:                 "ok",
	InvalidArgument:    "invalid_argument",
	NotFound:           "not_found",
	Internal:           "internal",
	InternalOnlyLog:    "internal_only_log",
	Unavailable:        "unavailable",
	FailedPrecondition: "failed_precondition",
}

var httpStatus = map[ErrCode]int{
	OK:                 http.StatusOK,
	InvalidArgument:    http.StatusBadRequest,
	NotFound:           http.StatusNotFound,
	Internal:           http.StatusInternalServerError,
	InternalOnlyLog:    http.StatusInternalServerError,
	Unavailable:        http.StatusServiceUnavailable,
	FailedPrecondition: http.StatusUnprocessableEntity,
}

// Error carries the code, a client safe message, optional field details and
// the location it was created at for logging.
type Error struct {
	Code     ErrCode           `json:"code"`
	Message  string            `json:"message"`
	Fields   map[string]string `json:"fields,omitempty"`
	FuncName string            `json:"-"`
	FileName string            `json:"-"`
}

// New wraps err with code, keeping err's text as the message.
func New(code ErrCode, err error) *Error {
	e := &Error{Code: code, Message: err.Error()}
	e.setCaller(2)
	return e
}

// Newf builds an error from a format string.
func Newf(code ErrCode, format string, v ...any) *Error {
	e := &Error{Code: code, Message: fmt.Sprintf(format, v...)}
	e.setCaller(2)
	return e
}

// WithFields attaches per-field messages.
func (e *Error) WithFields(fields map[string]string) *Error {
	e.Fields = fields
	return e
}

func (e *Error) setCaller(skip int) {
	pc, filename, line, ok := runtime.Caller(skip)
	if !ok {
		return
	}
	e.FileName = fmt.Sprintf("%s:%d", filename, line)
	if fn := runtime.FuncForPC(pc); fn != nil {
		e.FuncName = fn.Name()
	}
}

func (e *Error) Error() string {
	return e.Message
}

// Encode implements web.Encoder.
func (e *Error) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	return data, "application/json", err
}

// HTTPStatus implements the web package's status hook.
func (e *Error) HTTPStatus() int {
	if s, ok := httpStatus[e.Code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// IsError reports whether err is, or wraps, an *Error.
func IsError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
