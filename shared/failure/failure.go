package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// The optional cause keeps the originating sentinel reachable through errors.Is.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap returns the cause the failure was built from, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// Wrap returns a new Failure with the given code that unwraps to cause.
// The message defaults to the cause's own message when msg is empty.
func Wrap(code int, cause error, msg string) error {
	message := msg
	if message == "" {
		message = cause.Error()
	}

	return &Failure{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusNotFound,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusConflict,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
