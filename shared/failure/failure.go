package failure

import (
	"errors"
	"net/http"
)

// Failure is an error the api reports to the caller as is: Code becomes the HTTP status and
// Message the body's message.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidPageParam  = New(http.StatusBadRequest, "invalid page parameter")
	InvalidLimitParam = New(http.StatusBadRequest, "invalid limit parameter")
	ForbiddenError    = New(http.StatusForbidden, "your role cannot perform this action")
	GuestBlacklisted  = New(http.StatusForbidden, "this guest cannot book online, please contact the front desk")
)

func New(code int, msg string) *Failure {
	return &Failure{Code: code, Message: msg}
}

func (e *Failure) Error() string {
	return e.Message
}

// Is matches another Failure with the same code and message, so predefined failures work
// with errors.Is after wrapping.
func (e *Failure) Is(target error) bool {
	var other *Failure
	if !errors.As(target, &other) {
		return false
	}

	return e.Code == other.Code && e.Message == other.Message
}

func fromError(code int, err error) error {
	if err == nil {
		return nil
	}

	return New(code, err.Error())
}

// BadRequest turns err into a 400. A nil err stays nil.
func BadRequest(err error) error {
	return fromError(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return New(http.StatusForbidden, msg)
}

// NotFound reports a missing entity, e.g. NotFound("room").
func NotFound(entity string) error {
	return New(http.StatusNotFound, entity)
}

// Conflict is used for duplicate records and illegal booking state changes.
func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

// InternalError turns err into a 500. A nil err stays nil.
func InternalError(err error) error {
	return fromError(http.StatusInternalServerError, err)
}

// GetCode returns the HTTP status for err; anything that is not a Failure is a 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
