// Package failure carries HTTP status codes on errors so the transport
// layer can map any error in the chain to a response without type
// switches at every call site.
package failure

import (
	"errors"
	"net/http"
)

// Failure pairs a message with the HTTP status it should produce.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

func withCode(code int, message string) error {
	return &Failure{Code: code, Message: message}
}

// BadRequest wraps err as a 400. A nil err passes through as nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return withCode(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return withCode(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return withCode(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return withCode(http.StatusForbidden, msg)
}

func NotFound(entityName string) error {
	return withCode(http.StatusNotFound, entityName)
}

func Conflict(message string) error {
	return withCode(http.StatusConflict, message)
}

// InternalError wraps err as a 500. A nil err passes through as nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return withCode(http.StatusInternalServerError, err.Error())
}

// Upstream carries the status code reported by an upstream collaborator,
// so mutation rejections stay distinguishable from local faults.
func Upstream(statusCode int, message string) error {
	return withCode(statusCode, message)
}

// GetCode extracts the status code, unwrapping as needed. Errors with no
// Failure in their chain count as internal.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsConflict reports whether the error carries a conflict status code.
func IsConflict(err error) bool {
	return GetCode(err) == http.StatusConflict
}
