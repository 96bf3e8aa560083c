package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Error is the application error carried from services up to the HTTP layer.
type Error struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Validation reports missing or malformed input.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// NotFound reports an absent entity.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

// Forbidden reports an entity not owned by the caller.
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message, nil)
}

// Unauthorized reports a missing or invalid credential.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message, nil)
}

// BusinessRule reports a violated domain rule with a human-readable reason.
func BusinessRule(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// External reports a failure of an outside collaborator (payment gateway, SMTP).
func External(message string, err error) *Error {
	return New(http.StatusBadGateway, message, err)
}

// Integrity reports a data-consistency bug, e.g. a product without an
// inventory row. Not user-correctable.
func Integrity(message string) *Error {
	return New(http.StatusInternalServerError, message, nil)
}

// FromDB maps a repository error to an application error, hiding datastore
// detail behind a generic failure.
func FromDB(err error, notFoundMessage string) *Error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(notFoundMessage)
	}
	return New(http.StatusInternalServerError, "Internal server error", err)
}

// Respond writes err as a structured JSON response.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = New(http.StatusInternalServerError, "Internal server error", err)
	}
	c.JSON(appErr.Code, appErr)
}
