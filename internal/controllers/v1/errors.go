package v1

import (
	"errors"
	"net/http"

	"github.com/pema-app/backend/internal/httputil"
	"github.com/pema-app/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the expense exceeds the current balance"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, errInvalidCredentials) || errors.Is(err, errNoToken) || errors.Is(err, errInvalidToken) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, errNotResourceOwner) {
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}

// Auth errors
var (
	errInvalidCredentials = errors.New("the email or password is incorrect")
	errNoToken            = errors.New("you must provide a bearer token in the Authorization header")
	errInvalidToken       = errors.New("the token is invalid or expired")
	errNotRefreshToken    = errors.New("the token is not a refresh token")
	errPasswordTooShort   = errors.New("the password must be at least 8 characters long")
	errNotResourceOwner   = errors.New("you do not have access to this resource")
)

// fieldErrors is the detail map for validation and insufficient-funds
// errors, keyed by the offending field.
type fieldErrors map[string]string

func validationDetail(err error) fieldErrors {
	switch {
	case errors.Is(err, models.ErrExpenseAmountNotPositive),
		errors.Is(err, models.ErrIncomeAmountNotPositive),
		errors.Is(err, models.ErrInsufficientBalance):
		return fieldErrors{"amount": err.Error()}
	case errors.Is(err, models.ErrEmailNotUnique):
		return fieldErrors{"email": err.Error()}
	case errors.Is(err, models.ErrUsernameNotUnique):
		return fieldErrors{"username": err.Error()}
	case errors.Is(err, models.ErrCategoryNameNotUnique):
		return fieldErrors{"name": err.Error()}
	case errors.Is(err, errPasswordTooShort):
		return fieldErrors{"password": err.Error()}
	case errors.Is(err, httputil.ErrRequestBodyEmpty), errors.Is(err, httputil.ErrInvalidBody):
		return fieldErrors{"body": err.Error()}
	}

	return nil
}
