package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pllumaj/results/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

// validationErrs map to 400: malformed or missing input.
var validationErrs = []error{
	domain.ErrMissingCredentials,
	domain.ErrInvalidRole,
	domain.ErrNeedFieldsRequired,
	domain.ErrNeedIDRequired,
	domain.ErrInvalidAmount,
	domain.ErrInvalidMessage,
	domain.ErrInvalidAction,
}

// forbiddenErrs map to 403: authenticated but not authorized.
var forbiddenErrs = []error{
	domain.ErrOnlyExpertsSend,
	domain.ErrOnlyExpertsView,
	domain.ErrOnlyClientsRespond,
	domain.ErrOffersViewerRole,
	domain.ErrNotNeedOwner,
	domain.ErrNotOfferOwner,
}

// notFoundErrs map to 404: a referenced entity is absent.
var notFoundErrs = []error{
	domain.ErrUserNotFound,
	domain.ErrNeedNotFound,
	domain.ErrOfferNotFound,
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case isAny(err, validationErrs):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case isAny(err, forbiddenErrs):
		return http.StatusForbidden, err.Error()
	case isAny(err, notFoundErrs):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, domain.ErrOfferResolved):
		return http.StatusConflict, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
