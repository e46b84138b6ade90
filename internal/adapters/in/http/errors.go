package http

import (
	"errors"
	"net/http"

	"orderhub/internal/core/domain/model/order"
	"orderhub/internal/core/domain/model/partner"
	"orderhub/internal/core/ports"
	"orderhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an error kind to the HTTP status returned to the client.
func statusFor(err error) int {
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, partner.ErrInsufficientCredit),
		errors.Is(err, partner.ErrPartnerInactive),
		errors.Is(err, partner.ErrInvalidAmount),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrEmptyOrder):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, ports.ErrLockNotAcquired):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders every error returned by a route as an Error body.
// Internal errors are logged and hidden from the client.
func (s *Server) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := statusFor(err)
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	}

	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, Error{Code: code, Message: message})
}
