package http

import (
	"errors"
	"net/http"

	"logistics/internal/adapters/in/http/api"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps use case errors to HTTP status codes. Anything unrecognised is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, commands.ErrHomeHubNotFound),
		errors.Is(err, shipment.ErrLegNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrHubAlreadyExists),
		errors.Is(err, commands.ErrLegIsNotPending),
		errors.Is(err, services.ErrNoDriverAvailable):
		return http.StatusConflict
	case errors.Is(err, services.ErrHubNotFound),
		errors.Is(err, commands.ErrBelowMinimumOrder):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an api.Error. Internal errors are logged and their text is not
// returned to the client.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), message,
			"error", err, "method", ctx.Request().Method, "path", ctx.Path())
		return ctx.JSON(status, api.Error{Code: status, Message: message})
	}
	return ctx.JSON(status, api.Error{Code: status, Message: message + ": " + err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, api.Error{Code: http.StatusBadRequest, Message: message})
}
