package http

import (
	"errors"
	"net/http"

	"rescue/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps domain errors to HTTP statuses: missing aggregates to
// 404, malformed input to 400, failed authorization to 403 and lifecycle
// conflicts to 409.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	var (
		notFoundErr     *errs.ObjectNotFoundError
		invalidErr      *errs.ValueIsInvalidError
		requiredErr     *errs.ValueIsRequiredError
		outOfRangeErr   *errs.ValueIsOutOfRangeError
		unauthorizedErr *errs.UnauthorizedError
		stateErr        *errs.InvalidStateError
		invariantErr    *errs.InvariantViolationError
	)

	switch {
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	case errors.As(err, &invalidErr), errors.As(err, &requiredErr), errors.As(err, &outOfRangeErr):
		status = http.StatusBadRequest
	case errors.As(err, &unauthorizedErr):
		status = http.StatusForbidden
	case errors.As(err, &stateErr), errors.As(err, &invariantErr):
		status = http.StatusConflict
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
