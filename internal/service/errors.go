package service

import (
	"errors"

	"connectrpc.com/connect"
	"github.com/mmynk/gradebook/internal/calculator"
	"github.com/mmynk/gradebook/internal/history"
	"github.com/mmynk/gradebook/internal/storage"
)

// connectError maps a gradebook error onto a Connect status code.
func connectError(err error) *connect.Error {
	var (
		validationErr *calculator.ValidationError
		storageErr    *storage.Error
	)
	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, calculator.ErrEmptySelection),
		errors.Is(err, calculator.ErrMissingName),
		errors.Is(err, calculator.ErrNoCredits):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, history.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, history.ErrUnsupportedSchema):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.As(err, &storageErr):
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
