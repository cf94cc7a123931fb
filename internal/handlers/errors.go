package handlers

import (
	"errors"

	"github.com/c00p75/fitness-league-sub000/internal/identity"
	"github.com/c00p75/fitness-league-sub000/internal/rpc"
	"github.com/c00p75/fitness-league-sub000/internal/services"
)

// mapServiceError turns service sentinels into typed procedure errors.
// Anything unrecognised is internal and its text never reaches the caller.
func mapServiceError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, services.ErrNotFound):
		return rpc.NewError(rpc.CodeNotFound, err.Error())
	case errors.Is(err, services.ErrConflict):
		return rpc.NewError(rpc.CodeConflict, err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		return rpc.BadRequest(err.Error(), nil)
	case errors.Is(err, identity.ErrNotConfigured), errors.Is(err, services.ErrStorageUnavailable):
		return rpc.Wrap(rpc.CodeInternal, "service not configured", err)
	default:
		return rpc.Internal(err)
	}
}
