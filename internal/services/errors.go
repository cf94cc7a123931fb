package services

import (
	"errors"
	"fmt"

	"github.com/c00p75/fitness-league-sub000/internal/repository"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrStorageUnavailable = errors.New("storage service is not configured")
)

// serviceError carries a caller-facing message while matching one of the
// sentinel errors above with errors.Is.
type serviceError struct {
	kind    error
	message string
}

func (e *serviceError) Error() string { return e.message }
func (e *serviceError) Unwrap() error { return e.kind }

func notFound(entity string) error {
	return &serviceError{kind: ErrNotFound, message: entity + " not found"}
}

func conflict(format string, args ...any) error {
	return &serviceError{kind: ErrConflict, message: fmt.Sprintf(format, args...)}
}

func invalidInput(format string, args ...any) error {
	return &serviceError{kind: ErrInvalidInput, message: fmt.Sprintf(format, args...)}
}

func lookupError(err error, entity string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(entity)
	}
	return err
}
