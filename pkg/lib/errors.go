package lib

import (
	"errors"

	"github.com/slok/task-tracker/internal/model"
)

var (
	// ErrNotFound is returned when no task has the requested ID.
	ErrNotFound = errors.New("not found")
	// ErrNotValid is returned when the input of an operation is not valid.
	ErrNotValid = errors.New("not valid")
	// ErrInvalidStatus is returned when a status is not one of the task statuses.
	// Errors matching it also match [ErrNotValid].
	ErrInvalidStatus = errors.New("invalid status")
	// ErrPersistence is returned when the tasks file could not be read or written.
	ErrPersistence = errors.New("persistence failure")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return joinErrors(err, ErrNotFound)
	case errors.Is(err, model.ErrInvalidStatus):
		return joinErrors(err, ErrInvalidStatus, ErrNotValid)
	case errors.Is(err, model.ErrNotValid):
		return joinErrors(err, ErrNotValid)
	case errors.Is(err, model.ErrPersistence):
		return joinErrors(err, ErrPersistence)
	default:
		return err
	}
}

func joinErrors(original error, sentinels ...error) error {
	return &mappedError{original: original, sentinels: sentinels}
}

type mappedError struct {
	original  error
	sentinels []error
}

func (e *mappedError) Error() string { return e.original.Error() }

func (e *mappedError) Is(target error) bool {
	for _, s := range e.sentinels {
		if target == s {
			return true
		}
	}
	return false
}

func (e *mappedError) Unwrap() error { return e.original }
