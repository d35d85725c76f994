package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a task is not found.
	ErrNotFound = errors.New("not found")
	// ErrNotValid is returned when a resource is not valid.
	ErrNotValid = errors.New("not valid")
	// ErrInvalidStatus is returned when a status is not one of the known task statuses.
	ErrInvalidStatus = fmt.Errorf("invalid status: %w", ErrNotValid)
	// ErrUsage is returned when an operation receives the wrong arguments.
	ErrUsage = errors.New("usage")
	// ErrUnknownOperation is returned when the requested operation does not exist.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrPersistence is returned when the task store could not be read or written.
	ErrPersistence = errors.New("persistence failure")
)

// PersistenceOp is the store operation that failed.
type PersistenceOp string

const (
	PersistenceOpLoad PersistenceOp = "loading"
	PersistenceOpSave PersistenceOp = "saving"
)

// PersistenceError describes a failure reading or writing the task store.
type PersistenceError struct {
	Op  PersistenceOp
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("error %s tasks: %s", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Is makes every persistence error match ErrPersistence.
func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }
