package model

import "errors"

// Outcome is the result kind of running an operation.
type Outcome string

const (
	OutcomeSuccess          Outcome = "success"
	OutcomeUsage            Outcome = "usage"
	OutcomeUnknownOperation Outcome = "unknown-operation"
	OutcomeNotFound         Outcome = "not-found"
	OutcomeInvalidStatus    Outcome = "invalid-status"
	OutcomePersistence      Outcome = "persistence"
	OutcomeUnknown          Outcome = "unknown"
)

// OutcomeOf classifies an error returned by any operation.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrUsage):
		return OutcomeUsage
	case errors.Is(err, ErrUnknownOperation):
		return OutcomeUnknownOperation
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrInvalidStatus):
		return OutcomeInvalidStatus
	case errors.Is(err, ErrPersistence):
		return OutcomePersistence
	}
	return OutcomeUnknown
}
