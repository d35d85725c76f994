package storage

import (
	"context"

	"github.com/slok/task-tracker/internal/model"
)

// Repository is the interface for task persistence.
//
// The task list is always handled as a whole: it is loaded fully and saved
// fully, keeping the insertion order.
type Repository interface {
	LoadTasks(ctx context.Context) ([]model.Task, error)
	SaveTasks(ctx context.Context, tasks []model.Task) error
}
