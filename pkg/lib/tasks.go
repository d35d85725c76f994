package lib

import (
	"context"
	"fmt"

	"github.com/slok/task-tracker/internal/app/add"
	"github.com/slok/task-tracker/internal/app/list"
	"github.com/slok/task-tracker/internal/app/mark"
	"github.com/slok/task-tracker/internal/app/remove"
	"github.com/slok/task-tracker/internal/app/update"
	"github.com/slok/task-tracker/internal/model"
)

// TaskStatus is the progress state of a task.
type TaskStatus string

const (
	// TaskStatusNotDone is the status of new tasks.
	TaskStatusNotDone TaskStatus = "not done"
	// TaskStatusInProgress is the status of started tasks.
	TaskStatusInProgress TaskStatus = "in progress"
	// TaskStatusDone is the status of finished tasks.
	TaskStatusDone TaskStatus = "done"
)

// Task is a task returned by the SDK.
//
// It is a copy of the stored task at the time of the call, changing it has no
// effect on the store.
type Task struct {
	// ID is the random UUID assigned when the task was added.
	ID string
	// Description is the task text.
	Description string
	// Status is the current task status.
	Status TaskStatus
}

// ListTasksOpts are the optional filters of [Client.ListTasks].
type ListTasksOpts struct {
	// Status only returns the tasks with this exact status. Empty returns all.
	Status TaskStatus
}

// AddTask adds a new task with [TaskStatusNotDone] status at the end of the task list.
// The description is stored as received, blank ones included.
func (c *Client) AddTask(ctx context.Context, description string) (*Task, error) {
	svc, err := add.NewService(add.ServiceConfig{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, add.Request{Description: description})
	if err != nil {
		return nil, mapError(err)
	}

	t := fromInternalTask(*task)
	return &t, nil
}

// UpdateTask replaces the description of a task.
//
// Returns [ErrNotFound] if the task does not exist, nothing is saved in that case.
func (c *Client) UpdateTask(ctx context.Context, id, description string) (*Task, error) {
	svc, err := update.NewService(update.ServiceConfig{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, update.Request{ID: id, Description: description})
	if err != nil {
		return nil, mapError(err)
	}

	t := fromInternalTask(*task)
	return &t, nil
}

// DeleteTask removes a task and returns it. The rest of the tasks keep their order.
//
// Returns [ErrNotFound] if the task does not exist.
func (c *Client) DeleteTask(ctx context.Context, id string) (*Task, error) {
	svc, err := remove.NewService(remove.ServiceConfig{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, remove.Request{ID: id})
	if err != nil {
		return nil, mapError(err)
	}

	t := fromInternalTask(*task)
	return &t, nil
}

// MarkTask sets the status of a task.
//
// Returns [ErrInvalidStatus] before reading the store if the status is unknown,
// and [ErrNotFound] if the task does not exist.
func (c *Client) MarkTask(ctx context.Context, id string, status TaskStatus) (*Task, error) {
	svc, err := mark.NewService(mark.ServiceConfig{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, mark.Request{ID: id, Status: string(status)})
	if err != nil {
		return nil, mapError(err)
	}

	t := fromInternalTask(*task)
	return &t, nil
}

// ListTasks returns the tasks in the order they were added.
func (c *Client) ListTasks(ctx context.Context, opts *ListTasksOpts) ([]Task, error) {
	svc, err := list.NewService(list.ServiceConfig{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	var filter string
	if opts != nil {
		filter = string(opts.Status)
	}

	tasks, err := svc.Run(ctx, list.Request{StatusFilter: filter})
	if err != nil {
		return nil, mapError(err)
	}

	return fromInternalTaskList(tasks), nil
}

func fromInternalTask(t model.Task) Task {
	return Task{
		ID:          t.ID,
		Description: t.Description,
		Status:      TaskStatus(t.Status),
	}
}

func fromInternalTaskList(ts []model.Task) []Task {
	result := make([]Task, len(ts))
	for i, t := range ts {
		result[i] = fromInternalTask(t)
	}
	return result
}
