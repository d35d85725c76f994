package model

import (
	"fmt"
	"slices"
)

// TaskStatus represents the progress state of a task.
type TaskStatus string

const (
	// TaskStatusNotDone is the status every task starts with.
	TaskStatusNotDone TaskStatus = "not done"
	// TaskStatusInProgress indicates the task is being worked on.
	TaskStatusInProgress TaskStatus = "in progress"
	// TaskStatusDone indicates the task is finished.
	TaskStatusDone TaskStatus = "done"
)

// TaskStatuses are all the valid task statuses, in their display order.
var TaskStatuses = []TaskStatus{TaskStatusInProgress, TaskStatusDone, TaskStatusNotDone}

// Valid returns true if the status is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	return slices.Contains(TaskStatuses, s)
}

// ParseTaskStatus converts a raw string into a task status. The match is exact.
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%q: %w", s, ErrInvalidStatus)
	}
	return status, nil
}

// Task is a single tracked item.
type Task struct {
	ID          string
	Description string
	Status      TaskStatus
}

// Validate checks the task invariants.
func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task id is required: %w", ErrNotValid)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("task %s status %q: %w", t.ID, t.Status, ErrInvalidStatus)
	}
	return nil
}

// ValidateTasks checks every task and that ids are unique within the list.
func ValidateTasks(tasks []Task) error {
	seen := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return err
		}
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("duplicated task id %s: %w", t.ID, ErrNotValid)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
