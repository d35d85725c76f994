package mark

import (
	"context"
	"fmt"

	"github.com/slok/task-tracker/internal/log"
	"github.com/slok/task-tracker/internal/model"
	"github.com/slok/task-tracker/internal/storage"
)

// ServiceConfig is the configuration for the mark service.
type ServiceConfig struct {
	Repository storage.Repository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Mark"})

	return nil
}

// Service changes the status of tasks.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new mark service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the mark request parameters.
type Request struct {
	ID string
	// Status is the raw status, it must match one of the task statuses exactly.
	Status string
}

// Run sets the status of the first task with the requested ID.
// The status is checked before touching the store.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	status, err := model.ParseTaskStatus(req.Status)
	if err != nil {
		return nil, err
	}

	tasks, err := s.repo.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load tasks: %w", err)
	}

	idx := -1
	for i, t := range tasks {
		if t.ID == req.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("task %s: %w", req.ID, model.ErrNotFound)
	}
	tasks[idx].Status = status

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.repo.SaveTasks(ctx, tasks); err != nil {
		return nil, fmt.Errorf("could not save tasks: %w", err)
	}

	s.logger.Debugf("marked task %s as %s", req.ID, status)
	task := tasks[idx]
	return &task, nil
}
