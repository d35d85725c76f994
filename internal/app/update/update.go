package update

import (
	"context"
	"fmt"

	"github.com/slok/task-tracker/internal/log"
	"github.com/slok/task-tracker/internal/model"
	"github.com/slok/task-tracker/internal/storage"
)

// ServiceConfig is the configuration for the update service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Update"})

	return nil
}

// Service changes the description of tasks.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new update service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the update request parameters.
type Request struct {
	ID          string
	Description string
}

// Run replaces the description of the first task with the requested ID.
// Nothing is saved if the task doesn't exist.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
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
	tasks[idx].Description = req.Description

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.repo.SaveTasks(ctx, tasks); err != nil {
		return nil, fmt.Errorf("could not save tasks: %w", err)
	}

	s.logger.Debugf("updated task %s", req.ID)
	task := tasks[idx]
	return &task, nil
}
