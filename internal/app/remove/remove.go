package remove

import (
	"context"
	"fmt"

	"github.com/slok/task-tracker/internal/log"
	"github.com/slok/task-tracker/internal/model"
	"github.com/slok/task-tracker/internal/storage"
)

// ServiceConfig is the configuration for the remove service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Remove"})

	return nil
}

// Service removes tasks.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new remove service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the remove request parameters.
type Request struct {
	// ID is the task ID to remove.
	ID string
}

// Run removes the task with the requested ID, keeping the order of the rest.
// Nothing is saved if the task doesn't exist.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	tasks, err := s.repo.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load tasks: %w", err)
	}

	var removed *model.Task
	kept := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if removed == nil && t.ID == req.ID {
			removed = &t
			continue
		}
		kept = append(kept, t)
	}
	if removed == nil {
		return nil, fmt.Errorf("task %s: %w", req.ID, model.ErrNotFound)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.repo.SaveTasks(ctx, kept); err != nil {
		return nil, fmt.Errorf("could not save tasks: %w", err)
	}

	s.logger.Debugf("removed task %s", req.ID)
	return removed, nil
}
