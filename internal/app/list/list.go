package list

import (
	"context"
	"fmt"

	"github.com/slok/task-tracker/internal/log"
	"github.com/slok/task-tracker/internal/model"
	"github.com/slok/task-tracker/internal/storage"
)

// ServiceConfig is the configuration for the list service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.List"})

	return nil
}

// Service lists tasks with optional filtering.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the list request parameters.
type Request struct {
	// StatusFilter only keeps tasks whose status is exactly this value. Empty keeps all.
	// It's not validated, unknown statuses match nothing.
	StatusFilter string
}

// Run lists all tasks in store order, optionally filtered by status.
func (s *Service) Run(ctx context.Context, req Request) ([]model.Task, error) {
	s.logger.Debugf("listing tasks with filter: %q", req.StatusFilter)

	tasks, err := s.repo.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load tasks: %w", err)
	}

	if req.StatusFilter != "" {
		filtered := make([]model.Task, 0, len(tasks))
		for _, t := range tasks {
			if string(t.Status) == req.StatusFilter {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	s.logger.Debugf("found %d tasks", len(tasks))
	return tasks, nil
}
