package add

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/slok/task-tracker/internal/log"
	"github.com/slok/task-tracker/internal/model"
	"github.com/slok/task-tracker/internal/storage"
)

// IDGenerator returns a new unique task ID.
type IDGenerator func() string

// ServiceConfig is the configuration for the add service.
type ServiceConfig struct {
	Repository  storage.Repository
	IDGenerator IDGenerator
	Logger      log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.IDGenerator == nil {
		c.IDGenerator = uuid.NewString
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Add"})

	return nil
}

// Service adds new tasks.
type Service struct {
	repo   storage.Repository
	newID  IDGenerator
	logger log.Logger
}

// NewService creates a new add service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		newID:  cfg.IDGenerator,
		logger: cfg.Logger,
	}, nil
}

// Request represents the add request parameters.
type Request struct {
	// Description is the text of the new task.
	Description string
}

// Run appends a new task with the default status at the end of the task list.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	tasks, err := s.repo.LoadTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load tasks: %w", err)
	}

	task := model.Task{
		ID:          s.newID(),
		Description: req.Description,
		Status:      model.TaskStatusNotDone,
	}
	for _, t := range tasks {
		if t.ID == task.ID {
			return nil, fmt.Errorf("task id %s already in use: %w", task.ID, model.ErrNotValid)
		}
	}
	tasks = append(tasks, task)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.repo.SaveTasks(ctx, tasks); err != nil {
		return nil, fmt.Errorf("could not save tasks: %w", err)
	}

	s.logger.Debugf("added task %s", task.ID)
	return &task, nil
}
