package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/slok/task-tracker/internal/log"
	"github.com/slok/task-tracker/internal/model"
)

// RepositoryConfig is the configuration for the memory repository.
type RepositoryConfig struct {
	// Tasks is the initial task list.
	Tasks  []model.Task
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if err := model.ValidateTasks(c.Tasks); err != nil {
		return fmt.Errorf("invalid initial tasks: %w", err)
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// Repository is an in-memory implementation of storage.Repository.
type Repository struct {
	tasks  []model.Task
	loads  int
	saves  int
	mu     sync.Mutex
	logger log.Logger
}

// NewRepository creates a new memory repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		tasks:  copyTasks(cfg.Tasks),
		logger: cfg.Logger,
	}, nil
}

// LoadTasks returns a copy of the stored tasks.
func (r *Repository) LoadTasks(ctx context.Context) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loads++
	return copyTasks(r.tasks), nil
}

// SaveTasks replaces the stored tasks.
func (r *Repository) SaveTasks(ctx context.Context, tasks []model.Task) error {
	if err := model.ValidateTasks(tasks); err != nil {
		return fmt.Errorf("refusing to save tasks: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.saves++
	r.tasks = copyTasks(tasks)
	r.logger.Debugf("Saved %d tasks in repository", len(tasks))

	return nil
}

// Loads returns how many times the tasks have been loaded.
func (r *Repository) Loads() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loads
}

// Saves returns how many times the tasks have been saved.
func (r *Repository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

func copyTasks(tasks []model.Task) []model.Task {
	c := make([]model.Task, len(tasks))
	copy(c, tasks)
	return c
}
