// Package lenient wraps a task repository so persistence failures never stop an operation.
//
// A failed load is served as an empty task list and a failed save is reported
// as success. Every failure is handed to the configured reporter as a
// *model.PersistenceError and kept so callers can branch on it afterwards.
package lenient

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/slok/task-tracker/internal/log"
	"github.com/slok/task-tracker/internal/model"
	"github.com/slok/task-tracker/internal/storage"
)

// Reporter receives every persistence failure that has been absorbed.
type Reporter func(err *model.PersistenceError)

// RepositoryConfig is the configuration for the lenient repository.
type RepositoryConfig struct {
	Repository storage.Repository
	Reporter   Reporter
	Logger     log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Reporter == nil {
		c.Reporter = func(*model.PersistenceError) {}
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Lenient"})
	return nil
}

// Repository is a storage.Repository that absorbs the wrapped repository failures.
type Repository struct {
	repo     storage.Repository
	reporter Reporter
	errs     []error
	mu       sync.Mutex
	logger   log.Logger
}

// NewRepository creates a new lenient repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		repo:     cfg.Repository,
		reporter: cfg.Reporter,
		logger:   cfg.Logger,
	}, nil
}

// LoadTasks loads the tasks, falling back to an empty list on failure.
func (r *Repository) LoadTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := r.repo.LoadTasks(ctx)
	if err != nil {
		if isCancellation(err) {
			return nil, err
		}
		r.absorb(model.PersistenceOpLoad, err)
		return []model.Task{}, nil
	}

	return tasks, nil
}

// SaveTasks saves the tasks, reporting instead of returning any failure.
func (r *Repository) SaveTasks(ctx context.Context, tasks []model.Task) error {
	err := r.repo.SaveTasks(ctx, tasks)
	if err != nil {
		if isCancellation(err) {
			return err
		}
		r.absorb(model.PersistenceOpSave, err)
	}

	return nil
}

// Errors returns the absorbed failures in the order they happened.
func (r *Repository) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	errs := make([]error, len(r.errs))
	copy(errs, r.errs)
	return errs
}

func (r *Repository) absorb(op model.PersistenceOp, err error) {
	perr := &model.PersistenceError{Op: op, Err: err}
	r.logger.Warningf("Ignoring persistence failure: %s", perr)

	r.mu.Lock()
	r.errs = append(r.errs, perr)
	r.mu.Unlock()

	r.reporter(perr)
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
