package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/moby/sys/atomicwriter"

	"github.com/slok/task-tracker/internal/log"
	"github.com/slok/task-tracker/internal/model"
)

// DefaultPath is the tasks file used when none is configured, relative to the working directory.
const DefaultPath = "tasks.json"

// RepositoryConfig is the configuration for the file repository.
type RepositoryConfig struct {
	Path   string
	Format Format
	// FileMode is the permission used when the tasks file is written.
	FileMode fs.FileMode
	Logger   log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Path == "" {
		return fmt.Errorf("path is required")
	}
	if c.Format == "" || c.Format == FormatAuto {
		c.Format = FormatFromPath(c.Path)
	}
	if c.FileMode == 0 {
		c.FileMode = 0o644
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.File"})
	return nil
}

// Repository is a single file implementation of storage.Repository.
type Repository struct {
	path   string
	mode   fs.FileMode
	codec  codec
	logger log.Logger
}

// NewRepository creates a new file repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	c, err := newCodec(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		path:   cfg.Path,
		mode:   cfg.FileMode,
		codec:  c,
		logger: cfg.Logger,
	}, nil
}

// Path returns the tasks file path.
func (r *Repository) Path() string { return r.path }

// LoadTasks reads all the tasks from the file. A missing or empty file is an empty task list.
func (r *Repository) LoadTasks(ctx context.Context) ([]model.Task, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Debugf("Tasks file %s missing, using empty task list", r.path)
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("could not read tasks file: %w", err)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if len(bytes.TrimSpace(data)) == 0 {
		r.logger.Debugf("Tasks file %s empty, using empty task list", r.path)
		return []model.Task{}, nil
	}

	var doc any
	if err := r.codec.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("could not parse tasks file: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var records []taskRecord
	if err := r.codec.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("could not parse tasks file: %w", err)
	}

	tasks := make([]model.Task, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, model.Task{
			ID:          rec.ID,
			Description: rec.Description,
			Status:      model.TaskStatus(rec.Status),
		})
	}

	if err := model.ValidateTasks(tasks); err != nil {
		return nil, fmt.Errorf("invalid tasks file: %w", err)
	}

	r.logger.Debugf("Loaded %d tasks from %s", len(tasks), r.path)
	return tasks, nil
}

// SaveTasks replaces the file content with all the received tasks.
func (r *Repository) SaveTasks(ctx context.Context, tasks []model.Task) error {
	if err := model.ValidateTasks(tasks); err != nil {
		return fmt.Errorf("refusing to save tasks: %w", err)
	}

	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, taskRecord{
			ID:          t.ID,
			Description: t.Description,
			Status:      string(t.Status),
		})
	}

	data, err := r.codec.Marshal(records)
	if err != nil {
		return fmt.Errorf("could not encode tasks: %w", err)
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := atomicwriter.WriteFile(r.path, data, r.mode); err != nil {
		return fmt.Errorf("could not write tasks file: %w", err)
	}

	r.logger.Debugf("Saved %d tasks to %s", len(tasks), r.path)
	return nil
}
