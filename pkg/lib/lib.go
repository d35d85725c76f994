package lib

import (
	"context"
	"errors"
	"fmt"

	"github.com/slok/task-tracker/internal/model"
	"github.com/slok/task-tracker/internal/storage"
	"github.com/slok/task-tracker/internal/storage/file"
	"github.com/slok/task-tracker/internal/storage/memory"
	"github.com/slok/task-tracker/pkg/lib/log"
)

// FileFormat is the encoding of the tasks file.
type FileFormat string

const (
	// FileFormatAuto selects YAML for .yaml and .yml files and JSON for anything else.
	FileFormatAuto FileFormat = "auto"
	// FileFormatJSON stores the tasks as a JSON array.
	FileFormatJSON FileFormat = "json"
	// FileFormatYAML stores the tasks as a YAML sequence.
	FileFormatYAML FileFormat = "yaml"
)

// Config configures the SDK client.
//
// All fields are optional. An empty Config{} uses tasks.json in the working
// directory, the same file the CLI uses by default.
type Config struct {
	// FilePath is the tasks file path.
	// Default: tasks.json.
	FilePath string

	// Format is the tasks file encoding.
	// Default: [FileFormatAuto].
	Format FileFormat

	// Logger receives structured log output from the SDK.
	// Default: [log.Noop].
	Logger log.Logger

	// InMemory keeps the tasks in memory instead of a file. Nothing is
	// persisted once the client is discarded, this is meant for tests.
	InMemory bool
}

func (c *Config) defaults() error {
	if c.FilePath == "" {
		c.FilePath = file.DefaultPath
	}

	if c.Format == "" {
		c.Format = FileFormatAuto
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Client is the SDK entry point for managing tasks programmatically.
//
// Every method loads the full task list and, if it changes it, saves it back,
// exactly like a CLI invocation does. Two clients (or a client and the CLI)
// working on the same file don't coordinate, the last save wins.
type Client struct {
	repo   storage.Repository
	logger log.Logger
}

// New creates a new SDK client backed by the configured tasks file.
//
// The file is not touched until the first operation runs.
func New(_ context.Context, cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var repo storage.Repository
	if cfg.InMemory {
		r, err := memory.NewRepository(memory.RepositoryConfig{Logger: cfg.Logger})
		if err != nil {
			return nil, fmt.Errorf("could not create repository: %w", err)
		}
		repo = r
	} else {
		r, err := file.NewRepository(file.RepositoryConfig{
			Path:   cfg.FilePath,
			Format: file.Format(cfg.Format),
			Logger: cfg.Logger,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create repository: %w: %w", ErrNotValid, err)
		}
		repo = r
	}

	return &Client{
		repo:   persistenceRepository{repo: repo},
		logger: cfg.Logger,
	}, nil
}

// persistenceRepository marks every store failure as a persistence error so
// callers can match them with ErrPersistence.
type persistenceRepository struct {
	repo storage.Repository
}

func (p persistenceRepository) LoadTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := p.repo.LoadTasks(ctx)
	if err != nil {
		return nil, asPersistenceError(model.PersistenceOpLoad, err)
	}
	return tasks, nil
}

func (p persistenceRepository) SaveTasks(ctx context.Context, tasks []model.Task) error {
	if err := p.repo.SaveTasks(ctx, tasks); err != nil {
		return asPersistenceError(model.PersistenceOpSave, err)
	}
	return nil
}

func asPersistenceError(op model.PersistenceOp, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &model.PersistenceError{Op: op, Err: err}
}
