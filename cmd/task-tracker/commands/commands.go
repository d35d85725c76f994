package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/task-tracker/internal/log"
	"github.com/slok/task-tracker/internal/model"
	"github.com/slok/task-tracker/internal/printer"
	"github.com/slok/task-tracker/internal/storage/file"
	"github.com/slok/task-tracker/internal/storage/lenient"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// Messages shown to the user. Every domain outcome is reported with one of these.
const (
	MsgMissingOperation = "Please provide an action (add, update, delete, mark, list)"
	MsgUnknownOperation = "Unknown action. Available actions: add, update, delete, mark, list"
	MsgTaskNotFound     = "Task not found."
	MsgInvalidStatus    = "Invalid status. Use 'in progress', 'done', or 'not done'"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug        bool
	NoColor      bool
	LoggerType   string
	TasksFile    string
	FileFormat   string
	OutputFormat string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger

	// Outcome is the result of the executed operation.
	Outcome model.Outcome

	repo *lenient.Repository
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)
	app.Flag("file", "Path to the tasks file.").Default(file.DefaultPath).StringVar(&c.TasksFile)
	app.Flag("file-format", "Tasks file encoding, auto selects it from the file extension.").
		Default(string(file.FormatAuto)).
		EnumVar(&c.FileFormat, string(file.FormatAuto), string(file.FormatJSON), string(file.FormatYAML))
	app.Flag("format", "List output format (text, table, json).").
		Default(string(printer.FormatText)).
		EnumVar(&c.OutputFormat, string(printer.FormatText), string(printer.FormatTable), string(printer.FormatJSON))

	return c
}

// newRepository returns the tasks file repository. Load and save failures are
// printed with p and never stop the running operation.
func (r *RootCommand) newRepository(p printer.Printer) (*lenient.Repository, error) {
	fileRepo, err := file.NewRepository(file.RepositoryConfig{
		Path:   r.TasksFile,
		Format: file.Format(r.FileFormat),
		Logger: r.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create file repository: %w", err)
	}

	repo, err := lenient.NewRepository(lenient.RepositoryConfig{
		Repository: fileRepo,
		Reporter: func(perr *model.PersistenceError) {
			_ = p.PrintMessage(fmt.Sprintf("Error %s tasks: %s", perr.Op, perr.Err))
		},
		Logger: r.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create repository: %w", err)
	}
	r.repo = repo

	return repo, nil
}

// succeed prints msg and records the outcome of a finished operation. A load
// or save failure absorbed while running makes it a persistence outcome.
func (r *RootCommand) succeed(p printer.Printer, msg string) error {
	r.Outcome = model.OutcomeSuccess
	if r.repo != nil && len(r.repo.Errors()) > 0 {
		r.Outcome = model.OutcomePersistence
	}

	if msg == "" {
		return nil
	}
	return printMessage(p, msg)
}

// fail prints the message for the domain error an operation ended with and
// records its outcome. Errors that are not domain outcomes are returned.
func (r *RootCommand) fail(p printer.Printer, err error, usage string) error {
	outcome := model.OutcomeOf(err)

	var msg string
	switch outcome {
	case model.OutcomeNotFound:
		msg = MsgTaskNotFound
	case model.OutcomeInvalidStatus:
		msg = MsgInvalidStatus
	case model.OutcomeUsage:
		msg = usage
	default:
		return err
	}

	r.Outcome = outcome
	return printMessage(p, msg)
}

// printMessage prints a message with the text printer.
func printMessage(p printer.Printer, msg string) error {
	if err := p.PrintMessage(msg); err != nil {
		return fmt.Errorf("could not print message: %w", err)
	}
	return nil
}
