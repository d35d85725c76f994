package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/task-tracker/internal/app/add"
	"github.com/slok/task-tracker/internal/model"
	"github.com/slok/task-tracker/internal/printer"
)

const addUsage = "Usage: add <task_description>"

type AddCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	words []string
}

// NewAddCommand returns the add command.
func NewAddCommand(rootCmd *RootCommand, app *kingpin.Application) *AddCommand {
	c := &AddCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("add", "Add a new task.")
	c.Cmd.Arg("description", "Task description, words are joined with spaces.").StringsVar(&c.words)

	return c
}

func (c AddCommand) Name() string { return c.Cmd.FullCommand() }

func (c AddCommand) Run(ctx context.Context) error {
	p := printer.NewTextPrinter(c.rootCmd.Stdout)
	if len(c.words) == 0 {
		return c.rootCmd.fail(p, fmt.Errorf("description is missing: %w", model.ErrUsage), addUsage)
	}

	repo, err := c.rootCmd.newRepository(p)
	if err != nil {
		return err
	}

	svc, err := add.NewService(add.ServiceConfig{
		Repository: repo,
		Logger:     c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, add.Request{
		Description: strings.Join(c.words, " "),
	})
	if err != nil {
		return c.rootCmd.fail(p, err, addUsage)
	}

	return c.rootCmd.succeed(p, fmt.Sprintf("Task added: %s", task.Description))
}
