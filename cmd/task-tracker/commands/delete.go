package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/task-tracker/internal/app/remove"
	"github.com/slok/task-tracker/internal/model"
	"github.com/slok/task-tracker/internal/printer"
)

const deleteUsage = "Usage: delete <task_id>"

type DeleteCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	args []string
}

// NewDeleteCommand returns the delete command.
func NewDeleteCommand(rootCmd *RootCommand, app *kingpin.Application) *DeleteCommand {
	c := &DeleteCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("delete", "Delete a task.")
	c.Cmd.Arg("id", "Task ID.").StringsVar(&c.args)

	return c
}

func (c DeleteCommand) Name() string { return c.Cmd.FullCommand() }

func (c DeleteCommand) Run(ctx context.Context) error {
	p := printer.NewTextPrinter(c.rootCmd.Stdout)
	// Extra words after the ID are ignored.
	if len(c.args) < 1 {
		return c.rootCmd.fail(p, fmt.Errorf("id is missing: %w", model.ErrUsage), deleteUsage)
	}

	repo, err := c.rootCmd.newRepository(p)
	if err != nil {
		return err
	}

	svc, err := remove.NewService(remove.ServiceConfig{
		Repository: repo,
		Logger:     c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	_, err = svc.Run(ctx, remove.Request{ID: c.args[0]})
	if err != nil {
		return c.rootCmd.fail(p, err, deleteUsage)
	}

	return c.rootCmd.succeed(p, "Task deleted.")
}
