package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/task-tracker/internal/app/mark"
	"github.com/slok/task-tracker/internal/model"
	"github.com/slok/task-tracker/internal/printer"
)

const markUsage = "Usage: mark <task_id> <status>"

type MarkCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	args []string
}

// NewMarkCommand returns the mark command.
func NewMarkCommand(rootCmd *RootCommand, app *kingpin.Application) *MarkCommand {
	c := &MarkCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("mark", "Set the status of a task (in progress, done, not done).")
	c.Cmd.Arg("id-and-status", "Task ID followed by the status words.").StringsVar(&c.args)

	return c
}

func (c MarkCommand) Name() string { return c.Cmd.FullCommand() }

func (c MarkCommand) Run(ctx context.Context) error {
	p := printer.NewTextPrinter(c.rootCmd.Stdout)
	if len(c.args) < 2 {
		return c.rootCmd.fail(p, fmt.Errorf("id and status are required: %w", model.ErrUsage), markUsage)
	}

	repo, err := c.rootCmd.newRepository(p)
	if err != nil {
		return err
	}

	svc, err := mark.NewService(mark.ServiceConfig{
		Repository: repo,
		Logger:     c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, mark.Request{
		ID:     c.args[0],
		Status: strings.Join(c.args[1:], " "),
	})
	if err != nil {
		return c.rootCmd.fail(p, err, markUsage)
	}

	return c.rootCmd.succeed(p, fmt.Sprintf("Task marked as %s.", task.Status))
}
