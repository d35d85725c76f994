package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/task-tracker/internal/app/update"
	"github.com/slok/task-tracker/internal/model"
	"github.com/slok/task-tracker/internal/printer"
)

const updateUsage = "Usage: update <task_id> <new_description>"

type UpdateCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	args []string
}

// NewUpdateCommand returns the update command.
func NewUpdateCommand(rootCmd *RootCommand, app *kingpin.Application) *UpdateCommand {
	c := &UpdateCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("update", "Replace the description of a task.")
	c.Cmd.Arg("id-and-description", "Task ID followed by the new description words.").StringsVar(&c.args)

	return c
}

func (c UpdateCommand) Name() string { return c.Cmd.FullCommand() }

func (c UpdateCommand) Run(ctx context.Context) error {
	p := printer.NewTextPrinter(c.rootCmd.Stdout)
	if len(c.args) < 2 {
		return c.rootCmd.fail(p, fmt.Errorf("id and description are required: %w", model.ErrUsage), updateUsage)
	}

	repo, err := c.rootCmd.newRepository(p)
	if err != nil {
		return err
	}

	svc, err := update.NewService(update.ServiceConfig{
		Repository: repo,
		Logger:     c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	_, err = svc.Run(ctx, update.Request{
		ID:          c.args[0],
		Description: strings.Join(c.args[1:], " "),
	})
	if err != nil {
		return c.rootCmd.fail(p, err, updateUsage)
	}

	return c.rootCmd.succeed(p, "Task updated.")
}
