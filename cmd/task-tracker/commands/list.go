package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/task-tracker/internal/app/list"
	"github.com/slok/task-tracker/internal/printer"
)

type ListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	filter []string
}

// NewListCommand returns the list command.
func NewListCommand(rootCmd *RootCommand, app *kingpin.Application) *ListCommand {
	c := &ListCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("list", "List tasks, optionally only the ones with a status.")
	c.Cmd.Arg("status", "Status filter, words are joined with spaces.").StringsVar(&c.filter)

	return c
}

func (c ListCommand) Name() string { return c.Cmd.FullCommand() }

func (c ListCommand) Run(ctx context.Context) error {
	p, err := printer.New(printer.Format(c.rootCmd.OutputFormat), c.rootCmd.Stdout)
	if err != nil {
		return err
	}

	// Storage errors are always plain messages, whatever the list format is.
	repo, err := c.rootCmd.newRepository(printer.NewTextPrinter(c.rootCmd.Stdout))
	if err != nil {
		return err
	}

	svc, err := list.NewService(list.ServiceConfig{
		Repository: repo,
		Logger:     c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	tasks, err := svc.Run(ctx, list.Request{
		StatusFilter: strings.Join(c.filter, " "),
	})
	if err != nil {
		return fmt.Errorf("could not list tasks: %w", err)
	}

	if err := p.PrintList(tasks); err != nil {
		return fmt.Errorf("could not print list: %w", err)
	}

	return c.rootCmd.succeed(p, "")
}
