package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	oklogrun "github.com/oklog/run"
	"github.com/sirupsen/logrus"

	"github.com/slok/task-tracker/cmd/task-tracker/commands"
	"github.com/slok/task-tracker/internal/log"
	loglogrus "github.com/slok/task-tracker/internal/log/logrus"
	"github.com/slok/task-tracker/internal/model"
)

const (
	// Version is the application version (set via ldflags).
	Version = "dev"
)

// valueFlags are the global flags that take their value from the next argument.
var valueFlags = map[string]bool{
	"--file":        true,
	"--file-format": true,
	"--logger":      true,
	"--format":      true,
}

// Run runs the main application.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	_, err := run(ctx, args, stdin, stdout, stderr)
	return err
}

// run runs the main application and returns the outcome of the executed operation.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (model.Outcome, error) {
	app := kingpin.New("task-tracker", "Command line task tracker.")
	app.Version(Version)
	app.UsageWriter(stdout)
	// Help and version must not exit the process, Run returns instead.
	terminated := false
	app.Terminate(func(int) { terminated = true })
	rootCmd := commands.NewRootCommand(app)

	// Setup commands (registers flags).
	addCmd := commands.NewAddCommand(rootCmd, app)
	updateCmd := commands.NewUpdateCommand(rootCmd, app)
	deleteCmd := commands.NewDeleteCommand(rootCmd, app)
	markCmd := commands.NewMarkCommand(rootCmd, app)
	listCmd := commands.NewListCommand(rootCmd, app)

	cmds := map[string]commands.Command{
		addCmd.Name():    addCmd,
		updateCmd.Name(): updateCmd,
		deleteCmd.Name(): deleteCmd,
		markCmd.Name():   markCmd,
		listCmd.Name():   listCmd,
	}

	// Everything after the operation name belongs to the operation, never to kingpin.
	globalArgs, op, opArgs := splitOperation(args[1:])
	switch {
	case op == "" && !infoRequested(globalArgs):
		return report(stdout, fmt.Errorf("no operation: %w", model.ErrUsage), commands.MsgMissingOperation)
	case op != "" && cmds[op] == nil:
		return report(stdout, fmt.Errorf("%q: %w", op, model.ErrUnknownOperation), commands.MsgUnknownOperation)
	}

	parseArgs := globalArgs
	if op != "" {
		parseArgs = append(append(parseArgs, op, "--"), opArgs...)
	}

	// Parse command.
	cmdName, err := app.Parse(parseArgs)
	if terminated {
		return model.OutcomeSuccess, nil
	}
	if err != nil {
		return model.OutcomeUnknown, fmt.Errorf("invalid command configuration: %w", err)
	}

	// Set standard input/output.
	rootCmd.Stdin = stdin
	rootCmd.Stdout = stdout
	rootCmd.Stderr = stderr

	// Set logger.
	rootCmd.Logger = getLogger(ctx, *rootCmd)

	var g oklogrun.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				rootCmd.Logger.Debugf("Termination signal received")
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// Execute command.
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				err := cmds[cmdName].Run(ctx)
				if err != nil {
					return fmt.Errorf("%q command failed: %w", cmdName, err)
				}
				return nil
			},
			func(_ error) {
				cancel()
			},
		)
	}

	if err := g.Run(); err != nil {
		return model.OutcomeOf(err), err
	}

	return rootCmd.Outcome, nil
}

// splitOperation splits the arguments in the global flags, the operation name
// and the operation arguments.
func splitOperation(args []string) (global []string, op string, opArgs []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			if i+1 < len(args) {
				return global, args[i+1], args[i+2:]
			}
			return global, "", nil
		case strings.HasPrefix(arg, "-"):
			global = append(global, arg)
			if valueFlags[arg] && i+1 < len(args) {
				i++
				global = append(global, args[i])
			}
		default:
			return global, arg, args[i+1:]
		}
	}

	return global, "", nil
}

// infoRequested returns true when the global flags ask for help or the version.
func infoRequested(global []string) bool {
	for _, arg := range global {
		if strings.HasPrefix(arg, "--help") || arg == "--version" {
			return true
		}
	}
	return false
}

// report prints the message of an operation that could not be dispatched.
func report(w io.Writer, err error, msg string) (model.Outcome, error) {
	if _, perr := fmt.Fprintln(w, msg); perr != nil {
		return model.OutcomeUnknown, perr
	}
	return model.OutcomeOf(err), nil
}

// getLogger returns the application logger.
func getLogger(ctx context.Context, config commands.RootCommand) log.Logger {
	// Logs are only wanted for debugging, command output is what users read.
	if !config.Debug {
		return log.Noop
	}

	logrusLog := logrus.New()
	logrusLog.Out = config.Stderr // By default logger goes to stderr (so it can split stdout prints).
	logrusLogEntry := logrus.NewEntry(logrusLog)
	logrusLogEntry.Logger.SetLevel(logrus.DebugLevel)

	// Log format.
	switch config.LoggerType {
	case commands.LoggerTypeDefault:
		logrusLogEntry.Logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !config.NoColor,
			DisableColors: config.NoColor,
		})
	case commands.LoggerTypeJSON:
		logrusLogEntry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger := loglogrus.NewLogrus(logrusLogEntry).WithValues(log.Kv{
		"version": Version,
	})

	logger.Debugf("Debug level is enabled")

	return logger
}

func main() {
	ctx := context.Background()
	err := Run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
