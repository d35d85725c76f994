// Package integration has the helpers to run the task-tracker binary end to end.
package integration

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"
)

// Config holds integration test configuration loaded from environment variables.
type Config struct {
	Binary string
}

func (c *Config) defaults() error {
	if c.Binary == "" {
		return fmt.Errorf("binary is required (TASK_TRACKER_INTEGRATION_BINARY)")
	}

	if _, err := os.Stat(c.Binary); err != nil {
		return fmt.Errorf("binary not found at %q (run 'go build -o %s ./cmd/task-tracker' first): %w", c.Binary, c.Binary, err)
	}

	return nil
}

// NewConfig loads integration test configuration from environment variables.
// If the activation env var is not set, the test is skipped.
func NewConfig(t *testing.T) Config {
	t.Helper()

	const (
		envActivation = "TASK_TRACKER_INTEGRATION"
		envBinary     = "TASK_TRACKER_INTEGRATION_BINARY"
	)

	if os.Getenv(envActivation) != "true" {
		t.Skipf("Skipping integration test: %s is not set to 'true'", envActivation)
	}

	c := Config{
		Binary: os.Getenv(envBinary),
	}

	if err := c.defaults(); err != nil {
		t.Skipf("Skipping due to invalid config: %s", err)
	}

	return c
}

// Result is the outcome of one binary execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunCLI runs the binary inside dir with the received arguments.
func RunCLI(t *testing.T, config Config, dir string, args ...string) Result {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, config.Binary, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := Result{}
	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		t.Fatalf("could not run %s: %s", config.Binary, err)
	}

	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	return res
}
