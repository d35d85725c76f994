package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/task-tracker/internal/model"
	"github.com/slok/task-tracker/internal/storage/file"
)

const (
	idMilk  = "6f2a8c1e-3b4d-4e5f-8a9b-0c1d2e3f4a5b"
	idBread = "a1b2c3d4-e5f6-4789-abcd-ef0123456789"

	fixtureJSON = `[
  {"id": "6f2a8c1e-3b4d-4e5f-8a9b-0c1d2e3f4a5b", "description": "Buy milk", "status": "not done"},
  {"id": "a1b2c3d4-e5f6-4789-abcd-ef0123456789", "description": "Buy bread", "status": "done"}
]`
)

// runCLI runs the application against a tasks file and returns the stdout
// and the operation outcome.
func runCLI(t *testing.T, tasksFile string, args ...string) (string, model.Outcome, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cliArgs := append([]string{"task-tracker", "--file", tasksFile}, args...)
	outcome, err := run(context.Background(), cliArgs, strings.NewReader(""), &stdout, &stderr)
	return stdout.String(), outcome, err
}

func loadTasks(t *testing.T, path string) []model.Task {
	t.Helper()

	repo, err := file.NewRepository(file.RepositoryConfig{Path: path})
	require.NoError(t, err)
	tasks, err := repo.LoadTasks(context.Background())
	require.NoError(t, err)

	return tasks
}

func TestRun(t *testing.T) {
	tests := map[string]struct {
		fileName     string
		content      *string
		args         []string
		expOut       string
		expOutcome   model.Outcome
		expErr       bool
		expUnchanged bool
		expTasks     []model.Task
	}{
		"Without an operation it should ask for one": {
			args:       nil,
			expOut:     "Please provide an action (add, update, delete, mark, list)\n",
			expOutcome: model.OutcomeUsage,
		},
		"Global flags without an operation should ask for one": {
			args:       []string{"--debug", "--format", "json"},
			expOut:     "Please provide an action (add, update, delete, mark, list)\n",
			expOutcome: model.OutcomeUsage,
		},
		"An unknown operation should show the available ones": {
			args:       []string{"frobnicate", "x"},
			expOut:     "Unknown action. Available actions: add, update, delete, mark, list\n",
			expOutcome: model.OutcomeUnknownOperation,
		},
		"Help should not be an operation": {
			args:       []string{"help", "add"},
			expOut:     "Unknown action. Available actions: add, update, delete, mark, list\n",
			expOutcome: model.OutcomeUnknownOperation,
		},
		"An unknown flag should fail": {
			args:   []string{"--nope", "list"},
			expErr: true,
		},
		"Add without a description should show the usage": {
			args:       []string{"add"},
			expOut:     "Usage: add <task_description>\n",
			expOutcome: model.OutcomeUsage,
		},
		"Update without a description should show the usage": {
			content:      ptr(fixtureJSON),
			args:         []string{"update", idMilk},
			expOut:       "Usage: update <task_id> <new_description>\n",
			expOutcome:   model.OutcomeUsage,
			expUnchanged: true,
		},
		"Delete without an ID should show the usage": {
			args:       []string{"delete"},
			expOut:     "Usage: delete <task_id>\n",
			expOutcome: model.OutcomeUsage,
		},
		"Delete with an empty ID should not find the task": {
			content:      ptr(fixtureJSON),
			args:         []string{"delete", ""},
			expOut:       "Task not found.\n",
			expOutcome:   model.OutcomeNotFound,
			expUnchanged: true,
		},
		"Mark without a status should show the usage": {
			content:      ptr(fixtureJSON),
			args:         []string{"mark", idMilk},
			expOut:       "Usage: mark <task_id> <status>\n",
			expOutcome:   model.OutcomeUsage,
			expUnchanged: true,
		},
		"List on a missing file should print nothing": {
			args:   []string{"list"},
			expOut: "",
		},
		"List should print all the tasks in order": {
			content: ptr(fixtureJSON),
			args:    []string{"list"},
			expOut: "ID: " + idMilk + ", Description: Buy milk, Status: not done\n" +
				"ID: " + idBread + ", Description: Buy bread, Status: done\n",
			expUnchanged: true,
		},
		"List with a status should print only the matching tasks": {
			content:      ptr(fixtureJSON),
			args:         []string{"list", "done"},
			expOut:       "ID: " + idBread + ", Description: Buy bread, Status: done\n",
			expUnchanged: true,
		},
		"List with a multi word status should match it": {
			content:      ptr(fixtureJSON),
			args:         []string{"list", "not", "done"},
			expOut:       "ID: " + idMilk + ", Description: Buy milk, Status: not done\n",
			expUnchanged: true,
		},
		"List with an unknown status should print nothing": {
			content:      ptr(fixtureJSON),
			args:         []string{"list", "blocked"},
			expOut:       "",
			expUnchanged: true,
		},
		"List in JSON format should print a JSON array": {
			content:      ptr(`[{"id": "6f2a8c1e-3b4d-4e5f-8a9b-0c1d2e3f4a5b", "description": "Buy milk", "status": "not done"}]`),
			args:         []string{"--format", "json", "list"},
			expOut:       "[\n  {\n    \"id\": \"" + idMilk + "\",\n    \"description\": \"Buy milk\",\n    \"status\": \"not done\"\n  }\n]\n",
			expUnchanged: true,
		},
		"Update should replace the description": {
			content: ptr(fixtureJSON),
			args:    []string{"update", idBread, "Buy", "rye", "bread"},
			expOut:  "Task updated.\n",
			expTasks: []model.Task{
				{ID: idMilk, Description: "Buy milk", Status: model.TaskStatusNotDone},
				{ID: idBread, Description: "Buy rye bread", Status: model.TaskStatusDone},
			},
		},
		"Update of a missing task should not touch the file": {
			content:      ptr(fixtureJSON),
			args:         []string{"update", "missing", "Something"},
			expOut:       "Task not found.\n",
			expOutcome:   model.OutcomeNotFound,
			expUnchanged: true,
		},
		"Delete should remove the task": {
			content: ptr(fixtureJSON),
			args:    []string{"delete", idMilk},
			expOut:  "Task deleted.\n",
			expTasks: []model.Task{
				{ID: idBread, Description: "Buy bread", Status: model.TaskStatusDone},
			},
		},
		"Delete of a missing task should not touch the file": {
			content:      ptr(fixtureJSON),
			args:         []string{"delete", "missing"},
			expOut:       "Task not found.\n",
			expOutcome:   model.OutcomeNotFound,
			expUnchanged: true,
		},
		"Mark should set the status": {
			content: ptr(fixtureJSON),
			args:    []string{"mark", idMilk, "done"},
			expOut:  "Task marked as done.\n",
			expTasks: []model.Task{
				{ID: idMilk, Description: "Buy milk", Status: model.TaskStatusDone},
				{ID: idBread, Description: "Buy bread", Status: model.TaskStatusDone},
			},
		},
		"Mark should accept a status split in words": {
			content: ptr(fixtureJSON),
			args:    []string{"mark", idBread, "in", "progress"},
			expOut:  "Task marked as in progress.\n",
			expTasks: []model.Task{
				{ID: idMilk, Description: "Buy milk", Status: model.TaskStatusNotDone},
				{ID: idBread, Description: "Buy bread", Status: model.TaskStatusInProgress},
			},
		},
		"Mark with an invalid status should not touch the file": {
			content:      ptr(fixtureJSON),
			args:         []string{"mark", idMilk, "finished"},
			expOut:       "Invalid status. Use 'in progress', 'done', or 'not done'\n",
			expOutcome:   model.OutcomeInvalidStatus,
			expUnchanged: true,
		},
		"Mark of a missing task should not touch the file": {
			content:      ptr(fixtureJSON),
			args:         []string{"mark", "missing", "done"},
			expOut:       "Task not found.\n",
			expOutcome:   model.OutcomeNotFound,
			expUnchanged: true,
		},
		"A corrupt file should be reported and listed as empty": {
			content:      ptr(`{not json`),
			args:         []string{"list"},
			expOut:       "Error loading tasks: ",
			expOutcome:   model.OutcomePersistence,
			expUnchanged: true,
		},
		"A file with an unknown status should be reported": {
			content:      ptr(`[{"id": "x", "description": "a", "status": "blocked"}]`),
			args:         []string{"list"},
			expOut:       "Error loading tasks: ",
			expOutcome:   model.OutcomePersistence,
			expUnchanged: true,
		},
		"A YAML file should be used by its extension": {
			fileName: "tasks.yaml",
			content:  ptr("- id: " + idMilk + "\n  description: Buy milk\n  status: not done\n"),
			args:     []string{"mark", idMilk, "in progress"},
			expOut:   "Task marked as in progress.\n",
			expTasks: []model.Task{
				{ID: idMilk, Description: "Buy milk", Status: model.TaskStatusInProgress},
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			fileName := test.fileName
			if fileName == "" {
				fileName = "tasks.json"
			}
			path := filepath.Join(t.TempDir(), fileName)
			if test.content != nil {
				require.NoError(os.WriteFile(path, []byte(*test.content), 0o644))
			}

			out, outcome, err := runCLI(t, path, test.args...)

			if test.expErr {
				assert.Error(err)
				return
			}
			require.NoError(err)

			expOutcome := test.expOutcome
			if expOutcome == "" {
				expOutcome = model.OutcomeSuccess
			}
			assert.Equal(expOutcome, outcome)

			if strings.HasPrefix(test.expOut, "Error loading tasks: ") {
				assert.True(strings.HasPrefix(out, test.expOut), "unexpected output: %q", out)
				assert.Equal(1, strings.Count(out, "\n"))
			} else {
				assert.Equal(test.expOut, out)
			}

			switch {
			case test.expUnchanged:
				got, err := os.ReadFile(path)
				require.NoError(err)
				assert.Equal(*test.content, string(got))
			case test.expTasks != nil:
				assert.Equal(test.expTasks, loadTasks(t, path))
			case test.content == nil:
				_, err := os.Stat(path)
				assert.ErrorIs(err, os.ErrNotExist)
			}
		})
	}
}

func TestRunAddAndList(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "tasks.json")

	out, _, err := runCLI(t, path, "add", "Buy", "milk")
	require.NoError(err)
	assert.Equal("Task added: Buy milk\n", out)

	out, _, err = runCLI(t, path, "add", "Pay", "rent", "-x", "--now")
	require.NoError(err)
	assert.Equal("Task added: Pay rent -x --now\n", out)

	tasks := loadTasks(t, path)
	require.Len(tasks, 2)
	assert.NotEqual(tasks[0].ID, tasks[1].ID)
	assert.Equal(model.TaskStatusNotDone, tasks[0].Status)

	out, _, err = runCLI(t, path, "mark", tasks[0].ID, "done")
	require.NoError(err)
	assert.Equal("Task marked as done.\n", out)

	out, _, err = runCLI(t, path, "list", "done")
	require.NoError(err)
	assert.Equal("ID: "+tasks[0].ID+", Description: Buy milk, Status: done\n", out)

	out, _, err = runCLI(t, path, "list")
	require.NoError(err)
	exp := "ID: " + tasks[0].ID + ", Description: Buy milk, Status: done\n" +
		"ID: " + tasks[1].ID + ", Description: Pay rent -x --now, Status: not done\n"
	assert.Equal(exp, out)
}

func TestRunAddOverCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	out, outcome, err := runCLI(t, path, "add", "Start over")
	require.NoError(t, err)
	assert.Equal(t, model.OutcomePersistence, outcome)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Error loading tasks: "))
	assert.Equal(t, "Task added: Start over", lines[1])

	tasks := loadTasks(t, path)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Start over", tasks[0].Description)
}

func TestRunSaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "tasks.json")

	out, outcome, err := runCLI(t, path, "add", "Lost")
	require.NoError(t, err)
	assert.Equal(t, model.OutcomePersistence, outcome)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Error saving tasks: "))
	assert.Equal(t, "Task added: Lost", lines[1])
}

func TestRunOperationArguments(t *testing.T) {
	tests := map[string]struct {
		args    []string
		expOut  string
		expDesc string
	}{
		"A description starting with a dash should be kept": {
			args:    []string{"add", "-5", "push-ups"},
			expOut:  "Task added: -5 push-ups\n",
			expDesc: "-5 push-ups",
		},
		"Global flag names after the operation should be description words": {
			args:    []string{"add", "--debug", "logging"},
			expOut:  "Task added: --debug logging\n",
			expDesc: "--debug logging",
		},
		"A file flag after the operation should not select another file": {
			args:    []string{"add", "--file", "x.json", "note"},
			expOut:  "Task added: --file x.json note\n",
			expDesc: "--file x.json note",
		},
		"Global flags before the operation should apply": {
			args:    []string{"--debug", "--logger", "json", "add", "Walk"},
			expOut:  "Task added: Walk\n",
			expDesc: "Walk",
		},
		"A double dash should separate global flags from the operation": {
			args:    []string{"--", "add", "Read"},
			expOut:  "Task added: Read\n",
			expDesc: "Read",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			path := filepath.Join(t.TempDir(), "tasks.json")

			out, outcome, err := runCLI(t, path, test.args...)
			require.NoError(err)
			assert.Equal(test.expOut, out)
			assert.Equal(model.OutcomeSuccess, outcome)

			tasks := loadTasks(t, path)
			require.Len(tasks, 1)
			assert.Equal(test.expDesc, tasks[0].Description)
		})
	}
}

func TestRunDebugLogsToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "tasks.json")

	args := []string{"task-tracker", "--debug", "--no-color", "--file", path, "add", "Walk"}
	err := Run(context.Background(), args, strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "Task added: Walk\n", stdout.String())
	assert.Contains(t, stderr.String(), "Debug level is enabled")
}

func TestRunHelpAndVersion(t *testing.T) {
	tests := map[string]struct {
		args   []string
		expOut string
	}{
		"The help flag should print the usage": {
			args:   []string{"--help"},
			expOut: "usage: task-tracker",
		},
		"The help flag with an operation should print its usage": {
			args:   []string{"--help", "add"},
			expOut: "usage: task-tracker add",
		},
		"The version flag should print the version": {
			args:   []string{"--version"},
			expOut: Version,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")

			out, outcome, err := runCLI(t, path, test.args...)
			require.NoError(t, err)
			assert.Contains(t, out, test.expOut)
			assert.Equal(t, model.OutcomeSuccess, outcome)

			_, err = os.Stat(path)
			assert.ErrorIs(t, err, os.ErrNotExist)
		})
	}
}

func ptr[T any](v T) *T { return &v }
