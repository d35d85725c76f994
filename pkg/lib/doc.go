// Package lib provides a Go SDK for managing task tracker tasks programmatically.
//
// It works on the same tasks file as the task-tracker CLI, so programs can
// add, update, delete, mark and list tasks without shelling out.
//
// # Quick Start
//
//	client, err := lib.New(ctx, lib.Config{FilePath: "tasks.json"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	task, err := client.AddTask(ctx, "Buy milk")
//	client.MarkTask(ctx, task.ID, lib.TaskStatusInProgress)
//	client.UpdateTask(ctx, task.ID, "Buy oat milk")
//	done, _ := client.ListTasks(ctx, &lib.ListTasksOpts{Status: lib.TaskStatusDone})
//	client.DeleteTask(ctx, task.ID)
//
// # Storage
//
// Tasks are kept in a single JSON (default) or YAML file that is fully
// rewritten on every change. Set [Config].InMemory to keep them in memory.
//
// # Error Handling
//
// All methods return errors that can be inspected with [errors.Is]:
//
//   - [ErrNotFound]: No task with the requested ID.
//   - [ErrNotValid]: Invalid input (e.g. an unknown file format).
//   - [ErrInvalidStatus]: The status is not one of the task statuses. It also matches [ErrNotValid].
//   - [ErrPersistence]: The tasks file could not be read or written.
//
// Unlike the CLI, the SDK never ignores a broken tasks file: the failure is returned.
package lib
