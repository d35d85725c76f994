package printer

import (
	"fmt"
	"io"

	"github.com/slok/task-tracker/internal/model"
)

// TextPrinter prints tasks one per line.
type TextPrinter struct {
	writer io.Writer
}

// NewTextPrinter creates a new text printer.
func NewTextPrinter(w io.Writer) *TextPrinter {
	return &TextPrinter{writer: w}
}

// PrintList prints each task as `ID: <id>, Description: <desc>, Status: <status>`.
func (t *TextPrinter) PrintList(tasks []model.Task) error {
	for _, task := range tasks {
		if _, err := fmt.Fprintf(t.writer, "ID: %s, Description: %s, Status: %s\n", task.ID, task.Description, task.Status); err != nil {
			return err
		}
	}
	return nil
}

// PrintMessage prints a simple text message.
func (t *TextPrinter) PrintMessage(msg string) error {
	_, err := fmt.Fprintln(t.writer, msg)
	return err
}
