package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/slok/task-tracker/internal/model"
)

// TablePrinter prints task information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintList prints tasks in a table with the ID, DESCRIPTION and STATUS columns.
func (t *TablePrinter) PrintList(tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "ID\tDESCRIPTION\tSTATUS"); err != nil {
		return err
	}
	for _, task := range tasks {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", task.ID, task.Description, task.Status); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	_, err := fmt.Fprintln(t.writer, msg)
	return err
}
