package printer

import (
	"fmt"
	"io"

	"github.com/slok/task-tracker/internal/model"
)

// Printer knows how to print task information in different formats.
type Printer interface {
	PrintList(tasks []model.Task) error
	PrintMessage(msg string) error
}

// Format is the printer output format.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// New returns the printer for a format.
func New(f Format, w io.Writer) (Printer, error) {
	switch f {
	case FormatText, "":
		return NewTextPrinter(w), nil
	case FormatTable:
		return NewTablePrinter(w), nil
	case FormatJSON:
		return NewJSONPrinter(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q", f)
}
