package file

import (
	_ "embed"
	"errors"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tasks.schema.json
var tasksSchemaJSON string

var tasksSchema = jsonschema.MustCompileString("tasks.schema.json", tasksSchemaJSON)

// validateDocument checks a decoded tasks document against the tasks schema.
func validateDocument(doc any) error {
	err := tasksSchema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}

	// Report the deepest cause, it's the one pointing at the offending value.
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}

	loc := ve.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return fmt.Errorf("invalid tasks document at %s: %s", loc, ve.Message)
}
