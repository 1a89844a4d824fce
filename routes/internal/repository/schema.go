package repository

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const routesSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["flight_id", "date", "time", "origin", "destination", "capacity"],
		"properties": {
			"flight_id": {"type": "string", "minLength": 1},
			"date": {"type": "string"},
			"time": {"type": "string"},
			"origin": {"type": "string"},
			"destination": {"type": "string"},
			"capacity": {"type": "integer", "minimum": 0}
		}
	}
}`

var routesSchemaLoader = gojsonschema.NewStringLoader(routesSchema)

// SchemaError reports a routes file that does not match routesSchema.
type SchemaError struct {
	Errors []gojsonschema.ResultError
}

func (e *SchemaError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = fmt.Sprintf("%v", err)
	}
	return "invalid_routes_file: " + strings.Join(msgs, "; ")
}

func validateRoutesDocument(data []byte) error {
	result, err := gojsonschema.Validate(routesSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}
	if !result.Valid() {
		return &SchemaError{Errors: result.Errors()}
	}
	return nil
}
