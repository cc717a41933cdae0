package board

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

// ErrSchema is returned when a board document does not have the expected shape.
var ErrSchema = errors.New("board does not match schema")

var schemaLoader = gojsonschema.NewBytesLoader(schemaJSON)

// validateShape checks keys and value types only. Scores, ranks and
// ordering are content and are never second-guessed.
func validateShape(doc any) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(errs, ", "))
}
