package linter

import (
	"encoding/json"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ValidateOptions checks linter options against the linter's CUE schema.
// An empty schema accepts anything. A validation failure is a configuration
// error naming the linter and the bad key.
func ValidateOptions(name, schema string, options map[string]any) error {
	if strings.TrimSpace(schema) == "" {
		return nil
	}

	ctx := cuecontext.New()
	schemaVal := ctx.CompileString(schema)
	if err := schemaVal.Err(); err != nil {
		return fmt.Errorf("linter %s has an invalid options schema: %w", name, err)
	}

	if options == nil {
		options = map[string]any{}
	}
	data, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("linter %s: serialize options: %w", name, err)
	}

	dataVal := ctx.CompileBytes(data)
	if err := dataVal.Err(); err != nil {
		return fmt.Errorf("linter %s: compile options: %w", name, err)
	}

	merged := schemaVal.Unify(dataVal)
	if err := merged.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("linter %s: invalid option: %w", name, err)
	}

	return nil
}
