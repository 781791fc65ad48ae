package linter

import (
	"strings"
	"testing"
)

func TestValidateOptionsEmptySchemaAcceptsAnything(t *testing.T) {
	if err := ValidateOptions("x", "", map[string]any{"anything": 42}); err != nil {
		t.Errorf("empty schema must accept anything, got %v", err)
	}
	if err := ValidateOptions("x", "  \n", nil); err != nil {
		t.Errorf("blank schema must accept anything, got %v", err)
	}
}

func TestValidateOptionsAccepts(t *testing.T) {
	schema := `close({present?: bool})`

	if err := ValidateOptions("final_newline", schema, map[string]any{"present": true}); err != nil {
		t.Errorf("valid options rejected: %v", err)
	}
	if err := ValidateOptions("final_newline", schema, nil); err != nil {
		t.Errorf("nil options rejected: %v", err)
	}
	if err := ValidateOptions("final_newline", schema, map[string]any{}); err != nil {
		t.Errorf("empty options rejected: %v", err)
	}
}

func TestValidateOptionsRejectsUnknownKey(t *testing.T) {
	schema := `close({present?: bool})`

	err := ValidateOptions("final_newline", schema, map[string]any{"presence": true})
	if err == nil {
		t.Fatal("unknown key must be rejected")
	}
	if !strings.Contains(err.Error(), "final_newline") {
		t.Errorf("error should name the linter: %v", err)
	}
}

func TestValidateOptionsRejectsWrongType(t *testing.T) {
	schema := `close({max_consecutive?: int & >=1})`

	if err := ValidateOptions("extra_newline", schema, map[string]any{"max_consecutive": "two"}); err == nil {
		t.Error("wrong value type must be rejected")
	}
	if err := ValidateOptions("extra_newline", schema, map[string]any{"max_consecutive": 0}); err == nil {
		t.Error("out-of-range value must be rejected")
	}
	if err := ValidateOptions("extra_newline", schema, map[string]any{"max_consecutive": 2}); err != nil {
		t.Errorf("in-range value rejected: %v", err)
	}
}

func TestValidateOptionsRejectsValueOutsideEnum(t *testing.T) {
	schema := `close({enforced_style?: "-" | "="})`

	if err := ValidateOptions("right_trim", schema, map[string]any{"enforced_style": "="}); err != nil {
		t.Errorf("allowed value rejected: %v", err)
	}
	if err := ValidateOptions("right_trim", schema, map[string]any{"enforced_style": "~"}); err == nil {
		t.Error("disallowed value must be rejected")
	}
}
