package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Linters map[string]Linter `yaml:"linters"`
	Exclude []string          `yaml:"exclude"`
	Glob    string            `yaml:"glob"`
}

// Linter is a YAML union: a bare bool enables or disables the linter, a
// mapping carries the enabled flag, an exclude list, a severity override,
// and linter-specific options.
type Linter struct {
	Enabled  *bool
	Exclude  []string
	Severity string
	Options  map[string]any
}

// UnmarshalYAML implements custom YAML unmarshalling for Linter.
// It handles three forms:
//   - false -> Enabled=false
//   - true  -> Enabled=true
//   - {key: val, ...} -> Enabled=true unless "enabled" says otherwise;
//     "exclude" and "severity" are lifted out, the rest become Options.
func (l *Linter) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var b bool
		if err := value.Decode(&b); err == nil {
			l.Enabled = &b
			return nil
		}
	}

	if value.Kind == yaml.MappingNode {
		var m map[string]any
		if err := value.Decode(&m); err != nil {
			return fmt.Errorf("invalid linter config: %w", err)
		}
		m = stringifyMap(m)

		enabled := true
		if v, ok := m["enabled"]; ok {
			b, ok := v.(bool)
			if !ok {
				return fmt.Errorf("linter config: enabled must be a bool, got %T", v)
			}
			enabled = b
			delete(m, "enabled")
		}
		l.Enabled = &enabled

		if v, ok := m["exclude"]; ok {
			patterns, err := toStringSlice(v)
			if err != nil {
				return fmt.Errorf("linter config: exclude: %w", err)
			}
			l.Exclude = patterns
			delete(m, "exclude")
		}

		if v, ok := m["severity"]; ok {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("linter config: severity must be a string, got %T", v)
			}
			l.Severity = s
			delete(m, "severity")
		}

		if len(m) > 0 {
			l.Options = m
		}
		return nil
	}

	return fmt.Errorf("linter config must be a bool or a mapping, got %v", value.Kind)
}

// IsEnabled resolves the tri-state enabled flag; an unset flag means the
// linter is disabled.
func (l Linter) IsEnabled() bool {
	return l.Enabled != nil && *l.Enabled
}

// stringifyMap normalizes nested YAML mappings so that every key is a
// string, recursively. Nested values decoded into any can surface
// map[any]any even when the top level decodes as map[string]any.
func stringifyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = stringifyValue(v)
	}
	return out
}

func stringifyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return stringifyMap(val)
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[fmt.Sprintf("%v", k)] = stringifyValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = stringifyValue(inner)
		}
		return out
	default:
		return v
	}
}

func toStringSlice(v any) ([]string, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("must be a list of strings, got %T", v)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("must be a list of strings, got %T element", item)
		}
		out = append(out, s)
	}
	return out, nil
}
