package config

// Merge merges override on top of base and returns a new Config; neither
// input is modified. Scalars and option lists in the override win; nested
// option mappings merge key-wise, recursively. Exclude lists (global and
// per-linter) union by concatenation, so excludes accumulate across
// configuration layers instead of being replaced.
func Merge(base, override *Config) *Config {
	merged := base.clone()
	merged.MergeInto(override)
	return merged
}

// MergeInto merges override into c in place. The resulting tree is identical
// to the one Merge returns. MergeInto must only be used before a run begins;
// a resolved configuration is immutable.
func (c *Config) MergeInto(override *Config) {
	if override == nil {
		return
	}

	if c.Linters == nil && len(override.Linters) > 0 {
		c.Linters = make(map[string]Linter, len(override.Linters))
	}
	for name, over := range override.Linters {
		c.Linters[name] = mergeLinter(c.Linters[name], over)
	}

	c.Exclude = append(c.Exclude, override.Exclude...)

	if override.Glob != "" {
		c.Glob = override.Glob
	}
}

// mergeLinter merges one per-linter config on top of another.
func mergeLinter(base, override Linter) Linter {
	merged := Linter{
		Enabled:  base.Enabled,
		Exclude:  append(append([]string(nil), base.Exclude...), override.Exclude...),
		Severity: base.Severity,
		Options:  mergeOptions(base.Options, override.Options),
	}
	if override.Enabled != nil {
		merged.Enabled = override.Enabled
	}
	if override.Severity != "" {
		merged.Severity = override.Severity
	}
	return merged
}

// mergeOptions deep-merges option mappings: the override wins on scalar and
// list values, nested mappings merge recursively.
func mergeOptions(base, override map[string]any) map[string]any {
	if base == nil && override == nil {
		return nil
	}
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		if overMap, ok := v.(map[string]any); ok {
			if baseMap, ok := out[k].(map[string]any); ok {
				out[k] = mergeOptions(baseMap, overMap)
				continue
			}
		}
		out[k] = v
	}
	return out
}

// clone returns a deep copy of the config.
func (c *Config) clone() *Config {
	out := &Config{
		Exclude: append([]string(nil), c.Exclude...),
		Glob:    c.Glob,
	}
	if c.Linters != nil {
		out.Linters = make(map[string]Linter, len(c.Linters))
		for name, l := range c.Linters {
			out.Linters[name] = cloneLinter(l)
		}
	}
	return out
}

func cloneLinter(l Linter) Linter {
	out := Linter{
		Exclude:  append([]string(nil), l.Exclude...),
		Severity: l.Severity,
	}
	if l.Enabled != nil {
		enabled := *l.Enabled
		out.Enabled = &enabled
	}
	if l.Options != nil {
		out.Options = cloneOptions(l.Options)
	}
	return out
}

func cloneOptions(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			out[k] = cloneOptions(nested)
			continue
		}
		if list, ok := v.([]any); ok {
			out[k] = append([]any(nil), list...)
			continue
		}
		out[k] = v
	}
	return out
}
