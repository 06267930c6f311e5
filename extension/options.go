// options.go implements the declarative options model for extensions.
//
// A Schema is declared alongside registration, before any activation, and
// freezes once the registry accepts it: every option an extension reads at
// runtime must have been declared up front, so unknown keys supplied at
// activation fail loudly instead of vanishing into a map.
//
// Resolution is last-writer-wins across three layers:
// schema default < explicit overrides < configuration block.

package extension

import (
	"fmt"
	"sort"
)

// OptionSpec describes one declared option: its key, default value, and a
// human-readable description surfaced by the extensions command.
type OptionSpec struct {
	Key         string
	Default     any
	Description string
}

// Schema is the ordered set of options an extension declares. Build one
// with NewSchema().Option(...) chains at init time; it freezes when the
// extension registers.
type Schema struct {
	specs  []OptionSpec
	byKey  map[string]int
	frozen bool
}

// NewSchema returns an empty, unfrozen schema.
func NewSchema() *Schema {
	return &Schema{byKey: make(map[string]int)}
}

// Declare adds an option to the schema. Fails with ErrDuplicateOption if the
// key is already declared and ErrSchemaFrozen once the schema is in use.
func (s *Schema) Declare(key string, def any, description string) error {
	if s.frozen {
		return fmt.Errorf("declare %q: %w", key, ErrSchemaFrozen)
	}
	if _, exists := s.byKey[key]; exists {
		return fmt.Errorf("declare %q: %w", key, ErrDuplicateOption)
	}
	s.byKey[key] = len(s.specs)
	s.specs = append(s.specs, OptionSpec{Key: key, Default: def, Description: description})
	return nil
}

// Option is the chainable form of Declare for init()-time schema literals.
// It panics on duplicate keys: a duplicate declaration is a programmer
// error in the extension, not a runtime condition.
func (s *Schema) Option(key string, def any, description string) *Schema {
	if err := s.Declare(key, def, description); err != nil {
		panic(err)
	}
	return s
}

// Specs returns the declared options in declaration order.
func (s *Schema) Specs() []OptionSpec {
	out := make([]OptionSpec, len(s.specs))
	copy(out, s.specs)
	return out
}

// Keys returns the declared keys in declaration order.
func (s *Schema) Keys() []string {
	out := make([]string, len(s.specs))
	for i, spec := range s.specs {
		out[i] = spec.Key
	}
	return out
}

// freeze marks the schema immutable. Called by the registry on Register.
func (s *Schema) freeze() { s.frozen = true }

// ConfigBlock is an optional configuration function run as the last step of
// option resolution. It receives the instance's options with write access
// limited to declared keys; its writes win over explicit overrides.
type ConfigBlock func(o *Options) error

// Resolve produces the option values for one activation: defaults first,
// then overrides, then the config block. Unknown keys anywhere fail with
// ErrUnknownOption.
func (s *Schema) Resolve(overrides map[string]any, block ConfigBlock) (*Options, error) {
	s.freeze()

	o := &Options{schema: s, values: make(map[string]any, len(s.specs))}
	for _, spec := range s.specs {
		o.values[spec.Key] = spec.Default
	}

	// Sorted iteration keeps the error deterministic when several unknown
	// keys are supplied at once.
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := o.Set(k, overrides[k]); err != nil {
			return nil, err
		}
	}

	if block != nil {
		if err := block(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Options holds the resolved option values for one extension instance.
// Each instance owns its Options exclusively; no two activations share one.
type Options struct {
	schema *Schema
	values map[string]any
}

// Get returns the value for a declared key, or ErrUnknownOption.
func (o *Options) Get(key string) (any, error) {
	if _, ok := o.schema.byKey[key]; !ok {
		return nil, fmt.Errorf("option %q: %w", key, ErrUnknownOption)
	}
	return o.values[key], nil
}

// Set assigns a declared key, or fails with ErrUnknownOption. Config blocks
// use this as their write surface.
func (o *Options) Set(key string, value any) error {
	if _, ok := o.schema.byKey[key]; !ok {
		return fmt.Errorf("option %q: %w", key, ErrUnknownOption)
	}
	o.values[key] = value
	return nil
}

// mustGet backs the typed accessors. Reading an undeclared key is a bug in
// the extension itself, so it panics rather than returning an error the
// extension would have to thread through every handler.
func (o *Options) mustGet(key string) any {
	v, err := o.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the value of a declared key as a string, or "" when the
// value has another type. Panics on undeclared keys.
func (o *Options) String(key string) string {
	s, _ := o.mustGet(key).(string)
	return s
}

// Bool returns the value of a declared key as a bool. Panics on undeclared keys.
func (o *Options) Bool(key string) bool {
	b, _ := o.mustGet(key).(bool)
	return b
}

// Int returns the value of a declared key as an int, converting the int64
// and float64 representations YAML decoding produces. Panics on undeclared keys.
func (o *Options) Int(key string) int {
	switch v := o.mustGet(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Strings returns the value of a declared key as a string slice, converting
// the []any representation YAML decoding produces. Panics on undeclared keys.
func (o *Options) Strings(key string) []string {
	switch v := o.mustGet(key).(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
