package formatter

import (
	"fmt"
	"math"
)

// Options configures the renderers. Each renderer reads only the fields
// it documents; the zero value selects every default.
type Options struct {
	// Color enables ANSI color markers in the human format.
	Color bool
	// Pretty enables indented whitespace in the json format. Both modes
	// parse back to structurally identical data.
	Pretty bool
	// Compact suppresses border and decoration rows in the table format.
	Compact bool
	// IncludeTOC emits one table-of-contents entry per rendered error in
	// the markdown format.
	IncludeTOC bool
	// HeadingLevel sets the markdown section heading depth, 1 through 6.
	// Zero selects the default of 2.
	HeadingLevel int
	// Structured switches the llm format from prose to key=value tokens.
	Structured bool
	// IncludeSchemaContext toggles schema_path output in the llm format.
	// Unset (nil) defaults to true.
	IncludeSchemaContext *bool
	// MaxErrors renders only the first N records plus an omitted count.
	// Zero means unbounded.
	MaxErrors int
}

func (o Options) schemaContext() bool {
	if o.IncludeSchemaContext == nil {
		return true
	}
	return *o.IncludeSchemaContext
}

func (o Options) headingLevel() int {
	if o.HeadingLevel == 0 {
		return 2
	}
	return o.HeadingLevel
}

func (o Options) validate() error {
	if o.MaxErrors < 0 {
		return &InvalidOptionError{Option: "max_errors", Reason: "must be a non-negative integer"}
	}
	if o.HeadingLevel < 0 || o.HeadingLevel > 6 {
		return &InvalidOptionError{Option: "heading_level", Reason: "must be between 1 and 6"}
	}
	return nil
}

// ParseOptions builds Options from a loosely typed map, the shape the
// validation engine's callers pass around. Unrecognized keys are ignored
// for forward compatibility; recognized keys are type-checked.
func ParseOptions(raw map[string]any) (Options, error) {
	var opts Options
	for key, value := range raw {
		switch key {
		case "color":
			b, ok := value.(bool)
			if !ok {
				return Options{}, typeMismatch(key, "boolean", value)
			}
			opts.Color = b
		case "pretty":
			b, ok := value.(bool)
			if !ok {
				return Options{}, typeMismatch(key, "boolean", value)
			}
			opts.Pretty = b
		case "compact":
			b, ok := value.(bool)
			if !ok {
				return Options{}, typeMismatch(key, "boolean", value)
			}
			opts.Compact = b
		case "include_toc":
			b, ok := value.(bool)
			if !ok {
				return Options{}, typeMismatch(key, "boolean", value)
			}
			opts.IncludeTOC = b
		case "heading_level":
			n, ok := intValue(value)
			if !ok {
				return Options{}, typeMismatch(key, "integer", value)
			}
			opts.HeadingLevel = n
		case "structured":
			b, ok := value.(bool)
			if !ok {
				return Options{}, typeMismatch(key, "boolean", value)
			}
			opts.Structured = b
		case "include_schema_context":
			b, ok := value.(bool)
			if !ok {
				return Options{}, typeMismatch(key, "boolean", value)
			}
			opts.IncludeSchemaContext = &b
		case "max_errors":
			n, ok := intValue(value)
			if !ok {
				return Options{}, typeMismatch(key, "integer", value)
			}
			opts.MaxErrors = n
		}
	}
	if err := opts.validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func typeMismatch(key, want string, got any) error {
	return &InvalidOptionError{Option: key, Reason: fmt.Sprintf("expected %s, got %T", want, got)}
}

// intValue accepts the integer representations JSON and YAML decoders
// produce, including whole floats from encoding/json.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
