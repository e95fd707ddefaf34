package formatter

import (
	"fmt"

	"github.com/helmcode/schema-report/pkg/model"
)

// Format selects one of the five supported renderings.
type Format string

const (
	FormatHuman    Format = "human"
	FormatJSON     Format = "json"
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatLLM      Format = "llm"
)

// AvailableFormats returns the fixed list of supported format tags.
func AvailableFormats() []Format {
	return []Format{FormatHuman, FormatJSON, FormatTable, FormatMarkdown, FormatLLM}
}

// UnsupportedFormatError reports a format tag outside the supported set.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported output format %q (supported: human, json, table, markdown, llm)", e.Format)
}

// InvalidOptionError reports a recognized option carrying a value of the
// wrong type or out of range.
type InvalidOptionError struct {
	Option string
	Reason string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option %q: %s", e.Option, e.Reason)
}

// Render produces the chosen rendering of the error list. Each renderer
// is a pure function of (records, opts): no state survives the call and
// concurrent use needs no synchronization.
func Render(records []model.ValidationError, format Format, opts Options) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	switch format {
	case FormatHuman:
		return renderHuman(records, opts), nil
	case FormatJSON:
		return renderJSON(records, opts)
	case FormatTable:
		return renderTable(records, opts), nil
	case FormatMarkdown:
		return renderMarkdown(records, opts), nil
	case FormatLLM:
		return renderLLM(records, opts), nil
	default:
		return "", &UnsupportedFormatError{Format: string(format)}
	}
}

// truncate applies the max_errors option: the first max records in input
// order, plus how many were left out. max <= 0 means unbounded.
func truncate(records []model.ValidationError, max int) ([]model.ValidationError, int) {
	if max <= 0 || len(records) <= max {
		return records, 0
	}
	return records[:max], len(records) - max
}

// location renders an instance path for display, naming the document
// root explicitly since its pointer is the empty string.
func location(e model.ValidationError) string {
	if e.InstancePath == "" {
		return "(root)"
	}
	return e.InstancePath
}
