package formatter

import (
	"fmt"
	"strings"

	"github.com/helmcode/schema-report/pkg/classifier"
	"github.com/helmcode/schema-report/pkg/model"
)

// renderLLM produces AI-prompt-oriented output. Prose mode builds a
// natural-language briefing; structured mode emits fixed key=value
// tokens that downstream prompt templates can splice in verbatim.
func renderLLM(records []model.ValidationError, opts Options) string {
	if opts.Structured {
		return renderLLMStructured(records, opts)
	}
	return renderLLMProse(records, opts)
}

func renderLLMProse(records []model.ValidationError, opts Options) string {
	if len(records) == 0 {
		return "The document passed JSON Schema validation with no errors.\n"
	}

	kept, omitted := truncate(records, opts.MaxErrors)

	var b strings.Builder
	b.WriteString("You are a JSON Schema expert reviewing validation failures.\n\n")
	fmt.Fprintf(&b, "The document failed validation with %d error(s):\n\n", len(records))

	for i, e := range kept {
		fmt.Fprintf(&b, "%d. At %s: %s (keyword: %s)\n", i+1, location(e), e.Message, e.Keyword)
		if opts.schemaContext() {
			fmt.Fprintf(&b, "   Schema location: %s\n", e.SchemaPath)
		}
		if suggestions := classifier.Suggestions(e); len(suggestions) > 0 {
			fmt.Fprintf(&b, "   Suggested fix: %s\n", suggestions[0])
		}
	}
	if omitted > 0 {
		fmt.Fprintf(&b, "\n... and %d more error(s) omitted.\n", omitted)
	}

	b.WriteString("\nExplain the most likely root cause and list concrete fixes, starting with the most severe errors.\n")
	return b.String()
}

func renderLLMStructured(records []model.ValidationError, opts Options) string {
	var b strings.Builder
	if len(records) == 0 {
		b.WriteString("validation_status=passed\n")
		b.WriteString("error_count=0\n")
		return b.String()
	}

	kept, omitted := truncate(records, opts.MaxErrors)

	b.WriteString("validation_status=failed\n")
	fmt.Fprintf(&b, "error_count=%d\n", len(records))
	for i, e := range kept {
		category := classifier.Classify(e)
		fmt.Fprintf(&b, "error_%d_path=%s\n", i+1, e.InstancePath)
		fmt.Fprintf(&b, "error_%d_keyword=%s\n", i+1, e.Keyword)
		fmt.Fprintf(&b, "error_%d_severity=%s\n", i+1, classifier.SeverityFor(e, category))
		if opts.schemaContext() {
			fmt.Fprintf(&b, "error_%d_schema_path=%s\n", i+1, e.SchemaPath)
		}
		fmt.Fprintf(&b, "error_%d_message=%s\n", i+1, strings.ReplaceAll(e.Message, "\n", " "))
	}
	if omitted > 0 {
		fmt.Fprintf(&b, "omitted_errors=%d\n", omitted)
	}
	return b.String()
}
