package formatter

import (
	"fmt"
	"strings"

	"github.com/helmcode/schema-report/pkg/classifier"
	"github.com/helmcode/schema-report/pkg/model"
)

// renderMarkdown produces one heading-delimited section per error, with
// an optional table of contents linking to each rendered section.
func renderMarkdown(records []model.ValidationError, opts Options) string {
	if len(records) == 0 {
		return "No validation errors found.\n"
	}

	kept, omitted := truncate(records, opts.MaxErrors)
	heading := strings.Repeat("#", opts.headingLevel())

	titles := make([]string, len(kept))
	for i, e := range kept {
		titles[i] = fmt.Sprintf("Error %d: %s", i+1, location(e))
	}

	var b strings.Builder
	if opts.IncludeTOC {
		for _, title := range titles {
			fmt.Fprintf(&b, "- [%s](#%s)\n", title, anchor(title))
		}
		b.WriteString("\n")
	}

	for i, e := range kept {
		category := classifier.Classify(e)
		fmt.Fprintf(&b, "%s %s\n\n", heading, titles[i])
		fmt.Fprintf(&b, "- **Keyword:** `%s`\n", e.Keyword)
		fmt.Fprintf(&b, "- **Category:** %s\n", category)
		fmt.Fprintf(&b, "- **Severity:** %s\n", classifier.SeverityFor(e, category))
		fmt.Fprintf(&b, "- **Schema path:** `%s`\n", e.SchemaPath)
		fmt.Fprintf(&b, "\n%s\n", e.Message)
		if suggestions := classifier.Suggestions(e); len(suggestions) > 0 {
			b.WriteString("\nSuggestions:\n\n")
			for _, s := range suggestions {
				fmt.Fprintf(&b, "- %s\n", s)
			}
		}
		b.WriteString("\n")
	}

	if omitted > 0 {
		fmt.Fprintf(&b, "_... and %d more error(s) omitted_\n", omitted)
	}
	return b.String()
}

// anchor derives a GitHub-style fragment link from a section title.
func anchor(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			b.WriteRune('-')
		}
	}
	return b.String()
}
