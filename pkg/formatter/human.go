package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/helmcode/schema-report/pkg/classifier"
	"github.com/helmcode/schema-report/pkg/model"
)

// renderHuman produces one block per error: location, keyword, severity,
// message, and remediation suggestions.
func renderHuman(records []model.ValidationError, opts Options) string {
	p := newPalette(opts.Color)

	if len(records) == 0 {
		return p.good("✓") + " No validation errors found\n"
	}

	kept, omitted := truncate(records, opts.MaxErrors)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d validation error(s) found\n\n", p.bad("✗"), len(records))

	for i, e := range kept {
		category := classifier.Classify(e)
		severity := classifier.SeverityFor(e, category)

		fmt.Fprintf(&b, "%d. %s  [%s]  %s\n",
			i+1, p.path(location(e)), e.Keyword, p.severity(severity))
		fmt.Fprintf(&b, "   %s\n", e.Message)
		if suggestions := classifier.Suggestions(e); len(suggestions) > 0 {
			b.WriteString("   Suggestions:\n")
			for _, s := range suggestions {
				fmt.Fprintf(&b, "     - %s\n", s)
			}
		}
		b.WriteString("\n")
	}

	if omitted > 0 {
		fmt.Fprintf(&b, "... and %d more error(s) omitted\n", omitted)
	}
	return b.String()
}

// palette colorizes the human rendering. Colors are forced on rather
// than TTY-detected because the renderer returns a string and never
// sees the destination.
type palette struct {
	enabled bool
}

func newPalette(enabled bool) palette {
	return palette{enabled: enabled}
}

func (p palette) path(s string) string {
	return p.sprint(color.New(color.FgCyan), s)
}

func (p palette) good(s string) string {
	return p.sprint(color.New(color.FgGreen), s)
}

func (p palette) bad(s string) string {
	return p.sprint(color.New(color.FgRed, color.Bold), s)
}

func (p palette) severity(level model.Severity) string {
	label := strings.ToUpper(string(level))
	switch level {
	case model.SeverityCritical:
		return p.sprint(color.New(color.FgRed, color.Bold), label)
	case model.SeverityHigh:
		return p.sprint(color.New(color.FgRed), label)
	case model.SeverityMedium:
		return p.sprint(color.New(color.FgYellow), label)
	case model.SeverityLow:
		return p.sprint(color.New(color.FgGreen), label)
	default:
		return p.sprint(color.New(color.FgWhite), label)
	}
}

func (p palette) sprint(c *color.Color, s string) string {
	if !p.enabled {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}
