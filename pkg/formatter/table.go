package formatter

import (
	"fmt"
	"strings"

	"github.com/helmcode/schema-report/pkg/classifier"
	"github.com/helmcode/schema-report/pkg/model"
)

const (
	tableMaxPathWidth    = 40
	tableMaxMessageWidth = 60
)

// renderTable produces a fixed-width grid with path, keyword, severity
// and message columns. Compact mode drops every border and decoration
// row, so its line count is always strictly below the bordered grid for
// the same input.
func renderTable(records []model.ValidationError, opts Options) string {
	kept, omitted := truncate(records, opts.MaxErrors)

	header := []string{"#", "PATH", "KEYWORD", "SEVERITY", "MESSAGE"}
	rows := make([][]string, 0, len(kept))
	for i, e := range kept {
		category := classifier.Classify(e)
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			clip(location(e), tableMaxPathWidth),
			e.Keyword,
			string(classifier.SeverityFor(e, category)),
			clip(e.Message, tableMaxMessageWidth),
		})
	}

	widths := columnWidths(header, rows)

	var b strings.Builder
	if opts.Compact {
		writeRow(&b, header, widths, "  ", "")
		for _, row := range rows {
			writeRow(&b, row, widths, "  ", "")
		}
	} else {
		border := borderRow(widths)
		b.WriteString(border)
		writeRow(&b, header, widths, " | ", "| ")
		b.WriteString(border)
		for _, row := range rows {
			writeRow(&b, row, widths, " | ", "| ")
		}
		b.WriteString(border)
	}

	if len(records) == 0 {
		b.WriteString("No validation errors found\n")
	}
	if omitted > 0 {
		fmt.Fprintf(&b, "... and %d more error(s) omitted\n", omitted)
	}
	return b.String()
}

func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, cell := range header {
		widths[i] = len(cell)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func writeRow(b *strings.Builder, cells []string, widths []int, sep, prefix string) {
	b.WriteString(prefix)
	for i, cell := range cells {
		padded := cell + strings.Repeat(" ", widths[i]-len([]rune(cell)))
		if i == len(cells)-1 {
			if prefix == "" {
				// No borders: drop trailing padding.
				b.WriteString(cell)
			} else {
				b.WriteString(padded + " |")
			}
		} else {
			b.WriteString(padded + sep)
		}
	}
	b.WriteString("\n")
}

func borderRow(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w+2)
	}
	return "+" + strings.Join(parts, "+") + "+\n"
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
