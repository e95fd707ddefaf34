package formatter

import (
	"strings"
	"testing"

	"github.com/helmcode/schema-report/pkg/model"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdownSections(t *testing.T) {
	t.Parallel()

	out, err := Render(sampleRecords(2), FormatMarkdown, Options{})
	require.NoError(t, err)
	require.Contains(t, out, "## Error 1: /items/0")
	require.Contains(t, out, "## Error 2: /items/1")
	require.Contains(t, out, "**Keyword:** `required`")
	require.Contains(t, out, "**Severity:** critical")
}

func TestRenderMarkdownHeadingLevel(t *testing.T) {
	t.Parallel()

	out, err := Render(sampleRecords(1), FormatMarkdown, Options{HeadingLevel: 4})
	require.NoError(t, err)
	require.Contains(t, out, "#### Error 1:")
	require.NotContains(t, out, "##### ")
}

func TestRenderMarkdownTOCEntriesMatchRenderedErrors(t *testing.T) {
	t.Parallel()

	out, err := Render(sampleRecords(10), FormatMarkdown, Options{IncludeTOC: true, MaxErrors: 3})
	require.NoError(t, err)

	require.Equal(t, 3, strings.Count(out, "- [Error "), "want exactly one TOC entry per rendered error")
	require.Equal(t, 3, strings.Count(out, "## Error "))
	require.Contains(t, out, "_... and 7 more error(s) omitted_")
}

func TestRenderMarkdownTOCAnchors(t *testing.T) {
	t.Parallel()

	records := []model.ValidationError{{
		InstancePath: "/user/age",
		SchemaPath:   "/properties/user/properties/age/minimum",
		Keyword:      "minimum",
		Message:      "too small",
	}}
	out, err := Render(records, FormatMarkdown, Options{IncludeTOC: true})
	require.NoError(t, err)
	require.Contains(t, out, "- [Error 1: /user/age](#error-1-userage)")
	require.Contains(t, out, "## Error 1: /user/age")
}

func TestRenderMarkdownEmpty(t *testing.T) {
	t.Parallel()

	out, err := Render(nil, FormatMarkdown, Options{IncludeTOC: true})
	require.NoError(t, err)
	require.Equal(t, "No validation errors found.\n", out)
}
