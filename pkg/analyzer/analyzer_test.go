package analyzer

import (
	"testing"

	"github.com/helmcode/schema-report/pkg/model"
	"github.com/stretchr/testify/require"
)

// The schema requires name and age >= 18; the input was {"age": 15}.
func missingNameUnderage() []model.ValidationError {
	return []model.ValidationError{
		{
			InstancePath: "",
			SchemaPath:   "/required",
			Keyword:      "required",
			Message:      `"name" is a required property`,
		},
		{
			InstancePath: "/age",
			SchemaPath:   "/properties/age/minimum",
			Keyword:      "minimum",
			Message:      "15 is less than the minimum of 18",
			SchemaValue:  float64(18),
		},
	}
}

func TestAnalyzeScenario(t *testing.T) {
	t.Parallel()

	summary := Analyze(missingNameUnderage())

	require.Equal(t, 2, summary.TotalErrors)
	require.Equal(t, 1, summary.Categories[model.CategoryStructural])
	require.Equal(t, 1, summary.Categories[model.CategoryConstraintViolation])
	require.Equal(t, 1, summary.Severities[model.SeverityCritical])
	require.Equal(t, 1, summary.Severities[model.SeverityMedium])
	require.Contains(t, summary.Patterns, model.PatternMissingProperties)
	require.Contains(t, summary.Patterns, model.PatternRangeViolations)
	require.NotEmpty(t, summary.Recommendations)
}

func TestAnalyzeHistogramsSumToTotal(t *testing.T) {
	t.Parallel()

	records := []model.ValidationError{
		{InstancePath: "/a", Keyword: "type", Message: "bad type"},
		{InstancePath: "/b", Keyword: "minimum", Message: "too small"},
		{InstancePath: "/b", Keyword: "multipleOf", Message: "not a multiple"},
		{InstancePath: "/c", Keyword: "format", Message: "bad format"},
		{InstancePath: "", Keyword: "x-custom", Message: "vendor rule"},
	}
	summary := Analyze(records)

	require.Equal(t, len(records), summary.TotalErrors)

	categoryTotal := 0
	for _, n := range summary.Categories {
		categoryTotal += n
	}
	require.Equal(t, summary.TotalErrors, categoryTotal)

	severityTotal := 0
	for _, n := range summary.Severities {
		severityTotal += n
	}
	require.Equal(t, summary.TotalErrors, severityTotal)
}

func TestAnalyzeMostCommonPaths(t *testing.T) {
	t.Parallel()

	records := []model.ValidationError{
		{InstancePath: "/a", Keyword: "type", Message: "x"},
		{InstancePath: "/b", Keyword: "minimum", Message: "x"},
		{InstancePath: "/b", Keyword: "maximum", Message: "x"},
		{InstancePath: "/c", Keyword: "format", Message: "x"},
	}
	summary := Analyze(records)

	require.Equal(t, []model.PathCount{
		{Path: "/b", Count: 2},
		// Ties keep first-seen order.
		{Path: "/a", Count: 1},
		{Path: "/c", Count: 1},
	}, summary.MostCommonPaths)
}

func TestAnalyzeEmpty(t *testing.T) {
	t.Parallel()

	summary := Analyze(nil)

	require.Equal(t, 0, summary.TotalErrors)
	require.Empty(t, summary.Categories)
	require.Empty(t, summary.Severities)
	require.Empty(t, summary.Patterns)
	require.Empty(t, summary.MostCommonPaths)
	require.Empty(t, summary.Recommendations)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	digest := Summarize(missingNameUnderage())
	require.Contains(t, digest, "2 validation errors")
	require.Contains(t, digest, "1 structural")
	require.Contains(t, digest, "1 constraint violation")
	require.Contains(t, digest, "1 critical")
	require.Contains(t, digest, "1 medium")
	require.Contains(t, digest, "Top recommendation:")
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	require.Equal(t, "No validation errors found.", Summarize(nil))
}
