package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/helmcode/schema-report/pkg/classifier"
	"github.com/helmcode/schema-report/pkg/model"
	"github.com/helmcode/schema-report/pkg/patterns"
	"github.com/helmcode/schema-report/pkg/recommend"
)

// Analyze composes classification, severity scoring, pattern detection
// and recommendations into one summary of the error set. An empty input
// yields an empty summary, never an error.
func Analyze(records []model.ValidationError) *model.Summary {
	summary := &model.Summary{
		TotalErrors:     len(records),
		Categories:      map[model.Category]int{},
		Severities:      map[model.Severity]int{},
		Patterns:        []model.PatternTag{},
		MostCommonPaths: []model.PathCount{},
		Recommendations: []string{},
	}

	pathCounts := map[string]int{}
	pathOrder := []string{}
	for _, e := range records {
		category := classifier.Classify(e)
		summary.Categories[category]++
		summary.Severities[classifier.SeverityFor(e, category)]++

		if _, seen := pathCounts[e.InstancePath]; !seen {
			pathOrder = append(pathOrder, e.InstancePath)
		}
		pathCounts[e.InstancePath]++
	}

	// Descending by count; the stable sort keeps first-seen order for ties.
	sort.SliceStable(pathOrder, func(i, j int) bool {
		return pathCounts[pathOrder[i]] > pathCounts[pathOrder[j]]
	})
	for _, path := range pathOrder {
		summary.MostCommonPaths = append(summary.MostCommonPaths, model.PathCount{
			Path:  path,
			Count: pathCounts[path],
		})
	}

	summary.Patterns = patterns.Detect(records)
	summary.Recommendations = recommend.Recommend(summary.Patterns, summary.Severities)
	return summary
}

// Summarize renders the analysis as one natural-language paragraph:
// total count, category breakdown, severity breakdown, and the top
// recommendation.
func Summarize(records []model.ValidationError) string {
	summary := Analyze(records)
	if summary.TotalErrors == 0 {
		return "No validation errors found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %s: %s.", countNoun(summary.TotalErrors, "validation error"),
		categoryBreakdown(summary.Categories))
	fmt.Fprintf(&b, " Severity breakdown: %s.", severityBreakdown(summary.Severities))
	if len(summary.Recommendations) > 0 {
		fmt.Fprintf(&b, " Top recommendation: %s", summary.Recommendations[0])
	}
	return b.String()
}

func categoryBreakdown(counts map[model.Category]int) string {
	parts := []string{}
	for _, cat := range model.Categories() {
		if n := counts[cat]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, categoryLabel(cat)))
		}
	}
	return strings.Join(parts, ", ")
}

func severityBreakdown(counts map[model.Severity]int) string {
	parts := []string{}
	for _, level := range model.Severities() {
		if n := counts[level]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, level))
		}
	}
	return strings.Join(parts, ", ")
}

func categoryLabel(cat model.Category) string {
	switch cat {
	case model.CategoryTypeMismatch:
		return "type mismatch"
	case model.CategoryConstraintViolation:
		return "constraint violation"
	case model.CategoryStructural:
		return "structural"
	case model.CategoryFormat:
		return "format"
	default:
		return "custom"
	}
}

func countNoun(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
