package recommend

import (
	"sort"

	"github.com/helmcode/schema-report/pkg/model"
)

// adviceByPattern holds the canned, context-free advice for each pattern.
var adviceByPattern = map[model.PatternTag]string{
	model.PatternMissingProperties: "Audit the schema's required properties and ensure producers always emit them; missing fields block downstream processing.",
	model.PatternTypeConflicts:     "Check the source data types at the affected paths; multiple locations disagree with the schema's declared types.",
	model.PatternRangeViolations:   "Review numeric and length constraints; values are falling outside the configured bounds.",
	model.PatternFormatIssues:      "Normalize string formats (emails, dates, URIs) in the source data before validation.",
}

// priority is the fixed tie-break order between patterns.
var priority = map[model.PatternTag]int{
	model.PatternMissingProperties: 0,
	model.PatternTypeConflicts:     1,
	model.PatternRangeViolations:   2,
	model.PatternFormatIssues:      3,
}

// Recommend turns detected patterns into ordered advice strings.
// Patterns tied to a critical severity occurrence surface first; ties
// break by the fixed pattern priority order. Absent patterns produce no
// line, and an empty pattern set produces an empty list.
func Recommend(tags []model.PatternTag, severities map[model.Severity]int) []string {
	ordered := make([]model.PatternTag, len(tags))
	copy(ordered, tags)

	hasCritical := severities[model.SeverityCritical] > 0
	sort.SliceStable(ordered, func(i, j int) bool {
		ci, cj := criticalLinked(ordered[i], hasCritical), criticalLinked(ordered[j], hasCritical)
		if ci != cj {
			return ci
		}
		return priority[ordered[i]] < priority[ordered[j]]
	})

	recommendations := []string{}
	for _, tag := range ordered {
		if advice, ok := adviceByPattern[tag]; ok {
			recommendations = append(recommendations, advice)
		}
	}
	return recommendations
}

// criticalLinked reports whether a pattern is backed by a critical
// severity occurrence. Only required-keyword failures score critical,
// and those are exactly what triggers missing_properties.
func criticalLinked(tag model.PatternTag, hasCritical bool) bool {
	return hasCritical && tag == model.PatternMissingProperties
}
