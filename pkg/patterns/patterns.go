package patterns

import (
	"github.com/helmcode/schema-report/pkg/classifier"
	"github.com/helmcode/schema-report/pkg/model"
)

// rangeKeywords trigger the range_violations pattern.
var rangeKeywords = map[string]bool{
	"minimum":          true,
	"maximum":          true,
	"exclusiveMinimum": true,
	"exclusiveMaximum": true,
	"minLength":        true,
	"maxLength":        true,
	"minItems":         true,
	"maxItems":         true,
}

// Detect scans a whole error set for recurring structural signatures.
// Tags are returned in fixed priority order, so the result is the same
// for any permutation of the input and re-running is idempotent.
func Detect(records []model.ValidationError) []model.PatternTag {
	var (
		hasRequired   bool
		hasRange      bool
		hasFormat     bool
		mismatchPaths = map[string]bool{}
	)

	for _, e := range records {
		if e.Keyword == "required" {
			hasRequired = true
		}
		if rangeKeywords[e.Keyword] {
			hasRange = true
		}
		if e.Keyword == "format" {
			hasFormat = true
		}
		if classifier.Classify(e) == model.CategoryTypeMismatch {
			mismatchPaths[e.InstancePath] = true
		}
	}

	tags := []model.PatternTag{}
	if hasRequired {
		tags = append(tags, model.PatternMissingProperties)
	}
	// A single isolated type error is not a conflict; the pattern
	// requires a plurality of affected locations.
	if len(mismatchPaths) >= 2 {
		tags = append(tags, model.PatternTypeConflicts)
	}
	if hasRange {
		tags = append(tags, model.PatternRangeViolations)
	}
	if hasFormat {
		tags = append(tags, model.PatternFormatIssues)
	}
	return tags
}
