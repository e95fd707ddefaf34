package classifier

import (
	"github.com/helmcode/schema-report/pkg/model"
)

// categoryByKeyword is the fixed classification table. Keywords missing
// from it (vendor extensions included) classify as custom.
var categoryByKeyword = map[string]model.Category{
	"type":  model.CategoryTypeMismatch,
	"const": model.CategoryTypeMismatch,
	"enum":  model.CategoryTypeMismatch,

	"minimum":          model.CategoryConstraintViolation,
	"maximum":          model.CategoryConstraintViolation,
	"exclusiveMinimum": model.CategoryConstraintViolation,
	"exclusiveMaximum": model.CategoryConstraintViolation,
	"multipleOf":       model.CategoryConstraintViolation,
	"minLength":        model.CategoryConstraintViolation,
	"maxLength":        model.CategoryConstraintViolation,
	"minItems":         model.CategoryConstraintViolation,
	"maxItems":         model.CategoryConstraintViolation,
	"uniqueItems":      model.CategoryConstraintViolation,
	"pattern":          model.CategoryConstraintViolation,

	"required":             model.CategoryStructural,
	"additionalProperties": model.CategoryStructural,
	"properties":           model.CategoryStructural,
	"dependentRequired":    model.CategoryStructural,
	"prefixItems":          model.CategoryStructural,

	"format": model.CategoryFormat,
}

// Classify maps one error to its category. Total and deterministic:
// every keyword yields exactly one category.
func Classify(e model.ValidationError) model.Category {
	if cat, ok := categoryByKeyword[e.Keyword]; ok {
		return cat
	}
	return model.CategoryCustom
}

// SeverityFor scores one error given its category.
//
// Missing required properties block downstream processing entirely, so
// required scores critical. Other structural failures (unexpected or
// misplaced properties) score high: the structure is wrong but the data
// is present. Format failures are often cosmetic, so they score low,
// and unknown custom keywords default to the cautious middle tier.
func SeverityFor(e model.ValidationError, category model.Category) model.Severity {
	switch category {
	case model.CategoryStructural:
		if e.Keyword == "required" {
			return model.SeverityCritical
		}
		return model.SeverityHigh
	case model.CategoryTypeMismatch:
		return model.SeverityHigh
	case model.CategoryConstraintViolation:
		return model.SeverityMedium
	case model.CategoryFormat:
		return model.SeverityLow
	default:
		return model.SeverityMedium
	}
}
