package model

// ValidationError is one schema-validation failure as emitted by the
// validation engine. Field names on the wire are fixed; the engine
// guarantees well-formed pointer strings and a non-empty keyword.
type ValidationError struct {
	InstancePath  string   `json:"instance_path" yaml:"instance_path"`
	SchemaPath    string   `json:"schema_path" yaml:"schema_path"`
	Keyword       string   `json:"keyword" yaml:"keyword"`
	Message       string   `json:"message" yaml:"message"`
	InstanceValue any      `json:"instance_value,omitempty" yaml:"instance_value,omitempty"`
	SchemaValue   any      `json:"schema_value,omitempty" yaml:"schema_value,omitempty"`
	Suggestions   []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// Category is the coarse classification of a failure's nature.
type Category string

const (
	CategoryTypeMismatch        Category = "type_mismatch"
	CategoryConstraintViolation Category = "constraint_violation"
	CategoryStructural          Category = "structural"
	CategoryFormat              Category = "format"
	CategoryCustom              Category = "custom"
)

// Categories lists every category in canonical order.
func Categories() []Category {
	return []Category{
		CategoryTypeMismatch,
		CategoryConstraintViolation,
		CategoryStructural,
		CategoryFormat,
		CategoryCustom,
	}
}

// Severity is the triage ranking, ordered critical > high > medium > low.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Severities lists every level from most to least severe.
func Severities() []Severity {
	return []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}
}

// PatternTag marks a recurring structural signature across a whole error set.
type PatternTag string

const (
	PatternMissingProperties PatternTag = "missing_properties"
	PatternTypeConflicts     PatternTag = "type_conflicts"
	PatternRangeViolations   PatternTag = "range_violations"
	PatternFormatIssues      PatternTag = "format_issues"
)

// PathCount pairs an instance path with its occurrence count.
type PathCount struct {
	Path  string `json:"path" yaml:"path"`
	Count int    `json:"count" yaml:"count"`
}

// Summary is the derived analysis of one error set. It is never persisted.
type Summary struct {
	TotalErrors     int              `json:"total_errors" yaml:"total_errors"`
	Categories      map[Category]int `json:"categories" yaml:"categories"`
	Severities      map[Severity]int `json:"severities" yaml:"severities"`
	Patterns        []PatternTag     `json:"patterns" yaml:"patterns"`
	MostCommonPaths []PathCount      `json:"most_common_paths" yaml:"most_common_paths"`
	Recommendations []string         `json:"recommendations" yaml:"recommendations"`
}
