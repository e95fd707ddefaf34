package classifier

import (
	"fmt"
	"strings"

	"github.com/helmcode/schema-report/pkg/model"
)

// Suggestions returns remediation advice for one error. When the
// validation engine already attached suggestions they are returned
// as-is; otherwise advice is generated from the keyword and the
// constraint value.
func Suggestions(e model.ValidationError) []string {
	if len(e.Suggestions) > 0 {
		return e.Suggestions
	}

	switch e.Keyword {
	case "type":
		if expected, ok := e.SchemaValue.(string); ok {
			return []string{fmt.Sprintf("Expected type: %s", expected)}
		}
		return []string{"Check the expected type in the schema"}
	case "minimum":
		return []string{fmt.Sprintf("Value must be >= %v", e.SchemaValue)}
	case "maximum":
		return []string{fmt.Sprintf("Value must be <= %v", e.SchemaValue)}
	case "exclusiveMinimum":
		return []string{fmt.Sprintf("Value must be > %v", e.SchemaValue)}
	case "exclusiveMaximum":
		return []string{fmt.Sprintf("Value must be < %v", e.SchemaValue)}
	case "minLength":
		return []string{fmt.Sprintf("String must be at least %v characters", e.SchemaValue)}
	case "maxLength":
		return []string{fmt.Sprintf("String must be at most %v characters", e.SchemaValue)}
	case "pattern":
		return []string{fmt.Sprintf("String must match pattern: %v", e.SchemaValue)}
	case "format":
		// The format keyword alone does not say which format failed;
		// the message does.
		if strings.Contains(e.Message, "email") {
			return []string{"Use valid email format: user@domain.com"}
		}
		return []string{"Check the format requirements"}
	case "required":
		return []string{"Add the missing required property"}
	case "minItems":
		return []string{fmt.Sprintf("Array must have at least %v items", e.SchemaValue)}
	case "maxItems":
		return []string{fmt.Sprintf("Array must have at most %v items", e.SchemaValue)}
	case "enum":
		return []string{fmt.Sprintf("Value must be one of: %v", e.SchemaValue)}
	case "const":
		return []string{fmt.Sprintf("Value must be exactly: %v", e.SchemaValue)}
	case "uniqueItems":
		return []string{"Array items must be unique"}
	case "multipleOf":
		return []string{fmt.Sprintf("Value must be a multiple of %v", e.SchemaValue)}
	default:
		suggestions := []string{
			fmt.Sprintf("Validation failed for '%s' constraint", e.Keyword),
		}
		if e.SchemaValue != nil {
			suggestions = append(suggestions, fmt.Sprintf("Expected: %v", e.SchemaValue))
		}
		suggestions = append(suggestions, "Check the schema documentation for this constraint")
		return suggestions
	}
}
