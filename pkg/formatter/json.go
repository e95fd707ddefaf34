package formatter

import (
	"encoding/json"
	"fmt"
)

import "github.com/helmcode/schema-report/pkg/model"

// jsonReport is the stable machine-readable envelope. The errors member
// carries the record objects with the engine's wire field names; the
// envelope is what carries the omitted count when max_errors truncates.
type jsonReport struct {
	Valid         bool                    `json:"valid"`
	ErrorCount    int                     `json:"error_count"`
	Errors        []model.ValidationError `json:"errors"`
	OmittedErrors int                     `json:"omitted_errors,omitempty"`
}

// renderJSON serializes the (possibly truncated) record list. Pretty
// controls whitespace only; both modes parse back to identical data.
func renderJSON(records []model.ValidationError, opts Options) (string, error) {
	kept, omitted := truncate(records, opts.MaxErrors)
	if kept == nil {
		kept = []model.ValidationError{}
	}

	report := jsonReport{
		Valid:         len(records) == 0,
		ErrorCount:    len(records),
		Errors:        kept,
		OmittedErrors: omitted,
	}

	var (
		out []byte
		err error
	)
	if opts.Pretty {
		out, err = json.MarshalIndent(report, "", "  ")
	} else {
		out, err = json.Marshal(report)
	}
	if err != nil {
		return "", fmt.Errorf("marshal error report: %w", err)
	}
	return string(out), nil
}
