package parser

import (
	"encoding/json"
	"fmt"
)

import "github.com/helmcode/schema-report/pkg/model"

// envelope matches the validation engine's report object shape.
type envelope struct {
	Errors []model.ValidationError `json:"errors"`
}

// ParseRecords decodes an error-record list. The validation engine
// emits either a bare JSON array of records or a report object with an
// "errors" member; both are accepted.
func ParseRecords(data []byte) ([]model.ValidationError, error) {
	var records []model.ValidationError
	if err := json.Unmarshal(data, &records); err != nil {
		var env envelope
		if envErr := json.Unmarshal(data, &env); envErr != nil || env.Errors == nil {
			return nil, fmt.Errorf("parse error records: %w", err)
		}
		records = env.Errors
	}

	for i, e := range records {
		if e.Keyword == "" {
			return nil, fmt.Errorf("parse error records: record %d has an empty keyword", i)
		}
	}
	return records, nil
}
