package formatter

import (
	"encoding/json"
	"testing"

	"github.com/helmcode/schema-report/pkg/model"
	"github.com/stretchr/testify/require"
)

func decodeReport(t *testing.T, out string) jsonReport {
	t.Helper()
	var report jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	return report
}

func TestRenderJSONRoundTrip(t *testing.T) {
	t.Parallel()

	records := sampleRecords(4)
	out, err := Render(records, FormatJSON, Options{})
	require.NoError(t, err)

	report := decodeReport(t, out)
	require.False(t, report.Valid)
	require.Equal(t, 4, report.ErrorCount)
	require.Len(t, report.Errors, 4)
	for i, e := range report.Errors {
		require.Equal(t, records[i].InstancePath, e.InstancePath)
		require.Equal(t, records[i].SchemaPath, e.SchemaPath)
		require.Equal(t, records[i].Keyword, e.Keyword)
		require.Equal(t, records[i].Message, e.Message)
	}
}

func TestRenderJSONPrettyParsesIdentically(t *testing.T) {
	t.Parallel()

	records := sampleRecords(3)
	compact, err := Render(records, FormatJSON, Options{})
	require.NoError(t, err)
	pretty, err := Render(records, FormatJSON, Options{Pretty: true})
	require.NoError(t, err)

	require.NotEqual(t, compact, pretty)
	require.Equal(t, decodeReport(t, compact), decodeReport(t, pretty))
}

func TestRenderJSONTruncation(t *testing.T) {
	t.Parallel()

	out, err := Render(sampleRecords(10), FormatJSON, Options{MaxErrors: 4})
	require.NoError(t, err)

	report := decodeReport(t, out)
	require.Equal(t, 10, report.ErrorCount)
	require.Len(t, report.Errors, 4)
	require.Equal(t, 6, report.OmittedErrors)
}

func TestRenderJSONEmpty(t *testing.T) {
	t.Parallel()

	out, err := Render(nil, FormatJSON, Options{})
	require.NoError(t, err)

	report := decodeReport(t, out)
	require.True(t, report.Valid)
	require.Equal(t, 0, report.ErrorCount)
	require.NotNil(t, report.Errors)
	require.Empty(t, report.Errors)
}

func TestRenderJSONStableFieldNames(t *testing.T) {
	t.Parallel()

	records := []model.ValidationError{{
		InstancePath: "/age",
		SchemaPath:   "/properties/age/minimum",
		Keyword:      "minimum",
		Message:      "too small",
		SchemaValue:  float64(18),
	}}
	out, err := Render(records, FormatJSON, Options{})
	require.NoError(t, err)

	require.Contains(t, out, `"instance_path"`)
	require.Contains(t, out, `"schema_path"`)
	require.Contains(t, out, `"keyword"`)
	require.Contains(t, out, `"message"`)
	require.Contains(t, out, `"schema_value"`)
}
