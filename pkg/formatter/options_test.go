package formatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	t.Parallel()

	t.Run("recognized keys", func(t *testing.T) {
		t.Parallel()
		opts, err := ParseOptions(map[string]any{
			"color":                  true,
			"pretty":                 true,
			"compact":                true,
			"include_toc":            true,
			"heading_level":          3,
			"structured":             true,
			"include_schema_context": false,
			"max_errors":             10,
		})
		require.NoError(t, err)
		require.True(t, opts.Color)
		require.True(t, opts.Pretty)
		require.True(t, opts.Compact)
		require.True(t, opts.IncludeTOC)
		require.Equal(t, 3, opts.HeadingLevel)
		require.True(t, opts.Structured)
		require.False(t, opts.schemaContext())
		require.Equal(t, 10, opts.MaxErrors)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		opts, err := ParseOptions(map[string]any{})
		require.NoError(t, err)
		require.False(t, opts.Color)
		require.False(t, opts.Pretty)
		require.Equal(t, 2, opts.headingLevel())
		require.True(t, opts.schemaContext())
		require.Equal(t, 0, opts.MaxErrors)
	})

	t.Run("unrecognized keys are ignored", func(t *testing.T) {
		t.Parallel()
		opts, err := ParseOptions(map[string]any{
			"future_option": "whatever",
			"max_errors":    5,
		})
		require.NoError(t, err)
		require.Equal(t, 5, opts.MaxErrors)
	})

	t.Run("whole floats from encoding/json decode as integers", func(t *testing.T) {
		t.Parallel()
		opts, err := ParseOptions(map[string]any{"max_errors": float64(7)})
		require.NoError(t, err)
		require.Equal(t, 7, opts.MaxErrors)
	})

	cases := []struct {
		name string
		raw  map[string]any
	}{
		{"string max_errors", map[string]any{"max_errors": "ten"}},
		{"fractional max_errors", map[string]any{"max_errors": 2.5}},
		{"negative max_errors", map[string]any{"max_errors": -1}},
		{"string color", map[string]any{"color": "yes"}},
		{"integer include_toc", map[string]any{"include_toc": 1}},
		{"negative heading_level", map[string]any{"heading_level": -3}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseOptions(tc.raw)
			var invalid *InvalidOptionError
			require.True(t, errors.As(err, &invalid), "err = %v", err)
		})
	}
}
