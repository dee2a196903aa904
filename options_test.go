package px2vw

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatcher(t *testing.T) {
	t.Run("plain string matches by substring", func(t *testing.T) {
		m, err := ParseMatcher("node_modules")
		require.NoError(t, err)
		assert.True(t, m.Match("a/node_modules/b.css"))
		assert.False(t, m.Match("a/src/b.css"))
	})

	t.Run("slash-wrapped string compiles as regexp", func(t *testing.T) {
		m, err := ParseMatcher(`/^\.ignore-/`)
		require.NoError(t, err)
		assert.True(t, m.Match(".ignore-this"))
		assert.False(t, m.Match("keep .ignore-this"))
	})

	t.Run("invalid regexp is rejected", func(t *testing.T) {
		_, err := ParseMatcher("/[unclosed/")
		require.Error(t, err)
	})
}

func TestMatcherZeroValue(t *testing.T) {
	var m Matcher
	assert.False(t, m.Match(""))
	assert.False(t, m.Match("anything"))
}

func TestParseMatchers(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		wantLen int
		wantErr bool
	}{
		{name: "nil", input: nil, wantLen: 0},
		{name: "single string", input: "vendor", wantLen: 1},
		{name: "string slice", input: []string{"vendor", "/dist/"}, wantLen: 2},
		{name: "any slice of strings", input: []any{"vendor", "theme"}, wantLen: 2},
		{name: "regexp value", input: regexp.MustCompile("x"), wantLen: 1},
		{name: "number is a config error", input: 42, wantErr: true},
		{name: "mixed any slice is a config error", input: []any{"ok", 1}, wantErr: true},
		{name: "map is a config error", input: map[string]any{"a": "b"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, err := ParseMatchers(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, ms, tt.wantLen)
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Options) {}},
		{
			name:    "empty unit",
			mutate:  func(o *Options) { o.UnitToConvert = "" },
			wantErr: "unit to convert",
		},
		{
			name:    "zero viewport width",
			mutate:  func(o *Options) { o.ViewportWidth = 0 },
			wantErr: "viewport width",
		},
		{
			name:    "negative precision",
			mutate:  func(o *Options) { o.UnitPrecision = -1 },
			wantErr: "precision",
		},
		{
			name: "landscape needs a width",
			mutate: func(o *Options) {
				o.Landscape = true
				o.LandscapeWidth = 0
			},
			wantErr: "landscape width",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			err := opts.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
