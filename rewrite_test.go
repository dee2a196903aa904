package px2vw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFixed(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision int
		want      float64
	}{
		{
			name:      "boundary half rounds by decimal intuition",
			value:     1.005,
			precision: 2,
			want:      1.0,
		},
		{
			name:      "truncate stage drops the half before rounding",
			value:     1.015,
			precision: 2,
			want:      1.01,
		},
		{
			name:      "exact value untouched",
			value:     31.25,
			precision: 5,
			want:      31.25,
		},
		{
			name:      "small value collapses to zero",
			value:     0.0001,
			precision: 2,
			want:      0,
		},
		{
			name:      "precision zero",
			value:     3.125,
			precision: 0,
			want:      3,
		},
		{
			name:      "long fraction clamped to precision",
			value:     17.605633802816904,
			precision: 5,
			want:      17.60563,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, toFixed(tt.value, tt.precision), 1e-12)
		})
	}
}

func TestRewriteValue(t *testing.T) {
	rep := unitReplacer{
		pattern:   BuildUnitPattern("px"),
		minValue:  1,
		precision: 5,
	}

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{
			name:  "single value",
			value: "10px",
			want:  "3.125vw",
		},
		{
			name:  "shorthand converts every token",
			value: "10px 20px 0 5px",
			want:  "3.125vw 6.25vw 0 1.5625vw",
		},
		{
			name:  "at threshold left untouched",
			value: "1px",
			want:  "1px",
		},
		{
			name:  "below threshold left untouched",
			value: "0.5px solid red",
			want:  "0.5px solid red",
		},
		{
			name:  "quoted strings shielded",
			value: `"16px" 10px`,
			want:  `"16px" 3.125vw`,
		},
		{
			name:  "url contents shielded",
			value: "url(/images/sprite-10px.png) no-repeat",
			want:  "url(/images/sprite-10px.png) no-repeat",
		},
		{
			name:  "var contents shielded",
			value: "var(--gap-10px)",
			want:  "var(--gap-10px)",
		},
		{
			name:  "other units ignored",
			value: "2em 10px",
			want:  "2em 3.125vw",
		},
		{
			name:  "no match returns input",
			value: "auto",
			want:  "auto",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rep.rewriteValue(tt.value, "vw", 320))
		})
	}
}

func TestRewriteValueZeroCollapse(t *testing.T) {
	rep := unitReplacer{
		pattern:   BuildUnitPattern("px"),
		minValue:  1,
		precision: 0,
	}
	// 2/1000*100 = 0.2, rounded at precision 0 to exactly 0: the unit is
	// dropped entirely.
	require.Equal(t, "0", rep.rewriteValue("2px", "vw", 1000))
}

func TestRewriteValueRoundTrips(t *testing.T) {
	rep := unitReplacer{
		pattern:   BuildUnitPattern("px"),
		minValue:  1,
		precision: 5,
	}
	// Dividing the converted value by 100 and multiplying by the target
	// width reproduces the source magnitude within precision.
	require.Equal(t, "100vw", rep.rewriteValue("750px", "vw", 750))
	require.Equal(t, "50vw", rep.rewriteValue("375px", "vw", 750))
}
