package px2vw

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// toFixed rounds value to precision fractional digits with a two-stage
// truncate-then-round: the value is floored at one extra digit, then that
// last digit is rounded away. This keeps boundary values like 1.005
// behaving by decimal intuition instead of binary-float round-to-even.
func toFixed(value float64, precision int) float64 {
	multiplier := math.Pow(10, float64(precision)+1)
	whole := math.Floor(value * multiplier)
	return math.Round(whole/10) * 10 / multiplier
}

// formatNumber renders a converted number without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// unitReplacer converts matched numeric tokens in declaration values.
type unitReplacer struct {
	pattern   *regexp.Regexp
	minValue  float64
	precision int
}

// rewriteValue replaces every convertible match of the unit pattern in
// value, leaving non-matching text untouched. Matches without a capture
// group (quoted strings, url(), var()) pass through unchanged.
func (r unitReplacer) rewriteValue(value, unit string, width float64) string {
	spans := r.pattern.FindAllStringSubmatchIndex(value, -1)
	if len(spans) == 0 {
		return value
	}
	var b strings.Builder
	b.Grow(len(value))
	last := 0
	for _, m := range spans {
		b.WriteString(value[last:m[0]])
		b.WriteString(r.rewriteMatch(value, m, unit, width))
		last = m[1]
	}
	b.WriteString(value[last:])
	return b.String()
}

// rewriteMatch converts a single match span, returning the original text
// for shielded matches and values at or below the minimum.
func (r unitReplacer) rewriteMatch(value string, m []int, unit string, width float64) string {
	whole := value[m[0]:m[1]]
	if m[2] < 0 {
		return whole
	}
	pixels, err := strconv.ParseFloat(value[m[2]:m[3]], 64)
	if err != nil {
		return whole
	}
	if pixels <= r.minValue {
		return whole
	}
	converted := toFixed(pixels/width*100, r.precision)
	if converted == 0 {
		return "0"
	}
	return formatNumber(converted) + unit
}
