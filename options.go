package px2vw

import (
	"fmt"
	"regexp"
	"strings"
)

// Marker comments recognized by the pass. IgnoreNextComment suppresses
// conversion of the declaration that follows it; IgnorePrevComment
// suppresses the declaration it trails on the same line.
const (
	IgnoreNextComment = "px-to-viewport-ignore-next"
	IgnorePrevComment = "px-to-viewport-ignore"
)

// Matcher matches selectors or file paths. A string matcher matches by
// substring; a regexp matcher by pattern. The zero Matcher matches
// nothing.
type Matcher struct {
	substr string
	re     *regexp.Regexp
}

// StringMatcher returns a substring matcher.
func StringMatcher(s string) Matcher { return Matcher{substr: s} }

// RegexpMatcher returns a pattern matcher.
func RegexpMatcher(re *regexp.Regexp) Matcher { return Matcher{re: re} }

// Match reports whether s is matched.
func (m Matcher) Match(s string) bool {
	if m.re != nil {
		return m.re.MatchString(s)
	}
	return m.substr != "" && strings.Contains(s, m.substr)
}

// ParseMatcher builds a Matcher from its string form. A value wrapped in
// slashes, like "/^\.ignore-/", is compiled as a regular expression;
// anything else matches by substring.
func ParseMatcher(s string) (Matcher, error) {
	if len(s) > 2 && strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/") {
		re, err := regexp.Compile(s[1 : len(s)-1])
		if err != nil {
			return Matcher{}, fmt.Errorf("invalid pattern %q: %w", s, err)
		}
		return RegexpMatcher(re), nil
	}
	return StringMatcher(s), nil
}

// ParseMatchers normalizes an untyped configuration value into a list of
// matchers. Accepted shapes: nil, a single pattern string, a list of
// pattern strings, a Matcher, or a list of Matchers. Any other shape is
// a configuration error, raised before the pass starts.
func ParseMatchers(v any) ([]Matcher, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		m, err := ParseMatcher(t)
		if err != nil {
			return nil, err
		}
		return []Matcher{m}, nil
	case Matcher:
		return []Matcher{t}, nil
	case *regexp.Regexp:
		return []Matcher{RegexpMatcher(t)}, nil
	case []Matcher:
		return t, nil
	case []string:
		ms := make([]Matcher, 0, len(t))
		for _, s := range t {
			m, err := ParseMatcher(s)
			if err != nil {
				return nil, err
			}
			ms = append(ms, m)
		}
		return ms, nil
	case []any:
		ms := make([]Matcher, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("pattern list entry %v: expected a string", e)
			}
			m, err := ParseMatcher(s)
			if err != nil {
				return nil, err
			}
			ms = append(ms, m)
		}
		return ms, nil
	default:
		return nil, fmt.Errorf("patterns must be a string or a list of strings, got %T", v)
	}
}

// Options configures one conversion pass. Transform accepts multiple
// Options values; each is applied independently, in order, with its own
// full walk over the tree.
type Options struct {
	UnitToConvert     string   // source unit to rewrite
	ViewportWidth     float64  // design viewport width the source sizes target
	UnitPrecision     int      // fractional digits kept after conversion
	ViewportUnit      string   // target unit for general properties
	FontViewportUnit  string   // target unit for font-* properties
	SelectorBlackList []Matcher
	PropList          []string // property name patterns, "*" matches all
	MinPixelValue     float64  // values at or below this are left untouched
	MediaQuery        bool     // convert rules nested in parameterized at-rules
	Replace           bool     // overwrite values instead of inserting duplicates
	Landscape         bool     // collect a trailing landscape media block
	LandscapeUnit     string
	LandscapeWidth    float64
	Include           []Matcher // source files that may be converted
	Exclude           []Matcher // source files that must not be converted
}

// DefaultOptions returns the fully-defaulted configuration.
func DefaultOptions() Options {
	return Options{
		UnitToConvert:    "px",
		ViewportWidth:    320,
		UnitPrecision:    5,
		ViewportUnit:     "vw",
		FontViewportUnit: "vw",
		PropList:         []string{"*"},
		MinPixelValue:    1,
		Replace:          true,
		LandscapeUnit:    "vw",
		LandscapeWidth:   568,
	}
}

// validate rejects configurations the pass cannot run with. It is called
// once per option set before any tree mutation.
func (o Options) validate() error {
	if o.UnitToConvert == "" {
		return fmt.Errorf("unit to convert must not be empty")
	}
	if o.ViewportWidth <= 0 {
		return fmt.Errorf("viewport width must be positive, got %v", o.ViewportWidth)
	}
	if o.UnitPrecision < 0 {
		return fmt.Errorf("unit precision must not be negative, got %d", o.UnitPrecision)
	}
	if o.Landscape && o.LandscapeWidth <= 0 {
		return fmt.Errorf("landscape width must be positive, got %v", o.LandscapeWidth)
	}
	return nil
}
