package px2vw

import (
	"regexp"
	"strings"
)

// BuildUnitPattern returns a pattern matching bare numeric values with
// the given unit. Quoted strings, url() and var() expressions are matched
// without a capture group so their contents are shielded from rewriting;
// only matches whose capture group participated carry a convertible
// number.
func BuildUnitPattern(unit string) *regexp.Regexp {
	return regexp.MustCompile(`"[^"]+"|'[^']+'|url\([^)]+\)|var\([^)]+\)|(\d*\.?\d+)` + regexp.QuoteMeta(unit))
}

// propSet holds the positive or negative half of a property list.
type propSet struct {
	exact   []string
	contain []string
	prefix  []string
	suffix  []string
}

func (s *propSet) add(pat string) {
	switch {
	case strings.HasPrefix(pat, "*") && strings.HasSuffix(pat, "*") && len(pat) > 2:
		s.contain = append(s.contain, pat[1:len(pat)-1])
	case strings.HasSuffix(pat, "*"):
		s.prefix = append(s.prefix, pat[:len(pat)-1])
	case strings.HasPrefix(pat, "*"):
		s.suffix = append(s.suffix, pat[1:])
	default:
		s.exact = append(s.exact, pat)
	}
}

func (s *propSet) matches(prop string) bool {
	for _, e := range s.exact {
		if prop == e {
			return true
		}
	}
	for _, c := range s.contain {
		if strings.Contains(prop, c) {
			return true
		}
	}
	for _, p := range s.prefix {
		if strings.HasPrefix(prop, p) {
			return true
		}
	}
	for _, suf := range s.suffix {
		if strings.HasSuffix(prop, suf) {
			return true
		}
	}
	return false
}

// BuildPropListMatcher builds a property-name predicate from a pattern
// list. Patterns: "name" exact, "*name*" contains, "name*" prefix,
// "*name" suffix, "*" everything. A leading "!" negates any form, and
// negations take precedence over inclusions.
func BuildPropListMatcher(propList []string) func(prop string) bool {
	var include, exclude propSet
	hasWild := false
	for _, raw := range propList {
		if raw == "*" {
			hasWild = true
			continue
		}
		if strings.HasPrefix(raw, "!") {
			exclude.add(raw[1:])
		} else {
			include.add(raw)
		}
	}

	matchAll := hasWild && len(propList) == 1
	return func(prop string) bool {
		if matchAll {
			return true
		}
		if !hasWild && !include.matches(prop) {
			return false
		}
		return !exclude.matches(prop)
	}
}
