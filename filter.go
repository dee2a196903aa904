package px2vw

import "github.com/yacobolo/px2vw/csstree"

func matchesAny(ms []Matcher, s string) bool {
	for _, m := range ms {
		if m.Match(s) {
			return true
		}
	}
	return false
}

// admitsRule decides whether a rule is eligible for conversion under the
// given options. Filters run in order and short-circuit on the first
// rejection: file inclusion, file exclusion, selector blacklist. A filter
// with no configured patterns admits everything; the file filters also
// admit rules whose source file is unknown.
func admitsRule(rule *csstree.Rule, opts Options) bool {
	file := rule.Pos().File
	if len(opts.Include) > 0 && file != "" && !matchesAny(opts.Include, file) {
		return false
	}
	if len(opts.Exclude) > 0 && file != "" && matchesAny(opts.Exclude, file) {
		return false
	}
	return !matchesAny(opts.SelectorBlackList, rule.Selector)
}
