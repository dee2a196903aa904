package px2vw

import (
	"fmt"

	"github.com/yacobolo/px2vw/csstree"
)

// Transform runs the conversion pass over root, mutating it in place.
// When no options are given the defaults apply. Each option set performs
// its own full walk over the tree, in order; landscape copies collected
// by any set are flushed exactly once, into a single media block appended
// after all walks complete.
func Transform(root *csstree.Root, optSets ...Options) (*Result, error) {
	if len(optSets) == 0 {
		optSets = []Options{DefaultOptions()}
	}
	for i, opts := range optSets {
		if err := opts.validate(); err != nil {
			return nil, fmt.Errorf("options[%d]: %w", i, err)
		}
	}

	res := &Result{}
	var landscape []*csstree.Rule

	// Phase one: per-rule walk, one pass per option set. Landscape
	// collection sees the original values, so it runs before the
	// declaration walk mutates the rule.
	for _, opts := range optSets {
		p := newPass(opts, res, &landscape)
		root.WalkRules(func(rule *csstree.Rule) {
			if !admitsRule(rule, opts) {
				return
			}
			if opts.Landscape && rule.ParentParams() == "" {
				p.collectLandscape(rule)
			}
			if rule.ParentParams() != "" && !opts.MediaQuery {
				return
			}
			p.processDeclarations(rule)
		})
	}

	// Phase two: flush the queue into one trailing landscape block. An
	// empty queue appends nothing.
	if len(landscape) > 0 {
		media := csstree.NewAtRule("media", "(orientation: landscape)")
		for _, rule := range landscape {
			media.Append(rule)
		}
		root.Append(media)
		res.LandscapeRulesAdded = len(landscape)
	}
	return res, nil
}
