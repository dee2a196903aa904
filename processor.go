package px2vw

import (
	"strings"

	"github.com/yacobolo/px2vw/csstree"
)

// pass carries the per-option-set state for one walk over the tree: the
// compiled unit pattern, the property predicate, and the shared landscape
// queue. A fresh pass is built for every option set of every Transform
// call; nothing survives between invocations.
type pass struct {
	opts      Options
	satisfies func(string) bool
	rep       unitReplacer
	res       *Result
	landscape *[]*csstree.Rule
}

func newPass(opts Options, res *Result, landscape *[]*csstree.Rule) *pass {
	return &pass{
		opts:      opts,
		satisfies: BuildPropListMatcher(opts.PropList),
		rep: unitReplacer{
			pattern:   BuildUnitPattern(opts.UnitToConvert),
			minValue:  opts.MinPixelValue,
			precision: opts.UnitPrecision,
		},
		res:       res,
		landscape: landscape,
	}
}

// targetFor picks the unit and reference width for one declaration. Rules
// already inside a landscape media query convert against the landscape
// width; font properties use the font viewport unit.
func (p *pass) targetFor(rule *csstree.Rule, prop string) (string, float64) {
	if p.opts.Landscape && strings.Contains(rule.ParentParams(), "landscape") {
		return p.opts.LandscapeUnit, p.opts.LandscapeWidth
	}
	if strings.Contains(prop, "font") {
		return p.opts.FontViewportUnit, p.opts.ViewportWidth
	}
	return p.opts.ViewportUnit, p.opts.ViewportWidth
}

// processDeclarations walks a rule's declarations in source order and
// applies the conversion. The rule must already have passed the filter
// chain and the media-query gate.
func (p *pass) processDeclarations(rule *csstree.Rule) {
	for _, decl := range rule.Declarations() {
		if !strings.Contains(decl.Value, p.opts.UnitToConvert) {
			continue
		}
		if !p.satisfies(decl.Prop) {
			continue
		}
		if p.consumeIgnoreMarker(rule, decl) {
			continue
		}

		unit, width := p.targetFor(rule, decl.Prop)
		newValue := p.rep.rewriteValue(decl.Value, unit, width)

		// A sibling with the same prop and the computed value makes the
		// conversion redundant; the scan covers all declarations of the
		// rule, including the one being converted.
		if rule.HasDeclaration(decl.Prop, newValue) {
			continue
		}
		if p.opts.Replace {
			decl.Value = newValue
		} else {
			rule.InsertAfter(decl, decl.CloneWithValue(newValue))
		}
		p.res.DeclarationsConverted++
	}
}

// consumeIgnoreMarker applies the marker comment protocol for one
// declaration. It reports true when conversion must be skipped. Consumed
// markers are removed from the tree; a trailing marker on its own line is
// misuse, so it stays in place, a warning is emitted, and conversion
// proceeds.
func (p *pass) consumeIgnoreMarker(rule *csstree.Rule, decl *csstree.Declaration) bool {
	if prev, ok := decl.Prev().(*csstree.Comment); ok && prev.Text() == IgnoreNextComment {
		rule.RemoveChild(prev)
		return true
	}
	if next, ok := decl.Next().(*csstree.Comment); ok && next.Text() == IgnorePrevComment {
		if strings.Contains(next.Before(), "\n") {
			p.res.warnf(next, "unexpected comment /* %s */ must be after declaration at same line", IgnorePrevComment)
		} else {
			rule.RemoveChild(next)
			return true
		}
	}
	return false
}

// collectLandscape builds the landscape copy of a top-level rule from its
// pre-conversion declarations and queues it for the phase-two flush.
// Rules yielding no convertible declarations are discarded.
func (p *pass) collectLandscape(rule *csstree.Rule) {
	clone := rule.CloneEmpty()
	for _, decl := range rule.Declarations() {
		if !strings.Contains(decl.Value, p.opts.UnitToConvert) {
			continue
		}
		if !p.satisfies(decl.Prop) {
			continue
		}
		converted := p.rep.rewriteValue(decl.Value, p.opts.LandscapeUnit, p.opts.LandscapeWidth)
		clone.Append(decl.CloneWithValue(converted))
	}
	if len(clone.Nodes()) == 0 {
		return
	}
	*p.landscape = append(*p.landscape, clone)
}
