package px2vw

import (
	"fmt"

	"github.com/yacobolo/px2vw/csstree"
)

// Warning is a non-fatal diagnostic attached to a node position.
type Warning struct {
	Text string
	Pos  csstree.Position
}

// String formats the warning in file:line:col style.
func (w Warning) String() string {
	if w.Pos.File == "" {
		return fmt.Sprintf("%d:%d: %s", w.Pos.Line, w.Pos.Column, w.Text)
	}
	return fmt.Sprintf("%s:%d:%d: %s", w.Pos.File, w.Pos.Line, w.Pos.Column, w.Text)
}

// Result reports what one Transform invocation did to the tree.
type Result struct {
	DeclarationsConverted int       // values rewritten or duplicated
	LandscapeRulesAdded   int       // rules flushed into the landscape block
	Warnings              []Warning // non-fatal diagnostics
}

func (r *Result) warnf(node csstree.Node, format string, args ...any) {
	r.Warnings = append(r.Warnings, Warning{
		Text: fmt.Sprintf(format, args...),
		Pos:  node.Pos(),
	})
}
