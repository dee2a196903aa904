// Package csstree provides a mutable CSS node tree for transformation passes.
//
// A stylesheet is parsed into a Root containing Rule, AtRule and Comment
// nodes. Rules own an ordered list of Declaration and Comment children.
// Nodes keep their surrounding whitespace and source positions so passes
// can make line-sensitive decisions and output can be re-serialized close
// to the input formatting.
package csstree

import "strings"

// Position is a source location attached to every parsed node.
type Position struct {
	File   string
	Line   int
	Column int
}

// Node is implemented by Rule, AtRule, Declaration and Comment.
type Node interface {
	// Pos returns the node's source position. Nodes created
	// programmatically report a zero Position.
	Pos() Position
	// Before returns the raw whitespace preceding the node in source.
	Before() string
	setBefore(string)
}

// Container is implemented by Root, AtRule and Rule.
type Container interface {
	Nodes() []Node
	Append(Node)
}

type base struct {
	pos    Position
	before string
}

func (b *base) Pos() Position      { return b.pos }
func (b *base) Before() string     { return b.before }
func (b *base) setBefore(s string) { b.before = s }

// Root is the top of a parsed stylesheet.
type Root struct {
	nodes []Node
}

// Nodes returns the top-level nodes in document order.
func (r *Root) Nodes() []Node { return r.nodes }

// Append adds a node at the end of the stylesheet.
func (r *Root) Append(n Node) { r.nodes = append(r.nodes, n) }

// WalkRules visits every rule in document order, including rules nested
// in at-rule blocks. The callback may mutate the visited rule's children
// but must not add or remove rules.
func (r *Root) WalkRules(fn func(*Rule)) {
	walkRules(r.nodes, fn)
}

func walkRules(nodes []Node, fn func(*Rule)) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *Rule:
			fn(v)
		case *AtRule:
			walkRules(v.nodes, fn)
		}
	}
}

// AtRule is an @-rule such as @media or @supports. Statement at-rules
// (@import, @charset) have no body and Nodes returns nil.
type AtRule struct {
	base
	Name   string // without the leading "@"
	Params string
	block  bool
	nodes  []Node
	after  string // whitespace before the closing brace
}

// NewAtRule creates a detached block at-rule.
func NewAtRule(name, params string) *AtRule {
	return &AtRule{Name: name, Params: params, block: true}
}

func (a *AtRule) Nodes() []Node { return a.nodes }

func (a *AtRule) Append(n Node) {
	if r, ok := n.(*Rule); ok {
		r.parent = a
	}
	a.nodes = append(a.nodes, n)
}

// Rule is a style rule: a selector plus an ordered list of declarations
// and comments.
type Rule struct {
	base
	Selector string
	parent   *AtRule // nil for top-level rules
	between  string  // whitespace between selector and "{"
	nodes    []Node
	after    string // whitespace before the closing brace
}

// ParentParams returns the params of the enclosing at-rule, or "" when
// the rule is top-level or the at-rule has no params.
func (r *Rule) ParentParams() string {
	if r.parent == nil {
		return ""
	}
	return r.parent.Params
}

func (r *Rule) Nodes() []Node { return r.nodes }

// Declarations returns a snapshot of the rule's declaration children in
// source order. The snapshot is safe to range over while inserting into
// or removing from the rule.
func (r *Rule) Declarations() []*Declaration {
	decls := make([]*Declaration, 0, len(r.nodes))
	for _, n := range r.nodes {
		if d, ok := n.(*Declaration); ok {
			decls = append(decls, d)
		}
	}
	return decls
}

func (r *Rule) Append(n Node) {
	r.adopt(n)
	r.nodes = append(r.nodes, n)
}

func (r *Rule) adopt(n Node) {
	switch v := n.(type) {
	case *Declaration:
		v.parent = r
	case *Comment:
		v.parent = r
	}
}

// InsertAfter inserts n immediately after ref. If ref is not a child of
// the rule, n is appended at the end.
func (r *Rule) InsertAfter(ref, n Node) {
	r.adopt(n)
	for i, c := range r.nodes {
		if c == ref {
			r.nodes = append(r.nodes[:i+1], append([]Node{n}, r.nodes[i+1:]...)...)
			return
		}
	}
	r.nodes = append(r.nodes, n)
}

// RemoveChild detaches n from the rule. Unknown nodes are ignored.
func (r *Rule) RemoveChild(n Node) {
	for i, c := range r.nodes {
		if c == n {
			r.nodes = append(r.nodes[:i], r.nodes[i+1:]...)
			return
		}
	}
}

// HasDeclaration reports whether any declaration in the rule has the
// given property name and exact value.
func (r *Rule) HasDeclaration(prop, value string) bool {
	for _, n := range r.nodes {
		if d, ok := n.(*Declaration); ok && d.Prop == prop && d.Value == value {
			return true
		}
	}
	return false
}

// CloneEmpty returns a detached copy of the rule with the same selector,
// position and formatting but no children.
func (r *Rule) CloneEmpty() *Rule {
	return &Rule{
		base:     r.base,
		Selector: r.Selector,
		between:  r.between,
		after:    r.after,
	}
}

func (r *Rule) childIndex(n Node) int {
	for i, c := range r.nodes {
		if c == n {
			return i
		}
	}
	return -1
}

func (r *Rule) siblingAt(i int) Node {
	if i < 0 || i >= len(r.nodes) {
		return nil
	}
	return r.nodes[i]
}

// Declaration is a "prop: value" child of a rule.
type Declaration struct {
	base
	Prop    string
	Value   string
	parent  *Rule
	between string // text between prop and value, typically ": "
}

// Prev returns the immediately preceding sibling node, or nil.
func (d *Declaration) Prev() Node {
	if d.parent == nil {
		return nil
	}
	return d.parent.siblingAt(d.parent.childIndex(d) - 1)
}

// Next returns the immediately following sibling node, or nil.
func (d *Declaration) Next() Node {
	if d.parent == nil {
		return nil
	}
	return d.parent.siblingAt(d.parent.childIndex(d) + 1)
}

// CloneWithValue returns a detached copy of the declaration with a new
// value and the original formatting.
func (d *Declaration) CloneWithValue(value string) *Declaration {
	return &Declaration{
		base:    d.base,
		Prop:    d.Prop,
		Value:   value,
		between: d.between,
	}
}

// Comment is a /* ... */ node. It may appear at the top level, inside an
// at-rule block, or between declarations inside a rule.
type Comment struct {
	base
	raw    string // inner text, untrimmed
	parent *Rule  // nil for comments outside rules
}

// NewComment creates a detached comment with the given inner text.
func NewComment(text string) *Comment {
	return &Comment{raw: " " + text + " "}
}

// Text returns the trimmed inner text of the comment.
func (c *Comment) Text() string { return strings.TrimSpace(c.raw) }
