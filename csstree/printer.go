package csstree

import (
	"io"
	"strings"
)

// WriteTo serializes the stylesheet to w, implementing io.WriterTo.
// Parsed nodes are written with their original raws; nodes created
// programmatically fall back to default formatting.
func (r *Root) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	for i, n := range r.nodes {
		if err := writeNode(cw, n, i > 0, ""); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

// String returns the CSS text of the stylesheet.
func (r *Root) String() string {
	var sb strings.Builder
	r.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) writeString(s string) error {
	n, err := io.WriteString(cw.w, s)
	cw.n += int64(n)
	return err
}

func writeNode(cw *countWriter, n Node, separate bool, indent string) error {
	before := n.Before()
	if before == "" && separate {
		before = "\n" + indent
	}
	if err := cw.writeString(before); err != nil {
		return err
	}

	switch v := n.(type) {
	case *Comment:
		return cw.writeString("/*" + v.raw + "*/")
	case *Declaration:
		between := v.between
		if between == "" {
			between = ": "
		}
		return cw.writeString(v.Prop + between + v.Value + ";")
	case *Rule:
		return writeRule(cw, v, indent)
	case *AtRule:
		return writeAtRule(cw, v, indent)
	}
	return nil
}

func writeRule(cw *countWriter, r *Rule, indent string) error {
	between := r.between
	if between == "" {
		between = " "
	}
	if err := cw.writeString(r.Selector + between + "{"); err != nil {
		return err
	}
	for _, c := range r.nodes {
		if err := writeChild(cw, c, indent+"  "); err != nil {
			return err
		}
	}
	after := r.after
	if after == "" && len(r.nodes) > 0 {
		after = "\n" + indent
	}
	return cw.writeString(after + "}")
}

// writeChild writes a declaration or comment inside a rule block with a
// default newline-plus-indent raw when none was recorded.
func writeChild(cw *countWriter, n Node, indent string) error {
	before := n.Before()
	if before == "" {
		before = "\n" + indent
	}
	if err := cw.writeString(before); err != nil {
		return err
	}
	switch v := n.(type) {
	case *Comment:
		return cw.writeString("/*" + v.raw + "*/")
	case *Declaration:
		between := v.between
		if between == "" {
			between = ": "
		}
		return cw.writeString(v.Prop + between + v.Value + ";")
	}
	return nil
}

func writeAtRule(cw *countWriter, a *AtRule, indent string) error {
	head := "@" + a.Name
	if a.Params != "" {
		head += " " + a.Params
	}
	if !a.block {
		return cw.writeString(head + ";")
	}
	if err := cw.writeString(head + " {"); err != nil {
		return err
	}
	for _, n := range a.nodes {
		inner := n.Before()
		if inner == "" {
			inner = "\n" + indent + "  "
		}
		if err := cw.writeString(inner); err != nil {
			return err
		}
		switch v := n.(type) {
		case *Comment:
			if err := cw.writeString("/*" + v.raw + "*/"); err != nil {
				return err
			}
		case *Rule:
			if err := writeRule(cw, v, indent+"  "); err != nil {
				return err
			}
		}
	}
	after := a.after
	if after == "" && len(a.nodes) > 0 {
		after = "\n" + indent
	}
	return cw.writeString(after + "}")
}
