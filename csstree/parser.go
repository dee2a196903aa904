package csstree

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// parser consumes the CSS token stream and builds the node tree. It works
// on raw lexer tokens rather than the grammar-level parser so whitespace
// and comments survive with their exact formatting.
type parser struct {
	lexer *css.Lexer
	file  string

	line int
	col  int

	// pending holds whitespace seen since the last node; it becomes the
	// next node's Before raw.
	pending string
}

// Parse parses CSS text into a Root. The filename is recorded on node
// positions and may be empty.
func Parse(content, filename string) (*Root, error) {
	p := &parser{
		lexer: css.NewLexer(parse.NewInputString(content)),
		file:  filename,
		line:  1,
		col:   1,
	}
	root := &Root{}
	if err := p.parseBody(root, nil); err != nil {
		return nil, err
	}
	return root, nil
}

type token struct {
	tt   css.TokenType
	text string
	pos  Position
}

func (p *parser) next() (token, error) {
	pos := Position{File: p.file, Line: p.line, Column: p.col}
	tt, data := p.lexer.Next()
	if tt == css.ErrorToken {
		if err := p.lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
			return token{}, fmt.Errorf("%s:%d:%d: %w", p.file, pos.Line, pos.Column, err)
		}
		return token{tt: tt, pos: pos}, nil
	}
	text := string(data)
	for _, r := range text {
		if r == '\n' {
			p.line++
			p.col = 1
		} else {
			p.col++
		}
	}
	return token{tt: tt, text: text, pos: pos}, nil
}

func (p *parser) takePending() string {
	s := p.pending
	p.pending = ""
	return s
}

// parseBody reads top-level content for root or an at-rule block until
// EOF or the block's closing brace.
func (p *parser) parseBody(container Container, encl *AtRule) error {
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		switch tok.tt {
		case css.ErrorToken:
			if encl != nil {
				encl.after = p.takePending()
			}
			return nil

		case css.WhitespaceToken:
			p.pending += tok.text

		case css.CommentToken:
			c := &Comment{raw: innerComment(tok.text)}
			c.pos = tok.pos
			c.before = p.takePending()
			container.Append(c)

		case css.RightBraceToken:
			if encl != nil {
				encl.after = p.takePending()
				return nil
			}
			// Stray closing brace at the top level; drop it.
			p.pending = ""

		case css.AtKeywordToken:
			if err := p.parseAtRule(container, tok); err != nil {
				return err
			}

		default:
			if err := p.parseRule(container, tok); err != nil {
				return err
			}
		}
	}
}

// parseAtRule reads an at-rule from its @keyword token. Block at-rules
// recurse into parseBody; statement at-rules end at the semicolon.
func (p *parser) parseAtRule(container Container, kw token) error {
	at := &AtRule{Name: strings.TrimPrefix(kw.text, "@")}
	at.pos = kw.pos
	at.before = p.takePending()

	var params strings.Builder
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		switch tok.tt {
		case css.ErrorToken, css.SemicolonToken:
			at.Params = strings.TrimSpace(params.String())
			container.Append(at)
			return nil
		case css.LeftBraceToken:
			at.Params = strings.TrimSpace(params.String())
			at.block = true
			container.Append(at)
			return p.parseBody(at, at)
		default:
			params.WriteString(tok.text)
		}
	}
}

// parseRule reads a style rule starting from the first selector token.
func (p *parser) parseRule(container Container, first token) error {
	rule := &Rule{}
	rule.pos = first.pos
	rule.before = p.takePending()
	if a, ok := container.(*AtRule); ok {
		rule.parent = a
	}

	var sel strings.Builder
	sel.WriteString(first.text)
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		switch tok.tt {
		case css.ErrorToken:
			// Selector without a block at EOF; nothing to keep.
			return nil
		case css.LeftBraceToken:
			raw := sel.String()
			trimmed := strings.TrimRight(raw, " \t\r\n")
			rule.Selector = trimmed
			rule.between = raw[len(trimmed):]
			container.Append(rule)
			return p.parseRuleBody(rule)
		default:
			sel.WriteString(tok.text)
		}
	}
}

// parseRuleBody reads declarations and comments until the closing brace.
func (p *parser) parseRuleBody(rule *Rule) error {
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		switch tok.tt {
		case css.ErrorToken, css.RightBraceToken:
			rule.after = p.takePending()
			return nil

		case css.WhitespaceToken:
			p.pending += tok.text

		case css.SemicolonToken:
			// Empty declaration; keep accumulated whitespace for the
			// next node.

		case css.CommentToken:
			c := &Comment{raw: innerComment(tok.text), parent: rule}
			c.pos = tok.pos
			c.before = p.takePending()
			rule.nodes = append(rule.nodes, c)

		default:
			done, err := p.parseDeclaration(rule, tok)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// parseDeclaration reads one "prop: value" declaration starting from the
// property token. It reports done=true when the declaration was ended by
// the rule's closing brace.
func (p *parser) parseDeclaration(rule *Rule, prop token) (bool, error) {
	d := &Declaration{Prop: prop.text, parent: rule}
	d.pos = prop.pos
	d.before = p.takePending()

	// Consume up to the colon; stray tokens before it fold into the
	// property name so malformed input degrades instead of failing.
	for {
		tok, err := p.next()
		if err != nil {
			return false, err
		}
		if tok.tt == css.ColonToken {
			break
		}
		if tok.tt == css.ErrorToken || tok.tt == css.RightBraceToken {
			rule.after = p.takePending()
			return true, nil
		}
		if tok.tt == css.SemicolonToken {
			return false, nil
		}
		d.Prop += tok.text
	}

	var value strings.Builder
	between := ":"
	sawValue := false
	for {
		tok, err := p.next()
		if err != nil {
			return false, err
		}
		switch tok.tt {
		case css.WhitespaceToken:
			if sawValue {
				value.WriteString(tok.text)
			} else {
				between += tok.text
			}
		case css.SemicolonToken:
			d.Value = strings.TrimRight(value.String(), " \t\r\n")
			d.between = between
			rule.nodes = append(rule.nodes, d)
			return false, nil
		case css.ErrorToken, css.RightBraceToken:
			raw := value.String()
			d.Value = strings.TrimRight(raw, " \t\r\n")
			d.between = between
			rule.nodes = append(rule.nodes, d)
			rule.after = raw[len(d.Value):]
			return true, nil
		default:
			sawValue = true
			value.WriteString(tok.text)
		}
	}
}

// innerComment strips the comment delimiters from a raw comment token.
func innerComment(raw string) string {
	raw = strings.TrimPrefix(raw, "/*")
	return strings.TrimSuffix(raw, "*/")
}
