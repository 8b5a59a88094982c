// Package parser drives the scanner to materialize JSON values, build a
// concrete-syntax tree, push visitor events, or answer "what is the
// location at offset X", tolerating and recording recoverable faults
// rather than aborting.
package parser

import (
	"strconv"

	"github.com/jsonc-tools/jsonc/ast"
	"github.com/jsonc-tools/jsonc/scanner"
	"github.com/jsonc-tools/jsonc/token"
)

// Options controls how strictly the parser treats authoring conveniences.
type Options struct {
	// DisallowComments turns // and /* */ comments into InvalidCommentToken
	// errors instead of silently skipping them.
	DisallowComments bool
	// AllowTrailingComma permits a comma before the closing bracket of an
	// object or array.
	AllowTrailingComma bool
	// AllowEmptyContent permits a document with no value at all.
	AllowEmptyContent bool
}

// parser is the token cursor behind Parse and ParseTree (Visit keeps its
// own cursor in visit.go). It always scans with comments visible
// (ignoreTrivia=false at the scanner level) so it can apply
// DisallowComments.
type parser struct {
	s    *scanner.Scanner
	opts Options
	errs ErrorList

	kind   token.Kind
	offset int
	length int
	line   int
	column int
	value  string
}

func newParser(text string, opts Options) *parser {
	p := &parser{s: scanner.NewScanner(text, false), opts: opts}
	return p
}

func (p *parser) addError(code token.ParseErrorCode, offset, length int) {
	line, col := p.s.PositionAt(offset)
	p.errs.add(&Error{Code: code, Offset: offset, Length: length, Line: line, Column: col})
}

// advance moves to the next non-whitespace, non-linebreak token, handling
// comments (per DisallowComments) and translating any scan error on the
// token into a parse error with the matching code.
func (p *parser) advance() {
	for {
		k := p.s.Scan()
		switch k {
		case token.Trivia, token.LineBreakTrivia:
			continue
		case token.LineCommentTrivia, token.BlockCommentTrivia:
			if p.opts.DisallowComments {
				p.addError(token.InvalidCommentToken, p.s.TokenOffset(), p.s.TokenLength())
			}
			continue
		}
		if serr := p.s.TokenError(); serr != token.ScanNone {
			p.addError(token.FromScanError(serr), p.s.TokenOffset(), p.s.TokenLength())
		}
		p.kind = k
		p.offset = p.s.TokenOffset()
		p.length = p.s.TokenLength()
		p.line = p.s.TokenStartLine()
		p.column = p.s.TokenStartCharacter()
		p.value = p.s.TokenValue()
		return
	}
}

// ParseTree parses text into a concrete-syntax tree, returning the best
// effort root along with every recoverable fault encountered.
func ParseTree(text string, opts Options) (*ast.Node, ErrorList) {
	p := newParser(text, opts)
	p.advance()

	if p.kind == token.EOF {
		if !opts.AllowEmptyContent {
			p.addError(token.ValueExpected, 0, 0)
		}
		return nil, p.errs
	}

	root := p.parseValue()
	if root == nil {
		p.addError(token.ValueExpected, p.offset, p.length)
	}
	if p.kind != token.EOF {
		p.addError(token.EndOfFileExpected, p.offset, p.length)
	}
	return root, p.errs
}

// Parse parses text and returns its logical JSON value: nil, bool,
// float64, string, []interface{}, or map[string]interface{}.
func Parse(text string, opts Options) (interface{}, ErrorList) {
	root, errs := ParseTree(text, opts)
	return ast.GetNodeValue(root), errs
}

func (p *parser) parseValue() *ast.Node {
	switch p.kind {
	case token.OpenBrace:
		return p.parseObject()
	case token.OpenBracket:
		return p.parseArray()
	case token.StringLiteral:
		n := ast.NewString(p.offset, p.length, p.value)
		p.advance()
		return n
	case token.NumericLiteral:
		f, ferr := strconv.ParseFloat(p.value, 64)
		if ferr != nil {
			p.addError(token.InvalidNumberFormat, p.offset, p.length)
		}
		n := ast.NewNumber(p.offset, p.length, f)
		p.advance()
		return n
	case token.TrueKeyword:
		n := ast.NewBoolean(p.offset, p.length, true)
		p.advance()
		return n
	case token.FalseKeyword:
		n := ast.NewBoolean(p.offset, p.length, false)
		p.advance()
		return n
	case token.NullKeyword:
		n := ast.NewNull(p.offset, p.length)
		p.advance()
		return n
	default:
		return nil
	}
}

func (p *parser) parseObject() *ast.Node {
	obj := ast.NewObject(p.offset)
	p.advance() // consume '{'

	needComma := false
	for {
		switch p.kind {
		case token.CloseBrace:
			obj.SetEnd(p.offset + p.length)
			p.advance()
			return obj
		case token.EOF:
			p.addError(token.CloseBraceExpected, p.offset, p.length)
			return obj
		}

		if needComma {
			if p.kind == token.Comma {
				p.advance()
				if p.kind == token.CloseBrace {
					if !p.opts.AllowTrailingComma {
						p.addError(token.ValueExpected, p.offset, p.length)
					}
					obj.SetEnd(p.offset + p.length)
					p.advance()
					return obj
				}
			} else {
				p.addError(token.CommaExpected, p.offset, p.length)
			}
		}

		if p.kind != token.StringLiteral {
			p.addError(token.PropertyNameExpected, p.offset, p.length)
			if p.kind == token.CloseBrace || p.kind == token.EOF {
				continue
			}
			p.advance() // skip the offending token to make progress
			needComma = false
			continue
		}

		key := ast.NewString(p.offset, p.length, p.value)
		prop := ast.NewProperty(p.offset, key)
		p.advance()

		if p.kind == token.Colon {
			prop.HasColon = true
			prop.ColonOffset = p.offset
			p.advance()
			if v := p.parseValue(); v != nil {
				prop.AddChild(v)
			} else {
				p.addError(token.ValueExpected, p.offset, p.length)
			}
		} else {
			p.addError(token.ColonExpected, p.offset, p.length)
		}

		obj.AddChild(prop)
		needComma = true
	}
}

func (p *parser) parseArray() *ast.Node {
	arr := ast.NewArray(p.offset)
	p.advance() // consume '['

	needComma := false
	for {
		switch p.kind {
		case token.CloseBracket:
			arr.SetEnd(p.offset + p.length)
			p.advance()
			return arr
		case token.EOF:
			p.addError(token.CloseBracketExpected, p.offset, p.length)
			return arr
		}

		if needComma {
			if p.kind == token.Comma {
				p.advance()
				if p.kind == token.CloseBracket {
					if !p.opts.AllowTrailingComma {
						p.addError(token.ValueExpected, p.offset, p.length)
					}
					arr.SetEnd(p.offset + p.length)
					p.advance()
					return arr
				}
			} else {
				p.addError(token.CommaExpected, p.offset, p.length)
			}
		}

		v := p.parseValue()
		if v == nil {
			p.addError(token.ValueExpected, p.offset, p.length)
			if p.kind == token.CloseBracket || p.kind == token.EOF {
				continue
			}
			p.advance()
			needComma = false
			continue
		}
		arr.AddChild(v)
		needComma = true
	}
}
