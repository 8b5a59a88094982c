package parser

import (
	"strconv"

	"github.com/jsonc-tools/jsonc/ast"
	"github.com/jsonc-tools/jsonc/scanner"
	"github.com/jsonc-tools/jsonc/token"
)

// Visitor holds the optional callbacks Visit invokes as it walks a
// document in source order. A container-begin callback that returns false
// skips the container's contents (no property/value/separator callbacks
// fire for them), but the matching end callback still fires once the
// container's closing token is reached. OnComment and OnError are not
// suppressed: they still fire for comments and errors inside a skipped
// container.
type Visitor struct {
	OnObjectBegin    func(pathSupplier func() ast.Path, offset, length, startLine, startCharacter int) bool
	OnObjectProperty func(property string, offset, length, startLine, startCharacter int)
	OnObjectEnd      func(offset, length, startLine, startCharacter int)
	OnArrayBegin     func(pathSupplier func() ast.Path, offset, length, startLine, startCharacter int) bool
	OnArrayEnd       func(offset, length, startLine, startCharacter int)
	OnLiteralValue   func(value interface{}, offset, length, startLine, startCharacter int)
	OnSeparator      func(character byte, offset, length, startLine, startCharacter int)
	OnComment        func(offset, length, startLine, startCharacter int)
	OnError          func(code token.ParseErrorCode, offset, length, startLine, startCharacter int)
}

// Visit streams parse events for text in document order without building a
// tree. Unlike Parse/ParseTree it does not share the tolerant-recovery
// token cursor, since it additionally needs to surface raw comment tokens
// to OnComment rather than silently consuming them.
func Visit(text string, v Visitor, opts Options) error {
	vs := &visitState{s: scanner.NewScanner(text, false), v: v, opts: opts}
	vs.next()

	if vs.s.Token() == token.EOF {
		if !opts.AllowEmptyContent {
			vs.reportError(token.ValueExpected, vs.s.TokenOffset(), vs.s.TokenLength())
		}
		return nil
	}

	vs.walkValue()
	if vs.s.Token() != token.EOF {
		vs.reportError(token.EndOfFileExpected, vs.s.TokenOffset(), vs.s.TokenLength())
	}
	return nil
}

type visitState struct {
	s    *scanner.Scanner
	v    Visitor
	opts Options
	path ast.Path
}

func (vs *visitState) next() token.Kind {
	for {
		k := vs.s.Scan()
		switch k {
		case token.Trivia, token.LineBreakTrivia:
			continue
		case token.LineCommentTrivia, token.BlockCommentTrivia:
			if vs.opts.DisallowComments {
				vs.reportError(token.InvalidCommentToken, vs.s.TokenOffset(), vs.s.TokenLength())
			}
			if vs.v.OnComment != nil {
				o, l, line, col := vs.pos()
				vs.v.OnComment(o, l, line, col)
			}
			continue
		}
		if serr := vs.s.TokenError(); serr != token.ScanNone {
			vs.reportError(token.FromScanError(serr), vs.s.TokenOffset(), vs.s.TokenLength())
		}
		return k
	}
}

func (vs *visitState) reportError(code token.ParseErrorCode, offset, length int) {
	if vs.v.OnError == nil {
		return
	}
	line, col := vs.s.PositionAt(offset)
	vs.v.OnError(code, offset, length, line, col)
}

func (vs *visitState) pos() (offset, length, line, col int) {
	offset = vs.s.TokenOffset()
	length = vs.s.TokenLength()
	line, col = vs.s.PositionAt(offset)
	return
}

// currentPath returns a snapshot of vs.path, since the slice is mutated in
// place as the walk descends and ascends.
func (vs *visitState) currentPath() ast.Path {
	return append(ast.Path(nil), vs.path...)
}

func (vs *visitState) walkValue() bool {
	switch vs.s.Token() {
	case token.OpenBrace:
		vs.walkObject()
		return true
	case token.OpenBracket:
		vs.walkArray()
		return true
	case token.StringLiteral:
		o, l, line, col := vs.pos()
		val := vs.s.TokenValue()
		if vs.v.OnLiteralValue != nil {
			vs.v.OnLiteralValue(val, o, l, line, col)
		}
		vs.next()
		return true
	case token.NumericLiteral:
		o, l, line, col := vs.pos()
		f, _ := strconv.ParseFloat(vs.s.TokenValue(), 64)
		if vs.v.OnLiteralValue != nil {
			vs.v.OnLiteralValue(f, o, l, line, col)
		}
		vs.next()
		return true
	case token.TrueKeyword, token.FalseKeyword:
		o, l, line, col := vs.pos()
		val := vs.s.Token() == token.TrueKeyword
		if vs.v.OnLiteralValue != nil {
			vs.v.OnLiteralValue(val, o, l, line, col)
		}
		vs.next()
		return true
	case token.NullKeyword:
		o, l, line, col := vs.pos()
		if vs.v.OnLiteralValue != nil {
			vs.v.OnLiteralValue(nil, o, l, line, col)
		}
		vs.next()
		return true
	default:
		vs.reportError(token.ValueExpected, vs.s.TokenOffset(), vs.s.TokenLength())
		return false
	}
}

func (vs *visitState) walkObject() {
	offset, length, line, col := vs.pos()
	path := vs.currentPath()
	skip := false
	if vs.v.OnObjectBegin != nil {
		skip = !vs.v.OnObjectBegin(func() ast.Path { return path }, offset, length, line, col)
	}
	vs.next() // consume '{'

	if skip {
		vs.skipToMatchingClose()
	} else {
		vs.walkObjectBody()
	}

	o, l, ln, c := vs.pos()
	if vs.v.OnObjectEnd != nil {
		vs.v.OnObjectEnd(o, l, ln, c)
	}
	if vs.s.Token() == token.CloseBrace {
		vs.next()
	} else {
		vs.reportError(token.CloseBraceExpected, o, l)
	}
}

func (vs *visitState) walkObjectBody() {
	needComma := false
	for {
		switch vs.s.Token() {
		case token.CloseBrace, token.EOF:
			return
		}

		if needComma {
			if vs.s.Token() == token.Comma {
				o, l, ln, c := vs.pos()
				if vs.v.OnSeparator != nil {
					vs.v.OnSeparator(',', o, l, ln, c)
				}
				vs.next()
				if vs.s.Token() == token.CloseBrace {
					if !vs.opts.AllowTrailingComma {
						vs.reportError(token.ValueExpected, vs.s.TokenOffset(), vs.s.TokenLength())
					}
					return
				}
			} else {
				vs.reportError(token.CommaExpected, vs.s.TokenOffset(), vs.s.TokenLength())
			}
		}

		if vs.s.Token() != token.StringLiteral {
			vs.reportError(token.PropertyNameExpected, vs.s.TokenOffset(), vs.s.TokenLength())
			if vs.s.Token() == token.CloseBrace || vs.s.Token() == token.EOF {
				return
			}
			vs.next()
			needComma = false
			continue
		}

		o, l, ln, c := vs.pos()
		key := vs.s.TokenValue()
		if vs.v.OnObjectProperty != nil {
			vs.v.OnObjectProperty(key, o, l, ln, c)
		}
		vs.next()

		if vs.s.Token() == token.Colon {
			co, cl, cln, cc := vs.pos()
			if vs.v.OnSeparator != nil {
				vs.v.OnSeparator(':', co, cl, cln, cc)
			}
			vs.next()
			vs.path = append(vs.path, key)
			vs.walkValue()
			vs.path = vs.path[:len(vs.path)-1]
		} else {
			vs.reportError(token.ColonExpected, vs.s.TokenOffset(), vs.s.TokenLength())
		}
		needComma = true
	}
}

func (vs *visitState) walkArray() {
	offset, length, line, col := vs.pos()
	path := vs.currentPath()
	skip := false
	if vs.v.OnArrayBegin != nil {
		skip = !vs.v.OnArrayBegin(func() ast.Path { return path }, offset, length, line, col)
	}
	vs.next() // consume '['

	if skip {
		vs.skipToMatchingClose()
	} else {
		vs.walkArrayBody()
	}

	o, l, ln, c := vs.pos()
	if vs.v.OnArrayEnd != nil {
		vs.v.OnArrayEnd(o, l, ln, c)
	}
	if vs.s.Token() == token.CloseBracket {
		vs.next()
	} else {
		vs.reportError(token.CloseBracketExpected, o, l)
	}
}

func (vs *visitState) walkArrayBody() {
	needComma := false
	index := 0
	for {
		switch vs.s.Token() {
		case token.CloseBracket, token.EOF:
			return
		}

		if needComma {
			if vs.s.Token() == token.Comma {
				o, l, ln, c := vs.pos()
				if vs.v.OnSeparator != nil {
					vs.v.OnSeparator(',', o, l, ln, c)
				}
				vs.next()
				if vs.s.Token() == token.CloseBracket {
					if !vs.opts.AllowTrailingComma {
						vs.reportError(token.ValueExpected, vs.s.TokenOffset(), vs.s.TokenLength())
					}
					return
				}
			} else {
				vs.reportError(token.CommaExpected, vs.s.TokenOffset(), vs.s.TokenLength())
			}
		}

		vs.path = append(vs.path, index)
		ok := vs.walkValue()
		vs.path = vs.path[:len(vs.path)-1]

		if !ok {
			if vs.s.Token() == token.CloseBracket || vs.s.Token() == token.EOF {
				return
			}
			vs.next()
			needComma = false
			index++
			continue
		}
		index++
		needComma = true
	}
}

// skipToMatchingClose consumes tokens until it reaches (without consuming)
// the close brace/bracket matching the one already opened by the caller,
// tracking nested containers by depth.
func (vs *visitState) skipToMatchingClose() {
	depth := 1
	for {
		switch vs.s.Token() {
		case token.OpenBrace, token.OpenBracket:
			depth++
		case token.CloseBrace, token.CloseBracket:
			depth--
			if depth == 0 {
				return
			}
		case token.EOF:
			return
		}
		vs.next()
	}
}
