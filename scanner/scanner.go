// Package scanner implements a tolerant, offset-driven tokenizer for JSONC
// (JSON with // and /* */ comments). It takes a string as source which can
// then be tokenized through repeated calls to Scan.
package scanner

import (
	"sort"
	"strconv"
	"unicode"
	"unicode/utf16"

	"github.com/jsonc-tools/jsonc/token"
)

// A Scanner holds the scanner's state while tokenizing text. Construct one
// with NewScanner; a Scanner is owned by a single caller and must not be
// used concurrently.
type Scanner struct {
	src          []byte
	pos          int
	lineStarts   []int
	ignoreTrivia bool

	tokenKind   token.Kind
	tokenOffset int
	tokenLength int
	tokenValue  string
	tokenError  token.ScanError
}

// NewScanner prepares a Scanner over text. If ignoreTrivia is true, Scan
// silently skips whitespace, line breaks, and comments and returns the next
// semantically meaningful token.
func NewScanner(text string, ignoreTrivia bool) *Scanner {
	s := &Scanner{
		src:          []byte(text),
		ignoreTrivia: ignoreTrivia,
		lineStarts:   computeLineStarts([]byte(text)),
	}
	s.SetPosition(0)
	return s
}

func computeLineStarts(src []byte) []int {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			starts = append(starts, i+1)
		case '\n':
			starts = append(starts, i+1)
		}
	}
	return starts
}

// SetPosition resets the scanner to pos. The next token is produced only
// after a subsequent call to Scan.
func (s *Scanner) SetPosition(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.src) {
		pos = len(s.src)
	}
	s.pos = pos
	s.tokenKind = token.Unknown
	s.tokenOffset = pos
	s.tokenLength = 0
	s.tokenValue = ""
	s.tokenError = token.ScanNone
}

// Scan advances the scanner and returns the kind of the next token. Once
// the end of the source is reached, Scan returns token.EOF indefinitely.
func (s *Scanner) Scan() token.Kind {
	for {
		kind, length, value, serr := s.scanOne()
		s.tokenKind = kind
		s.tokenOffset = s.pos
		s.tokenLength = length
		s.tokenValue = value
		s.tokenError = serr
		s.pos += length

		if s.ignoreTrivia && kind.IsTrivia() {
			continue
		}
		return kind
	}
}

// Token returns the kind of the most recently scanned token.
func (s *Scanner) Token() token.Kind { return s.tokenKind }

// TokenOffset returns the byte offset of the most recently scanned token.
func (s *Scanner) TokenOffset() int { return s.tokenOffset }

// TokenLength returns the byte length of the most recently scanned token.
func (s *Scanner) TokenLength() int { return s.tokenLength }

// TokenValue returns the decoded content of a StringLiteral token, the raw
// lexeme for other literal/keyword/Unknown tokens, and the empty string for
// structural and trivia tokens.
func (s *Scanner) TokenValue() string { return s.tokenValue }

// TokenError returns the recoverable lexical fault attached to the most
// recently scanned token, or token.ScanNone if there was none.
func (s *Scanner) TokenError() token.ScanError { return s.tokenError }

// TokenStartLine returns the 0-based line on which the current token
// starts.
func (s *Scanner) TokenStartLine() int {
	line, _ := s.lineForOffset(s.tokenOffset)
	return line
}

// TokenStartCharacter returns the 0-based column at which the current token
// starts.
func (s *Scanner) TokenStartCharacter() int {
	_, col := s.lineForOffset(s.tokenOffset)
	return col
}

// PositionAt returns the 0-based (line, column) for an arbitrary offset
// into the scanned text, independent of scan order.
func (s *Scanner) PositionAt(offset int) (line, column int) {
	return s.lineForOffset(offset)
}

func (s *Scanner) lineForOffset(offset int) (line, col int) {
	n := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	}) - 1
	if n < 0 {
		n = 0
	}
	return n, offset - s.lineStarts[n]
}

// scanOne reads exactly one token (of any kind, including trivia) starting
// at s.pos without mutating scanner state, and returns its kind, byte
// length, decoded/raw value, and any scan error.
func (s *Scanner) scanOne() (token.Kind, int, string, token.ScanError) {
	src := s.src
	n := len(src)
	p := s.pos
	if p >= n {
		return token.EOF, 0, "", token.ScanNone
	}

	ch := src[p]
	switch {
	case ch == ' ' || ch == '\t':
		q := p
		for q < n && (src[q] == ' ' || src[q] == '\t') {
			q++
		}
		return token.Trivia, q - p, "", token.ScanNone
	case ch == '\n':
		return token.LineBreakTrivia, 1, "", token.ScanNone
	case ch == '\r':
		if p+1 < n && src[p+1] == '\n' {
			return token.LineBreakTrivia, 2, "", token.ScanNone
		}
		return token.LineBreakTrivia, 1, "", token.ScanNone
	case ch == '{':
		return token.OpenBrace, 1, "", token.ScanNone
	case ch == '}':
		return token.CloseBrace, 1, "", token.ScanNone
	case ch == '[':
		return token.OpenBracket, 1, "", token.ScanNone
	case ch == ']':
		return token.CloseBracket, 1, "", token.ScanNone
	case ch == ':':
		return token.Colon, 1, "", token.ScanNone
	case ch == ',':
		return token.Comma, 1, "", token.ScanNone
	case ch == '"':
		return s.scanString(p)
	case ch == '/':
		if p+1 < n && src[p+1] == '/' {
			return s.scanLineComment(p)
		}
		if p+1 < n && src[p+1] == '*' {
			return s.scanBlockComment(p)
		}
		return token.Unknown, 1, "/", token.ScanNone
	case ch == '-':
		if p+1 < n && isDigit(src[p+1]) {
			return s.scanNumber(p)
		}
		return token.Unknown, 1, "-", token.ScanNone
	case isDigit(ch):
		return s.scanNumber(p)
	case ch == '.':
		return token.Unknown, 1, ".", token.ScanNone
	default:
		return s.scanIdentifierOrKeyword(p)
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isDelimiter(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '{', '}', '[', ']', '"', ':', ',', '/':
		return true
	}
	return false
}

func (s *Scanner) scanIdentifierOrKeyword(p int) (token.Kind, int, string, token.ScanError) {
	src := s.src
	n := len(src)
	start := p
	for p < n && !isDelimiter(src[p]) {
		p++
	}
	lit := string(src[start:p])
	switch lit {
	case "true":
		return token.TrueKeyword, p - start, lit, token.ScanNone
	case "false":
		return token.FalseKeyword, p - start, lit, token.ScanNone
	case "null":
		return token.NullKeyword, p - start, lit, token.ScanNone
	default:
		return token.Unknown, p - start, lit, token.ScanNone
	}
}

// scanNumber matches -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?. A
// leading zero directly followed by another digit stops the token after
// the zero, leaving the remaining digits to form a second token.
func (s *Scanner) scanNumber(start int) (token.Kind, int, string, token.ScanError) {
	src := s.src
	n := len(src)
	p := start
	if src[p] == '-' {
		p++
	}

	if src[p] == '0' {
		p++
		if p < n && isDigit(src[p]) {
			// Two adjacent tokens: "0" (or "-0") then the rest.
			return token.NumericLiteral, p - start, string(src[start:p]), token.ScanNone
		}
	} else {
		for p < n && isDigit(src[p]) {
			p++
		}
	}

	if p < n && src[p] == '.' {
		p++
		if p >= n || !isDigit(src[p]) {
			return token.NumericLiteral, p - start, string(src[start:p]), token.ScanUnexpectedEndOfNumber
		}
		for p < n && isDigit(src[p]) {
			p++
		}
	}

	if p < n && (src[p] == 'e' || src[p] == 'E') {
		p++
		if p < n && (src[p] == '+' || src[p] == '-') {
			p++
		}
		if p >= n || !isDigit(src[p]) {
			return token.NumericLiteral, p - start, string(src[start:p]), token.ScanUnexpectedEndOfNumber
		}
		for p < n && isDigit(src[p]) {
			p++
		}
	}

	return token.NumericLiteral, p - start, string(src[start:p]), token.ScanNone
}

func (s *Scanner) scanLineComment(start int) (token.Kind, int, string, token.ScanError) {
	src := s.src
	n := len(src)
	p := start + 2
	for p < n && src[p] != '\n' && src[p] != '\r' {
		p++
	}
	return token.LineCommentTrivia, p - start, "", token.ScanNone
}

func (s *Scanner) scanBlockComment(start int) (token.Kind, int, string, token.ScanError) {
	src := s.src
	n := len(src)
	p := start + 2
	for {
		if p >= n {
			return token.BlockCommentTrivia, p - start, "", token.ScanUnexpectedEndOfComment
		}
		if src[p] == '*' && p+1 < n && src[p+1] == '/' {
			p += 2
			return token.BlockCommentTrivia, p - start, "", token.ScanNone
		}
		p++
	}
}

// scanString reads a quoted string literal starting at the opening quote,
// decoding escapes into the returned value while the returned length spans
// the full lexeme including both quotes.
func (s *Scanner) scanString(start int) (token.Kind, int, string, token.ScanError) {
	src := s.src
	n := len(src)
	p := start + 1 // consume opening quote

	buf := make([]byte, 0, 16)
	errOut := token.ScanNone

	for {
		if p >= n {
			return token.StringLiteral, p - start, string(buf), token.ScanUnexpectedEndOfString
		}
		ch := src[p]
		switch {
		case ch == '"':
			p++
			return token.StringLiteral, p - start, string(buf), errOut
		case ch == '\n' || ch == '\r':
			return token.StringLiteral, p - start, string(buf), token.ScanUnexpectedEndOfString
		case ch < 0x20:
			buf = append(buf, ch)
			errOut = token.ScanInvalidCharacter
			p++
		case ch == '\\':
			p++
			if p >= n {
				return token.StringLiteral, p - start, string(buf), token.ScanUnexpectedEndOfString
			}
			var adv int
			buf, adv, errOut = s.scanEscape(buf, p, errOut)
			p += adv
		default:
			buf = append(buf, ch)
			p++
		}
	}
}

func (s *Scanner) scanEscape(buf []byte, p int, errOut token.ScanError) ([]byte, int, token.ScanError) {
	src := s.src
	n := len(src)
	ec := src[p]
	switch ec {
	case '"':
		return append(buf, '"'), 1, errOut
	case '\\':
		return append(buf, '\\'), 1, errOut
	case '/':
		return append(buf, '/'), 1, errOut
	case 'b':
		return append(buf, '\b'), 1, errOut
	case 'f':
		return append(buf, '\f'), 1, errOut
	case 'n':
		return append(buf, '\n'), 1, errOut
	case 'r':
		return append(buf, '\r'), 1, errOut
	case 't':
		return append(buf, '\t'), 1, errOut
	case 'u':
		r, adv, uerr := decodeUnicodeEscape(src, p+1, n)
		if uerr != token.ScanNone {
			return buf, 1 + adv, uerr
		}
		total := 1 + adv
		if utf16.IsSurrogate(r) {
			if p+1+adv+1 < n && src[p+1+adv] == '\\' && src[p+2+adv] == 'u' {
				r2, adv2, uerr2 := decodeUnicodeEscape(src, p+adv+3, n)
				if uerr2 == token.ScanNone {
					combined := utf16.DecodeRune(r, r2)
					if combined != unicode.ReplacementChar {
						buf = append(buf, string(combined)...)
						return buf, total + 2 + adv2, errOut
					}
				}
			}
			buf = append(buf, string(unicode.ReplacementChar)...)
			return buf, total, errOut
		}
		buf = append(buf, string(r)...)
		return buf, total, errOut
	default:
		buf = append(buf, ec)
		return buf, 1, token.ScanInvalidEscapeCharacter
	}
}

// decodeUnicodeEscape reads exactly 4 hex digits at src[p:] and returns the
// decoded code unit, the number of bytes consumed, and any scan error.
func decodeUnicodeEscape(src []byte, p, n int) (rune, int, token.ScanError) {
	if p+4 > n {
		return 0, n - p, token.ScanInvalidUnicode
	}
	v, err := strconv.ParseUint(string(src[p:p+4]), 16, 32)
	if err != nil {
		for i := 0; i < 4; i++ {
			if !isHex(src[p+i]) {
				return 0, i, token.ScanInvalidUnicode
			}
		}
		return 0, 4, token.ScanInvalidUnicode
	}
	return rune(v), 4, token.ScanNone
}
