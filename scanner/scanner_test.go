package scanner

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/jsonc-tools/jsonc/token"
)

type elt struct {
	kind  token.Kind
	lit   string
	value string
}

func scanAll(t *testing.T, text string, ignoreTrivia bool) []elt {
	t.Helper()
	s := NewScanner(text, ignoreTrivia)
	var got []elt
	for {
		k := s.Scan()
		got = append(got, elt{k, string(s.src[s.TokenOffset() : s.TokenOffset()+s.TokenLength()]), s.TokenValue()})
		if k == token.EOF {
			return got
		}
	}
}

func TestTokenCoverage(t *testing.T) {
	// Concatenation of lexemes equals the input; EOF is zero-length at
	// len(text).
	text := `{ "a": [1, 2.5e10, true, null], /* c */ "b": "x\ny" // trail
}`
	s := NewScanner(text, false)
	var rebuilt string
	for {
		k := s.Scan()
		rebuilt += string(s.src[s.TokenOffset() : s.TokenOffset()+s.TokenLength()])
		if k == token.EOF {
			qt.Assert(t, qt.Equals(s.TokenOffset(), len(text)))
			qt.Assert(t, qt.Equals(s.TokenLength(), 0))
			break
		}
	}
	qt.Assert(t, qt.Equals(rebuilt, text))
}

func TestOffsetsMonotone(t *testing.T) {
	text := `{"x":1,"y":[true,false,null]}`
	s := NewScanner(text, false)
	prevOffset, prevLen := 0, 0
	first := true
	for {
		k := s.Scan()
		if !first {
			qt.Assert(t, qt.Equals(prevOffset+prevLen, s.TokenOffset()))
		}
		first = false
		prevOffset, prevLen = s.TokenOffset(), s.TokenLength()
		if k == token.EOF {
			break
		}
	}
}

func TestStructuralTokens(t *testing.T) {
	got := scanAll(t, "{}", true)
	want := []elt{
		{token.OpenBrace, "{", ""},
		{token.CloseBrace, "}", ""},
		{token.EOF, "", ""},
	}
	qt.Assert(t, qt.DeepEquals(got, want))
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	got := scanAll(t, "True false null", true)
	qt.Assert(t, qt.Equals(got[0].kind, token.Unknown))
	qt.Assert(t, qt.Equals(got[0].value, "True"))
	qt.Assert(t, qt.Equals(got[1].kind, token.FalseKeyword))
	qt.Assert(t, qt.Equals(got[2].kind, token.NullKeyword))
}

func TestStringEscapes(t *testing.T) {
	s := NewScanner(`"a\tbA😀"`, true)
	k := s.Scan()
	qt.Assert(t, qt.Equals(k, token.StringLiteral))
	qt.Assert(t, qt.Equals(s.TokenError(), token.ScanNone))
	qt.Assert(t, qt.Equals(s.TokenValue(), "a\tbA\U0001F600"))
}

func TestStringInvalidEscape(t *testing.T) {
	s := NewScanner(`"a\vb"`, true)
	k := s.Scan()
	qt.Assert(t, qt.Equals(k, token.StringLiteral))
	qt.Assert(t, qt.Equals(s.TokenError(), token.ScanInvalidEscapeCharacter))
}

func TestStringUnterminatedAtNewline(t *testing.T) {
	s := NewScanner("\"abc\nrest", true)
	k := s.Scan()
	qt.Assert(t, qt.Equals(k, token.StringLiteral))
	qt.Assert(t, qt.Equals(s.TokenError(), token.ScanUnexpectedEndOfString))
	// the line break itself was not consumed
	qt.Assert(t, qt.Equals(s.TokenLength(), len("\"abc")))
}

func TestStringControlCharacter(t *testing.T) {
	s := NewScanner("\"a\x01b\"", true)
	k := s.Scan()
	qt.Assert(t, qt.Equals(k, token.StringLiteral))
	qt.Assert(t, qt.Equals(s.TokenError(), token.ScanInvalidCharacter))
	qt.Assert(t, qt.Equals(s.TokenValue(), "a\x01b"))
}

func TestNumbers(t *testing.T) {
	cases := []struct {
		text string
		lit  string
		err  token.ScanError
	}{
		{"0", "0", token.ScanNone},
		{"-0", "-0", token.ScanNone},
		{"123", "123", token.ScanNone},
		{"-123.45", "-123.45", token.ScanNone},
		{"1.5e10", "1.5e10", token.ScanNone},
		{"1.5E-10", "1.5E-10", token.ScanNone},
		{"1.", "1.", token.ScanUnexpectedEndOfNumber},
		{"1e", "1e", token.ScanUnexpectedEndOfNumber},
		{"1e+", "1e+", token.ScanUnexpectedEndOfNumber},
	}
	for _, c := range cases {
		s := NewScanner(c.text, true)
		k := s.Scan()
		qt.Assert(t, qt.Equals(k, token.NumericLiteral))
		qt.Assert(t, qt.Equals(s.TokenValue(), c.lit))
		qt.Assert(t, qt.Equals(s.TokenError(), c.err))
	}
}

func TestLeadingZeroSplitsTokens(t *testing.T) {
	got := scanAll(t, "01", true)
	want := []elt{
		{token.NumericLiteral, "0", "0"},
		{token.NumericLiteral, "1", "1"},
		{token.EOF, "", ""},
	}
	qt.Assert(t, qt.DeepEquals(got, want))
}

func TestBareMinusAndDot(t *testing.T) {
	got := scanAll(t, "- .0", true)
	want := []elt{
		{token.Unknown, "-", "-"},
		{token.Unknown, ".", "."},
		{token.NumericLiteral, "0", "0"},
		{token.EOF, "", ""},
	}
	qt.Assert(t, qt.DeepEquals(got, want))
}

func TestComments(t *testing.T) {
	s := NewScanner("// line\n/* block\n*/end", false)
	qt.Assert(t, qt.Equals(s.Scan(), token.LineCommentTrivia))
	qt.Assert(t, qt.Equals(s.TokenLength(), len("// line")))
	qt.Assert(t, qt.Equals(s.Scan(), token.LineBreakTrivia))
	qt.Assert(t, qt.Equals(s.Scan(), token.BlockCommentTrivia))
	qt.Assert(t, qt.Equals(s.TokenError(), token.ScanNone))
}

func TestUnterminatedBlockComment(t *testing.T) {
	s := NewScanner("/* oops", true)
	k := s.Scan()
	qt.Assert(t, qt.Equals(k, token.BlockCommentTrivia))
	qt.Assert(t, qt.Equals(s.TokenError(), token.ScanUnexpectedEndOfComment))
}

func TestIgnoreTriviaSkipsComments(t *testing.T) {
	got := scanAll(t, "1 /* x */ 2", true)
	want := []elt{
		{token.NumericLiteral, "1", "1"},
		{token.NumericLiteral, "2", "2"},
		{token.EOF, "", ""},
	}
	qt.Assert(t, qt.DeepEquals(got, want))
}

func TestLineAndColumnTracking(t *testing.T) {
	s := NewScanner("{\n  \"a\": 1\n}", true)
	s.Scan() // {
	s.Scan() // "a"
	qt.Assert(t, qt.Equals(s.TokenStartLine(), 1))
	qt.Assert(t, qt.Equals(s.TokenStartCharacter(), 2))
}

func TestSetPositionIndependentOfScanOrder(t *testing.T) {
	text := "{\n  \"a\": 1\n}"
	s := NewScanner(text, true)
	s.SetPosition(5)
	s.Scan()
	line1, col1 := s.TokenStartLine(), s.TokenStartCharacter()

	s2 := NewScanner(text, true)
	s2.Scan()
	s2.Scan()
	s2.SetPosition(5)
	s2.Scan()
	line2, col2 := s2.TokenStartLine(), s2.TokenStartCharacter()

	qt.Assert(t, qt.Equals(line1, line2))
	qt.Assert(t, qt.Equals(col1, col2))
}

func TestEOFIsStable(t *testing.T) {
	s := NewScanner("1", true)
	s.Scan()
	first := s.Scan()
	second := s.Scan()
	qt.Assert(t, qt.Equals(first, token.EOF))
	qt.Assert(t, qt.Equals(second, token.EOF))
	qt.Assert(t, qt.Equals(s.TokenOffset(), 1))
	qt.Assert(t, qt.Equals(s.TokenLength(), 0))
}
