package jsonc

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/jsonc-tools/jsonc/token"
)

func TestParseTolerantOfTrailingComma(t *testing.T) {
	v, errs := Parse(`{"a":1,}`, ParseOptions{AllowTrailingComma: true})
	qt.Assert(t, qt.Equals(len(errs), 0))
	qt.Assert(t, qt.DeepEquals(v, map[string]interface{}{"a": float64(1)}))
}

func TestFormatAndModifyRoundTrip(t *testing.T) {
	text := `{"a":1}`
	opts := FormattingOptions{TabSize: 2, InsertSpaces: true, EOL: "\n"}
	edits, err := Modify(text, Path{"b"}, float64(2), ModificationOptions{FormattingOptions: opts})
	qt.Assert(t, qt.IsNil(err))
	got := ApplyEdits(text, edits)
	qt.Assert(t, qt.Equals(got, "{\"a\":1,\n  \"b\": 2}"))

	formatted := ApplyEdits(got, Format(got, nil, opts))
	qt.Assert(t, qt.Equals(formatted, "{\n  \"a\": 1,\n  \"b\": 2\n}"))
}

func TestGetLocationAtPropertyKey(t *testing.T) {
	loc := GetLocation(`{"a": 1, "b`, 11)
	qt.Assert(t, qt.IsTrue(loc.IsAtPropertyKey))
}

func TestStripCommentsPreservesOffsets(t *testing.T) {
	text := `{"a": 1 /* c */}`
	stripped := StripComments(text, 0)
	qt.Assert(t, qt.Equals(len(stripped), len(text)))
	qt.Assert(t, qt.Equals(stripped, `{"a": 1 `+"       "+`}`))
}

func TestPrintParseErrorCode(t *testing.T) {
	qt.Assert(t, qt.Equals(PrintParseErrorCode(token.CloseBraceExpected), "CloseBraceExpected"))
}
