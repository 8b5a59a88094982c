package format

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestFormatCollapsesInnerSpacing(t *testing.T) {
	edits := Format(`{"x" : 1}`, nil, Options{TabSize: 2, InsertSpaces: true, EOL: "\n"})
	got := ApplyEdits(`{"x" : 1}`, edits)
	qt.Assert(t, qt.Equals(got, "{\n  \"x\": 1\n}"))
}

func TestFormatKeepLinesPreservesBlankLines(t *testing.T) {
	text := "{\"settings\":\n\n\n{\"foo\":1}\n}"
	edits := Format(text, nil, Options{TabSize: 2, InsertSpaces: true, EOL: "\n", KeepLines: true})
	got := ApplyEdits(text, edits)
	qt.Assert(t, qt.Equals(got, "{ \"settings\":\n\n\n  { \"foo\": 1 }\n}"))
}

// Formatting an already-formatted document is a no-op.
func TestFormatIsIdempotent(t *testing.T) {
	text := `{"x" : 1}`
	opts := Options{TabSize: 2, InsertSpaces: true, EOL: "\n"}
	once := ApplyEdits(text, Format(text, nil, opts))
	twice := ApplyEdits(once, Format(once, nil, opts))
	qt.Assert(t, qt.Equals(twice, once))
}

// Edits never overlap and are in ascending offset order.
func TestFormatEditsDoNotOverlap(t *testing.T) {
	edits := Format(`{"a":1,"b":[2,3],"c":{"d":4}}`, nil, Options{TabSize: 2, InsertSpaces: true, EOL: "\n"})
	for i := 1; i < len(edits); i++ {
		qt.Assert(t, qt.IsTrue(edits[i].Offset >= edits[i-1].Offset+edits[i-1].Length))
	}
}

// Comment text survives formatting byte-for-byte.
func TestFormatPreservesComments(t *testing.T) {
	text := "{\n/* keep me */\n\"a\":1 // trailing\n}"
	edits := Format(text, nil, Options{TabSize: 2, InsertSpaces: true, EOL: "\n"})
	got := ApplyEdits(text, edits)
	qt.Assert(t, qt.IsTrue(strings.Contains(got, "/* keep me */")))
	qt.Assert(t, qt.IsTrue(strings.Contains(got, "// trailing")))
}

func TestFormatEmptyContainersStayCompact(t *testing.T) {
	edits := Format(`{"a":{},"b":[]}`, nil, Options{TabSize: 2, InsertSpaces: true, EOL: "\n"})
	got := ApplyEdits(`{"a":{},"b":[]}`, edits)
	qt.Assert(t, qt.Equals(got, "{\n  \"a\": {},\n  \"b\": []\n}"))
}

func TestFormatInsertFinalNewline(t *testing.T) {
	edits := Format(`{"a":1}`, nil, Options{TabSize: 2, InsertSpaces: true, EOL: "\n", InsertFinalNewline: true})
	got := ApplyEdits(`{"a":1}`, edits)
	qt.Assert(t, qt.IsTrue(strings.HasSuffix(got, "\n")))
}

func TestFormatUsesTabs(t *testing.T) {
	edits := Format(`{"a":1}`, nil, Options{TabSize: 1, InsertSpaces: false, EOL: "\n"})
	got := ApplyEdits(`{"a":1}`, edits)
	qt.Assert(t, qt.Equals(got, "{\n\t\"a\": 1\n}"))
}
