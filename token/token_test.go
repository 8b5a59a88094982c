package token

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestKindString(t *testing.T) {
	qt.Assert(t, qt.Equals(OpenBrace.String(), "OpenBrace"))
	qt.Assert(t, qt.Equals(Kind(999).String(), "Kind(999)"))
}

func TestKindIsTrivia(t *testing.T) {
	qt.Assert(t, qt.IsTrue(Trivia.IsTrivia()))
	qt.Assert(t, qt.IsTrue(LineCommentTrivia.IsTrivia()))
	qt.Assert(t, qt.IsFalse(OpenBrace.IsTrivia()))
}

func TestParseErrorCodeString(t *testing.T) {
	qt.Assert(t, qt.Equals(CloseBraceExpected.String(), "CloseBraceExpected"))
	qt.Assert(t, qt.Equals(fmt.Sprint(ValueExpected), "ValueExpected"))
}

func TestFromScanError(t *testing.T) {
	qt.Assert(t, qt.Equals(FromScanError(ScanUnexpectedEndOfString), UnexpectedEndOfString))
	qt.Assert(t, qt.Equals(FromScanError(ScanNone), InvalidSymbol))
}
