// Package token defines the lexical vocabulary shared by the scanner and
// parser: token kinds, scan error codes, and parse error codes.
package token

import "fmt"

// Kind classifies a single scanned token.
type Kind int

// The token kinds produced by the scanner.
const (
	Unknown Kind = iota
	EOF

	OpenBrace
	CloseBrace
	OpenBracket
	CloseBracket
	Comma
	Colon

	NullKeyword
	TrueKeyword
	FalseKeyword
	StringLiteral
	NumericLiteral

	LineCommentTrivia
	BlockCommentTrivia
	LineBreakTrivia
	Trivia // horizontal whitespace (spaces, tabs)
)

var kindNames = map[Kind]string{
	Unknown:            "Unknown",
	EOF:                "EOF",
	OpenBrace:          "OpenBrace",
	CloseBrace:         "CloseBrace",
	OpenBracket:        "OpenBracket",
	CloseBracket:       "CloseBracket",
	Comma:              "Comma",
	Colon:              "Colon",
	NullKeyword:        "NullKeyword",
	TrueKeyword:        "TrueKeyword",
	FalseKeyword:       "FalseKeyword",
	StringLiteral:      "StringLiteral",
	NumericLiteral:     "NumericLiteral",
	LineCommentTrivia:  "LineCommentTrivia",
	BlockCommentTrivia: "BlockCommentTrivia",
	LineBreakTrivia:    "LineBreakTrivia",
	Trivia:             "Trivia",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsTrivia reports whether k carries no semantic content.
func (k Kind) IsTrivia() bool {
	switch k {
	case Trivia, LineBreakTrivia, LineCommentTrivia, BlockCommentTrivia:
		return true
	}
	return false
}

// ScanError annotates a token with a recoverable lexical fault. The token
// is always produced, possibly with a truncated lexeme.
type ScanError int

// Scan error codes. Named with a Scan prefix to avoid colliding with the
// identically-named ParseErrorCode values below, which share this package.
const (
	ScanNone ScanError = iota
	ScanUnexpectedEndOfComment
	ScanUnexpectedEndOfString
	ScanUnexpectedEndOfNumber
	ScanInvalidUnicode
	ScanInvalidEscapeCharacter
	ScanInvalidCharacter
)

var scanErrorNames = map[ScanError]string{
	ScanNone:                   "None",
	ScanUnexpectedEndOfComment: "UnexpectedEndOfComment",
	ScanUnexpectedEndOfString:  "UnexpectedEndOfString",
	ScanUnexpectedEndOfNumber:  "UnexpectedEndOfNumber",
	ScanInvalidUnicode:         "InvalidUnicode",
	ScanInvalidEscapeCharacter: "InvalidEscapeCharacter",
	ScanInvalidCharacter:       "InvalidCharacter",
}

func (e ScanError) String() string {
	if s, ok := scanErrorNames[e]; ok {
		return s
	}
	return fmt.Sprintf("ScanError(%d)", int(e))
}

// ParseErrorCode identifies a recoverable fault recorded by the parser.
type ParseErrorCode int

// Parse error codes, one per recoverable parse fault the parser reports.
const (
	InvalidSymbol ParseErrorCode = iota
	InvalidNumberFormat
	PropertyNameExpected
	ValueExpected
	ColonExpected
	CommaExpected
	CloseBraceExpected
	CloseBracketExpected
	EndOfFileExpected
	InvalidCommentToken
	UnexpectedEndOfComment
	UnexpectedEndOfString
	UnexpectedEndOfNumber
	InvalidUnicode
	InvalidEscapeCharacter
	InvalidCharacter
)

var parseErrorNames = map[ParseErrorCode]string{
	InvalidSymbol:          "InvalidSymbol",
	InvalidNumberFormat:    "InvalidNumberFormat",
	PropertyNameExpected:   "PropertyNameExpected",
	ValueExpected:          "ValueExpected",
	ColonExpected:          "ColonExpected",
	CommaExpected:          "CommaExpected",
	CloseBraceExpected:     "CloseBraceExpected",
	CloseBracketExpected:   "CloseBracketExpected",
	EndOfFileExpected:      "EndOfFileExpected",
	InvalidCommentToken:    "InvalidCommentToken",
	UnexpectedEndOfComment: "UnexpectedEndOfComment",
	UnexpectedEndOfString:  "UnexpectedEndOfString",
	UnexpectedEndOfNumber:  "UnexpectedEndOfNumber",
	InvalidUnicode:         "InvalidUnicode",
	InvalidEscapeCharacter: "InvalidEscapeCharacter",
	InvalidCharacter:       "InvalidCharacter",
}

// String returns a stable human-readable name for the error code. This is
// the implementation behind the public PrintParseErrorCode.
func (c ParseErrorCode) String() string {
	if s, ok := parseErrorNames[c]; ok {
		return s
	}
	return fmt.Sprintf("ParseErrorCode(%d)", int(c))
}

// FromScanError maps a scanner-reported fault onto the matching parse error
// code, so a lexical error surfaces to callers with the same vocabulary as
// a grammar error.
func FromScanError(e ScanError) ParseErrorCode {
	switch e {
	case ScanUnexpectedEndOfComment:
		return UnexpectedEndOfComment
	case ScanUnexpectedEndOfString:
		return UnexpectedEndOfString
	case ScanUnexpectedEndOfNumber:
		return UnexpectedEndOfNumber
	case ScanInvalidUnicode:
		return InvalidUnicode
	case ScanInvalidEscapeCharacter:
		return InvalidEscapeCharacter
	case ScanInvalidCharacter:
		return InvalidCharacter
	default:
		return InvalidSymbol
	}
}
