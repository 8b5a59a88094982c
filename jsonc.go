// Package jsonc is the public entry point for the scanner, parser,
// formatter, and modifier: a tolerant reader and minimal-edit rewriter
// for JSON with comments and trailing commas.
//
// The package itself holds no logic; every operation here delegates to
// the leaf package that owns it (scanner, parser, ast, format, modify),
// mirroring cuelang.org/go/cue's role as a thin façade over cue/scanner,
// cue/parser, and cue/format.
package jsonc

import (
	"github.com/jsonc-tools/jsonc/ast"
	"github.com/jsonc-tools/jsonc/format"
	"github.com/jsonc-tools/jsonc/modify"
	"github.com/jsonc-tools/jsonc/parser"
	"github.com/jsonc-tools/jsonc/scanner"
	"github.com/jsonc-tools/jsonc/token"
)

// Re-exported types, so callers need only import this package for the
// common case.
type (
	Scanner             = scanner.Scanner
	Node                = ast.Node
	NodeType            = ast.NodeType
	Path                = ast.Path
	Segment             = ast.Segment
	Location            = parser.Location
	Visitor             = parser.Visitor
	ParseOptions        = parser.Options
	ParseError          = parser.Error
	ParseErrorList      = parser.ErrorList
	FormattingOptions   = format.Options
	ModificationOptions = modify.Options
	Edit                = format.Edit
	Range               = format.Range
	ParseErrorCode      = token.ParseErrorCode
)

// Node type constants, re-exported for callers that inspect ast.Node.Type
// without importing the ast package directly.
const (
	Object   = ast.Object
	Array    = ast.Array
	Property = ast.Property
	String   = ast.String
	Number   = ast.Number
	Boolean  = ast.Boolean
	Null     = ast.Null
)

// CreateScanner returns a scanner over text. If ignoreTrivia is true, Scan
// skips whitespace, line breaks, and comments, surfacing only structural
// and literal tokens.
func CreateScanner(text string, ignoreTrivia bool) *Scanner {
	return scanner.NewScanner(text, ignoreTrivia)
}

// Parse returns the logical JSON value text encodes: nil, bool, float64,
// string, []interface{}, or map[string]interface{}. Recoverable faults
// are recorded rather than aborting the parse.
func Parse(text string, opts ParseOptions) (interface{}, ParseErrorList) {
	return parser.Parse(text, opts)
}

// ParseTree builds the concrete-syntax tree, preserving every node's
// source offsets.
func ParseTree(text string, opts ParseOptions) (*Node, ParseErrorList) {
	return parser.ParseTree(text, opts)
}

// Visit streams parse events for text in document order without building
// a tree.
func Visit(text string, v Visitor, opts ParseOptions) error {
	return parser.Visit(text, v, opts)
}

// GetLocation scans text up to offset and reports the enclosing path,
// whether offset sits at a property key, and the most recently completed
// node.
func GetLocation(text string, offset int) Location {
	return parser.GetLocation(text, offset)
}

// FindNodeAtLocation descends root along path, returning the node there
// or nil if path does not address an existing node.
func FindNodeAtLocation(root *Node, path Path) *Node {
	return ast.FindNodeAtLocation(root, path)
}

// FindNodeAtOffset returns the smallest node in root's tree containing
// offset. includeRightBound additionally allows offset to sit exactly at
// a node's end.
func FindNodeAtOffset(root *Node, offset int, includeRightBound bool) *Node {
	return ast.FindNodeAtOffset(root, offset, includeRightBound)
}

// GetNodePath reconstructs the path from n's root down to n.
func GetNodePath(n *Node) Path {
	return ast.GetNodePath(n)
}

// GetNodeValue recursively reconstructs the logical JSON value rooted
// at n.
func GetNodeValue(n *Node) interface{} {
	return ast.GetNodeValue(n)
}

// StripComments returns a copy of text with every non-newline character
// inside a comment span replaced by replaceCh (a space if replaceCh is
// 0), preserving every other byte's offset.
func StripComments(text string, replaceCh byte) string {
	return ast.StripComments(text, replaceCh)
}

// Format returns the ordered, non-overlapping edits that normalize the
// whitespace of text (or, if rng is non-nil, of the lines rng overlaps).
func Format(text string, rng *Range, opts FormattingOptions) []Edit {
	return format.Format(text, rng, opts)
}

// ApplyEdits applies a sorted, non-overlapping edit list to text.
func ApplyEdits(text string, edits []Edit) string {
	return format.ApplyEdits(text, edits)
}

// Modify returns the edits that set, insert, or remove value at path in
// text. A nil value removes the addressed node.
func Modify(text string, path Path, value interface{}, opts ModificationOptions) ([]Edit, error) {
	return modify.Modify(text, path, value, opts)
}

// PrintParseErrorCode returns a stable, human-readable name for code.
func PrintParseErrorCode(code ParseErrorCode) string {
	return code.String()
}
