// Package format computes a minimal, ordered list of edits that normalize
// the whitespace and indentation of a JSONC document.
package format

import (
	"strings"

	"github.com/jsonc-tools/jsonc/scanner"
	"github.com/jsonc-tools/jsonc/token"
)

// Edit describes a single text replacement against the original document.
type Edit struct {
	Offset  int
	Length  int
	Content string
}

// ApplyEdits applies a sorted, non-overlapping list of edits (as produced
// by Format or the modify package) to text. Multiple zero-length edits at
// the same offset are applied in the order given.
func ApplyEdits(text string, edits []Edit) string {
	var b strings.Builder
	pos := 0
	for _, e := range edits {
		if e.Offset > pos {
			b.WriteString(text[pos:e.Offset])
		}
		b.WriteString(e.Content)
		pos = e.Offset + e.Length
	}
	if pos < len(text) {
		b.WriteString(text[pos:])
	}
	return b.String()
}

// Range restricts formatting to a span of the document; Format expands it
// outward to the enclosing line boundaries before computing edits.
type Range struct {
	Offset int
	Length int
}

// Options controls whitespace and indentation normalization.
//
// Defaults, when the zero value of a field means "unset": EOL is
// auto-detected from the document when empty; TabSize falls back to 4
// when zero or negative. InsertSpaces and KeepLines have no unset
// sentinel distinct from their zero value, so callers who want
// InsertSpaces=true must set it explicitly.
type Options struct {
	TabSize            int
	InsertSpaces       bool
	EOL                string
	InsertFinalNewline bool
	KeepLines          bool
}

// Format scans text and returns the edits that normalize its whitespace.
// If rng is nil the whole document is formatted at indent level 0;
// otherwise rng is expanded to its enclosing lines and the initial indent
// is derived from that first line's leading whitespace, and edits outside
// the (expanded) range are discarded.
func Format(text string, rng *Range, opts Options) []Edit {
	if opts.TabSize <= 0 {
		opts.TabSize = 4
	}
	eol := opts.EOL
	if eol == "" {
		eol = detectEOL(text)
	}

	startOffset, endOffset, initialIndent := 0, len(text), 0
	if rng != nil {
		startOffset, endOffset, initialIndent = expandRange(text, *rng, opts)
	}

	items, gaps := scanSignificant(text)

	var edits []Edit
	depth := initialIndent
	for i := 1; i < len(items); i++ {
		prev, cur := items[i-1], items[i]
		gapStart, gapEnd := prev.offset+prev.length, cur.offset
		n := gaps[i]

		if prev.isBad || cur.isBad {
			// Error tolerance: leave this token run's spacing untouched.
			continue
		}

		replacement, delta := decideGap(prev, cur, n, depth, eol, opts)
		depth += delta
		if replacement == nil {
			continue
		}
		if gapEnd < startOffset || gapStart > endOffset {
			continue
		}
		if text[gapStart:gapEnd] == *replacement {
			continue
		}
		edits = append(edits, Edit{Offset: gapStart, Length: gapEnd - gapStart, Content: *replacement})
	}

	if opts.InsertFinalNewline && len(text) > 0 && !strings.HasSuffix(text, eol) {
		edits = append(edits, Edit{Offset: len(text), Length: 0, Content: eol})
	}

	return edits
}

func detectEOL(text string) string {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				return "\r\n"
			}
			return "\r"
		case '\n':
			return "\n"
		}
	}
	return "\n"
}

func expandRange(text string, rng Range, opts Options) (start, end, indent int) {
	start = rng.Offset
	for start > 0 && text[start-1] != '\n' {
		start--
	}
	end = rng.Offset + rng.Length
	for end < len(text) && text[end] != '\n' {
		end++
	}
	i, spaces, tabs := start, 0, 0
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		if text[i] == '\t' {
			tabs++
		} else {
			spaces++
		}
		i++
	}
	indent = tabs + spaces/opts.TabSize
	return
}

func indentStr(level int, opts Options) string {
	if level < 0 {
		level = 0
	}
	if opts.InsertSpaces {
		return strings.Repeat(" ", opts.TabSize*level)
	}
	return strings.Repeat("\t", level)
}

// sigItem is a token that carries meaning for layout decisions: every
// scanned token except horizontal whitespace and line breaks (comments are
// kept, since they participate in spacing rules).
type sigItem struct {
	kind   token.Kind
	offset int
	length int
	isBad  bool
}

// scanSignificant walks text once and returns the significant tokens along
// with, for each index i>0, the number of LineBreakTrivia tokens skipped
// between items[i-1] and items[i].
func scanSignificant(text string) (items []sigItem, gapBreaks []int) {
	s := scanner.NewScanner(text, false)
	breaks := 0
	for {
		k := s.Scan()
		switch k {
		case token.Trivia:
			continue
		case token.LineBreakTrivia:
			breaks++
			continue
		}
		isBad := k == token.Unknown || s.TokenError() != token.ScanNone
		items = append(items, sigItem{kind: k, offset: s.TokenOffset(), length: s.TokenLength(), isBad: isBad})
		gapBreaks = append(gapBreaks, breaks)
		breaks = 0
		if k == token.EOF {
			return
		}
	}
}

type category int

const (
	catNone category = iota
	catOpenNonEmpty
	catCloseNonEmpty
	catCloseEmpty
	catAfterComma
	catColonBefore
	catColonAfter
)

func classify(prev, cur sigItem) category {
	switch {
	case cur.kind == token.CloseBrace && prev.kind == token.OpenBrace,
		cur.kind == token.CloseBracket && prev.kind == token.OpenBracket:
		return catCloseEmpty
	case cur.kind == token.CloseBrace || cur.kind == token.CloseBracket:
		return catCloseNonEmpty
	case prev.kind == token.OpenBrace || prev.kind == token.OpenBracket:
		return catOpenNonEmpty
	case prev.kind == token.Comma:
		return catAfterComma
	case cur.kind == token.Colon:
		return catColonBefore
	case prev.kind == token.Colon:
		return catColonAfter
	default:
		return catNone
	}
}

// decideGap decides the replacement text (nil means "leave as-is") for the
// gap between prev and cur, and how depth should change for subsequent
// pairs. n is the number of original line breaks in the gap.
func decideGap(prev, cur sigItem, n, depth int, eol string, opts Options) (*string, int) {
	if cur.kind == token.LineCommentTrivia {
		return strptr(" "), 0
	}
	if prev.kind == token.LineCommentTrivia {
		return strptr(eol + indentStr(depth, opts)), 0
	}
	if cur.kind == token.BlockCommentTrivia || prev.kind == token.BlockCommentTrivia {
		if n > 0 {
			return strptr(eol + indentStr(depth, opts)), 0
		}
		return strptr(" "), 0
	}

	switch classify(prev, cur) {
	case catCloseEmpty:
		return strptr(""), 0
	case catOpenNonEmpty:
		d := depth + 1
		if opts.KeepLines {
			if n > 0 {
				return strptr(strings.Repeat(eol, n) + indentStr(d, opts)), 1
			}
			return strptr(" "), 1
		}
		return strptr(eol + indentStr(d, opts)), 1
	case catCloseNonEmpty:
		d := depth - 1
		if opts.KeepLines {
			if n > 0 {
				return strptr(strings.Repeat(eol, n) + indentStr(d, opts)), -1
			}
			return strptr(" "), -1
		}
		return strptr(eol + indentStr(d, opts)), -1
	case catAfterComma:
		if opts.KeepLines {
			if n > 0 {
				return strptr(strings.Repeat(eol, n) + indentStr(depth, opts)), 0
			}
			return strptr(" "), 0
		}
		return strptr(eol + indentStr(depth, opts)), 0
	case catColonBefore:
		return strptr(""), 0
	case catColonAfter:
		if opts.KeepLines && n > 0 {
			return strptr(strings.Repeat(eol, n) + indentStr(depth, opts)), 0
		}
		return strptr(" "), 0
	default:
		return nil, 0
	}
}

func strptr(s string) *string { return &s }
