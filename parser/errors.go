package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsonc-tools/jsonc/token"
)

// Error is a single recoverable fault recorded while parsing. It marks
// where parsing diverged from strict JSON; the parser continues past it,
// and the value/tree returned alongside is a best-effort result that may
// omit the offending token.
type Error struct {
	Code   token.ParseErrorCode
	Offset int
	Length int
	Line   int
	Column int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line+1, e.Column+1, e.Code)
}

// ErrorList collects Errors in the order they were encountered. It
// implements error so a caller can treat it as a single aggregate fault as
// well as range over the individual entries.
type ErrorList []*Error

func (p *ErrorList) add(e *Error) { *p = append(*p, e) }

// Sort orders the list by offset, ascending.
func (p ErrorList) Sort() {
	sort.SliceStable(p, func(i, j int) bool { return p[i].Offset < p[j].Offset })
}

// Err returns an error equivalent to this list, or nil if the list is
// empty.
func (p ErrorList) Err() error {
	if len(p) == 0 {
		return nil
	}
	return p
}

func (p ErrorList) Error() string {
	switch len(p) {
	case 0:
		return "no errors"
	case 1:
		return p[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (and %d more errors)", p[0], len(p)-1)
	return b.String()
}
