package ast

import (
	"github.com/jsonc-tools/jsonc/scanner"
	"github.com/jsonc-tools/jsonc/token"
)

// StripComments returns a copy of text with every non-newline character
// inside a comment span replaced by replaceCh, preserving every other
// byte's offset. If replaceCh is 0, a space is used.
func StripComments(text string, replaceCh byte) string {
	if replaceCh == 0 {
		replaceCh = ' '
	}
	out := []byte(text)
	s := scanner.NewScanner(text, false)
	for {
		k := s.Scan()
		if k == token.EOF {
			break
		}
		if k != token.LineCommentTrivia && k != token.BlockCommentTrivia {
			continue
		}
		start, end := s.TokenOffset(), s.TokenOffset()+s.TokenLength()
		for i := start; i < end; i++ {
			if out[i] != '\n' && out[i] != '\r' {
				out[i] = replaceCh
			}
		}
	}
	return string(out)
}
