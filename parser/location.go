package parser

import "github.com/jsonc-tools/jsonc/ast"

// Location describes what lies at a particular byte offset in a document:
// the path of property names/array indices leading to it, the nearest
// node whose span the scan had already completed, and whether the offset
// falls inside a property key rather than a value.
type Location struct {
	Path            ast.Path
	PreviousNode    *ast.Node
	IsAtPropertyKey bool
}

// Matches reports whether l.Path matches pattern. A "*" segment matches
// exactly one path segment of any kind; a "**" segment matches zero or
// more segments and may appear at most meaningfully once per match attempt.
func (l Location) Matches(pattern []ast.Segment) bool {
	return matchPath(l.Path, pattern)
}

func matchPath(path ast.Path, pattern []ast.Segment) bool {
	i := 0
	for j := 0; j < len(pattern); j++ {
		if s, ok := pattern[j].(string); ok && s == "**" {
			if j == len(pattern)-1 {
				return true
			}
			for k := i; k <= len(path); k++ {
				if matchPath(path[k:], pattern[j+1:]) {
					return true
				}
			}
			return false
		}
		if i >= len(path) {
			return false
		}
		if s, ok := pattern[j].(string); ok && s == "*" {
			i++
			continue
		}
		if pattern[j] != path[i] {
			return false
		}
		i++
	}
	return i == len(path)
}

// GetLocation scans text and reports the Location at byte offset.
//
// It rides Visit's event stream rather than re-implementing the grammar:
// a locator tracks a path of keys/indices and the most recently completed
// node, updating them as each event arrives and refusing further updates
// once the scan has moved past offset.
func GetLocation(text string, offset int) Location {
	g := &locator{offset: offset}
	_ = Visit(text, Visitor{
		OnObjectBegin:    g.objectBegin,
		OnObjectProperty: g.objectProperty,
		OnObjectEnd:      g.objectEnd,
		OnArrayBegin:     g.arrayBegin,
		OnArrayEnd:       g.arrayEnd,
		OnLiteralValue:   g.literalValue,
		OnSeparator:      g.separator,
	}, Options{AllowTrailingComma: true, AllowEmptyContent: true})
	return Location{Path: g.path, PreviousNode: g.previousNode, IsAtPropertyKey: g.isAtPropertyKey}
}

type locator struct {
	offset int
	done   bool

	path            ast.Path
	previousNode    *ast.Node
	isAtPropertyKey bool
}

func (g *locator) objectBegin(_ func() ast.Path, offset, _, _, _ int) bool {
	if g.done {
		return false
	}
	if g.offset <= offset {
		g.done = true
		return false
	}
	g.previousNode = nil
	g.isAtPropertyKey = g.offset > offset
	g.path = append(g.path, "")
	return true
}

func (g *locator) objectProperty(property string, offset, length, _, _ int) {
	if g.done {
		return
	}
	if g.offset < offset {
		g.done = true
		return
	}
	g.path[len(g.path)-1] = property
	g.previousNode = ast.NewProperty(offset, ast.NewString(offset, length, property))
	if g.offset <= offset+length {
		g.done = true
	}
}

func (g *locator) objectEnd(offset, _, _, _ int) {
	if g.done {
		return
	}
	if g.offset <= offset {
		g.done = true
		return
	}
	g.previousNode = nil
	g.path = g.path[:len(g.path)-1]
}

func (g *locator) arrayBegin(_ func() ast.Path, offset, _, _, _ int) bool {
	if g.done {
		return false
	}
	if g.offset <= offset {
		g.done = true
		return false
	}
	g.previousNode = nil
	g.path = append(g.path, 0)
	return true
}

func (g *locator) arrayEnd(offset, _, _, _ int) {
	if g.done {
		return
	}
	if g.offset <= offset {
		g.done = true
		return
	}
	g.previousNode = nil
	g.path = g.path[:len(g.path)-1]
}

func (g *locator) literalValue(value interface{}, offset, length, _, _ int) {
	if g.done {
		return
	}
	if g.offset < offset {
		g.done = true
		return
	}
	g.previousNode = literalNode(value, offset, length)
	if g.offset <= offset+length {
		g.done = true
	}
}

func (g *locator) separator(ch byte, offset, _, _, _ int) {
	if g.done || g.offset <= offset || len(g.path) == 0 {
		return
	}
	switch ch {
	case ':':
		g.isAtPropertyKey = false
	case ',':
		last := g.path[len(g.path)-1]
		if idx, ok := last.(int); ok {
			g.path[len(g.path)-1] = idx + 1
		} else {
			g.isAtPropertyKey = true
			g.path[len(g.path)-1] = ""
		}
		g.previousNode = nil
	}
}

func literalNode(value interface{}, offset, length int) *ast.Node {
	switch v := value.(type) {
	case string:
		return ast.NewString(offset, length, v)
	case float64:
		return ast.NewNumber(offset, length, v)
	case bool:
		return ast.NewBoolean(offset, length, v)
	default:
		return ast.NewNull(offset, length)
	}
}
