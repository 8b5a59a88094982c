// Package modify computes the edits that set, insert, or remove a value at
// a path in a JSONC document.
package modify

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jsonc-tools/jsonc/ast"
	"github.com/jsonc-tools/jsonc/format"
	"github.com/jsonc-tools/jsonc/parser"
	"github.com/jsonc-tools/jsonc/scanner"
	"github.com/jsonc-tools/jsonc/token"
)

// Options controls how Modify serializes and places the new content.
type Options struct {
	FormattingOptions format.Options

	// GetInsertionIndex picks where a new object property lands among the
	// object's existing keys (in source order). Nil means append.
	GetInsertionIndex func(existingProperties []string) int

	// IsArrayInsertion, for an integer path segment, makes Modify insert a
	// new element before the one currently at that index rather than
	// replacing it. Ignored for object-property segments.
	IsArrayInsertion bool
}

// Modify parses text, locates path, and returns the edits that set it to
// value. A nil value removes the node at path. The last path segment
// determines the kind of edit: a string segment targets an object
// property, an int segment targets an array element (index -1 means
// append).
func Modify(text string, path ast.Path, value interface{}, options Options) ([]format.Edit, error) {
	root, _ := parser.ParseTree(text, parser.Options{AllowTrailingComma: true, AllowEmptyContent: true})

	if len(path) == 0 {
		content, err := serializeAt(value, 0, options.FormattingOptions)
		if err != nil {
			return nil, err
		}
		return []format.Edit{{Offset: 0, Length: len(text), Content: content}}, nil
	}

	parentPath := path[:len(path)-1]
	last := path[len(path)-1]

	parent, remaining := resolvePrefix(root, parentPath)
	if len(remaining) > 0 {
		return insertMissingPath(text, parent, remaining, last, value, options)
	}

	switch key := last.(type) {
	case string:
		if parent != nil && parent.Type != ast.Object {
			return nil, fmt.Errorf("modify: path %v does not address an object", parentPath)
		}
		return modifyObjectProperty(text, parent, key, value, options)
	case int:
		if parent != nil && parent.Type != ast.Array {
			return nil, fmt.Errorf("modify: path %v does not address an array", parentPath)
		}
		return modifyArrayElement(text, parent, key, value, options)
	default:
		return nil, fmt.Errorf("modify: invalid path segment %v", last)
	}
}

// resolvePrefix descends path from root as far as existing nodes allow,
// returning the deepest node reached and whatever suffix of path could not
// be resolved (empty if path fully resolved).
func resolvePrefix(root *ast.Node, path ast.Path) (*ast.Node, ast.Path) {
	node := root
	for i, seg := range path {
		if node == nil {
			return node, path[i:]
		}
		switch s := seg.(type) {
		case string:
			if node.Type != ast.Object {
				return node, path[i:]
			}
			var found *ast.Node
			for _, c := range node.Children {
				if c.Type == ast.Property && c.Key() == s {
					found = c.PropertyValue()
					break
				}
			}
			if found == nil {
				return node, path[i:]
			}
			node = found
		case int:
			if node.Type != ast.Array || s < 0 || s >= len(node.Children) {
				return node, path[i:]
			}
			node = node.Children[s]
		default:
			return node, path[i:]
		}
	}
	return node, nil
}

// nestedValue wraps value in the chain of single-key objects/single-element
// arrays described by path, innermost segment last.
func nestedValue(path ast.Path, value interface{}) interface{} {
	if len(path) == 0 {
		return value
	}
	switch seg := path[0].(type) {
	case string:
		return map[string]interface{}{seg: nestedValue(path[1:], value)}
	case int:
		return []interface{}{nestedValue(path[1:], value)}
	default:
		return value
	}
}

// insertMissingPath handles a path whose parent container doesn't fully
// exist yet: it builds the missing nested structure as a single new child
// of the deepest existing node.
func insertMissingPath(text string, parent *ast.Node, remaining ast.Path, last ast.Segment, value interface{}, options Options) ([]format.Edit, error) {
	if parent == nil {
		return nil, fmt.Errorf("modify: no container exists along the path to insert into")
	}
	tail := append(append(ast.Path{}, remaining...), last)
	nested := nestedValue(tail[1:], value)

	switch key := tail[0].(type) {
	case string:
		if parent.Type != ast.Object {
			return nil, fmt.Errorf("modify: path does not address an object")
		}
		return modifyObjectProperty(text, parent, key, nested, options)
	case int:
		if parent.Type != ast.Array {
			return nil, fmt.Errorf("modify: path does not address an array")
		}
		return modifyArrayElement(text, parent, key, nested, options)
	default:
		return nil, fmt.Errorf("modify: invalid path segment %v", tail[0])
	}
}

func modifyObjectProperty(text string, parent *ast.Node, key string, value interface{}, options Options) ([]format.Edit, error) {
	if parent == nil {
		return nil, fmt.Errorf("modify: parent object not found")
	}

	var existing *ast.Node
	for _, c := range parent.Children {
		if c.Type == ast.Property && c.Key() == key {
			existing = c
			break
		}
	}

	opts := options.FormattingOptions
	eol := eolOf(opts)
	level := indentLevel(parent)

	if existing != nil {
		if value == nil {
			return removeChild(text, parent, existing), nil
		}
		valNode := existing.PropertyValue()
		if valNode == nil {
			return nil, fmt.Errorf("modify: property %q has no value to replace", key)
		}
		content, err := serializeAt(value, level, opts)
		if err != nil {
			return nil, err
		}
		return []format.Edit{{Offset: valNode.Offset, Length: valNode.Length, Content: content}}, nil
	}

	if value == nil {
		return nil, nil
	}

	keyJSON, err := json.Marshal(key)
	if err != nil {
		return nil, err
	}
	valContent, err := serializeAt(value, level, opts)
	if err != nil {
		return nil, err
	}
	propText := string(keyJSON) + ": " + valContent
	indent := strings.Repeat(indentUnit(opts), level)

	props := make([]string, 0, len(parent.Children))
	for _, c := range parent.Children {
		if c.Type == ast.Property {
			props = append(props, c.Key())
		}
	}
	insertAt := len(props)
	if options.GetInsertionIndex != nil {
		if i := options.GetInsertionIndex(props); i >= 0 && i <= len(props) {
			insertAt = i
		}
	}

	if len(parent.Children) == 0 {
		content := eol + indent + propText + eol + strings.Repeat(indentUnit(opts), level-1)
		return []format.Edit{{Offset: parent.Offset + 1, Length: 0, Content: content}}, nil
	}
	if insertAt >= len(parent.Children) {
		last := parent.Children[len(parent.Children)-1]
		return []format.Edit{{Offset: last.End(), Length: 0, Content: "," + eol + indent + propText}}, nil
	}
	before := parent.Children[insertAt]
	return []format.Edit{{Offset: before.Offset, Length: 0, Content: propText + "," + eol + indent}}, nil
}

func modifyArrayElement(text string, parent *ast.Node, index int, value interface{}, options Options) ([]format.Edit, error) {
	if parent == nil {
		return nil, fmt.Errorf("modify: parent array not found")
	}

	opts := options.FormattingOptions
	eol := eolOf(opts)
	level := indentLevel(parent)
	n := len(parent.Children)

	if !options.IsArrayInsertion && index >= 0 && index < n {
		existing := parent.Children[index]
		if value == nil {
			return removeChild(text, parent, existing), nil
		}
		content, err := serializeAt(value, level, opts)
		if err != nil {
			return nil, err
		}
		return []format.Edit{{Offset: existing.Offset, Length: existing.Length, Content: content}}, nil
	}

	if value == nil {
		return nil, nil
	}

	content, err := serializeAt(value, level, opts)
	if err != nil {
		return nil, err
	}
	indent := strings.Repeat(indentUnit(opts), level)

	insertAt := index
	if insertAt < 0 || insertAt > n {
		insertAt = n
	}

	if n == 0 {
		edit := eol + indent + content + eol + strings.Repeat(indentUnit(opts), level-1)
		return []format.Edit{{Offset: parent.Offset + 1, Length: 0, Content: edit}}, nil
	}
	if insertAt >= n {
		last := parent.Children[n-1]
		return []format.Edit{{Offset: last.End(), Length: 0, Content: "," + eol + indent + content}}, nil
	}
	before := parent.Children[insertAt]
	return []format.Edit{{Offset: before.Offset, Length: 0, Content: content + "," + eol + indent}}, nil
}

// removeChild deletes child from parent's source text, along with whichever
// adjacent comma is now dangling, without touching comments or whitespace
// that sit between the comma and a surviving sibling.
func removeChild(text string, parent *ast.Node, child *ast.Node) []format.Edit {
	idx := -1
	for i, c := range parent.Children {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	if idx < len(parent.Children)-1 {
		start, end := child.Offset, child.End()
		if c, ok := nextCommaOffset(text, end); ok {
			end = c + 1
		}
		end = skipHorizontalWS(text, end)
		return []format.Edit{{Offset: start, Length: end - start}}
	}
	if idx > 0 {
		prevEnd := parent.Children[idx-1].End()
		start := prevEnd
		if c, ok := nextCommaOffset(text, prevEnd); ok {
			start = c
		}
		return []format.Edit{{Offset: start, Length: child.End() - start}}
	}
	return []format.Edit{{Offset: child.Offset, Length: child.End() - child.Offset}}
}

// nextCommaOffset scans forward from a source offset and returns the
// offset of the first Comma token, skipping trivia and comments, or false
// if a non-comma, non-trivia token is reached first.
func nextCommaOffset(text string, from int) (int, bool) {
	s := scanner.NewScanner(text[from:], false)
	for {
		switch s.Scan() {
		case token.Trivia, token.LineBreakTrivia, token.LineCommentTrivia, token.BlockCommentTrivia:
			continue
		case token.Comma:
			return from + s.TokenOffset(), true
		default:
			return 0, false
		}
	}
}

// skipHorizontalWS advances pos over spaces and tabs only, leaving line
// breaks and comments untouched so removal doesn't disturb later lines.
func skipHorizontalWS(text string, pos int) int {
	for pos < len(text) && (text[pos] == ' ' || text[pos] == '\t') {
		pos++
	}
	return pos
}

// indentLevel returns the number of Object/Array ancestors of n, including
// n itself: the indentation level n's own children sit at.
func indentLevel(n *ast.Node) int {
	level := 0
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Type == ast.Object || cur.Type == ast.Array {
			level++
		}
	}
	return level
}

func indentUnit(opts format.Options) string {
	size := opts.TabSize
	if size <= 0 {
		size = 4
	}
	if opts.InsertSpaces {
		return strings.Repeat(" ", size)
	}
	return "\t"
}

func eolOf(opts format.Options) string {
	if opts.EOL != "" {
		return opts.EOL
	}
	return "\n"
}

// serializeAt JSON-encodes value, reformats it with opts, and indents any
// continuation lines to level so a multi-line value nests correctly inside
// its new container.
func serializeAt(value interface{}, level int, opts format.Options) (string, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	content := string(raw)
	content = format.ApplyEdits(content, format.Format(content, nil, opts))

	eol := eolOf(opts)
	lines := strings.Split(content, eol)
	if len(lines) == 1 {
		return content, nil
	}
	pad := strings.Repeat(indentUnit(opts), level)
	for i := 1; i < len(lines); i++ {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, eol), nil
}
