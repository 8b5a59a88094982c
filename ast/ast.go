// Package ast defines the concrete-syntax tree produced by the parser:
// an offset-addressed node tree that preserves enough structure to find
// "what is at offset X" without re-parsing.
package ast

import (
	"fmt"
	"strings"

	"github.com/kr/pretty"
)

// NodeType identifies the syntactic category of a Node.
type NodeType int

// Node type constants.
const (
	Object NodeType = iota
	Array
	Property
	String
	Number
	Boolean
	Null
)

func (t NodeType) String() string {
	switch t {
	case Object:
		return "object"
	case Array:
		return "array"
	case Property:
		return "property"
	case String:
		return "string"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case Null:
		return "null"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}

// Node is one element of the concrete-syntax tree. Children are owned by
// their parent (stored in Children); Parent is a non-owning back-reference
// used for upward navigation. A Node is never shared across trees or
// goroutines.
type Node struct {
	Type   NodeType
	Offset int
	Length int

	// Value holds the decoded leaf value for String, Number, Boolean, and
	// Null nodes: a string, float64, bool, or nil respectively.
	Value interface{}

	// ColonOffset is set only on Property nodes, to the offset of the ':'
	// token, when present.
	ColonOffset int
	HasColon    bool

	Parent   *Node
	Children []*Node
}

// End returns the offset one past the end of the node's span.
func (n *Node) End() int { return n.Offset + n.Length }

// Key returns the decoded property name for a Property node's key child,
// or "" if n is not a property or has no key.
func (n *Node) Key() string {
	if n.Type != Property || len(n.Children) == 0 {
		return ""
	}
	if s, ok := n.Children[0].Value.(string); ok {
		return s
	}
	return ""
}

// PropertyValue returns a property's value child, or nil if the property
// was truncated before a value was parsed.
func (n *Node) PropertyValue() *Node {
	if n.Type != Property || len(n.Children) < 2 {
		return nil
	}
	return n.Children[1]
}

func newLeaf(t NodeType, offset, length int, value interface{}) *Node {
	return &Node{Type: t, Offset: offset, Length: length, Value: value}
}

// NewString, NewNumber, NewBoolean, and NewNull construct detached leaf
// nodes; NewObject, NewArray, and NewProperty construct detached container
// nodes. Callers append children via AddChild, which also wires Parent and
// grows the container's span.

// NewString constructs a detached string leaf node.
func NewString(offset, length int, value string) *Node {
	return newLeaf(String, offset, length, value)
}

// NewNumber constructs a detached number leaf node.
func NewNumber(offset, length int, value float64) *Node {
	return newLeaf(Number, offset, length, value)
}

// NewBoolean constructs a detached boolean leaf node.
func NewBoolean(offset, length int, value bool) *Node {
	return newLeaf(Boolean, offset, length, value)
}

// NewNull constructs a detached null leaf node.
func NewNull(offset, length int) *Node {
	return newLeaf(Null, offset, length, nil)
}

// NewObject constructs a detached, empty object node.
func NewObject(offset int) *Node {
	return &Node{Type: Object, Offset: offset}
}

// NewArray constructs a detached, empty array node.
func NewArray(offset int) *Node {
	return &Node{Type: Array, Offset: offset}
}

// NewProperty constructs a detached property node from a key node.
func NewProperty(offset int, key *Node) *Node {
	p := &Node{Type: Property, Offset: offset}
	p.AddChild(key)
	return p
}

// AddChild appends child to n's children, sets child's Parent, and grows
// n's span to cover it. It panics if n is not a container type (Object,
// Array, Property).
func (n *Node) AddChild(child *Node) {
	switch n.Type {
	case Object, Array, Property:
	default:
		panic("ast: AddChild on non-container node")
	}
	child.Parent = n
	n.Children = append(n.Children, child)
	end := child.End()
	if end > n.Offset+n.Length {
		n.Length = end - n.Offset
	}
}

// SetEnd extends n's span to end at offset, if that grows it. Used by the
// parser to record the offset of a closing bracket.
func (n *Node) SetEnd(offset int) {
	if offset > n.Offset+n.Length {
		n.Length = offset - n.Offset
	}
}

// Sdump returns a multi-line, indentation-based dump of the tree rooted at
// n, suitable for debugging and golden-file tests.
func Sdump(n *Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, n *Node, depth int) {
	if n == nil {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString("<nil>\n")
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(b, "%s [%d,%d)", n.Type, n.Offset, n.End())
	if n.Type == String || n.Type == Number || n.Type == Boolean || n.Type == Null {
		fmt.Fprintf(b, " %s", pretty.Sprint(n.Value))
	}
	b.WriteByte('\n')
	for _, c := range n.Children {
		dump(b, c, depth+1)
	}
}
