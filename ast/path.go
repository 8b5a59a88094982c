package ast

// Segment is one element of a Path: either a property name (string) or an
// array index (int).
type Segment interface{}

// Path addresses a position in the logical JSON value as a sequence of
// property names and array indices.
type Path []Segment

// FindNodeAtLocation descends from root along path, returning the node
// addressed by it, or nil if no such node exists.
func FindNodeAtLocation(root *Node, path Path) *Node {
	n := root
	for _, seg := range path {
		if n == nil {
			return nil
		}
		switch s := seg.(type) {
		case string:
			if n.Type != Object {
				return nil
			}
			n = findProperty(n, s)
		case int:
			if n.Type != Array {
				return nil
			}
			if s < 0 || s >= len(n.Children) {
				return nil
			}
			n = n.Children[s]
		default:
			return nil
		}
	}
	return n
}

func findProperty(obj *Node, key string) *Node {
	for _, c := range obj.Children {
		if c.Type == Property && c.Key() == key {
			return c.PropertyValue()
		}
	}
	return nil
}

// FindNodeAtOffset returns the smallest node in the tree rooted at root
// whose span contains offset. If includeRightBound is true, a node whose
// span ends exactly at offset is also considered containing it (so that
// querying the offset immediately after a value still finds it).
func FindNodeAtOffset(root *Node, offset int, includeRightBound bool) *Node {
	if root == nil {
		return nil
	}
	if !contains(root, offset, includeRightBound) {
		return nil
	}
	for _, c := range root.Children {
		if found := FindNodeAtOffset(c, offset, includeRightBound); found != nil {
			return found
		}
	}
	return root
}

func contains(n *Node, offset int, includeRightBound bool) bool {
	if includeRightBound {
		return offset >= n.Offset && offset <= n.End()
	}
	return offset >= n.Offset && offset < n.End()
}

// GetNodePath reconstructs the Path from the tree root down to n.
func GetNodePath(n *Node) Path {
	var segs Path
	for cur := n; cur != nil && cur.Parent != nil; cur = cur.Parent {
		p := cur.Parent
		switch p.Type {
		case Property:
			// cur is the key or value child of a property; the segment
			// belongs to the property's own position in its parent object.
			continue
		case Object:
			// p is an object; cur must be one of its Property children,
			// or (for key lookups) cur IS the property.
			if cur.Type == Property {
				segs = append(Path{cur.Key()}, segs...)
			}
		case Array:
			for i, sib := range p.Children {
				if sib == cur {
					segs = append(Path{i}, segs...)
					break
				}
			}
		}
	}
	return segs
}

// GetNodeValue materializes the logical JSON value represented by n (or by
// a detached subtree), as a string, float64, bool, nil, []interface{}, or
// map[string]interface{}.
func GetNodeValue(n *Node) interface{} {
	if n == nil {
		return nil
	}
	switch n.Type {
	case String, Number, Boolean, Null:
		return n.Value
	case Array:
		vals := make([]interface{}, len(n.Children))
		for i, c := range n.Children {
			vals[i] = GetNodeValue(c)
		}
		return vals
	case Object:
		m := make(map[string]interface{}, len(n.Children))
		for _, c := range n.Children {
			if c.Type != Property {
				continue
			}
			m[c.Key()] = GetNodeValue(c.PropertyValue())
		}
		return m
	case Property:
		return GetNodeValue(n.PropertyValue())
	default:
		return nil
	}
}
