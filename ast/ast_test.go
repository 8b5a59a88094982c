package ast

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestAddChildGrowsSpan(t *testing.T) {
	obj := NewObject(0)
	key := NewString(1, 3, "a")
	prop := NewProperty(1, key)
	prop.AddChild(NewNumber(6, 1, 1))
	obj.AddChild(prop)
	obj.SetEnd(7)

	qt.Assert(t, qt.Equals(obj.Offset, 0))
	qt.Assert(t, qt.Equals(obj.End(), 7))
	qt.Assert(t, qt.Equals(prop.Key(), "a"))
	qt.Assert(t, qt.Equals(prop.PropertyValue().Value.(float64), 1))
	qt.Assert(t, qt.Equals(prop.Parent, obj))
}

func TestAddChildPanicsOnLeaf(t *testing.T) {
	defer func() {
		qt.Assert(t, qt.IsNotNil(recover()))
	}()
	leaf := NewNumber(0, 1, 1)
	leaf.AddChild(NewNumber(1, 1, 2))
}

func TestGetNodeValue(t *testing.T) {
	obj := NewObject(0)
	key := NewString(1, 3, "a")
	prop := NewProperty(1, key)
	prop.AddChild(NewNumber(6, 1, 1))
	obj.AddChild(prop)

	v := GetNodeValue(obj)
	qt.Assert(t, qt.DeepEquals(v, map[string]interface{}{"a": float64(1)}))
}

func TestGetNodeValuePropertyWithoutValue(t *testing.T) {
	obj := NewObject(0)
	key := NewString(1, 3, "a")
	prop := NewProperty(1, key)
	obj.AddChild(prop)

	v := GetNodeValue(obj)
	m := v.(map[string]interface{})
	got, ok := m["a"]
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsNil(got))
}

func TestSdumpNil(t *testing.T) {
	qt.Assert(t, qt.Equals(Sdump(nil), "<nil>\n"))
}

func TestSdumpIndentsChildren(t *testing.T) {
	obj := NewObject(0)
	obj.AddChild(NewProperty(1, NewString(1, 3, "a")))
	out := Sdump(obj)
	qt.Assert(t, qt.IsTrue(strings.Contains(out, "object [0,4)")))
	qt.Assert(t, qt.IsTrue(strings.Contains(out, "  property [1,4)")))
}
