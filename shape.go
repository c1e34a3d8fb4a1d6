package svgshape

import mt "github.com/rustyoz/Mtransform"

// Node is the element a shape publishes its attributes on. Shapes only
// need to read and write named attributes; styling and markup belong to
// the node.
type Node interface {
	SetAttribute(name, value string)
	GetAttribute(name string) string
}

// Element is an in-memory Node that remembers the order attributes were
// first set in.
type Element struct {
	Tag   string
	names []string
	attrs map[string]string
}

// NewElement returns an empty element with the given tag name.
func NewElement(tag string) *Element {
	return &Element{Tag: tag, attrs: make(map[string]string)}
}

// SetAttribute implements Node.
func (e *Element) SetAttribute(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	if _, ok := e.attrs[name]; !ok {
		e.names = append(e.names, name)
	}
	e.attrs[name] = value
}

// GetAttribute implements Node. Unknown attributes read as "".
func (e *Element) GetAttribute(name string) string {
	return e.attrs[name]
}

// RemoveAttribute deletes the named attribute.
func (e *Element) RemoveAttribute(name string) {
	if _, ok := e.attrs[name]; !ok {
		return
	}
	delete(e.attrs, name)
	for i, n := range e.names {
		if n == name {
			e.names = append(e.names[:i], e.names[i+1:]...)
			break
		}
	}
}

// Attributes returns the attribute names in the order they were first set.
func (e *Element) Attributes() []string {
	return append([]string(nil), e.names...)
}

func (e *Element) clone() *Element {
	c := NewElement(e.Tag)
	for _, n := range e.names {
		c.SetAttribute(n, e.attrs[n])
	}
	return c
}

// cloneNode copies n when it is an Element; other node implementations
// are owned by the caller and get a fresh Element instead.
func cloneNode(n Node, tag string) Node {
	if e, ok := n.(*Element); ok {
		return e.clone()
	}
	return NewElement(tag)
}

// Shape is what every shape kind can do. Mutations work on the shape's own
// instruction sequence and republish the d attribute before returning.
type Shape interface {
	Center() (Point, error)
	MoveTo(p Point) error
	Rot(deg float64, pivot Pivot) error
	Transform(t mt.Transform) error
	Instructions() Instructions
	Node() Node
	Clone() Shape
	String() string
}

var (
	_ Shape = (*Path)(nil)
	_ Shape = (*Circle)(nil)
	_ Shape = (*Polyline)(nil)
)
