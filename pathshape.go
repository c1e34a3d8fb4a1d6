package svgshape

import (
	"fmt"
	"strings"
	"unicode"

	mt "github.com/rustyoz/Mtransform"
)

// Path is a generic path shape. It owns its instruction sequence and keeps
// the node's d attribute in sync with it.
type Path struct {
	node Node
	ins  Instructions
}

// NewPath builds a path from path data, or from a point list which is
// wrapped into a closed polygon. The input is a point list unless its first
// non blank character is a letter. A nil node gets a fresh "path" Element.
func NewPath(d string, node Node) (*Path, error) {
	if node == nil {
		node = NewElement("path")
	}
	p := &Path{node: node}
	if err := p.parse(d); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Path) parse(d string) error {
	s := strings.TrimSpace(d)
	if s != "" && !unicode.IsLetter(rune(s[0])) {
		pts, err := ParsePoints(s)
		if err != nil {
			return fmt.Errorf("parse path points: %w", err)
		}
		s = PointsPathData(pts, true)
	}
	ins, err := ParsePathData(s)
	if err != nil {
		return fmt.Errorf("parse path data: %w", err)
	}
	p.ins = ins
	p.updateD()
	return nil
}

func (p *Path) updateD() {
	p.node.SetAttribute("d", p.ins.String())
}

// Node returns the element the path publishes on.
func (p *Path) Node() Node { return p.node }

// Instructions returns the path's instruction sequence. It is shared with
// the path, mutations through it are not published until the next
// operation on the path.
func (p *Path) Instructions() Instructions { return p.ins }

func (p *Path) String() string { return p.ins.String() }

// Clone returns a path with its own copy of the instruction sequence.
func (p *Path) Clone() Shape {
	return p.clone()
}

func (p *Path) clone() *Path {
	c := &Path{node: cloneNode(p.node, "path"), ins: p.ins.Clone()}
	c.updateD()
	return c
}

// Center returns the mean of the path's terminal points.
func (p *Path) Center() (Point, error) {
	return Centroid(p.ins.Points())
}

// MoveTo translates the path so its center lands on pos.
func (p *Path) MoveTo(pos Point) error {
	c, err := p.Center()
	if err != nil {
		return err
	}
	p.MoveBy(pos.X-c.X, pos.Y-c.Y)
	return nil
}

// MoveBy translates the path by (dx, dy).
func (p *Path) MoveBy(dx, dy float64) {
	Translate(p.ins, dx, dy)
	p.updateD()
}

// Rot rotates the path clockwise by deg degrees around pivot.
func (p *Path) Rot(deg float64, pivot Pivot) error {
	around, err := PointAt(p.ins, pivot)
	if err != nil {
		return err
	}
	if err := Rotate(p.ins, around, deg); err != nil {
		return err
	}
	p.updateD()
	return nil
}

// PointAt resolves pos against the path.
func (p *Path) PointAt(pos Pivot) (Point, error) {
	return PointAt(p.ins, pos)
}

// Points returns the terminal point of every instruction but close.
func (p *Path) Points() []Point {
	return p.ins.Points()
}

// Subdivide inserts a midpoint line into every segment, n times.
func (p *Path) Subdivide(n int) {
	p.ins = Subdivide(p.ins, n)
	p.updateD()
}

// Noise displaces every terminal point by fn(point, index).
func (p *Path) Noise(fn func(pt Point, i int) Point) {
	Noise(p.ins, fn)
	p.updateD()
}

// Transform maps every coordinate of the path through t.
func (p *Path) Transform(t mt.Transform) error {
	TransformInstructions(p.ins, t)
	p.updateD()
	return nil
}
