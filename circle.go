package svgshape

import (
	"fmt"
	"math"
	"strconv"

	mt "github.com/rustyoz/Mtransform"
)

// DefaultRadius is used for circles built without a positive radius.
const DefaultRadius = 5

// CircleParams describes a circle. A radius that is not positive means
// DefaultRadius.
type CircleParams struct {
	Cx, Cy float64
	R      float64
}

// Circle is a circle drawn as a path of two half arcs, starting at its
// leftmost point. The radius is published as the node's r attribute and
// read back from there whenever the circle is rebuilt; r holds the radius
// the current instructions were built with.
type Circle struct {
	node Node
	ins  Instructions
	r    float64
}

// NewCircle builds a circle path. A nil node gets a fresh "path" Element.
func NewCircle(params CircleParams, node Node) (*Circle, error) {
	if node == nil {
		node = NewElement("path")
	}
	r := params.R
	if r <= 0 {
		r = DefaultRadius
	}
	c := &Circle{node: node}
	if err := c.synthesize(Point{params.Cx, params.Cy}, r); err != nil {
		return nil, err
	}
	return c, nil
}

// NewCircleFromNode builds a circle from the cx, cy and r attributes of
// node. Missing attributes take their defaults.
func NewCircleFromNode(node Node) (*Circle, error) {
	var params CircleParams
	for _, a := range []struct {
		name string
		v    *float64
	}{{"cx", &params.Cx}, {"cy", &params.Cy}, {"r", &params.R}} {
		s := node.GetAttribute(a.name)
		if s == "" {
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("circle attribute %s: %w", a.name, err)
		}
		*a.v = f
	}
	return NewCircle(params, node)
}

func circlePathData(center Point, r float64) string {
	left := formatNumber(center.X-r) + "," + formatNumber(center.Y)
	right := formatNumber(center.X+r) + "," + formatNumber(center.Y)
	radii := formatNumber(r) + "," + formatNumber(r)
	return "M" + left + " A" + radii + " 0 1,0 " + right + " A" + radii + " 0 1,0 " + left
}

// synthesize rebuilds the instructions around center with radius r and
// publishes them. It only fails on non finite numbers.
func (c *Circle) synthesize(center Point, r float64) error {
	ins, err := ParsePathData(circlePathData(center, r))
	if err != nil {
		return fmt.Errorf("circle at %v radius %v: %w", center, r, err)
	}
	c.ins = ins
	c.r = r
	c.node.SetAttribute("cx", formatNumber(center.X))
	c.node.SetAttribute("cy", formatNumber(center.Y))
	c.node.SetAttribute("r", formatNumber(c.r))
	c.node.SetAttribute("d", c.ins.String())
	return nil
}

// Radius returns the circle's radius as published on its node. An r
// attribute that is missing, unparsable or not positive reads as the
// radius the circle was last built with.
func (c *Circle) Radius() float64 {
	r, err := strconv.ParseFloat(c.node.GetAttribute("r"), 64)
	if err != nil || !(r > 0) || math.IsInf(r, 0) {
		return c.r
	}
	return r
}

// Node returns the element the circle publishes on.
func (c *Circle) Node() Node { return c.node }

// Instructions returns the circle's instruction sequence.
func (c *Circle) Instructions() Instructions { return c.ins }

func (c *Circle) String() string { return c.ins.String() }

// Clone returns a circle with its own instruction sequence.
func (c *Circle) Clone() Shape {
	return &Circle{node: cloneNode(c.node, "path"), ins: c.ins.Clone(), r: c.r}
}

// Center returns the circle's center: its first point shifted right by the
// radius.
func (c *Circle) Center() (Point, error) {
	if len(c.ins) == 0 || !c.ins[0].HasPoint() {
		return Point{}, &DegenerateGeometryError{Op: "circle center"}
	}
	return Point{c.ins[0].T.X + c.r, c.ins[0].T.Y}, nil
}

// MoveTo recenters the circle on pos, keeping its radius.
func (c *Circle) MoveTo(pos Point) error {
	return c.synthesize(pos, c.Radius())
}

// Rot rotates the circle's center around pivot. The circle is rebuilt
// rather than rotated instruction by instruction so it keeps starting at
// its leftmost point.
func (c *Circle) Rot(deg float64, pivot Pivot) error {
	center, err := c.Center()
	if err != nil {
		return err
	}
	if pivot == Center {
		return c.synthesize(center, c.Radius())
	}
	around, err := PointAt(c.ins, pivot)
	if err != nil {
		return err
	}
	return c.synthesize(RotatePoint(center, around, deg), c.Radius())
}

// Transform maps the circle's center through t. The new radius is the
// length of the image of a radius pointing right, so a transform that
// does not scale uniformly still yields a circle.
func (c *Circle) Transform(t mt.Transform) error {
	center, err := c.Center()
	if err != nil {
		return err
	}
	cx, cy := t.Apply(center.X, center.Y)
	ex, ey := t.Apply(center.X+c.Radius(), center.Y)
	return c.synthesize(Point{cx, cy}, math.Hypot(ex-cx, ey-cy))
}
