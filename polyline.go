package svgshape

import "fmt"

// Polyline is an open set of connected line segments built from a points
// attribute. It has every operation of Path.
type Polyline struct {
	*Path
}

// NewPolyline builds an open path visiting points in order. A nil node
// gets a fresh "path" Element.
func NewPolyline(points string, node Node) (*Polyline, error) {
	pts, err := ParsePoints(points)
	if err != nil {
		return nil, fmt.Errorf("parse polyline points: %w", err)
	}
	if node == nil {
		node = NewElement("path")
	}
	p := &Path{node: node}
	if err := p.parse(PointsPathData(pts, false)); err != nil {
		return nil, err
	}
	return &Polyline{Path: p}, nil
}

// Clone returns a polyline with its own copy of the instruction sequence.
func (pl *Polyline) Clone() Shape {
	return &Polyline{Path: pl.Path.clone()}
}
