package svgshape

import (
	"fmt"
	"math"

	mt "github.com/rustyoz/Mtransform"
)

// Direction names an extreme point of a shape in screen coordinates, where
// y grows downwards.
type Direction int

// Directions understood by PointAt.
const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

type pivotKind int

const (
	centerPivot pivotKind = iota
	pointPivot
	directionPivot
	indexPivot
)

// Pivot selects a point of a shape: its center (the zero value), an
// explicit point, an extreme point in some direction or the terminal point
// of the instruction at some index.
type Pivot struct {
	kind  pivotKind
	point Point
	dir   Direction
	index int
}

// Center is the pivot at a shape's own center.
var Center = Pivot{}

// At returns a pivot at p.
func At(p Point) Pivot { return Pivot{kind: pointPivot, point: p} }

// Toward returns a pivot at the extreme point of a shape in direction d.
func Toward(d Direction) Pivot { return Pivot{kind: directionPivot, dir: d} }

// Index returns a pivot at the terminal point of the i-th instruction.
func Index(i int) Pivot { return Pivot{kind: indexPivot, index: i} }

// Centroid returns the arithmetic mean of pts. This is not the area
// weighted centroid: for concave or self intersecting polygons it is only
// an interior-ish representative point, and it does not depend on the
// order of pts.
func Centroid(pts []Point) (Point, error) {
	if len(pts) == 0 {
		return Point{}, &DegenerateGeometryError{Op: "centroid"}
	}
	var c Point
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(pts))
	return Point{c.X / n, c.Y / n}, nil
}

func midpoint(a, b Point) Point {
	c, _ := Centroid([]Point{a, b})
	return c
}

// Translate moves every coordinate of ins by (dx, dy). Arc radii and close
// instructions are left alone.
func Translate(ins Instructions, dx, dy float64) {
	t := mt.Identity()
	t.Translate(dx, dy)
	for _, in := range ins {
		for _, p := range in.points() {
			p.X, p.Y = t.Apply(p.X, p.Y)
		}
	}
}

// RotatePoint rotates p around pivot by deg degrees, clockwise on screen.
func RotatePoint(p, pivot Point, deg float64) Point {
	t := rotation(pivot, deg)
	x, y := t.Apply(p.X, p.Y)
	return Point{x, y}
}

// RotateInstruction rotates the coordinates of one instruction around
// pivot. Arcs get deg added to their x-axis rotation, and horizontal or
// vertical lines become plain lines since they no longer follow an axis.
func RotateInstruction(in *Instruction, pivot Point, deg float64) {
	rotateInstruction(in, rotation(pivot, deg), deg)
}

func rotateInstruction(in *Instruction, t mt.Transform, deg float64) {
	for _, p := range in.points() {
		p.X, p.Y = t.Apply(p.X, p.Y)
	}
	if in.Arc != nil {
		in.Arc.Rotation += deg
	}
	promoteAxisLine(in)
}

// Rotate rotates every instruction of ins around pivot.
func Rotate(ins Instructions, pivot Point, deg float64) error {
	if len(ins) == 0 {
		return &DegenerateGeometryError{Op: "rotate"}
	}
	t := rotation(pivot, deg)
	for _, in := range ins {
		rotateInstruction(in, t, deg)
	}
	return nil
}

func promoteAxisLine(in *Instruction) {
	if in.Kind == HLineInstruction || in.Kind == VLineInstruction {
		in.Kind = LineInstruction
	}
}

// PointAt resolves pos against ins. Directions scan the terminal points
// and return the first one with the smallest y (Up), largest y (Down),
// smallest x (Left) or largest x (Right). Indexes return the terminal point
// of that instruction. The center pivot is the centroid of the terminal
// points.
func PointAt(ins Instructions, pos Pivot) (Point, error) {
	switch pos.kind {
	case pointPivot:
		return pos.point, nil
	case indexPivot:
		if pos.index < 0 || pos.index >= len(ins) || !ins[pos.index].HasPoint() {
			return Point{}, &IndexError{Index: pos.index, Len: len(ins)}
		}
		return *ins[pos.index].T, nil
	case directionPivot:
		return extreme(ins, pos.dir)
	default:
		return Centroid(ins.Points())
	}
}

func extreme(ins Instructions, dir Direction) (Point, error) {
	pts := ins.Points()
	if len(pts) == 0 {
		return Point{}, &DegenerateGeometryError{Op: "point at"}
	}
	var better func(p, best Point) bool
	switch dir {
	case Up:
		better = func(p, best Point) bool { return p.Y < best.Y }
	case Down:
		better = func(p, best Point) bool { return p.Y > best.Y }
	case Left:
		better = func(p, best Point) bool { return p.X < best.X }
	case Right:
		better = func(p, best Point) bool { return p.X > best.X }
	default:
		return Point{}, fmt.Errorf("point at: unknown direction %d", dir)
	}
	best := pts[0]
	for _, p := range pts[1:] {
		if better(p, best) {
			best = p
		}
	}
	return best, nil
}

// Subdivide runs n rounds (at least one) of inserting a line to the
// midpoint of every segment, and returns the new sequence. A line is
// inserted before every instruction that ends a segment; for a closing
// instruction the segment runs from the last point back to the start of
// the subpath, and the new line goes right before the close.
func Subdivide(ins Instructions, n int) Instructions {
	if n < 1 {
		n = 1
	}
	for ; n > 0; n-- {
		ins = subdivideOnce(ins)
	}
	return ins
}

func subdivideOnce(snapshot Instructions) Instructions {
	// first pass: midpoints to insert, keyed by the index they go before
	inserts := make(map[int]Point)
	var start *Point
	for i, cur := range snapshot {
		if cur.Kind == MoveInstruction {
			start = cur.T
		}
		if i == 0 {
			continue
		}
		prev := snapshot[i-1]
		switch {
		case cur.Kind == MoveInstruction || !prev.HasPoint():
		case cur.Kind == CloseInstruction:
			if start != nil {
				inserts[i] = midpoint(*prev.T, *start)
			}
		default:
			inserts[i] = midpoint(*prev.T, *cur.T)
		}
	}

	out := make(Instructions, 0, len(snapshot)+len(inserts))
	for i, in := range snapshot {
		if p, ok := inserts[i]; ok {
			out = append(out, &Instruction{Kind: LineInstruction, T: &Point{p.X, p.Y}})
		}
		out = append(out, in)
	}
	return out
}

// Noise adds fn(p, i) to the terminal point p of the i-th instruction,
// for every instruction except close.
func Noise(ins Instructions, fn func(p Point, i int) Point) {
	for i, in := range ins {
		if !in.HasPoint() {
			continue
		}
		d := fn(*in.T, i)
		in.T.X += d.X
		in.T.Y += d.Y
		promoteAxisLine(in)
	}
}

// Bounds returns the corners of the box enclosing every terminal point.
func Bounds(ins Instructions) (min, max Point, err error) {
	pts := ins.Points()
	if len(pts) == 0 {
		return min, max, &DegenerateGeometryError{Op: "bounds"}
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max, nil
}
