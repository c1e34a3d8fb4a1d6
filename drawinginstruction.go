package svgshape

import (
	"strconv"
	"strings"
)

// InstructionType identifies the path command an Instruction was parsed
// from. Instructions always hold absolute coordinates, so there is no
// relative variant.
type InstructionType int

// These are the path commands we understand
const (
	MoveInstruction InstructionType = iota
	LineInstruction
	HLineInstruction
	VLineInstruction
	CurveInstruction
	SmoothCurveInstruction
	QuadInstruction
	SmoothQuadInstruction
	ArcInstruction
	CloseInstruction
)

var instructionLetters = [...]byte{
	MoveInstruction:        'M',
	LineInstruction:        'L',
	HLineInstruction:       'H',
	VLineInstruction:       'V',
	CurveInstruction:       'C',
	SmoothCurveInstruction: 'S',
	QuadInstruction:        'Q',
	SmoothQuadInstruction:  'T',
	ArcInstruction:         'A',
	CloseInstruction:       'Z',
}

// Letter returns the absolute command letter of the instruction type.
func (k InstructionType) Letter() byte {
	if k < 0 || int(k) >= len(instructionLetters) {
		return '?'
	}
	return instructionLetters[k]
}

func (k InstructionType) String() string {
	return string(k.Letter())
}

// Point is an X,Y coordinate
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// ArcParams holds the elliptical arc parameters that precede the arc's
// terminal point.
type ArcParams struct {
	Rx, Ry   float64
	Rotation float64
	LargeArc bool
	Sweep    bool
}

// Instruction is one parsed path command. T is the terminal point and is
// set for every kind except CloseInstruction. C1 and C2 are control points:
// cubic curves use both, smooth cubics only C2 and quadratics only C1.
type Instruction struct {
	Kind InstructionType
	T    *Point
	C1   *Point
	C2   *Point
	Arc  *ArcParams
}

// HasPoint reports whether the instruction carries a terminal point.
func (in *Instruction) HasPoint() bool {
	return in.Kind != CloseInstruction && in.T != nil
}

// Clone returns a deep copy of the instruction.
func (in *Instruction) Clone() *Instruction {
	c := &Instruction{Kind: in.Kind}
	if in.T != nil {
		t := *in.T
		c.T = &t
	}
	if in.C1 != nil {
		c1 := *in.C1
		c.C1 = &c1
	}
	if in.C2 != nil {
		c2 := *in.C2
		c.C2 = &c2
	}
	if in.Arc != nil {
		a := *in.Arc
		c.Arc = &a
	}
	return c
}

// points returns pointers to every coordinate pair the instruction owns.
func (in *Instruction) points() []*Point {
	var pts []*Point
	for _, p := range []*Point{in.C1, in.C2, in.T} {
		if p != nil {
			pts = append(pts, p)
		}
	}
	return pts
}

func (in *Instruction) appendTo(b *strings.Builder) {
	b.WriteByte(in.Kind.Letter())
	var fields []string
	switch in.Kind {
	case CloseInstruction:
		return
	case HLineInstruction:
		fields = []string{formatNumber(in.T.X)}
	case VLineInstruction:
		fields = []string{formatNumber(in.T.Y)}
	case ArcInstruction:
		fields = []string{
			formatNumber(in.Arc.Rx), formatNumber(in.Arc.Ry),
			formatNumber(in.Arc.Rotation),
			formatFlag(in.Arc.LargeArc), formatFlag(in.Arc.Sweep),
		}
		fields = append(fields, formatPoint(in.T)...)
	default:
		for _, p := range in.points() {
			fields = append(fields, formatPoint(p)...)
		}
	}
	b.WriteString(strings.Join(fields, ","))
}

// String serializes the instruction as path data.
func (in *Instruction) String() string {
	var b strings.Builder
	in.appendTo(&b)
	return b.String()
}

// Instructions is a parsed path: an ordered sequence whose first element
// is a move and whose close instruction, if any, is last.
type Instructions []*Instruction

// Clone deep copies the sequence.
func (ins Instructions) Clone() Instructions {
	if ins == nil {
		return nil
	}
	c := make(Instructions, len(ins))
	for i, in := range ins {
		c[i] = in.Clone()
	}
	return c
}

// Closed reports whether the sequence ends with a close instruction.
func (ins Instructions) Closed() bool {
	return len(ins) > 0 && ins[len(ins)-1].Kind == CloseInstruction
}

// Points returns the terminal points of every instruction that has one.
func (ins Instructions) Points() []Point {
	pts := make([]Point, 0, len(ins))
	for _, in := range ins {
		if in.HasPoint() {
			pts = append(pts, *in.T)
		}
	}
	return pts
}

// String serializes the sequence back into path data. Re-parsing the
// result yields a value-equal sequence.
func (ins Instructions) String() string {
	var b strings.Builder
	for i, in := range ins {
		if i > 0 {
			b.WriteByte(' ')
		}
		in.appendTo(&b)
	}
	return b.String()
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func formatPoint(p *Point) []string {
	return []string{formatNumber(p.X), formatNumber(p.Y)}
}
