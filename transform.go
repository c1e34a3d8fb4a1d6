package svgshape

import (
	"fmt"
	"math"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// ParseTransform parses a transform attribute such as
// "translate(10,20) rotate(45 5 5) scale(2)" into a single matrix. As in SVG
// the rightmost function is applied first.
func ParseTransform(s string) (mt.Transform, error) {
	t := mt.Identity()
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		end := strings.IndexByte(rest, ')')
		if open < 0 || end < open {
			return t, fmt.Errorf("transform %q: unbalanced parentheses", s)
		}
		name := strings.Trim(rest[:open], " \t\r\n,")
		args, err := ParseNumbers(rest[open+1 : end])
		if err != nil {
			return t, fmt.Errorf("transform %q: %w", s, err)
		}
		step, err := transformStep(name, args)
		if err != nil {
			return t, fmt.Errorf("transform %q: %w", s, err)
		}
		t.MultiplyWith(step)
		rest = strings.TrimLeft(rest[end+1:], " \t\r\n,")
	}
	return t, nil
}

func transformStep(name string, a []float64) (mt.Transform, error) {
	t := mt.Identity()
	switch name {
	case "translate":
		switch len(a) {
		case 1:
			t.Translate(a[0], 0)
		case 2:
			t.Translate(a[0], a[1])
		default:
			return t, errParamMismatch(name, a)
		}
	case "scale":
		switch len(a) {
		case 1:
			t.Scale(a[0], a[0])
		case 2:
			t.Scale(a[0], a[1])
		default:
			return t, errParamMismatch(name, a)
		}
	case "rotate":
		switch len(a) {
		case 1:
			t = rotation(Point{}, a[0])
		case 3:
			t = rotation(Point{a[1], a[2]}, a[0])
		default:
			return t, errParamMismatch(name, a)
		}
	case "skewX":
		if len(a) != 1 {
			return t, errParamMismatch(name, a)
		}
		t.SkewX(radians(a[0]))
	case "skewY":
		if len(a) != 1 {
			return t, errParamMismatch(name, a)
		}
		t.SkewY(radians(a[0]))
	case "matrix":
		if len(a) != 6 {
			return t, errParamMismatch(name, a)
		}
		t = mt.Transform{
			{a[0], a[2], a[4]},
			{a[1], a[3], a[5]},
			{0, 0, 1},
		}
	default:
		return t, fmt.Errorf("unknown transform function %q", name)
	}
	return t, nil
}

func errParamMismatch(name string, a []float64) error {
	return fmt.Errorf("%s: unexpected parameter count %d", name, len(a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// rotation turns by deg degrees around pivot, clockwise on screen.
// mt.Transform.RotatePoint is not used: it translates back by (-x, -x).
func rotation(pivot Point, deg float64) mt.Transform {
	t := mt.Identity()
	t.Translate(pivot.X, pivot.Y)
	t.RotateOrigin(radians(deg))
	t.Translate(-pivot.X, -pivot.Y)
	return t
}

// TransformInstructions maps every coordinate of ins through t. Arc radii
// follow the image of the unit axes and horizontal or vertical lines
// become plain lines unless t keeps the axes apart.
func TransformInstructions(ins Instructions, t mt.Transform) {
	// images of the unit axes
	exx, exy := t[0][0], t[1][0]
	eyx, eyy := t[0][1], t[1][1]
	keepsAxes := exy == 0 && eyx == 0
	mirrored := exx*eyy-exy*eyx < 0

	for _, in := range ins {
		for _, p := range in.points() {
			p.X, p.Y = t.Apply(p.X, p.Y)
		}
		if in.Arc != nil {
			in.Arc.Rx *= math.Hypot(exx, exy)
			in.Arc.Ry *= math.Hypot(eyx, eyy)
			in.Arc.Rotation += math.Atan2(exy, exx) * 180 / math.Pi
			if mirrored {
				in.Arc.Sweep = !in.Arc.Sweep
			}
		}
		if !keepsAxes {
			promoteAxisLine(in)
		}
	}
}
