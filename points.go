package svgshape

import "strings"

// ParseNumbers parses a list of numbers separated by commas or whitespace.
func ParseNumbers(s string) ([]float64, error) {
	toks, err := tokenize("numbers", s)
	if err != nil {
		return nil, err
	}
	nums := make([]float64, len(toks))
	for i, t := range toks {
		if t.kind != numberToken {
			return nil, &SyntaxError{Input: s, Pos: t.pos, Token: t.value, Msg: "expected number"}
		}
		nums[i] = t.num
	}
	return nums, nil
}

// ParsePoints parses a points attribute ("x1,y1 x2,y2 ...") into Points.
// Commas and whitespace are both separators, but the number count must be
// even.
func ParsePoints(s string) ([]Point, error) {
	nums, err := ParseNumbers(s)
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, &SyntaxError{Input: s, Msg: "empty point list"}
	}
	if len(nums)%2 != 0 {
		return nil, &SyntaxError{Input: s, Pos: len(s), Msg: "odd number of coordinates"}
	}

	pts := make([]Point, len(nums)/2)
	for i := range pts {
		pts[i] = Point{nums[2*i], nums[2*i+1]}
	}
	return pts, nil
}

// PointsPathData synthesizes path data visiting pts in order: a move to the
// first point followed by lines, closed when closed is true.
func PointsPathData(pts []Point, closed bool) string {
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteByte('M')
		} else {
			b.WriteString(" L")
		}
		b.WriteString(strings.Join(formatPoint(&p), ","))
	}
	if closed && len(pts) > 0 {
		b.WriteString(" Z")
	}
	return b.String()
}
