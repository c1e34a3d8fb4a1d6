package svgshape

import "fmt"

// SyntaxError reports malformed path data or point list text. Pos is the
// byte offset of the offending text in Input and Token that text, empty
// when the input ended early.
type SyntaxError struct {
	Input string
	Pos   int
	Token string
	Msg   string
}

func (e *SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("syntax error at offset %d of %q: %s", e.Pos, e.Input, e.Msg)
	}
	return fmt.Sprintf("syntax error at offset %d (%q) of %q: %s", e.Pos, e.Token, e.Input, e.Msg)
}

// IndexError is returned when a point is addressed by an ordinal outside
// the instruction sequence or on an instruction without coordinates.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("point index %d out of range [0, %d)", e.Index, e.Len)
}

// DegenerateGeometryError is returned when a geometry operation receives
// an empty point set.
type DegenerateGeometryError struct {
	Op string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("%s: no points", e.Op)
}
