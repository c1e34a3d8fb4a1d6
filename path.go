package svgshape

import (
	"fmt"
	"unicode"
)

var commandKinds = map[byte]InstructionType{
	'M': MoveInstruction,
	'L': LineInstruction,
	'H': HLineInstruction,
	'V': VLineInstruction,
	'C': CurveInstruction,
	'S': SmoothCurveInstruction,
	'Q': QuadInstruction,
	'T': SmoothQuadInstruction,
	'A': ArcInstruction,
	'Z': CloseInstruction,
}

// number of arguments one repetition of a command consumes
var commandArity = map[InstructionType]int{
	MoveInstruction:        2,
	LineInstruction:        2,
	HLineInstruction:       1,
	VLineInstruction:       1,
	CurveInstruction:       6,
	SmoothCurveInstruction: 4,
	QuadInstruction:        4,
	SmoothQuadInstruction:  2,
	ArcInstruction:         7,
	CloseInstruction:       0,
}

type pathDescriptionParser struct {
	input string
	toks  []token
	pos   int
	x, y  float64
	ins   Instructions
}

// ParsePathData parses path description data (the d attribute of a path
// element) into absolute instructions. Relative commands are resolved
// against the previous instruction's terminal point, and extra argument
// groups after a command repeat it (after a move they repeat as lines).
func ParsePathData(d string) (Instructions, error) {
	toks, err := tokenize("d", d)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, &SyntaxError{Input: d, Msg: "empty path data"}
	}

	pdp := &pathDescriptionParser{input: d, toks: toks}
	for pdp.pos < len(pdp.toks) {
		t := pdp.next()
		if pdp.ins.Closed() {
			return nil, pdp.errorf(t, "unexpected content after close path")
		}
		if t.kind != letterToken {
			return nil, pdp.errorf(t, "expected command letter")
		}
		if err := pdp.parseCommand(t); err != nil {
			return nil, err
		}
	}
	return pdp.ins, nil
}

func (pdp *pathDescriptionParser) next() token {
	t := pdp.toks[pdp.pos]
	pdp.pos++
	return t
}

func (pdp *pathDescriptionParser) errorf(t token, format string, args ...interface{}) error {
	return &SyntaxError{Input: pdp.input, Pos: t.pos, Token: t.value, Msg: fmt.Sprintf(format, args...)}
}

func (pdp *pathDescriptionParser) parseCommand(t token) error {
	letter := rune(t.value[0])
	rel := unicode.IsLower(letter)
	kind, ok := commandKinds[byte(unicode.ToUpper(letter))]
	if !ok {
		return pdp.errorf(t, "unknown command")
	}
	if len(pdp.ins) == 0 && (kind != MoveInstruction || rel) {
		return pdp.errorf(t, "path data must start with an absolute move")
	}

	// arguments run until the next letter
	var args []token
	for pdp.pos < len(pdp.toks) && pdp.toks[pdp.pos].kind == numberToken {
		args = append(args, pdp.next())
	}

	arity := commandArity[kind]
	if kind == CloseInstruction {
		if len(args) > 0 {
			return pdp.errorf(args[0], "close path takes no arguments")
		}
		pdp.ins = append(pdp.ins, &Instruction{Kind: CloseInstruction})
		return nil
	}
	if len(args) == 0 {
		return pdp.errorf(t, "missing arguments")
	}
	if len(args)%arity != 0 {
		bad := args[len(args)-len(args)%arity]
		return pdp.errorf(bad, "%c expects arguments in groups of %d, got %d", kind.Letter(), arity, len(args))
	}

	for g := 0; g < len(args)/arity; g++ {
		group := args[g*arity : (g+1)*arity]
		k := kind
		if kind == MoveInstruction && g > 0 {
			k = LineInstruction
		}
		in, err := pdp.instruction(k, rel, group)
		if err != nil {
			return err
		}
		pdp.ins = append(pdp.ins, in)
		pdp.x, pdp.y = in.T.X, in.T.Y
	}
	return nil
}

func (pdp *pathDescriptionParser) instruction(kind InstructionType, rel bool, group []token) (*Instruction, error) {
	a := make([]float64, len(group))
	for i, t := range group {
		a[i] = t.num
	}
	abs := func(x, y float64) *Point {
		if rel {
			x += pdp.x
			y += pdp.y
		}
		return &Point{x, y}
	}

	in := &Instruction{Kind: kind}
	switch kind {
	case MoveInstruction, LineInstruction, SmoothQuadInstruction:
		in.T = abs(a[0], a[1])
	case HLineInstruction:
		x := a[0]
		if rel {
			x += pdp.x
		}
		in.T = &Point{x, pdp.y}
	case VLineInstruction:
		y := a[0]
		if rel {
			y += pdp.y
		}
		in.T = &Point{pdp.x, y}
	case CurveInstruction:
		in.C1 = abs(a[0], a[1])
		in.C2 = abs(a[2], a[3])
		in.T = abs(a[4], a[5])
	case SmoothCurveInstruction:
		in.C2 = abs(a[0], a[1])
		in.T = abs(a[2], a[3])
	case QuadInstruction:
		in.C1 = abs(a[0], a[1])
		in.T = abs(a[2], a[3])
	case ArcInstruction:
		for _, f := range group[3:5] {
			if f.num != 0 && f.num != 1 {
				return nil, pdp.errorf(f, "arc flag must be 0 or 1")
			}
		}
		in.Arc = &ArcParams{
			Rx:       a[0],
			Ry:       a[1],
			Rotation: a[2],
			LargeArc: a[3] == 1,
			Sweep:    a[4] == 1,
		}
		in.T = abs(a[5], a[6])
	}
	return in, nil
}
