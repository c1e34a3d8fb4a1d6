// Command svgshape loads a shape from path data, a point list, a circle or
// an SVG file, applies geometry operations to it and prints the resulting
// path data.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/vasalvit/svgshape"
)

type options struct {
	d         string
	points    string
	polyline  string
	circle    string
	svgFile   string
	scale     float64
	transform string
	subdivide int
	move      string
	rot       float64
	pivot     string
}

func main() {
	var opts options
	flag.StringVar(&opts.d, "d", "", "path data")
	flag.StringVar(&opts.points, "points", "", "point list, closed into a polygon")
	flag.StringVar(&opts.polyline, "polyline", "", "point list, kept open")
	flag.StringVar(&opts.circle, "circle", "", "circle as cx,cy,r")
	flag.StringVar(&opts.svgFile, "svg", "", "SVG file; every shape in it is processed")
	flag.Float64Var(&opts.scale, "scale", 0, "SVG scale (>0 multiplies, <0 divides)")
	flag.StringVar(&opts.transform, "transform", "", "transform attribute applied first")
	flag.IntVar(&opts.subdivide, "subdivide", 0, "subdivision rounds (paths and polylines)")
	flag.StringVar(&opts.move, "move", "", "move the center to x,y")
	flag.Float64Var(&opts.rot, "rot", 0, "rotate clockwise by degrees")
	flag.StringVar(&opts.pivot, "pivot", "center", "rotation pivot: center, up, down, left, right, #index or x,y")
	flag.Parse()

	shapes, err := load(opts)
	if err != nil {
		log.Fatalf("load: %v", err)
	}
	for i, s := range shapes {
		if err := apply(s, opts); err != nil {
			log.Fatalf("shape %d: %v", i, err)
		}
		fmt.Fprintln(os.Stdout, s.String())
	}
}

func load(opts options) ([]svgshape.Shape, error) {
	switch {
	case opts.svgFile != "":
		f, err := os.Open(opts.svgFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		svg, err := svgshape.ParseSvgFromReader(f, opts.svgFile, opts.scale)
		if err != nil {
			return nil, err
		}
		log.Printf("loaded %d shapes from %s", len(svg.Shapes()), opts.svgFile)
		return svg.Shapes(), nil
	case opts.d != "":
		p, err := svgshape.NewPath(opts.d, nil)
		if err != nil {
			return nil, err
		}
		return []svgshape.Shape{p}, nil
	case opts.points != "":
		p, err := svgshape.NewPath(opts.points, nil)
		if err != nil {
			return nil, err
		}
		return []svgshape.Shape{p}, nil
	case opts.polyline != "":
		p, err := svgshape.NewPolyline(opts.polyline, nil)
		if err != nil {
			return nil, err
		}
		return []svgshape.Shape{p}, nil
	case opts.circle != "":
		v, err := floats(opts.circle, 3)
		if err != nil {
			return nil, fmt.Errorf("-circle: %w", err)
		}
		c, err := svgshape.NewCircle(svgshape.CircleParams{Cx: v[0], Cy: v[1], R: v[2]}, nil)
		if err != nil {
			return nil, err
		}
		return []svgshape.Shape{c}, nil
	}
	return nil, fmt.Errorf("one of -svg, -d, -points, -polyline or -circle is required")
}

// subdivider is implemented by paths and polylines.
type subdivider interface {
	Subdivide(n int)
}

func apply(s svgshape.Shape, opts options) error {
	if opts.transform != "" {
		m, err := svgshape.ParseTransform(opts.transform)
		if err != nil {
			return err
		}
		if err := s.Transform(m); err != nil {
			return err
		}
	}
	if opts.subdivide > 0 {
		sd, ok := s.(subdivider)
		if !ok {
			return fmt.Errorf("%T cannot be subdivided", s)
		}
		sd.Subdivide(opts.subdivide)
	}
	if opts.move != "" {
		v, err := floats(opts.move, 2)
		if err != nil {
			return fmt.Errorf("-move: %w", err)
		}
		if err := s.MoveTo(svgshape.Point{X: v[0], Y: v[1]}); err != nil {
			return err
		}
	}
	if opts.rot != 0 {
		pivot, err := parsePivot(opts.pivot)
		if err != nil {
			return err
		}
		if err := s.Rot(opts.rot, pivot); err != nil {
			return err
		}
	}
	return nil
}

func parsePivot(s string) (svgshape.Pivot, error) {
	switch strings.ToLower(s) {
	case "", "center":
		return svgshape.Center, nil
	case "up":
		return svgshape.Toward(svgshape.Up), nil
	case "down":
		return svgshape.Toward(svgshape.Down), nil
	case "left":
		return svgshape.Toward(svgshape.Left), nil
	case "right":
		return svgshape.Toward(svgshape.Right), nil
	}
	if strings.HasPrefix(s, "#") {
		i, err := strconv.Atoi(s[1:])
		if err != nil {
			return svgshape.Pivot{}, fmt.Errorf("-pivot %q: %w", s, err)
		}
		return svgshape.Index(i), nil
	}
	v, err := floats(s, 2)
	if err != nil {
		return svgshape.Pivot{}, fmt.Errorf("-pivot %q: %w", s, err)
	}
	return svgshape.At(svgshape.Point{X: v[0], Y: v[1]}), nil
}

func floats(s string, n int) ([]float64, error) {
	v, err := svgshape.ParseNumbers(s)
	if err != nil {
		return nil, err
	}
	if len(v) != n {
		return nil, fmt.Errorf("expected %d numbers in %q, got %d", n, s, len(v))
	}
	return v, nil
}
