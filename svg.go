package svgshape

import (
	"encoding/xml"
	"fmt"
	"io"

	mt "github.com/rustyoz/Mtransform"
)

// Svg is an SVG document reduced to the shapes it contains. Shapes hold
// world coordinates: the document scale and every group and element
// transform have been applied to them.
type Svg struct {
	Title     string
	Name      string
	Groups    []*Group
	Elements  []Shape
	Transform *mt.Transform
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	ID              string
	TransformString string
	Transform       *mt.Transform // row, column
	Groups          []*Group
	Elements        []Shape
	Parent          *Group
	Owner           *Svg

	// document to world, this group's own transform included
	world mt.Transform
}

// Shapes returns every shape of the document, top level elements first and
// then each group depth first.
func (s *Svg) Shapes() []Shape {
	shapes := append([]Shape(nil), s.Elements...)
	for _, g := range s.Groups {
		shapes = append(shapes, g.Shapes()...)
	}
	return shapes
}

// Shapes returns the shapes of the group and its subgroups.
func (g *Group) Shapes() []Shape {
	shapes := append([]Shape(nil), g.Elements...)
	for _, sub := range g.Groups {
		shapes = append(shapes, sub.Shapes()...)
	}
	return shapes
}

func (s *Svg) world() mt.Transform {
	if s.Transform == nil {
		return mt.Identity()
	}
	return *s.Transform
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	g.world = mt.Identity()
	switch {
	case g.Parent != nil:
		g.world = g.Parent.world
	case g.Owner != nil:
		g.world = g.Owner.world()
	}
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "transform":
			g.TransformString = attr.Value
			t, err := ParseTransform(g.TransformString)
			if err != nil {
				return fmt.Errorf("group %q: %w", g.ID, err)
			}
			g.Transform = &t
		}
	}
	if g.Transform != nil {
		g.world = mt.MultiplyTransforms(g.world, *g.Transform)
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if tok.Name.Local == "g" {
				sub := &Group{Parent: g, Owner: g.Owner}
				if err = decoder.DecodeElement(sub, &tok); err != nil {
					return fmt.Errorf("error decoding group element within group %q: %w", g.ID, err)
				}
				g.Groups = append(g.Groups, sub)
				continue
			}
			shape, err := decodeShape(decoder, tok, g.world)
			if err != nil {
				return fmt.Errorf("error decoding element of group %q: %w", g.ID, err)
			}
			if shape != nil {
				g.Elements = append(g.Elements, shape)
			}

		case xml.EndElement:
			return nil
		}
	}
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "g":
				g := &Group{Owner: s}
				if err = decoder.DecodeElement(g, &tok); err != nil {
					return fmt.Errorf("error decoding group element within SVG struct: %w", err)
				}
				s.Groups = append(s.Groups, g)
				continue
			case "title":
				if err = decoder.DecodeElement(&s.Title, &tok); err != nil {
					return fmt.Errorf("error decoding title: %w", err)
				}
				continue
			}

			shape, err := decodeShape(decoder, tok, s.world())
			if err != nil {
				return fmt.Errorf("error decoding element of SVG struct: %w", err)
			}
			if shape != nil {
				s.Elements = append(s.Elements, shape)
			}

		case xml.EndElement:
			if tok.Name.Local == "svg" {
				return nil
			}
		}
	}
}

// decodeShape builds the shape for a path, circle, polyline, polygon or rect
// element and maps it to world coordinates. Other elements are skipped and
// yield a nil shape.
func decodeShape(decoder *xml.Decoder, start xml.StartElement, world mt.Transform) (Shape, error) {
	if err := decoder.Skip(); err != nil {
		return nil, err
	}

	node := NewElement(start.Name.Local)
	for _, attr := range start.Attr {
		node.SetAttribute(attr.Name.Local, attr.Value)
	}

	var (
		shape Shape
		err   error
	)
	switch start.Name.Local {
	case "path":
		shape, err = NewPath(node.GetAttribute("d"), node)
	case "circle":
		shape, err = NewCircleFromNode(node)
	case "polyline":
		shape, err = NewPolyline(node.GetAttribute("points"), node)
	case "polygon":
		shape, err = NewPath(node.GetAttribute("points"), node)
	case "rect":
		shape, err = newRect(node)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("<%s id=%q>: %w", start.Name.Local, node.GetAttribute("id"), err)
	}

	if ts := node.GetAttribute("transform"); ts != "" {
		own, err := ParseTransform(ts)
		if err != nil {
			return nil, fmt.Errorf("<%s id=%q>: %w", start.Name.Local, node.GetAttribute("id"), err)
		}
		world = mt.MultiplyTransforms(world, own)
		node.RemoveAttribute("transform")
	}
	if world != mt.Identity() {
		if err := shape.Transform(world); err != nil {
			return nil, err
		}
	}
	return shape, nil
}

func newSvg(name string, scale float64) *Svg {
	svg := &Svg{Name: name}
	if scale > 0 {
		svg.Transform = mt.NewTransform()
		svg.Transform.Scale(scale, scale)
	}
	if scale < 0 {
		svg.Transform = mt.NewTransform()
		svg.Transform.Scale(1.0/-scale, 1.0/-scale)
	}
	return svg
}

// ParseSvg parses an SVG string into an SVG struct. A positive scale
// multiplies every coordinate, a negative one divides by -scale and zero
// leaves coordinates alone.
func ParseSvg(str string, name string, scale float64) (*Svg, error) {
	svg := newSvg(name, scale)
	if err := xml.Unmarshal([]byte(str), svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %w", err)
	}
	return svg, nil
}

// ParseSvgFromReader parses an SVG struct from an io.Reader
func ParseSvgFromReader(r io.Reader, name string, scale float64) (*Svg, error) {
	svg := newSvg(name, scale)
	if err := xml.NewDecoder(r).Decode(svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %w", err)
	}
	return svg, nil
}

// newRect turns a rect element into a closed path through its corners.
func newRect(node *Element) (*Path, error) {
	var v [4]float64
	for i, name := range []string{"x", "y", "width", "height"} {
		s := node.GetAttribute(name)
		if s == "" {
			continue
		}
		f, err := parseNumber(s)
		if err != nil {
			return nil, fmt.Errorf("rect attribute %s: %w", name, err)
		}
		v[i] = f
	}
	x, y, w, h := v[0], v[1], v[2], v[3]
	pts := []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	return NewPath(PointsPathData(pts, true), node)
}
