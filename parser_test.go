package svgshape

import (
	"strings"
	"testing"

	"github.com/cheekybits/is"
)

const testSvg = `<?xml version="1.0" encoding="utf-8"?>
<!-- Generator: Adobe Illustrator 15.0.2, SVG Export Plug-In . SVG Version: 6.00 Build 0)  -->
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg version="1.1" id="Layer_1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" x="0px" y="0px"
	 width="595.201px" height="841.922px" viewBox="0 0 595.201 841.922" enable-background="new 0 0 595.201 841.922"
	 xml:space="preserve">
<rect x="207" y="53" fill="#009FE3" width="181.667" height="85.333"/>
<text transform="matrix(1 0 0 1 232.3306 107.5952)" fill="#FFFFFF" font-family="'ArialMT'" font-size="31.9752">PODIUM</text>
</svg>`

const groupedSvg = `<svg xmlns="http://www.w3.org/2000/svg">
<title>shapes</title>
<circle id="top" cx="1" cy="1" r="2"/>
<g id="outer" transform="translate(10,10)">
	<circle id="c" cx="0" cy="0" r="2"/>
	<path id="p" d="M0,0 L1,0" transform="scale(3)"/>
	<g id="inner" transform="scale(2)">
		<polyline id="pl" points="0,0 1,1"/>
		<polygon id="pg" points="0,0 1,0 1,1"/>
	</g>
</g>
</svg>`

func TestParse(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(testSvg, "test", 0)
	is.NoErr(err)
	is.NotNil(svg)
	is.Equal(len(svg.Shapes()), 1)

	svg, err = ParseSvgFromReader(strings.NewReader(testSvg), "test", 0)
	is.NoErr(err)
	is.NotNil(svg)
	is.Equal(svg.Name, "test")

	rect, ok := svg.Shapes()[0].(*Path)
	is.True(ok)
	is.True(rect.Instructions().Closed())
	is.Equal(len(rect.Points()), 4)
	is.Equal(rect.Points()[0], Point{207, 53})
}

func TestParseGroups(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(groupedSvg, "groups", 0)
	is.NoErr(err)
	is.Equal(svg.Title, "shapes")
	is.Equal(len(svg.Groups), 1)
	is.Equal(svg.Groups[0].ID, "outer")
	is.NotNil(svg.Groups[0].Transform)
	x, y := svg.Groups[0].Transform.Apply(1, 1)
	is.Equal(x, 11.0)
	is.Equal(y, 11.0)
	is.Equal(len(svg.Groups[0].Groups), 1)

	shapes := svg.Shapes()
	is.Equal(len(shapes), 5)

	top := shapes[0].(*Circle)
	center, err := top.Center()
	is.NoErr(err)
	is.Equal(center, Point{1, 1})

	c := shapes[1].(*Circle)
	center, err = c.Center()
	is.NoErr(err)
	is.Equal(center, Point{10, 10})
	is.Equal(c.Radius(), 2.0)
	is.Equal(c.Node().GetAttribute("cx"), "10")

	p := shapes[2].(*Path)
	is.Equal(p.Points(), []Point{{10, 10}, {13, 10}})
	is.Equal(p.Node().GetAttribute("transform"), "")
	is.Equal(p.Node().GetAttribute("id"), "p")

	pl := shapes[3].(*Polyline)
	is.Equal(pl.Points(), []Point{{10, 10}, {12, 12}})
	is.True(!pl.Instructions().Closed())

	pg := shapes[4].(*Path)
	is.Equal(pg.Points(), []Point{{10, 10}, {12, 10}, {12, 12}})
	is.True(pg.Instructions().Closed())
}

func TestParseScale(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(groupedSvg, "scaled", 2)
	is.NoErr(err)
	c := svg.Shapes()[0].(*Circle)
	center, err := c.Center()
	is.NoErr(err)
	is.Equal(center, Point{2, 2})
	is.Equal(c.Radius(), 4.0)

	svg, err = ParseSvg(groupedSvg, "shrunk", -2)
	is.NoErr(err)
	c = svg.Shapes()[1].(*Circle)
	center, err = c.Center()
	is.NoErr(err)
	is.Equal(center, Point{5, 5})
	is.Equal(c.Radius(), 1.0)
}

func TestParseErrors(t *testing.T) {
	is := is.New(t)

	for _, doc := range []string{
		`<svg><path d="L0,0"/></svg>`,
		`<svg><circle r="x"/></svg>`,
		`<svg><g transform="spin(3)"><circle r="1"/></g></svg>`,
		`<svg><polyline points="0,0 1"/></svg>`,
		`<svg><rect width="wide"/></svg>`,
		`<svg><path d="M0,0"`,
		`<svg><path d="M0,0 L1,1 #"/></svg>`,
		`<svg><g transform="translate(1;2)"><circle r="1"/></g></svg>`,
	} {
		_, err := ParseSvg(doc, "bad", 0)
		is.Err(err)
	}
}
