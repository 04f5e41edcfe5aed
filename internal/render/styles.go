package render

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Palette matched to the reference figures: red, green, blue first so the
// usual CryptDisk / PfsDisk / StrataDisk triple keeps its colors, then the
// line-chart extras.
var seriesColors = []color.RGBA{
	{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}, // red
	{R: 0x8e, G: 0xb0, B: 0x60, A: 0xff}, // green
	{R: 0x4a, G: 0x90, B: 0xe2, A: 0xff}, // blue
	{R: 0x1f, G: 0x4e, B: 0x79, A: 0xff}, // dark blue
	{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff}, // dark red
	{R: 0xf1, G: 0xc4, B: 0x0f, A: 0xff}, // yellow
	{R: 0x76, G: 0xd7, B: 0xc4, A: 0xff}, // teal
	{R: 0x3b, G: 0x75, B: 0xaf, A: 0xff}, // steel blue
}

// Stack shades for the cost-breakdown bars, light to dark.
var stackColors = []color.RGBA{
	{R: 0xcf, G: 0xe2, B: 0xf3, A: 0xff},
	{R: 0x9f, G: 0xc5, B: 0xe8, A: 0xff},
	{R: 0x6f, G: 0xa8, B: 0xdc, A: 0xff},
	{R: 0x3d, G: 0x85, B: 0xc6, A: 0xff},
	{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
	{R: 0xf9, G: 0xcb, B: 0x9c, A: 0xff},
	{R: 0xea, G: 0x99, B: 0x99, A: 0xff},
	{R: 0x72, G: 0x9f, B: 0xcf, A: 0xff},
}

func SeriesColor(i int) color.RGBA {
	if i < 0 {
		i = 0
	}
	return seriesColors[i%len(seriesColors)]
}

func StackColor(i int) color.RGBA {
	if i < 0 {
		i = 0
	}
	return stackColors[i%len(stackColors)]
}

var seriesGlyphs = []draw.GlyphDrawer{
	draw.CircleGlyph{},
	draw.SquareGlyph{},
	draw.PyramidGlyph{},
	draw.BoxGlyph{},
	draw.TriangleGlyph{},
	draw.RingGlyph{},
	draw.CrossGlyph{},
	draw.PlusGlyph{},
}

func SeriesGlyph(i int) draw.GlyphDrawer {
	if i < 0 {
		i = 0
	}
	return seriesGlyphs[i%len(seriesGlyphs)]
}

var seriesDashes = [][]vg.Length{
	nil,
	{vg.Points(5), vg.Points(2)},
	{vg.Points(2), vg.Points(2)},
	{vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)},
}

func SeriesDashes(i int) []vg.Length {
	if i < 0 {
		i = 0
	}
	return seriesDashes[i%len(seriesDashes)]
}
