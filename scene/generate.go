package scene

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mouselook/parameter"
	colorful "github.com/lucasb-eyer/go-colorful"
	runewidth "github.com/mattn/go-runewidth"
)

// Generate builds the world grid for the given dimensions: a checker
// pattern of gradient-tinted tiles plus a fixed landmark bar, so every
// region of the torus is visually distinct while scrolling.
func Generate(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid scene dimensions %dx%d", width, height)
	}

	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}

	tileA := safeRune(parameter.TileRuneA)
	tileB := safeRune(parameter.TileRuneB)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := tileA
			if (x/parameter.TileWidth+y/parameter.TileHeight)%2 == 1 {
				r = tileB
			}

			// Hue sweeps the horizontal axis, luminance the vertical, so
			// any two distant regions of the torus differ at a glance
			hue := 360 * float64(x) / float64(width)
			lum := 0.35 + 0.4*float64(y)/float64(height)
			cr, cg, cb := colorful.Hcl(hue, 0.5, lum).Clamped().RGB255()

			b.cells[y*width+x] = Cell{
				Rune:  r,
				Style: tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))),
			}
		}
	}

	b.placeLandmark()
	return b, nil
}

// placeLandmark writes the reference bar, clamped to scene bounds so small
// test scenes stay valid
func (b *Buffer) placeLandmark() {
	y := parameter.LandmarkRow
	if y >= b.height {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	for x := parameter.LandmarkColStart; x < parameter.LandmarkColEnd && x < b.width; x++ {
		b.cells[y*b.width+x] = Cell{Rune: parameter.LandmarkRune, Style: style}
	}
}

// safeRune guards the palette against double-width glyphs that would shear
// column alignment under ambiguous-width terminals
func safeRune(r rune) rune {
	if runewidth.RuneWidth(r) != 1 {
		return '.'
	}
	return r
}
