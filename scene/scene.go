// Package scene holds the scrollable world: a fixed-dimension toroidal
// grid of styled cells, generated once from the viewport size and immutable
// afterwards.
package scene

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Cell is one scene position: a rune plus its display style
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is the world grid. All index arithmetic is toroidal; accessors
// wrap out-of-range coordinates instead of failing.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// Width returns the scene width in cells
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the scene height in cells
func (b *Buffer) Height() int {
	return b.height
}

// Cell returns the cell at the wrapped coordinates, negative values included
func (b *Buffer) Cell(x, y int) Cell {
	return b.cells[wrap(y, b.height)*b.width+wrap(x, b.width)]
}

// WrapRow extracts exactly w cells from scene row y starting at column
// startX, circularly. The extraction repeats around the seam as many times
// as needed, so w may exceed the scene width. The returned slice is a copy.
func (b *Buffer) WrapRow(y, startX, w int) []Cell {
	if w <= 0 {
		return nil
	}

	rowStart := wrap(y, b.height) * b.width
	row := b.cells[rowStart : rowStart+b.width]

	out := make([]Cell, 0, w)
	x := wrap(startX, b.width)
	for len(out) < w {
		n := b.width - x
		if remaining := w - len(out); n > remaining {
			n = remaining
		}
		out = append(out, row[x:x+n]...)
		x = 0
	}
	return out
}

// FromStrings builds a buffer from equal-length rows, one cell per rune,
// all sharing the given style. Used by tests and custom ASCII scenes.
func FromStrings(rows []string, style tcell.Style) (*Buffer, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("scene has no rows")
	}
	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("scene rows are empty")
	}

	b := &Buffer{
		cells:  make([]Cell, width*len(rows)),
		width:  width,
		height: len(rows),
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d is %d runes wide, expected %d", y, len(runes), width)
		}
		for x, r := range runes {
			b.cells[y*width+x] = Cell{Rune: r, Style: style}
		}
	}
	return b, nil
}

// DimensionsFor derives scene dimensions from the viewport size and the
// configured multipliers
func DimensionsFor(viewportW, viewportH, widthMult, heightMult int) (w, h int) {
	return viewportW * widthMult, viewportH * heightMult
}

// wrap returns v mod m in [0, m), tolerating negative v
func wrap(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
