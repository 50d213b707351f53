// Package display abstracts the text grid the viewport draws on. The real
// implementation wraps a tcell screen; tests substitute tcell's simulation
// screen behind the same contract.
package display

import (
	"github.com/lixenwraith/mouselook/scene"
)

// Device is the drawing surface. Writes outside the addressable area fail
// silently: a one-row terminal renders what fits and drops the rest, it
// never errors and never interrupts a frame.
type Device interface {
	// Size returns the current drawable dimensions
	Size() (w, h int)

	// Clear erases the whole surface
	Clear()

	// WriteRow draws cells left to right from (0, y), clipping at the right
	// edge and ignoring rows outside the surface
	WriteRow(y int, cells []scene.Cell)

	// WriteCell draws one cell, ignoring out-of-range coordinates
	WriteCell(x, y int, c scene.Cell)

	// HideCursor keeps the hardware cursor off the surface
	HideCursor()

	// Present flushes pending writes to the physical display
	Present()
}
