package display

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mouselook/scene"
)

// Screen adapts an initialized tcell screen to the Device contract.
// tcell discards out-of-range SetContent calls, which supplies the
// fail-silent write semantics directly.
type Screen struct {
	tc tcell.Screen
}

// NewScreen wraps a tcell screen that has already been through Init
func NewScreen(tc tcell.Screen) *Screen {
	return &Screen{tc: tc}
}

func (s *Screen) Size() (w, h int) {
	return s.tc.Size()
}

func (s *Screen) Clear() {
	s.tc.Clear()
}

func (s *Screen) WriteRow(y int, cells []scene.Cell) {
	_, h := s.tc.Size()
	if y < 0 || y >= h {
		return
	}
	for x, c := range cells {
		s.tc.SetContent(x, y, c.Rune, nil, c.Style)
	}
}

func (s *Screen) WriteCell(x, y int, c scene.Cell) {
	s.tc.SetContent(x, y, c.Rune, nil, c.Style)
}

func (s *Screen) HideCursor() {
	s.tc.HideCursor()
}

func (s *Screen) Present() {
	s.tc.Show()
}
