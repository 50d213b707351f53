package render

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mouselook/display"
	"github.com/lixenwraith/mouselook/parameter"
	"github.com/lixenwraith/mouselook/scene"
)

// HUD is the diagnostic overlay: camera offsets, window anchor, frame rate
type HUD struct {
	visible atomic.Bool
}

// NewHUD creates the overlay with the given initial visibility
func NewHUD(visible bool) *HUD {
	h := &HUD{}
	h.visible.Store(visible)
	return h
}

// Toggle flips visibility and returns the new state
func (h *HUD) Toggle() bool {
	for {
		v := h.visible.Load()
		if h.visible.CompareAndSwap(v, !v) {
			return !v
		}
	}
}

func (h *HUD) IsVisible() bool {
	return h.visible.Load()
}

func (h *HUD) Draw(ctx FrameContext, d display.Device) {
	status := ""
	if ctx.Paused {
		status = " [paused]"
	}
	text := fmt.Sprintf(" off=(%.1f,%.1f) anchor=(%d,%d) fps=%.0f%s ",
		ctx.Horizontal, ctx.Vertical, ctx.StartX, ctx.StartY, ctx.FPS, status)

	style := tcell.StyleDefault.Reverse(true)
	cells := make([]scene.Cell, 0, len(text))
	for _, r := range text {
		cells = append(cells, scene.Cell{Rune: r, Style: style})
	}
	d.WriteRow(parameter.HUDRow, cells)
}
