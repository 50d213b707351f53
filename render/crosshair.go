package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mouselook/display"
	"github.com/lixenwraith/mouselook/parameter"
	"github.com/lixenwraith/mouselook/scene"
)

// Crosshair marks the aim point. Its cell is fixed in viewport space,
// independent of camera offset.
type Crosshair struct{}

func (Crosshair) Draw(ctx FrameContext, d display.Device) {
	d.WriteCell(ctx.ViewportWidth/2, ctx.ViewportHeight/2, scene.Cell{
		Rune:  parameter.CrosshairRune,
		Style: tcell.StyleDefault.Bold(true),
	})
}
