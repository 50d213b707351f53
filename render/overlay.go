package render

import (
	"github.com/lixenwraith/mouselook/display"
)

// Overlay is implemented by fixtures drawn over the scene window each frame
type Overlay interface {
	Draw(ctx FrameContext, d display.Device)
}

// VisibilityToggle is optionally implemented for runtime show/hide
type VisibilityToggle interface {
	IsVisible() bool
}

// OverlayPriority determines draw order. Lower values draw first
type OverlayPriority int

const (
	PriorityCrosshair OverlayPriority = iota
	PriorityHUD
)

type overlayEntry struct {
	overlay  Overlay
	priority OverlayPriority
	index    int // registration order for stable sort
}
