package parameter

import "time"

// Render Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FPSSampleWindow is the number of frames averaged for the HUD estimate
	FPSSampleWindow = 30
)

// Overlay Drawing
const (
	// CrosshairRune is drawn at the fixed viewport center cell
	CrosshairRune = '+'

	// HUDRow is the viewport row occupied by the diagnostic overlay
	HUDRow = 0
)
