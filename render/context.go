package render

// FrameContext carries per-frame state into overlays, passed by value
type FrameContext struct {
	// Viewport dimensions (terminal size)
	ViewportWidth  int
	ViewportHeight int

	// Anchor: the scene cell under the viewport's top-left corner
	StartX int
	StartY int

	// Continuous camera offsets, unwrapped
	Horizontal float64
	Vertical   float64

	Paused bool
	FPS    float64
}
