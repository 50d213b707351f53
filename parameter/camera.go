package parameter

// Camera Motion Scaling
const (
	// ScrollSpeed converts raw pointer units to scene tiles per frame
	// Horizontal sign is inverted at application time (pointer right scrolls world left)
	ScrollSpeed = 0.2
)
