package parameter

import "time"

// Input Capture
const (
	// KeyImpulse is the synthetic pointer delta injected per key press,
	// in raw pointer units (1 tile at the default scroll speed)
	KeyImpulse = 5

	// CursorHideInterval is the re-assert period for terminal cursor hiding
	CursorHideInterval = 100 * time.Millisecond

	// CommandBufferSize bounds the capture-to-main command channel
	// Capture drops commands rather than block the poll goroutine
	CommandBufferSize = 16
)
