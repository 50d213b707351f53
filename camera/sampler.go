// Package camera implements the viewport camera core: a thread-safe motion
// accumulator fed by input capture, continuous unbounded scroll offsets
// advanced once per frame, and the anchor math mapping offsets onto a
// toroidal scene.
package camera

import (
	"sync"
)

// MotionSampler accumulates relative pointer deltas between frames.
// One producer (the input capture goroutine) adds samples, one consumer
// (the render loop) drains them. Both components are guarded as a unit so
// a drain never observes a half-applied sample.
type MotionSampler struct {
	mu sync.Mutex
	dx int
	dy int
}

// NewMotionSampler creates an empty sampler
func NewMotionSampler() *MotionSampler {
	return &MotionSampler{}
}

// Accumulate adds a raw pointer motion sample. The vertical component is
// negated on entry: screen y grows downward, camera y grows upward.
// Safe to call concurrently with Drain.
func (s *MotionSampler) Accumulate(dx, dy int) {
	s.mu.Lock()
	s.dx += dx
	s.dy -= dy
	s.mu.Unlock()
}

// Drain returns the accumulated vector and resets it to zero as one
// indivisible operation. Called from the single render consumer.
func (s *MotionSampler) Drain() (dx, dy int) {
	s.mu.Lock()
	dx, dy = s.dx, s.dy
	s.dx, s.dy = 0, 0
	s.mu.Unlock()
	return dx, dy
}
