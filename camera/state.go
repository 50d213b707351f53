package camera

import (
	"github.com/lixenwraith/mouselook/parameter"
)

// State holds the continuous scroll offsets into the scene. Offsets are
// unbounded and never stored wrapped; the modulo happens only when an
// anchor is computed, so repeated wrapping cannot accumulate drift.
// Owned by the render loop, mutated once per frame.
type State struct {
	horizontal float64
	vertical   float64
	speed      float64
}

// NewState creates camera state with the given scroll speed in scene tiles
// per raw pointer unit. Non-positive speeds fall back to the default.
func NewState(speed float64) *State {
	if speed <= 0 {
		speed = parameter.ScrollSpeed
	}
	return &State{speed: speed}
}

// Advance applies a drained motion delta. Pointer right scrolls the world
// left, hence the horizontal sign flip.
func (st *State) Advance(dx, dy int) {
	st.horizontal -= float64(dx) * st.speed
	st.vertical += float64(dy) * st.speed
}

// Offsets returns the current continuous offsets
func (st *State) Offsets() (horizontal, vertical float64) {
	return st.horizontal, st.vertical
}

// Anchor wraps the current offsets into scene bounds, returning the integer
// top-left scene cell of the visible window
func (st *State) Anchor(sceneW, sceneH int) (startX, startY int) {
	return Anchor(st.horizontal, st.vertical, sceneW, sceneH)
}
