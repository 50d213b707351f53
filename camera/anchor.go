package camera

import "math"

// Anchor maps continuous offsets to the integer top-left scene cell.
// Floor precedes the wrap: an offset of -0.5 anchors at the last scene
// column, not at zero.
func Anchor(horizontal, vertical float64, sceneW, sceneH int) (startX, startY int) {
	startX = FloorMod(int(math.Floor(horizontal)), sceneW)
	startY = FloorMod(int(math.Floor(vertical)), sceneH)
	return startX, startY
}

// FloorMod returns x mod m in [0, m) for positive m.
// Go's % truncates toward zero and returns negatives for negative x.
func FloorMod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
