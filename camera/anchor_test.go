package camera

import "testing"

func TestFloorMod(t *testing.T) {
	cases := []struct{ x, m, want int }{
		{0, 20, 0},
		{19, 20, 19},
		{20, 20, 0},
		{39, 20, 19},
		{-1, 20, 19},
		{-20, 20, 0},
		{-21, 20, 19},
	}
	for _, c := range cases {
		if got := FloorMod(c.x, c.m); got != c.want {
			t.Errorf("FloorMod(%d, %d): expected %d, got %d", c.x, c.m, c.want, got)
		}
	}
}

func TestAnchorConcreteOffset(t *testing.T) {
	// Offset 19.5 in a 20-wide scene anchors at column 19
	x, _ := Anchor(19.5, 0, 20, 10)
	if x != 19 {
		t.Errorf("Expected startX 19, got %d", x)
	}
}

func TestAnchorNegativeOffsets(t *testing.T) {
	x, y := Anchor(-0.5, -0.5, 20, 10)
	if x != 19 {
		t.Errorf("Expected startX 19 for offset -0.5, got %d", x)
	}
	if y != 9 {
		t.Errorf("Expected startY 9 for offset -0.5, got %d", y)
	}
}

// TestAnchorWrapIdempotence verifies offsets one full scene width apart
// anchor on the same cell.
func TestAnchorWrapIdempotence(t *testing.T) {
	offsets := []float64{0, 3.7, 19.999, -2.5, -40.25, 123.456}
	for _, h := range offsets {
		x0, _ := Anchor(h, 0, 20, 10)
		x1, _ := Anchor(h+20, 0, 20, 10)
		if x0 != x1 {
			t.Errorf("Anchor(%f) = %d but Anchor(%f) = %d", h, x0, h+20, x1)
		}
	}
}
