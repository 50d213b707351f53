package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mouselook/camera"
	"github.com/lixenwraith/mouselook/display"
	"github.com/lixenwraith/mouselook/parameter"
	"github.com/lixenwraith/mouselook/scene"
)

var testRows = []string{
	"abcdefghijklmnopqrst",
	"ABCDEFGHIJKLMNOPQRST",
	"01234567890123456789",
	"uvwxyzuvwxyzuvwxyzuv",
}

func newTestViewport(t *testing.T, rows []string, w, h int) (tcell.SimulationScreen, *Viewport, *camera.MotionSampler) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("simulation screen init failed: %v", err)
	}
	sim.SetSize(w, h)

	buf, err := scene.FromStrings(rows, tcell.StyleDefault)
	if err != nil {
		t.Fatalf("scene build failed: %v", err)
	}

	sampler := camera.NewMotionSampler()
	vp := NewViewport(sampler, camera.NewState(0.2), buf, display.NewScreen(sim))
	return sim, vp, sampler
}

func screenRow(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
		} else {
			b.WriteRune(c.Runes[0])
		}
	}
	return b.String()
}

func snapshot(sim tcell.SimulationScreen) []string {
	_, _, h := sim.GetContents()
	out := make([]string, h)
	for y := 0; y < h; y++ {
		out[y] = screenRow(sim, y)
	}
	return out
}

func TestFrameWindowContent(t *testing.T) {
	sim, vp, sampler := newTestViewport(t, testRows, 8, 3)
	vp.Register(Crosshair{}, PriorityCrosshair)

	vp.Frame()
	if got := screenRow(sim, 0); got != "abcdefgh" {
		t.Errorf("Expected \"abcdefgh\", got %q", got)
	}
	if got := screenRow(sim, 1); got != "ABCD+FGH" {
		t.Errorf("Expected crosshair row \"ABCD+FGH\", got %q", got)
	}
	if got := screenRow(sim, 2); got != "01234567" {
		t.Errorf("Expected \"01234567\", got %q", got)
	}

	// One tile of rightward pointer motion: the window wraps the seam
	sampler.Accumulate(5, 0)
	vp.Frame()
	if got := screenRow(sim, 0); got != "tabcdefg" {
		t.Errorf("Expected wrapped row \"tabcdefg\", got %q", got)
	}
}

func TestCrosshairInvariance(t *testing.T) {
	sim, vp, sampler := newTestViewport(t, testRows, 9, 5)
	vp.Register(Crosshair{}, PriorityCrosshair)

	deltas := [][2]int{{0, 0}, {37, -12}, {-100, 53}, {9999, 9999}}
	for _, d := range deltas {
		sampler.Accumulate(d[0], d[1])
		vp.Frame()
		row := screenRow(sim, 2)
		if row[4] != byte(parameter.CrosshairRune) {
			t.Errorf("after delta %v: expected crosshair at (4, 2), row is %q", d, row)
		}
	}
}

// TestFullCycleRoundTrip scrolls exactly one scene width of raw units and
// verifies the presented frame is restored bit for bit.
func TestFullCycleRoundTrip(t *testing.T) {
	sim, vp, sampler := newTestViewport(t, testRows, 8, 3)
	vp.Register(Crosshair{}, PriorityCrosshair)

	sampler.Accumulate(-7, 3)
	vp.Frame()
	before := snapshot(sim)

	// Scene width / scroll speed = 100 raw units, in frame-sized pieces
	for i := 0; i < 4; i++ {
		sampler.Accumulate(25, 0)
		vp.Frame()
	}

	after := snapshot(sim)
	for y := range before {
		if after[y] != before[y] {
			t.Errorf("row %d differs after full cycle:\n got %q\nwant %q", y, after[y], before[y])
		}
	}
}

func TestFrameSurvivesTinyTerminal(t *testing.T) {
	_, vp, sampler := newTestViewport(t, []string{"abcd", "efgh"}, 1, 1)
	vp.Register(Crosshair{}, PriorityCrosshair)
	vp.Register(NewHUD(true), PriorityHUD)

	sampler.Accumulate(3, -2)
	vp.Frame()
	vp.Frame()
}

func TestPauseDiscardsMotion(t *testing.T) {
	sim, vp, sampler := newTestViewport(t, testRows, 8, 3)

	vp.Frame()
	before := screenRow(sim, 0)

	vp.SetPaused(true)
	sampler.Accumulate(500, 321)
	vp.Frame()
	vp.SetPaused(false)
	vp.Frame()

	if got := screenRow(sim, 0); got != before {
		t.Errorf("Expected unchanged window after paused motion, got %q, want %q", got, before)
	}
}

func TestLandmarkHookFiresOnTransition(t *testing.T) {
	rows := []string{
		"....",
		".#..",
		"....",
		"....",
	}
	_, vp, sampler := newTestViewport(t, rows, 3, 3)

	fired := 0
	vp.SetLandmarkHook(func() { fired++ })

	sampler.Accumulate(10, 0) // anchor (2, 0): crosshair over '.'
	vp.Frame()
	if fired != 0 {
		t.Fatalf("hook fired while off the landmark")
	}

	sampler.Accumulate(-10, 0) // anchor (0, 0): crosshair over '#'
	vp.Frame()
	if fired != 1 {
		t.Errorf("Expected 1 fire on transition, got %d", fired)
	}

	vp.Frame()
	if fired != 1 {
		t.Errorf("Expected no re-fire while hovering, got %d", fired)
	}

	sampler.Accumulate(10, 0)
	vp.Frame()
	sampler.Accumulate(-10, 0)
	vp.Frame()
	if fired != 2 {
		t.Errorf("Expected re-fire after leaving and returning, got %d", fired)
	}
}

func TestHUDToggleVisibility(t *testing.T) {
	sim, vp, _ := newTestViewport(t, testRows, 40, 4)
	hud := NewHUD(false)
	vp.Register(hud, PriorityHUD)

	vp.Frame()
	want := testRows[0] + testRows[0]
	if got := screenRow(sim, parameter.HUDRow); got != want {
		t.Errorf("hidden HUD must leave the scene row, got %q", got)
	}

	hud.Toggle()
	vp.Frame()
	if got := screenRow(sim, parameter.HUDRow); !strings.Contains(got, "anchor") {
		t.Errorf("Expected HUD text on row %d, got %q", parameter.HUDRow, got)
	}
}

func TestSetSceneSwapsWorld(t *testing.T) {
	sim, vp, _ := newTestViewport(t, testRows, 8, 3)
	vp.Frame()

	swapped, err := scene.FromStrings([]string{"zzzzzzzzzz", "yyyyyyyyyy", "xxxxxxxxxx"}, tcell.StyleDefault)
	if err != nil {
		t.Fatalf("scene build failed: %v", err)
	}
	vp.SetScene(swapped)
	vp.Frame()

	if got := screenRow(sim, 0); got != "zzzzzzzz" {
		t.Errorf("Expected swapped scene content, got %q", got)
	}
}
