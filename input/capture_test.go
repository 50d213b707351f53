package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mouselook/camera"
)

func newTestCapture(t *testing.T) (tcell.SimulationScreen, *Capture, *camera.MotionSampler) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	sim.SetSize(40, 12)
	sampler := camera.NewMotionSampler()
	c := NewCapture(sim, sampler, Options{KeyImpulse: 5, HideInterval: time.Minute})
	return sim, c, sampler
}

// waitForCommand consumes the command stream until the wanted kind
// arrives, skipping unrelated commands such as the initial resize.
func waitForCommand(t *testing.T, c *Capture, want CommandKind) Command {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case cmd := <-c.Commands():
			if cmd.Kind == want {
				return cmd
			}
		case <-deadline:
			t.Fatalf("Timed out waiting for %v command", want)
		}
	}
}

func TestCaptureMouseDeltas(t *testing.T) {
	sim, c, sampler := newTestCapture(t)
	c.Start()
	defer c.Stop()

	sim.InjectMouse(10, 5, tcell.ButtonNone, tcell.ModNone)
	sim.InjectMouse(13, 9, tcell.ButtonNone, tcell.ModNone)
	sim.InjectMouse(11, 2, tcell.ButtonNone, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	waitForCommand(t, c, CommandQuit)

	// First event primes only. Raw deltas are (+3,+4) then (-2,-7);
	// the sampler negates vertical motion on entry.
	dx, dy := sampler.Drain()
	if dx != 1 {
		t.Errorf("Expected accumulated dx 1, got %d", dx)
	}
	if dy != 3 {
		t.Errorf("Expected accumulated dy 3, got %d", dy)
	}
}

func TestCaptureFirstEventPrimesOnly(t *testing.T) {
	sim, c, sampler := newTestCapture(t)
	c.Start()
	defer c.Stop()

	sim.InjectMouse(20, 8, tcell.ButtonNone, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	waitForCommand(t, c, CommandQuit)

	if dx, dy := sampler.Drain(); dx != 0 || dy != 0 {
		t.Errorf("Expected no motion from priming event, got (%d,%d)", dx, dy)
	}
}

func TestCaptureKeyImpulses(t *testing.T) {
	sim, c, sampler := newTestCapture(t)
	c.Start()
	defer c.Stop()

	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'k', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	waitForCommand(t, c, CommandQuit)

	// Right arrow injects raw (+5,0); 'k' injects raw (0,-5) which the
	// sampler stores as +5.
	dx, dy := sampler.Drain()
	if dx != 5 || dy != 5 {
		t.Errorf("Expected impulses (5,5), got (%d,%d)", dx, dy)
	}
}

func TestCaptureControlKeys(t *testing.T) {
	sim, c, _ := newTestCapture(t)
	c.Start()
	defer c.Stop()

	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	sim.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	waitForCommand(t, c, CommandTogglePause)
	waitForCommand(t, c, CommandToggleHUD)
	waitForCommand(t, c, CommandQuit)
}

func TestCaptureResize(t *testing.T) {
	sim, c, _ := newTestCapture(t)
	c.Start()
	defer c.Stop()

	sim.SetSize(100, 40)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case cmd := <-c.Commands():
			if cmd.Kind == CommandResize && cmd.Width == 100 {
				if cmd.Height != 40 {
					t.Errorf("Expected resize height 40, got %d", cmd.Height)
				}
				return
			}
		case <-deadline:
			t.Fatal("Timed out waiting for resize command")
		}
	}
}

func TestCaptureStopIdempotent(t *testing.T) {
	_, c, _ := newTestCapture(t)

	// Stop before Start is a no-op
	c.Stop()

	c.Start()
	c.Stop()
	c.Stop()
}
