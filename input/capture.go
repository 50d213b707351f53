// Package input captures terminal mouse and keyboard events and converts
// them into camera motion and control commands.
package input

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mouselook/camera"
	"github.com/lixenwraith/mouselook/core"
	"github.com/lixenwraith/mouselook/parameter"
)

// Options tunes the capture service. Zero values fall back to defaults.
type Options struct {
	// KeyImpulse is the synthetic pointer distance injected per keypress
	KeyImpulse int

	// HideInterval is how often the cursor is re-hidden
	HideInterval time.Duration
}

// Capture polls the terminal event stream on its own goroutine. Pointer
// motion is folded into the shared sampler as relative deltas; keys and
// resizes become Commands for the application loop.
//
// Lifecycle is Init once, Start once, Stop once. Stop blocks until the
// poll goroutine has exited.
type Capture struct {
	screen  tcell.Screen
	sampler *camera.MotionSampler

	commands chan Command

	keyImpulse   int
	hideInterval time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
	hideCh  chan struct{}

	// Pointer state, owned by the poll goroutine. Terminals report
	// absolute cell coordinates; deltas are derived against the
	// previous report, so the first event only primes the reference.
	havePointer bool
	lastX       int
	lastY       int
}

// NewCapture wires a capture service to a screen and a motion sampler.
func NewCapture(screen tcell.Screen, sampler *camera.MotionSampler, opts Options) *Capture {
	if opts.KeyImpulse <= 0 {
		opts.KeyImpulse = parameter.KeyImpulse
	}
	if opts.HideInterval <= 0 {
		opts.HideInterval = parameter.CursorHideInterval
	}
	return &Capture{
		screen:       screen,
		sampler:      sampler,
		commands:     make(chan Command, parameter.CommandBufferSize),
		keyImpulse:   opts.KeyImpulse,
		hideInterval: opts.HideInterval,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
		hideCh:       make(chan struct{}),
	}
}

// Init switches the terminal into mouse reporting mode. A terminal that
// cannot deliver pointer motion leaves the camera uncontrollable, so the
// caller must treat an error here as fatal.
func (c *Capture) Init() error {
	if !c.screen.HasMouse() {
		return fmt.Errorf("input capture: terminal reports no mouse support")
	}
	c.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents | tcell.MouseMotionEvents)
	c.screen.HideCursor()
	return nil
}

// Commands exposes the decoded control stream.
func (c *Capture) Commands() <-chan Command {
	return c.commands
}

// Start launches the poll and cursor-hide goroutines.
func (c *Capture) Start() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.mu.Unlock()

	core.Go(c.pollLoop)
	core.Go(c.hideLoop)
}

// Stop shuts the service down and waits for its goroutines. It is safe
// to call more than once and without a prior Start.
func (c *Capture) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	c.mu.Unlock()

	close(c.stopCh)

	// Wake the poll goroutine if it is blocked in PollEvent
	_ = c.screen.PostEvent(tcell.NewEventInterrupt(nil))

	<-c.doneCh
	<-c.hideCh
}

func (c *Capture) pollLoop() {
	defer close(c.doneCh)

	for {
		select {
		case <-c.stopCh:
			return
		default:
		}

		ev := c.screen.PollEvent()
		if ev == nil {
			// Screen finalized, stream is closed
			return
		}
		c.handleEvent(ev)
	}
}

// hideLoop re-asserts cursor hiding on a timer. Some terminals restore
// the cursor after focus changes or mode switches.
func (c *Capture) hideLoop() {
	defer close(c.hideCh)

	ticker := time.NewTicker(c.hideInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.screen.HideCursor()
		}
	}
}

func (c *Capture) handleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		c.handleMouse(e)
	case *tcell.EventKey:
		c.handleKey(e)
	case *tcell.EventResize:
		w, h := e.Size()
		c.send(Command{Kind: CommandResize, Width: w, Height: h})
	case *tcell.EventInterrupt:
		// Wake-up only, carries nothing
	}
}

func (c *Capture) handleMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	if !c.havePointer {
		c.havePointer = true
		c.lastX, c.lastY = x, y
		return
	}

	dx := x - c.lastX
	dy := y - c.lastY
	c.lastX, c.lastY = x, y

	if dx != 0 || dy != 0 {
		c.sampler.Accumulate(dx, dy)
	}
}

func (c *Capture) handleKey(e *tcell.EventKey) {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		c.send(Command{Kind: CommandQuit})
		return
	case tcell.KeyTab:
		c.send(Command{Kind: CommandToggleHUD})
		return
	case tcell.KeyLeft:
		c.impulse(-1, 0)
		return
	case tcell.KeyRight:
		c.impulse(1, 0)
		return
	case tcell.KeyUp:
		c.impulse(0, -1)
		return
	case tcell.KeyDown:
		c.impulse(0, 1)
		return
	}

	if e.Key() != tcell.KeyRune {
		return
	}
	switch e.Rune() {
	case 'q', 'Q':
		c.send(Command{Kind: CommandQuit})
	case ' ':
		c.send(Command{Kind: CommandTogglePause})
	case 'h':
		c.impulse(-1, 0)
	case 'l':
		c.impulse(1, 0)
	case 'k':
		c.impulse(0, -1)
	case 'j':
		c.impulse(0, 1)
	}
}

// impulse feeds a synthetic pointer delta into the sampler, in raw
// screen coordinates so keys and mouse share one motion pipeline.
func (c *Capture) impulse(dx, dy int) {
	c.sampler.Accumulate(dx*c.keyImpulse, dy*c.keyImpulse)
}

// send drops the command when the buffer is full rather than stall the
// poll goroutine.
func (c *Capture) send(cmd Command) {
	select {
	case c.commands <- cmd:
	default:
	}
}
