package render

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/mouselook/camera"
	"github.com/lixenwraith/mouselook/display"
	"github.com/lixenwraith/mouselook/parameter"
	"github.com/lixenwraith/mouselook/scene"
)

// Viewport is the single frame consumer: it drains accumulated motion,
// advances the camera and presents the wrapped scene window with overlays.
// Run owns the frame cadence; Frame renders one iteration and is what
// tests drive directly.
//
// Register and SetLandmarkHook must be called before Run starts.
type Viewport struct {
	sampler *camera.MotionSampler
	cam     *camera.State
	device  display.Device

	mu  sync.Mutex
	buf *scene.Buffer

	overlays []overlayEntry
	regCount int

	paused atomic.Bool

	interval time.Duration

	landmarkHook func()
	overLandmark bool

	fps fpsMeter
}

// NewViewport wires the render loop dependencies
func NewViewport(sampler *camera.MotionSampler, cam *camera.State, buf *scene.Buffer, device display.Device) *Viewport {
	return &Viewport{
		sampler:  sampler,
		cam:      cam,
		device:   device,
		buf:      buf,
		interval: parameter.FrameUpdateInterval,
	}
}

// SetFrameInterval overrides the default frame cadence. Call before Run.
func (v *Viewport) SetFrameInterval(d time.Duration) {
	if d > 0 {
		v.interval = d
	}
}

// Register adds an overlay at the given priority, keeping draw order sorted
func (v *Viewport) Register(o Overlay, priority OverlayPriority) {
	entry := overlayEntry{overlay: o, priority: priority, index: v.regCount}
	v.regCount++

	pos := len(v.overlays)
	for i, e := range v.overlays {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}
	v.overlays = append(v.overlays, overlayEntry{})
	copy(v.overlays[pos+1:], v.overlays[pos:])
	v.overlays[pos] = entry
}

// SetScene swaps the world buffer after a terminal resize
func (v *Viewport) SetScene(buf *scene.Buffer) {
	v.mu.Lock()
	v.buf = buf
	v.mu.Unlock()
}

// SetPaused freezes camera motion while keeping frames flowing
func (v *Viewport) SetPaused(p bool) {
	v.paused.Store(p)
}

// TogglePause flips the pause state and returns the new value
func (v *Viewport) TogglePause() bool {
	for {
		p := v.paused.Load()
		if v.paused.CompareAndSwap(p, !p) {
			return !p
		}
	}
}

// SetLandmarkHook registers a callback fired when the crosshair crosses
// onto the landmark bar. Runs on the render goroutine.
func (v *Viewport) SetLandmarkHook(fn func()) {
	v.landmarkHook = fn
}

// Run drives the frame loop at the fixed cadence until stop closes
func (v *Viewport) Run(stop <-chan struct{}) {
	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			v.Frame()
		}
	}
}

// Frame renders one iteration in strict order: drain motion, advance the
// camera, extract the wrapped window, emit rows and overlays, present.
// Display faults are absorbed by the device, never aborting the frame.
func (v *Viewport) Frame() {
	dx, dy := v.sampler.Drain()
	if v.paused.Load() {
		// Motion accumulated during pause is discarded, not replayed,
		// so resuming never lurches
		dx, dy = 0, 0
	}
	v.cam.Advance(dx, dy)

	v.mu.Lock()
	buf := v.buf
	v.mu.Unlock()

	w, h := v.device.Size()
	startX, startY := v.cam.Anchor(buf.Width(), buf.Height())
	horizontal, vertical := v.cam.Offsets()

	v.device.Clear()
	for r := 0; r < h; r++ {
		v.device.WriteRow(r, buf.WrapRow(startY+r, startX, w))
	}

	ctx := FrameContext{
		ViewportWidth:  w,
		ViewportHeight: h,
		StartX:         startX,
		StartY:         startY,
		Horizontal:     horizontal,
		Vertical:       vertical,
		Paused:         v.paused.Load(),
		FPS:            v.fps.value,
	}
	for _, e := range v.overlays {
		if toggle, ok := e.overlay.(VisibilityToggle); ok && !toggle.IsVisible() {
			continue
		}
		e.overlay.Draw(ctx, v.device)
	}

	v.checkLandmark(buf, startX, startY, w, h)

	v.device.HideCursor()
	v.device.Present()

	v.fps.tick(time.Now())
}

// checkLandmark fires the hook on the transition onto the landmark rune
func (v *Viewport) checkLandmark(buf *scene.Buffer, startX, startY, w, h int) {
	over := buf.Cell(startX+w/2, startY+h/2).Rune == parameter.LandmarkRune
	if over && !v.overLandmark && v.landmarkHook != nil {
		v.landmarkHook()
	}
	v.overLandmark = over
}

// fpsMeter estimates the frame rate over a fixed window of frames.
// Touched only by the render goroutine.
type fpsMeter struct {
	frames      int
	windowStart time.Time
	value       float64
}

func (m *fpsMeter) tick(now time.Time) {
	if m.windowStart.IsZero() {
		m.windowStart = now
		return
	}
	m.frames++
	if m.frames < parameter.FPSSampleWindow {
		return
	}
	elapsed := now.Sub(m.windowStart).Seconds()
	if elapsed > 0 {
		m.value = float64(m.frames) / elapsed
	}
	m.frames = 0
	m.windowStart = now
}
