package effect

import (
	"github.com/gopherjs/gopherjs/js"
)

// Driver runs the per-frame loop in the browser via requestAnimationFrame
// and writes rendered frames into a DOM sink element. It starts Idle and
// enters Running once on Start; it then runs for the lifetime of the view.
type Driver struct {
	Effect *Effect
	Sink   *js.Object

	AnimationFrameID int
	LastFrameTime    float64
	Running          bool
	Stats            FrameStats
}

// NewDriver wires an effect to a sink element. The driver stays Idle until
// Start is called.
func NewDriver(e *Effect, sink *js.Object) *Driver {
	return &Driver{
		Effect: e,
		Sink:   sink,
	}
}

// viewportSize queries the current browser viewport in pixels.
func viewportSize() (w, h int) {
	win := js.Global.Get("window")
	return win.Get("innerWidth").Int(), win.Get("innerHeight").Int()
}

// Start transitions Idle to Running: size the grid to the current viewport,
// wire input handlers, then schedule the first frame.
func (d *Driver) Start() {
	if d.Running {
		return
	}
	d.Running = true

	w, h := viewportSize()
	d.Effect.Resize(w, h)
	d.setupInputHandlers()

	Debug("Running:", d.Effect.Grid.Cols, "x", d.Effect.Grid.Rows, "cells")
	d.AnimationFrameID = js.Global.Call("requestAnimationFrame", d.frame).Int()
}

// frame is the per-frame callback. The browser serializes it with the event
// handlers, so nothing here needs locking.
func (d *Driver) frame(currentTime float64) {
	// Schedule next frame first, teacher-loop style.
	d.AnimationFrameID = js.Global.Call("requestAnimationFrame", d.frame).Int()

	d.Stats.Tick(currentTime)

	// Fixed timestep
	if currentTime-d.LastFrameTime < FrameDuration {
		return
	}
	d.LastFrameTime = currentTime

	d.Effect.Step()
	d.Sink.Set("innerHTML", d.Effect.RenderHTML())
}

// handleResize re-derives grid dimensions from the viewport and discards all
// activation. Runs synchronously, outside the frame loop.
func (d *Driver) handleResize() {
	w, h := viewportSize()
	d.Effect.Resize(w, h)
	Debug("Resize:", w, "x", h, "->", d.Effect.Grid.Cols, "x", d.Effect.Grid.Rows, "cells")
}
