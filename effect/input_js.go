package effect

import (
	"github.com/gopherjs/gopherjs/js"
)

// setupInputHandlers wires the DOM signals the effect consumes: pointer
// position and viewport size. Both handlers run on the browser's main
// thread, serialized with the frame callback.
func (d *Driver) setupInputHandlers() {
	doc := js.Global.Get("document")

	doc.Call("addEventListener", "mousemove",
		func(event *js.Object) {
			d.Effect.PointerMove(event.Get("clientX").Float(), event.Get("clientY").Float())
		})

	js.Global.Call("addEventListener", "resize",
		func(event *js.Object) {
			d.handleResize()
		})
}
