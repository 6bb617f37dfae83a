//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/jlofgren/asciidrift/common"
	"github.com/jlofgren/asciidrift/effect"
)

func main() {
	// Get the sink element the rendered frames are written into
	doc := js.Global.Get("document")
	sink := doc.Call("getElementById", "trail")
	if sink == nil || sink == js.Undefined {
		panic("trail element not found")
	}

	cfg := effect.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	// Seed the permutation table from the platform clock; the table is
	// fixed for the lifetime of the page after this.
	seed := uint32(js.Global.Get("Date").Call("now").Int64())
	rng := common.NewSeededRNG(seed)

	win := js.Global.Get("window")
	e := effect.New(cfg, win.Get("innerWidth").Int(), win.Get("innerHeight").Int(), rng)

	d := effect.NewDriver(e, sink)
	d.Start()

	// Expose a small tuning hook for the console
	js.Global.Set("AsciiDrift", map[string]interface{}{
		"fps": func() float64 {
			return d.Stats.CurrentFPS
		},
		"debug": func(on bool) {
			effect.EnableDebug = on
		},
	})

	select {}
}
