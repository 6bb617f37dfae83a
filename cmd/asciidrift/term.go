//go:build !js
// +build !js

package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/jlofgren/asciidrift/common"
	"github.com/jlofgren/asciidrift/effect"
)

// termApp hosts the effect in a terminal. Terminal cells stand in for grid
// cells directly: mouse coordinates are scaled up to pixel space by the
// configured cell size, so one terminal cell maps to exactly one grid cell
// and the pixel-space tuning (radius, velocity) keeps its meaning.
type termApp struct {
	screen  tcell.Screen
	eff     *effect.Effect
	logger  *zap.Logger
	stats   effect.FrameStats
	frameMS time.Duration
	showFPS bool
	start   time.Time
}

func newTermApp(cfg effect.Config, rng *common.SeededRNG, logger *zap.Logger, fps int, showFPS bool) (*termApp, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()

	if fps < 1 {
		fps = 30
	}

	w, h := screen.Size()
	a := &termApp{
		screen:  screen,
		eff:     effect.New(cfg, w*cfg.CellWidth, h*cfg.CellHeight, rng),
		logger:  logger,
		frameMS: time.Second / time.Duration(fps),
		showFPS: showFPS,
		start:   time.Now(),
	}

	logger.Info("started",
		zap.Int("cols", a.eff.Grid.Cols),
		zap.Int("rows", a.eff.Grid.Rows),
		zap.Int("fps", fps))

	return a, nil
}

// pointerMove converts a terminal cell position to the center of the
// corresponding pixel-space cell and feeds it to the cursor tracker.
func (a *termApp) pointerMove(cx, cy int) {
	cw := a.eff.Config.CellWidth
	ch := a.eff.Config.CellHeight
	a.eff.PointerMove(float64(cx*cw+cw/2), float64(cy*ch+ch/2))
}

// handleResize resets the grid for the new terminal size. Synchronous,
// outside the frame tick.
func (a *termApp) handleResize() {
	w, h := a.screen.Size()
	a.eff.Resize(w*a.eff.Config.CellWidth, h*a.eff.Config.CellHeight)
	a.logger.Info("resize", zap.Int("cols", a.eff.Grid.Cols), zap.Int("rows", a.eff.Grid.Rows))
	a.screen.Sync()
}

// handleInput returns false when the app should quit.
func (a *termApp) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		a.pointerMove(x, y)

	case *tcell.EventResize:
		a.handleResize()
	}

	return true
}

// draw renders the grid, one glyph per terminal cell with grayscale color.
func (a *termApp) draw() {
	grid := a.eff.Grid
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			glyph, intensity, ok := a.eff.Config.CellAppearance(grid.At(row, col))
			if !ok {
				a.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
				continue
			}
			color := tcell.NewRGBColor(int32(intensity), int32(intensity), int32(intensity))
			a.screen.SetContent(col, row, glyph, nil, tcell.StyleDefault.Foreground(color))
		}
	}

	if a.showFPS {
		a.drawFPS()
	}

	a.screen.Show()
}

func (a *termApp) drawFPS() {
	text := fmt.Sprintf("%5.1f fps", a.stats.CurrentFPS)
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	x := a.eff.Grid.Cols - len(text) - 1
	for i, r := range text {
		a.screen.SetContent(x+i, 0, r, nil, style)
	}
}

// run drives the frame loop: events interleave between ticks, never during
// one, matching the single-threaded callback model of the browser host.
func (a *termApp) run() {
	ticker := time.NewTicker(a.frameMS)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}

		case <-ticker.C:
			a.eff.Step()
			a.draw()
			a.stats.Tick(float64(time.Since(a.start).Milliseconds()))

			if a.stats.FrameCount == 0 { // just rolled a one-second window
				a.logger.Debug("frame stats",
					zap.Float64("fps", a.stats.CurrentFPS),
					zap.Float64("max_activation", a.eff.Grid.Max()),
					zap.Float64("velocity", a.eff.Cursor.Velocity))
			}
		}
	}
}

func (a *termApp) cleanup() {
	a.screen.Fini()
}
