// Package term is the terminal frontend. It rasterises the play field into
// character cells and drives the simulation from a tcell event loop.
package term

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"balloon/internal/game"
)

const frameInterval = 16 * time.Millisecond

// Game binds a driver to a tcell screen. The bottom row is the HUD; the
// rest of the screen is the play field.
type Game struct {
	screen tcell.Screen
	driver *game.Driver
	grid   Grid
	log    *slog.Logger
}

func New(screen tcell.Screen, cfg game.Config, seed uint64, log *slog.Logger) *Game {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	g := &Game{
		screen: screen,
		driver: game.NewDriver(cfg, seed, log),
		log:    log,
	}
	g.resize()
	return g
}

func (g *Game) Driver() *game.Driver { return g.driver }

// resize fits the viewport to the screen, one HUD row excluded.
func (g *Game) resize() {
	w, h := g.screen.Size()
	g.grid.Resize(w, h-1)
	g.driver.Core.SetViewport(float64(g.grid.W)*CellW, float64(g.grid.H)*CellH)
	g.log.Debug("terminal resized", "cols", w, "rows", h)
}

// HandleEvent applies one tcell event. It returns false when the player
// asked to quit.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		g.resize()
		g.screen.Sync()
	case *tcell.EventKey:
		return g.driver.Apply(keyCommand(e))
	}
	return true
}

func keyCommand(e *tcell.EventKey) game.Command {
	switch e.Key() {
	case tcell.KeyUp:
		return game.CmdHeatUp
	case tcell.KeyDown:
		return game.CmdHeatDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.CmdQuit
	case tcell.KeyRune:
		switch e.Rune() {
		case 'r', 'R':
			return game.CmdRestart
		case 'q', 'Q':
			return game.CmdQuit
		case 'k', '+':
			return game.CmdHeatUp
		case 'j', '-':
			return game.CmdHeatDown
		}
	}
	return game.CmdNone
}

// Step runs one frame and redraws.
func (g *Game) Step() {
	g.driver.Frame()
	g.Draw()
}

func (g *Game) Draw() {
	Rasterize(g.driver, &g.grid)

	for y := range g.grid.H {
		for x := range g.grid.W {
			c := g.grid.At(x, y)
			g.screen.SetContent(x, y, c.Ch, nil, style(c.Fg, c.Bg))
		}
	}
	g.drawHUD()
	g.screen.Show()
}

func (g *Game) drawHUD() {
	w, h := g.screen.Size()
	hud := game.BuildHUD(g.driver.Core)

	bar := style(game.Palette.Text, game.RGB{R: 20, G: 24, B: 32})
	row := h - 1
	for x := range w {
		g.screen.SetContent(x, row, ' ', nil, bar)
	}
	drawText(g.screen, 1, row, hud.Status, bar)

	if hud.Message != "" && g.grid.H > 0 {
		banner := style(hud.Color, game.RGB{R: 20, G: 24, B: 32}).Bold(true)
		mid := g.grid.H / 2
		drawCentered(g.screen, w/2, mid, " "+hud.Message+" ", banner)
		drawCentered(g.screen, w/2, mid+1, " "+hud.Hint+" ", bar)
	}
}

func style(fg, bg game.RGB) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	i := 0
	for _, ch := range text {
		s.SetContent(x+i, y, ch, nil, st)
		i++
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	drawText(s, cx-len([]rune(text))/2, cy, text, st)
}

// Run owns the screen until the player quits. The screen must already be
// initialised; Run does not call Fini.
func (g *Game) Run() error {
	if g.screen == nil {
		return errors.New("term: no screen")
	}
	g.screen.HideCursor()
	g.screen.Clear()
	g.driver.Core.Restart()

	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	tick := time.NewTicker(frameInterval)
	defer tick.Stop()

	for {
		select {
		case ev := <-events:
			if !g.HandleEvent(ev) {
				g.log.Info("player quit", "frames", g.driver.Frames(), "state", g.driver.Core.State())
				return nil
			}
		case <-tick.C:
			g.Step()
		}
	}
}
