package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"balloon/internal/game"
)

func newTestGame(t *testing.T, cfg game.Config) (*Game, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return New(screen, cfg, 1, nil), screen
}

func TestViewportFollowsScreen(t *testing.T) {
	g, screen := newTestGame(t, game.DefaultConfig())
	if w, h := g.Driver().Core.Viewport(); w != 800 || h != 460 {
		t.Fatalf("viewport = %vx%v, want 800x460", w, h)
	}

	screen.SetSize(120, 31)
	g.HandleEvent(tcell.NewEventResize(120, 31))
	if w, h := g.Driver().Core.Viewport(); w != 1200 || h != 600 {
		t.Errorf("viewport after resize = %vx%v, want 1200x600", w, h)
	}
	if g.grid.W != 120 || g.grid.H != 30 {
		t.Errorf("grid = %dx%d, want 120x30", g.grid.W, g.grid.H)
	}
}

func TestKeyCommands(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want game.Command
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.CmdHeatUp},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), game.CmdHeatDown},
		{"restart", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), game.CmdRestart},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.CmdQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), game.CmdQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), game.CmdQuit},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), game.CmdNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyCommand(tt.ev); got != tt.want {
				t.Errorf("keyCommand = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandleEventAppliesCommands(t *testing.T) {
	g, _ := newTestGame(t, game.DefaultConfig())

	if !g.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)) {
		t.Fatal("heat up asked to quit")
	}
	if got := g.Driver().Core.Temperature(); got != 52 {
		t.Errorf("temperature = %v, want 52", got)
	}
	if g.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("escape did not quit")
	}
}

func TestRasterizeBalloon(t *testing.T) {
	g, _ := newTestGame(t, game.DefaultConfig())
	g.Draw()

	pos := g.Driver().Core.BalloonPosition()
	x, y := cellOf(pos)
	c := g.grid.At(x, y)
	isStripe := false
	for _, s := range game.StripeColors {
		if c.Bg == s {
			isStripe = true
		}
	}
	if !isStripe {
		t.Errorf("balloon centre cell bg = %+v, want a stripe colour", c.Bg)
	}

	corner := g.grid.At(0, 0)
	if corner.Bg != game.Palette.Sky && corner.Bg != game.Palette.Backdrop {
		t.Errorf("corner bg = %+v, want sky or backdrop", corner.Bg)
	}
}

func TestRasterizeMountain(t *testing.T) {
	var grid Grid
	grid.Resize(80, 23)
	m := game.Mountain{Y: 300, Height: 150, Width: 80}
	grid.fillMountain(605, m, 0)

	// Apex column, just below the apex.
	if c := grid.At(60, 16); c.Bg != game.Palette.Mountain || c.Ch != '▲' {
		t.Errorf("apex cell = %+v, want snow-capped mountain", c)
	}
	// Base row at the apex column.
	if c := grid.At(60, 22); c.Bg != game.Palette.Mountain || c.Ch != ' ' {
		t.Errorf("base cell = %+v, want plain mountain", c)
	}
	// Above the apex stays untouched.
	if c := grid.At(60, 10); c.Bg == game.Palette.Mountain {
		t.Errorf("cell above apex painted: %+v", c)
	}
}

func TestHUDBanner(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.MaxObstacles = 0
	g, _ := newTestGame(t, cfg)

	g.Step()
	if g.Driver().Core.State() != game.StateWon {
		t.Fatalf("state = %v, want won", g.Driver().Core.State())
	}
	if n := len(g.Driver().Particles.P); n == 0 {
		t.Error("no fireworks after win")
	}

	g.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModNone))
	if g.Driver().Core.State() != game.StatePlaying {
		t.Errorf("state after restart = %v", g.Driver().Core.State())
	}
}
