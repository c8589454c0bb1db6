package term

import (
	"math"

	"balloon/internal/game"
)

// One terminal cell covers CellW x CellH simulation units, which keeps the
// 2:1 cell aspect of common terminal fonts.
const (
	CellW = 10.0
	CellH = 20.0
)

type Cell struct {
	Ch     rune
	Fg, Bg game.RGB
}

// Grid is the play field rasterised to cells, row-major.
type Grid struct {
	W, H  int
	Cells []Cell

	mol []game.Vec2
}

func (g *Grid) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g.W, g.H = w, h
	if cap(g.Cells) < w*h {
		g.Cells = make([]Cell, w*h)
	}
	g.Cells = g.Cells[:w*h]
}

func (g *Grid) At(x, y int) Cell {
	return g.Cells[y*g.W+x]
}

func (g *Grid) in(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

func (g *Grid) set(x, y int, ch rune, fg, bg game.RGB) {
	if g.in(x, y) {
		g.Cells[y*g.W+x] = Cell{Ch: ch, Fg: fg, Bg: bg}
	}
}

// glyph replaces the rune and foreground but keeps the background.
func (g *Grid) glyph(x, y int, ch rune, fg game.RGB) {
	if g.in(x, y) {
		c := &g.Cells[y*g.W+x]
		c.Ch, c.Fg = ch, fg
	}
}

// cellOf maps a point in simulation units to the cell containing it.
func cellOf(p game.Vec2) (int, int) {
	return int(math.Floor(p.X / CellW)), int(math.Floor(p.Y / CellH))
}

// centre returns the simulation-space centre of cell (x, y).
func centre(x, y int) game.Vec2 {
	return game.Vec2{X: (float64(x) + 0.5) * CellW, Y: (float64(y) + 0.5) * CellH}
}

// Rasterize draws the driver state into g back to front.
func Rasterize(d *game.Driver, g *Grid) {
	off := d.Camera.Offset()
	core := d.Core

	for y := range g.H {
		t := 0.0
		if g.H > 1 {
			t = float64(y) / float64(g.H-1)
		}
		bg := lerpRGB(game.Palette.Sky, game.Palette.SkyLow, t)
		for x := range g.W {
			g.Cells[y*g.W+x] = Cell{Ch: ' ', Fg: game.Palette.Text, Bg: bg}
		}
	}

	for _, c := range d.Backdrop.Clouds {
		g.fillDisc(game.Vec2{X: c.X + off.X, Y: c.Y + off.Y}, c.Size*0.6, func(x, y int) {
			g.set(x, y, ' ', game.Palette.Text, game.Palette.Backdrop)
		})
	}

	for _, o := range core.Obstacles() {
		switch sh := o.Shape.(type) {
		case game.Mountain:
			g.fillMountain(o.X+off.X, sh, off.Y)
		case game.Cloud:
			g.fillDisc(game.Vec2{X: o.X + off.X, Y: sh.Y + off.Y}, sh.Radius, func(x, y int) {
				g.set(x, y, ' ', game.Palette.Text, game.Palette.Cloud)
			})
		}
	}

	g.balloon(d, core.BalloonPosition().Add(off))

	for i := range d.Particles.P {
		p := &d.Particles.P[i]
		if p.Alpha() <= 0 {
			continue
		}
		x, y := cellOf(game.Vec2{X: p.X + off.X, Y: p.Y + off.Y})
		g.glyph(x, y, '*', p.Color())
	}
}

func (g *Grid) balloon(d *game.Driver, pos game.Vec2) {
	r := d.Core.Body().Radius
	temp := d.Core.Temperature()
	step := math.Pi * 2 / float64(len(game.StripeColors))

	g.fillDisc(pos, r, func(x, y int) {
		c := centre(x, y)
		a := math.Atan2(c.Y-pos.Y, c.X-pos.X)
		if a < 0 {
			a += math.Pi * 2
		}
		i := int(a/step) % len(game.StripeColors)
		g.set(x, y, ' ', game.Palette.Molecule, game.StripeColors[i])
	})

	g.mol = d.Molecules.Positions(pos, g.mol)
	for _, m := range g.mol {
		x, y := cellOf(m)
		g.glyph(x, y, '·', game.Palette.Molecule)
	}

	bx, by := cellOf(game.Vec2{X: pos.X, Y: pos.Y + r + 15})
	for dx := -1; dx <= 1; dx++ {
		g.set(bx+dx, by, '▀', game.Palette.Basket, cellBg(g, bx+dx, by))
	}
	if temp > 30 {
		col := game.Palette.FlameInner
		if temp > 70 {
			col = game.Palette.FlameOuter
		}
		fx, fy := cellOf(game.Vec2{X: pos.X, Y: pos.Y + r + 2})
		g.glyph(fx, fy, '^', col)
	}
}

func cellBg(g *Grid, x, y int) game.RGB {
	if !g.in(x, y) {
		return game.RGB{}
	}
	return g.At(x, y).Bg
}

// fillDisc calls fn for every cell whose centre lies inside the disc.
func (g *Grid) fillDisc(c game.Vec2, r float64, fn func(x, y int)) {
	x0, y0 := cellOf(game.Vec2{X: c.X - r, Y: c.Y - r})
	x1, y1 := cellOf(game.Vec2{X: c.X + r, Y: c.Y + r})
	for y := max(y0, 0); y <= min(y1, g.H-1); y++ {
		for x := max(x0, 0); x <= min(x1, g.W-1); x++ {
			if centre(x, y).Dist(c) < r {
				fn(x, y)
			}
		}
	}
}

// fillMountain shades the drawn triangle: apex at m.Y, base Height below.
func (g *Grid) fillMountain(ox float64, m game.Mountain, offY float64) {
	half := m.Width / 2
	apex := m.Y + offY
	base := apex + m.Height
	snow := apex + m.Height/3

	x0, _ := cellOf(game.Vec2{X: ox - half})
	x1, _ := cellOf(game.Vec2{X: ox + half})
	for x := max(x0, 0); x <= min(x1, g.W-1); x++ {
		cx := centre(x, 0).X
		d := math.Abs(cx - ox)
		if d > half {
			continue
		}
		top := apex + m.Height*d/half
		for y := max(int(top/CellH), 0); y < g.H; y++ {
			cy := centre(x, y).Y
			switch {
			case cy < top || cy > base:
			case cy < snow:
				g.set(x, y, '▲', game.Palette.Snow, game.Palette.Mountain)
			default:
				g.set(x, y, ' ', game.Palette.Text, game.Palette.Mountain)
			}
		}
	}
}

func lerpRGB(a, b game.RGB, t float64) game.RGB {
	l := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return game.RGB{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B)}
}
