package game

import "math"

// Scene holds the per-frame vertex data a GPU frontend uploads.
//
//	Tris:    [x, y, r, g, b, a] per vertex, three vertices per triangle.
//	Sprites: [x, y, size, r, g, b, a, 0] per round point sprite, alpha blended.
//	Glow:    same layout as Sprites, additive.
type Scene struct {
	Tris    []float32
	Sprites []float32
	Glow    []float32

	molBuf []Vec2
}

const discSegments = 28

// BuildScene fills s from the driver's current state, reusing its buffers.
func BuildScene(d *Driver, s *Scene) {
	s.Tris = s.Tris[:0]
	s.Sprites = s.Sprites[:0]
	s.Glow = s.Glow[:0]

	off := d.Camera.Offset()
	g := d.Core
	w, h := g.Viewport()
	s.sky(w, h)

	for _, c := range d.Backdrop.Clouds {
		s.puffs(c.X+off.X, c.Y+off.Y, c.Size, 0.5, 0.7, 1.0/3, Palette.Backdrop, 0.5)
	}

	for _, o := range g.Obstacles() {
		x := o.X + off.X
		switch sh := o.Shape.(type) {
		case Mountain:
			y := sh.Y + off.Y
			s.tri(x, y, x-sh.Width/2, y+sh.Height, x+sh.Width/2, y+sh.Height, Palette.Mountain, 1)
			s.tri(x, y, x-sh.Width/4, y+sh.Height/3, x+sh.Width/4, y+sh.Height/3, Palette.Snow, 1)
		case Cloud:
			s.puffs(x, sh.Y+off.Y, sh.Radius, 0.6, 0.8, 0.25, Palette.Cloud, 1)
		}
	}

	s.balloon(g.BalloonPosition().Add(off), g.Body().Radius, g.Temperature())

	s.molBuf = d.Molecules.Positions(g.BalloonPosition().Add(off), s.molBuf)
	mr, mg, mb := Palette.Molecule.Floats()
	for _, p := range s.molBuf {
		s.Sprites = append(s.Sprites, float32(p.X), float32(p.Y), MoleculeDotSize*2, mr, mg, mb, 0.9, 0)
	}

	var norm []float32
	s.Glow, norm = d.Particles.ParticleRenderData(off, s.Glow, nil)
	s.Sprites = append(s.Sprites, norm...)
}

func (s *Scene) balloon(pos Vec2, r, temp float64) {
	// Glow when hot.
	if temp > 70 {
		gi := (temp - 70) / 30
		s.disc(pos.X, pos.Y, r+30*gi, Palette.Glow, float32(0.35*gi))
	}

	step := math.Pi * 2 / float64(len(StripeColors))
	for i, col := range StripeColors {
		s.wedge(pos.X, pos.Y, r, step*float64(i), step*float64(i+1), col, 1)
	}

	// Basket and ropes.
	s.rect(pos.X-15, pos.Y+r+5, 30, 25, Palette.Basket, 1)
	s.line(pos.X-12, pos.Y+r, pos.X-15, pos.Y+r+5, 2, Palette.Rope, 1)
	s.line(pos.X+12, pos.Y+r, pos.X+15, pos.Y+r+5, 2, Palette.Rope, 1)

	// Burner flame.
	if temp > 30 {
		size := (temp - 30) / 70 * 15
		s.disc(pos.X, pos.Y+r+8, size, Palette.FlameOuter, 1)
		s.disc(pos.X, pos.Y+r+8, size*0.6, Palette.FlameInner, 1)
	}
}

// sky fills the viewport with a vertical gradient. It ignores shake so the
// edges never show through.
func (s *Scene) sky(w, h float64) {
	tr, tg, tb := Palette.Sky.Floats()
	br, bg, bb := Palette.SkyLow.Floats()
	x1, y1 := float32(w), float32(h)
	s.Tris = append(s.Tris,
		0, 0, tr, tg, tb, 1,
		x1, 0, tr, tg, tb, 1,
		x1, y1, br, bg, bb, 1,
		0, 0, tr, tg, tb, 1,
		x1, y1, br, bg, bb, 1,
		0, y1, br, bg, bb, 1,
	)
}

// puffs draws the three-lobe cloud silhouette used for both cloud kinds.
func (s *Scene) puffs(x, y, size, side, top, lift float64, col RGB, a float32) {
	s.disc(x-size/2, y, size*side, col, a)
	s.disc(x, y-size*lift, size*top, col, a)
	s.disc(x+size/2, y, size*side, col, a)
}

func (s *Scene) tri(ax, ay, bx, by, cx, cy float64, col RGB, a float32) {
	r, g, b := col.Floats()
	s.Tris = append(s.Tris,
		float32(ax), float32(ay), r, g, b, a,
		float32(bx), float32(by), r, g, b, a,
		float32(cx), float32(cy), r, g, b, a,
	)
}

func (s *Scene) wedge(cx, cy, radius, a0, a1 float64, col RGB, a float32) {
	segs := int(math.Ceil(discSegments * (a1 - a0) / (math.Pi * 2)))
	if segs < 1 {
		segs = 1
	}
	step := (a1 - a0) / float64(segs)
	for i := range segs {
		t0 := a0 + step*float64(i)
		t1 := t0 + step
		s.tri(cx, cy,
			cx+radius*math.Cos(t0), cy+radius*math.Sin(t0),
			cx+radius*math.Cos(t1), cy+radius*math.Sin(t1),
			col, a)
	}
}

func (s *Scene) disc(cx, cy, radius float64, col RGB, a float32) {
	if radius <= 0 {
		return
	}
	s.wedge(cx, cy, radius, 0, math.Pi*2, col, a)
}

func (s *Scene) rect(x, y, w, h float64, col RGB, a float32) {
	s.tri(x, y, x+w, y, x+w, y+h, col, a)
	s.tri(x, y, x+w, y+h, x, y+h, col, a)
}

func (s *Scene) line(x0, y0, x1, y1, width float64, col RGB, a float32) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	s.tri(x0+nx, y0+ny, x1+nx, y1+ny, x1-nx, y1-ny, col, a)
	s.tri(x0+nx, y0+ny, x1-nx, y1-ny, x0-nx, y0-ny, col, a)
}
