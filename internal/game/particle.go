package game

type ParticleKind uint8

const (
	ParticleSpark ParticleKind = iota // firework spark, additive
	ParticleFlash                     // firework core, additive
	ParticleDebris
	ParticleFire
	ParticleSmoke
)

type Particle struct {
	X, Y   float64
	VX, VY float64

	Size float64

	Life    float64 // negative = delayed start
	MaxLife float64

	Col  RGB
	Kind ParticleKind
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	seed   uint64
	seq    uint64
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if seed == 0 {
		seed = 1
	}
	return &ParticleSystem{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		seed: seed,
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite.
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Alpha returns the opacity of p for its current age, or 0 when it should
// not be drawn.
func (p *Particle) Alpha() float64 {
	if p.Life < 0 || p.MaxLife <= 0 {
		return 0
	}
	t := clampF(p.Life/p.MaxLife, 0, 1)
	switch p.Kind {
	case ParticleDebris:
		return 1.0
	case ParticleSmoke:
		fadeIn := t / 0.18
		if fadeIn > 1 {
			fadeIn = 1
		}
		return (1.0 - t) * fadeIn * 0.85
	case ParticleFlash:
		return (1.0 - t) * (1.0 - t)
	default:
		return 1.0 - t
	}
}

// Color returns the display colour of p; fire cools as it ages.
func (p *Particle) Color() RGB {
	if p.Kind != ParticleFire {
		return p.Col
	}
	t := clampF(p.Life/p.MaxLife, 0, 1)
	if t < 0.5 {
		return lerpRGB(Palette.FireHot, Palette.FireMid, t*2.0)
	}
	return lerpRGB(Palette.FireMid, Palette.FireCool, (t-0.5)*2.0)
}

// Additive reports whether p is drawn with additive blending.
func (p *Particle) Additive() bool {
	return p.Kind == ParticleSpark || p.Kind == ParticleFlash || p.Kind == ParticleFire
}

// ParticleRenderData splits particles into glow (additive) and normal (alpha blend) buffers.
// Format: [x, y, size, r, g, b, a, 0] * N.
func (ps *ParticleSystem) ParticleRenderData(offset Vec2, glowBuf, normBuf []float32) ([]float32, []float32) {
	glowBuf = glowBuf[:0]
	normBuf = normBuf[:0]

	for i := range ps.P {
		p := &ps.P[i]
		a := p.Alpha()
		if a <= 0 {
			continue
		}
		size := p.Size
		if p.Kind == ParticleSmoke {
			size *= 1.0 + clampF(p.Life/p.MaxLife, 0, 1)*1.6
		}

		rc, gc, bc := p.Color().Floats()
		ac := float32(clampF(a, 0, 1))
		sx := float32(p.X + offset.X)
		sy := float32(p.Y + offset.Y)

		if p.Additive() {
			// Additive: pre-multiply color by alpha.
			glowBuf = append(glowBuf, sx, sy, float32(size), rc*ac, gc*ac, bc*ac, ac, 0)
		} else {
			normBuf = append(normBuf, sx, sy, float32(size), rc, gc, bc, ac, 0)
		}
	}
	return glowBuf, normBuf
}
