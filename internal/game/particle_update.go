package game

import "math"

const (
	particleGravity  = 240.0
	particleAirDrag  = 1.65
	sparkGravity     = 90.0
	sparkDrag        = 1.1
	smokeDrag        = 0.8
	particleFloorPad = 4.0
)

// Update advances particles by dt seconds and drops expired ones. floor is
// the viewport bottom; debris comes to rest there.
func (ps *ParticleSystem) Update(dt, floor float64) {
	if dt <= 0 {
		return
	}

	debrisXY := math.Exp(-particleAirDrag * dt)
	sparkXY := math.Exp(-sparkDrag * dt)
	smokeXY := math.Exp(-smokeDrag * dt)

	for i := 0; i < len(ps.P); {
		p := &ps.P[i]

		p.Life += dt
		if p.Life >= p.MaxLife {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}

		// Skip delayed particles.
		if p.Life < 0 {
			i++
			continue
		}

		switch p.Kind {
		case ParticleSpark:
			p.VY += sparkGravity * dt
			p.VX *= sparkXY
			p.VY *= sparkXY
		case ParticleDebris:
			p.VY += particleGravity * dt
			p.VX *= debrisXY
			p.VY *= debrisXY
		case ParticleSmoke, ParticleFire:
			p.VX *= smokeXY
			p.VY *= smokeXY
		}

		p.X += p.VX * dt
		p.Y += p.VY * dt

		if p.Kind == ParticleDebris && p.Y > floor-particleFloorPad {
			p.Y = floor - particleFloorPad
			p.VY = 0
			p.VX *= 0.5
		}
		i++
	}
}
