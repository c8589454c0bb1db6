package game

import "math"

// SpawnFireworks queues FireworkBursts bursts at random spots in the
// viewport, staggered FireworkStagger seconds apart.
func (ps *ParticleSystem) SpawnFireworks(width, height float64) {
	ps.seq++
	r := NewRand(splitmix64(ps.seed ^ ps.seq*0x9E3779B185EBCA87))

	for i := range FireworkBursts {
		delay := -float64(i) * FireworkStagger
		x := r.RangeF(0, width)
		y := r.RangeF(0, height)
		col := HueRGB(r.RangeF(0, 360))

		ps.Add(Particle{
			X: x, Y: y,
			Size: 10, Life: delay, MaxLife: FireworkLife * 0.5,
			Col: col, Kind: ParticleFlash,
		})
		for range 18 {
			ang := r.RangeF(0, math.Pi*2)
			spd := r.RangeF(60, 170)
			ps.Add(Particle{
				X: x, Y: y,
				VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
				Size: 3, Life: delay, MaxLife: FireworkLife * r.RangeF(0.7, 1.0),
				Col: col.Add(r.Intn(40)-20, r.Intn(40)-20, r.Intn(40)-20), Kind: ParticleSpark,
			})
		}
	}
}

// SpawnCrash bursts debris, fire and smoke where the balloon hit.
func (ps *ParticleSystem) SpawnCrash(x, y float64, baseCol RGB) {
	ps.seq++
	r := NewRand(splitmix64(ps.seed ^ ps.seq*0xC2B2AE3D27D4EB4F))

	// Debris.
	for range 40 {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(60, 220)
		ps.Add(Particle{
			X: x + r.RangeF(-6, 6), Y: y + r.RangeF(-6, 6),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: 3, MaxLife: r.RangeF(0.6, 1.2),
			Col: baseCol.Add(r.Intn(28)-14, r.Intn(28)-14, r.Intn(28)-14), Kind: ParticleDebris,
		})
	}

	// Fire.
	for range 50 {
		ang := r.RangeF(0, math.Pi*2)
		spd := r.RangeF(20, 80)
		ps.Add(Particle{
			X: x + r.RangeF(-8, 8), Y: y + r.RangeF(-8, 8),
			VX: math.Cos(ang) * spd, VY: math.Sin(ang) * spd,
			Size: 5 + r.RangeF(0, 4), MaxLife: r.RangeF(0.2, 0.5),
			Col: Palette.FireHot, Kind: ParticleFire,
		})
	}

	// Smoke.
	for range 24 {
		ps.Add(Particle{
			X: x + r.RangeF(-10, 10), Y: y + r.RangeF(-10, 10),
			VX: r.RangeF(-15, 15), VY: r.RangeF(-40, -10),
			Size: 8, MaxLife: r.RangeF(0.6, 1.4),
			Col: Palette.Smoke, Kind: ParticleSmoke,
		})
	}
}
