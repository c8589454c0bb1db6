package game

import "testing"

// started counts particles whose delayed start has elapsed.
func started(ps *ParticleSystem) int {
	n := 0
	for i := range ps.P {
		if ps.P[i].Life >= 0 {
			n++
		}
	}
	return n
}

func TestFireworksStagger(t *testing.T) {
	ps := NewParticleSystem(0, 9)
	ps.SpawnFireworks(800, 600)

	if started(ps) != 19 {
		t.Fatalf("live at spawn = %d, want only the first burst", started(ps))
	}
	ps.Update(FireworkStagger+0.001, 600)
	if started(ps) != 38 {
		t.Errorf("live after one stagger = %d, want 38", started(ps))
	}

	for range 4 * TicksPerSecond {
		ps.Update(TickSeconds, 600)
	}
	if len(ps.P) != 0 {
		t.Errorf("%d particles left after every burst expired", len(ps.P))
	}
}

func TestDelayedParticlesHidden(t *testing.T) {
	ps := NewParticleSystem(8, 1)
	ps.Add(Particle{X: 1, Y: 1, Size: 3, Life: -0.5, MaxLife: 1, Kind: ParticleSpark})
	glow, norm := ps.ParticleRenderData(Vec2{}, nil, nil)
	if len(glow) != 0 || len(norm) != 0 {
		t.Errorf("delayed particle rendered: glow=%v norm=%v", glow, norm)
	}
}

func TestParticleOverwriteWhenFull(t *testing.T) {
	ps := NewParticleSystem(2, 1)
	for i := range 3 {
		ps.Add(Particle{X: float64(i), MaxLife: 1})
	}
	if len(ps.P) != 2 {
		t.Fatalf("len = %d, want 2", len(ps.P))
	}
	if ps.P[0].X != 2 {
		t.Errorf("oldest slot not overwritten: %+v", ps.P)
	}
}

func TestDebrisRestsOnFloor(t *testing.T) {
	ps := NewParticleSystem(8, 1)
	ps.Add(Particle{Y: 590, VY: 200, MaxLife: 10, Kind: ParticleDebris})
	for range 30 {
		ps.Update(TickSeconds, 600)
	}
	if y := ps.P[0].Y; y != 600-particleFloorPad {
		t.Errorf("debris y = %v, want %v", y, 600-particleFloorPad)
	}
}

func TestCrashSplitsBlendModes(t *testing.T) {
	ps := NewParticleSystem(0, 5)
	ps.SpawnCrash(200, 300, StripeColors[0])
	ps.Update(TickSeconds, 600)

	glow, norm := ps.ParticleRenderData(Vec2{X: 3}, nil, nil)
	if len(glow) == 0 || len(norm) == 0 {
		t.Fatalf("glow=%d norm=%d floats, want both", len(glow), len(norm))
	}
	if len(glow)%8 != 0 || len(norm)%8 != 0 {
		t.Error("render buffers not stride 8")
	}
}
