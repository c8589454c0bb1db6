package game

import "testing"

func TestDriverApply(t *testing.T) {
	d := NewDriver(DefaultConfig(), 1, nil)

	d.Apply(CmdHeatUp)
	if d.Core.Temperature() != 52 {
		t.Errorf("after heat up = %v, want 52", d.Core.Temperature())
	}
	d.Apply(CmdHeatDown)
	d.Apply(CmdHeatDown)
	if d.Core.Temperature() != 48 {
		t.Errorf("after two heat down = %v, want 48", d.Core.Temperature())
	}
	if !d.Apply(CmdNone) {
		t.Error("CmdNone asked to quit")
	}
	if d.Apply(CmdQuit) {
		t.Error("CmdQuit did not ask to quit")
	}
}

func TestDriverWinLaunchesFireworks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxObstacles = 0
	d := NewDriver(cfg, 2, nil)

	d.Frame()
	if d.Core.State() != StateWon {
		t.Fatalf("state = %v, want won on the first frame", d.Core.State())
	}
	if len(d.Particles.P) != FireworkBursts*19 {
		t.Errorf("particles = %d, want %d", len(d.Particles.P), FireworkBursts*19)
	}

	// Cosmetic layers keep running after the round ends.
	before := d.Backdrop.Clouds[0].X
	d.Frame()
	if d.Backdrop.Clouds[0].X == before {
		t.Error("backdrop frozen after win")
	}
	if d.Frames() != 2 {
		t.Errorf("frames = %d, want 2", d.Frames())
	}
}

func TestDriverCrashShakesAndRestartClears(t *testing.T) {
	d := NewDriver(DefaultConfig(), 3, nil)
	pos := d.Core.BalloonPosition()
	d.Core.obstacles = append(d.Core.obstacles, Obstacle{
		X:     pos.X + d.Core.ScrollSpeed(),
		Shape: Cloud{Y: pos.Y, Radius: 40},
	})

	d.Frame()
	if d.Core.State() != StateGameOver {
		t.Fatalf("state = %v, want gameover", d.Core.State())
	}
	if len(d.Particles.P) == 0 {
		t.Error("no crash particles")
	}
	if d.Camera.ShakeTimer <= 0 {
		t.Error("no camera shake after crash")
	}

	if !d.Apply(CmdRestart) {
		t.Fatal("restart asked to quit")
	}
	if d.Core.State() != StatePlaying {
		t.Errorf("state = %v after restart", d.Core.State())
	}
	if len(d.Particles.P) != 0 || d.Camera.Offset() != (Vec2{}) {
		t.Errorf("particles=%d offset=%+v after restart, want cleared", len(d.Particles.P), d.Camera.Offset())
	}
}

func TestDriverDeterministic(t *testing.T) {
	run := func() *Driver {
		d := NewDriver(DefaultConfig(), 0xBA11, nil)
		for i := range 900 {
			switch {
			case i%40 < 10:
				d.Apply(CmdHeatUp)
			case i%40 < 20:
				d.Apply(CmdHeatDown)
			}
			d.Frame()
		}
		return d
	}

	a, b := run(), run()
	if a.Core.State() != b.Core.State() || a.Core.BalloonPosition() != b.Core.BalloonPosition() {
		t.Fatalf("runs diverged: %v %+v vs %v %+v",
			a.Core.State(), a.Core.BalloonPosition(), b.Core.State(), b.Core.BalloonPosition())
	}
	oa, ob := a.Core.Obstacles(), b.Core.Obstacles()
	if len(oa) != len(ob) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(oa), len(ob))
	}
	for i := range oa {
		if oa[i] != ob[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, oa[i], ob[i])
		}
	}
	for i := range a.Molecules.M {
		if a.Molecules.M[i] != b.Molecules.M[i] {
			t.Fatalf("molecule %d differs", i)
		}
	}
}

func TestBuildSceneFillsBuffers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Temperature = 90
	d := NewDriver(cfg, 4, nil)
	d.Core.obstacles = append(d.Core.obstacles,
		Obstacle{X: 600, Shape: Mountain{Y: 520, Height: 120, Width: 80}},
		Obstacle{X: 700, Shape: Cloud{Y: 100, Radius: 40}},
	)

	var s Scene
	BuildScene(d, &s)
	if len(s.Tris) == 0 || len(s.Tris)%18 != 0 {
		t.Errorf("tris = %d floats, want a positive multiple of 18", len(s.Tris))
	}
	if len(s.Sprites) != cfg.Molecules*8 {
		t.Errorf("sprites = %d floats, want %d", len(s.Sprites), cfg.Molecules*8)
	}

	n := len(s.Tris)
	BuildScene(d, &s)
	if len(s.Tris) != n {
		t.Errorf("rebuild changed tri count: %d -> %d", n, len(s.Tris))
	}
}
