//go:build !balloondebug

package game

import (
	"math"
	"testing"
)

func TestOutOfRangeInputsClamp(t *testing.T) {
	g := newQuietCore(t, 20)
	g.SetTemperature(150)
	if g.Temperature() != MaxTemperature {
		t.Errorf("temperature = %v, want %v", g.Temperature(), MaxTemperature)
	}
	g.SetTemperature(-3)
	if g.Temperature() != MinTemperature {
		t.Errorf("temperature = %v, want %v", g.Temperature(), MinTemperature)
	}

	neg := newQuietCore(t, -4)
	if neg.MaxObstacles() != 0 {
		t.Errorf("max = %d, want 0", neg.MaxObstacles())
	}
}

func TestNaNTemperatureFallsBackCold(t *testing.T) {
	g := newQuietCore(t, 20)
	g.SetTemperature(math.NaN())
	if g.Temperature() != MinTemperature {
		t.Fatalf("temperature = %v, want %v", g.Temperature(), MinTemperature)
	}
	g.NudgeTemperature(math.NaN())
	if g.Temperature() != MinTemperature {
		t.Fatalf("temperature after NaN nudge = %v, want %v", g.Temperature(), MinTemperature)
	}

	start := g.BalloonPosition()
	g.obstacles = append(g.obstacles, Obstacle{X: start.X + g.ScrollSpeed(), Shape: Cloud{Y: start.Y, Radius: 40}})
	g.Tick()
	if y := g.BalloonPosition().Y; math.IsNaN(y) || math.IsInf(y, 0) {
		t.Fatalf("balloon y = %v, want finite", y)
	}
	if g.State() != StateGameOver {
		t.Errorf("state = %v, want gameover", g.State())
	}
}

func TestNaNViewportIgnored(t *testing.T) {
	g := newQuietCore(t, 20)
	g.SetViewport(math.NaN(), 300)
	g.SetViewport(800, math.NaN())
	if w, h := g.Viewport(); w != g.Config().Width || h != g.Config().Height {
		t.Errorf("viewport = %vx%v, want unchanged", w, h)
	}
}
