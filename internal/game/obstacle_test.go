package game

import "testing"

func TestGeneratorSpawnRanges(t *testing.T) {
	gen := NewGenerator(NewRand(42))
	const w, h = 800.0, 600.0

	var mountains, clouds int
	for range 500 {
		o, ok := gen.Spawn(w, h, 0, 20)
		if !ok {
			t.Fatal("Spawn refused below max")
		}
		if o.X != w+SpawnMargin {
			t.Fatalf("x = %v, want %v", o.X, w+SpawnMargin)
		}
		if o.Passed {
			t.Fatal("new obstacle already passed")
		}
		switch sh := o.Shape.(type) {
		case Mountain:
			mountains++
			if sh.Y != h-MountainBaseInset || sh.Width != MountainWidth {
				t.Errorf("mountain anchor %+v", sh)
			}
			if sh.Height < MountainMinHeight || sh.Height >= MountainMaxHeight {
				t.Errorf("mountain height %v outside [%v,%v)", sh.Height, MountainMinHeight, MountainMaxHeight)
			}
		case Cloud:
			clouds++
			if sh.Y < CloudTopMargin || sh.Y > CloudTopMargin+h-CloudSpanTrim {
				t.Errorf("cloud y %v outside [%v,%v]", sh.Y, CloudTopMargin, CloudTopMargin+h-CloudSpanTrim)
			}
			if sh.Radius < CloudMinRadius || sh.Radius >= CloudMaxRadius {
				t.Errorf("cloud radius %v outside [%v,%v)", sh.Radius, CloudMinRadius, CloudMaxRadius)
			}
		default:
			t.Fatalf("unexpected shape %T", sh)
		}
	}
	if mountains == 0 || clouds == 0 {
		t.Errorf("mountains=%d clouds=%d, want both kinds", mountains, clouds)
	}
}

func TestGeneratorStopsAtMax(t *testing.T) {
	gen := NewGenerator(NewRand(1))
	if _, ok := gen.Spawn(800, 600, 5, 5); ok {
		t.Error("Spawn produced an obstacle with passed == max")
	}
	if _, ok := gen.Spawn(800, 600, 0, 0); ok {
		t.Error("Spawn produced an obstacle with max == 0")
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(NewRand(99))
	b := NewGenerator(NewRand(99))
	for i := range 50 {
		oa, _ := a.Spawn(800, 600, 0, 20)
		ob, _ := b.Spawn(800, 600, 0, 20)
		if oa != ob {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, oa, ob)
		}
	}
}

func TestMarkPassedFlipsOnce(t *testing.T) {
	o := Obstacle{X: 151}
	o.Advance(1)
	if o.MarkPassed(150) {
		t.Fatal("x == threshold counted as passed")
	}
	o.Advance(1)
	if !o.MarkPassed(150) {
		t.Fatal("x < threshold not counted")
	}
	if o.MarkPassed(150) {
		t.Error("second MarkPassed reported a flip")
	}
}

func TestObstacleKindString(t *testing.T) {
	if KindMountain.String() != "mountain" || KindCloud.String() != "cloud" {
		t.Errorf("got %q and %q", KindMountain, KindCloud)
	}
	if (Mountain{}).Kind() != KindMountain || (Cloud{}).Kind() != KindCloud {
		t.Error("shape kinds mismatched")
	}
}
