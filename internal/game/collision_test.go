package game

import "testing"

func TestCheckCollisionCloud(t *testing.T) {
	const r = 40.0
	tests := []struct {
		name string
		pos  Vec2
		o    Obstacle
		want bool
	}{
		{"same centre", Vec2{X: 300, Y: 200}, Obstacle{X: 300, Shape: Cloud{Y: 200, Radius: 30}}, true},
		{"touching", Vec2{X: 0, Y: 0}, Obstacle{X: 70, Shape: Cloud{Y: 0, Radius: 30}}, false},
		{"one unit closer", Vec2{X: 0, Y: 0}, Obstacle{X: 69, Shape: Cloud{Y: 0, Radius: 30}}, true},
		{"diagonal clear", Vec2{X: 0, Y: 0}, Obstacle{X: 60, Shape: Cloud{Y: 60, Radius: 30}}, false},
		{"diagonal overlap", Vec2{X: 0, Y: 0}, Obstacle{X: 45, Shape: Cloud{Y: 45, Radius: 30}}, true},
		{"far", Vec2{X: 0, Y: 0}, Obstacle{X: 500, Shape: Cloud{Y: 0, Radius: 50}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckCollision(tt.pos, r, tt.o); got != tt.want {
				t.Errorf("CheckCollision = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckCollisionMountainBoundary(t *testing.T) {
	const r = 40.0
	m := Obstacle{X: 300, Shape: Mountain{Y: 520, Height: 100, Width: 80}}

	// 20 units off the apex column the surface sits at 520 + 100*0.5 = 570.
	if got := MountainSurfaceY(m.Shape.(Mountain), m.X, 320); got != 570 {
		t.Fatalf("MountainSurfaceY = %v, want 570", got)
	}

	if CheckCollision(Vec2{X: 320, Y: 530}, r, m) {
		t.Error("bottom exactly on the surface must not collide")
	}
	if !CheckCollision(Vec2{X: 320, Y: 531}, r, m) {
		t.Error("bottom one unit past the surface must collide")
	}
}

func TestCheckCollisionMountainHorizontalRange(t *testing.T) {
	const r = 40.0
	m := Obstacle{X: 300, Shape: Mountain{Y: 520, Height: 100, Width: 80}}

	// Left edge of the disc exactly at the right edge of the base.
	if CheckCollision(Vec2{X: 380, Y: 590}, r, m) {
		t.Error("disc touching the base edge must not collide")
	}
	// Just inside the range the silhouette is well above the bottom.
	if !CheckCollision(Vec2{X: 379, Y: 500}, r, m) {
		t.Error("disc overlapping the far slope must collide")
	}
}

func TestMountainApexColumnIsLowest(t *testing.T) {
	m := Mountain{Y: 520, Height: 150, Width: 80}
	apex := MountainSurfaceY(m, 300, 300)
	side := MountainSurfaceY(m, 300, 330)
	if apex != m.Y+m.Height {
		t.Errorf("apex surface = %v, want %v", apex, m.Y+m.Height)
	}
	if side >= apex {
		t.Errorf("side surface %v should sit above apex surface %v", side, apex)
	}
}
