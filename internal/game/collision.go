package game

import "math"

// CheckCollision tests the balloon disc (pos, radius) against an obstacle.
// Touching edges do not collide.
func CheckCollision(pos Vec2, radius float64, o Obstacle) bool {
	switch s := o.Shape.(type) {
	case Cloud:
		return pos.Dist(Vec2{X: o.X, Y: s.Y}) < radius+s.Radius
	case Mountain:
		return mountainHit(pos, radius, o.X, s)
	default:
		return false
	}
}

// mountainHit approximates the silhouette with a surface height that falls
// off linearly with horizontal distance from the apex column.
func mountainHit(pos Vec2, radius, x float64, m Mountain) bool {
	half := m.Width / 2
	inX := pos.X+radius > x-half && pos.X-radius < x+half
	if !inX {
		return false
	}
	surfaceY := MountainSurfaceY(m, x, pos.X)
	return pos.Y+radius > surfaceY
}

// MountainSurfaceY is the collision surface of m (apex at column x) sampled
// at column px.
func MountainSurfaceY(m Mountain, x, px float64) float64 {
	return m.Y + m.Height*(1-math.Abs(px-x)/(m.Width/2))
}
