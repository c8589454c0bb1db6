package game

// BuoyancyForce returns the lift produced by the envelope at temperature t.
// Positive lift pushes the balloon up: -0.008 at 0, +0.002 at 50, +0.012 at 100.
func BuoyancyForce(t float64) float64 {
	return (t/100)*BuoyancyGain - BuoyancyBias
}

// VerticalForce is the lift expressed in screen space, where up is -y. It
// decreases as temperature rises.
func VerticalForce(t float64) float64 {
	return -BuoyancyForce(t)
}

// ApplyBuoyancy queues the lift for the body's next integration step.
func ApplyBuoyancy(b *RigidBody, t float64) {
	b.ApplyForce(Vec2{Y: VerticalForce(checkTemperature(t))})
}

// ClampToViewport keeps the body's disc between the top and bottom edges.
// Velocity into the edge is truncated to zero, never reflected. A viewport
// shorter than the disc pins the body to its vertical centre.
func ClampToViewport(b *RigidBody, height float64) {
	if height < 2*b.Radius {
		b.Pos.Y = height / 2
		b.Vel.Y = 0
		return
	}
	if b.Pos.Y < b.Radius {
		b.Pos.Y = b.Radius
		if b.Vel.Y < 0 {
			b.Vel.Y = 0
		}
	}
	if b.Pos.Y > height-b.Radius {
		b.Pos.Y = height - b.Radius
		if b.Vel.Y > 0 {
			b.Vel.Y = 0
		}
	}
}

// StepBody runs the full physics phase of a tick: buoyancy, integration and
// the viewport clamp.
func StepBody(b *RigidBody, t float64, ph PhysicsConfig, height float64) {
	ApplyBuoyancy(b, t)
	b.Integrate(ph, TickMillis)
	ClampToViewport(b, height)
}
