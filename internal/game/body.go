package game

import "math"

// RigidBody is the balloon: a single circular body integrated with explicit
// per-tick steps. Forces accumulate between ticks and are cleared by Integrate.
type RigidBody struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64

	Restitution float64
	Friction    float64
	FrictionAir float64
	Density     float64

	force Vec2
}

func NewRigidBody(pos Vec2, bc BalloonConfig) *RigidBody {
	return &RigidBody{
		Pos:         pos,
		Radius:      bc.Radius,
		Restitution: bc.Restitution,
		Friction:    bc.Friction,
		FrictionAir: bc.FrictionAir,
		Density:     bc.Density,
	}
}

// Mass is density times the disc area.
func (b *RigidBody) Mass() float64 {
	return b.Density * math.Pi * b.Radius * b.Radius
}

// ApplyForce queues a force for the next Integrate call.
func (b *RigidBody) ApplyForce(f Vec2) {
	b.force = b.force.Add(f)
}

// PendingForce reports the force accumulated since the last step.
func (b *RigidBody) PendingForce() Vec2 {
	return b.force
}

// Integrate advances the body by one tick of dtMs milliseconds. Units match
// the classic Matter.js step: accelerations are scaled by dt², and air
// friction is a per-tick velocity retention factor.
func (b *RigidBody) Integrate(ph PhysicsConfig, dtMs float64) {
	dt2 := dtMs * dtMs
	m := b.Mass()

	ax := 0.0
	ay := ph.Gravity * ph.GravityScale
	if m > 0 {
		ax += b.force.X / m
		ay += b.force.Y / m
	}

	keep := 1 - b.FrictionAir
	b.Vel.X = b.Vel.X*keep + ax*dt2
	b.Vel.Y = b.Vel.Y*keep + ay*dt2
	b.Pos = b.Pos.Add(b.Vel)
	b.force = Vec2{}
}

// Reset places the body at pos at rest.
func (b *RigidBody) Reset(pos Vec2) {
	b.Pos = pos
	b.Vel = Vec2{}
	b.force = Vec2{}
}
