package game

// Camera offsets the rendered scene. The simulation itself is always in
// viewport space; only shake moves the view.
type Camera struct {
	ShakeX, ShakeY float64 // current offset in world units
	ShakeTimer     float64 // remaining shake time
	ShakeIntensity float64 // max offset magnitude
}

// AddShake triggers screen shake with given intensity and duration.
func (c *Camera) AddShake(intensity, duration float64) {
	if intensity > c.ShakeIntensity {
		c.ShakeIntensity = intensity
	}
	if duration > c.ShakeTimer {
		c.ShakeTimer = duration
	}
}

// UpdateShake decays shake and computes random offsets.
func (c *Camera) UpdateShake(dt float64, seed uint64) {
	if c.ShakeTimer <= 0 {
		c.Reset()
		return
	}
	c.ShakeTimer -= dt
	if c.ShakeTimer < 0 {
		c.ShakeTimer = 0
	}
	// Decaying intensity.
	t := c.ShakeTimer
	rr := NewRand(seed ^ uint64(t*10000))
	mag := c.ShakeIntensity * (t / (t + 0.08))
	c.ShakeX = rr.RangeF(-mag, mag)
	c.ShakeY = rr.RangeF(-mag, mag)
}

func (c *Camera) Reset() {
	*c = Camera{}
}

// Offset returns the render offset with shake applied.
func (c *Camera) Offset() Vec2 {
	return Vec2{X: c.ShakeX, Y: c.ShakeY}
}
