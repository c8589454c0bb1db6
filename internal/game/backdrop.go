package game

// BackdropCloud is a decorative cloud drifting behind the play field.
type BackdropCloud struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// Backdrop drifts clouds right to left and recycles them at the right edge.
// It animates in every game state.
type Backdrop struct {
	Clouds []BackdropCloud
	rng    *Rand
}

func NewBackdrop(count int, width, height float64, rng *Rand) *Backdrop {
	b := &Backdrop{
		Clouds: make([]BackdropCloud, count),
		rng:    rng,
	}
	for i := range b.Clouds {
		b.Clouds[i] = BackdropCloud{
			X:     rng.RangeF(0, width),
			Y:     rng.RangeF(0, height*0.6),
			Size:  rng.RangeF(40, 80),
			Speed: rng.RangeF(1, 3),
		}
	}
	return b
}

func (b *Backdrop) Update(width, height float64) {
	for i := range b.Clouds {
		c := &b.Clouds[i]
		c.X -= c.Speed
		if c.X < -c.Size*2 {
			c.X = width + c.Size
			c.Y = b.rng.RangeF(0, height*0.6)
		}
	}
}
