package game

import "math"

// Molecule is a gas particle in the balloon's local frame, stored in polar
// form around the envelope centre.
type Molecule struct {
	Angle    float64
	Distance float64
	VX, VY   float64
}

// MoleculeField animates the gas inside the envelope. It only reads
// temperature and has no effect on the simulation.
type MoleculeField struct {
	M      []Molecule
	radius float64
	rng    *Rand
}

func NewMoleculeField(count int, radius float64, rng *Rand) *MoleculeField {
	f := &MoleculeField{
		M:      make([]Molecule, count),
		radius: radius,
		rng:    rng,
	}
	f.Reset()
	return f
}

// Reset scatters every molecule to a fresh random spot at rest.
func (f *MoleculeField) Reset() {
	for i := range f.M {
		f.M[i] = Molecule{
			Angle:    f.rng.Float64() * math.Pi * 2,
			Distance: f.rng.Float64() * f.limit(),
		}
	}
}

func (f *MoleculeField) limit() float64 {
	return f.radius - MoleculeInset
}

// Update advances every molecule one tick at temperature t.
func (f *MoleculeField) Update(t float64) {
	speed := MoleculeBaseSpeed + (t/MoleculeTempNormal)*MoleculeHeatSpeed
	limit := f.limit()

	for i := range f.M {
		m := &f.M[i]
		m.VX += (f.rng.Float64() - 0.5) * speed
		m.VY += (f.rng.Float64() - 0.5) * speed
		m.VX *= MoleculeDrag
		m.VY *= MoleculeDrag

		nx := m.Distance*math.Cos(m.Angle) + m.VX
		ny := m.Distance*math.Sin(m.Angle) + m.VY
		dist := math.Hypot(nx, ny)
		if dist > limit {
			// Bounce off the envelope: flip to the opposite side and lose energy.
			m.Angle = math.Atan2(ny, nx) + math.Pi
			m.Distance = limit
			m.VX *= MoleculeBounce
			m.VY *= MoleculeBounce
			continue
		}
		m.Angle = math.Atan2(ny, nx)
		m.Distance = dist
	}
}

// Positions returns molecule positions in world space around center,
// reusing buf.
func (f *MoleculeField) Positions(center Vec2, buf []Vec2) []Vec2 {
	buf = buf[:0]
	for _, m := range f.M {
		buf = append(buf, Vec2{
			X: center.X + m.Distance*math.Cos(m.Angle),
			Y: center.Y + m.Distance*math.Sin(m.Angle),
		})
	}
	return buf
}
