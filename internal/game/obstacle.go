package game

// Shape is the per-kind geometry of an obstacle. The set of shapes is closed:
// Mountain and Cloud are the only implementations.
type Shape interface {
	Kind() ObstacleKind
	shape()
}

type ObstacleKind uint8

const (
	KindMountain ObstacleKind = iota
	KindCloud
)

func (k ObstacleKind) String() string {
	switch k {
	case KindMountain:
		return "mountain"
	case KindCloud:
		return "cloud"
	default:
		return "unknown"
	}
}

// Mountain is a triangular silhouette. Y is the apex anchor; the body
// extends Height below it and Width across.
type Mountain struct {
	Y      float64
	Height float64
	Width  float64
}

// Cloud is a circular silhouette centred at (obstacle X, Y).
type Cloud struct {
	Y      float64
	Radius float64
}

func (Mountain) Kind() ObstacleKind { return KindMountain }
func (Cloud) Kind() ObstacleKind    { return KindCloud }
func (Mountain) shape()             {}
func (Cloud) shape()                {}

type Obstacle struct {
	X      float64
	Passed bool
	Shape  Shape
}

// Advance scrolls the obstacle left by speed.
func (o *Obstacle) Advance(speed float64) {
	o.X -= speed
}

// MarkPassed flags the obstacle once it is left of threshold. It reports
// true only on the tick the flag flips.
func (o *Obstacle) MarkPassed(threshold float64) bool {
	if o.Passed || o.X >= threshold {
		return false
	}
	o.Passed = true
	return true
}

// OffScreen reports whether the obstacle has scrolled past the prune line.
func (o *Obstacle) OffScreen() bool {
	return o.X < PruneX
}

// Generator produces obstacles just past the right edge of the viewport.
type Generator struct {
	rng *Rand
}

func NewGenerator(rng *Rand) *Generator {
	return &Generator{rng: rng}
}

// Spawn returns a new obstacle, or false once passed has reached max: any
// obstacle spawned after that point could never be counted.
func (g *Generator) Spawn(width, height float64, passed, max int) (Obstacle, bool) {
	if passed >= max {
		return Obstacle{}, false
	}

	o := Obstacle{X: width + SpawnMargin}
	if g.rng.Float64() > 0.5 {
		o.Shape = Mountain{
			Y:      height - MountainBaseInset,
			Height: g.rng.RangeF(MountainMinHeight, MountainMaxHeight),
			Width:  MountainWidth,
		}
	} else {
		span := height - CloudSpanTrim
		if span < 0 {
			span = 0
		}
		o.Shape = Cloud{
			Y:      CloudTopMargin + g.rng.Float64()*span,
			Radius: g.rng.RangeF(CloudMinRadius, CloudMaxRadius),
		}
	}
	return o, true
}
