package game

import (
	"log/slog"

	"github.com/google/uuid"
)

type GameState int

const (
	StatePlaying  GameState = iota // balloon in flight
	StateGameOver                  // hit an obstacle
	StateWon                       // passed every obstacle
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions can happen.
func (s GameState) Terminal() bool {
	return s == StateGameOver || s == StateWon
}

// GameCore owns the balloon, the obstacle sequence and the progress
// counters. Everything is mutated synchronously from Tick and the input
// setters; it is not safe for concurrent use.
type GameCore struct {
	cfg    Config
	width  float64
	height float64

	body      *RigidBody
	gen       *Generator
	obstacles []Obstacle

	state       GameState
	temperature float64
	passed      int
	maxPassed   int
	distance    float64
	spawnTimer  int
	tick        uint64
	round       uuid.UUID

	bus *EventBus
	log *slog.Logger
}

// NewGameCore builds a core in the Playing state. rng drives obstacle
// generation; a nil logger discards output.
func NewGameCore(cfg Config, rng *Rand, log *slog.Logger) *GameCore {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	g := &GameCore{
		cfg:       cfg,
		width:     cfg.Width,
		height:    cfg.Height,
		gen:       NewGenerator(rng),
		maxPassed: checkMaxObstacles(cfg.MaxObstacles),
		bus:       NewEventBus(),
		log:       log,
	}
	g.body = NewRigidBody(g.startPos(), cfg.Balloon)
	g.reset()
	return g
}

func (g *GameCore) startPos() Vec2 {
	return Vec2{X: g.cfg.Balloon.X, Y: g.height / 2}
}

func (g *GameCore) reset() {
	g.body.Reset(g.startPos())
	g.obstacles = g.obstacles[:0]
	g.state = StatePlaying
	g.temperature = checkTemperature(g.cfg.Temperature)
	g.passed = 0
	g.distance = 0
	g.spawnTimer = 0
	g.tick = 0
	g.round = uuid.New()
}

// Restart puts every entity and counter back to its initial value and
// starts a new round.
func (g *GameCore) Restart() {
	g.reset()
	g.log.Info("round started", "round", g.round, "width", g.width, "height", g.height)
	g.emit(EventRestart)
}

// Events exposes the bus that carries spawn, pass and transition events.
func (g *GameCore) Events() *EventBus { return g.bus }

// SetTemperature sets the burner temperature. Callers clamp to [0,100];
// the core only bounds-checks.
func (g *GameCore) SetTemperature(t float64) {
	g.temperature = checkTemperature(t)
}

// NudgeTemperature changes the temperature by delta, clamped to range.
func (g *GameCore) NudgeTemperature(delta float64) {
	g.SetTemperature(clampF(g.temperature+delta, MinTemperature, MaxTemperature))
}

// SetViewport records the current viewport size. It takes effect on the
// next tick; non-positive or NaN sizes are ignored.
func (g *GameCore) SetViewport(w, h float64) {
	if !(w > 0 && h > 0) {
		return
	}
	g.width, g.height = w, h
}

// Tick advances one simulation step. It is a no-op outside StatePlaying.
func (g *GameCore) Tick() {
	if g.state != StatePlaying {
		return
	}
	g.tick++

	StepBody(g.body, g.temperature, g.cfg.Physics, g.height)

	g.spawnTimer++
	if g.spawnTimer >= g.cfg.SpawnInterval {
		g.spawnTimer = 0
		g.spawn()
	}

	if g.updateObstacles() {
		return
	}

	if g.passed >= g.maxPassed {
		g.transition(StateWon)
		return
	}

	g.distance += g.cfg.ScrollSpeed
}

func (g *GameCore) spawn() {
	o, ok := g.gen.Spawn(g.width, g.height, g.passed, g.maxPassed)
	if !ok {
		return
	}
	g.obstacles = append(g.obstacles, o)
	g.log.Debug("obstacle spawned", "round", g.round, "kind", o.Shape.Kind(), "x", o.X)
	g.emit(EventObstacleSpawned)
}

// updateObstacles scrolls, counts, collides and prunes in spawn order. It
// reports true when a collision ended the round; obstacles after the one
// that was hit are left untouched.
func (g *GameCore) updateObstacles() bool {
	threshold := g.cfg.Balloon.X - PassOffset
	kept := g.obstacles[:0]

	for i := range g.obstacles {
		o := g.obstacles[i]
		o.Advance(g.cfg.ScrollSpeed)

		if o.MarkPassed(threshold) && g.passed < g.maxPassed {
			g.passed++
			g.emit(EventObstaclePassed)
		}

		if CheckCollision(g.body.Pos, g.body.Radius, o) {
			kept = append(kept, o)
			kept = append(kept, g.obstacles[i+1:]...)
			g.obstacles = kept
			g.transition(StateGameOver)
			return true
		}

		if o.OffScreen() {
			continue
		}
		kept = append(kept, o)
	}

	g.obstacles = kept
	return false
}

func (g *GameCore) transition(to GameState) {
	if g.state.Terminal() {
		return
	}
	g.state = to
	g.log.Info("round ended", "round", g.round, "state", to, "tick", g.tick,
		"passed", g.passed, "distance", g.distance)
	switch to {
	case StateGameOver:
		g.emit(EventGameOver)
	case StateWon:
		g.emit(EventWon)
	}
}

func (g *GameCore) emit(t EventType) {
	g.bus.Emit(Event{
		Type:  t,
		Round: g.round,
		Tick:  g.tick,
		X:     g.body.Pos.X,
		Y:     g.body.Pos.Y,
		Data:  g.passed,
	})
}

func (g *GameCore) State() GameState          { return g.state }
func (g *GameCore) Body() *RigidBody          { return g.body }
func (g *GameCore) BalloonPosition() Vec2     { return g.body.Pos }
func (g *GameCore) Temperature() float64      { return g.temperature }
func (g *GameCore) ObstaclesPassed() int      { return g.passed }
func (g *GameCore) MaxObstacles() int         { return g.maxPassed }
func (g *GameCore) DistanceTraveled() float64 { return g.distance }
func (g *GameCore) ScrollSpeed() float64      { return g.cfg.ScrollSpeed }
func (g *GameCore) Ticks() uint64             { return g.tick }
func (g *GameCore) RoundID() uuid.UUID        { return g.round }
func (g *GameCore) Config() Config            { return g.cfg }

// Viewport returns the size the core simulates against.
func (g *GameCore) Viewport() (float64, float64) { return g.width, g.height }

// Obstacles returns the live sequence in spawn order. The slice is owned by
// the core and is only valid until the next Tick.
func (g *GameCore) Obstacles() []Obstacle { return g.obstacles }

// Progress is the share of the course still ahead, in percent.
func (g *GameCore) Progress() float64 {
	if g.maxPassed == 0 {
		return 0
	}
	p := 100 - float64(g.passed)/float64(g.maxPassed)*100
	if p < 0 {
		return 0
	}
	return p
}
