package game

import "log/slog"

// Command is a player intent decoded by a frontend.
type Command uint8

const (
	CmdNone Command = iota
	CmdHeatUp
	CmdHeatDown
	CmdRestart
	CmdQuit
)

// Driver runs one frame of the game: the core tick plus the cosmetic layers
// that keep animating after the round ends. Frontends call Frame once per
// animation callback.
type Driver struct {
	Core      *GameCore
	Molecules *MoleculeField
	Backdrop  *Backdrop
	Particles *ParticleSystem
	Camera    Camera

	frames    uint64
	shakeSeed uint64
}

// NewDriver seeds every random stream from seed so a run is reproducible.
func NewDriver(cfg Config, seed uint64, log *slog.Logger) *Driver {
	master := NewRand(seed)
	d := &Driver{
		Core:      NewGameCore(cfg, master.Fork(0x0B57AC1E), log),
		Molecules: NewMoleculeField(cfg.Molecules, cfg.Balloon.Radius, master.Fork(0x6A5)),
		Backdrop:  NewBackdrop(cfg.BackdropClouds, cfg.Width, cfg.Height, master.Fork(0xC10D)),
		Particles: NewParticleSystem(MaxParticles, master.NextU64()),
		shakeSeed: master.NextU64(),
	}

	bus := d.Core.Events()
	bus.Subscribe(EventGameOver, func(e Event) {
		d.Particles.SpawnCrash(e.X, e.Y, StripeColors[0])
		d.Camera.AddShake(CrashShakeStrength, CrashShakeSeconds)
	})
	bus.Subscribe(EventWon, func(Event) {
		w, h := d.Core.Viewport()
		d.Particles.SpawnFireworks(w, h)
	})
	bus.Subscribe(EventRestart, func(Event) {
		d.Particles.Clear()
		d.Molecules.Reset()
		d.Camera.Reset()
	})
	return d
}

// Frame advances everything by one tick in a fixed order.
func (d *Driver) Frame() {
	d.frames++
	w, h := d.Core.Viewport()

	d.Backdrop.Update(w, h)
	d.Core.Tick()
	d.Molecules.Update(d.Core.Temperature())
	d.Particles.Update(TickSeconds, h)
	d.Camera.UpdateShake(TickSeconds, d.shakeSeed^d.frames)
}

// Apply executes cmd. It returns false when the player asked to quit.
func (d *Driver) Apply(cmd Command) bool {
	step := d.Core.Config().TemperatureStep
	switch cmd {
	case CmdHeatUp:
		d.Core.NudgeTemperature(step)
	case CmdHeatDown:
		d.Core.NudgeTemperature(-step)
	case CmdRestart:
		d.Core.Restart()
	case CmdQuit:
		return false
	}
	return true
}

// Frames counts calls to Frame since the driver was built.
func (d *Driver) Frames() uint64 { return d.frames }
