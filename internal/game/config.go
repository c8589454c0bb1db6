package game

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
)

// Simulation step. One tick per frame at 60 Hz.
const (
	TicksPerSecond = 60
	TickSeconds    = 1.0 / TicksPerSecond
	TickMillis     = 1000.0 / TicksPerSecond
)

// Buoyancy model: lift = (t/100)*BuoyancyGain - BuoyancyBias.
const (
	BuoyancyGain = 0.020
	BuoyancyBias = 0.008

	MinTemperature = 0.0
	MaxTemperature = 100.0
)

// Obstacle geometry.
const (
	MountainWidth     = 80.0
	MountainMinHeight = 80.0
	MountainMaxHeight = 200.0
	MountainBaseInset = 80.0 // anchor distance above the viewport bottom

	CloudMinRadius = 30.0
	CloudMaxRadius = 50.0
	CloudTopMargin = 50.0
	CloudSpanTrim  = 200.0 // vertical span = height - trim

	SpawnMargin = 50.0   // spawn x = width + margin
	PassOffset  = 50.0   // passed once x < balloonX - offset
	PruneX      = -200.0 // removed once x < PruneX
)

// Molecules.
const (
	MoleculeInset      = 5.0
	MoleculeDrag       = 0.95
	MoleculeBounce     = -0.8
	MoleculeBaseSpeed  = 1.0
	MoleculeHeatSpeed  = 4.0
	MoleculeTempNormal = 50.0
	MoleculeDotSize    = 2.0
)

// Particles.
const (
	MaxParticles       = 4000
	FireworkBursts     = 50
	FireworkStagger    = 0.05 // seconds between bursts
	FireworkLife       = 1.0
	CrashShakeStrength = 12.0
	CrashShakeSeconds  = 0.45
)

// ErrInvalidConfig marks a configuration that cannot drive a simulation.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunables of a run. Zero values are never valid; start
// from DefaultConfig and overlay a YAML file on top.
type Config struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Temperature     float64 `yaml:"temperature"`
	TemperatureStep float64 `yaml:"temperature_step"`
	ScrollSpeed     float64 `yaml:"scroll_speed"`
	MaxObstacles    int     `yaml:"max_obstacles"`
	SpawnInterval   int     `yaml:"spawn_interval"`

	Balloon BalloonConfig `yaml:"balloon"`
	Physics PhysicsConfig `yaml:"physics"`

	Molecules      int `yaml:"molecules"`
	BackdropClouds int `yaml:"backdrop_clouds"`
}

type BalloonConfig struct {
	X           float64 `yaml:"x"`
	Radius      float64 `yaml:"radius"`
	Restitution float64 `yaml:"restitution"`
	Friction    float64 `yaml:"friction"`
	FrictionAir float64 `yaml:"friction_air"`
	Density     float64 `yaml:"density"`
}

type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	GravityScale float64 `yaml:"gravity_scale"`
}

func DefaultConfig() Config {
	return Config{
		Width:           WindowWidth,
		Height:          WindowHeight,
		Temperature:     50,
		TemperatureStep: 2,
		ScrollSpeed:     5,
		MaxObstacles:    20,
		SpawnInterval:   100,
		Balloon: BalloonConfig{
			X:           200,
			Radius:      40,
			Restitution: 0.3,
			Friction:    0.01,
			FrictionAir: 0.02,
			Density:     0.001,
		},
		Physics: PhysicsConfig{
			Gravity:      0.3, // reduced for better control
			GravityScale: 0.001,
		},
		Molecules:      20,
		BackdropClouds: 8,
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the
// file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"temperature", c.Temperature},
		{"temperature_step", c.TemperatureStep},
		{"scroll_speed", c.ScrollSpeed},
		{"balloon.x", c.Balloon.X},
		{"balloon.radius", c.Balloon.Radius},
		{"balloon.restitution", c.Balloon.Restitution},
		{"balloon.friction", c.Balloon.Friction},
		{"balloon.friction_air", c.Balloon.FrictionAir},
		{"balloon.density", c.Balloon.Density},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.gravity_scale", c.Physics.GravityScale},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidConfig, f.name)
		}
	}

	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: viewport %gx%g", ErrInvalidConfig, c.Width, c.Height)
	case c.Temperature < MinTemperature || c.Temperature > MaxTemperature:
		return fmt.Errorf("%w: temperature %g outside [%g,%g]", ErrInvalidConfig, c.Temperature, MinTemperature, MaxTemperature)
	case c.TemperatureStep <= 0:
		return fmt.Errorf("%w: temperature_step must be positive", ErrInvalidConfig)
	case c.ScrollSpeed <= 0:
		return fmt.Errorf("%w: scroll_speed must be positive", ErrInvalidConfig)
	case c.MaxObstacles < 0:
		return fmt.Errorf("%w: max_obstacles %d is negative", ErrInvalidConfig, c.MaxObstacles)
	case c.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn_interval must be positive", ErrInvalidConfig)
	case c.Balloon.Radius <= MoleculeInset:
		return fmt.Errorf("%w: balloon radius %g too small", ErrInvalidConfig, c.Balloon.Radius)
	case c.Balloon.Density <= 0:
		return fmt.Errorf("%w: balloon density must be positive", ErrInvalidConfig)
	case c.Balloon.FrictionAir < 0 || c.Balloon.FrictionAir >= 1:
		return fmt.Errorf("%w: friction_air %g outside [0,1)", ErrInvalidConfig, c.Balloon.FrictionAir)
	case c.Molecules < 0 || c.BackdropClouds < 0:
		return fmt.Errorf("%w: negative visual counts", ErrInvalidConfig)
	}
	return nil
}
