package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/df07/go-raytracer-primitives/pkg/core"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Triple is a JSON-friendly [x, y, z] coordinate
type Triple [3]float64

func (t Triple) Vector() core.Vector { return core.NewVector(t[0], t[1], t[2]) }
func (t Triple) Point() core.Point   { return core.NewPoint(t[0], t[1], t[2]) }

// Config holds the simulation and canvas settings.
// Nil or zero fields are filled in by Resolve.
type Config struct {
	// Projectile
	Start     *Triple `json:"start"`
	Direction *Triple `json:"direction"`
	Speed     float64 `json:"speed"`

	// Environment
	Gravity *Triple `json:"gravity"`
	Wind    *Triple `json:"wind"`

	// Canvas
	Width    int `json:"width"`
	Height   int `json:"height"`
	MaxTicks int `json:"max_ticks"`
	Workers  int `json:"workers"`
}

// Flags holds CLI flag values that override config file settings
type Flags struct {
	Speed    float64
	Width    int
	Height   int
	MaxTicks int
	Workers  int
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies flag overrides, then fills any remaining empty field
// with its default.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Speed != 0 {
		c.Speed = flags.Speed
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.MaxTicks > 0 {
		c.MaxTicks = flags.MaxTicks
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Start == nil {
		c.Start = &Triple{0, 1, 0}
	}
	if c.Direction == nil {
		c.Direction = &Triple{1, 1.8, 0}
	}
	if c.Speed == 0 {
		c.Speed = 11.25
	}
	if c.Gravity == nil {
		c.Gravity = &Triple{0, -0.1, 0}
	}
	if c.Wind == nil {
		c.Wind = &Triple{-0.01, 0, 0}
	}
	if c.Width <= 0 {
		c.Width = 900
	}
	if c.Height <= 0 {
		c.Height = 550
	}
	if c.MaxTicks <= 0 {
		c.MaxTicks = DefaultMaxTicks
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports settings the simulation cannot run with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed %g must be positive", ErrInvalidConfig, c.Speed)
	}
	// Normalize panics on a zero direction
	if c.Direction == nil || c.Direction.Vector().Magnitude() == 0 {
		return fmt.Errorf("%w: direction must be non-zero", ErrInvalidConfig)
	}
	return nil
}

// Projectile builds the initial projectile: it starts at Start and moves
// along Direction at Speed.
func (c Config) Projectile() Projectile {
	return Projectile{
		Position: c.Start.Point(),
		Velocity: c.Direction.Vector().Normalize().Scale(c.Speed),
	}
}

// Environment builds the environment from Gravity and Wind
func (c Config) Environment() Environment {
	return Environment{
		Gravity: c.Gravity.Vector(),
		Wind:    c.Wind.Vector(),
	}
}
