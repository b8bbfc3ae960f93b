package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/df07/go-raytracer-primitives/pkg/canvas"
	"github.com/df07/go-raytracer-primitives/pkg/core"
	"github.com/df07/go-raytracer-primitives/pkg/simulation"
)

const (
	flagConfig   = "config"
	flagSpeed    = "speed"
	flagWidth    = "width"
	flagHeight   = "height"
	flagMaxTicks = "max-ticks"
	flagWorkers  = "workers"
	flagPreview  = "preview"
	flagVerbose  = "verbose"
)

var (
	skyTop     = core.NewColor(0.02, 0.02, 0.08)
	skyHorizon = core.NewColor(0.15, 0.18, 0.3)
	pathColor  = core.White()
)

const previewRows = 24

var app = &cli.App{
	Name:  "projectile",
	Usage: "simulate a projectile and plot its trajectory onto a canvas",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "path to a JSON config file",
		},
		&cli.Float64Flag{
			Name:  flagSpeed,
			Usage: "launch speed (overrides config)",
		},
		&cli.IntFlag{
			Name:  flagWidth,
			Usage: "canvas width in pixels (overrides config)",
		},
		&cli.IntFlag{
			Name:  flagHeight,
			Usage: "canvas height in pixels (overrides config)",
		},
		&cli.IntFlag{
			Name:  flagMaxTicks,
			Usage: "upper bound on simulation steps (overrides config)",
		},
		&cli.IntFlag{
			Name:  flagWorkers,
			Usage: "goroutines used to paint the canvas, 0 for one per CPU",
		},
		&cli.IntFlag{
			Name:  flagPreview,
			Usage: "print a terminal preview this many columns wide, 0 to disable",
		},
		&cli.BoolFlag{
			Name:    flagVerbose,
			Aliases: []string{"v"},
			Usage:   "development logging with per-tick positions",
		},
	},
	Action: runAction,
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runAction(c *cli.Context) error {
	logger, err := newLogger(c.Bool(flagVerbose))
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := loadConfig(c.String(flagConfig), simulation.Flags{
		Speed:    c.Float64(flagSpeed),
		Width:    c.Int(flagWidth),
		Height:   c.Int(flagHeight),
		MaxTicks: c.Int(flagMaxTicks),
		Workers:  c.Int(flagWorkers),
	})
	if err != nil {
		return err
	}

	startTime := time.Now()
	img, traj, err := simulate(c.Context, cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("simulation complete",
		zap.Int("ticks", traj.Ticks()),
		zap.Stringer("apex", traj.Apex()),
		zap.Stringer("landing", traj.Landing()),
		zap.Int("width", img.Width()),
		zap.Int("height", img.Height()),
		zap.Duration("elapsed", time.Since(startTime)),
	)

	if cols := c.Int(flagPreview); cols > 0 {
		fmt.Fprint(c.App.Writer, simulation.Preview(img, cols, previewRows))
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadConfig reads the optional config file, applies flag overrides and
// validates the result
func loadConfig(path string, flags simulation.Flags) (simulation.Config, error) {
	var cfg simulation.Config
	if path != "" {
		loaded, err := simulation.Load(path)
		if err != nil {
			return simulation.Config{}, err
		}
		cfg = loaded
	}

	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return simulation.Config{}, err
	}
	return cfg, nil
}

// simulate runs the projectile to the ground and plots its path over a sky
// gradient
func simulate(ctx context.Context, cfg simulation.Config, logger *zap.Logger) (*canvas.Canvas, simulation.Trajectory, error) {
	traj := simulation.Run(cfg.Environment(), cfg.Projectile(), cfg.MaxTicks)
	for i, p := range traj.Positions {
		logger.Debug("tick", zap.Int("tick", i), zap.Stringer("position", p))
	}
	if traj.Landing().Y() > 0 {
		logger.Warn("projectile still airborne at tick limit", zap.Int("max_ticks", cfg.MaxTicks))
	}

	img := canvas.New(cfg.Width, cfg.Height)
	err := img.FillRows(ctx, cfg.Workers, func(y int, row []core.Color) error {
		t := float64(y) / float64(max(cfg.Height-1, 1))
		sky := skyTop.Scale(1 - t).Add(skyHorizon.Scale(t))
		for x := range row {
			row[x] = sky
		}
		return nil
	})
	if err != nil {
		return nil, simulation.Trajectory{}, fmt.Errorf("paint background: %w", err)
	}

	plotted := simulation.Plot(img, traj, pathColor)
	logger.Debug("plotted trajectory", zap.Int("pixels", plotted), zap.Int("positions", len(traj.Positions)))

	return img, traj, nil
}
