package simulation

import "github.com/df07/go-raytracer-primitives/pkg/core"

// DefaultMaxTicks bounds Run when no limit is given, so a projectile that
// never falls (e.g. upward gravity) still terminates.
const DefaultMaxTicks = 10000

// Projectile is a body moving through an Environment
type Projectile struct {
	Position core.Point
	Velocity core.Vector
}

// Environment holds the forces applied to a projectile on every tick
type Environment struct {
	Gravity core.Vector
	Wind    core.Vector
}

// Tick advances the projectile by one time step
func Tick(env Environment, proj Projectile) Projectile {
	return Projectile{
		Position: proj.Position.Add(proj.Velocity),
		Velocity: proj.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Trajectory is the sequence of positions visited by a projectile
type Trajectory struct {
	Positions []core.Point
}

// Ticks returns the number of steps taken
func (t Trajectory) Ticks() int {
	if len(t.Positions) == 0 {
		return 0
	}
	return len(t.Positions) - 1
}

// Apex returns the highest position reached
func (t Trajectory) Apex() core.Point {
	var apex core.Point
	for i, p := range t.Positions {
		if i == 0 || p.Y() > apex.Y() {
			apex = p
		}
	}
	return apex
}

// Landing returns the final position
func (t Trajectory) Landing() core.Point {
	if len(t.Positions) == 0 {
		return core.Point{}
	}
	return t.Positions[len(t.Positions)-1]
}

// Run ticks the projectile while it stays above the ground (y > 0),
// recording every position including the start. maxTicks <= 0 uses
// DefaultMaxTicks.
func Run(env Environment, proj Projectile, maxTicks int) Trajectory {
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}

	traj := Trajectory{Positions: []core.Point{proj.Position}}
	for tick := 0; tick < maxTicks && proj.Position.Y() > 0; tick++ {
		proj = Tick(env, proj)
		traj.Positions = append(traj.Positions, proj.Position)
	}
	return traj
}
