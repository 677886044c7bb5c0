package obj

import (
	"errors"
	"fmt"
)

// Physics holds the tunable constants of the player integrator. Velocities are
// in world units per reference tick; a reference tick is 1/TimeScale seconds.
type Physics struct {
	Gravity          float64
	JumpAccel        float64
	RotationSpeed    float64 // degrees per second while airborne in cube mode
	ForwardSpeed     float64
	SpeedMultiplier  float64
	TimeScale        float64
	SlowFactor       float64
	Substeps         int
	TerminalVelocity float64
	ShipMaxRise      float64
	ShipMaxFall      float64
	PadBoost         float64
}

// DefaultPhysics returns the constants of the 1x speed profile.
func DefaultPhysics() Physics {
	return Physics{
		Gravity:          0.958199,
		JumpAccel:        11.180032,
		RotationSpeed:    360,
		ForwardSpeed:     5.7700018,
		SpeedMultiplier:  0.9,
		TimeScale:        60,
		SlowFactor:       0.9,
		Substeps:         4,
		TerminalVelocity: 15,
		ShipMaxRise:      8,
		ShipMaxFall:      -6.4,
		PadBoost:         16,
	}
}

// Validate reports the first constant that would make integration meaningless.
func (p Physics) Validate() error {
	switch {
	case p.Substeps < 1:
		return fmt.Errorf("physics: substeps must be >= 1, got %d", p.Substeps)
	case p.Gravity <= 0:
		return fmt.Errorf("physics: gravity must be > 0, got %g", p.Gravity)
	case p.ForwardSpeed <= 0 || p.SpeedMultiplier <= 0:
		return errors.New("physics: forward speed must be > 0")
	case p.TimeScale <= 0 || p.SlowFactor <= 0:
		return errors.New("physics: time scale must be > 0")
	case p.TerminalVelocity <= 0:
		return fmt.Errorf("physics: terminal velocity must be > 0, got %g", p.TerminalVelocity)
	case p.ShipMaxFall >= p.ShipMaxRise:
		return fmt.Errorf("physics: ship bounds inverted (%g >= %g)", p.ShipMaxFall, p.ShipMaxRise)
	}
	return nil
}

// Horizontal speed in world units per reference tick.
func (p Physics) xVelocity() float64 {
	return p.ForwardSpeed * p.SpeedMultiplier
}

// fallingThreshold is the velocity below which the player counts as falling.
func (p Physics) fallingThreshold() float64 {
	return p.Gravity * 2
}
