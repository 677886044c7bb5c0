package config

import (
	"fmt"

	"github.com/milk9111/dashphys/obj"
	"gopkg.in/yaml.v3"
)

type Tuning struct {
	Gravity          float64    `yaml:"gravity"`
	JumpAccel        float64    `yaml:"jump_accel"`
	RotationSpeed    float64    `yaml:"rotation_speed"`
	ForwardSpeed     float64    `yaml:"forward_speed"`
	SpeedMultiplier  float64    `yaml:"speed_multiplier"`
	TimeScale        float64    `yaml:"time_scale"`
	SlowFactor       float64    `yaml:"slow_factor"`
	Substeps         int        `yaml:"substeps"`
	TerminalVelocity float64    `yaml:"terminal_velocity"`
	PadBoost         float64    `yaml:"pad_boost"`
	Ship             ShipTuning `yaml:"ship"`
}

type ShipTuning struct {
	MaxRise float64 `yaml:"max_rise"`
	MaxFall float64 `yaml:"max_fall"`
}

// DefaultTuning mirrors obj.DefaultPhysics.
func DefaultTuning() Tuning {
	p := obj.DefaultPhysics()
	return Tuning{
		Gravity:          p.Gravity,
		JumpAccel:        p.JumpAccel,
		RotationSpeed:    p.RotationSpeed,
		ForwardSpeed:     p.ForwardSpeed,
		SpeedMultiplier:  p.SpeedMultiplier,
		TimeScale:        p.TimeScale,
		SlowFactor:       p.SlowFactor,
		Substeps:         p.Substeps,
		TerminalVelocity: p.TerminalVelocity,
		PadBoost:         p.PadBoost,
		Ship: ShipTuning{
			MaxRise: p.ShipMaxRise,
			MaxFall: p.ShipMaxFall,
		},
	}
}

func (t Tuning) Physics() obj.Physics {
	return obj.Physics{
		Gravity:          t.Gravity,
		JumpAccel:        t.JumpAccel,
		RotationSpeed:    t.RotationSpeed,
		ForwardSpeed:     t.ForwardSpeed,
		SpeedMultiplier:  t.SpeedMultiplier,
		TimeScale:        t.TimeScale,
		SlowFactor:       t.SlowFactor,
		Substeps:         t.Substeps,
		TerminalVelocity: t.TerminalVelocity,
		ShipMaxRise:      t.Ship.MaxRise,
		ShipMaxFall:      t.Ship.MaxFall,
		PadBoost:         t.PadBoost,
	}
}

func (t Tuning) Validate() error {
	return t.Physics().Validate()
}

// LoadSpec unmarshals the YAML file name over a copy of base, so keys
// missing from the file keep base's values.
func LoadSpec[T any](name string, base T) (T, error) {
	data, err := Load(name)
	if err != nil {
		return base, fmt.Errorf("config: load %s: %w", name, err)
	}

	v := base
	if err := yaml.Unmarshal(data, &v); err != nil {
		return base, fmt.Errorf("config: unmarshal %s: %w", name, err)
	}
	return v, nil
}

// LoadTuning reads the tuning file at path over DefaultTuning. An empty path
// selects the embedded TuningFile; a named path that cannot be read is an
// error.
func LoadTuning(path string) (Tuning, error) {
	t, err := LoadSpec(path, DefaultTuning())
	if err != nil {
		return t, err
	}
	if err := t.Validate(); err != nil {
		if path == "" {
			path = "embedded:" + TuningFile
		}
		return t, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}
