package main

import (
	"github.com/milk9111/dashphys/obj"
	"github.com/milk9111/dashphys/script"
	"github.com/milk9111/dashphys/world"
	"go.uber.org/zap"
)

const frameDt = 1.0 / 60

// sample is one pose in the trace.
type sample struct {
	Frame     int
	X, Y      float64
	VelocityY float64
	Rotation  float64
	Mode      obj.Mode
}

type result struct {
	Frames     int
	Dead       bool
	KilledByID int
	Presses    int
	Final      sample
	Trace      []sample
}

// simulate runs lvl for up to frames frames, driving input from driver when
// it is non-nil. It stops early on death.
func simulate(lvl *world.Level, driver *script.Driver, frames, traceEvery int) (result, error) {
	var res result
	p := lvl.Player
	for f := 0; f < frames; f++ {
		if driver != nil {
			if err := driver.Step(lvl, script.ViewOf(p)); err != nil {
				return res, err
			}
		}
		lvl.Update(frameDt)
		res.Frames = f + 1

		if traceEvery > 0 && f%traceEvery == 0 {
			res.Trace = append(res.Trace, poseOf(f, p))
		}
		if p.Dead() {
			res.Dead = true
			break
		}
	}

	res.Final = poseOf(res.Frames, p)
	if o, ok := lvl.Killer(); ok {
		res.KilledByID = o.ID
	}
	if driver != nil {
		res.Presses = driver.Presses
	}
	return res, nil
}

func poseOf(frame int, p *obj.Player) sample {
	return sample{
		Frame:     frame,
		X:         p.X,
		Y:         p.Y,
		VelocityY: p.VelocityY,
		Rotation:  p.Rotation,
		Mode:      p.Mode,
	}
}

func logResult(log *zap.Logger, res result) {
	for _, s := range res.Trace {
		log.Debug("pose",
			zap.Int("frame", s.Frame),
			zap.Float64("x", s.X),
			zap.Float64("y", s.Y),
			zap.Float64("vy", s.VelocityY),
			zap.Float64("rotation", s.Rotation),
			zap.Stringer("mode", s.Mode),
		)
	}

	fields := []zap.Field{
		zap.Int("frames", res.Frames),
		zap.Int("presses", res.Presses),
		zap.Float64("x", res.Final.X),
		zap.Float64("y", res.Final.Y),
		zap.Stringer("mode", res.Final.Mode),
	}
	if res.Dead {
		log.Info("player died", append(fields, zap.Int("killed_by_id", res.KilledByID))...)
		return
	}
	log.Info("run finished", fields...)
}
