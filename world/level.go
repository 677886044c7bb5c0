// Package world owns a decoded level and its player.
package world

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashphys/levels"
	"github.com/milk9111/dashphys/logging"
	"github.com/milk9111/dashphys/obj"
	"go.uber.org/zap"
)

// Level is the simulation aggregate: immutable objects, one player and a
// cyclic list of start positions.
type Level struct {
	Header string
	Player *obj.Player

	objects     []obj.Object
	collision   *obj.CollisionWorld
	checkpoints []cp.Vector
	active      int

	log *zap.Logger
}

// New builds a level from decoded data and places the player at the level
// start.
func New(d *levels.Data, phys obj.Physics, log *zap.Logger) *Level {
	checkpoints := d.Checkpoints
	if len(checkpoints) == 0 {
		checkpoints = []cp.Vector{levels.DefaultStart}
	}

	l := &Level{
		Header:      d.Header,
		Player:      obj.NewPlayer(phys),
		objects:     d.Objects,
		collision:   obj.NewCollisionWorld(d.Objects),
		checkpoints: checkpoints,
		log:         logging.OrNop(log),
	}
	l.Reset()
	return l
}

// Load reads, decodes and builds the level at path.
func Load(path string, table *levels.HitboxTable, phys obj.Physics, log *zap.Logger) (*Level, error) {
	log = logging.OrNop(log)

	d, err := levels.ReadFile(path, table)
	if err != nil {
		return nil, err
	}
	log.Info("level loaded",
		zap.String("path", path),
		zap.Int("objects", len(d.Objects)),
		zap.Int("checkpoints", len(d.Checkpoints)),
		zap.Int("triggers_skipped", d.Triggers),
		zap.Int("unmapped_skipped", d.Unmapped),
	)
	return New(d, phys, log), nil
}

// Objects returns the level's objects in file order. Callers must not
// modify them.
func (l *Level) Objects() []obj.Object {
	return l.objects
}

func (l *Level) Scene() obj.Scene {
	return l.collision
}

// Bounds is the union of every object's box.
func (l *Level) Bounds() cp.BB {
	return l.collision.Bounds()
}

func (l *Level) Checkpoints() []cp.Vector {
	return l.checkpoints
}

func (l *Level) ActiveCheckpoint() int {
	return l.active
}

// Reset restores the player's kinematic state and moves it to the active
// checkpoint. It is the only way out of death.
func (l *Level) Reset() {
	c := l.checkpoints[l.active]
	l.Player.Reset(c.X, c.Y)
}

// NextStartPos selects the following checkpoint, wrapping to the level start,
// and returns its index. The player is not moved until Reset.
func (l *Level) NextStartPos() int {
	l.active = (l.active + 1) % len(l.checkpoints)
	l.log.Debug("start position selected", zap.Int("index", l.active))
	return l.active
}

// SetStartPos selects checkpoint i modulo the checkpoint count.
func (l *Level) SetStartPos(i int) int {
	n := len(l.checkpoints)
	l.active = ((i % n) + n) % n
	return l.active
}

// Update advances the simulation by dt seconds.
func (l *Level) Update(dt float64) {
	wasDead := l.Player.Dead()
	l.Player.Update(dt, l.collision)
	if !wasDead && l.Player.Dead() {
		if o, ok := l.Killer(); ok {
			l.log.Debug("player died",
				zap.Int("object", l.Player.KilledBy()),
				zap.Int("id", o.ID),
				zap.Float64("x", l.Player.X),
				zap.Float64("y", l.Player.Y),
			)
		}
	}
}

func (l *Level) PressJump()   { l.Player.PressJump() }
func (l *Level) ReleaseJump() { l.Player.ReleaseJump() }

// HoldJump reconciles the physical jump button with the player's held state,
// pressing or releasing only on a change. Transitions missed while the
// simulation was not being stepped are applied on the next call.
func (l *Level) HoldJump(held bool) {
	switch h := l.Player.Holding(); {
	case held && !h:
		l.Player.PressJump()
	case !held && h:
		l.Player.ReleaseJump()
	}
}

// Killer returns the object that killed the player.
func (l *Level) Killer() (obj.Object, bool) {
	i := l.Player.KilledBy()
	if i < 0 || i >= len(l.objects) {
		return obj.Object{}, false
	}
	return l.objects[i], true
}

// SetPhysics swaps the integration constants without resetting the player.
// They stay in effect across Reset.
func (l *Level) SetPhysics(phys obj.Physics) {
	l.Player.SetPhysics(phys)
	l.log.Info("physics updated", zap.Float64("speed", phys.SpeedMultiplier), zap.Float64("gravity", phys.Gravity))
}
