package obj

import (
	"math"

	"github.com/milk9111/dashphys/common"
)

// Mode is the player's vehicle. Only Cube and Ship have wired physics.
type Mode uint8

const (
	ModeCube Mode = iota
	ModeShip
	ModeUfo
	ModeBall
	ModeRobot
	ModeSpider

	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeCube:
		return "cube"
	case ModeShip:
		return "ship"
	case ModeUfo:
		return "ufo"
	case ModeBall:
		return "ball"
	case ModeRobot:
		return "robot"
	case ModeSpider:
		return "spider"
	}
	return "unknown"
}

// Motion is the vertical motion state. Dead is terminal until Reset.
type Motion uint8

const (
	MotionFalling Motion = iota
	MotionRising
	MotionGrounded
	MotionDead
)

func (m Motion) String() string {
	switch m {
	case MotionFalling:
		return "falling"
	case MotionRising:
		return "rising"
	case MotionGrounded:
		return "grounded"
	case MotionDead:
		return "dead"
	}
	return "unknown"
}

// Orientation is the sign applied to gravity.
type Orientation int8

const (
	GravityNormal  Orientation = 1
	GravityFlipped Orientation = -1
)

const (
	innerBoxSize = common.ObjectSize * 0.3
	stepUpHeight = common.ObjectSize / 3
	// Objects below this vertical speed can become the floor.
	floorSnapVelocity = 1.0
	blueOrbScale      = -0.8
)

// Player is the single simulated entity. X and Y are the center of its box.
type Player struct {
	X, Y      float64
	VelocityY float64
	Rotation  float64 // degrees, clockwise on screen
	Mode      Mode
	// PortalY is the grid-snapped altitude of the last ship portal.
	PortalY float64

	phys     Physics
	motion   Motion
	gravity  Orientation
	holding  bool
	buffered bool
	killedBy int
}

// NewPlayer creates a player at the origin using phys.
func NewPlayer(phys Physics) *Player {
	p := &Player{phys: phys}
	p.Reset(0, common.HalfObjectSize)
	return p
}

// Physics returns the constants the player integrates with.
func (p *Player) Physics() Physics {
	return p.phys
}

// SetPhysics swaps the integration constants, e.g. after a tuning reload.
func (p *Player) SetPhysics(phys Physics) {
	p.phys = phys
}

// Reset restores kinematic defaults and places the player at (x, y). Held
// input is kept; the orb buffer is disarmed.
func (p *Player) Reset(x, y float64) {
	p.X, p.Y = x, y
	p.VelocityY = 0
	p.Rotation = 0
	p.Mode = ModeCube
	p.PortalY = 0
	p.motion = MotionFalling
	p.gravity = GravityNormal
	p.buffered = false
	p.killedBy = -1
}

// BoundingBox is the outer box used for triggers and floors.
func (p *Player) BoundingBox() common.Box {
	return common.CenteredBox(p.X, p.Y, common.ObjectSize, common.ObjectSize)
}

// InnerBoundingBox is the small core box; solid contact with it is fatal.
func (p *Player) InnerBoundingBox() common.Box {
	return common.CenteredBox(p.X, p.Y, innerBoxSize, innerBoxSize)
}

// PressJump must be called once per physical press.
func (p *Player) PressJump() {
	p.holding = true
	p.buffered = true
}

// ReleaseJump must be called once per physical release.
func (p *Player) ReleaseJump() {
	p.holding = false
	p.buffered = false
}

// SetHolding updates the held state without arming or disarming the orb
// buffer, for hosts that poll input every frame.
func (p *Player) SetHolding(held bool) {
	p.holding = held
}

func (p *Player) Dead() bool           { return p.motion == MotionDead }
func (p *Player) OnGround() bool       { return p.motion == MotionGrounded }
func (p *Player) Rising() bool         { return p.motion == MotionRising }
func (p *Player) Motion() Motion       { return p.motion }
func (p *Player) Gravity() Orientation { return p.gravity }
func (p *Player) UpsideDown() bool     { return p.gravity == GravityFlipped }
func (p *Player) Holding() bool        { return p.holding }
func (p *Player) Buffered() bool       { return p.buffered }

// KilledBy returns the index of the object that killed the player, or -1.
func (p *Player) KilledBy() int {
	return p.killedBy
}

func (p *Player) kill(index int) {
	p.motion = MotionDead
	p.killedBy = index
}

func (p *Player) isFalling() bool {
	return p.VelocityY < p.phys.fallingThreshold()
}

// Update advances the player by dt seconds against scene, split into
// Physics.Substeps equal substeps. A fatal contact in any substep ends the
// whole call. Dead players and non-positive dt are ignored.
func (p *Player) Update(dt float64, scene Scene) {
	if p.Dead() || dt <= 0 {
		return
	}
	step := dt / float64(p.phys.Substeps)
	for i := 0; i < p.phys.Substeps; i++ {
		c := p.collide(scene)
		if c.fatal {
			break
		}
		p.integrate(step, c)
	}
}

func (p *Player) integrate(step float64, c contact) {
	refDt := step * p.phys.TimeScale
	slowDt := refDt * p.phys.SlowFactor

	if profile := modeTable[p.Mode]; profile.jump != nil {
		profile.jump(p, p.phys.Gravity*profile.gravityScale, slowDt)
	}

	dx := p.phys.xVelocity() * refDt
	dy := p.VelocityY * slowDt
	p.X += dx
	p.Y += dy

	g := float64(p.gravity)
	profile := modeTable[p.Mode]
	switch {
	case (p.Y-common.HalfObjectSize*g)*g <= c.ground*g:
		p.Y = c.ground + common.HalfObjectSize*g
		p.VelocityY = 0
		p.motion = MotionGrounded
		if profile.spins {
			p.Rotation = common.RoundTo(p.Rotation, 90)
		} else {
			p.Rotation = 0
		}
	case p.Mode == ModeShip && p.Y+common.HalfObjectSize >= c.ceiling && p.VelocityY > 0:
		p.Y = c.ceiling - common.HalfObjectSize
		p.VelocityY = 0
		p.Rotation = 0
	default:
		if p.motion == MotionGrounded {
			p.motion = MotionFalling
		}
		if profile.spins {
			p.Rotation += p.phys.RotationSpeed * step * g
		} else {
			// nose follows the velocity vector
			p.Rotation = -math.Atan(dy/dx) * 180 / math.Pi
		}
	}
}
