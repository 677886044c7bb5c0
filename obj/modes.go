package obj

import (
	"math"

	"github.com/milk9111/dashphys/common"
)

const (
	cubeCeiling    = 300 * common.ObjectSize
	shipFloorMin   = 5 * common.ObjectSize
	shipCeilingGap = 10 * common.ObjectSize
)

// modeProfile describes how a mode bounds, integrates and rotates the player.
// A nil jump leaves velocity untouched: Ufo, Ball, Robot and Spider are
// declared but have no physics yet.
type modeProfile struct {
	gravityScale float64
	spins        bool
	bounds       func(p *Player) (ground, ceiling float64)
	jump         func(p *Player, gravity, slowDt float64)
}

var modeTable = [modeCount]modeProfile{
	ModeCube:   {gravityScale: 1, spins: true, bounds: cubeBounds, jump: (*Player).cubeJump},
	ModeShip:   {gravityScale: 1, bounds: shipBounds, jump: (*Player).shipJump},
	ModeUfo:    {gravityScale: 1, bounds: openBounds},
	ModeBall:   {gravityScale: 0.6, bounds: openBounds},
	ModeRobot:  {gravityScale: 0.9, bounds: openBounds},
	ModeSpider: {gravityScale: 0.6, bounds: openBounds},
}

func cubeBounds(*Player) (float64, float64) {
	return 0, cubeCeiling
}

func shipBounds(p *Player) (float64, float64) {
	ground := math.Max(common.SnapToGrid(p.PortalY), shipFloorMin) - shipFloorMin
	return ground, ground + shipCeilingGap
}

func openBounds(*Player) (float64, float64) {
	return 0, shipCeilingGap
}

// cubeJump runs the grounded/rising/falling machine of cube mode.
func (p *Player) cubeJump(gravity, slowDt float64) {
	flip := float64(p.gravity)

	if p.motion == MotionGrounded {
		p.buffered = false
	}

	switch {
	case p.holding && p.motion == MotionGrounded:
		p.motion = MotionRising
		p.VelocityY = flip * p.phys.JumpAccel
	case p.motion == MotionRising:
		p.VelocityY -= gravity * slowDt * flip
		if p.VelocityY <= p.phys.fallingThreshold() {
			p.motion = MotionFalling
		}
	default:
		if p.isFalling() {
			p.motion = MotionFalling
		}
		p.VelocityY -= gravity * slowDt * flip
		if p.gravity == GravityFlipped {
			p.VelocityY = math.Min(p.VelocityY, p.phys.TerminalVelocity)
		} else {
			p.VelocityY = math.Max(p.VelocityY, -p.phys.TerminalVelocity)
		}
	}
}

// shipJump applies thrust: holding pushes up, releasing lets the ship sink,
// with a stronger pull while still rising.
func (p *Player) shipJump(gravity, slowDt float64) {
	flip := float64(p.gravity)
	falling := p.isFalling()

	accel := 0.8
	if p.holding {
		accel = -1.0
	}
	if !p.holding && !falling {
		accel = 1.2
	}

	boost := 0.4
	if p.holding && falling {
		boost = 0.5
	}

	p.VelocityY -= gravity * slowDt * flip * accel * boost
	p.VelocityY = common.Clamp(p.VelocityY, p.phys.ShipMaxFall, p.phys.ShipMaxRise)
}
