package obj

import (
	"math"

	"github.com/milk9111/dashphys/common"
)

// contact is the result of one substep's collision scan. fatal means the
// player died and the remaining substeps of the frame must be skipped.
type contact struct {
	ground  float64
	ceiling float64
	fatal   bool
}

// collide scans scene in order, firing triggers and narrowing the ground and
// ceiling for this substep. Ground and ceiling are swapped when gravity is
// flipped.
func (p *Player) collide(scene Scene) contact {
	ground, ceiling := modeTable[p.Mode].bounds(p)
	outer := p.BoundingBox()

	for i, o := range scene.Query(outer) {
		box := o.WorldBox()
		if !outer.Intersects(box) {
			continue
		}
		if o.Death {
			p.kill(i)
			return contact{fatal: true}
		}

		p.trigger(o)

		if !o.Solid {
			continue
		}

		bottom := p.Y - common.HalfObjectSize
		top := math.Max(box.Top()-stepUpHeight, box.Bottom())
		if bottom >= top {
			if box.Top() > ground && p.VelocityY < floorSnapVelocity {
				ground = box.Top()
			}
			continue
		}
		if p.InnerBoundingBox().Intersects(box) {
			p.kill(i)
			return contact{fatal: true}
		}
		if p.Y+common.HalfObjectSize < top && box.Bottom() < ceiling {
			ceiling = box.Bottom()
		}
	}

	if p.gravity == GravityFlipped {
		ground, ceiling = ceiling, ground
	}
	return contact{ground: ground, ceiling: ceiling}
}

// trigger applies the contact behaviour of o. It runs for solid and
// non-solid objects alike.
func (p *Player) trigger(o *Object) {
	switch o.ID {
	case IDShipPortal:
		p.Mode = ModeShip
		p.Rotation = 0
		p.PortalY = math.Max(common.SnapToGrid(o.Y), shipFloorMin)
	case IDCubePortal:
		p.Mode = ModeCube
	case IDYellowGravityPortal:
		p.gravity = GravityFlipped
	case IDYellowPad:
		p.VelocityY = p.phys.PadBoost
	case IDYellowOrb:
		if p.buffered {
			p.VelocityY = p.phys.JumpAccel
			p.buffered = false
		}
	case IDBlueOrb:
		if p.buffered {
			p.gravity = -p.gravity
			p.VelocityY = p.phys.JumpAccel * blueOrbScale * float64(p.gravity)
			p.buffered = false
		}
	}
}
