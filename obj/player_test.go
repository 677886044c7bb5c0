package obj

import (
	"math"
	"testing"

	"github.com/milk9111/dashphys/common"
)

const frame = 1.0 / 60

func block(x, y float64) Object {
	return NewObject(IDBlock, x, y, DefaultBox())
}

func trigger(id int, x, y float64) Object {
	return NewObject(id, x, y, DefaultBox())
}

func newTestPlayer(x, y float64) *Player {
	p := NewPlayer(DefaultPhysics())
	p.Reset(x, y)
	return p
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPlayerRestsOnLevelFloor(t *testing.T) {
	p := newTestPlayer(0, common.HalfObjectSize)
	for i := 0; i < 30; i++ {
		p.Update(frame, Objects(nil))
	}
	if !p.OnGround() {
		t.Fatalf("expected grounded, motion=%s", p.Motion())
	}
	if p.Y != common.HalfObjectSize || p.VelocityY != 0 {
		t.Fatalf("expected rest at y=%v, got y=%v vy=%v", common.HalfObjectSize, p.Y, p.VelocityY)
	}
	if p.X <= 0 {
		t.Fatalf("player should auto-scroll, x=%v", p.X)
	}
}

func TestPlayerDeathAbortsFrame(t *testing.T) {
	t.Run("same_substep_after_trigger", func(t *testing.T) {
		p := newTestPlayer(15, 15)
		scene := Objects{
			trigger(IDShipPortal, 15, 15),
			NewObject(IDSpike, 15, 15, DefaultBox()),
		}
		p.Update(frame, scene)

		if !p.Dead() {
			t.Fatalf("expected dead")
		}
		if p.Mode != ModeShip {
			t.Fatalf("portal before the spike should still apply, mode=%s", p.Mode)
		}
		if p.X != 15 {
			t.Fatalf("no substep should integrate after death, x=%v", p.X)
		}
		if p.KilledBy() != 1 {
			t.Fatalf("KilledBy = %d, want 1", p.KilledBy())
		}
	})

	t.Run("later_substep", func(t *testing.T) {
		phys := DefaultPhysics()
		p := newTestPlayer(0, 15)
		scene := Objects{NewObject(IDSpike, 32.5, 15, DefaultBox())}
		p.Update(frame, scene)

		if !p.Dead() {
			t.Fatalf("expected dead in third substep")
		}
		step := frame / float64(phys.Substeps)
		dx := phys.xVelocity() * (step * phys.TimeScale)
		if !near(p.X, dx+dx) {
			t.Fatalf("expected two integrated substeps, x=%v want %v", p.X, dx+dx)
		}
	})

	t.Run("dead_is_frozen", func(t *testing.T) {
		p := newTestPlayer(15, 15)
		p.Update(frame, Objects{NewObject(IDSpike, 15, 15, DefaultBox())})
		x, y := p.X, p.Y
		for i := 0; i < 10; i++ {
			p.Update(frame, Objects(nil))
		}
		if !p.Dead() || p.X != x || p.Y != y {
			t.Fatalf("dead player moved: dead=%v (%v,%v)", p.Dead(), p.X, p.Y)
		}
		p.Reset(0, 15)
		if p.Dead() || p.KilledBy() != -1 {
			t.Fatalf("reset should revive the player")
		}
	})
}

func TestPlayerLandsFromTerminalFall(t *testing.T) {
	p := newTestPlayer(15, 44)
	p.VelocityY = -15
	p.Rotation = 130

	p.Update(frame, Objects{block(15, 15)})

	if p.Y != 45 {
		t.Fatalf("expected clamp to ground+15 = 45, got %v", p.Y)
	}
	if p.VelocityY != 0 {
		t.Fatalf("expected zero velocity, got %v", p.VelocityY)
	}
	if !p.OnGround() {
		t.Fatalf("expected grounded, motion=%s", p.Motion())
	}
	if math.Mod(p.Rotation, 90) != 0 {
		t.Fatalf("rotation %v is not a multiple of 90", p.Rotation)
	}
	if p.Rotation != 90 {
		t.Fatalf("rotation should snap to nearest quarter turn, got %v", p.Rotation)
	}
}

func TestPlayerLandingRotationSnaps(t *testing.T) {
	for _, vy := range []float64{-0.5, -3, -9.25, -15} {
		for _, rot := range []float64{0, 44, 46, 181, 359.9, -70} {
			p := newTestPlayer(15, 44)
			p.VelocityY = vy
			p.Rotation = rot
			p.Update(frame, Objects{block(15, 15)})
			if p.VelocityY != 0 || math.Mod(p.Rotation, 90) != 0 {
				t.Fatalf("vy=%v rot=%v: got vy=%v rotation=%v", vy, rot, p.VelocityY, p.Rotation)
			}
		}
	}
}

func TestPlayerDoesNotSnapWhileRisingFast(t *testing.T) {
	p := newTestPlayer(15, 40)
	p.VelocityY = 5
	p.Update(frame, Objects{block(15, 15)})
	if p.OnGround() {
		t.Fatalf("player moving up should pass through the step zone")
	}
	if p.Y <= 40 {
		t.Fatalf("expected upward motion, y=%v", p.Y)
	}
}

func TestPlayerWedgeDeath(t *testing.T) {
	p := newTestPlayer(0, 15)
	scene := Objects{block(30, 15)}
	for i := 0; i < 10 && !p.Dead(); i++ {
		p.Update(frame, scene)
	}
	if !p.Dead() {
		t.Fatalf("running into a wall should be fatal")
	}
	if p.KilledBy() != 0 {
		t.Fatalf("KilledBy = %d", p.KilledBy())
	}
	if p.X >= 30 {
		t.Fatalf("player passed through the wall, x=%v", p.X)
	}
}

func TestPlayerStepUp(t *testing.T) {
	cases := []struct {
		name   string
		height float64
		dead   bool
	}{
		{"within_step_height", 8, false},
		{"at_step_height", stepUpHeight, false},
		{"above_step_height", 12, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			slab := NewObject(IDBlock, 60, 0, common.Box{X: -15, Y: c.height, Width: 30, Height: c.height})
			p := newTestPlayer(0, 15)
			for i := 0; i < 60 && p.X < 60 && !p.Dead(); i++ {
				p.Update(frame, Objects{slab})
			}

			if p.Dead() != c.dead {
				t.Fatalf("dead = %v, want %v (x=%v y=%v)", p.Dead(), c.dead, p.X, p.Y)
			}
			if c.dead {
				if p.KilledBy() != 0 {
					t.Fatalf("KilledBy = %d", p.KilledBy())
				}
				return
			}
			if !p.OnGround() || p.Y != 15+c.height {
				t.Fatalf("expected to ride the slab at y=%v, got y=%v motion=%s", 15+c.height, p.Y, p.Motion())
			}
		})
	}
}

func blockRow(y float64) Objects {
	var row Objects
	for x := 0.0; x <= 900; x += common.ObjectSize {
		row = append(row, block(x, y))
	}
	return row
}

func TestPlayerCeilingFromBlocks(t *testing.T) {
	t.Run("flipped_cube_lands_under_blocks", func(t *testing.T) {
		p := newTestPlayer(0, 60)
		p.gravity = GravityFlipped
		scene := blockRow(150)
		for i := 0; i < 120 && !p.Dead(); i++ {
			p.Update(frame, scene)
		}
		if p.Dead() {
			t.Fatalf("died at (%v,%v)", p.X, p.Y)
		}
		if p.Y != 120 || p.VelocityY != 0 || !p.OnGround() {
			t.Fatalf("expected to rest under the row at y=120, got y=%v vy=%v motion=%s", p.Y, p.VelocityY, p.Motion())
		}
	})

	t.Run("ship_clamped_by_blocks", func(t *testing.T) {
		p := newTestPlayer(0, 100)
		p.Mode = ModeShip
		p.PortalY = 180
		p.PressJump()
		scene := blockRow(165)
		for i := 0; i < 120 && !p.Dead(); i++ {
			p.Update(frame, scene)
		}
		if p.Dead() {
			t.Fatalf("died at (%v,%v)", p.X, p.Y)
		}
		if p.Y != 135 || p.VelocityY != 0 {
			t.Fatalf("expected clamp under the row at y=135, got y=%v vy=%v", p.Y, p.VelocityY)
		}
	})
}

func TestPlayerJump(t *testing.T) {
	p := newTestPlayer(0, 15)
	p.Update(frame, Objects(nil))
	if !p.OnGround() {
		t.Fatalf("precondition: grounded")
	}

	p.PressJump()
	p.Update(frame, Objects(nil))

	if !p.Rising() {
		t.Fatalf("expected rising, got %s", p.Motion())
	}
	if p.Y <= 15 || p.VelocityY <= 0 {
		t.Fatalf("expected upward motion, y=%v vy=%v", p.Y, p.VelocityY)
	}
	if p.Buffered() {
		t.Fatalf("buffer is disarmed while grounded")
	}
	if !near(p.Rotation, 6) {
		t.Fatalf("expected 4 substeps of spin (6 degrees), got %v", p.Rotation)
	}

	p.ReleaseJump()
	for i := 0; i < 120 && !p.OnGround(); i++ {
		p.Update(frame, Objects(nil))
	}
	if !p.OnGround() || p.Y != 15 {
		t.Fatalf("expected landing on the floor, y=%v motion=%s", p.Y, p.Motion())
	}
}

func TestPlayerOrbNeedsBufferedPress(t *testing.T) {
	cases := []struct {
		name   string
		input  func(p *Player)
		wantUp bool
	}{
		{"pressed_before_contact", func(p *Player) { p.PressJump() }, true},
		{"no_input", func(p *Player) {}, false},
		{"held_without_press", func(p *Player) { p.SetHolding(true) }, false},
		{"pressed_then_released", func(p *Player) { p.PressJump(); p.ReleaseJump() }, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newTestPlayer(0, 100)
			c.input(p)
			p.Update(frame, Objects{trigger(IDYellowOrb, 0, 100)})
			if got := p.VelocityY > 0; got != c.wantUp {
				t.Fatalf("vy=%v, want upward=%v", p.VelocityY, c.wantUp)
			}
			if p.Buffered() {
				t.Fatalf("buffer should be consumed or never armed")
			}
		})
	}
}

func TestPlayerBlueOrbFlipsGravity(t *testing.T) {
	p := newTestPlayer(0, 100)
	p.PressJump()
	p.Update(frame, Objects{trigger(IDBlueOrb, 0, 100)})

	if !p.UpsideDown() {
		t.Fatalf("expected flipped gravity")
	}
	if p.Buffered() {
		t.Fatalf("orb should consume the buffer")
	}
	if p.VelocityY <= 0 {
		t.Fatalf("flipped player should move toward the ceiling, vy=%v", p.VelocityY)
	}
}

func TestPlayerPadBoost(t *testing.T) {
	p := newTestPlayer(0, 15)
	p.Update(frame, Objects{trigger(IDYellowPad, 0, 15)})
	if p.VelocityY < 10 || p.Y <= 15 {
		t.Fatalf("pad should launch the player, y=%v vy=%v", p.Y, p.VelocityY)
	}
}

func TestPlayerYellowGravityPortal(t *testing.T) {
	p := newTestPlayer(0, 100)
	p.Update(frame, Objects{trigger(IDYellowGravityPortal, 0, 100)})
	if !p.UpsideDown() {
		t.Fatalf("expected flipped gravity")
	}
	if p.VelocityY <= 0 || p.Y <= 100 {
		t.Fatalf("flipped player should fall upward, y=%v vy=%v", p.Y, p.VelocityY)
	}
}

func TestPlayerShip(t *testing.T) {
	t.Run("portal", func(t *testing.T) {
		p := newTestPlayer(0, 200)
		p.Rotation = 30
		p.Update(frame, Objects{trigger(IDShipPortal, 0, 200)})
		if p.Mode != ModeShip {
			t.Fatalf("mode = %s", p.Mode)
		}
		if p.PortalY != 180 {
			t.Fatalf("PortalY = %v, want 180", p.PortalY)
		}
	})

	t.Run("portal_floor_minimum", func(t *testing.T) {
		p := newTestPlayer(0, 40)
		p.Update(frame, Objects{trigger(IDShipPortal, 0, 40)})
		if p.PortalY != 150 {
			t.Fatalf("PortalY = %v, want 150", p.PortalY)
		}
		ground, ceiling := shipBounds(p)
		if ground != 0 || ceiling != 300 {
			t.Fatalf("bounds = (%v, %v)", ground, ceiling)
		}
	})

	t.Run("ceiling_clamp", func(t *testing.T) {
		p := newTestPlayer(0, 312)
		p.Mode = ModeShip
		p.PortalY = 180
		p.VelocityY = 8
		p.PressJump()
		p.Update(frame, Objects(nil))
		if p.Y != 315 || p.VelocityY != 0 {
			t.Fatalf("expected clamp under ceiling 330, y=%v vy=%v", p.Y, p.VelocityY)
		}
	})

	t.Run("velocity_bounds", func(t *testing.T) {
		phys := DefaultPhysics()
		p := newTestPlayer(0, 2000)
		p.Mode = ModeShip
		p.PortalY = 1800
		for i := 0; i < 120; i++ {
			p.Update(frame, Objects(nil))
			if p.VelocityY < phys.ShipMaxFall || p.VelocityY > phys.ShipMaxRise {
				t.Fatalf("velocity %v out of bounds", p.VelocityY)
			}
		}
		if p.VelocityY != phys.ShipMaxFall && !p.OnGround() {
			t.Fatalf("released ship should reach max fall speed, vy=%v", p.VelocityY)
		}
	})

	t.Run("cube_portal_restores", func(t *testing.T) {
		p := newTestPlayer(0, 100)
		p.Mode = ModeShip
		p.Update(frame, Objects{trigger(IDCubePortal, 0, 100)})
		if p.Mode != ModeCube {
			t.Fatalf("mode = %s", p.Mode)
		}
	})
}

func TestPlayerUnwiredModesKeepVelocity(t *testing.T) {
	for _, m := range []Mode{ModeUfo, ModeBall, ModeRobot, ModeSpider} {
		t.Run(m.String(), func(t *testing.T) {
			p := newTestPlayer(0, 100)
			p.Mode = m
			p.VelocityY = 3
			p.Update(frame, Objects(nil))
			if p.VelocityY != 3 {
				t.Fatalf("velocity changed to %v", p.VelocityY)
			}
			if p.Rotation >= 0 {
				t.Fatalf("nose should tilt up while rising, rotation=%v", p.Rotation)
			}
		})
	}
}

func TestModeTableIsExhaustive(t *testing.T) {
	for m := Mode(0); m < modeCount; m++ {
		if modeTable[m].bounds == nil {
			t.Fatalf("mode %s has no bounds", m)
		}
		if modeTable[m].gravityScale <= 0 {
			t.Fatalf("mode %s has no gravity scale", m)
		}
	}
}

func TestPhysicsValidate(t *testing.T) {
	if err := DefaultPhysics().Validate(); err != nil {
		t.Fatalf("default physics invalid: %v", err)
	}
	bad := DefaultPhysics()
	bad.Substeps = 0
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for zero substeps")
	}
}
