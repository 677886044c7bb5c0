package script

// Jumper receives edge-triggered jump input.
type Jumper interface {
	PressJump()
	ReleaseJump()
}

// Driver feeds a macro's per-frame held state to a Jumper, calling
// PressJump and ReleaseJump only when the held state changes.
type Driver struct {
	macro *Macro
	frame int
	held  bool

	Presses int
}

func NewDriver(m *Macro) *Driver {
	return &Driver{macro: m}
}

// Step evaluates the macro for the current frame and advances the frame
// counter.
func (d *Driver) Step(j Jumper, view View) error {
	held, err := d.macro.Held(d.frame, view)
	if err != nil {
		return err
	}
	d.frame++

	switch {
	case held && !d.held:
		j.PressJump()
		d.Presses++
	case !held && d.held:
		j.ReleaseJump()
	}
	d.held = held
	return nil
}

func (d *Driver) Frame() int { return d.frame }
func (d *Driver) Held() bool { return d.held }

// Restart rewinds the frame counter, releasing input first if it is held.
func (d *Driver) Restart(j Jumper) {
	if d.held {
		j.ReleaseJump()
		d.held = false
	}
	d.frame = 0
}
