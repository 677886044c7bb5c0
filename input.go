package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input polls device state once per frame. The jump button is the union of
// keyboard, mouse and gamepad sources and is reported as a held level; the
// level derives press and release edges from it.
type Input struct {
	JumpHeld bool

	PausePressed    bool
	ResetPressed    bool
	NextPressed     bool
	CopyPressed     bool
	DebugPressed    bool
	AutoplayPressed bool
	QuitPressed     bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	held := ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyUp) ||
		ebiten.IsKeyPressed(ebiten.KeyW) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	var gpStart, gpReset bool
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		held = held || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpStart = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
		gpReset = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightRight)
	}

	i.JumpHeld = held

	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) || gpStart
	i.ResetPressed = inpututil.IsKeyJustPressed(ebiten.KeyR) || gpReset
	i.NextPressed = inpututil.IsKeyJustPressed(ebiten.KeyN)
	i.CopyPressed = inpututil.IsKeyJustPressed(ebiten.KeyC)
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	i.AutoplayPressed = inpututil.IsKeyJustPressed(ebiten.KeyA)
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyF12)
}
