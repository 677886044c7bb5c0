package main

import (
	"fmt"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashphys/config"
	"github.com/milk9111/dashphys/levels"
	"github.com/milk9111/dashphys/script"
	"github.com/milk9111/dashphys/world"
	"go.uber.org/zap"
	"golang.design/x/clipboard"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	tickDt = 1.0 / 60
	// statusFrames is how long a status message stays on screen.
	statusFrames = 120
)

type Game struct {
	frames int

	src     world.Source
	level   *world.Level
	log     *zap.Logger
	input   *Input
	camera  *Camera
	ui      *ebitenui.UI
	watcher *config.Watcher

	macro  *script.Macro
	driver *script.Driver

	paused    bool
	quit      bool
	debug     bool
	clipboard bool

	status      string
	statusTimer int
}

type GameOptions struct {
	Source    world.Source
	Macro     *script.Macro
	Start     int
	Debug     bool
	Watcher   *config.Watcher
	Clipboard bool
}

func NewGame(level *world.Level, opts GameOptions, log *zap.Logger) *Game {
	g := &Game{
		src:       opts.Source,
		level:     level,
		log:       log,
		input:     NewInput(),
		camera:    NewCamera(baseWidth, baseHeight, 1),
		watcher:   opts.Watcher,
		macro:     opts.Macro,
		debug:     opts.Debug,
		clipboard: opts.Clipboard,
	}
	if g.macro != nil {
		g.driver = script.NewDriver(g.macro)
	}
	g.ui = NewPauseUI(g)

	g.level.SetStartPos(opts.Start)
	g.reset()
	return g
}

func (g *Game) reset() {
	g.level.Reset()
	if g.driver != nil {
		g.driver.Restart(g.level)
	}
	g.camera.SetWorldBounds(g.level.Bounds())
	g.camera.SnapTo(g.cameraTarget())
}

func (g *Game) nextCheckpoint() {
	i := g.level.NextStartPos()
	g.reset()
	g.setStatus(fmt.Sprintf("checkpoint %d/%d", i+1, len(g.level.Checkpoints())))
}

func (g *Game) cameraTarget() (float64, float64) {
	p := g.level.Player
	return p.X + baseWidth*0.2, p.Y
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusTimer = statusFrames
}

// retune swaps the physics constants in place, keeping the run going.
func (g *Game) retune(file string) {
	t, err := config.LoadTuning(file)
	if err != nil {
		g.log.Error("tuning reload failed", zap.String("file", file), zap.Error(err))
		g.setStatus("tuning reload failed: " + err.Error())
		return
	}
	g.level.SetPhysics(t.Physics())
	g.setStatus("retuned from " + file)
}

// reload rebuilds the level from disk and returns to the same checkpoint.
// A change to the tuning file alone only retunes the running level.
func (g *Game) reload(file string) {
	if file == g.src.Tuning {
		g.retune(file)
		return
	}
	lvl, err := world.Open(g.src, g.log)
	if err != nil {
		g.log.Error("reload failed", zap.String("file", file), zap.Error(err))
		g.setStatus("reload failed: " + err.Error())
		return
	}
	if g.macro != nil && file == g.macro.Name() {
		if m, err := script.Load(file); err == nil {
			g.macro = m
			g.driver = script.NewDriver(m)
		} else {
			g.log.Error("macro reload failed", zap.Error(err))
		}
	}
	lvl.SetStartPos(g.level.ActiveCheckpoint())
	g.level = lvl
	g.reset()
	g.setStatus("reloaded " + file)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.Warn("watch error", zap.Error(err))
			}
		default:
			return
		}
	}
}

// copyPose puts the player's position on the clipboard as a start-position
// record that can be pasted into a level file.
func (g *Game) copyPose() {
	if !g.clipboard {
		g.setStatus("clipboard unavailable")
		return
	}
	p := g.level.Player
	record := levels.Encode("", nil, []cp.Vector{levels.DefaultStart, {X: p.X, Y: p.Y}})
	record = strings.TrimPrefix(record, ";")
	clipboard.Write(clipboard.FmtText, []byte(record))
	g.setStatus("copied " + record)
}

func (g *Game) toggleAutoplay() {
	if g.macro == nil {
		g.setStatus("no macro loaded (-macro)")
		return
	}
	if g.driver != nil {
		g.driver.Restart(g.level)
		g.driver = nil
		g.setStatus("autoplay off")
		return
	}
	g.driver = script.NewDriver(g.macro)
	g.setStatus("autoplay on")
}

func (g *Game) Update() error {
	g.frames++
	if g.statusTimer > 0 {
		g.statusTimer--
	}

	g.input.Update()
	if g.input.QuitPressed || g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	switch {
	case g.input.ResetPressed:
		g.reset()
	case g.input.NextPressed:
		g.nextCheckpoint()
	case g.input.CopyPressed:
		g.copyPose()
	case g.input.DebugPressed:
		g.debug = !g.debug
	case g.input.AutoplayPressed:
		g.toggleAutoplay()
	}

	if g.driver != nil {
		if err := g.driver.Step(g.level, script.ViewOf(g.level.Player)); err != nil {
			g.log.Error("macro failed, autoplay off", zap.Error(err))
			g.driver = nil
		}
	} else {
		g.level.HoldJump(g.input.JumpHeld)
	}

	g.level.Update(tickDt)
	g.camera.Update(g.cameraTarget())
	return nil
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
