package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/dashphys/common"
	"github.com/milk9111/dashphys/obj"
	"golang.org/x/image/colornames"
)

var (
	backgroundColor = color.RGBA{R: 0x12, G: 0x2a, B: 0x5c, A: 0xff}
	floorColor      = colornames.Lightsteelblue
)

func objectColor(o *obj.Object) color.Color {
	switch {
	case o.Death:
		return colornames.Crimson
	case o.ID == obj.IDYellowPad || o.ID == obj.IDYellowOrb:
		return colornames.Gold
	case o.ID == obj.IDBlueOrb || o.ID == obj.IDYellowGravityPortal || o.ID == obj.IDBlueGravityPortal:
		return colornames.Deepskyblue
	case o.ID == obj.IDShipPortal:
		return colornames.Hotpink
	case o.ID == obj.IDCubePortal:
		return colornames.Limegreen
	case !o.Solid:
		return colornames.Gray
	}
	return colornames.White
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	_, floorY := g.camera.ToScreen(0, 0)
	vector.StrokeLine(screen, 0, floorY, baseWidth, floorY, 2, floorColor, false)

	for i, o := range g.level.Objects() {
		box := o.WorldBox()
		if !g.camera.Visible(box) {
			continue
		}
		g.strokeBox(screen, box, objectColor(&o), 1.5)
		if g.debug && i == g.level.Player.KilledBy() {
			x, y := g.camera.ToScreen(box.Left(), box.Top())
			vector.FillRect(screen, x, y, float32(box.Width*g.camera.zoom), float32(box.Height*g.camera.zoom), color.RGBA{R: 255, A: 96}, false)
		}
	}

	if g.debug {
		for i, c := range g.level.Checkpoints() {
			x, y := g.camera.ToScreen(c.X, c.Y)
			clr := colornames.Gray
			if i == g.level.ActiveCheckpoint() {
				clr = colornames.Lime
			}
			vector.StrokeCircle(screen, x, y, 6, 1, clr, true)
		}
	}

	g.drawPlayer(screen)
	g.drawHUD(screen)

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) strokeBox(screen *ebiten.Image, b common.Box, clr color.Color, width float32) {
	x, y := g.camera.ToScreen(b.Left(), b.Top())
	z := g.camera.zoom
	vector.StrokeRect(screen, x, y, float32(b.Width*z), float32(b.Height*z), width, clr, false)
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	p := g.level.Player

	clr := color.Color(colornames.Lawngreen)
	if p.Dead() {
		clr = colornames.Red
	}

	// rotated square; rotation is clockwise on screen
	cx, cy := g.camera.ToScreen(p.X, p.Y)
	half := common.HalfObjectSize * g.camera.zoom
	sin, cos := math.Sincos(p.Rotation * math.Pi / 180)
	corners := [4][2]float64{{-half, -half}, {half, -half}, {half, half}, {-half, half}}
	var pts [4][2]float32
	for i, c := range corners {
		pts[i][0] = cx + float32(c[0]*cos-c[1]*sin)
		pts[i][1] = cy + float32(c[0]*sin+c[1]*cos)
	}
	for i := range pts {
		j := (i + 1) % len(pts)
		vector.StrokeLine(screen, pts[i][0], pts[i][1], pts[j][0], pts[j][1], 2, clr, true)
	}

	if g.debug {
		g.strokeBox(screen, p.BoundingBox(), colornames.Yellow, 1)
		g.strokeBox(screen, p.InnerBoundingBox(), colornames.Orange, 1)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	p := g.level.Player
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))

	line := fmt.Sprintf("mode %s  %s  x %.1f  y %.1f  vy %.2f  rot %.0f  checkpoint %d/%d",
		p.Mode, p.Motion(), p.X, p.Y, p.VelocityY, p.Rotation,
		g.level.ActiveCheckpoint()+1, len(g.level.Checkpoints()))
	if p.UpsideDown() {
		line += "  flipped"
	}
	if g.driver != nil {
		line += fmt.Sprintf("  autoplay %s", g.macro.Name())
	}
	ebitenutil.DebugPrintAt(screen, line, 0, 16)

	if p.Dead() {
		ebitenutil.DebugPrintAt(screen, "dead - R to retry, N for next checkpoint", baseWidth/2-120, baseHeight/2-60)
	}
	if g.statusTimer > 0 {
		ebitenutil.DebugPrintAt(screen, g.status, 0, 32)
	}
}
