package main

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashphys/common"
)

// floorMargin is how far above the bottom edge of the view the level floor
// sits when the camera is at its lowest.
const floorMargin = 90.0

// Camera maps the y-up world onto the y-down screen, centered on
// (PosX, PosY).
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	zoom    float64

	// smoothing factor (0..1). higher -> faster follow
	smooth float64
	top    float64
}

func NewCamera(screenW, screenH int, zoom float64) *Camera {
	return &Camera{screenW: screenW, screenH: screenH, zoom: zoom, smooth: 0.15, top: math.Inf(1)}
}

// SetWorldBounds stops the camera from scrolling above the level's highest
// object.
func (c *Camera) SetWorldBounds(bb cp.BB) {
	c.top = math.Inf(1)
	if bb.T > 0 {
		c.top = bb.T
	}
}

func (c *Camera) viewSize() (float64, float64) {
	return float64(c.screenW) / c.zoom, float64(c.screenH) / c.zoom
}

// Update moves the camera toward the target. Call once per tick.
func (c *Camera) Update(targetX, targetY float64) {
	c.PosX = common.Lerp(c.PosX, targetX, c.smooth)
	c.PosY = common.Lerp(c.PosY, targetY, c.smooth)
	c.clamp()
}

// SnapTo places the camera without smoothing, e.g. after a reset.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX, c.PosY = x, y
	c.clamp()
}

func (c *Camera) clamp() {
	_, viewH := c.viewSize()
	minY := viewH/2 - floorMargin
	maxY := math.Max(minY, c.top-viewH/2+floorMargin)
	c.PosY = common.Clamp(c.PosY, minY, maxY)
}

// ToScreen converts a world point to screen pixels.
func (c *Camera) ToScreen(x, y float64) (float32, float32) {
	sx := (x-c.PosX)*c.zoom + float64(c.screenW)/2
	sy := float64(c.screenH)/2 - (y-c.PosY)*c.zoom
	return float32(sx), float32(sy)
}

// Visible reports whether any part of b is on screen.
func (c *Camera) Visible(b common.Box) bool {
	viewW, viewH := c.viewSize()
	view := common.CenteredBox(c.PosX, c.PosY, viewW, viewH)
	return view.Intersects(b)
}
