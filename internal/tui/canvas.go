package tui

import (
	"math"
	"strings"
)

// canvas is a fixed-size rune grid with (0,0) at the top-left.
type canvas struct {
	w, h  int
	cells [][]rune
}

func newCanvas(w, h int) *canvas {
	cells := make([][]rune, h)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", w))
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(x, y int, r rune) {
	if x >= 0 && x < c.w && y >= 0 && y < c.h {
		c.cells[y][x] = r
	}
}

func (c *canvas) rows() []string {
	out := make([]string, c.h)
	for i, row := range c.cells {
		out[i] = string(row)
	}
	return out
}

// bounds is the side-view extent of a flight: horizontal distance from the
// launch point against altitude.
type bounds struct {
	minD, maxD float64
	minZ, maxZ float64
}

func boundsOf(frames []Frame) bounds {
	b := bounds{minD: math.Inf(1), maxD: math.Inf(-1), minZ: math.Inf(1), maxZ: math.Inf(-1)}
	for _, f := range frames {
		if !finite(f.Distance) || !finite(f.Position.Z) {
			continue
		}
		b.minD = math.Min(b.minD, f.Distance)
		b.maxD = math.Max(b.maxD, f.Distance)
		b.minZ = math.Min(b.minZ, f.Position.Z)
		b.maxZ = math.Max(b.maxZ, f.Position.Z)
	}
	if math.IsInf(b.minD, 1) {
		return bounds{maxD: 1, maxZ: 1}
	}
	if b.maxD-b.minD < 1e-9 {
		b.maxD = b.minD + 1
	}
	if b.maxZ-b.minZ < 1e-9 {
		b.maxZ = b.minZ + 1
	}
	return b
}

// project maps a frame into canvas cells. ok is false for non-finite frames.
func (b bounds) project(f Frame, w, h int) (x, y int, ok bool) {
	if !finite(f.Distance) || !finite(f.Position.Z) {
		return 0, 0, false
	}
	x = int((f.Distance - b.minD) / (b.maxD - b.minD) * float64(w-1))
	y = h - 1 - int((f.Position.Z-b.minZ)/(b.maxZ-b.minZ)*float64(h-1))
	return x, y, true
}

// drawFlight plots frames[:upto+1] as a speed-shaded trail ending in the
// projectile marker, over a ground line at the lowest altitude.
func drawFlight(c *canvas, frames []Frame, upto int) {
	if len(frames) == 0 {
		return
	}
	b := boundsOf(frames)
	for x := 0; x < c.w; x++ {
		c.set(x, c.h-1, '_')
	}

	maxSpeed := 0.0
	for _, f := range frames {
		if finite(f.Speed) {
			maxSpeed = math.Max(maxSpeed, f.Speed)
		}
	}

	upto = min(upto, len(frames)-1)
	for i := 0; i < upto; i++ {
		if x, y, ok := b.project(frames[i], c.w, c.h); ok {
			c.set(x, y, trailChar(frames[i].Speed, maxSpeed))
		}
	}
	if x, y, ok := b.project(frames[upto], c.w, c.h); ok {
		c.set(x, y, 'O')
	}
}

func trailChar(speed, maxSpeed float64) rune {
	if maxSpeed == 0 || !finite(speed) {
		return '·'
	}
	ratio := speed / maxSpeed
	if ratio < 0.25 {
		return '·'
	} else if ratio < 0.5 {
		return '∘'
	} else if ratio < 0.75 {
		return '○'
	}
	return '●'
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
