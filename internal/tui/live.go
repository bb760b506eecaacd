package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/projsim/internal/projectile"
)

const (
	liveWidth   = 70
	liveHeight  = 20
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer draws the flight to out while it is being integrated. It is a
// projectile.Observer; frames arriving faster than frameRate are recorded but
// not drawn. A frameRate of zero or less draws every frame.
type LiveRenderer struct {
	title     string
	out       io.Writer
	frameRate int
	lastFrame time.Time
	rec       *Recorder
	now       func() time.Time
}

func NewLiveRenderer(title string, out io.Writer, frameRate int) *LiveRenderer {
	return &LiveRenderer{
		title:     title,
		out:       out,
		frameRate: frameRate,
		rec:       NewRecorder(),
		now:       time.Now,
	}
}

func (r *LiveRenderer) OnStep(step int, t float64, p *projectile.Projectile) {
	r.rec.OnStep(step, t, p)

	if r.frameRate > 0 {
		now := r.now()
		if now.Sub(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
			return
		}
		r.lastFrame = now
	}
	r.render()
}

// Flush draws the latest frame regardless of the frame rate.
func (r *LiveRenderer) Flush() {
	if len(r.rec.Frames()) > 0 {
		r.render()
	}
}

func (r *LiveRenderer) Frames() []Frame { return r.rec.Frames() }

func (r *LiveRenderer) render() {
	frames := r.rec.Frames()
	f := frames[len(frames)-1]

	c := newCanvas(liveWidth, liveHeight)
	drawFlight(c, frames, len(frames)-1)

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  t=%.2fs  step=%d\n", r.title, f.T, f.Step))
	b.WriteString("  " + strings.Repeat("-", liveWidth) + "\n")
	for _, row := range c.rows() {
		b.WriteString("  " + row + "\n")
	}
	b.WriteString("  " + strings.Repeat("-", liveWidth) + "\n")
	b.WriteString(fmt.Sprintf("  x=%.2f y=%.2f z=%.2f |v|=%.2f\n",
		f.Position.X, f.Position.Y, f.Position.Z, f.Speed))

	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
