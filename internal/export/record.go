package export

import (
	"image"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/acousticcorner/channel/internal/anim"
	"github.com/acousticcorner/channel/internal/surface"
)

// Recording is a captured intro.
type Recording struct {
	Frames  []*image.RGBA
	Delay   time.Duration
	Elapsed time.Duration
}

// Starter begins an intro on the given host.
type Starter func(host anim.Host) *anim.Completion

// Capture runs an intro against simulated time at fps, copying the canvas
// after every painted frame. Frames wider than maxWidth are scaled down;
// maxWidth <= 0 keeps the buffer size.
func Capture(start time.Time, fps int, c *surface.Canvas, maxWidth int, begin Starter) *Recording {
	if fps <= 0 {
		fps = 30
	}
	interval := time.Second / time.Duration(fps)
	host, clock, sched, _ := anim.Headless(start)

	rec := &Recording{Delay: interval}
	grab := func() {
		rec.Frames = append(rec.Frames, shrink(c.Image(), maxWidth))
	}

	done := begin(host)
	if !done.Resolved() {
		grab()
	}
	anim.Drive(clock, sched, done, interval, func(time.Time) { grab() })
	rec.Elapsed = done.FinishedAt().Sub(start)
	return rec
}

func shrink(src *image.RGBA, maxWidth int) *image.RGBA {
	b := src.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		out := image.NewRGBA(b)
		copy(out.Pix, src.Pix)
		return out
	}
	h := max(1, b.Dy()*maxWidth/b.Dx())
	out := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	xdraw.ApproxBiLinear.Scale(out, out.Bounds(), src, b, xdraw.Src, nil)
	return out
}
