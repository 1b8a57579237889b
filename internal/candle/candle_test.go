package candle

import (
	"math"
	"testing"
	"time"

	"github.com/acousticcorner/channel/internal/anim"
	"github.com/acousticcorner/channel/internal/surface"
)

func TestPositionsStayInFrame(t *testing.T) {
	sizes := [][2]float64{{320, 360}, {400, 600}, {1280, 720}, {390, 844}}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		for step := 0; step <= 600; step++ {
			tt := float64(step) / 60
			for i, cd := range Positions(tt, w, h) {
				if math.IsNaN(cd.X) || math.IsNaN(cd.Y) || math.IsInf(cd.X, 0) || math.IsInf(cd.Y, 0) {
					t.Fatalf("candle %d at t=%v not finite: %+v", i, tt, cd)
				}
				if cd.X < 0 || cd.X > w || cd.Y < 0 || cd.Y > h {
					t.Fatalf("candle %d at t=%v outside %vx%v: %+v", i, tt, w, h, cd)
				}
			}
		}
	}
}

func TestPositionsRowOrder(t *testing.T) {
	p := Positions(0, 1280, 720)
	for i := 1; i < Count; i++ {
		if p[i].X <= p[i-1].X {
			t.Errorf("candle %d left of candle %d: %v <= %v", i, i-1, p[i].X, p[i-1].X)
		}
	}
}

func TestFlickerRange(t *testing.T) {
	for step := 0; step < 2000; step++ {
		tt := float64(step) * 0.013
		for i := 0; i < Count; i++ {
			f := Flicker(tt, i)
			if f < 0.1-1e-9 || f > 1+1e-9 {
				t.Fatalf("Flicker(%v, %d) = %v", tt, i, f)
			}
		}
	}
	if got := Flicker(0, 0); got != 0.55 {
		t.Errorf("Flicker(0, 0) = %v, want 0.55", got)
	}
}

func TestRunResolvesAfterDuration(t *testing.T) {
	start := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	host, clock, sched, hub := anim.Headless(start)
	c := surface.New(surface.NewFixed(400, 600, 1))

	done := Run(host, c, "Nirvana — 1993", 5)
	if done.Resolved() {
		t.Fatal("resolved before any time passed")
	}
	if hub.Listeners() != 1 {
		t.Fatalf("listeners during run = %d", hub.Listeners())
	}

	ticks := anim.Drive(clock, sched, done, time.Second/60, nil)
	if !done.Resolved() {
		t.Fatal("run did not resolve")
	}
	if got := done.FinishedAt().Sub(start); got < 5*time.Second {
		t.Errorf("resolved after %v, want at least 5s", got)
	}
	if ticks < 290 {
		t.Errorf("ticks = %d", ticks)
	}
	if hub.Listeners() != 0 {
		t.Errorf("resize listener still subscribed")
	}
	if done.Resolutions() != 1 {
		t.Errorf("resolutions = %d", done.Resolutions())
	}
}

func TestRunDefaultsDuration(t *testing.T) {
	start := time.Unix(0, 0)
	host, clock, sched, _ := anim.Headless(start)
	c := surface.New(surface.NewFixed(320, 360, 1))

	done := Run(host, c, "", 0)
	anim.Drive(clock, sched, done, 100*time.Millisecond, nil)
	if got := done.FinishedAt().Sub(start); got < 5*time.Second || got > 5100*time.Millisecond {
		t.Errorf("default run lasted %v", got)
	}
}

func TestRunFollowsResize(t *testing.T) {
	host, clock, sched, hub := anim.Headless(time.Unix(100, 0))
	target := surface.NewFixed(400, 600, 1)
	c := surface.New(target)

	done := Run(host, c, "Low — 1994", 1)
	clock.Advance(200 * time.Millisecond)
	sched.Tick(clock.Now())

	target.SetBox(800, 450)
	target.SetRatio(2)
	hub.Notify()
	if b := c.Image().Bounds(); b.Dx() != 1600 || b.Dy() != 900 {
		t.Fatalf("buffer after resize = %v", b)
	}

	anim.Drive(clock, sched, done, time.Second/30, nil)
	if !done.Resolved() {
		t.Fatal("run did not resolve after resize")
	}
}

func TestPaintLightsCandles(t *testing.T) {
	c := surface.New(surface.NewFixed(400, 600, 1))
	s := NewScene(c, "label")
	s.Resize()
	s.Paint(anim.Frame{Elapsed: 0, Duration: 5 * time.Second})

	img := c.Image()
	cd := Positions(0, 400, 600)[4]
	flame := img.RGBAAt(int(cd.X), int(cd.Y-18))
	bg := img.RGBAAt(5, 5)
	if int(flame.R) <= int(bg.R)+50 {
		t.Errorf("flame pixel %v not brighter than background %v", flame, bg)
	}
	if bg.R > 0x05 {
		t.Errorf("vignetted corner brighter than background: %v", bg)
	}
}
