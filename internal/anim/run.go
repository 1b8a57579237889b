package anim

import (
	"log/slog"
	"math"
	"sync"
	"time"
)

// Scene is the per-run state of one intro. The run calls Resize once at
// start and again for every viewport notification, and Paint once per frame.
type Scene interface {
	Resize()
	Paint(f Frame)
}

// Frame describes the frame being painted.
type Frame struct {
	Now      time.Time
	Elapsed  time.Duration
	Duration time.Duration
	// Delta is the time since the previous painted frame (zero on the first).
	Delta time.Duration
}

// Seconds returns the elapsed time in seconds.
func (f Frame) Seconds() float64 { return f.Elapsed.Seconds() }

// Progress returns elapsed/duration.
func (f Frame) Progress() float64 {
	if f.Duration <= 0 {
		return 1
	}
	return float64(f.Elapsed) / float64(f.Duration)
}

// Host supplies the environment a run executes in. Zero fields fall back to
// the system clock, a 60 fps ticker scheduler, no resize notifications and a
// discarding logger.
type Host struct {
	Clock     Clock
	Scheduler Scheduler
	Viewport  Viewport
	Logger    *slog.Logger
}

type noResize struct{}

func (noResize) OnResize(func()) func() { return func() {} }

type run struct {
	// mu serializes steps: the first runs on the caller of Start, the rest on
	// the scheduler's goroutine.
	mu sync.Mutex

	host        Host
	scene       Scene
	start, end  time.Time
	last        time.Time
	frame       FrameID
	unsubscribe func()
	release     func()
	finished    bool
	frames      int
	done        *Completion
}

// Start begins painting scene and returns the run's completion signal.
func Start(host Host, scene Scene, duration time.Duration) *Completion {
	r := &run{scene: scene, done: newCompletion()}
	r.host = r.prepare(host)

	scene.Resize()
	r.start = r.host.Clock.Now()
	r.end = r.start.Add(duration)
	r.last = r.start
	r.unsubscribe = r.host.Viewport.OnResize(scene.Resize)
	r.host.Logger.Debug("intro started", "duration", duration)

	r.step(r.host.Clock.Now())
	return r.done
}

func (r *run) prepare(h Host) Host {
	if h.Clock == nil {
		h.Clock = SystemClock{}
	}
	if h.Viewport == nil {
		h.Viewport = noResize{}
	}
	if h.Logger == nil {
		h.Logger = slog.New(slog.DiscardHandler)
	}
	if h.Scheduler == nil {
		ts := NewTickerScheduler(h.Clock, 60)
		h.Scheduler = ts
		r.release = ts.Stop
	}
	return h
}

func (r *run) step(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished {
		return
	}
	if !now.Before(r.end) {
		r.finish(now)
		return
	}
	f := Frame{
		Now:      now,
		Elapsed:  now.Sub(r.start),
		Duration: r.end.Sub(r.start),
		Delta:    now.Sub(r.last),
	}
	r.last = now
	r.scene.Paint(f)
	r.frames++
	r.frame = r.host.Scheduler.RequestFrame(r.step)
}

// finish removes the resize listener and then signals completion. r.mu is held.
func (r *run) finish(now time.Time) {
	r.finished = true
	r.host.Scheduler.CancelFrame(r.frame)
	r.unsubscribe()
	if r.release != nil {
		r.release()
	}
	r.host.Logger.Debug("intro finished", "frames", r.frames, "elapsed", now.Sub(r.start))
	r.done.resolve(now)
}

// DurationOf converts seconds to a duration, using fallback for
// non-positive or non-finite input.
func DurationOf(seconds, fallback float64) time.Duration {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		seconds = fallback
	}
	return time.Duration(seconds * float64(time.Second))
}
