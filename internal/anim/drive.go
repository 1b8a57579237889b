package anim

import "time"

// Drive renders a run against simulated time: it advances clock by interval
// and ticks sched until c resolves. afterFrame, if set, is called after every
// tick that painted a frame. It returns the number of ticks performed.
func Drive(clock *FakeClock, sched *ManualScheduler, c *Completion, interval time.Duration, afterFrame func(now time.Time)) int {
	if interval <= 0 {
		interval = time.Second / 60
	}
	ticks := 0
	for !c.Resolved() {
		now := clock.Advance(interval)
		if sched.Tick(now) == 0 {
			break
		}
		ticks++
		if afterFrame != nil && !c.Resolved() {
			afterFrame(now)
		}
	}
	return ticks
}

// Headless returns a host wired to a fake clock and a manual scheduler.
func Headless(start time.Time) (Host, *FakeClock, *ManualScheduler, *ResizeHub) {
	clock := NewFakeClock(start)
	sched := NewManualScheduler()
	hub := NewResizeHub()
	return Host{Clock: clock, Scheduler: sched, Viewport: hub}, clock, sched, hub
}
