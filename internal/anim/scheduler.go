package anim

import (
	"sync"
	"time"
)

// FrameID identifies a requested frame callback.
type FrameID uint64

// FrameFunc receives the timestamp of the frame it is painting.
type FrameFunc func(now time.Time)

// Scheduler queues callbacks for the next display refresh.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// ManualScheduler runs queued callbacks when Tick is called. Callbacks
// requested while a tick is in progress run on the following tick, the way a
// browser animation frame queue behaves.
type ManualScheduler struct {
	mu    sync.Mutex
	next  FrameID
	order []FrameID
	fns   map[FrameID]FrameFunc
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{fns: make(map[FrameID]FrameFunc)}
}

func (s *ManualScheduler) RequestFrame(fn FrameFunc) FrameID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.order = append(s.order, s.next)
	s.fns[s.next] = fn
	return s.next
}

func (s *ManualScheduler) CancelFrame(id FrameID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fns, id)
}

// Tick invokes every callback queued before the call and reports how many ran.
func (s *ManualScheduler) Tick(now time.Time) int {
	s.mu.Lock()
	batch := s.order
	s.order = nil
	s.mu.Unlock()

	ran := 0
	for _, id := range batch {
		s.mu.Lock()
		fn, ok := s.fns[id]
		delete(s.fns, id)
		s.mu.Unlock()
		if !ok {
			continue
		}
		fn(now)
		ran++
	}
	return ran
}

// Pending returns the number of callbacks waiting for the next tick.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.fns)
}

// TickerScheduler ticks a ManualScheduler from a background goroutine at a
// fixed frame rate. All callbacks run on that one goroutine.
type TickerScheduler struct {
	*ManualScheduler
	clock    Clock
	interval time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func NewTickerScheduler(clock Clock, fps int) *TickerScheduler {
	if fps <= 0 {
		fps = 60
	}
	s := &TickerScheduler{
		ManualScheduler: NewManualScheduler(),
		clock:           clock,
		interval:        time.Second / time.Duration(fps),
		stop:            make(chan struct{}),
	}
	go s.loop()
	return s
}

func (s *TickerScheduler) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.Tick(s.clock.Now())
		}
	}
}

// Stop halts the ticker goroutine. Pending callbacks are dropped.
func (s *TickerScheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}
