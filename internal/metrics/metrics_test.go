package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/acousticcorner/channel/internal/anim"
	"github.com/acousticcorner/channel/internal/lava"
	"github.com/acousticcorner/channel/internal/surface"
)

type stubScene struct {
	paints  int
	resizes int
	stats   lava.FieldStats
}

func (s *stubScene) Resize() { s.resizes++ }

func (s *stubScene) Paint(anim.Frame) { s.paints++ }

func (s *stubScene) Stats() lava.FieldStats { return s.stats }

func TestFrameMetrics(t *testing.T) {
	cost, peak := NewFrameCost(), NewPeakCost()
	for _, ms := range []int{2, 4, 9} {
		s := Sample{Paint: time.Duration(ms) * time.Millisecond}
		cost.Observe(s)
		peak.Observe(s)
	}
	if cost.Value() != 5 {
		t.Errorf("mean = %v", cost.Value())
	}
	if peak.Value() != 9 {
		t.Errorf("peak = %v", peak.Value())
	}
	cost.Reset()
	peak.Reset()
	if cost.Value() != 0 || peak.Value() != 0 {
		t.Error("reset did not clear")
	}
}

func TestCoverageSkipsFieldlessFrames(t *testing.T) {
	c := NewCoverage()
	c.Observe(Sample{})
	c.Observe(Sample{Sampled: 100, Core: 10, Glow: 10})
	c.Observe(Sample{Sampled: 100, Core: 0, Glow: 40})
	if got := c.Value(); got < 0.2999 || got > 0.3001 {
		t.Errorf("coverage = %v", got)
	}
	if c.Max() != 0.4 {
		t.Errorf("max = %v", c.Max())
	}
}

func TestProbeForwardsAndRecords(t *testing.T) {
	inner := &stubScene{stats: lava.FieldStats{Sampled: 50, Core: 5}}
	p := NewProbe(inner)
	tick := time.Unix(0, 0)
	p.now = func() time.Time {
		tick = tick.Add(3 * time.Millisecond)
		return tick
	}

	p.Resize()
	p.Paint(anim.Frame{Elapsed: time.Second})
	p.Paint(anim.Frame{Elapsed: 2 * time.Second})

	if inner.paints != 2 || inner.resizes != 1 {
		t.Errorf("inner scene saw %d paints, %d resizes", inner.paints, inner.resizes)
	}
	if len(p.Samples) != 2 || p.Samples[1].Frame != 1 || p.Samples[0].Paint != 3*time.Millisecond {
		t.Errorf("samples = %+v", p.Samples)
	}
	v := p.Values()
	if v["frame_ms"] != 3 || v["field_coverage"] != 0.1 {
		t.Errorf("values = %v", v)
	}
	if s := p.Series(CoveragePercent); s[0] != 10 {
		t.Errorf("series = %v", s)
	}
}

func TestProbeOnLavaRun(t *testing.T) {
	host, clock, sched, _ := anim.Headless(time.Unix(1_700_000_000, 0))
	c := surface.New(surface.NewFixed(320, 360, 1))
	scene := lava.NewRenderer(lava.DefaultFieldParams()).NewScene(c, lava.Palette{}, "x", 1)
	p := NewProbe(scene)

	done := anim.Start(host, p, 500*time.Millisecond)
	anim.Drive(clock, sched, done, 100*time.Millisecond, nil)

	if len(p.Samples) != 5 {
		t.Fatalf("samples = %d", len(p.Samples))
	}
	if p.Samples[0].Sampled == 0 {
		t.Error("lava field stats not collected")
	}
}

func TestDownsample(t *testing.T) {
	got := Downsample([]float64{1, 3, 5, 7}, 2)
	if len(got) != 2 || got[0] != 2 || got[1] != 6 {
		t.Errorf("Downsample = %v", got)
	}
	if got := Downsample([]float64{1, 2}, 10); len(got) != 2 {
		t.Errorf("short series changed: %v", got)
	}
}

func TestPlot(t *testing.T) {
	out := Plot([]float64{1, 2, 3, 2, 1}, 40, 5, "frame ms")
	if !strings.Contains(out, "frame ms") {
		t.Errorf("caption missing:\n%s", out)
	}
	if got := Plot(nil, 40, 5, "empty"); got != "empty: no samples" {
		t.Errorf("empty plot = %q", got)
	}
	if Plot([]float64{4}, 40, 5, "one") == "" {
		t.Error("single sample plot empty")
	}
}
