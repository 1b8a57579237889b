package metrics

import (
	"math"
	"time"
)

// Sample is what one painted frame reports.
type Sample struct {
	Frame   int
	Elapsed time.Duration
	Paint   time.Duration
	// Field cells, zero for scenes without a metaball field.
	Sampled, Core, Glow int
}

// Coverage is the lit fraction of sampled field cells.
func (s Sample) Coverage() float64 {
	if s.Sampled == 0 {
		return 0
	}
	return float64(s.Core+s.Glow) / float64(s.Sampled)
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

// FrameCost is the mean paint time in milliseconds.
type FrameCost struct {
	sum     time.Duration
	samples int
}

func NewFrameCost() *FrameCost { return &FrameCost{} }

func (c *FrameCost) Name() string { return "frame_ms" }

func (c *FrameCost) Observe(s Sample) {
	c.sum += s.Paint
	c.samples++
}

func (c *FrameCost) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.sum) / float64(c.samples) / float64(time.Millisecond)
}

func (c *FrameCost) Reset() {
	c.sum = 0
	c.samples = 0
}

// PeakCost is the slowest paint in milliseconds.
type PeakCost struct {
	peak time.Duration
}

func NewPeakCost() *PeakCost { return &PeakCost{} }

func (p *PeakCost) Name() string { return "peak_ms" }

func (p *PeakCost) Observe(s Sample) {
	if s.Paint > p.peak {
		p.peak = s.Paint
	}
}

func (p *PeakCost) Value() float64 { return float64(p.peak) / float64(time.Millisecond) }

func (p *PeakCost) Reset() { p.peak = 0 }

// Coverage is the mean lit fraction of the lava field.
type Coverage struct {
	sum     float64
	samples int
	max     float64
}

func NewCoverage() *Coverage { return &Coverage{} }

func (c *Coverage) Name() string { return "field_coverage" }

func (c *Coverage) Observe(s Sample) {
	if s.Sampled == 0 {
		return
	}
	v := s.Coverage()
	c.sum += v
	c.max = math.Max(c.max, v)
	c.samples++
}

func (c *Coverage) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.sum / float64(c.samples)
}

func (c *Coverage) Max() float64 { return c.max }

func (c *Coverage) Reset() {
	c.sum, c.max = 0, 0
	c.samples = 0
}

// Defaults returns the standard metric set.
func Defaults() []Metric {
	return []Metric{NewFrameCost(), NewPeakCost(), NewCoverage()}
}
