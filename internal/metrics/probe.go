package metrics

import (
	"time"

	"github.com/acousticcorner/channel/internal/anim"
	"github.com/acousticcorner/channel/internal/lava"
)

// FieldReporter is implemented by scenes that rasterize a metaball field.
type FieldReporter interface {
	Stats() lava.FieldStats
}

// Probe wraps a scene, timing each paint and feeding the samples to its
// metrics.
type Probe struct {
	Scene   anim.Scene
	Metrics []Metric
	Samples []Sample

	now func() time.Time
}

func NewProbe(scene anim.Scene, ms ...Metric) *Probe {
	if len(ms) == 0 {
		ms = Defaults()
	}
	return &Probe{Scene: scene, Metrics: ms, now: time.Now}
}

func (p *Probe) Resize() { p.Scene.Resize() }

func (p *Probe) Paint(f anim.Frame) {
	t0 := p.now()
	p.Scene.Paint(f)
	s := Sample{Frame: len(p.Samples), Elapsed: f.Elapsed, Paint: p.now().Sub(t0)}
	if fr, ok := p.Scene.(FieldReporter); ok {
		st := fr.Stats()
		s.Sampled, s.Core, s.Glow = st.Sampled, st.Core, st.Glow
	}
	p.Samples = append(p.Samples, s)
	for _, m := range p.Metrics {
		m.Observe(s)
	}
}

// Values maps metric names to their current values.
func (p *Probe) Values() map[string]float64 {
	out := make(map[string]float64, len(p.Metrics))
	for _, m := range p.Metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Series extracts one value per sample.
func (p *Probe) Series(f func(Sample) float64) []float64 {
	out := make([]float64, len(p.Samples))
	for i, s := range p.Samples {
		out[i] = f(s)
	}
	return out
}

// PaintMillis is a Series selector for paint time.
func PaintMillis(s Sample) float64 { return float64(s.Paint) / float64(time.Millisecond) }

// CoveragePercent is a Series selector for field coverage.
func CoveragePercent(s Sample) float64 { return s.Coverage() * 100 }
