package lava

import (
	"image"
	"math"
	"sync"

	"github.com/acousticcorner/channel/internal/anim"
	"github.com/acousticcorner/channel/internal/surface"
)

const DefaultSeconds = 3.0

var (
	background = surface.RGBA(0x06, 0x06, 0x0a, 1)
	shell      = surface.RGBA(0x05, 0x05, 0x07, 1)
	tubeShade  = surface.RGBA(0, 0, 0, 0.35)
	caption    = surface.RGBA(255, 255, 255, 0.85)
)

// Renderer runs lava intros. It owns the full-size scratch raster used for
// the field upscale; runs started from the same renderer share it.
type Renderer struct {
	Params FieldParams

	mu      sync.Mutex
	scratch *image.RGBA
}

func NewRenderer(p FieldParams) *Renderer {
	return &Renderer{Params: p.withDefaults()}
}

// Run paints the lava intro on c for seconds (DefaultSeconds when not
// positive). The blob layout is seeded from label and the host clock.
func (r *Renderer) Run(host anim.Host, c *surface.Canvas, palette Palette, label string, seconds float64) *anim.Completion {
	if host.Clock == nil {
		host.Clock = anim.SystemClock{}
	}
	s := r.NewScene(c, palette, label, Seed(label, host.Clock.Now()))
	return anim.Start(host, s, anim.DurationOf(seconds, DefaultSeconds))
}

// Run paints one lava intro with the default field parameters.
func Run(host anim.Host, c *surface.Canvas, palette Palette, label string, seconds float64) *anim.Completion {
	return NewRenderer(DefaultFieldParams()).Run(host, c, palette, label, seconds)
}

// Scene is the state of one lava run.
type Scene struct {
	r      *Renderer
	canvas *surface.Canvas
	label  string
	params FieldParams

	blob, glow RGB
	liquid     surface.Solid

	rng   *Mulberry32
	geo   Geometry
	blobs []Blob
	field *image.NRGBA
	stats FieldStats
}

// NewScene prepares a run with an explicit seed.
func (r *Renderer) NewScene(c *surface.Canvas, palette Palette, label string, seed uint32) *Scene {
	p := palette.WithDefaults()
	liq := ParseHex(p.Liquid)
	return &Scene{
		r:      r,
		canvas: c,
		label:  label,
		params: r.Params.withDefaults(),
		blob:   ParseHex(p.Blob),
		glow:   ParseHex(p.Glow),
		liquid: surface.RGBA(liq.R, liq.G, liq.B, 1),
		rng:    NewMulberry32(seed),
	}
}

// Blobs returns the live blob state.
func (s *Scene) Blobs() []Blob { return s.blobs }

func (s *Scene) Geometry() Geometry { return s.geo }

// Stats reports the field of the last painted frame.
func (s *Scene) Stats() FieldStats { return s.stats }

// Resize re-measures the canvas and rebuilds the lamp layout and field grid.
// Blobs are created on the first call and refitted on later ones.
func (s *Scene) Resize() {
	s.canvas.Resize()
	w, h := s.canvas.Size()
	geo := NewGeometry(w, h)
	if s.blobs == nil {
		s.blobs = NewBlobs(geo, s.rng)
	} else {
		Refit(s.blobs, s.geo, geo)
	}
	s.geo = geo

	fw, fh := s.params.FieldSize(w, h)
	if s.field == nil || s.field.Bounds().Dx() != fw || s.field.Bounds().Dy() != fh {
		s.field = image.NewNRGBA(image.Rect(0, 0, fw, fh))
	}
}

func (s *Scene) Paint(f anim.Frame) {
	c := s.canvas
	g := s.geo

	s.paintBackground(c, g)
	Update(s.blobs, g, s.rng, f.Delta.Seconds())
	s.paintShell(c, g)
	s.paintMetaballs(c, g)
	c.FillText(s.label, g.CX, g.H*0.76, 14, caption, anim.LabelAlpha(f.Progress()))
}

func (s *Scene) paintBackground(c *surface.Canvas, g Geometry) {
	c.FillRect(0, 0, g.W, g.H, background)
	far := math.Max(g.W, g.H) * 0.75
	c.FillRect(0, 0, g.W, g.H, &surface.RadialGradient{
		CX: g.CX, CY: g.CY, R0: 20, R1: far,
		Stops: []surface.Stop{
			surface.At(0, 255, 190, 120, 0.14),
			surface.At(0.32, 255, 190, 120, 0.07),
			surface.At(0.65, 255, 190, 120, 0.03),
			surface.At(1, 0, 0, 0, 0),
		},
	})
	c.FillRect(0, 0, g.W, g.H, &surface.RadialGradient{
		CX: g.CX, CY: g.CY, R0: math.Min(g.W, g.H) * 0.2, R1: far,
		Stops: []surface.Stop{
			surface.At(0, 0, 0, 0, 0),
			surface.At(1, 0, 0, 0, 0.55),
		},
	})
}

func (s *Scene) paintShell(c *surface.Canvas, g Geometry) {
	baseW := g.LampW * 0.72
	capW := g.LampW * 0.52
	c.FillRoundRect(g.CX-baseW/2, g.TubeBot+10, baseW, g.BaseH, 18, shell)
	c.FillRoundRect(g.CX-capW/2, g.TubeTop-g.CapH-8, capW, g.CapH, 16, shell)

	tx, ty, tw, th := g.Tube()
	c.FillRoundRect(tx, ty, tw, th, 999, tubeShade)
	c.FillRoundRect(tx, ty, tw, th, 999, &surface.LinearGradient{
		X0: tx, X1: tx + tw,
		Stops: []surface.Stop{
			surface.At(0, 255, 255, 255, 0.10),
			surface.At(0.18, 255, 255, 255, 0.03),
			surface.At(0.5, 255, 255, 255, 0.015),
			surface.At(0.82, 255, 255, 255, 0.03),
			surface.At(1, 255, 255, 255, 0.10),
		},
	})
	c.FillRoundRectAlpha(tx+2, ty+2, tw-4, th-4, 999, s.liquid, 0.45)
}

func (s *Scene) paintMetaballs(c *surface.Canvas, g Geometry) {
	s.stats = Rasterize(s.field, s.params, g, s.blobs, s.blob, s.glow)

	s.r.mu.Lock()
	s.r.scratch = c.EnsureScratch(s.r.scratch)
	c.DrawScreen(s.field, s.r.scratch)
	s.r.mu.Unlock()

	tx, ty, tw, th := g.Tube()
	c.FillRoundRect(tx, ty, tw, th, 999, &surface.LinearGradient{
		X0: tx, X1: tx + tw,
		Stops: []surface.Stop{
			surface.At(0.05, 255, 255, 255, 0.08),
			surface.At(0.15, 255, 255, 255, 0),
			surface.At(0.70, 255, 255, 255, 0),
			surface.At(0.85, 255, 255, 255, 0.05),
		},
	})
}
