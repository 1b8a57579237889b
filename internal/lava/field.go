package lava

import (
	"image"
	"math"

	"github.com/acousticcorner/channel/internal/anim"
)

// FieldParams are the tuned constants of the metaball field. The values
// come from visual tuning and have no derivation.
type FieldParams struct {
	Scale     float64 `yaml:"scale"`
	Norm      float64 `yaml:"norm"`
	Threshold float64 `yaml:"threshold"`
	GlowRatio float64 `yaml:"glow_ratio"`
	Epsilon   float64 `yaml:"epsilon"`
	CoreGain  float64 `yaml:"core_gain"`
	CoreAlpha float64 `yaml:"core_alpha"`
	GlowGain  float64 `yaml:"glow_gain"`
	GlowAlpha float64 `yaml:"glow_alpha"`
}

func DefaultFieldParams() FieldParams {
	return FieldParams{
		Scale:     0.6,
		Norm:      4800,
		Threshold: 1.12,
		GlowRatio: 0.82,
		Epsilon:   1e-4,
		CoreGain:  3.0,
		CoreAlpha: 0.85,
		GlowGain:  2.2,
		GlowAlpha: 0.35,
	}
}

// withDefaults replaces non-positive values with the defaults.
func (p FieldParams) withDefaults() FieldParams {
	d := DefaultFieldParams()
	pick := func(v, def float64) float64 {
		if v > 0 {
			return v
		}
		return def
	}
	return FieldParams{
		Scale:     pick(p.Scale, d.Scale),
		Norm:      pick(p.Norm, d.Norm),
		Threshold: pick(p.Threshold, d.Threshold),
		GlowRatio: pick(p.GlowRatio, d.GlowRatio),
		Epsilon:   pick(p.Epsilon, d.Epsilon),
		CoreGain:  pick(p.CoreGain, d.CoreGain),
		CoreAlpha: pick(p.CoreAlpha, d.CoreAlpha),
		GlowGain:  pick(p.GlowGain, d.GlowGain),
		GlowAlpha: pick(p.GlowAlpha, d.GlowAlpha),
	}
}

// Value is the normalized field strength at logical point (px, py).
func (p FieldParams) Value(blobs []Blob, px, py float64) float64 {
	f := 0.0
	for _, b := range blobs {
		dx, dy := px-b.X, py-b.Y
		f += b.R * b.R / (dx*dx + dy*dy + p.Epsilon)
	}
	return f / p.Norm
}

// Band classifies a field value. It returns the alpha (0..255) and whether
// the cell belongs to the core; alpha 0 means the cell stays empty.
func (p FieldParams) Band(v float64) (alpha uint8, core bool) {
	if v > p.Threshold {
		a := anim.Clamp01((v - p.Threshold) * p.CoreGain)
		return uint8(math.Floor(255 * p.CoreAlpha * a)), true
	}
	glow := p.Threshold * p.GlowRatio
	if v > glow {
		a := anim.Clamp01((v - glow) * p.GlowGain)
		return uint8(math.Floor(255 * p.GlowAlpha * a)), false
	}
	return 0, false
}

// FieldSize returns the grid dimensions for a logical surface size.
func (p FieldParams) FieldSize(w, h float64) (int, int) {
	return max(1, int(math.Floor(w*p.Scale))), max(1, int(math.Floor(h*p.Scale)))
}

// FieldStats describes one rasterized field.
type FieldStats struct {
	Sampled int // cells inside the tube mask
	Core    int
	Glow    int
}

// Rasterize clears img and paints the core and glow bands for blobs inside
// the tube mask. img must be sized by FieldSize.
func Rasterize(img *image.NRGBA, p FieldParams, g Geometry, blobs []Blob, core, glow RGB) FieldStats {
	clear(img.Pix)
	var st FieldStats

	tx, ty, tw, th := g.Tube()
	midY := g.TubeTop + th/2
	b := img.Bounds()
	minX := max(b.Min.X, int(math.Floor(tx*p.Scale)))
	maxX := min(b.Max.X-1, int(math.Floor((tx+tw)*p.Scale)))
	minY := max(b.Min.Y, int(math.Floor(ty*p.Scale)))
	maxY := min(b.Max.Y-1, int(math.Floor((ty+th)*p.Scale)))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float64(x) / p.Scale
			py := float64(y) / p.Scale

			dx := (px - g.CX) / (g.TubeR * 2.05)
			dy := (py - midY) / (th * 0.55)
			if dx*dx+dy*dy > 1.05 {
				continue
			}
			st.Sampled++

			a, isCore := p.Band(p.Value(blobs, px, py))
			if a == 0 {
				continue
			}
			c := glow
			if isCore {
				c = core
				st.Core++
			} else {
				st.Glow++
			}
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = a
		}
	}
	return st
}
