package surface

import (
	"image"
	"image/color"
	"math"
)

// Paint is a fill source expressed in logical coordinates.
type Paint interface {
	// Source returns the fill in buffer pixel space with alpha applied.
	Source(ratio, alpha float64) image.Image
}

// Solid is a flat color.
type Solid color.NRGBA

// RGBA builds a Solid from 8-bit channels and a 0..1 alpha.
func RGBA(r, g, b uint8, a float64) Solid {
	return Solid{R: r, G: g, B: b, A: unit8(a)}
}

func (s Solid) Source(_, alpha float64) image.Image {
	c := color.NRGBA(s)
	c.A = unit8(float64(c.A) / 255 * alpha)
	return image.NewUniform(c)
}

// Stop is a gradient color stop.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// At returns a stop at offset with a 0..1 alpha.
func At(offset float64, r, g, b uint8, a float64) Stop {
	return Stop{Offset: offset, Color: color.NRGBA{R: r, G: g, B: b, A: unit8(a)}}
}

// LinearGradient interpolates along the segment (X0,Y0)-(X1,Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []Stop
}

func (g *LinearGradient) Source(ratio, alpha float64) image.Image {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	den := dx*dx + dy*dy
	return &gradientImage{
		ratio: ratio,
		alpha: alpha,
		stops: g.Stops,
		param: func(x, y float64) float64 {
			if den == 0 {
				return 0
			}
			return ((x-g.X0)*dx + (y-g.Y0)*dy) / den
		},
	}
}

// RadialGradient interpolates between two concentric circles.
type RadialGradient struct {
	CX, CY float64
	R0, R1 float64
	Stops  []Stop
}

func (g *RadialGradient) Source(ratio, alpha float64) image.Image {
	span := g.R1 - g.R0
	return &gradientImage{
		ratio: ratio,
		alpha: alpha,
		stops: g.Stops,
		param: func(x, y float64) float64 {
			d := math.Hypot(x-g.CX, y-g.CY)
			if span == 0 {
				if d < g.R0 {
					return 0
				}
				return 1
			}
			return (d - g.R0) / span
		},
	}
}

type gradientImage struct {
	ratio float64
	alpha float64
	stops []Stop
	param func(x, y float64) float64
}

func (g *gradientImage) ColorModel() color.Model { return color.RGBAModel }

func (g *gradientImage) Bounds() image.Rectangle {
	return image.Rectangle{Min: image.Point{X: -1e9, Y: -1e9}, Max: image.Point{X: 1e9, Y: 1e9}}
}

func (g *gradientImage) At(x, y int) color.Color {
	lx := (float64(x) + 0.5) / g.ratio
	ly := (float64(y) + 0.5) / g.ratio
	return sampleStops(g.stops, g.param(lx, ly), g.alpha)
}

// sampleStops interpolates premultiplied colors between the stops around t.
func sampleStops(stops []Stop, t, alpha float64) color.RGBA {
	if len(stops) == 0 {
		return color.RGBA{}
	}
	if t <= stops[0].Offset {
		return premul(stops[0].Color, alpha)
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return premul(last.Color, alpha)
	}
	for i := 1; i < len(stops); i++ {
		b := stops[i]
		if t > b.Offset {
			continue
		}
		a := stops[i-1]
		span := b.Offset - a.Offset
		f := 0.0
		if span > 0 {
			f = (t - a.Offset) / span
		}
		ca, cb := premulF(a.Color), premulF(b.Color)
		var out [4]float64
		for k := range out {
			out[k] = (ca[k] + (cb[k]-ca[k])*f) * alpha
		}
		return color.RGBA{R: unit8(out[0]), G: unit8(out[1]), B: unit8(out[2]), A: unit8(out[3])}
	}
	return premul(last.Color, alpha)
}

func premulF(c color.NRGBA) [4]float64 {
	a := float64(c.A) / 255
	return [4]float64{float64(c.R) / 255 * a, float64(c.G) / 255 * a, float64(c.B) / 255 * a, a}
}

func premul(c color.NRGBA, alpha float64) color.RGBA {
	p := premulF(c)
	return color.RGBA{R: unit8(p[0] * alpha), G: unit8(p[1] * alpha), B: unit8(p[2] * alpha), A: unit8(p[3] * alpha)}
}

// unit8 maps a 0..1 value to 0..255 with rounding.
func unit8(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
