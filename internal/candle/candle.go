package candle

import (
	"math"

	"github.com/acousticcorner/channel/internal/anim"
	"github.com/acousticcorner/channel/internal/surface"
)

const (
	DefaultSeconds = 5.0
	Count          = 10
)

// Candle is the position and flicker intensity of one candle in a frame.
type Candle struct {
	X, Y    float64
	Flicker float64
}

// Flicker returns the intensity of candle i at t seconds, in [0.1, 1].
func Flicker(t float64, i int) float64 {
	fi := float64(i)
	return 0.55 + 0.45*math.Sin(3.6*t+1.3*fi)*math.Sin(1.4*t+0.7*fi)
}

// Positions lays out the row of candles for a w×h surface at t seconds.
func Positions(t, w, h float64) [Count]Candle {
	var out [Count]Candle
	cx, cy := w/2, h*0.52
	for i := range out {
		fi := float64(i)
		out[i] = Candle{
			X:       cx + (fi-4.5)*w*0.045 + math.Sin(t*0.6+fi)*6,
			Y:       cy + math.Sin(t*0.35+fi*0.9)*6 + float64(i%3)*4,
			Flicker: Flicker(t, i),
		}
	}
	return out
}

var (
	background = surface.RGBA(0x05, 0x05, 0x07, 1)
	body       = surface.RGBA(255, 255, 255, 0.10)
	flame      = surface.RGBA(255, 205, 130, 1)
	caption    = surface.RGBA(255, 255, 255, 0.86)
)

// Scene paints the candle intro onto a canvas.
type Scene struct {
	canvas *surface.Canvas
	label  string
}

func NewScene(c *surface.Canvas, label string) *Scene {
	return &Scene{canvas: c, label: label}
}

func (s *Scene) Resize() { s.canvas.Resize() }

func (s *Scene) Paint(f anim.Frame) {
	c := s.canvas
	w, h := c.Size()
	t := f.Seconds()

	c.FillRect(0, 0, w, h, background)
	c.FillRect(0, h*0.55, w, h*0.45, &surface.LinearGradient{
		X0: 0, Y0: h * 0.6, X1: 0, Y1: h,
		Stops: []surface.Stop{
			surface.At(0, 0, 0, 0, 0),
			surface.At(1, 0, 0, 0, 0.55),
		},
	})

	for _, cd := range Positions(t, w, h) {
		paintCandle(c, cd)
	}

	c.FillText(s.label, w/2, h*0.78, 16, caption, anim.LabelAlpha(f.Progress()))
	paintVignette(c, w, h)
}

func paintCandle(c *surface.Canvas, cd Candle) {
	x, y, fl := cd.X, cd.Y, cd.Flicker
	c.FillRect(x-60, y-80, 120, 120, &surface.RadialGradient{
		CX: x, CY: y - 18, R0: 2, R1: 55,
		Stops: []surface.Stop{
			surface.At(0, 255, 200, 120, 0.30+0.25*fl),
			surface.At(0.35, 255, 160, 80, 0.10+0.12*fl),
			surface.At(1, 255, 160, 80, 0),
		},
	})
	c.FillRoundRect(x-6, y-6, 12, 26, 6, body)

	fc := flame
	fc.A = uint8(math.Round(255 * anim.Clamp01(0.65+0.25*fl)))
	c.FillEllipse(x, y-18, 4, 8, fc)
}

func paintVignette(c *surface.Canvas, w, h float64) {
	c.FillRect(0, 0, w, h, &surface.RadialGradient{
		CX: w / 2, CY: h / 2,
		R0: math.Min(w, h) * 0.2, R1: math.Max(w, h) * 0.75,
		Stops: []surface.Stop{
			surface.At(0, 0, 0, 0, 0),
			surface.At(1, 0, 0, 0, 0.65),
		},
	})
}

// Run paints the candle intro on c for seconds (DefaultSeconds when not
// positive) and resolves the returned completion once the time is up.
func Run(host anim.Host, c *surface.Canvas, label string, seconds float64) *anim.Completion {
	return anim.Start(host, NewScene(c, label), anim.DurationOf(seconds, DefaultSeconds))
}
