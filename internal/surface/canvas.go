package surface

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic control points for quarter-circle arcs.
const kappa = 0.5522847498

var (
	fontOnce sync.Once
	boldFont *opentype.Font
)

func labelFont() *opentype.Font {
	fontOnce.Do(func() {
		f, err := opentype.Parse(gobold.TTF)
		if err == nil {
			boldFont = f
		}
	})
	return boldFont
}

// Canvas is an opaque raster whose drawing calls take logical coordinates;
// every call is scaled by the surface's pixel ratio.
type Canvas struct {
	target Target
	m      Metrics
	img    *image.RGBA
	ras    *vector.Rasterizer
	faces  map[float64]font.Face
}

// New sizes a canvas for t.
func New(t Target) *Canvas {
	c := &Canvas{target: t}
	c.Resize()
	return c
}

// Resize re-measures the target and reallocates the backing buffer when its
// dimensions change.
func (c *Canvas) Resize() Metrics {
	m := Measure(c.target)
	if c.img == nil || m.BufferWidth != c.m.BufferWidth || m.BufferHeight != c.m.BufferHeight {
		c.img = image.NewRGBA(image.Rect(0, 0, m.BufferWidth, m.BufferHeight))
		draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
		c.ras = vector.NewRasterizer(m.BufferWidth, m.BufferHeight)
	}
	if m.Ratio != c.m.Ratio {
		c.faces = nil
	}
	c.m = m
	return m
}

func (c *Canvas) Metrics() Metrics { return c.m }

// Size returns the logical width and height.
func (c *Canvas) Size() (float64, float64) {
	return float64(c.m.Width), float64(c.m.Height)
}

// Image exposes the backing buffer.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Snapshot copies the backing buffer.
func (c *Canvas) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out
}

// FillRect composites p over an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, p Paint) {
	c.FillRectAlpha(x, y, w, h, p, 1)
}

func (c *Canvas) FillRectAlpha(x, y, w, h float64, p Paint, alpha float64) {
	if w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	r := image.Rect(c.px(x), c.px(y), c.px(x+w), c.px(y+h)).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, p.Source(c.m.Ratio, alpha), r.Min, draw.Over)
}

// FillRoundRect fills a rectangle with corner radius r, clamped to half the
// shorter side so a large radius yields a pill shape.
func (c *Canvas) FillRoundRect(x, y, w, h, r float64, p Paint) {
	c.FillRoundRectAlpha(x, y, w, h, r, p, 1)
}

func (c *Canvas) FillRoundRectAlpha(x, y, w, h, r float64, p Paint, alpha float64) {
	if w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	r = min(r, w/2, h/2)
	k := r * kappa
	c.begin()
	c.moveTo(x+r, y)
	c.lineTo(x+w-r, y)
	c.cubeTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	c.lineTo(x+w, y+h-r)
	c.cubeTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	c.lineTo(x+r, y+h)
	c.cubeTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	c.lineTo(x, y+r)
	c.cubeTo(x, y+r-k, x+r-k, y, x+r, y)
	c.fill(p, alpha)
}

// FillEllipse fills an axis-aligned ellipse.
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, p Paint) {
	if rx <= 0 || ry <= 0 {
		return
	}
	kx, ky := rx*kappa, ry*kappa
	c.begin()
	c.moveTo(cx+rx, cy)
	c.cubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	c.cubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	c.cubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	c.cubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	c.fill(p, 1)
}

// FillText draws s centered on x with its baseline at y. size is the font
// size in logical pixels.
func (c *Canvas) FillText(s string, x, y, size float64, col Solid, alpha float64) {
	if s == "" || alpha <= 0 {
		return
	}
	face := c.face(size)
	if face == nil {
		return
	}
	d := &font.Drawer{Dst: c.img, Src: col.Source(c.m.Ratio, alpha), Face: face}
	adv := d.MeasureString(s)
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(x*c.m.Ratio*64) - adv/2,
		Y: fixed.Int26_6(y * c.m.Ratio * 64),
	}
	d.DrawString(s)
}

func (c *Canvas) face(size float64) font.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}
	tt := labelFont()
	if tt == nil {
		return nil
	}
	f, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: size * c.m.Ratio, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return nil
	}
	if c.faces == nil {
		c.faces = make(map[float64]font.Face)
	}
	c.faces[size] = f
	return f
}

// EnsureScratch returns prev if it matches the backing buffer size and a new
// buffer otherwise.
func (c *Canvas) EnsureScratch(prev *image.RGBA) *image.RGBA {
	if prev != nil && prev.Bounds().Eq(c.img.Bounds()) {
		return prev
	}
	return image.NewRGBA(c.img.Bounds())
}

// DrawScreen scales src over the whole canvas with bilinear filtering and
// combines it using the screen blend mode. scratch must come from
// EnsureScratch.
func (c *Canvas) DrawScreen(src image.Image, scratch *image.RGBA) {
	scratch = c.EnsureScratch(scratch)
	xdraw.BiLinear.Scale(scratch, scratch.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	dst := c.img.Pix
	for i, s := range scratch.Pix {
		if s == 0 {
			continue
		}
		d := uint32(dst[i])
		dst[i] = uint8(uint32(s) + d - uint32(s)*d/255)
	}
}

func (c *Canvas) px(v float64) int { return int(v*c.m.Ratio + 0.5) }

func (c *Canvas) begin() { c.ras.Reset(c.m.BufferWidth, c.m.BufferHeight) }

func (c *Canvas) moveTo(x, y float64) {
	c.ras.MoveTo(float32(x*c.m.Ratio), float32(y*c.m.Ratio))
}

func (c *Canvas) lineTo(x, y float64) {
	c.ras.LineTo(float32(x*c.m.Ratio), float32(y*c.m.Ratio))
}

func (c *Canvas) cubeTo(bx, by, cx, cy, dx, dy float64) {
	r := c.m.Ratio
	c.ras.CubeTo(float32(bx*r), float32(by*r), float32(cx*r), float32(cy*r), float32(dx*r), float32(dy*r))
}

func (c *Canvas) fill(p Paint, alpha float64) {
	c.ras.ClosePath()
	c.ras.DrawOp = draw.Over
	c.ras.Draw(c.img, c.img.Bounds(), p.Source(c.m.Ratio, alpha), image.Point{})
}
