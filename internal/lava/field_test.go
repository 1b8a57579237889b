package lava

import (
	"image"
	"testing"
)

func TestBand(t *testing.T) {
	p := DefaultFieldParams()
	tests := []struct {
		name     string
		v        float64
		wantA    uint8
		wantCore bool
	}{
		{"empty", 0.5, 0, false},
		{"glow edge", 0.9184, 0, false},
		{"at threshold is glow", 1.12, 39, false},
		{"deep core", 1.5, 216, true},
		{"core ramp", 1.22, 65, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, core := p.Band(tt.v)
			if a != tt.wantA || core != tt.wantCore {
				t.Errorf("Band(%v) = (%d, %v), want (%d, %v)", tt.v, a, core, tt.wantA, tt.wantCore)
			}
		})
	}
}

func TestFieldSize(t *testing.T) {
	w, h := DefaultFieldParams().FieldSize(400, 600)
	if w != 240 || h != 360 {
		t.Errorf("FieldSize = %dx%d", w, h)
	}
}

func TestWithDefaultsFillsZeroParams(t *testing.T) {
	p := FieldParams{Norm: 1000}.withDefaults()
	if p.Norm != 1000 || p.Scale != 0.6 || p.Threshold != 1.12 || p.GlowRatio != 0.82 {
		t.Errorf("withDefaults = %+v", p)
	}
}

func TestRasterizeCoreAtBlobCenter(t *testing.T) {
	p := DefaultFieldParams()
	g := NewGeometry(400, 600)
	fw, fh := p.FieldSize(400, 600)
	img := image.NewNRGBA(image.Rect(0, 0, fw, fh))
	img.Pix[0] = 99 // cleared by Rasterize

	blobs := []Blob{{X: 200, Y: 300, R: g.TubeR}}
	core := RGB{255, 0, 0}
	glow := RGB{0, 0, 255}
	st := Rasterize(img, p, g, blobs, core, glow)

	c := img.NRGBAAt(120, 180)
	if c.R != 255 || c.B != 0 || c.A != 216 {
		t.Errorf("blob center cell = %+v", c)
	}
	if st.Core < 1 || st.Sampled == 0 {
		t.Errorf("stats = %+v", st)
	}
	if img.Pix[0] != 0 {
		t.Error("field not cleared")
	}
	if a := img.NRGBAAt(121, 180).A; a != 0 {
		t.Errorf("neighbour cell alpha = %d", a)
	}
}

func TestRasterizeRespectsMask(t *testing.T) {
	p := DefaultFieldParams()
	g := NewGeometry(400, 600)
	fw, fh := p.FieldSize(400, 600)
	img := image.NewNRGBA(image.Rect(0, 0, fw, fh))

	// A blob parked outside the tube leaves nothing behind.
	blobs := []Blob{{X: 20, Y: 20, R: 30}}
	st := Rasterize(img, p, g, blobs, RGB{255, 255, 255}, RGB{255, 255, 255})
	if st.Core != 0 || st.Glow != 0 {
		t.Errorf("stats = %+v", st)
	}
	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("pixel byte %d set", i)
		}
	}
}

func TestRasterizeSmallBufferIsSafe(t *testing.T) {
	p := DefaultFieldParams()
	g := NewGeometry(1280, 720)
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	Rasterize(img, p, g, NewBlobs(g, NewMulberry32(3)), RGB{}, RGB{})
}
