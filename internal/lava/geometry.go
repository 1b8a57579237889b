package lava

import "math"

// Geometry is the lamp layout for a logical surface size.
type Geometry struct {
	W, H         float64
	LampW, LampH float64
	CX, CY       float64
	TubeTop      float64
	TubeBot      float64
	TubeR        float64
	CapH, BaseH  float64
}

func NewGeometry(w, h float64) Geometry {
	lampW := math.Min(280, w*0.36)
	lampH := math.Min(520, h*0.78)
	cy := h * 0.52
	return Geometry{
		W: w, H: h,
		LampW: lampW, LampH: lampH,
		CX: w * 0.5, CY: cy,
		TubeTop: cy - lampH*0.38,
		TubeBot: cy + lampH*0.34,
		TubeR:   lampW * 0.18,
		CapH:    lampH * 0.09,
		BaseH:   lampH * 0.12,
	}
}

// Span is the vertical distance blobs travel through the tube.
func (g Geometry) Span() float64 { return g.TubeBot - g.TubeTop }

// Tube returns the glass rectangle.
func (g Geometry) Tube() (x, y, w, h float64) {
	w = g.LampW * 0.46
	return g.CX - w/2, g.TubeTop - 4, w, g.Span() + 8
}
