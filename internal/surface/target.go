package surface

import (
	"math"
	"sync"
)

// Size limits of a render surface. MaxDim bounds each logical side so the
// backing buffer stays allocatable at MaxRatio.
const (
	MinWidth  = 320
	MinHeight = 360
	MaxDim    = 8192
	MinRatio  = 1.0
	MaxRatio  = 2.0
)

// Box is a layout size in CSS pixels.
type Box struct {
	Width, Height float64
}

// Target is the host-side drawable: something with a layout box and a
// device pixel ratio, such as a window, a terminal pane or a fixed buffer.
type Target interface {
	LayoutBox() Box
	DevicePixelRatio() float64
}

// Metrics is the result of sizing a surface.
type Metrics struct {
	Width, Height int // logical (CSS) pixels
	Ratio         float64
	BufferWidth   int
	BufferHeight  int
}

// Measure applies the sizing rules: logical size is the floored layout box
// clamped to [minimum, MaxDim], the ratio is clamped to [1,2] and the backing
// buffer is logical size times ratio.
func Measure(t Target) Metrics {
	box := t.LayoutBox()
	ratio := t.DevicePixelRatio()
	if !(ratio >= MinRatio) {
		ratio = MinRatio
	}
	if ratio > MaxRatio {
		ratio = MaxRatio
	}
	w := clampDim(box.Width, MinWidth)
	h := clampDim(box.Height, MinHeight)
	return Metrics{
		Width:        w,
		Height:       h,
		Ratio:        ratio,
		BufferWidth:  int(math.Floor(float64(w) * ratio)),
		BufferHeight: int(math.Floor(float64(h) * ratio)),
	}
}

func clampDim(v float64, lo int) int {
	if math.IsNaN(v) || v < float64(lo) {
		return lo
	}
	if v > MaxDim {
		return MaxDim
	}
	return int(math.Floor(v))
}

// Fixed is a Target whose size is set explicitly.
type Fixed struct {
	mu    sync.RWMutex
	box   Box
	ratio float64
}

func NewFixed(width, height, ratio float64) *Fixed {
	return &Fixed{box: Box{Width: width, Height: height}, ratio: ratio}
}

func (f *Fixed) LayoutBox() Box {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.box
}

func (f *Fixed) DevicePixelRatio() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.ratio
}

func (f *Fixed) SetBox(width, height float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.box = Box{Width: width, Height: height}
}

func (f *Fixed) SetRatio(ratio float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ratio = ratio
}
