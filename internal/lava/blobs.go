package lava

import "math"

const (
	BlobCount = 8
	// MaxDT caps the simulation step in seconds.
	MaxDT = 0.033
	// Margin is how far, in logical pixels, a blob may stray past the tube.
	Margin = 40.0
)

// Blob is one metaball.
type Blob struct {
	X, Y   float64
	R      float64
	VY     float64
	Wob    float64
	WobSpd float64
}

// Source yields values in [0, 1).
type Source interface {
	Float64() float64
}

// NewBlobs scatters BlobCount blobs through the tube.
func NewBlobs(g Geometry, rng Source) []Blob {
	blobs := make([]Blob, BlobCount)
	for i := range blobs {
		blobs[i] = Blob{
			X:      g.CX + (rng.Float64()-0.5)*g.TubeR*1.4,
			Y:      g.TubeBot - rng.Float64()*g.Span(),
			R:      g.TubeR*0.55 + rng.Float64()*g.TubeR*0.55,
			VY:     10 + rng.Float64()*20,
			Wob:    rng.Float64() * math.Pi * 2,
			WobSpd: 0.5 + rng.Float64()*1.2,
		}
	}
	return blobs
}

// Update advances every blob by dt seconds. A blob whose top clears the tube
// is recycled below the bottom with a new radius, speed and wobble speed.
func Update(blobs []Blob, g Geometry, rng Source, dt float64) {
	dt = math.Min(MaxDT, math.Max(0, dt))
	for i := range blobs {
		b := &blobs[i]
		b.Wob += b.WobSpd * dt
		b.X = g.CX + math.Sin(b.Wob)*g.TubeR*0.65 + math.Sin(b.Wob*0.37)*g.TubeR*0.18

		b.Y -= b.VY * dt
		b.Y += math.Sin(b.Wob*0.22) * 2 * dt
		if b.Y+b.R < g.TubeTop {
			b.R = g.TubeR*0.55 + rng.Float64()*g.TubeR*0.60
			b.Y = g.TubeBot + b.R + rng.Float64()*24
			b.VY = 10 + rng.Float64()*22
			b.WobSpd = 0.5 + rng.Float64()*1.2
		}
		b.Y = math.Max(g.TubeTop-b.R-Margin, math.Min(g.TubeBot+b.R+Margin, b.Y))
	}
}

// Refit maps blobs from one lamp layout onto another, keeping their
// relative height in the tube and their size relative to the tube.
func Refit(blobs []Blob, from, to Geometry) {
	if from.Span() <= 0 || from.TubeR <= 0 {
		return
	}
	sy := to.Span() / from.Span()
	sr := to.TubeR / from.TubeR
	for i := range blobs {
		b := &blobs[i]
		b.Y = to.TubeTop + (b.Y-from.TubeTop)*sy
		b.R *= sr
		b.X = to.CX + (b.X-from.CX)*sr
	}
}
