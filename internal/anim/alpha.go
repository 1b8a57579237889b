package anim

// Label fade window, as fractions of the run duration.
const (
	LabelFadeStart = 0.55
	LabelFadeSpan  = 0.20
)

// Clamp01 limits x to [0, 1].
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// LabelAlpha is the caption opacity for an elapsed fraction of the run.
func LabelAlpha(progress float64) float64 {
	return Clamp01((progress - LabelFadeStart) / LabelFadeSpan)
}
