package metrics

import "github.com/guptarohit/asciigraph"

// Plot renders a series as an ASCII line chart. Series longer than width are
// averaged down.
func Plot(series []float64, width, height int, caption string) string {
	if len(series) == 0 {
		return caption + ": no samples"
	}
	data := Downsample(series, width)
	if len(data) == 1 {
		data = append(data, data[0])
	}
	return asciigraph.Plot(data, asciigraph.Height(height), asciigraph.Caption(caption))
}

// Downsample averages series into at most n buckets.
func Downsample(series []float64, n int) []float64 {
	if n <= 0 || len(series) <= n {
		return append([]float64(nil), series...)
	}
	out := make([]float64, n)
	for i := range out {
		lo := i * len(series) / n
		hi := max(lo+1, (i+1)*len(series)/n)
		sum := 0.0
		for _, v := range series[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}
