// Package candle renders the candle intro: a row of ten flickering candles
// over a dark floor, a caption that fades in late in the run and a vignette.
// Every frame is a closed-form function of elapsed time, so the scene holds
// no state besides the canvas it paints on.
package candle
