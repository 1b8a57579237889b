// Package metrics profiles intro runs: per-frame paint cost and, for the
// lava lamp, how much of the field lights up.
package metrics
