// Package preview plays intros in the terminal.
//
// The bubbletea program is the host: its tick message drives the frame
// scheduler, window size messages become resize notifications, and each
// view downsamples the canvas into half-block cells so every character
// carries two vertically stacked pixels.
package preview
