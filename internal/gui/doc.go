// Package gui plays intros in a resizable raylib window. The canvas is
// uploaded to a texture every frame and stretched over the window.
package gui
