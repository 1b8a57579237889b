// Package lava renders the lava lamp intro.
//
// Eight metaball blobs rise through a glass tube and recycle below it. Their
// combined field is sampled on a reduced grid, banded into a core color and a
// dimmer glow fringe, then scaled over the lamp with a screen blend.
package lava
