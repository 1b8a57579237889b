// Package catalog loads and normalizes the episode list that feeds the
// channel: sessions of YouTube tracks, each with an intro style and an
// optional lava palette.
package catalog
