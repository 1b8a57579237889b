// Package export renders intros against simulated time and keeps the
// results on disk: each run is a directory holding a looping GIF and a
// metadata.json sidecar.
package export
