// Package anim drives fixed-duration intro animations.
//
// An animation run is owned by a [Scene] and driven by a [Host]:
//
//   - [Clock]: monotonic time source (real or [FakeClock] for tests)
//   - [Scheduler]: per-frame callback queue tied to the display refresh
//   - [Viewport]: resize notifications for the render surface
//
// [Start] paints frames until the run's duration has elapsed and then
// resolves its [Completion] exactly once. The resize listener attached for
// the run is always removed before the completion is signalled.
//
// # Threading
//
// Frames of one run never overlap: the first is painted by the caller of
// [Start] and the rest by the goroutine that invokes scheduler callbacks.
// A [Completion] may be awaited from any goroutine.
package anim
