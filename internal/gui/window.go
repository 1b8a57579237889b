package gui

import (
	"image"
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/acousticcorner/channel/internal/anim"
	"github.com/acousticcorner/channel/internal/surface"
)

var (
	ColBg     = rl.NewColor(5, 5, 7, 255)
	ColStatus = rl.NewColor(255, 184, 107, 255)
	ColHint   = rl.NewColor(90, 90, 100, 255)
)

// Starter begins an intro on host and canvas.
type Starter func(host anim.Host, c *surface.Canvas) *anim.Completion

type Options struct {
	Title  string
	Status string
	Width  int
	Height int
	FPS    int
	// AutoClose closes the window when the intro finishes.
	AutoClose bool
	Logger    *slog.Logger
}

// windowTarget reports the live window size. With high-DPI enabled raylib
// reports screen size in logical units and the scale separately.
type windowTarget struct{}

func (windowTarget) LayoutBox() surface.Box {
	return surface.Box{Width: float64(rl.GetScreenWidth()), Height: float64(rl.GetScreenHeight())}
}

func (windowTarget) DevicePixelRatio() float64 {
	return float64(rl.GetWindowScaleDPI().X)
}

// App hosts one intro in a native window.
type App struct {
	opts   Options
	clock  anim.Clock
	sched  *anim.ManualScheduler
	hub    *anim.ResizeHub
	canvas *surface.Canvas

	tex    rl.Texture2D
	texW   int
	texH   int
	pixels []color.RGBA
}

func initWindow(opts Options) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(rl.KeyQ)
}

func NewApp(opts Options) *App {
	if opts.Width <= 0 {
		opts.Width = 1280
	}
	if opts.Height <= 0 {
		opts.Height = 720
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Title == "" {
		opts.Title = "channel"
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &App{
		opts:  opts,
		clock: anim.SystemClock{},
		sched: anim.NewManualScheduler(),
		hub:   anim.NewResizeHub(),
	}
}

// Run opens the window, plays the intro and returns when the window closes.
func (a *App) Run(start Starter) error {
	initWindow(a.opts)
	defer rl.CloseWindow()

	a.canvas = surface.New(windowTarget{})
	host := anim.Host{Clock: a.clock, Scheduler: a.sched, Viewport: a.hub, Logger: a.opts.Logger}
	done := start(host, a.canvas)
	defer a.unloadTexture()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			a.hub.Notify()
		}
		a.sched.Tick(a.clock.Now())

		finished := done.Resolved()
		if finished && a.opts.AutoClose {
			break
		}
		if finished && rl.IsKeyPressed(rl.KeyR) {
			done = start(host, a.canvas)
			finished = false
		}
		a.draw(finished)
	}
	return nil
}

func (a *App) draw(finished bool) {
	a.upload(a.canvas.Image())

	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	sw, sh := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	src := rl.NewRectangle(0, 0, float32(a.texW), float32(a.texH))
	dst := rl.NewRectangle(0, 0, sw, sh)
	rl.DrawTexturePro(a.tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)

	if finished {
		status := a.opts.Status
		if status == "" {
			status = "Playing now."
		}
		rl.DrawText(status, 24, int32(sh)-64, 24, ColStatus)
		rl.DrawText("r replay  q quit", 24, int32(sh)-32, 16, ColHint)
	}
	rl.EndDrawing()
}

// upload copies the canvas into the GPU texture, recreating it when the
// buffer size changed.
func (a *App) upload(img *image.RGBA) {
	b := img.Bounds()
	if a.tex.ID == 0 || a.texW != b.Dx() || a.texH != b.Dy() {
		a.unloadTexture()
		blank := rl.GenImageColor(b.Dx(), b.Dy(), rl.Black)
		a.tex = rl.LoadTextureFromImage(blank)
		rl.UnloadImage(blank)
		rl.SetTextureFilter(a.tex, rl.FilterBilinear)
		a.texW, a.texH = b.Dx(), b.Dy()
	}
	a.pixels = toColors(img, a.pixels)
	rl.UpdateTexture(a.tex, a.pixels)
}

func (a *App) unloadTexture() {
	if a.tex.ID != 0 {
		rl.UnloadTexture(a.tex)
		a.tex = rl.Texture2D{}
	}
}

// toColors repacks an RGBA buffer into dst, reusing its storage.
func toColors(img *image.RGBA, dst []color.RGBA) []color.RGBA {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	if cap(dst) < n {
		dst = make([]color.RGBA, n)
	}
	dst = dst[:n]
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			p := row[x*4 : x*4+4 : x*4+4]
			dst[i] = color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
			i++
		}
	}
	return dst
}
