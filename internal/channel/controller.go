package channel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/acousticcorner/channel/internal/anim"
	"github.com/acousticcorner/channel/internal/candle"
	"github.com/acousticcorner/channel/internal/catalog"
	"github.com/acousticcorner/channel/internal/lava"
	"github.com/acousticcorner/channel/internal/surface"
)

// Controller runs an episode's intro on a canvas and reports what plays
// next. Zero durations use each intro's default.
type Controller struct {
	Host          anim.Host
	Canvas        *surface.Canvas
	Lava          *lava.Renderer
	CandleSeconds float64
	LavaSeconds   float64
	Logger        *slog.Logger
}

func NewController(host anim.Host, c *surface.Canvas, params lava.FieldParams, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{Host: host, Canvas: c, Lava: lava.NewRenderer(params), Logger: logger}
}

// Intro starts the renderer the episode asks for.
func (c *Controller) Intro(ep catalog.Episode) *anim.Completion {
	switch ep.IntroKind() {
	case catalog.IntroLava:
		r := c.Lava
		if r == nil {
			r = lava.NewRenderer(lava.DefaultFieldParams())
		}
		return r.Run(c.Host, c.Canvas, ep.LavaPalette(), ep.Label(), c.LavaSeconds)
	default:
		return candle.Run(c.Host, c.Canvas, ep.Label(), c.CandleSeconds)
	}
}

// Play runs the intro for slot, waits for it to finish and returns the
// now-playing lines. Cancelling ctx stops the wait but not the intro.
func (c *Controller) Play(ctx context.Context, slot Slot, fromPlayAll bool) (NowPlaying, error) {
	ep := slot.Episode
	c.logger().Info("starting intro", "episode", ep.ID, "intro", ep.IntroKind(), "label", ep.Label())
	done := c.Intro(ep)
	if err := done.Wait(ctx); err != nil {
		return NowPlaying{}, fmt.Errorf("intro for %s: %w", ep.ID, err)
	}
	np := Describe(slot, fromPlayAll)
	c.logger().Info("now playing", "title", np.Title, "video", np.VideoID)
	return np, nil
}

func (c *Controller) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
