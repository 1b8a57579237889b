package channel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/acousticcorner/channel/internal/anim"
	"github.com/acousticcorner/channel/internal/catalog"
	"github.com/acousticcorner/channel/internal/lava"
	"github.com/acousticcorner/channel/internal/surface"
)

func TestIntroSelectsRenderer(t *testing.T) {
	tests := []struct {
		intro string
		want  time.Duration
	}{
		{catalog.IntroCandle, 5 * time.Second},
		{catalog.IntroLava, 3 * time.Second},
		{"", 5 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.intro, func(t *testing.T) {
			start := time.Unix(1_700_000_000, 0)
			host, clock, sched, _ := anim.Headless(start)
			c := NewController(host, surface.New(surface.NewFixed(400, 600, 1)), lava.DefaultFieldParams(), nil)

			done := c.Intro(catalog.Episode{Artist: "Nirvana", Year: "1993", Intro: tt.intro})
			anim.Drive(clock, sched, done, 100*time.Millisecond, nil)
			if got := done.FinishedAt().Sub(start); got != tt.want {
				t.Errorf("intro lasted %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlayWaitsForIntro(t *testing.T) {
	c := NewController(anim.Host{}, surface.New(surface.NewFixed(320, 360, 1)), lava.FieldParams{}, nil)
	c.CandleSeconds = 0.05
	c.LavaSeconds = 0.05

	eps := episodes()
	eps[1].Intro = catalog.IntroLava
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	np, err := c.Play(ctx, Slot{Episode: eps[1], Track: 2}, false)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if time.Since(start) < 50*time.Millisecond {
		t.Error("Play returned before the intro finished")
	}
	if np.Title != "Session 2 — Track 3 (3/3)" {
		t.Errorf("Title = %q", np.Title)
	}
}

func TestPlayCancelled(t *testing.T) {
	c := NewController(anim.Host{}, surface.New(surface.NewFixed(320, 360, 1)), lava.FieldParams{}, nil)
	c.CandleSeconds = 10

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Play(ctx, Slot{Episode: episodes()[0]}, false)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
