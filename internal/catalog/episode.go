package catalog

import (
	"strings"

	"github.com/acousticcorner/channel/internal/lava"
)

// Intro styles.
const (
	IntroCandle = "candle"
	IntroLava   = "lava"
)

// Playback modes.
const (
	ModeFullShow = "fullshow"
	ModeQueue    = "queue"
)

type Track struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	ID    string `json:"id"`
}

type Episode struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Artist  string        `json:"artist"`
	Year    string        `json:"year"`
	Intro   string        `json:"intro"`
	Badge   string        `json:"badge,omitempty"`
	Palette *lava.Palette `json:"palette,omitempty"`
	Mode    string        `json:"mode"`
	Tracks  []Track       `json:"tracks"`
}

// Label is the caption shown by the intros.
func (e Episode) Label() string {
	return e.Artist + " — " + e.Year
}

// MetaLine joins the non-empty artist and year with a bullet.
func (e Episode) MetaLine() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{e.Artist, e.Year} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " • ")
}

// IntroKind returns the intro style, falling back to the candle.
func (e Episode) IntroKind() string {
	if strings.EqualFold(strings.TrimSpace(e.Intro), IntroLava) {
		return IntroLava
	}
	return IntroCandle
}

// LavaPalette returns the episode palette with defaults applied.
func (e Episode) LavaPalette() lava.Palette {
	if e.Palette == nil {
		return lava.Palette{}.WithDefaults()
	}
	return e.Palette.WithDefaults()
}

func (e Episode) IsQueue() bool { return e.Mode == ModeQueue }

// Summary describes the episode length for listings.
func (e Episode) Summary() string {
	if e.IsQueue() {
		return pluralTracks(len(e.Tracks))
	}
	return "Full session"
}

func pluralTracks(n int) string {
	if n == 1 {
		return "1 track"
	}
	return itoa(n) + " tracks"
}
