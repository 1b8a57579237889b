package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/acousticcorner/channel/internal/lava"
)

// Catalog is a normalized episode list.
type Catalog struct {
	Episodes []Episode
}

type rawTrack struct {
	Title any `json:"title"`
	URL   any `json:"url"`
}

type rawEpisode struct {
	ID      any           `json:"id"`
	Title   any           `json:"title"`
	Artist  any           `json:"artist"`
	Year    any           `json:"year"`
	Intro   any           `json:"intro"`
	Badge   any           `json:"badge"`
	Mode    any           `json:"mode"`
	Palette *lava.Palette `json:"palette"`
	Tracks  []*rawTrack   `json:"tracks"`
}

// Load reads an episodes file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes either a bare episode array or an object with an
// "episodes" array, then normalizes it. Entries that are not objects or
// have no playable track are dropped.
func Parse(data []byte) (*Catalog, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		var wrapped struct {
			Episodes []json.RawMessage `json:"episodes"`
		}
		if err2 := json.Unmarshal(data, &wrapped); err2 != nil {
			return nil, fmt.Errorf("decode catalog: %w", err)
		}
		items = wrapped.Episodes
	}

	raws := make([]*rawEpisode, len(items))
	for i, item := range items {
		if !isObject(item) {
			continue
		}
		var r rawEpisode
		err := json.Unmarshal(item, &r)
		var te *json.UnmarshalTypeError
		if err == nil || errors.As(err, &te) {
			raws[i] = &r
		}
	}
	c := &Catalog{Episodes: normalize(raws)}
	if len(c.Episodes) == 0 {
		return c, ErrNoEpisodes
	}
	return c, nil
}

func isObject(b json.RawMessage) bool {
	s := strings.TrimSpace(string(b))
	return strings.HasPrefix(s, "{")
}

func normalize(raws []*rawEpisode) []Episode {
	out := make([]Episode, 0, len(raws))
	for idx, r := range raws {
		if r == nil {
			continue
		}
		ep := Episode{
			ID:      text(r.ID),
			Title:   text(r.Title),
			Artist:  text(r.Artist),
			Year:    text(r.Year),
			Intro:   text(r.Intro),
			Badge:   text(r.Badge),
			Mode:    text(r.Mode),
			Palette: r.Palette,
		}
		if ep.Title == "" {
			ep.Title = "Session " + itoa(idx+1)
		}
		if ep.Mode == "" {
			ep.Mode = ModeFullShow
		}
		if ep.ID == "" {
			ep.ID = strconv.Itoa(idx + 1)
		}
		ep.Intro = ep.IntroKind()
		for _, t := range r.Tracks {
			if t == nil {
				continue
			}
			u := text(t.URL)
			id := YouTubeID(u)
			if id == "" {
				continue
			}
			ep.Tracks = append(ep.Tracks, Track{Title: text(t.Title), URL: u, ID: id})
		}
		if len(ep.Tracks) == 0 {
			continue
		}
		out = append(out, ep)
	}
	return out
}

// text renders a decoded JSON scalar the way a template literal would.
func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

func itoa(n int) string { return strconv.Itoa(n) }

// Find returns the episode with the given id.
func (c *Catalog) Find(id string) (Episode, error) {
	for _, ep := range c.Episodes {
		if ep.ID == id {
			return ep, nil
		}
	}
	return Episode{}, fmt.Errorf("%w: %q", ErrUnknownEpisode, id)
}

// Len returns the number of playable episodes.
func (c *Catalog) Len() int { return len(c.Episodes) }
