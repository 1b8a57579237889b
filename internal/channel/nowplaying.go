package channel

import (
	"fmt"

	"github.com/acousticcorner/channel/internal/catalog"
)

// NowPlaying is what the player shows once a track starts.
type NowPlaying struct {
	Title   string
	Status  string
	VideoID string
	URL     string
}

// Describe builds the title and status lines for slot. Play-all uses the
// compact "Track i/n" suffix and appends the artist line to the status.
func Describe(slot Slot, fromPlayAll bool) NowPlaying {
	ep := slot.Episode
	idx := max(0, min(slot.Track, len(ep.Tracks)-1))
	n := len(ep.Tracks)

	np := NowPlaying{Title: ep.Title, Status: "Playing now."}
	if n > 0 {
		np.VideoID = ep.Tracks[idx].ID
		np.URL = catalog.WatchURL(np.VideoID)
	}

	switch {
	case fromPlayAll:
		if n > 1 {
			np.Title = fmt.Sprintf("%s — Track %d/%d", ep.Title, idx+1, n)
		}
		if meta := ep.MetaLine(); meta != "" {
			np.Status = "Playing now. • " + meta
		}
	case ep.IsQueue():
		np.Title = fmt.Sprintf("%s — Track %d (%d/%d)", ep.Title, idx+1, idx+1, n)
	}
	return np
}
