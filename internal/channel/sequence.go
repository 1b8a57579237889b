package channel

import (
	"math/rand/v2"

	"github.com/acousticcorner/channel/internal/catalog"
)

// Slot is one track of one episode.
type Slot struct {
	Episode catalog.Episode
	Track   int
}

// Sequence is a wrapping play order over slots.
type Sequence struct {
	slots []Slot
	pos   int
}

// PlayAll lists every track of every episode in catalog order.
func PlayAll(episodes []catalog.Episode) *Sequence {
	s := &Sequence{}
	for _, ep := range episodes {
		for ti := range ep.Tracks {
			s.slots = append(s.slots, Slot{Episode: ep, Track: ti})
		}
	}
	return s
}

// Shuffle returns the episodes in a seeded random order. The input is not
// modified.
func Shuffle(episodes []catalog.Episode, seed uint64) []catalog.Episode {
	out := append([]catalog.Episode(nil), episodes...)
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func (s *Sequence) Len() int { return len(s.slots) }

func (s *Sequence) Pos() int { return s.pos }

// Current returns the slot at the cursor. ok is false for an empty sequence.
func (s *Sequence) Current() (Slot, bool) {
	if len(s.slots) == 0 {
		return Slot{}, false
	}
	return s.slots[s.pos], true
}

// Next advances the cursor, wrapping to the start after the last slot.
func (s *Sequence) Next() (Slot, bool) {
	if len(s.slots) == 0 {
		return Slot{}, false
	}
	s.pos++
	if s.pos >= len(s.slots) {
		s.pos = 0
	}
	return s.slots[s.pos], true
}

// Seek moves the cursor, clamping to the valid range.
func (s *Sequence) Seek(i int) {
	s.pos = max(0, min(i, len(s.slots)-1))
}

// NextInQueue returns the track after idx for queue-mode episodes with more
// than one track, wrapping to the first. ok is false when the episode does
// not advance on its own.
func NextInQueue(ep catalog.Episode, idx int) (next int, ok bool) {
	if !ep.IsQueue() || len(ep.Tracks) <= 1 {
		return idx, false
	}
	next = idx + 1
	if next >= len(ep.Tracks) {
		next = 0
	}
	return next, true
}
