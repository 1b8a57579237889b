package lava

import (
	"strconv"
	"time"
	"unicode/utf16"
)

// HashString is the 32-bit FNV-1a hash of s taken over its UTF-16 code
// units.
func HashString(s string) uint32 {
	h := uint32(2166136261)
	for _, u := range utf16.Encode([]rune(s)) {
		h ^= uint32(u)
		h *= 16777619
	}
	return h
}

// Seed derives a run seed from the label and the run's wall-clock start.
func Seed(label string, start time.Time) uint32 {
	return HashString(label + strconv.FormatInt(start.UnixMilli(), 10))
}

// Mulberry32 is a small 32-bit generator. It is used only for blob layout.
type Mulberry32 struct {
	state uint32
}

func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// Float64 returns the next value in [0, 1).
func (m *Mulberry32) Float64() float64 {
	m.state += 0x6D2B79F5
	t := m.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / 4294967296
}
