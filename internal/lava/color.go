package lava

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Default palette colors.
const (
	DefaultBlob   = "#ffb86b"
	DefaultLiquid = "#1b0f08"
	DefaultGlow   = "#ffb86b"
)

// RGB is an 8-bit color triplet.
type RGB struct {
	R, G, B uint8
}

// Palette holds the three lamp colors as hex strings.
type Palette struct {
	Blob   string `json:"blob" yaml:"blob"`
	Liquid string `json:"liquid" yaml:"liquid"`
	Glow   string `json:"glow" yaml:"glow"`
}

// WithDefaults fills empty colors with the default amber lamp.
func (p Palette) WithDefaults() Palette {
	if strings.TrimSpace(p.Blob) == "" {
		p.Blob = DefaultBlob
	}
	if strings.TrimSpace(p.Liquid) == "" {
		p.Liquid = DefaultLiquid
	}
	if strings.TrimSpace(p.Glow) == "" {
		p.Glow = DefaultGlow
	}
	return p
}

// NormalizeHex reduces s to six hex characters: the leading '#' is dropped,
// three-digit shorthand is doubled and anything else is padded with '0' or
// truncated. An empty string becomes white.
func NormalizeHex(s string) string {
	if s == "" {
		s = "#ffffff"
	}
	h := strings.TrimSpace(strings.Replace(s, "#", "", 1))
	if len([]rune(h)) == 3 {
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return b.String()
	}
	for len(h) < 6 {
		h += "0"
	}
	return h[:6]
}

// ParseHex converts a possibly malformed hex color to RGB. A well-formed
// color is parsed as is. Otherwise characters after the first non-hex digit
// are ignored and the digits before it are read as a number, so "12zz00"
// yields {0, 0, 0x12} and "12345g" yields {0x01, 0x23, 0x45}.
func ParseHex(s string) RGB {
	full := NormalizeHex(s)
	if strings.IndexFunc(full, notHex) < 0 {
		if c, err := colorful.Hex("#" + full); err == nil {
			r, g, b := c.RGB255()
			return RGB{R: r, G: g, B: b}
		}
	}
	return parsePrefix(full)
}

func parsePrefix(s string) RGB {
	var n uint32
	for _, ch := range s {
		d, ok := hexDigit(ch)
		if !ok {
			break
		}
		n = n<<4 | d
	}
	return RGB{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}
}

func notHex(r rune) bool {
	_, ok := hexDigit(r)
	return !ok
}

func hexDigit(r rune) (uint32, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint32(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint32(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint32(r-'A') + 10, true
	}
	return 0, false
}
