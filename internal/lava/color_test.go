package lava

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#abc", RGB{170, 187, 204}},
		{"abc", RGB{170, 187, 204}},
		{"", RGB{255, 255, 255}},
		{"#ffb86b", RGB{0xff, 0xb8, 0x6b}},
		{"  #1B0F08 ", RGB{0x1b, 0x0f, 0x08}},
		{"#12", RGB{0x12, 0x00, 0x00}},
		{"#1234", RGB{0x12, 0x34, 0x00}},
		{"#11223344", RGB{0x11, 0x22, 0x33}},
		{"#12zz00", RGB{0x00, 0x00, 0x12}},
		{"#zzzzzz", RGB{0, 0, 0}},
		{"#12345g", RGB{0x01, 0x23, 0x45}},
		{"#AbCdEf", RGB{0xab, 0xcd, 0xef}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseHex(tt.in); got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePrefixMatchesWellFormed(t *testing.T) {
	for _, in := range []string{"000000", "ffb86b", "1b0f08", "ABCDEF", "7f7f7f"} {
		if got, want := parsePrefix(in), ParseHex(in); got != want {
			t.Errorf("parsePrefix(%q) = %+v, ParseHex = %+v", in, got, want)
		}
	}
}

func TestNormalizeHex(t *testing.T) {
	if got := NormalizeHex("#abc"); got != "aabbcc" {
		t.Errorf("NormalizeHex(#abc) = %q", got)
	}
	if got := NormalizeHex(""); got != "ffffff" {
		t.Errorf("NormalizeHex(\"\") = %q", got)
	}
}

func TestPaletteWithDefaults(t *testing.T) {
	p := Palette{Blob: "#ff0000", Glow: "  "}.WithDefaults()
	if p.Blob != "#ff0000" {
		t.Errorf("blob overwritten: %q", p.Blob)
	}
	if p.Liquid != DefaultLiquid || p.Glow != DefaultGlow {
		t.Errorf("defaults not applied: %+v", p)
	}
}
