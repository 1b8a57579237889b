package preview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Logical pixels covered by one terminal cell.
const (
	CellWidth  = 8
	CellHeight = 16
)

const halfBlock = "▀"

// Cells renders img as rows of half-block characters, cols wide and rows
// tall. Each character samples two pixels: the foreground paints the upper
// half, the background the lower.
func Cells(img *image.RGBA, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	b := img.Bounds()
	if b.Empty() {
		return ""
	}
	styles := make(map[[2]color.RGBA]lipgloss.Style)

	var sb strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			top := sample(img, c, 2*r, cols, rows*2)
			bot := sample(img, c, 2*r+1, cols, rows*2)
			key := [2]color.RGBA{top, bot}
			st, ok := styles[key]
			if !ok {
				st = lipgloss.NewStyle().Foreground(hex(top)).Background(hex(bot))
				styles[key] = st
			}
			sb.WriteString(st.Render(halfBlock))
		}
		if r < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// sample averages the block of pixels that maps to grid cell (gx, gy).
func sample(img *image.RGBA, gx, gy, gw, gh int) color.RGBA {
	b := img.Bounds()
	x0 := b.Min.X + gx*b.Dx()/gw
	x1 := max(x0+1, b.Min.X+(gx+1)*b.Dx()/gw)
	y0 := b.Min.Y + gy*b.Dy()/gh
	y1 := max(y0+1, b.Min.Y+(gy+1)*b.Dy()/gh)
	x1 = min(x1, b.Max.X)
	y1 = min(y1, b.Max.Y)

	// Stride keeps large cells cheap.
	step := max(1, (x1-x0)/4)
	var r, g, bl, n uint32
	for y := y0; y < y1; y += step {
		for x := x0; x < x1; x += step {
			p := img.RGBAAt(x, y)
			r += uint32(p.R)
			g += uint32(p.G)
			bl += uint32(p.B)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(bl / n), A: 255}
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
