package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/fireworks/internal/raster"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// DefaultThreshold is the brightness a dot needs before it is drawn.
const DefaultThreshold = 0.12

// Canvas is a grid of braille cells, each tinted with the color of its
// brightest dot.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]colorful.Color
	peak          [][]float64
	styles        map[string]lipgloss.Style
}

func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]colorful.Color, h),
		peak:   make([][]float64, h),
		styles: make(map[string]lipgloss.Style),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]colorful.Color, w)
		c.peak[i] = make([]float64, w)
	}
	c.Clear()
	return c
}

// Set lights a dot at (x, y) in sub-pixel coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// SetColor lights a dot and tints its cell if this dot is the brightest
// seen so far in the cell.
func (c *Canvas) SetColor(x, y int, clr colorful.Color) {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return
	}
	c.Set(x, y)
	row, col := y/4, x/2
	if b := brightness(clr); b > c.peak[row][col] {
		c.peak[row][col] = b
		c.Colors[row][col] = clr
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = colorful.Color{}
			c.peak[i][j] = 0
		}
	}
}

// Sample redraws the canvas from fb. Each dot covers a scale x scale block
// of pixels and takes the block's brightest pixel; it is lit when that
// pixel's brightness reaches threshold.
func (c *Canvas) Sample(fb *raster.Framebuffer, scale int, threshold float64) {
	if scale < 1 {
		scale = 1
	}
	c.Clear()
	for dy := 0; dy < c.Height*4; dy++ {
		for dx := 0; dx < c.Width*2; dx++ {
			best, bestB := colorful.Color{}, 0.0
			for py := dy * scale; py < (dy+1)*scale; py++ {
				for px := dx * scale; px < (dx+1)*scale; px++ {
					clr := fb.At(px, py)
					if b := brightness(clr); b > bestB {
						best, bestB = clr, b
					}
				}
			}
			if bestB >= threshold {
				c.SetColor(dx, dy, best)
			}
		}
	}
}

// String renders the bare glyphs.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render renders the glyphs with per-cell foreground colors. Runs of
// cells sharing a color are styled together.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for start < len(row) {
			key := c.key(i, start)
			end := start + 1
			for end < len(row) && c.key(i, end) == key {
				end++
			}
			run := string(row[start:end])
			if key == "" {
				b.WriteString(run)
			} else {
				b.WriteString(c.style(key).Render(run))
			}
			start = end
		}
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (c *Canvas) key(row, col int) string {
	if c.Grid[row][col] == blank {
		return ""
	}
	return c.Colors[row][col].Clamped().Hex()
}

func (c *Canvas) style(hex string) lipgloss.Style {
	s, ok := c.styles[hex]
	if !ok {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		if len(c.styles) > 1024 {
			clear(c.styles)
		}
		c.styles[hex] = s
	}
	return s
}

// brightness is the HSV value, so saturated blues count as bright.
func brightness(c colorful.Color) float64 {
	return max(c.R, c.G, c.B)
}
