// Package raster is an in-memory implementation of surface.Context.
//
// A Framebuffer holds one opaque color per pixel and composites every draw
// call source-over, the way an HTML canvas does, so partial-alpha washes
// darken what was drawn on earlier frames instead of clearing it.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/fireworks/internal/surface"
)

type drawState struct {
	fill, stroke paint
	alpha        float64
}

// Framebuffer is not safe for concurrent use.
type Framebuffer struct {
	w, h  int
	pix   []colorful.Color
	cur   drawState
	stack []drawState
	cache map[string]paint
	seen  map[int]struct{}
}

var _ surface.Context = (*Framebuffer)(nil)

func New(w, h int) *Framebuffer {
	fb := &Framebuffer{
		cache: make(map[string]paint),
		seen:  make(map[int]struct{}),
	}
	fb.cur = defaultState()
	fb.Resize(w, h)
	return fb
}

func defaultState() drawState {
	black := paint{c: colorful.Color{}, a: 1}
	return drawState{fill: black, stroke: black, alpha: 1}
}

// Resize reallocates the buffer and clears it to black. Drawing state is
// reset, as assigning a canvas's width does.
func (f *Framebuffer) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	f.w, f.h = w, h
	f.pix = make([]colorful.Color, w*h)
	f.cur = defaultState()
	f.stack = f.stack[:0]
}

func (f *Framebuffer) Size() (float64, float64) { return float64(f.w), float64(f.h) }

// Bounds returns the pixel dimensions.
func (f *Framebuffer) Bounds() (int, int) { return f.w, f.h }

// At returns the pixel color; out of range reads are black.
func (f *Framebuffer) At(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return colorful.Color{}
	}
	return f.pix[y*f.w+x]
}

func (f *Framebuffer) Save() { f.stack = append(f.stack, f.cur) }

func (f *Framebuffer) Restore() {
	if len(f.stack) == 0 {
		return
	}
	f.cur = f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
}

// SetGlobalAlpha ignores values outside [0, 1].
func (f *Framebuffer) SetGlobalAlpha(a float64) {
	if a < 0 || a > 1 || math.IsNaN(a) {
		return
	}
	f.cur.alpha = a
}

func (f *Framebuffer) SetFillStyle(c string) {
	if p, ok := f.lookup(c); ok {
		f.cur.fill = p
	}
}

func (f *Framebuffer) SetStrokeStyle(c string) {
	if p, ok := f.lookup(c); ok {
		f.cur.stroke = p
	}
}

// lookup parses through the cache. Bad colors leave the style unchanged.
func (f *Framebuffer) lookup(c string) (paint, bool) {
	if p, ok := f.cache[c]; ok {
		return p, true
	}
	p, err := parseColor(c)
	if err != nil {
		return paint{}, false
	}
	if len(f.cache) > 4096 {
		clear(f.cache)
	}
	f.cache[c] = p
	return p, true
}

// FillRect covers every pixel whose centre lies inside the rectangle.
func (f *Framebuffer) FillRect(x, y, w, h float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	x0, y0 := f.clampX(int(math.Round(x))), f.clampY(int(math.Round(y)))
	x1, y1 := f.clampX(int(math.Round(x+w))), f.clampY(int(math.Round(y+h)))
	a := f.cur.fill.a * f.cur.alpha
	for py := y0; py < y1; py++ {
		row := py * f.w
		for px := x0; px < x1; px++ {
			f.blend(row+px, f.cur.fill.c, a)
		}
	}
}

// StrokePolyline draws 1px segments between consecutive points. A pixel
// shared by two segments is painted once.
func (f *Framebuffer) StrokePolyline(pts []surface.Point) {
	if len(pts) < 2 {
		return
	}
	clear(f.seen)
	for i := 1; i < len(pts); i++ {
		f.line(
			int(math.Round(pts[i-1].X)), int(math.Round(pts[i-1].Y)),
			int(math.Round(pts[i].X)), int(math.Round(pts[i].Y)),
		)
	}
	a := f.cur.stroke.a * f.cur.alpha
	for idx := range f.seen {
		f.blend(idx, f.cur.stroke.c, a)
	}
}

// line collects pixels along a Bresenham line into f.seen.
func (f *Framebuffer) line(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		if x0 >= 0 && y0 >= 0 && x0 < f.w && y0 < f.h {
			f.seen[y0*f.w+x0] = struct{}{}
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle covers every pixel whose centre lies within r of (x, y).
func (f *Framebuffer) FillCircle(x, y, r float64) {
	if r <= 0 {
		return
	}
	x0, x1 := f.clampX(int(math.Floor(x-r))), f.clampX(int(math.Ceil(x+r))+1)
	y0, y1 := f.clampY(int(math.Floor(y-r))), f.clampY(int(math.Ceil(y+r))+1)
	r2 := r * r
	a := f.cur.fill.a * f.cur.alpha
	for py := y0; py < y1; py++ {
		dy := float64(py) + 0.5 - y
		for px := x0; px < x1; px++ {
			dx := float64(px) + 0.5 - x
			if dx*dx+dy*dy <= r2 {
				f.blend(py*f.w+px, f.cur.fill.c, a)
			}
		}
	}
}

func (f *Framebuffer) blend(idx int, c colorful.Color, a float64) {
	switch {
	case a <= 0:
	case a >= 1:
		f.pix[idx] = c
	default:
		f.pix[idx] = f.pix[idx].BlendRgb(c, a)
	}
}

// Image snapshots the buffer as 8-bit RGBA.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.w, f.h))
	for i, c := range f.pix {
		r, g, b := c.Clamped().RGB255()
		img.Set(i%f.w, i/f.w, color.RGBA{R: r, G: g, B: b, A: 0xff})
	}
	return img
}

func (f *Framebuffer) clampX(x int) int { return clampInt(x, 0, f.w) }
func (f *Framebuffer) clampY(y int) int { return clampInt(y, 0, f.h) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
