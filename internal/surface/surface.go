// Package surface defines the 2D drawing context the show paints on.
//
// The context mirrors the subset of an HTML canvas the show needs. Colors
// are CSS-style strings; implementations parse them, the show only builds
// them with [HSL] and [RGBA].
package surface

import "fmt"

//go:generate go tool mockgen -destination=./mocks/context_mock.go -package=mocks . Context

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Context is a stateful 2D drawing context.
type Context interface {
	// Size reports the current surface dimensions in pixels.
	Size() (w, h float64)

	// Save pushes the fill style, stroke style and global alpha.
	Save()
	// Restore pops the state pushed by the matching Save.
	Restore()

	SetGlobalAlpha(a float64)
	SetFillStyle(color string)
	SetStrokeStyle(color string)

	FillRect(x, y, w, h float64)
	StrokePolyline(pts []Point)
	FillCircle(x, y, r float64)
}

// HSL formats an hsl() color; s and l are percentages.
func HSL(h, s, l float64) string {
	return fmt.Sprintf("hsl(%.2f, %g%%, %g%%)", h, s, l)
}

// RGBA formats an rgba() color; channels are 0-255, a is 0-1.
func RGBA(r, g, b int, a float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, a)
}
