package export

import (
	"fmt"
	"image"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// FrameToSVG converts a frame to SVG, one 1x1 rect per lit pixel. Runs of
// identical pixels along a row share a rect.
func FrameToSVG(img image.Image) string {
	if img == nil {
		return ""
	}
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">
<rect width="100%%" height="100%%" fill="#000000"/>
`, width, height, width, height))

	for y := 0; y < height; y++ {
		x := 0
		for x < width {
			hex, lit := pixelHex(img, b.Min.X+x, b.Min.Y+y)
			end := x + 1
			for end < width {
				next, _ := pixelHex(img, b.Min.X+end, b.Min.Y+y)
				if next != hex {
					break
				}
				end++
			}
			if lit {
				sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="1" fill="%s"/>
`, x, y, end-x, hex))
			}
			x = end
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func pixelHex(img image.Image, x, y int) (string, bool) {
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		return "#000000", false
	}
	hex := c.Hex()
	return hex, hex != "#000000"
}
