package raster

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrBadColor = errors.New("raster: unparseable color")

// paint is a parsed CSS color with its own alpha.
type paint struct {
	c colorful.Color
	a float64
}

var named = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"lime":    "#00ff00",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"orange":  "#ffa500",
	"gray":    "#808080",
	"grey":    "#808080",
	"gold":    "#ffd700",
	"silver":  "#c0c0c0",
	"purple":  "#800080",
}

// ParseColor understands #hex, a few named colors, rgb(), rgba(), hsl()
// and hsla(). It returns the color and its alpha in [0, 1].
func ParseColor(s string) (colorful.Color, float64, error) {
	p, err := parseColor(s)
	if err != nil {
		return colorful.Color{}, 0, err
	}
	return p.c, p.a, nil
}

func parseColor(s string) (paint, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return paint{a: 0}, nil
	}
	if hex, ok := named[s]; ok {
		s = hex
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return paint{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		return paint{c: c, a: 1}, nil
	}

	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return paint{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	fn := strings.TrimSpace(s[:open])
	args := strings.Split(s[open+1:len(s)-1], ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}

	switch fn {
	case "rgb", "rgba":
		if len(args) != 3 && len(args) != 4 {
			return paint{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		var ch [3]float64
		for i := 0; i < 3; i++ {
			v, err := channel(args[i], 255)
			if err != nil {
				return paint{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
			}
			ch[i] = v
		}
		a, err := alpha(args, 3)
		if err != nil {
			return paint{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
		}
		return paint{c: colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, a: a}, nil

	case "hsl", "hsla":
		if len(args) != 3 && len(args) != 4 {
			return paint{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
		if err != nil {
			return paint{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
		}
		h = math.Mod(h, 360)
		if h < 0 {
			h += 360
		}
		sat, err := percent(args[1])
		if err != nil {
			return paint{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
		}
		light, err := percent(args[2])
		if err != nil {
			return paint{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
		}
		a, err := alpha(args, 3)
		if err != nil {
			return paint{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
		}
		return paint{c: colorful.Hsl(h, sat, light).Clamped(), a: a}, nil
	}

	return paint{}, fmt.Errorf("%w: %q", ErrBadColor, s)
}

// channel parses "128" (out of scale) or "50%" into [0, 1].
func channel(arg string, scale float64) (float64, error) {
	if strings.HasSuffix(arg, "%") {
		return percent(arg)
	}
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, err
	}
	return clamp01(v / scale), nil
}

func percent(arg string) (float64, error) {
	if !strings.HasSuffix(arg, "%") {
		return 0, fmt.Errorf("expected percentage, got %q", arg)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
	if err != nil {
		return 0, err
	}
	return clamp01(v / 100), nil
}

func alpha(args []string, idx int) (float64, error) {
	if len(args) <= idx {
		return 1, nil
	}
	return channel(args[idx], 1)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
