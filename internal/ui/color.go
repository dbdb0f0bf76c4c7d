package ui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

// hueColor maps a hue in degrees to a saturated terminal color.
func hueColor(degrees float64) lipgloss.Color {
	r, g, b := rgbFromHSV(degrees/360, 0.75, 0.95)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

func rgbFromHSV(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 1)
	if h < 0 {
		h += 1
	}

	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}
