package ui

import (
	"strings"

	"github.com/okrete/kinema/internal/interp"
)

// propCells reads a cell-valued property ("14cell", "14"), rounding to a
// whole column count. Returns fallback when absent or unparseable.
func propCells(props map[string]string, name string, fallback int) int {
	raw, ok := props[name]
	if !ok {
		return fallback
	}
	v, err := interp.ParseValue(raw)
	if err != nil {
		return fallback
	}
	return int(v.Magnitude + 0.5)
}

// propHue reads a hue property in degrees. Returns fallback when absent.
func propHue(props map[string]string, fallback float64) float64 {
	raw, ok := props["--hue"]
	if !ok {
		return fallback
	}
	v, err := interp.ParseValue(raw)
	if err != nil {
		return fallback
	}
	return v.Magnitude
}

// renderElement draws one element as an offset, colored bar with its
// label above it, clipped to the available width.
func renderElement(ev elementView, avail int) string {
	x := propCells(ev.props, "--x", 0)
	w := propCells(ev.props, "--w", 10)
	if x < 0 {
		x = 0
	}
	if w < 1 {
		w = 1
	}
	if x >= avail {
		x = avail - 1
	}
	if x+w > avail {
		w = avail - x
	}

	barStyle := labelStyle.Foreground(hueColor(propHue(ev.props, 0)))
	pad := strings.Repeat(" ", x)

	label := pad + barStyle.Render(ev.label)
	bar := pad + barStyle.Render(strings.Repeat("█", w))
	return label + "\n" + bar
}
