package interp

import (
	"fmt"
	"strconv"
)

// Value is an interpolation endpoint or result: a magnitude with an
// optional unit suffix ("px", "%", "cell", ...). A Value with an empty
// unit is a plain number.
type Value struct {
	Magnitude float64
	Unit      string
}

// Number returns a unitless Value.
func Number(m float64) Value {
	return Value{Magnitude: m}
}

// ParseValue parses strings like "10px", "-4.5%", "120" into a Value.
// Everything after the leading number is taken as the unit.
func ParseValue(s string) (Value, error) {
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9') {
			i++
			continue
		}
		break
	}
	if i == 0 {
		return Value{}, fmt.Errorf("value %q has no leading number", s)
	}
	m, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return Value{}, fmt.Errorf("value %q: %w", s, err)
	}
	return Value{Magnitude: m, Unit: s[i:]}, nil
}

// String renders the shortest float form with the unit re-attached,
// so 15.0 with unit "px" comes out as "15px".
func (v Value) String() string {
	return strconv.FormatFloat(v.Magnitude, 'f', -1, 64) + v.Unit
}

// Clamp01 clamps v to the [0,1] interval.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp linearly maps t across [a,b] without clamping, so out-of-range
// t extrapolates.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ChildProgress rescopes progress from the [start,end] parent range to a
// local clamped 0..1 range. A degenerate parent range yields 0.
func ChildProgress(progress, start, end float64) float64 {
	if end == start {
		return 0
	}
	return Clamp01((progress - start) / (end - start))
}
