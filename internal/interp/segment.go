package interp

import "fmt"

// Range is a pair of bounds. From > To is legal and means inversion;
// From == To is a degenerate (instant) range.
type Range struct {
	From float64
	To   float64
}

// contains reports whether p lies inside the range, inclusive of both
// bounds, regardless of direction.
func (r Range) contains(p float64) bool {
	lo, hi := r.From, r.To
	if lo > hi {
		lo, hi = hi, lo
	}
	return p >= lo && p <= hi
}

// distance is how far p lies outside the range; 0 when contained.
func (r Range) distance(p float64) float64 {
	lo, hi := r.From, r.To
	if lo > hi {
		lo, hi = hi, lo
	}
	if p < lo {
		return lo - p
	}
	if p > hi {
		return p - hi
	}
	return 0
}

// Segment maps one input sub-range onto one output sub-range, with an
// optional easing curve applied to local progress first.
type Segment struct {
	Input  Range
	Start  Value
	End    Value
	Easing EasingFunc
}

// NewSegment builds a segment, rejecting output endpoints whose units
// disagree (a unitless endpoint mixed with a united one counts too).
func NewSegment(input Range, start, end Value, easing EasingFunc) (Segment, error) {
	if start.Unit != end.Unit {
		return Segment{}, fmt.Errorf("segment output units disagree: %q vs %q", start.String(), end.String())
	}
	return Segment{Input: input, Start: start, End: end, Easing: easing}, nil
}
