package interp

import "fmt"

// Interpolator maps a global progress value through an ordered list of
// segments to a single output value.
type Interpolator struct {
	segments []Segment
}

// NewInterpolator builds an interpolator over the given segments. All
// segments must agree on the output unit; the list must not be empty.
func NewInterpolator(segments []Segment) (*Interpolator, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("interpolator needs at least one segment")
	}
	unit := segments[0].Start.Unit
	for _, s := range segments {
		if s.Start.Unit != unit {
			return nil, fmt.Errorf("segments mix units %q and %q", unit, s.Start.Unit)
		}
	}
	return &Interpolator{segments: segments}, nil
}

// Calculate selects the active segment for progress and interpolates
// across its output range. Containment is inclusive of both bounds and the
// first matching segment in list order wins; when no segment contains
// progress, the segment with the nearest boundary is used and its mapping
// extrapolates linearly (earliest segment wins distance ties). Progress is
// never clamped here.
func (it *Interpolator) Calculate(progress float64) Value {
	seg := it.segments[0]
	found := false
	for _, s := range it.segments {
		if s.Input.contains(progress) {
			seg = s
			found = true
			break
		}
	}
	if !found {
		best := it.segments[0].Input.distance(progress)
		for _, s := range it.segments[1:] {
			if d := s.Input.distance(progress); d < best {
				best = d
				seg = s
			}
		}
	}

	var t float64
	if seg.Input.To != seg.Input.From {
		t = (progress - seg.Input.From) / (seg.Input.To - seg.Input.From)
	}
	if seg.Easing != nil {
		t = seg.Easing(t)
	}
	return Value{
		Magnitude: Lerp(seg.Start.Magnitude, seg.End.Magnitude, t),
		Unit:      seg.Start.Unit,
	}
}
