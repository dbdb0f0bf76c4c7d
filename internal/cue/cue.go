package cue

// Stop is a named progress bookmark.
type Stop struct {
	Name     string
	Progress float64
}

// List manages an ordered list of progress stops for bookmark navigation.
// It is only mutated from the owning update loop.
type List struct {
	stops   []Stop
	current int
}

// New creates a List from the given stops, positioned at the first.
func New(stops []Stop) *List {
	return &List{stops: stops}
}

// Current returns a pointer to the current stop, or nil if empty.
func (l *List) Current() *Stop {
	if l.current < 0 || l.current >= len(l.stops) {
		return nil
	}
	return &l.stops[l.current]
}

// Advance moves forward by one stop. Returns false if already at the end.
func (l *List) Advance() bool {
	if l.current+1 >= len(l.stops) {
		return false
	}
	l.current++
	return true
}

// Previous moves back by one stop. Returns false if already at the start.
func (l *List) Previous() bool {
	if l.current <= 0 {
		return false
	}
	l.current--
	return true
}

// Jump positions the list at stop i. Returns false if out of range.
func (l *List) Jump(i int) bool {
	if i < 0 || i >= len(l.stops) {
		return false
	}
	l.current = i
	return true
}

// Nearest positions the list at the stop closest to progress and returns
// it, or nil if empty. Earlier stops win exact ties.
func (l *List) Nearest(progress float64) *Stop {
	if len(l.stops) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(l.stops); i++ {
		if abs(l.stops[i].Progress-progress) < abs(l.stops[best].Progress-progress) {
			best = i
		}
	}
	l.current = best
	return &l.stops[best]
}

// Len returns the number of stops.
func (l *List) Len() int { return len(l.stops) }

// CurrentIndex returns the zero-based index of the current stop.
func (l *List) CurrentIndex() int { return l.current }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
