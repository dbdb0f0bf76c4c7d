// Package binder ties a scoped slice of global progress to property
// writes on one element.
package binder

import (
	"fmt"

	"github.com/okrete/kinema/internal/interp"
	"github.com/okrete/kinema/internal/style"
)

// Binder drives one element's properties from global progress. Each
// accepted Update rescopes progress to the binder's range, asks the
// interpolator for every value, and writes them all; the only culling is
// whole-call: an Update with the exact progress of the previous accepted
// call does nothing.
type Binder struct {
	el    style.PropertyWriter
	multi *interp.Multi

	start float64
	end   float64

	last    float64
	hasLast bool
}

// New binds a multi-interpolator to an element over the default 0..1
// progress range. The element and interpolator must be non-nil.
func New(el style.PropertyWriter, multi *interp.Multi) (*Binder, error) {
	if el == nil {
		return nil, fmt.Errorf("binder needs an element")
	}
	if multi == nil {
		return nil, fmt.Errorf("binder needs an interpolator")
	}
	return &Binder{el: el, multi: multi, start: 0, end: 1}, nil
}

// SetProgressRange rescopes subsequent updates to [start,end]. The last
// written values are not recomputed.
func (b *Binder) SetProgressRange(start, end float64) {
	b.start = start
	b.end = end
}

// Update recomputes and writes every property for the given progress.
// The first call always runs; later calls with an identical progress
// value return without side effects.
func (b *Binder) Update(progress float64) {
	if b.hasLast && progress == b.last {
		return
	}
	b.last = progress
	b.hasLast = true

	child := interp.ChildProgress(progress, b.start, b.end)
	values := b.multi.Calculate(child)
	for _, id := range b.multi.IDs() {
		b.el.SetProperty(id, values[id].String())
	}
}
