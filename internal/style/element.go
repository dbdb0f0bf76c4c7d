// Package style is the property sink the binder writes into: named
// string properties on scene elements, looked up by id from a document.
package style

import "fmt"

// PropertyWriter is the sink contract: set a named custom property on an
// element's inline style. Values are always strings; numbers arrive
// already stringified.
type PropertyWriter interface {
	SetProperty(name, value string)
}

// Element is a scene element with an inline property map. It is only
// mutated from the owning update loop.
type Element struct {
	id    string
	label string
	props map[string]string
	order []string
}

// NewElement creates an element with the given id and display label.
func NewElement(id, label string) *Element {
	return &Element{id: id, label: label, props: make(map[string]string)}
}

// ID returns the element's identifier.
func (e *Element) ID() string { return e.id }

// Label returns the element's display label.
func (e *Element) Label() string { return e.label }

// SetProperty sets a named property, remembering first-write order.
func (e *Element) SetProperty(name, value string) {
	if _, seen := e.props[name]; !seen {
		e.order = append(e.order, name)
	}
	e.props[name] = value
}

// Property returns a property value and whether it has been set.
func (e *Element) Property(name string) (string, bool) {
	v, ok := e.props[name]
	return v, ok
}

// Properties returns a snapshot copy of all set properties.
func (e *Element) Properties() map[string]string {
	out := make(map[string]string, len(e.props))
	for k, v := range e.props {
		out[k] = v
	}
	return out
}

// PropertyNames returns set property names in first-write order.
func (e *Element) PropertyNames() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Document is an ordered registry of elements.
type Document struct {
	elements map[string]*Element
	order    []*Element
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{elements: make(map[string]*Element)}
}

// Add registers an element, rejecting duplicate ids.
func (d *Document) Add(e *Element) error {
	if _, dup := d.elements[e.id]; dup {
		return fmt.Errorf("duplicate element id %q", e.id)
	}
	d.elements[e.id] = e
	d.order = append(d.order, e)
	return nil
}

// ElementByID resolves an element, failing fast when the id is unknown so
// binding errors surface at setup time rather than on the first update.
func (d *Document) ElementByID(id string) (*Element, error) {
	e, ok := d.elements[id]
	if !ok {
		return nil, fmt.Errorf("no element with id %q", id)
	}
	return e, nil
}

// Elements returns the elements in registration order.
func (d *Document) Elements() []*Element {
	out := make([]*Element, len(d.order))
	copy(out, d.order)
	return out
}
