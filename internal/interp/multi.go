package interp

import "fmt"

// Config names one interpolation target: an identifier and the ordered
// segments that drive it. Configs are immutable once handed to NewMulti.
type Config struct {
	ID       string
	Segments []Segment
}

// Multi fans a single progress value out to one interpolated value per
// configured identifier.
type Multi struct {
	ids     []string
	interps map[string]*Interpolator
}

// NewMulti builds a Multi from the given configs. Identifiers must be
// unique; each config's segments are validated by NewInterpolator.
func NewMulti(configs []Config) (*Multi, error) {
	m := &Multi{interps: make(map[string]*Interpolator, len(configs))}
	for _, cfg := range configs {
		if _, dup := m.interps[cfg.ID]; dup {
			return nil, fmt.Errorf("duplicate interpolation id %q", cfg.ID)
		}
		it, err := NewInterpolator(cfg.Segments)
		if err != nil {
			return nil, fmt.Errorf("interpolation %q: %w", cfg.ID, err)
		}
		m.ids = append(m.ids, cfg.ID)
		m.interps[cfg.ID] = it
	}
	return m, nil
}

// Calculate computes the value for every identifier at the given progress.
func (m *Multi) Calculate(progress float64) map[string]Value {
	out := make(map[string]Value, len(m.ids))
	for id, it := range m.interps {
		out[id] = it.Calculate(progress)
	}
	return out
}

// IDs returns the identifiers in configuration order, for callers that
// need deterministic write order.
func (m *Multi) IDs() []string {
	return m.ids
}
