package draft

import (
	"fmt"
	"maps"
	"slices"
)

// Params is an ordered table of named parameters: lengths, radii and angles
// (in degrees) that drive the construction of a [Template].
//
// The default table of a template is the complete set of recognized names.
type Params []Param

// Lookup returns the value of the named parameter.
func (ps Params) Lookup(name string) (float64, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p.Value, true
		}
	}
	return 0, false
}

// Value returns the value of the named parameter, or 0 if there is none.
func (ps Params) Value(name string) float64 {
	v, _ := ps.Lookup(name)
	return v
}

// Names returns the parameter names in declaration order.
func (ps Params) Names() []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}

// Map returns the parameters as a map.
func (ps Params) Map() map[string]float64 {
	m := make(map[string]float64, len(ps))
	for _, p := range ps {
		m[p.Name] = p.Value
	}
	return m
}

// Resolve returns a copy of ps with the values in overrides replacing the
// defaults. Every key in overrides must name a parameter in ps, and every
// value must be finite.
func (ps Params) Resolve(overrides map[string]float64) (Params, error) {
	seen := make(map[string]struct{}, len(ps))
	for _, p := range ps {
		if _, ok := seen[p.Name]; ok {
			return nil, fmt.Errorf("%w: %q declared twice", ErrInvalidParameter, p.Name)
		}
		seen[p.Name] = struct{}{}
		if !isFinite(p.Value) {
			return nil, fmt.Errorf("%w: default %s = %g", ErrInvalidParameter, p.Name, p.Value)
		}
	}
	// Sort the keys so that the first offending key is reported
	// deterministically.
	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		if _, ok := seen[name]; !ok {
			return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownParameter, name, ps.Names())
		}
		if v := overrides[name]; !isFinite(v) {
			return nil, fmt.Errorf("%w: %s = %g", ErrInvalidParameter, name, v)
		}
	}

	out := slices.Clone(ps)
	for i, p := range out {
		if v, ok := overrides[p.Name]; ok {
			out[i].Value = v
		}
	}
	return out, nil
}
