package draft

import (
	"fmt"
	"iter"
	"slices"

	"cogentcore.org/core/base/keylist"
)

// Graph is the result of building a [Template]: the resolved parameters and
// the named primitives, in construction order.
//
// A Graph is immutable. All coordinates are relative to its anchor at the
// origin; placing the graph in a larger drawing is up to the renderer.
// Concurrent use by multiple goroutines is safe.
type Graph struct {
	params Params
	prims  keylist.List[string, Primitive]
}

// Anchor returns the origin of the graph's coordinate system.
func (g *Graph) Anchor() Point { return Point{} }

// Params returns a copy of the resolved parameter table.
func (g *Graph) Params() Params { return slices.Clone(g.params) }

// Param returns the resolved value of the named parameter.
func (g *Graph) Param(name string) (float64, bool) { return g.params.Lookup(name) }

// Len returns the number of primitives.
func (g *Graph) Len() int { return g.prims.Len() }

// Names returns the names of all primitives, in construction order.
func (g *Graph) Names() []string { return slices.Clone(g.prims.Keys) }

// Get returns the primitive registered under name.
func (g *Graph) Get(name string) (Primitive, error) {
	p, ok := g.prims.AtTry(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingPrimitive, name)
	}
	return p, nil
}

// Lookup returns the primitive registered under name, which must be of type
// P.
func Lookup[P Primitive](g *Graph, name string) (P, error) {
	var zero P
	p, err := g.Get(name)
	if err != nil {
		return zero, err
	}
	pp, ok := p.(P)
	if !ok {
		return zero, fmt.Errorf("draft: primitive %q is a %s, not a %T", name, p.Kind(), zero)
	}
	return pp, nil
}

// All returns an iterator over names and primitives, in construction order.
func (g *Graph) All() iter.Seq2[string, Primitive] {
	return func(yield func(string, Primitive) bool) {
		for i, name := range g.prims.Keys {
			if !yield(name, g.prims.Values[i]) {
				return
			}
		}
	}
}

// Primitives returns all primitives, in construction order.
func (g *Graph) Primitives() []Primitive { return slices.Clone(g.prims.Values) }

// ReferencePoints returns the boundary points of all primitives (see
// [ReferencePoints]), without duplicates, in the order in which they were
// first seen. Two points are duplicates if they are [Point.Equal].
func (g *Graph) ReferencePoints() []Point {
	var out []Point
	seen := make(map[[2]int64]struct{})
	for _, p := range g.prims.Values {
		for _, pt := range ReferencePoints(p) {
			k := pt.Key()
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, pt)
		}
	}
	return out
}

// BoundingBox returns the smallest rectangle enclosing all primitives. The
// rectangle of an empty graph is empty, see [Rect.IsEmpty].
func (g *Graph) BoundingBox() Rect {
	r := emptyRect
	for _, p := range g.prims.Values {
		r = r.Union(p.BoundingBox())
	}
	return r
}

// Length returns the combined length of all primitives.
func (g *Graph) Length() float64 {
	var l float64
	for _, p := range g.prims.Values {
		l += Length(p)
	}
	return l
}

// PathElements returns all primitives as path elements, in construction
// order. Primitives that start where the previous one ended continue the
// same subpath.
func (g *Graph) PathElements(tolerance float64) iter.Seq[PathElement] {
	seqs := make([]iter.Seq[PathElement], len(g.prims.Values))
	for i, p := range g.prims.Values {
		seqs[i] = p.PathElements(tolerance)
	}
	return Join(seqs...)
}
