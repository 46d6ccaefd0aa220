// Package parts is a catalog of parametric drawings for building electric
// guitars: routing templates, hardware footprints and outlines.
//
// Every part is a [draft.Template]. Dimensions are in millimeters and angles
// in degrees; all parameters can be overridden by name when building.
package parts

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"honnef.co/go/draft"
)

// ErrUnknownPart is returned by [Get] for names that aren't in the catalog.
var ErrUnknownPart = errors.New("parts: unknown part")

var registry = map[string]draft.Template{
	"rounded-rect":     RoundedRect,
	"cap":              Cap,
	"pillow":           Pillow,
	"single-coil":      SingleCoilRouting,
	"humbucker":        HumbuckerRouting,
	"hardtail-bridge":  HardtailBridge,
	"fender-headstock": FenderHeadstock,
	"music-man-axis":   MusicManAxisBody,
}

// Names returns the names of all parts in the catalog, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Get returns the named part.
func Get(name string) (draft.Template, error) {
	t, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPart, name)
	}
	return t, nil
}

// Hole registers a circular hole of the given diameter, as its center point
// and two half circles. The center is registered under name, the halves as
// name+".upper" and name+".lower".
func Hole(b *draft.Builder, name string, center draft.Point, diameter float64) {
	c := b.Point(name, center)
	b.Arc(name+".upper", c, diameter/2, 0, 180)
	b.Arc(name+".lower", c, diameter/2, 180, 180)
}

// line continues prev with a straight line, unless length is too short to
// matter, in which case prev is returned unchanged. This lets outlines
// degrade gracefully when a radius consumes a whole side.
func line(b *draft.Builder, name string, prev draft.Connectable, length float64) draft.Connectable {
	if length < draft.Resolution {
		return prev
	}
	return b.ConnectLine(name, prev, length)
}

// corner turns right by 90° with the given radius, for outlines traced
// clockwise.
func corner(b *draft.Builder, name string, prev draft.Connectable, radius float64) draft.CircularArc {
	return b.ConnectArc(name, prev, -radius, -90)
}

// checkCorner fails the build unless the radius named param fits into a
// side of the given length.
func checkCorner(b *draft.Builder, param string, side float64) {
	if radius := b.Param(param); radius <= 0 || 2*radius > side+draft.Resolution {
		b.Fail(param, fmt.Errorf("%w: corner radius %g doesn't fit a side of %g", draft.ErrInvalidParameter, radius, side))
	}
}
