package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/draft"
)

var square = draft.Blueprint{
	Params: draft.Params{{Name: "r", Value: 2}},
	Func: func(b *draft.Builder) {
		o := b.Anchor()
		var prev draft.Connectable = b.Segment("base", o, o.HMove(10))
		for _, n := range []string{"1", "2", "3", "4"} {
			c := b.ConnectArc("corner"+n, prev, b.Param("r"), 90)
			prev = b.ConnectLine("side"+n, c, 6)
		}
	},
}

func build(t *testing.T) *draft.Graph {
	t.Helper()
	g, err := draft.Build(square, nil)
	require.NoError(t, err)
	return g
}

func TestEncode(t *testing.T) {
	g := build(t)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Options{}, Placement{Graph: g, Label: "a <square>"}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-10 -20 32 30" width="32mm" height="30mm">`), out)
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Contains(t, out, `<path data-name="base" d="M0,0 L10,0"/>`)
	assert.Contains(t, out, `<path data-name="side2" d="M10,-10 L4,-10"/>`)
	assert.Contains(t, out, "a &lt;square&gt;")
	assert.Equal(t, 9, strings.Count(out, "<path "))
	assert.NotContains(t, out, "<circle")
}

func TestEncodeReferencePoints(t *testing.T) {
	g := build(t)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Options{ReferencePoints: true}, Placement{Graph: g}))
	out := buf.String()

	assert.Equal(t, len(g.ReferencePoints()), strings.Count(out, "<circle "))
	assert.Contains(t, out, `<circle cx="12" cy="-2" r="1"/>`)
	assert.Contains(t, out, ">9</text>")
	assert.NotContains(t, out, ">10</text>")
}

func TestEncodePlacements(t *testing.T) {
	g := build(t)
	var buf bytes.Buffer
	err := Encode(&buf, Options{Margin: 1, Precision: 1},
		Placement{Graph: g},
		Placement{Graph: g, Offset: draft.Vec(20, 5)})
	require.NoError(t, err)
	out := buf.String()

	// (0, 0)–(32, 15) in y-up coordinates, flipped and inflated by 1.
	assert.Contains(t, out, `viewBox="-1 -16 34 17"`)
	assert.Contains(t, out, `d="M20,-5 L30,-5"`)
	assert.Equal(t, 18, strings.Count(out, "<path "))
}

func TestEncodeTransform(t *testing.T) {
	g := build(t)

	// A quarter turn about the center (6, 5) of the bounding box.
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Options{}, Placement{Graph: g, Rotation: 90}))
	assert.Contains(t, buf.String(), `<path data-name="base" d="M11,1 L11,-9"/>`)

	// Half size, so that the document prints at 1:2.
	buf.Reset()
	require.NoError(t, Encode(&buf, Options{Margin: 1, Scale: 0.5}, Placement{Graph: g}))
	out := buf.String()
	assert.Contains(t, out, `viewBox="-1 -6 8 7" width="8mm" height="7mm"`)
	assert.Contains(t, out, `<path data-name="base" d="M0,0 L5,0"/>`)
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Encode(&buf, Options{}), ErrEmpty)

	empty, err := draft.Build(draft.Blueprint{Func: func(*draft.Builder) {}}, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, Encode(&buf, Options{}, Placement{Graph: empty}), ErrEmpty)

	assert.Error(t, Encode(&buf, Options{}, Placement{}))
	assert.Zero(t, buf.Len())
}
