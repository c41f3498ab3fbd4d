package pathadapter

import (
	"testing"

	"github.com/npillmayer/inkstroke"
	"github.com/npillmayer/inkstroke/curve"
	"github.com/npillmayer/inkstroke/geom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestAppendJoinsConnectedElements(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	elems := []curve.Element{
		curve.Line(geom.P(0, 0), geom.P(3, 0)),
		curve.Line(geom.P(3, 0), geom.P(3, 3)),
		curve.Line(geom.P(9, 9), geom.P(12, 9)),
	}
	d := Append(nil, elems, nil)
	assert.Equal(t, []path.Command{
		path.CmdMoveTo, path.CmdCubeTo, path.CmdCubeTo,
		path.CmdMoveTo, path.CmdCubeTo,
	}, d.Cmds)
	require.Len(t, d.Coords, 11)
	assert.Equal(t, vec.Vec2{X: 0, Y: 0}, d.Coords[0])
	assert.Equal(t, vec.Vec2{X: 3, Y: 3}, d.Coords[6])
	assert.Equal(t, vec.Vec2{X: 9, Y: 9}, d.Coords[7])
	assert.Equal(t, vec.Vec2{X: 12, Y: 9}, d.Coords[10])
}

func TestAppendContinuesOpenPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := (&path.Data{}).MoveTo(vec.Vec2{X: -1, Y: 0}).LineTo(vec.Vec2{X: 0, Y: 0})
	d = Append(d, []curve.Element{curve.Line(geom.P(0, 0), geom.P(3, 0))}, nil)
	assert.Equal(t, []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdCubeTo}, d.Cmds)
}

func TestAppendTransforms(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m := geom.Translation(geom.P(10, 20)).Combine(geom.Scaling(2, 2))
	d := Append(nil, []curve.Element{curve.Line(geom.P(0, 0), geom.P(3, 0))}, m)
	require.Len(t, d.Coords, 4)
	assert.InDelta(t, 26.0, d.Coords[3].X, 1e-9)
	assert.InDelta(t, 40.0, d.Coords[3].Y, 1e-9)
}

func TestStrokeToPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := inkstroke.MustNew(inkstroke.NamedTexture("ink"))
	green := geom.ColorOf(colornames.Green)
	for i := 0; i < 8; i++ {
		_, err := s.AddPoint(geom.P(float64(10*i), float64(i%2)*5), 1, green, 1)
		require.NoError(t, err)
	}
	require.Equal(t, 6, s.Len())
	d := Stroke(s, nil)
	require.Len(t, d.Cmds, 7)
	assert.Equal(t, path.CmdMoveTo, d.Cmds[0])
	require.True(t, s.RemoveElement(s.Segments()[3]))
	d = Stroke(s, nil)
	moves := 0
	for _, c := range d.Cmds {
		if c == path.CmdMoveTo {
			moves++
		}
	}
	assert.Equal(t, 2, moves, "a removed element must leave a gap")
}
