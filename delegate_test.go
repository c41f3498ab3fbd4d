package inkstroke

import (
	"runtime"
	"testing"

	"github.com/npillmayer/inkstroke/geom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cancelCounter struct {
	calls   *int
	strokes []*Stroke
}

func (c *cancelCounter) StrokeWasCancelled(s *Stroke) {
	*c.calls++
	c.strokes = append(c.strokes, s)
}

func TestCancelNotifiesOnce(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := MustNew(pencil)
	var n int
	d := &cancelCounter{calls: &n}
	SetDelegate(s, d)
	s.Cancel()
	s.Cancel()
	assert.Equal(t, 1, n)
	require.Len(t, d.strokes, 1)
	assert.Same(t, s, d.strokes[0])
	runtime.KeepAlive(d)
}

func TestCancelWithoutDelegate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := MustNew(pencil)
	_, err := s.AddPoint(geom.P(1, 1), 1, red, 1)
	require.NoError(t, err)
	assert.NotPanics(t, s.Cancel)
	assert.True(t, s.IsCancelled())
}

func TestClearDelegate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := MustNew(pencil)
	var n int
	d := &cancelCounter{calls: &n}
	SetDelegate(s, d)
	s.ClearDelegate()
	s.Cancel()
	assert.Equal(t, 0, n)

	s = MustNew(pencil)
	SetDelegate(s, d)
	SetDelegate(s, (*cancelCounter)(nil))
	s.Cancel()
	assert.Equal(t, 0, n)
	runtime.KeepAlive(d)
}

// attachShortLived attaches a delegate which is unreachable as soon as the
// function returns.
func attachShortLived(s *Stroke, calls *int) {
	SetDelegate(s, &cancelCounter{calls: calls})
}

func TestStrokeDoesNotKeepDelegateAlive(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := MustNew(pencil)
	var n int
	attachShortLived(s, &n)
	runtime.GC()
	runtime.GC()
	s.Cancel()
	assert.Equal(t, 0, n, "a collected delegate must not be notified")
	assert.True(t, s.IsCancelled())
}
