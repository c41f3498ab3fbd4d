package spline

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/npillmayer/inkstroke/geom"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustControls(t *testing.T, knots []geom.Pair) ([]geom.Pair, []geom.Pair) {
	t.Helper()
	post, pre, err := Controls(knots)
	if err != nil {
		t.Fatalf("Controls failed: %v", err)
	}
	return post, pre
}

func near(p geom.Pair, x, y float64) bool {
	return math.Abs(p.X()-x) <= 0.0002 && math.Abs(p.Y()-y) <= 0.0002
}

func TestAsStringSkeleton(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []geom.Pair{geom.P(1, 1), geom.P(2, 2), geom.P(3, 1)}
	if got, want := AsString(knots, nil, nil), "(1,1) .. (2,2) .. (3,1)"; got != want {
		t.Fatalf("AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestPsi(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []geom.Pair{geom.P(1, 1), geom.P(2, 2), geom.P(3, 1)}
	psi1 := psi(knots, 1)
	t.Logf("psi [1->2] = %g\n", psi1*180/math.Pi) // -90
	if math.Abs(psi1*180/math.Pi+90.0) > 0.01 {
		t.Fail()
	}
	if psi(knots, 0) != 0 || psi(knots, 2) != 0 {
		t.Errorf("expected turning angle 0 at both ends of an open path")
	}
}

func TestReduceAngle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if a := reduceAngle(1.5 * math.Pi); math.Abs(a+0.5*math.Pi) > _epsilon {
		t.Errorf("expected -pi/2, got %g", a)
	}
	if a := reduceAngle(-1.5 * math.Pi); math.Abs(a-0.5*math.Pi) > _epsilon {
		t.Errorf("expected pi/2, got %g", a)
	}
}

func TestTwoKnotsAreStraight(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []geom.Pair{geom.P(0, 0), geom.P(3, 0)}
	post, pre := mustControls(t, knots)
	if !near(post[0], 1, 0) || !near(pre[1], 2, 0) {
		t.Fatalf("expected controls at thirds, got %v and %v", post[0], pre[1])
	}
	want := "(0,0) .. controls (1.0000,0.0000) and (2.0000,0.0000)\n  .. (3,0)"
	if got := AsString(knots, post, pre); got != want {
		t.Fatalf("AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestCollinearKnotsAreStraight(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []geom.Pair{geom.P(0, 0), geom.P(10, 0), geom.P(20, 0), geom.P(25, 0)}
	post, pre := mustControls(t, knots)
	for i := 0; i < len(knots)-1; i++ {
		if math.Abs(post[i].Y()) > _epsilon || math.Abs(pre[i+1].Y()) > _epsilon {
			t.Errorf("segment %d leaves the line: %v, %v", i, post[i], pre[i+1])
		}
		if post[i].X() < knots[i].X() || pre[i+1].X() > knots[i+1].X() {
			t.Errorf("segment %d controls outside of chord: %v, %v", i, post[i], pre[i+1])
		}
	}
}

// Three knots on a circle of radius 1 around (1,0) produce the well-known
// Bézier approximation of quarter circles.
func TestQuarterCircles(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelInfo)
	knots := []geom.Pair{geom.P(0, 0), geom.P(1, 1), geom.P(2, 0)}
	post, pre := mustControls(t, knots)
	t.Log(AsString(knots, post, pre))
	if !near(post[0], 0, 0.5523) {
		t.Errorf("unexpected post control[0]: %v", post[0])
	}
	if !near(pre[1], 0.4477, 1) {
		t.Errorf("unexpected pre control[1]: %v", pre[1])
	}
	if !near(post[1], 1.5523, 1) {
		t.Errorf("unexpected post control[1]: %v", post[1])
	}
	if !near(pre[2], 2, 0.5523) {
		t.Errorf("unexpected pre control[2]: %v", pre[2])
	}
}

func TestDirections(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	dirs, err := Directions([]geom.Pair{geom.P(0, 0), geom.P(1, 1), geom.P(2, 0)})
	if err != nil {
		t.Fatalf("Directions failed: %v", err)
	}
	want := []float64{math.Pi / 2, 0, -math.Pi / 2}
	for i := range want {
		if math.Abs(dirs[i]-want[i]) > 1e-6 {
			t.Errorf("direction at knot %d: got %g, want %g", i, dirs[i], want[i])
		}
	}
	if _, err := Directions([]geom.Pair{geom.P(0, 0)}); !errors.Is(err, ErrTooFewKnots) {
		t.Errorf("expected ErrTooFewKnots, got %v", err)
	}
}

func TestBetweenGivenDirections(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// leaving straight up and arriving horizontally gives a quarter circle
	c1, c2 := Between(geom.P(0, 0), geom.P(1, 1), math.Pi/2, 0)
	if !near(c1, 0, 0.5523) || !near(c2, 0.4477, 1) {
		t.Errorf("unexpected controls %v and %v", c1, c2)
	}
	// directions along the chord give a straight line
	c1, c2 = Between(geom.P(0, 0), geom.P(0, 3), math.Pi/2, math.Pi/2)
	if !near(c1, 0, 1) || !near(c2, 0, 2) {
		t.Errorf("unexpected controls %v and %v", c1, c2)
	}
}

func TestControlsRejectsTooFewKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, _, err := Controls([]geom.Pair{geom.P(0, 0)})
	if !errors.Is(err, ErrTooFewKnots) {
		t.Fatalf("expected ErrTooFewKnots, got %v", err)
	}
	_, _, err = Controls(nil)
	if !errors.Is(err, ErrTooFewKnots) {
		t.Fatalf("expected ErrTooFewKnots, got %v", err)
	}
}

func TestControlsRejectsDegenerateSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, _, err := Controls([]geom.Pair{geom.P(0, 0), geom.P(1, 0), geom.P(1, 0)})
	if !errors.Is(err, ErrDegenerateSegment) {
		t.Fatalf("expected ErrDegenerateSegment, got %v", err)
	}
}

func TestControlsRejectsInvalidKnot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, _, err := Controls([]geom.Pair{geom.P(0, 0), geom.P(math.NaN(), 0)})
	if !errors.Is(err, ErrInvalidKnot) {
		t.Fatalf("expected ErrInvalidKnot, got %v", err)
	}
}

// Find the control points for a smooth arc through three knots.
func ExampleControls() {
	knots := []geom.Pair{geom.P(0, 0), geom.P(1, 1), geom.P(2, 0)}
	post, pre, err := Controls(knots)
	if err != nil {
		panic(err)
	}
	fmt.Println(AsString(knots, post, pre))
	// Output:
	// (0,0) .. controls (0.0000,0.5523) and (0.4477,1.0000)
	//   .. (1,1) .. controls (1.5523,1.0000) and (2.0000,0.5523)
	//   .. (2,0)
}
