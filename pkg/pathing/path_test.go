package pathing

import (
	"math"
	"testing"

	"go-td-sim/pkg/geom"
)

const floatTolerance = 1e-9

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func samePoint(a, b geom.Vec) bool {
	return almostEqual(a.X, b.X, 1e-6) && almostEqual(a.Y, b.Y, 1e-6)
}

func TestTotalLength(t *testing.T) {
	p := New([]geom.Vec{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 50}})
	if !almostEqual(p.TotalLength(), 150, floatTolerance) {
		t.Errorf("TotalLength = %f, want 150", p.TotalLength())
	}
}

func TestPointAt_Endpoints(t *testing.T) {
	paths := [][]geom.Vec{
		{{X: 0, Y: 0}, {X: 10, Y: 0}},
		{{X: 50, Y: 300}, {X: 150, Y: 300}, {X: 150, Y: 100}, {X: 300, Y: 100}},
		{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 20, Y: 5}, {X: 20, Y: 5}},
	}
	for i, pts := range paths {
		p := New(pts)
		if got := p.PointAt(0); !samePoint(got, pts[0]) {
			t.Errorf("path %d: PointAt(0) = %+v, want %+v", i, got, pts[0])
		}
		last := pts[len(pts)-1]
		if got := p.PointAt(1); !samePoint(got, last) {
			t.Errorf("path %d: PointAt(1) = %+v, want %+v", i, got, last)
		}
	}
}

func TestPointAt_Interpolates(t *testing.T) {
	p := New([]geom.Vec{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}})
	tests := []struct {
		progress float64
		want     geom.Vec
	}{
		{0.25, geom.V(50, 0)},
		{0.5, geom.V(100, 0)},
		{0.75, geom.V(100, 50)},
		{-3, geom.V(0, 0)},
		{7, geom.V(100, 100)},
	}
	for _, tt := range tests {
		if got := p.PointAt(tt.progress); !samePoint(got, tt.want) {
			t.Errorf("PointAt(%v) = %+v, want %+v", tt.progress, got, tt.want)
		}
	}
}

func TestPointAt_MonotonicArcLength(t *testing.T) {
	p := New([]geom.Vec{
		{X: 50, Y: 300}, {X: 150, Y: 300}, {X: 150, Y: 100}, {X: 150, Y: 100},
		{X: 300, Y: 100}, {X: 300, Y: 400},
	})
	// Расстояние от старта вдоль пути не убывает с ростом progress.
	prevArc := -1.0
	const steps = 200
	for i := 0; i <= steps; i++ {
		progress := float64(i) / steps
		pt := p.PointAt(progress)
		arc := arcLengthOf(p, pt)
		if arc+1e-6 < prevArc {
			t.Fatalf("arc length decreased at progress %v: %f < %f", progress, arc, prevArc)
		}
		if !almostEqual(arc, progress*p.TotalLength(), 1e-6) {
			t.Fatalf("arc length at progress %v = %f, want %f", progress, arc, progress*p.TotalLength())
		}
		prevArc = arc
	}
}

// arcLengthOf finds the first segment containing pt and returns its arc
// length from the start of the path.
func arcLengthOf(p *Path, pt geom.Vec) float64 {
	for i := 0; i+1 < len(p.points); i++ {
		if geom.SegmentDistance(pt, p.points[i], p.points[i+1]) < 1e-6 {
			return p.cumulative[i] + geom.Dist(p.points[i], pt)
		}
	}
	return math.NaN()
}

func TestDegeneratePaths(t *testing.T) {
	empty := New(nil)
	if got := empty.PointAt(0.5); got != (geom.Vec{}) {
		t.Errorf("empty path PointAt = %+v, want origin", got)
	}
	if !math.IsInf(empty.DistanceTo(geom.V(1, 1)), 1) {
		t.Error("empty path DistanceTo should be +Inf")
	}

	single := New([]geom.Vec{{X: 7, Y: 9}})
	if got := single.PointAt(0.5); got != geom.V(7, 9) {
		t.Errorf("single-point path PointAt = %+v, want (7,9)", got)
	}
	if single.TotalLength() != 0 {
		t.Errorf("single-point path length = %f", single.TotalLength())
	}

	dup := New([]geom.Vec{{X: 3, Y: 3}, {X: 3, Y: 3}})
	if got := dup.PointAt(0.7); got != geom.V(3, 3) {
		t.Errorf("zero-length path PointAt = %+v, want (3,3)", got)
	}
	if d := dup.Direction(0.5, 0.01); d != (geom.Vec{}) {
		t.Errorf("zero-length path Direction = %+v, want zero", d)
	}
}

func TestDirection(t *testing.T) {
	p := New([]geom.Vec{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}})
	if d := p.Direction(0.1, 1e-3); !samePoint(d, geom.V(1, 0)) {
		t.Errorf("Direction on first leg = %+v", d)
	}
	if d := p.Direction(1, 1e-3); !samePoint(d, geom.V(0, 1)) {
		t.Errorf("Direction at the end = %+v, want (0,1)", d)
	}
}

func TestDistanceTo(t *testing.T) {
	p := New([]geom.Vec{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}})
	if d := p.DistanceTo(geom.V(50, 20)); !almostEqual(d, 20, floatTolerance) {
		t.Errorf("DistanceTo = %f, want 20", d)
	}
	if d := p.DistanceTo(geom.V(130, 60)); !almostEqual(d, 30, floatTolerance) {
		t.Errorf("DistanceTo = %f, want 30", d)
	}
}
