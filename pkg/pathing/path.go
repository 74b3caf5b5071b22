// pkg/pathing/path.go
package pathing

import (
	"math"

	"go-td-sim/pkg/geom"
)

// Path is an immutable polyline of waypoints. Segment lengths and their
// running sums are computed once in New.
type Path struct {
	points     []geom.Vec
	segLengths []float64
	// cumulative[i] is the arc length from points[0] to points[i].
	cumulative []float64
	total      float64
}

// New builds a path from the given waypoints. The slice is copied.
// Fewer than two points yield a degenerate path whose queries return a
// fallback point instead of failing.
func New(points []geom.Vec) *Path {
	p := &Path{
		points: append([]geom.Vec(nil), points...),
	}
	if len(p.points) == 0 {
		return p
	}
	p.cumulative = make([]float64, len(p.points))
	if len(p.points) > 1 {
		p.segLengths = make([]float64, len(p.points)-1)
	}
	for i := 1; i < len(p.points); i++ {
		l := geom.Dist(p.points[i-1], p.points[i])
		p.segLengths[i-1] = l
		p.total += l
		p.cumulative[i] = p.total
	}
	return p
}

// TotalLength returns the arc length of the whole path.
func (p *Path) TotalLength() float64 {
	return p.total
}

// Len returns the number of waypoints.
func (p *Path) Len() int {
	return len(p.points)
}

// Points returns a copy of the waypoints.
func (p *Path) Points() []geom.Vec {
	return append([]geom.Vec(nil), p.points...)
}

// Start returns the first waypoint (origin for an empty path).
func (p *Path) Start() geom.Vec {
	if len(p.points) == 0 {
		return geom.Vec{}
	}
	return p.points[0]
}

// End returns the last waypoint (origin for an empty path).
func (p *Path) End() geom.Vec {
	if len(p.points) == 0 {
		return geom.Vec{}
	}
	return p.points[len(p.points)-1]
}

// PointAt converts a normalized progress value into a position on the path.
// Progress is clamped to [0,1]; 0 is the first waypoint and 1 the last.
func (p *Path) PointAt(progress float64) geom.Vec {
	if len(p.points) < 2 || p.total < geom.Epsilon {
		return p.Start()
	}
	progress = geom.ClampF(progress, 0, 1)
	if progress <= 0 {
		return p.points[0]
	}
	if progress >= 1 {
		return p.points[len(p.points)-1]
	}

	target := progress * p.total
	for i, seg := range p.segLengths {
		// Нулевые сегменты (дубли точек) проходим насквозь.
		if seg < geom.Epsilon {
			continue
		}
		if target <= p.cumulative[i+1] {
			t := (target - p.cumulative[i]) / seg
			return geom.Lerp(p.points[i], p.points[i+1], t)
		}
	}
	return p.points[len(p.points)-1]
}

// Direction returns the unit direction of travel at the given progress,
// sampled as PointAt(progress+eps) - PointAt(progress). Near the end of the
// path the sample is taken backwards so a direction still exists. The zero
// vector is returned when no direction can be sampled.
func (p *Path) Direction(progress, eps float64) geom.Vec {
	if eps <= 0 {
		eps = 1e-3
	}
	from, to := progress, progress+eps
	if to > 1 {
		from, to = 1-eps, 1
	}
	return p.PointAt(to).Sub(p.PointAt(from)).Normalize()
}

// DistanceTo returns the shortest distance from pt to any segment of the
// path. A single-point path measures to that point; an empty path returns
// +Inf so that nothing is considered close to it.
func (p *Path) DistanceTo(pt geom.Vec) float64 {
	switch len(p.points) {
	case 0:
		return math.Inf(1)
	case 1:
		return geom.Dist(pt, p.points[0])
	}
	best := math.Inf(1)
	for i := 0; i+1 < len(p.points); i++ {
		if d := geom.SegmentDistance(pt, p.points[i], p.points[i+1]); d < best {
			best = d
		}
	}
	return best
}
