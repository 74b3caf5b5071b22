// pkg/geom/geom.go
package geom

import "math"

// Epsilon is the tolerance used for degenerate lengths and near-zero terms.
const Epsilon = 1e-9

// Vec is a point or a direction on the playfield, in pixels.
type Vec struct {
	X, Y float64
}

// V is a shorthand constructor.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns the squared length.
func (v Vec) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector in the direction of v, or the zero vector
// when v is too short to have a direction.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l < Epsilon {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Angle returns the direction of v in radians.
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Lerp interpolates from a to b; t=0 gives a, t=1 gives b.
func Lerp(a, b Vec, t float64) Vec {
	return Vec{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// SegmentDistance returns the distance from p to the closest point of the
// segment ab. A zero-length segment degrades to point distance.
func SegmentDistance(p, a, b Vec) float64 {
	ab := b.Sub(a)
	lenSq := ab.LenSq()
	if lenSq < Epsilon {
		return Dist(p, a)
	}
	t := ClampF(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return Dist(p, a.Add(ab.Scale(t)))
}

// ClampF restricts val to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Rect is an axis-aligned rectangle given by its min and max corners.
type Rect struct {
	Min, Max Vec
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
