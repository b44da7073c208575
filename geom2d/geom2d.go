// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geom2d provides the planar geometric primitives the triangulation
// engine is built on: orientation, circumcircles, containment, wedge
// visibility and segment intersection. Circumcircle takes its epsilon
// explicitly; Orient, PointInTriangle and SegmentIntersect use exact
// sign and zero tests, and PointInWedge matches shared endpoints within
// DefaultEps.
package geom2d

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// DefaultEps is the default tolerance used for near-equality and
// degeneracy tests when a caller does not supply its own.
const DefaultEps = 1e-6

// ErrDegenerateTriangle is returned when a triangle's three points are
// collinear (within eps) and therefore have no circumcircle.
var ErrDegenerateTriangle = errors.New("geom2d: degenerate triangle (collinear points)")

// ErrParallelSegments is returned by SegmentIntersect when the two lines
// through the given segments do not cross.
var ErrParallelSegments = errors.New("geom2d: segments are parallel")

// Circle is a circumscribing circle: a center and a radius.
type Circle struct {
	Center r3.Vector
	Radius float64
}

// Orient returns twice the signed area of triangle (a, b, c) in the XY
// plane. The result is positive when a, b, c run counter-clockwise,
// negative when clockwise, and (within eps of) zero when collinear.
func Orient(a, b, c r3.Vector) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Circumcircle computes the center and radius of the circle passing
// through a, b and c. It fails with ErrDegenerateTriangle when the three
// points are collinear within eps.
func Circumcircle(a, b, c r3.Vector, eps float64) (Circle, error) {
	if math.Abs(Orient(a, b, c)) < eps {
		return Circle{}, fmt.Errorf("Circumcircle(%v, %v, %v): %w", a, b, c, ErrDegenerateTriangle)
	}

	ax2ay2 := a.X*a.X + a.Y*a.Y
	bx2by2 := b.X*b.X + b.Y*b.Y
	cx2cy2 := c.X*c.X + c.Y*c.Y

	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))

	ux := (ax2ay2*(b.Y-c.Y) + bx2by2*(c.Y-a.Y) + cx2cy2*(a.Y-b.Y)) / d
	uy := (ax2ay2*(c.X-b.X) + bx2by2*(a.X-c.X) + cx2cy2*(b.X-a.X)) / d

	center := r3.Vector{X: ux, Y: uy, Z: a.Z}
	radius := center.Sub(a).Norm()
	return Circle{Center: center, Radius: radius}, nil
}

// PointInTriangle reports whether p lies within triangle (a, b, c).
// includeEdges controls whether points exactly on the boundary count as
// contained.
func PointInTriangle(a, b, c, p r3.Vector, includeEdges bool) bool {
	o0 := Orient(a, b, p)
	o1 := Orient(b, c, p)
	o2 := Orient(c, a, p)

	if includeEdges {
		return (o0 >= 0 && o1 >= 0 && o2 >= 0) || (o0 <= 0 && o1 <= 0 && o2 <= 0)
	}
	return (o0 > 0 && o1 > 0 && o2 > 0) || (o0 < 0 && o1 < 0 && o2 < 0)
}

// PointInWedge reports whether p lies within the convex angular region
// (the "wedge") swept from edgeA to edgeB, two segments that share an
// endpoint. It is used to test whether a proposed diagonal swap produces
// a geometrically admissible (convex) quadrilateral.
func PointInWedge(p r3.Vector, edgeA, edgeB [2]r3.Vector) bool {
	apex := sharedEndpoint(edgeA, edgeB)
	farA := other(edgeA, apex)
	farB := other(edgeB, apex)

	oa := Orient(apex, farA, p)
	ob := Orient(apex, farB, p)

	// p must be on the same rotational side of farA as farB (inside the
	// wedge swept from edgeA around to edgeB), and vice versa.
	sweep := Orient(apex, farA, farB)
	if sweep == 0 {
		return false
	}
	if sweep > 0 {
		return oa >= 0 && ob <= 0
	}
	return oa <= 0 && ob >= 0
}

func sharedEndpoint(edgeA, edgeB [2]r3.Vector) r3.Vector {
	for _, a := range edgeA {
		for _, b := range edgeB {
			if almostEqual(a, b) {
				return a
			}
		}
	}
	// No shared endpoint: fall back to edgeA[0], which keeps the wedge
	// test total (never panics) at the cost of an arbitrary apex choice.
	return edgeA[0]
}

func other(edge [2]r3.Vector, apex r3.Vector) r3.Vector {
	if almostEqual(edge[0], apex) {
		return edge[1]
	}
	return edge[0]
}

func almostEqual(a, b r3.Vector) bool {
	return math.Abs(a.X-b.X) < DefaultEps && math.Abs(a.Y-b.Y) < DefaultEps
}

// SegmentIntersect returns the point where the infinite lines through
// segments (p1, p2) and (q1, q2) cross. It returns ErrParallelSegments
// when the two lines are parallel (including coincident).
func SegmentIntersect(p1, p2, q1, q2 r3.Vector) (r3.Vector, error) {
	d1x, d1y := p2.X-p1.X, p2.Y-p1.Y
	d2x, d2y := q2.X-q1.X, q2.Y-q1.Y

	denom := d1x*d2y - d1y*d2x
	if denom == 0 {
		return r3.Vector{}, fmt.Errorf("SegmentIntersect(%v, %v, %v, %v): %w", p1, p2, q1, q2, ErrParallelSegments)
	}

	t := ((q1.X-p1.X)*d2y - (q1.Y-p1.Y)*d2x) / denom
	return r3.Vector{
		X: p1.X + t*d1x,
		Y: p1.Y + t*d1y,
		Z: p1.Z,
	}, nil
}

// AngleDeg returns the interior angle in degrees at vertex "at", formed
// by the rays from "at" to b and from "at" to c. It returns 0 when either
// ray is degenerate (zero length).
func AngleDeg(at, b, c r3.Vector) float64 {
	ux, uy := b.X-at.X, b.Y-at.Y
	vx, vy := c.X-at.X, c.Y-at.Y

	uLen := math.Hypot(ux, uy)
	vLen := math.Hypot(vx, vy)
	if uLen == 0 || vLen == 0 {
		return 0
	}

	cos := (ux*vx + uy*vy) / (uLen * vLen)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

// MinAngleDeg returns the smallest of the three interior angles of
// triangle (a, b, c), or 0 when the triangle is degenerate (collinear).
func MinAngleDeg(a, b, c r3.Vector) float64 {
	if Orient(a, b, c) == 0 {
		return 0
	}
	angA := AngleDeg(a, b, c)
	angB := AngleDeg(b, c, a)
	angC := AngleDeg(c, a, b)
	return math.Min(angA, math.Min(angB, angC))
}
