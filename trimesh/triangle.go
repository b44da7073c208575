// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package trimesh

import (
	"fmt"
	"strconv"

	"github.com/golang/geo/r3"

	"github.com/polycdt/cdt2d/geom2d"
)

// Triangle is a single triangle: three vertex indices into a shared
// vertex pool. It carries no neighbor information of its own — see
// AdjacencyTriangle for the mesh-aware triangle the rest of this package
// operates on.
//
// Edge k opposes vertex k: edge0 carries (I1, I2), edge1 carries
// (I2, I0), edge2 carries (I0, I1).
type Triangle struct {
	I0, I1, I2 int
}

// Indices returns the triangle's three vertex indices in order.
func (t Triangle) Indices() (int, int, int) { return t.I0, t.I1, t.I2 }

// Points fetches the triangle's three vertex coordinates from pool.
func (t Triangle) Points(pool []r3.Vector) (r3.Vector, r3.Vector, r3.Vector) {
	return pool[t.I0], pool[t.I1], pool[t.I2]
}

// EdgeIndices returns the ordered vertex-index pair for edge k.
func (t Triangle) EdgeIndices(k int) (int, int) {
	switch k {
	case 0:
		return t.I1, t.I2
	case 1:
		return t.I2, t.I0
	case 2:
		return t.I0, t.I1
	}
	panic("trimesh: edge index must be 0, 1 or 2, got " + strconv.Itoa(k))
}

// Circumcircle delegates to geom2d.Circumcircle over this triangle's
// points.
func (t Triangle) Circumcircle(pool []r3.Vector, eps float64) (geom2d.Circle, error) {
	a, b, c := t.Points(pool)
	return geom2d.Circumcircle(a, b, c, eps)
}

// ContainsPoint reports whether p lies within this triangle.
func (t Triangle) ContainsPoint(pool []r3.Vector, p r3.Vector, includeEdges bool) bool {
	a, b, c := t.Points(pool)
	return geom2d.PointInTriangle(a, b, c, p, includeEdges)
}

// AngleDeg returns the interior angle at vertex k, in degrees.
func (t Triangle) AngleDeg(pool []r3.Vector, k int) float64 {
	a, b, c := t.Points(pool)
	switch k {
	case 0:
		return geom2d.AngleDeg(a, b, c)
	case 1:
		return geom2d.AngleDeg(b, c, a)
	case 2:
		return geom2d.AngleDeg(c, a, b)
	}
	panic("trimesh: vertex index must be 0, 1 or 2, got " + strconv.Itoa(k))
}

// MinAngleDeg returns the smallest of the triangle's three interior
// angles, or 0 if the triangle is degenerate.
func (t Triangle) MinAngleDeg(pool []r3.Vector) float64 {
	a, b, c := t.Points(pool)
	return geom2d.MinAngleDeg(a, b, c)
}

// IsCCW reports whether the triangle's vertices run counter-clockwise.
func (t Triangle) IsCCW(pool []r3.Vector) bool {
	a, b, c := t.Points(pool)
	return geom2d.Orient(a, b, c) > 0
}

// Reverse swaps I0 and I2, flipping the triangle's winding.
func (t *Triangle) Reverse() {
	t.I0, t.I2 = t.I2, t.I0
}

// OccupiedEdge reports which edge (if any) of the triangle the point p
// lies on. It returns "0", "1" or "2" for a single occupied edge, ""
// when p is not on any edge, and a multi-character string (e.g. "02")
// when p coincides with more than one edge at once — which can only
// happen when p is itself one of the triangle's vertices, signaling
// ErrDuplicatePoint to the caller.
func (t Triangle) OccupiedEdge(pool []r3.Vector, p r3.Vector, eps float64) string {
	a, b, c := t.Points(pool)
	edges := [3][2]r3.Vector{{b, c}, {c, a}, {a, b}}

	occupied := ""
	for k, e := range edges {
		if onSegment(e[0], e[1], p, eps) {
			occupied += strconv.Itoa(k)
		}
	}
	return occupied
}

func onSegment(a, b, p r3.Vector, eps float64) bool {
	if geom2d.Orient(a, b, p) > eps || geom2d.Orient(a, b, p) < -eps {
		return false
	}
	minX, maxX := minMax(a.X, b.X)
	minY, maxY := minMax(a.Y, b.Y)
	return p.X >= minX-eps && p.X <= maxX+eps && p.Y >= minY-eps && p.Y <= maxY+eps
}

func minMax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}

// SharedFeatures describes how self relates to other: how many vertex
// indices they have in common, which local edge (if any) carries the
// shared pair, and — for the two-shared-vertex case — the indices each
// triangle does NOT share with the other.
type SharedFeatures struct {
	NumSharedPoints int

	Edge0, Edge1, Edge2 bool

	SharedIndices         []int
	IndicesNotShared      []int
	OtherIndicesNotShared []int
}

// SharedFeatures computes the relation between self and other. Exactly
// one of Edge0/Edge1/Edge2 is true iff NumSharedPoints == 2; all three
// are false when the triangles share zero or one vertex.
func (t Triangle) SharedFeatures(other Triangle) SharedFeatures {
	selfIdx := [3]int{t.I0, t.I1, t.I2}
	otherIdx := [3]int{other.I0, other.I1, other.I2}

	var shared, notShared, otherNotShared []int
	for _, s := range selfIdx {
		if contains(otherIdx, s) {
			shared = append(shared, s)
		} else {
			notShared = append(notShared, s)
		}
	}
	for _, o := range otherIdx {
		if !contains(selfIdx, o) {
			otherNotShared = append(otherNotShared, o)
		}
	}

	sf := SharedFeatures{
		NumSharedPoints:       len(shared),
		SharedIndices:         shared,
		IndicesNotShared:      notShared,
		OtherIndicesNotShared: otherNotShared,
	}
	if len(shared) != 2 {
		return sf
	}

	e0a, e0b := t.EdgeIndices(0)
	e1a, e1b := t.EdgeIndices(1)
	e2a, e2b := t.EdgeIndices(2)
	sf.Edge0 = samePair(e0a, e0b, shared[0], shared[1])
	sf.Edge1 = samePair(e1a, e1b, shared[0], shared[1])
	sf.Edge2 = samePair(e2a, e2b, shared[0], shared[1])
	return sf
}

func samePair(a, b, x, y int) bool {
	return (a == x && b == y) || (a == y && b == x)
}

func contains(s [3]int, v int) bool {
	return s[0] == v || s[1] == v || s[2] == v
}

// GetCCWOrder returns a, b, c reordered so that the resulting triangle
// is CCW under geom2d.Orient.
func GetCCWOrder(a, b, c int, pool []r3.Vector) (int, int, int) {
	if geom2d.Orient(pool[a], pool[b], pool[c]) < 0 {
		return a, c, b
	}
	return a, b, c
}

// DummyMinAngleDeg computes the minimum interior angle of the
// hypothetical triangle (a, b, c) without constructing a Triangle value.
func DummyMinAngleDeg(a, b, c int, pool []r3.Vector) float64 {
	return geom2d.MinAngleDeg(pool[a], pool[b], pool[c])
}

// String renders the triangle's indices for diagnostics.
func (t Triangle) String() string {
	return fmt.Sprintf("(%d, %d, %d)", t.I0, t.I1, t.I2)
}
