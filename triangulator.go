// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package cdt implements a constrained Delaunay triangulator over planar
// point sets: incremental point insertion against a synthetic
// super-triangle, followed by an optional Delaunay legalization
// (edge-flip) pass. See SPEC_FULL.md for the full design.
package cdt

import (
	"fmt"
	"log/slog"

	"github.com/golang/geo/r3"

	"github.com/polycdt/cdt2d/trimesh"
)

// Triangulator accumulates vertices and an optional input polygon/hole
// boundary, then triangulates them on a single call to Triangulate. It
// is not safe for concurrent use.
type Triangulator struct {
	pool []r3.Vector

	polygon  []int
	holes    [][]int
	inHole   bool
	currHole []int

	bounds         Bounds
	universalZ     float64
	eps            float64
	boundsSentinel float64

	onVertexCreated func(x, y, z float64)
	log             *slog.Logger

	arena                 *trimesh.Arena
	lastStaticVertexIndex int
	triangulated          bool

	vertexTriOffsets      []int
	vertexTriIndices      []trimesh.TriID
	vertexNeighborOffsets []int
	vertexNeighborIndices []int
}

// New constructs a Triangulator, applying opts in order. An error from
// any option aborts construction and is returned unwrapped.
func New(opts ...Option) (*Triangulator, error) {
	t := &Triangulator{
		eps:            defaultEps,
		boundsSentinel: defaultBoundsSentinel,
		log:            newDiscardLogger(),
	}
	t.bounds = newBounds(t.boundsSentinel)

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	// WithBoundsSentinel may have run after the zero-value bounds were
	// seeded from the default sentinel; reseed so every side reflects
	// whichever sentinel opts settled on.
	t.bounds = newBounds(t.boundsSentinel)
	return t, nil
}

// AddVertex appends a new vertex at (x, y, z) to the pool and returns
// its index. z is accepted for interface symmetry with the rest of the
// builder API but is not stored: every vertex in the pool carries
// universalZ, matching the originating triangulator's own vertex
// writer, which likewise ignores the z it's handed.
func (t *Triangulator) AddVertex(x, y, z float64) int {
	return t.AddVertexPoint(r3.Vector{X: x, Y: y, Z: t.universalZ})
}

// AddVertexPoint appends p to the pool (stamping Z with universalZ) and
// returns its index.
func (t *Triangulator) AddVertexPoint(p r3.Vector) int {
	p.Z = t.universalZ
	vid := len(t.pool)
	t.pool = append(t.pool, p)
	t.bounds.Update(p.X, p.Y)
	if t.onVertexCreated != nil {
		t.onVertexCreated(p.X, p.Y, p.Z)
	}
	return vid
}

// AddVertexToPolygon adds a new vertex and appends it to the polygon
// boundary in one step, returning its index.
func (t *Triangulator) AddVertexToPolygon(x, y, z float64) int {
	vid := t.AddVertex(x, y, z)
	t.AddPolygonVertex(vid)
	return vid
}

// AddVertexToHole adds a new vertex and appends it to the current hole
// boundary in one step, returning its index. BeginHole need not be
// called first; the first AddVertexToHole/AddHoleVertex call opens the
// initial hole implicitly.
func (t *Triangulator) AddVertexToHole(x, y, z float64) int {
	vid := t.AddVertex(x, y, z)
	t.AddHoleVertex(vid)
	return vid
}

// AddPolygonVertex appends an already-added vertex index to the polygon
// boundary.
func (t *Triangulator) AddPolygonVertex(vid int) {
	t.polygon = append(t.polygon, vid)
}

// AddHoleVertex appends an already-added vertex index to the current
// hole boundary, opening one implicitly if none is open.
func (t *Triangulator) AddHoleVertex(vid int) {
	t.inHole = true
	t.currHole = append(t.currHole, vid)
}

// BeginHole closes the current hole boundary (if any vertices were
// added to it) and starts a new one. Calling it with no vertices added
// to the current hole is a no-op, so callers can call it unconditionally
// before each hole's first vertex.
func (t *Triangulator) BeginHole() {
	if len(t.currHole) == 0 {
		return
	}
	t.holes = append(t.holes, t.currHole)
	t.currHole = nil
	t.inHole = false
}

func (t *Triangulator) flushHole() {
	if len(t.currHole) > 0 {
		t.holes = append(t.holes, t.currHole)
		t.currHole = nil
	}
}

// Triangulate builds the mesh over every vertex on the polygon
// boundary, plus the synthetic super-triangle. It fails with
// ErrAlreadyTriangulated if called more than once. When makeDelaunay is
// true, every triangle incident to the inserted vertex (the pieces the
// insertion created and the ones it rewrote in place) is passed through
// LegalizeEdge on all three edges after insertion.
//
// Hole boundaries are recorded and retrievable via Holes but are not
// drained into the insertion loop: carving constrained edges out of the
// mesh along a hole boundary is documented as future work, not
// performed here, matching the originating triangulator this design is
// based on.
func (t *Triangulator) Triangulate(makeDelaunay bool) error {
	if t.triangulated {
		return ErrAlreadyTriangulated
	}
	t.flushHole()

	topLeft, bottomLeft, farRight, err := superTriangleCorners(t.bounds, t.universalZ)
	if err != nil {
		return fmt.Errorf("Triangulate: computing super-triangle: %w", err)
	}
	t.lastStaticVertexIndex = len(t.pool) - 1

	i0 := t.AddVertexPoint(topLeft)
	i1 := t.AddVertexPoint(bottomLeft)
	i2 := t.AddVertexPoint(farRight)

	arena := trimesh.NewArena(t.pool, t.eps)
	i0, i1, i2 = trimesh.GetCCWOrder(i0, i1, i2, arena.Pool())
	boundsTID := arena.Add(trimesh.AdjacencyTriangle{
		Triangle: trimesh.Triangle{I0: i0, I1: i1, I2: i2},
		N:        [3]trimesh.TriID{trimesh.NilTri, trimesh.NilTri, trimesh.NilTri},
	})

	t.log.Debug("super-triangle built", "topLeft", topLeft, "bottomLeft", bottomLeft, "farRight", farRight)

	for len(t.polygon) > 0 {
		n := len(t.polygon) - 1
		pid := t.polygon[n]
		t.polygon = t.polygon[:n]

		p := arena.Point(pid)
		seed := arena.Get(boundsTID)
		found, err := trimesh.FindContainingTriangle(arena, seed, p)
		if err != nil {
			return fmt.Errorf("Triangulate: locating vertex %d: %w: %w", pid, ErrPointOutsideDomain, err)
		}

		if _, err := found.TriangulatePoint(arena, pid); err != nil {
			return fmt.Errorf("Triangulate: inserting vertex %d: %w", pid, err)
		}

		if makeDelaunay {
			for tid := trimesh.TriID(0); int(tid) < arena.Len(); tid++ {
				tri := arena.Get(tid)
				if tri.I0 != pid && tri.I1 != pid && tri.I2 != pid {
					continue
				}
				for k := 0; k < 3; k++ {
					if _, err := tri.LegalizeEdge(k, arena); err != nil {
						return fmt.Errorf("Triangulate: legalizing triangle %d edge %d: %w", tid, k, err)
					}
				}
			}
		}
	}

	t.arena = arena
	t.pool = arena.Pool()
	t.triangulated = true
	t.log.Info("triangulation complete", "vertices", len(t.pool), "triangles", arena.Len())
	return nil
}

// NumTriangles returns the number of triangles in the arena, including
// any that cite a super-triangle vertex.
func (t *Triangulator) NumTriangles() (int, error) {
	if !t.triangulated {
		return 0, ErrNotTriangulatedYet
	}
	return t.arena.Len(), nil
}

// NumVertices returns the total number of vertices added, including the
// three synthetic super-triangle corners once Triangulate has run.
func (t *Triangulator) NumVertices() int { return len(t.pool) }

// Vertex returns the coordinates of vertex n.
func (t *Triangulator) Vertex(n int) (r3.Vector, error) {
	if n < 0 || n >= len(t.pool) {
		return r3.Vector{}, fmt.Errorf("Vertex: index %d out of range [0, %d)", n, len(t.pool))
	}
	return t.pool[n], nil
}

// Vertices returns every vertex in the pool, in index order.
func (t *Triangulator) Vertices() []r3.Vector {
	out := make([]r3.Vector, len(t.pool))
	copy(out, t.pool)
	return out
}

// Triangles returns a snapshot of every triangle in the arena.
func (t *Triangulator) Triangles() ([]trimesh.AdjacencyTriangle, error) {
	if !t.triangulated {
		return nil, ErrNotTriangulatedYet
	}
	return t.arena.All(), nil
}

// InteriorTriangles returns every triangle that cites only vertices
// present before Triangulate synthesized the super-triangle, i.e. it
// excludes any triangle still touching a super-triangle corner.
func (t *Triangulator) InteriorTriangles() ([]trimesh.AdjacencyTriangle, error) {
	all, err := t.Triangles()
	if err != nil {
		return nil, err
	}
	out := all[:0:0]
	for _, tri := range all {
		i0, i1, i2 := tri.Indices()
		if i0 > t.lastStaticVertexIndex || i1 > t.lastStaticVertexIndex || i2 > t.lastStaticVertexIndex {
			continue
		}
		out = append(out, tri)
	}
	return out, nil
}

// AdjacencyList is an alias for Triangles: the arena snapshot already
// carries each triangle's neighbor TriIDs.
func (t *Triangulator) AdjacencyList() ([]trimesh.AdjacencyTriangle, error) {
	return t.Triangles()
}

// Holes returns the recorded hole boundary vertex-index lists, in the
// order BeginHole closed them.
func (t *Triangulator) Holes() [][]int {
	out := make([][]int, len(t.holes))
	copy(out, t.holes)
	return out
}

// IsLeftWinding reports whether the mesh's first arena triangle winds
// clockwise (the mirror image of the CCW convention every other
// operation in this package assumes).
func (t *Triangulator) IsLeftWinding() (bool, error) {
	if !t.triangulated {
		return false, ErrNotTriangulatedYet
	}
	all := t.arena.All()
	if len(all) == 0 {
		return false, nil
	}
	return !all[0].IsCCW(t.arena.Pool()), nil
}

// IsTriangulated reports whether Triangulate has completed successfully.
func (t *Triangulator) IsTriangulated() bool { return t.triangulated }

// LastStaticVertexIndex returns the index of the last vertex added
// before Triangulate synthesized the super-triangle corners. Indices
// above this one belong to the super-triangle.
func (t *Triangulator) LastStaticVertexIndex() int { return t.lastStaticVertexIndex }

// Clear is not supported: rebuilding from scratch requires a new
// Triangulator.
func (t *Triangulator) Clear() error { return ErrNotImplemented }

// ClearPolygon is not supported: see Clear.
func (t *Triangulator) ClearPolygon() error { return ErrNotImplemented }
