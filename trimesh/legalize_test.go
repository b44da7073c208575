// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package trimesh

import (
	"testing"

	"github.com/golang/geo/r3"
)

// trapezoidMesh builds a convex, non-rectangular quadrilateral A,B,C,D
// split along the (B,D) diagonal, which is the worse of the two
// diagonals by minimum-angle: flipping to (A,C) improves it. A third
// triangle is attached across T0's (D,A) edge to exercise neighbor
// transfer on flip.
func trapezoidMesh() (a *Arena, t0, t1, t2 TriID) {
	pool := []r3.Vector{
		{X: 0, Y: 0}, // 0: A
		{X: 4, Y: 0}, // 1: B
		{X: 4, Y: 1}, // 2: C
		{X: 0, Y: 3}, // 3: D
		{X: -1, Y: 1}, // 4: E, apex of the externally attached triangle
	}
	a = NewArena(pool, 1e-9)

	t0 = a.Add(AdjacencyTriangle{Triangle: Triangle{I0: 0, I1: 1, I2: 3}, N: [3]TriID{NilTri, NilTri, NilTri}}) // A,B,D
	t1 = a.Add(AdjacencyTriangle{Triangle: Triangle{I0: 1, I1: 2, I2: 3}, N: [3]TriID{NilTri, NilTri, NilTri}}) // B,C,D
	t2 = a.Add(AdjacencyTriangle{Triangle: Triangle{I0: 0, I1: 3, I2: 4}, N: [3]TriID{NilTri, NilTri, NilTri}}) // A,D,E

	a.Get(t0).N[0] = t1 // edge0 = (I1,I2) = (B,D), shared with t1
	a.Get(t1).N[1] = t0 // edge1 = (I2,I0) = (D,B), shared with t0
	a.Get(t0).N[1] = t2 // edge1 = (I2,I0) = (D,A), shared with t2
	a.Get(t2).N[2] = t0 // edge2 = (I0,I1) = (A,D), shared with t0

	return a, t0, t1, t2
}

func TestLegalizeEdge_NoOp(t *testing.T) {
	a, t0, t1, _ := trapezoidMesh()

	// Edge 0 of t1, (C,D), is a boundary edge and is always legal.
	flipped, err := a.Get(t1).LegalizeEdge(0, a)
	if err != nil {
		t.Fatalf("LegalizeEdge(boundary edge) error = %v", err)
	}
	if flipped {
		t.Errorf("LegalizeEdge(boundary edge) = true, want false")
	}
	if a.Get(t0).Triangle != (Triangle{I0: 0, I1: 1, I2: 3}) {
		t.Errorf("t0 mutated by a no-op legalize: %v", a.Get(t0).Triangle)
	}
}

func TestLegalizeEdge_Flip(t *testing.T) {
	a, t0, t1, t2 := trapezoidMesh()
	pool := a.Pool()

	beforeMin := minF(a.Get(t0).MinAngleDeg(pool), a.Get(t1).MinAngleDeg(pool))

	flipped, err := a.Get(t0).LegalizeEdge(0, a)
	if err != nil {
		t.Fatalf("LegalizeEdge(0) error = %v", err)
	}
	if !flipped {
		t.Fatalf("LegalizeEdge(0) = false, want true (the (B,D) diagonal is illegal)")
	}

	tri0 := a.Get(t0)
	tri1 := a.Get(t1)

	if !tri0.IsCCW(pool) || !tri1.IsCCW(pool) {
		t.Errorf("post-flip triangles not CCW: %v, %v", tri0.Triangle, tri1.Triangle)
	}

	afterMin := minF(tri0.MinAngleDeg(pool), tri1.MinAngleDeg(pool))
	if afterMin <= beforeMin {
		t.Errorf("post-flip minimum angle %v did not improve on pre-flip %v", afterMin, beforeMin)
	}

	// The new diagonal must connect A (0) and C (2): every vertex among
	// {0,1,2,3} must appear in exactly one of tri0/tri1 other than the
	// shared pair.
	verts0 := map[int]bool{tri0.I0: true, tri0.I1: true, tri0.I2: true}
	verts1 := map[int]bool{tri1.I0: true, tri1.I1: true, tri1.I2: true}
	if !verts0[0] || !verts0[2] || !verts1[0] || !verts1[2] {
		t.Errorf("post-flip triangles %v / %v do not share the (A,C) diagonal", tri0.Triangle, tri1.Triangle)
	}

	// t2, previously adjacent to t0 across (D,A), must now point at
	// whichever of t0/t1 ended up owning that edge.
	owner := ownerOfEdge(a, t2, 0, 3)
	if owner == NilTri {
		t.Fatalf("no post-flip owner of edge (D,A) found adjacent to t2")
	}
	if a.Get(t2).N[2] != owner {
		t.Errorf("t2.N[2] = %v, want %v (the triangle now owning edge D-A)", a.Get(t2).N[2], owner)
	}
}

// rotatedTrapezoidMesh builds the same quadrilateral as trapezoidMesh but
// with its two triangles' vertex lists started at a different corner, so
// the (B,D) diagonal sits at edge index 1 of t0 and edge index 2 of t1
// instead of edge 0 — regression coverage for neighbor-slot assignment
// that only held for edge 0.
func rotatedTrapezoidMesh() (a *Arena, t0, t1, t2 TriID) {
	pool := []r3.Vector{
		{X: 0, Y: 0}, // 0: A
		{X: 4, Y: 0}, // 1: B
		{X: 4, Y: 1}, // 2: C
		{X: 0, Y: 3}, // 3: D
		{X: -1, Y: 1}, // 4: E, apex of the externally attached triangle
	}
	a = NewArena(pool, 1e-9)

	t0 = a.Add(AdjacencyTriangle{Triangle: Triangle{I0: 3, I1: 0, I2: 1}, N: [3]TriID{NilTri, NilTri, NilTri}}) // D,A,B
	t1 = a.Add(AdjacencyTriangle{Triangle: Triangle{I0: 3, I1: 1, I2: 2}, N: [3]TriID{NilTri, NilTri, NilTri}}) // D,B,C
	t2 = a.Add(AdjacencyTriangle{Triangle: Triangle{I0: 0, I1: 3, I2: 4}, N: [3]TriID{NilTri, NilTri, NilTri}}) // A,D,E

	a.Get(t0).N[1] = t1 // edge1 = (I2,I0) = (B,D), shared with t1
	a.Get(t1).N[2] = t0 // edge2 = (I0,I1) = (D,B), shared with t0
	a.Get(t0).N[2] = t2 // edge2 = (I0,I1) = (D,A), shared with t2
	a.Get(t2).N[2] = t0 // edge2 = (I0,I1) = (A,D), shared with t0

	return a, t0, t1, t2
}

// assertMutualNeighbors fails the test if any triangle in the arena names
// a neighbor that does not, in turn, name it back.
func assertMutualNeighbors(t *testing.T, a *Arena) {
	t.Helper()
	for tid := TriID(0); int(tid) < a.Len(); tid++ {
		tri := a.Get(tid)
		for k, n := range tri.N {
			if n == NilTri {
				continue
			}
			back := a.Get(n)
			found := false
			for _, bn := range back.N {
				if bn == tid {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("triangle %d edge %d names neighbor %d, but %d does not name %d back (N=%v)", tid, k, n, n, tid, back.N)
			}
		}
	}
}

func TestLegalizeEdge_Flip_NeighborSlotNonZero(t *testing.T) {
	a, t0, t1, t2 := rotatedTrapezoidMesh()
	pool := a.Pool()

	beforeMin := minF(a.Get(t0).MinAngleDeg(pool), a.Get(t1).MinAngleDeg(pool))

	flipped, err := a.Get(t0).LegalizeEdge(1, a)
	if err != nil {
		t.Fatalf("LegalizeEdge(1) error = %v", err)
	}
	if !flipped {
		t.Fatalf("LegalizeEdge(1) = false, want true (the (B,D) diagonal is illegal)")
	}

	tri0, tri1 := a.Get(t0), a.Get(t1)
	if !tri0.IsCCW(pool) || !tri1.IsCCW(pool) {
		t.Errorf("post-flip triangles not CCW: %v, %v", tri0.Triangle, tri1.Triangle)
	}

	afterMin := minF(tri0.MinAngleDeg(pool), tri1.MinAngleDeg(pool))
	if afterMin <= beforeMin {
		t.Errorf("post-flip minimum angle %v did not improve on pre-flip %v", afterMin, beforeMin)
	}

	verts0 := map[int]bool{tri0.I0: true, tri0.I1: true, tri0.I2: true}
	verts1 := map[int]bool{tri1.I0: true, tri1.I1: true, tri1.I2: true}
	if !verts0[0] || !verts0[2] || !verts1[0] || !verts1[2] {
		t.Errorf("post-flip triangles %v / %v do not share the (A,C) diagonal", tri0.Triangle, tri1.Triangle)
	}

	// t2 was attached across the edge that started out on t0's slot 2
	// (D,A) and ends up owned by whichever of t0/t1 now carries that
	// edge; its back-reference, and every other neighbor pair in the
	// arena, must stay mutually consistent regardless of which slot the
	// swap assigned it to.
	owner := ownerOfEdge(a, t2, 0, 3)
	if owner == NilTri {
		t.Fatalf("no post-flip owner of edge (D,A) found adjacent to t2")
	}
	assertMutualNeighbors(t, a)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// ownerOfEdge returns whichever of t0/t1 in the arena carries both
// vertex indices va, vb, excluding exclude.
func ownerOfEdge(a *Arena, exclude TriID, va, vb int) TriID {
	for tid := TriID(0); int(tid) < a.Len(); tid++ {
		if tid == exclude {
			continue
		}
		tri := a.Get(tid)
		has := func(v int) bool { return tri.I0 == v || tri.I1 == v || tri.I2 == v }
		if has(va) && has(vb) {
			return tid
		}
	}
	return NilTri
}
