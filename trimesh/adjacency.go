// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package trimesh

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/polycdt/cdt2d/geom2d"
)

// AdjacencyTriangle extends Triangle with three neighbor slots: N[k] is
// the TriID of the triangle sharing edge k, or NilTri on the mesh
// boundary. It is the unit of mutation for point insertion and edge
// legalization; callers reach it only through an Arena.
type AdjacencyTriangle struct {
	Triangle
	TID TriID
	N   [3]TriID
}

// Neighbors returns the three neighbor slots, including any NilTri
// entries.
func (t *AdjacencyTriangle) Neighbors() [3]TriID { return t.N }

// NeighborsPresent returns the neighbor slots that are not NilTri.
func (t *AdjacencyTriangle) NeighborsPresent() []TriID {
	var out []TriID
	for _, n := range t.N {
		if n != NilTri {
			out = append(out, n)
		}
	}
	return out
}

func (t *AdjacencyTriangle) edgeVec(pool []r3.Vector, k int) [2]r3.Vector {
	a, b := t.EdgeIndices(k)
	return [2]r3.Vector{pool[a], pool[b]}
}

func reverseEdge(e [2]r3.Vector) [2]r3.Vector {
	return [2]r3.Vector{e[1], e[0]}
}

// isPointVisibleOverEdge0 reports whether p lies in the wedge swept
// from the reverse of edge1 to edge2 — the geometric test for "would a
// triangle with apex p, sitting across edge0, be adjacent along edge0".
func (t *AdjacencyTriangle) isPointVisibleOverEdge0(pool []r3.Vector, p r3.Vector) bool {
	return geom2d.PointInWedge(p, reverseEdge(t.edgeVec(pool, 1)), t.edgeVec(pool, 2))
}

func (t *AdjacencyTriangle) isPointVisibleOverEdge1(pool []r3.Vector, p r3.Vector) bool {
	return geom2d.PointInWedge(p, t.edgeVec(pool, 0), reverseEdge(t.edgeVec(pool, 2)))
}

func (t *AdjacencyTriangle) isPointVisibleOverEdge2(pool []r3.Vector, p r3.Vector) bool {
	return geom2d.PointInWedge(p, reverseEdge(t.edgeVec(pool, 0)), t.edgeVec(pool, 1))
}

// isPointVisibleOverEdge dispatches to isPointVisibleOverEdgeK by index.
func (t *AdjacencyTriangle) isPointVisibleOverEdge(pool []r3.Vector, k int, p r3.Vector) bool {
	switch k {
	case 0:
		return t.isPointVisibleOverEdge0(pool, p)
	case 1:
		return t.isPointVisibleOverEdge1(pool, p)
	case 2:
		return t.isPointVisibleOverEdge2(pool, p)
	}
	panic(fmt.Sprintf("trimesh: edge index must be 0, 1 or 2, got %d", k))
}

// SetNewNeighbor is called when newNeighbor is a fresh triangle that may
// share an edge with t. It sets whichever of t's neighbor slots
// correspond to a shared edge that newNeighbor's non-shared vertex is
// geometrically visible across, and returns how many slots were set.
func (t *AdjacencyTriangle) SetNewNeighbor(arena *Arena, newNeighbor TriID) int {
	other := arena.Get(newNeighbor)
	shared := t.Triangle.SharedFeatures(other.Triangle)
	if shared.NumSharedPoints != 2 || len(shared.OtherIndicesNotShared) == 0 {
		return 0
	}
	opposing := arena.Point(shared.OtherIndicesNotShared[0])

	numSet := 0
	pool := arena.Pool()
	if shared.Edge0 && t.isPointVisibleOverEdge0(pool, opposing) {
		t.N[0] = newNeighbor
		numSet++
	}
	if shared.Edge1 && t.isPointVisibleOverEdge1(pool, opposing) {
		t.N[1] = newNeighbor
		numSet++
	}
	if shared.Edge2 && t.isPointVisibleOverEdge2(pool, opposing) {
		t.N[2] = newNeighbor
		numSet++
	}
	return numSet
}

// Reverse flips the triangle's winding (I0 <-> I2) and swaps N[0] with
// N[2] so each neighbor slot keeps tracking the same physical edge:
// swapping I0 and I2 turns old edge2 into the new edge0 and old edge0
// into the new edge2, while edge1 maps onto itself (just reversed).
func (t *AdjacencyTriangle) Reverse() {
	t.Triangle.Reverse()
	t.N[0], t.N[2] = t.N[2], t.N[0]
}
