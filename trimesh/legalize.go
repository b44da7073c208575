// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package trimesh

import (
	"fmt"
	"math"
)

// LegalizeEdge checks whether edge k of t is Delaunay-legal and, if not,
// flips it (swapping the shared diagonal with the neighbor across that
// edge) and reports true. A boundary edge (no neighbor) is always legal.
// Legality is judged by comparing the minimum interior angle across the
// two triangles either side of the edge against the minimum angle the
// alternative diagonal would produce — the diagonal that maximizes the
// minimum angle wins, matching the ghost-triangle angle test the
// algorithm is built on rather than an explicit circumcircle predicate.
func (t *AdjacencyTriangle) LegalizeEdge(k int, arena *Arena) (bool, error) {
	legal, neighborID := t.isLegal(arena, k)
	if legal || neighborID == NilTri {
		return false, nil
	}
	if err := t.swapEdge(arena, k); err != nil {
		return false, err
	}

	// The flip rewrote both triangles to the canonical post-swap layout,
	// where t's edge1 and neighbor's edge2 are the new shared diagonal.
	// The other four edges are newly adjacent to whatever was on the far
	// side of the old diagonal and may themselves now be illegal, so
	// recurse on each once — the same follow-up the Python swap() makes
	// by calling legalizeEdge on the quad's outer edges after flipping.
	neighbor := arena.Get(neighborID)
	if _, err := t.LegalizeEdge(0, arena); err != nil {
		return true, err
	}
	if _, err := t.LegalizeEdge(2, arena); err != nil {
		return true, err
	}
	if _, err := neighbor.LegalizeEdge(0, arena); err != nil {
		return true, err
	}
	if _, err := neighbor.LegalizeEdge(1, arena); err != nil {
		return true, err
	}
	return true, nil
}

func (t *AdjacencyTriangle) isLegal(arena *Arena, k int) (bool, TriID) {
	neighborID := t.N[k]
	if neighborID == NilTri {
		return true, NilTri
	}
	neighbor := arena.Get(neighborID)

	sharedN := neighbor.Triangle.SharedFeatures(t.Triangle)
	if sharedN.NumSharedPoints != 2 || len(sharedN.IndicesNotShared) == 0 {
		return true, neighborID
	}

	pool := arena.Pool()
	s1, s2 := t.EdgeIndices(k)
	apexT := apexVertex(t.Triangle, k)
	apexN := sharedN.IndicesNotShared[0]

	if !t.isPointVisibleOverEdge(pool, k, pool[apexN]) {
		// The quad isn't convex from this side: swapping would produce a
		// self-intersecting pair of triangles, so the current diagonal
		// stands regardless of angle.
		return true, neighborID
	}

	currentMin := math.Min(t.MinAngleDeg(pool), neighbor.MinAngleDeg(pool))
	altMin := math.Min(
		DummyMinAngleDeg(apexT, s1, apexN, pool),
		DummyMinAngleDeg(apexT, apexN, s2, pool),
	)
	return altMin <= currentMin+arena.Eps(), neighborID
}

// swapEdge performs the diagonal flip across edge k of t: the quad
// formed by t and its neighbor on that edge is re-triangulated along the
// other diagonal, by rewriting t's and the neighbor's vertex indices in
// place (their TIDs never change) and repointing neighbor slots as
// needed.
func (t *AdjacencyTriangle) swapEdge(arena *Arena, k int) error {
	neighborID := t.N[k]
	if neighborID == NilTri {
		return fmt.Errorf("swapEdge: triangle %d has no neighbor on edge %d: %w", t.TID, k, ErrNoSharedEdge)
	}
	neighbor := arena.Get(neighborID)

	s1, s2 := t.EdgeIndices(k)
	apexT := apexVertex(t.Triangle, k)

	sharedN := neighbor.Triangle.SharedFeatures(t.Triangle)
	if sharedN.NumSharedPoints != 2 || len(sharedN.IndicesNotShared) == 0 {
		return fmt.Errorf("swapEdge: triangle %d and %d do not share an edge: %w", t.TID, neighborID, ErrNoSharedEdge)
	}
	apexN := sharedN.IndicesNotShared[0]
	kN := sharedEdgeIndex(sharedN)

	oT1, oT2 := (k+1)%3, (k+2)%3
	oldTN1, oldTN2 := t.N[oT1], t.N[oT2]
	pairT1a, pairT1b := t.EdgeIndices(oT1)
	pairT2a, pairT2b := t.EdgeIndices(oT2)

	oN1, oN2 := (kN+1)%3, (kN+2)%3
	oldNN1, oldNN2 := neighbor.N[oN1], neighbor.N[oN2]
	pairN1a, pairN1b := neighbor.EdgeIndices(oN1)
	pairN2a, pairN2b := neighbor.EdgeIndices(oN2)

	var newTk TriID
	switch {
	case samePair(pairN1a, pairN1b, s1, apexN):
		newTk = oldNN1
	case samePair(pairN2a, pairN2b, s1, apexN):
		newTk = oldNN2
	default:
		return fmt.Errorf("swapEdge: could not locate quad edge (%d, %d) around triangle %d: %w", s1, apexN, neighborID, ErrNoSharedEdge)
	}

	var newNkN TriID
	switch {
	case samePair(pairT1a, pairT1b, s2, apexT):
		newNkN = oldTN1
	case samePair(pairT2a, pairT2b, s2, apexT):
		newNkN = oldTN2
	default:
		return fmt.Errorf("swapEdge: could not locate quad edge (%d, %d) around triangle %d: %w", s2, apexT, t.TID, ErrNoSharedEdge)
	}

	t.I0, t.I1, t.I2 = apexT, s1, apexN
	neighbor.I0, neighbor.I1, neighbor.I2 = apexT, apexN, s2

	// The new vertex layout is canonical, so the outgoing neighbor slots
	// go at fixed positions, not at the old k/kN-relative ones: edge0
	// always opposes I0, edge1 always opposes I1, edge2 always opposes
	// I2. For t=(apexT,s1,apexN), edge0=(s1,apexN)=newTk,
	// edge1=(apexN,apexT)=the new diagonal, edge2=(apexT,s1)=oldTN2 (t's
	// old neighbor across that edge, which the flip never touched).
	// Symmetrically for neighbor=(apexT,apexN,s2).
	t.N[0] = newTk
	t.N[1] = neighborID
	t.N[2] = oldTN2

	neighbor.N[0] = oldNN2
	neighbor.N[1] = newNkN
	neighbor.N[2] = t.TID

	replaceNeighborRef(arena, newTk, neighborID, t.TID)
	replaceNeighborRef(arena, newNkN, t.TID, neighborID)

	return nil
}

func replaceNeighborRef(arena *Arena, victim TriID, oldRef, newRef TriID) {
	if victim == NilTri {
		return
	}
	tri := arena.Get(victim)
	for i, n := range tri.N {
		if n == oldRef {
			tri.N[i] = newRef
			return
		}
	}
}

func apexVertex(t Triangle, k int) int {
	switch k {
	case 0:
		return t.I0
	case 1:
		return t.I1
	case 2:
		return t.I2
	}
	panic(fmt.Sprintf("trimesh: vertex index must be 0, 1 or 2, got %d", k))
}

func sharedEdgeIndex(sf SharedFeatures) int {
	switch {
	case sf.Edge0:
		return 0
	case sf.Edge1:
		return 1
	case sf.Edge2:
		return 2
	}
	panic("trimesh: sharedEdgeIndex called on a SharedFeatures with no shared edge")
}
