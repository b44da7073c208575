// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package trimesh

import "fmt"

// TriangulatePoint is the entry point for inserting vertex pointIndex
// into self. It returns the TriIDs of the triangles newly created by the
// insertion (self itself is always reused in place rather than
// recreated, so it is never included in the returned slice):
//
//   - a point strictly inside self splits it into a fan of three
//     triangles (self reused plus two new ones); TriangulatePoint
//     returns those two.
//   - a point on one of self's edges splits self in two (self reused
//     plus one new); if a neighbor sits across that edge, it is
//     symmetrically split as well (itself reused plus one new), and
//     TriangulatePoint returns both new pieces. With no neighbor
//     present (a boundary edge) only the one new piece is returned.
func (self *AdjacencyTriangle) TriangulatePoint(arena *Arena, pointIndex int) ([]TriID, error) {
	p := arena.Point(pointIndex)

	if self.ContainsPoint(arena.Pool(), p, false) {
		t1, t2 := self.triangulateSelf(arena, pointIndex)
		return sortTriIDs(t1, t2), nil
	}

	onEdge := self.OccupiedEdge(arena.Pool(), p, arena.Eps())
	switch len(onEdge) {
	case 0:
		return nil, fmt.Errorf("TriangulatePoint: point %v is not on any edge of triangle %d: %w", p, self.TID, ErrPointNotOnEdge)
	case 1:
		// exactly one edge occupied: proceed below.
	default:
		return nil, fmt.Errorf("TriangulatePoint: point %v coincides with an existing vertex of triangle %d: %w", p, self.TID, ErrDuplicatePoint)
	}

	edgeIdx := edgeIndex(onEdge)
	neighborTID := self.N[edgeIdx]

	newTID, err := self.triangulateSelfEdge(arena, pointIndex, onEdge)
	if err != nil {
		return nil, err
	}
	if neighborTID == NilTri {
		return []TriID{newTID}, nil
	}

	neighbor := arena.Get(neighborTID)
	newTri := arena.Get(newTID)
	return neighbor.triangulateOtherEdge(arena, pointIndex, onEdge, self, newTri)
}

// triangulateSelf splits self into three triangles fan-centred at
// pointIndex, which must lie in self's strict interior. self is mutated
// in place to become the third piece; the two freshly created pieces
// are returned sorted by TriID.
func (self *AdjacencyTriangle) triangulateSelf(arena *Arena, pointIndex int) (TriID, TriID) {
	pInd0, pInd1, pInd2 := self.I0, self.I1, self.I2
	oldN0, oldN1 := self.N[0], self.N[1]

	self.I2 = pointIndex

	tri1 := AdjacencyTriangle{Triangle: Triangle{I0: pointIndex, I1: pInd1, I2: pInd2}, N: [3]TriID{NilTri, NilTri, NilTri}}
	tri2 := AdjacencyTriangle{Triangle: Triangle{I0: pInd0, I1: pointIndex, I2: pInd2}, N: [3]TriID{NilTri, NilTri, NilTri}}

	t1 := arena.Add(tri1)
	t2 := arena.Add(tri2)

	if oldN0 != NilTri {
		replaceNeighborRef(arena, oldN0, self.TID, t1)
	}
	if oldN1 != NilTri {
		replaceNeighborRef(arena, oldN1, self.TID, t2)
	}

	newTri1 := arena.Get(t1)
	newTri2 := arena.Get(t2)

	newTri1.N[2] = self.TID
	newTri1.N[1] = t2
	newTri1.N[0] = oldN0
	self.N[0] = t1

	newTri2.N[0] = t1
	newTri2.N[1] = oldN1
	self.N[1] = t2
	newTri2.N[2] = self.TID

	lo, hi := t1, t2
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo, hi
}

// triangulateSelfEdge splits self along the edge named by onEdge (which
// must already have been computed via OccupiedEdge), inserting
// pointIndex. It deliberately leaves self.N[edgeIndex(onEdge)] and the
// corresponding slot of the new triangle untouched (still pointing at
// whatever they pointed at before the split, or NilTri for the fresh
// triangle) — those two slots describe the edge that was just divided
// in half, and are the caller's responsibility to resolve, either
// directly (no neighbor existed) or via triangulateOtherEdge.
func (self *AdjacencyTriangle) triangulateSelfEdge(arena *Arena, pointIndex int, onEdge string) (TriID, error) {
	switch onEdge {
	case "0":
		oldN1 := self.N[1]
		tmpl, err := self.Split(pointIndex, 2, 1) // self -> (I0, I1, p); new -> (I0, p, I2)
		if err != nil {
			return NilTri, err
		}
		tid := arena.Add(tmpl)
		newTri := arena.Get(tid)
		newTri.N[1] = oldN1
		if oldN1 != NilTri {
			replaceNeighborRef(arena, oldN1, self.TID, tid)
		}
		self.N[1] = tid
		newTri.N[2] = self.TID
		return tid, nil

	case "1":
		oldN0 := self.N[0]
		tmpl, err := self.Split(pointIndex, 2, 0) // self -> (I0, I1, p); new -> (p, I1, I2)
		if err != nil {
			return NilTri, err
		}
		tid := arena.Add(tmpl)
		newTri := arena.Get(tid)
		newTri.N[0] = oldN0
		if oldN0 != NilTri {
			replaceNeighborRef(arena, oldN0, self.TID, tid)
		}
		self.N[0] = tid
		newTri.N[2] = self.TID
		return tid, nil

	case "2":
		oldN0 := self.N[0]
		tmpl, err := self.Split(pointIndex, 1, 0) // self -> (I0, p, I2); new -> (p, I1, I2)
		if err != nil {
			return NilTri, err
		}
		tid := arena.Add(tmpl)
		newTri := arena.Get(tid)
		newTri.N[0] = oldN0
		if oldN0 != NilTri {
			replaceNeighborRef(arena, oldN0, self.TID, tid)
		}
		self.N[0] = tid
		newTri.N[1] = self.TID
		return tid, nil

	default:
		return NilTri, fmt.Errorf("triangulateSelfEdge: unrecognized edge label %q: %w", onEdge, ErrPointNotOnEdge)
	}
}

// triangulateOtherEdge is called on the triangle across the edge an
// insertion just split, so it can be split symmetrically. originator is
// the triangle that initiated the insertion, and originatorsNewTriangle
// is the piece it created for itself. Both originator and
// originatorsNewTriangle still have an unresolved neighbor slot at
// originatorsEdge — exactly mirroring self and its own new piece here —
// and this call resolves all four at once.
func (self *AdjacencyTriangle) triangulateOtherEdge(arena *Arena, pointIndex int, originatorsEdge string, originator, originatorsNewTriangle *AdjacencyTriangle) ([]TriID, error) {
	p := arena.Point(pointIndex)
	onEdge := self.OccupiedEdge(arena.Pool(), p, arena.Eps())
	if len(onEdge) != 1 {
		return nil, fmt.Errorf("triangulateOtherEdge: point %v does not resolve to a single edge of triangle %d: %w", p, self.TID, ErrPointNotOnEdge)
	}

	thisTID, err := self.triangulateSelfEdge(arena, pointIndex, onEdge)
	if err != nil {
		return nil, err
	}
	thisNewTriangle := arena.Get(thisTID)

	// Only one of the two possible pairings is geometrically correct:
	// either self continues to share an edge directly with originator
	// (and the two new pieces share the other), or self's split landed
	// on the opposite side, pairing with originator's new piece instead.
	shareDirect := self.Triangle.SharedFeatures(originator.Triangle).NumSharedPoints == 2

	if shareDirect {
		setEdgeSlot(self, onEdge, originator.TID)
		setEdgeSlot(thisNewTriangle, onEdge, originatorsNewTriangle.TID)
		setEdgeSlot(originator, originatorsEdge, self.TID)
		setEdgeSlot(originatorsNewTriangle, originatorsEdge, thisNewTriangle.TID)
	} else {
		setEdgeSlot(self, onEdge, originatorsNewTriangle.TID)
		setEdgeSlot(thisNewTriangle, onEdge, originator.TID)
		setEdgeSlot(originator, originatorsEdge, thisNewTriangle.TID)
		setEdgeSlot(originatorsNewTriangle, originatorsEdge, self.TID)
	}

	return sortTriIDs(originatorsNewTriangle.TID, thisTID), nil
}

func setEdgeSlot(t *AdjacencyTriangle, edge string, tid TriID) {
	t.N[edgeIndex(edge)] = tid
}

func edgeIndex(edge string) int {
	return int(edge[0] - '0')
}

func sortTriIDs(a, b TriID) []TriID {
	if a > b {
		a, b = b, a
	}
	return []TriID{a, b}
}
