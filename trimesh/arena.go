// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package trimesh implements the adjacency-aware triangle mesh at the
// heart of the triangulator: a triangle record, the neighbor-tracking
// AdjacencyTriangle built on top of it, and the point-insertion and
// edge-legalization (flip) operations that drive incremental Delaunay
// triangulation.
package trimesh

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// TriID is a stable handle into an Arena. A triangle's TriID equals its
// arena slot and never changes for the lifetime of the arena, even
// though the triangle's vertex indices may be rewritten in place by a
// Swap.
type TriID int

// NilTri is the sentinel TriID meaning "no neighbor" (a mesh boundary
// edge).
const NilTri TriID = -1

// Arena is an append-only store of AdjacencyTriangle values addressed by
// TriID. It also carries the shared vertex pool and the epsilon used by
// every geometric predicate the mesh operations call into. The pool is
// expected to be complete (no further vertices appended) for the
// lifetime of the Arena: all vertices — including the synthetic
// super-triangle corners — are added to the pool before the arena is
// built, and no insertion or legalization step grows the pool.
//
// Triangles are stored behind pointers rather than by value: insertion
// routinely holds a *AdjacencyTriangle across a call that Adds new
// triangles (growing tris), and a by-value slice would let that growth
// reallocate the backing array out from under any pointer already taken
// via Get, silently stranding in-place edits. A []*AdjacencyTriangle
// keeps every previously issued pointer valid no matter how tris grows.
type Arena struct {
	pool []r3.Vector
	tris []*AdjacencyTriangle
	eps  float64
}

// NewArena creates an empty arena over the given (already complete)
// vertex pool.
func NewArena(pool []r3.Vector, eps float64) *Arena {
	return &Arena{pool: pool, eps: eps}
}

// Pool returns the shared vertex pool.
func (a *Arena) Pool() []r3.Vector { return a.pool }

// Eps returns the epsilon this arena's operations use.
func (a *Arena) Eps() float64 { return a.eps }

// Len returns the number of triangle slots in the arena, including any
// logically retired (swapped-through) ones.
func (a *Arena) Len() int { return len(a.tris) }

// Get returns a pointer to the triangle at tid, for in-place mutation by
// the insertion and legalization operations. It panics if tid is out of
// range: an index accessor with no sane error return panics rather than
// propagating a synthetic error for what is always a programmer mistake.
func (a *Arena) Get(tid TriID) *AdjacencyTriangle {
	if tid < 0 || int(tid) >= len(a.tris) {
		panic(fmt.Sprintf("Arena.Get: tid %d out of range [0, %d)", tid, len(a.tris)))
	}
	return a.tris[tid]
}

// Add appends a new triangle to the arena and returns its freshly
// assigned TriID.
func (a *Arena) Add(tri AdjacencyTriangle) TriID {
	tid := TriID(len(a.tris))
	tri.TID = tid
	a.tris = append(a.tris, &tri)
	return tid
}

// All returns a snapshot slice of every triangle in the arena, in TriID
// order.
func (a *Arena) All() []AdjacencyTriangle {
	out := make([]AdjacencyTriangle, len(a.tris))
	for i, tri := range a.tris {
		out[i] = *tri
	}
	return out
}

// Point returns the coordinates of vertex index vid.
func (a *Arena) Point(vid int) r3.Vector { return a.pool[vid] }
