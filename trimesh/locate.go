// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package trimesh

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// FindContainingTriangle walks the adjacency graph breadth-first from
// seed, returning the first triangle whose ContainsPoint holds for p. It
// fails with ErrPointOutsideMesh if the whole connected component
// reachable from seed is exhausted without a match, which can only
// happen if p truly lies outside the mesh (the super-triangle is built
// to strictly contain every vertex the caller intends to insert).
//
// The queue is a plain slice rather than container/list: the mesh graph
// explored here is small enough per call that the allocation churn of a
// linked list isn't worth the abstraction.
func FindContainingTriangle(arena *Arena, seed *AdjacencyTriangle, p r3.Vector) (*AdjacencyTriangle, error) {
	visited := make(map[TriID]bool)
	queue := []TriID{seed.TID}
	visited[seed.TID] = true

	for len(queue) > 0 {
		tid := queue[0]
		queue = queue[1:]

		tri := arena.Get(tid)
		if tri.ContainsPoint(arena.Pool(), p, true) {
			return tri, nil
		}

		for _, n := range tri.NeighborsPresent() {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	return nil, fmt.Errorf("FindContainingTriangle: point %v not found from seed %d: %w", p, seed.TID, ErrPointOutsideMesh)
}
