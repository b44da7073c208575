// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/polycdt/cdt2d/trimesh"
)

// VertexCell is a view structure for accessing, per vertex, the
// triangles incident to it and the vertices adjacent to it across a
// shared edge. It is built once after Triangulate and is read-only.
type VertexCell struct {
	idx int
	t   *Triangulator
}

// Cell returns the VertexCell view for vertex n, building the
// vertex-incidence index on first use. It panics if n is out of range
// or Triangulate has not yet run.
func (t *Triangulator) Cell(n int) VertexCell {
	if !t.triangulated {
		panic("Cell: called before Triangulate")
	}
	if n < 0 || n >= len(t.pool) {
		panic(fmt.Sprintf("Cell: index %d out of range [0, %d)", n, len(t.pool)))
	}
	t.ensureVertexCells()
	return VertexCell{idx: n, t: t}
}

// NumCells is an alias for NumVertices: one VertexCell exists per
// triangulated vertex.
func (t *Triangulator) NumCells() int { return len(t.pool) }

func (t *Triangulator) ensureVertexCells() {
	if t.vertexTriOffsets != nil {
		return
	}

	all := t.arena.All()
	counts := make([]int, len(t.pool))
	for _, tri := range all {
		i0, i1, i2 := tri.Indices()
		counts[i0]++
		counts[i1]++
		counts[i2]++
	}

	offsets := make([]int, len(t.pool)+1)
	for v := range t.pool {
		offsets[v+1] = offsets[v] + counts[v]
	}

	triIndices := make([]trimesh.TriID, offsets[len(t.pool)])
	cursor := append([]int(nil), offsets[:len(t.pool)]...)
	for _, tri := range all {
		i0, i1, i2 := tri.Indices()
		for _, v := range [3]int{i0, i1, i2} {
			triIndices[cursor[v]] = tri.TID
			cursor[v]++
		}
	}

	neighborSets := make([]map[int]bool, len(t.pool))
	for v := range neighborSets {
		neighborSets[v] = make(map[int]bool)
	}
	for _, tri := range all {
		i0, i1, i2 := tri.Indices()
		addMutualNeighbor(neighborSets, i0, i1)
		addMutualNeighbor(neighborSets, i1, i2)
		addMutualNeighbor(neighborSets, i2, i0)
	}

	neighborOffsets := make([]int, len(t.pool)+1)
	for v := range t.pool {
		neighborOffsets[v+1] = neighborOffsets[v] + len(neighborSets[v])
	}
	neighborIndices := make([]int, neighborOffsets[len(t.pool)])
	for v := range t.pool {
		i := neighborOffsets[v]
		for n := range neighborSets[v] {
			neighborIndices[i] = n
			i++
		}
	}

	t.vertexTriOffsets = offsets
	t.vertexTriIndices = triIndices
	t.vertexNeighborOffsets = neighborOffsets
	t.vertexNeighborIndices = neighborIndices
}

func addMutualNeighbor(sets []map[int]bool, a, b int) {
	sets[a][b] = true
	sets[b][a] = true
}

// VertexIndex returns the pool index this cell represents.
func (c VertexCell) VertexIndex() int { return c.idx }

// Point returns the vertex's coordinates.
func (c VertexCell) Point() r3.Vector { return c.t.pool[c.idx] }

// NumTriangles returns the number of triangles incident to this vertex.
func (c VertexCell) NumTriangles() int {
	return c.t.vertexTriOffsets[c.idx+1] - c.t.vertexTriOffsets[c.idx]
}

// TriangleIDs returns the TriIDs of every triangle incident to this
// vertex, in arena order.
func (c VertexCell) TriangleIDs() []trimesh.TriID {
	start := c.t.vertexTriOffsets[c.idx]
	end := c.t.vertexTriOffsets[c.idx+1]
	return c.t.vertexTriIndices[start:end]
}

// Triangle returns the i-th triangle incident to this vertex. It panics
// if i is out of range.
func (c VertexCell) Triangle(i int) trimesh.AdjacencyTriangle {
	ids := c.TriangleIDs()
	if i < 0 || i >= len(ids) {
		panic(fmt.Sprintf("Triangle: index %d out of range [0, %d)", i, len(ids)))
	}
	return *c.t.arena.Get(ids[i])
}

// NumNeighbors returns the number of vertices sharing an edge with this
// one.
func (c VertexCell) NumNeighbors() int {
	return c.t.vertexNeighborOffsets[c.idx+1] - c.t.vertexNeighborOffsets[c.idx]
}

// NeighborIndices returns the pool indices of every vertex sharing an
// edge with this one, in no particular order (they are not sorted by
// angle around the vertex).
func (c VertexCell) NeighborIndices() []int {
	start := c.t.vertexNeighborOffsets[c.idx]
	end := c.t.vertexNeighborOffsets[c.idx+1]
	return c.t.vertexNeighborIndices[start:end]
}

// Neighbor returns the i-th adjacent vertex's cell. It panics if i is
// out of range.
func (c VertexCell) Neighbor(i int) VertexCell {
	indices := c.NeighborIndices()
	if i < 0 || i >= len(indices) {
		panic(fmt.Sprintf("Neighbor: index %d out of range [0, %d)", i, len(indices)))
	}
	return VertexCell{idx: indices[i], t: c.t}
}

// centroid averages the incident triangles' centroids, giving a rough
// dual-cell center. Panics if the vertex has no incident triangles,
// which can only happen on an unreferenced pool slot.
func (c VertexCell) centroid() r3.Vector {
	num := c.NumTriangles()
	if num == 0 {
		panic("centroid: vertex has no incident triangles")
	}
	sum := r3.Vector{}
	for i := 0; i < num; i++ {
		tri := c.Triangle(i)
		a, b, cc := tri.Points(c.t.pool)
		sum = sum.Add(a).Add(b).Add(cc)
	}
	return sum.Mul(1.0 / float64(3*num))
}
