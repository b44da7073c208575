// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package trimesh

import (
	"testing"

	"github.com/golang/geo/r3"
)

// squareMesh builds the standard two-triangle test fixture: a unit
// square split along the diagonal (0,2), i.e. T0=(0,1,2), T1=(0,2,3).
func squareMesh() *Arena {
	pool := unitSquarePool()
	a := NewArena(pool, 1e-9)
	t0 := a.Add(AdjacencyTriangle{Triangle: Triangle{I0: 0, I1: 1, I2: 2}, N: [3]TriID{NilTri, NilTri, NilTri}})
	t1 := a.Add(AdjacencyTriangle{Triangle: Triangle{I0: 0, I1: 2, I2: 3}, N: [3]TriID{NilTri, NilTri, NilTri}})
	a.Get(t0).N[1] = t1
	a.Get(t1).N[2] = t0
	return a
}

func TestAdjacencyTriangle_NeighborsPresent(t *testing.T) {
	a := squareMesh()
	got := a.Get(0).NeighborsPresent()
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("t0.NeighborsPresent() = %v, want [1]", got)
	}
}

func TestAdjacencyTriangle_SetNewNeighbor(t *testing.T) {
	pool := []r3.Vector{
		{X: 0, Y: 0}, // 0
		{X: 1, Y: 0}, // 1
		{X: 1, Y: 1}, // 2
		{X: 0, Y: 1}, // 3
	}
	a := NewArena(pool, 1e-9)
	t0 := a.Add(AdjacencyTriangle{Triangle: Triangle{I0: 0, I1: 1, I2: 2}, N: [3]TriID{NilTri, NilTri, NilTri}})
	t1 := a.Add(AdjacencyTriangle{Triangle: Triangle{I0: 0, I1: 2, I2: 3}, N: [3]TriID{NilTri, NilTri, NilTri}})

	numSet := a.Get(t0).SetNewNeighbor(a, t1)
	if numSet != 1 {
		t.Fatalf("t0.SetNewNeighbor(t1) = %d, want 1", numSet)
	}
	if a.Get(t0).N[1] != t1 {
		t.Errorf("t0.N[1] = %v, want %v (the shared edge (2,0))", a.Get(t0).N[1], t1)
	}
}

func TestAdjacencyTriangle_Reverse(t *testing.T) {
	tri := AdjacencyTriangle{
		Triangle: Triangle{I0: 0, I1: 1, I2: 2},
		N:        [3]TriID{10, 11, 12},
	}
	tri.Reverse()
	if tri.Triangle != (Triangle{I0: 2, I1: 1, I2: 0}) {
		t.Errorf("tri.Triangle after Reverse = %v, want (2,1,0)", tri.Triangle)
	}
	if tri.N != [3]TriID{12, 11, 10} {
		t.Errorf("tri.N after Reverse = %v, want [12 11 10]", tri.N)
	}
}
