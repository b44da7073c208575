// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package trimesh

import (
	"testing"

	"github.com/golang/geo/r3"
)

func TestArena_AddGet(t *testing.T) {
	pool := []r3.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	a := NewArena(pool, 1e-9)

	tid := a.Add(AdjacencyTriangle{Triangle: Triangle{I0: 0, I1: 1, I2: 2}, N: [3]TriID{NilTri, NilTri, NilTri}})
	if tid != 0 {
		t.Errorf("a.Add(...) = %v, want 0", tid)
	}
	if got := a.Get(tid).TID; got != tid {
		t.Errorf("a.Get(tid).TID = %v, want %v", got, tid)
	}
	if got := a.Len(); got != 1 {
		t.Errorf("a.Len() = %v, want 1", got)
	}

	tid2 := a.Add(AdjacencyTriangle{Triangle: Triangle{I0: 0, I1: 2, I2: 1}})
	if tid2 != 1 {
		t.Errorf("a.Add(...) = %v, want 1", tid2)
	}
}

func TestArena_Get_Panic(t *testing.T) {
	a := NewArena(nil, 1e-9)
	a.Add(AdjacencyTriangle{})

	assertPanic := func(tid TriID) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("a.Get(%d) did not panic, want panic", tid)
			}
		}()
		a.Get(tid)
	}
	assertPanic(-1)
	assertPanic(1)
}

func TestArena_Point(t *testing.T) {
	pool := []r3.Vector{{X: 3, Y: 4}}
	a := NewArena(pool, 1e-9)
	if got := a.Point(0); got != pool[0] {
		t.Errorf("a.Point(0) = %v, want %v", got, pool[0])
	}
}

func TestArena_All(t *testing.T) {
	a := NewArena(nil, 1e-9)
	a.Add(AdjacencyTriangle{Triangle: Triangle{I0: 0, I1: 1, I2: 2}})
	all := a.All()
	all[0].I0 = 99
	if a.Get(0).I0 == 99 {
		t.Errorf("a.All() returned a view into the arena, want a copy")
	}
}
