// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package trimesh

import "errors"

var (
	// ErrDuplicatePoint indicates a point coincides with a vertex already
	// present in a triangle (it occupies two "edges" at once, which can
	// only happen if the point is itself an existing vertex).
	ErrDuplicatePoint = errors.New("trimesh: point coincides with an existing vertex")

	// ErrPointNotOnEdge indicates a point that was expected to lie on one
	// of a triangle's edges (because it failed the strict interior test)
	// was not found on any edge either.
	ErrPointNotOnEdge = errors.New("trimesh: point is not on any edge of this triangle")

	// ErrNoSharedEdge indicates Swap was invoked on two triangles that do
	// not share exactly one edge.
	ErrNoSharedEdge = errors.New("trimesh: triangles do not share an edge")

	// ErrPositionOutOfRange indicates Split was called with a
	// (triangle1Position, triangle2Position) pair outside the three
	// supported on-edge splittings.
	ErrPositionOutOfRange = errors.New("trimesh: split position out of range")

	// ErrPointOutsideMesh indicates FindContainingTriangle exhausted the
	// connected component reachable from its seed triangle without
	// finding one containing the query point.
	ErrPointOutsideMesh = errors.New("trimesh: point outside triangulated mesh")
)
