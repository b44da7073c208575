// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt

import (
	"errors"
	"fmt"

	"github.com/polycdt/cdt2d/geom2d"
	"github.com/polycdt/cdt2d/trimesh"
)

var (
	// ErrAlreadyTriangulated is returned by Triangulate when it is called
	// more than once on the same Triangulator.
	ErrAlreadyTriangulated = errors.New("cdt2d: already triangulated")

	// ErrNotTriangulatedYet is returned by a result accessor invoked
	// before Triangulate has completed.
	ErrNotTriangulatedYet = errors.New("cdt2d: not triangulated yet")

	// ErrPointOutsideDomain is returned when the point-location walk
	// cannot find a triangle containing the next vertex to insert.
	ErrPointOutsideDomain = errors.New("cdt2d: point outside triangulated domain")

	// ErrDegenerateTriangle is re-exported from geom2d for callers that
	// only import the root package.
	ErrDegenerateTriangle = geom2d.ErrDegenerateTriangle

	// ErrParallelSegments is re-exported from geom2d for callers that
	// only import the root package.
	ErrParallelSegments = geom2d.ErrParallelSegments

	// ErrDuplicatePoint is re-exported from trimesh for callers that
	// only import the root package.
	ErrDuplicatePoint = trimesh.ErrDuplicatePoint

	// ErrNoSharedEdge is re-exported from trimesh for callers that only
	// import the root package.
	ErrNoSharedEdge = trimesh.ErrNoSharedEdge

	// ErrPositionOutOfRange is re-exported from trimesh for callers that
	// only import the root package.
	ErrPositionOutOfRange = trimesh.ErrPositionOutOfRange

	// ErrNotImplemented is returned by Clear and ClearPolygon, which the
	// original triangulator's developer harness never required to work.
	ErrNotImplemented = errors.New("cdt2d: not implemented")

	// errInvalidOption is the wrapped sentinel behind every Option
	// validation failure.
	errInvalidOption = errors.New("cdt2d: invalid option")
)

func errEpsNotPositive(eps float64) error {
	return fmt.Errorf("WithEps: eps must be positive, got %v: %w", eps, errInvalidOption)
}

func errNilLogger() error {
	return fmt.Errorf("WithLogger: logger must not be nil: %w", errInvalidOption)
}

func errBoundsSentinelNotPositive(s float64) error {
	return fmt.Errorf("WithBoundsSentinel: sentinel must be positive, got %v: %w", s, errInvalidOption)
}
