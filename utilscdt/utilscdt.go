// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utilscdt provides utility functions for generating planar
// point sets and polygons for triangulator tests and benchmarks.
package utilscdt

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
)

// GenerateRandomPoints generates a slice of random points uniformly
// distributed over [0, width) x [0, height). The seed parameter ensures
// reproducibility.
func GenerateRandomPoints(cnt int, width, height float64, seed int64) []r3.Vector {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r3.Vector, cnt)

	for i := range cnt {
		points[i] = r3.Vector{
			X: random.Float64() * width,
			Y: random.Float64() * height,
		}
	}

	return points
}

// GenerateRegularPolygon generates the cnt vertices of a regular polygon
// inscribed in a circle of the given radius, centered at (cx, cy), in
// CCW order starting from angle 0.
func GenerateRegularPolygon(cnt int, cx, cy, radius float64) []r3.Vector {
	points := make([]r3.Vector, cnt)
	for i := range cnt {
		theta := 2 * math.Pi * float64(i) / float64(cnt)
		points[i] = r3.Vector{
			X: cx + radius*math.Cos(theta),
			Y: cy + radius*math.Sin(theta),
		}
	}
	return points
}
