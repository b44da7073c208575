// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/polycdt/cdt2d/geom2d"
)

// superTriangleCorners computes the three vertices of a triangle that
// contains b: a left edge running along b's left side from half b's
// height above the rectangle to half its height below it, and a far
// corner found by extending the two lines from those points through the
// rectangle's top-right and bottom-right corners until they cross. b's
// left side and its two right corners lie on the triangle's boundary. A
// zero height or width is first padded on both sides (by half the other
// extent, at least 1) so that collinear input still yields a proper
// triangle.
func superTriangleCorners(b Bounds, z float64) (topLeft, bottomLeft, farRight r3.Vector, err error) {
	if b.Height() == 0 {
		pad := math.Max(b.Width()/2, 1)
		b.MinY, b.MaxY = b.MinY-pad, b.MaxY+pad
	}
	if b.Width() == 0 {
		pad := math.Max(b.Height()/2, 1)
		b.MinX, b.MaxX = b.MinX-pad, b.MaxX+pad
	}
	h := b.Height()
	halfH := math.Abs(h / 2)

	topLeft = r3.Vector{X: b.MinX, Y: b.MaxY + halfH, Z: z}
	bottomLeft = r3.Vector{X: b.MinX, Y: b.MinY - halfH, Z: z}

	farRight, err = geom2d.SegmentIntersect(
		topLeft, r3.Vector{X: b.MaxX, Y: b.MaxY, Z: z},
		bottomLeft, r3.Vector{X: b.MaxX, Y: b.MinY, Z: z},
	)
	return topLeft, bottomLeft, farRight, err
}
