// seehuhn.de/go/diecut - die-cut layout processing pipeline
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package decompose converts bulged-polyline vertices into Line and
// Arc entities, walking consecutive vertex pairs the way the
// teacher's path flattener walks path commands.
package decompose

import (
	"math"

	"seehuhn.de/go/diecut/dieerr"
	"seehuhn.de/go/diecut/geomx"
)

// straightBulgeThreshold is the |bulge| below which a segment is
// treated as straight rather than arced.
const straightBulgeThreshold = 1e-9

// minChordLength is the minimum chord length for which an arc can be
// reconstructed; shorter chords are invalid geometry and are skipped.
const minChordLength = 1e-9

// Polyline decomposes p into an ordered list of Line and Arc
// entities, one per segment (see geomx.Polyline.SegmentCount).
// Segments whose bulge implies invalid geometry (a zero-length
// chord) are silently skipped per the invalid-geometry error policy;
// every emitted segment inherits p's attributes.
func Polyline(p geomx.Polyline) []geomx.Entity {
	n := len(p.Vertices)
	if n < 2 {
		return nil
	}

	entities := make([]geomx.Entity, 0, p.SegmentCount())
	for i := 0; i < n-1; i++ {
		if e, ok := segment(p.Vertices[i], p.Vertices[i+1], p.Attrs()); ok {
			entities = append(entities, e)
		}
	}
	if p.Closed {
		if e, ok := segment(p.Vertices[n-1], p.Vertices[0], p.Attrs()); ok {
			entities = append(entities, e)
		}
	}
	return entities
}

func segment(v1, v2 geomx.Vertex, attrs geomx.Attrs) (geomx.Entity, bool) {
	if math.Abs(v1.Bulge) < straightBulgeThreshold {
		return geomx.NewLine(v1.Point(), v2.Point()).WithAttrs(attrs), true
	}
	arc, ok := bulgeToArc(v1, v2)
	if !ok {
		dieerr.LogSkip("bulge segment has zero-length chord", "v1", v1, "v2", v2)
		return nil, false
	}
	return arc.WithAttrs(attrs), true
}

// bulgeToArc computes the Arc swept from v1 to v2 given v1's bulge.
// For a positive (counter-clockwise) bulge the arc center lies to the
// right of the chord direction; for a negative bulge it lies to the
// left.
func bulgeToArc(v1, v2 geomx.Vertex) (geomx.Arc, bool) {
	p1, p2 := v1.Point(), v2.Point()
	chord := p2.Sub(p1)
	chordLength := chord.Length()
	if chordLength < minChordLength {
		return geomx.Arc{}, false
	}

	theta := 4 * math.Atan(math.Abs(v1.Bulge))
	radius := chordLength / (2 * math.Sin(theta/2))
	sagitta := radius * (1 - math.Cos(theta/2))

	mid := p1.Add(p2).Mul(0.5)
	// Unit vector along the chord, and its perpendicular rotated -90
	// degrees (i.e. (dy, -dx) normalized), which is "the right" of
	// the chord direction for a CCW (positive-bulge) arc.
	ux, uy := chord.X/chordLength, chord.Y/chordLength
	rightX, rightY := uy, -ux

	var centerX, centerY float64
	distanceFromMid := radius - sagitta
	if v1.Bulge > 0 {
		centerX = mid.X + rightX*distanceFromMid
		centerY = mid.Y + rightY*distanceFromMid
	} else {
		centerX = mid.X - rightX*distanceFromMid
		centerY = mid.Y - rightY*distanceFromMid
	}
	center := geomx.Point{X: centerX, Y: centerY}

	startAngle := normalizeDeg(math.Atan2(p1.Y-center.Y, p1.X-center.X))
	endAngle := normalizeDeg(math.Atan2(p2.Y-center.Y, p2.X-center.X))

	if v1.Bulge > 0 {
		// For positive (CCW) bulge, swap so the normalized sweep
		// (end - start mod 360) equals the intended CCW arc.
		startAngle, endAngle = endAngle, startAngle
	}

	return geomx.NewArc(center, radius, startAngle, endAngle), true
}

func normalizeDeg(rad float64) float64 {
	deg := rad * 180 / math.Pi
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
