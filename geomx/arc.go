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

package geomx

import "math"

// Arc is a circular arc centered at Center with the given Radius,
// sweeping counter-clockwise from StartAngle to EndAngle (degrees,
// measured from the +X axis). If EndAngle < StartAngle the arc
// sweeps counter-clockwise across 0 degrees.
type Arc struct {
	Center               Point
	Radius               float64
	StartAngle, EndAngle float64
	attrs                Attrs
}

// NewArc returns an Arc with the default attribute set.
func NewArc(center Point, radius, startAngle, endAngle float64) Arc {
	return Arc{Center: center, Radius: radius, StartAngle: startAngle, EndAngle: endAngle, attrs: DefaultAttrs()}
}

func (a Arc) isEntity() {}

// Attrs returns the arc's shared attributes.
func (a Arc) Attrs() Attrs { return a.attrs }

// WithAttrs returns a copy of a with its attributes replaced wholesale.
func (a Arc) WithAttrs(attrs Attrs) Arc {
	a.attrs = attrs
	return a
}

// WithCategory returns a copy of a with only its category replaced.
func (a Arc) WithCategory(c Category) Entity {
	a.attrs.Category = c
	return a
}

// pointAtAngle returns the point on the arc's circle at the given
// angle in degrees.
func (a Arc) pointAtAngle(degrees float64) Point {
	rad := degrees * math.Pi / 180
	return Point{
		X: a.Center.X + a.Radius*math.Cos(rad),
		Y: a.Center.Y + a.Radius*math.Sin(rad),
	}
}

// StartPoint returns the point at StartAngle.
func (a Arc) StartPoint() Point { return a.pointAtAngle(a.StartAngle) }

// EndPoint returns the point at EndAngle.
func (a Arc) EndPoint() Point { return a.pointAtAngle(a.EndAngle) }

// Sweep returns the included angle of the arc in degrees, always in
// [0, 360), accounting for the wrap-at-0 convention.
func (a Arc) Sweep() float64 {
	s := normalizeAngle(a.EndAngle) - normalizeAngle(a.StartAngle)
	if s < 0 {
		s += 360
	}
	return s
}

// normalizeAngle reduces degrees to the range [0, 360).
func normalizeAngle(degrees float64) float64 {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// containsAngle reports whether angleDeg lies within the arc's sweep
// (inclusive), honoring the CCW-across-0 convention.
func (a Arc) containsAngle(angleDeg float64) bool {
	start := normalizeAngle(a.StartAngle)
	angle := normalizeAngle(angleDeg)
	sweep := a.Sweep()
	offset := angle - start
	if offset < 0 {
		offset += 360
	}
	return offset <= sweep
}

// cardinalAngles are the four axis-aligned extrema of a full circle,
// at which x or y is maximal or minimal.
var cardinalAngles = [4]float64{0, 90, 180, 270}

// Bounds returns the axis-aligned bounding box of the arc: the
// envelope of its start and end points, plus any of the four
// cardinal-axis extrema whose angle lies within the arc's sweep.
func (a Arc) Bounds() BBox {
	pts := []Point{a.StartPoint(), a.EndPoint()}
	for _, deg := range cardinalAngles {
		if a.containsAngle(deg) {
			pts = append(pts, a.pointAtAngle(deg))
		}
	}
	b, _ := NewBBoxFromPoints(pts) // pts is never empty
	return b
}

// MirrorX reflects the arc about the vertical line x = axis:
// new_start = 180 - old_end and new_end = 180 - old_start. This
// preserves the CCW sweep convention for arcs that do not wrap across
// 0 degrees; an arc whose sweep crosses 0 degrees after mirroring is
// left as-is rather than renormalized (see DESIGN.md's Open Question
// decisions).
func (a Arc) MirrorX(axis float64) Entity {
	return Arc{
		Center:     a.Center.MirrorX(axis),
		Radius:     a.Radius,
		StartAngle: 180 - a.EndAngle,
		EndAngle:   180 - a.StartAngle,
		attrs:      a.attrs,
	}
}

// Translate shifts the arc by (dx, dy).
func (a Arc) Translate(dx, dy float64) Entity {
	return Arc{
		Center:     a.Center.Translate(dx, dy),
		Radius:     a.Radius,
		StartAngle: a.StartAngle,
		EndAngle:   a.EndAngle,
		attrs:      a.attrs,
	}
}
