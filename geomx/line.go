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

import (
	"math"
	"slices"
)

// horizontalVerticalTolerance is the default tolerance, in
// millimeters, used by Line.IsHorizontal and Line.IsVertical.
const horizontalVerticalTolerance = 1e-6

// Line is a straight segment from Start to End.
type Line struct {
	Start, End Point
	attrs      Attrs
}

// NewLine returns a Line with the default attribute set.
func NewLine(start, end Point) Line {
	return Line{Start: start, End: end, attrs: DefaultAttrs()}
}

func (l Line) isEntity() {}

// Attrs returns the line's shared attributes.
func (l Line) Attrs() Attrs { return l.attrs }

// WithAttrs returns a copy of l with its attributes replaced wholesale.
func (l Line) WithAttrs(a Attrs) Line {
	l.attrs = a
	return l
}

// WithCategory returns a copy of l with only its category replaced.
func (l Line) WithCategory(c Category) Entity {
	l.attrs.Category = c
	return l
}

// Length returns the Euclidean length of the line.
func (l Line) Length() float64 {
	return l.End.Sub(l.Start).Length()
}

// Midpoint returns the point halfway between Start and End.
func (l Line) Midpoint() Point {
	return l.PointAtRatio(0.5)
}

// IsHorizontal reports whether Start and End share the same Y
// coordinate within tolerance.
func (l Line) IsHorizontal() bool {
	return math.Abs(l.Start.Y-l.End.Y) < horizontalVerticalTolerance
}

// IsVertical reports whether Start and End share the same X
// coordinate within tolerance.
func (l Line) IsVertical() bool {
	return math.Abs(l.Start.X-l.End.X) < horizontalVerticalTolerance
}

// PointAtRatio returns the point at parameter ratio along the line,
// via linear interpolation. ratio is expected to lie in [0,1] but is
// not clamped here; callers that need clamped ratios use SplitAtRatios.
func (l Line) PointAtRatio(ratio float64) Point {
	d := l.End.Sub(l.Start)
	return l.Start.Add(d.Mul(ratio))
}

// Bounds returns the axis-aligned bounding box of the line.
func (l Line) Bounds() BBox {
	return BBox{
		MinX: math.Min(l.Start.X, l.End.X),
		MaxX: math.Max(l.Start.X, l.End.X),
		MinY: math.Min(l.Start.Y, l.End.Y),
		MaxY: math.Max(l.Start.Y, l.End.Y),
	}
}

// MirrorX reflects the line about the vertical line x = axis.
func (l Line) MirrorX(axis float64) Entity {
	return Line{Start: l.Start.MirrorX(axis), End: l.End.MirrorX(axis), attrs: l.attrs}
}

// Translate shifts the line by (dx, dy).
func (l Line) Translate(dx, dy float64) Entity {
	return Line{Start: l.Start.Translate(dx, dy), End: l.End.Translate(dx, dy), attrs: l.attrs}
}

// SplitAtRatios splits the line into an ordered list of sub-lines at
// the given parameter ratios. Ratios outside (0,1) are clamped, the
// list is sorted and deduplicated, and the union of sub-line ranges
// equals the full [0,1] range of the parent line. Every sub-line
// inherits the parent's attributes.
func (l Line) SplitAtRatios(ratios []float64) []Line {
	bounds := make([]float64, 0, len(ratios)+2)
	bounds = append(bounds, 0, 1)
	for _, r := range ratios {
		bounds = append(bounds, clamp01(r))
	}
	slices.Sort(bounds)
	bounds = slices.Compact(bounds)

	segments := make([]Line, 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		start := l.PointAtRatio(bounds[i])
		end := l.PointAtRatio(bounds[i+1])
		segments = append(segments, Line{Start: start, End: end, attrs: l.attrs})
	}
	return segments
}

func clamp01(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
