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

	"seehuhn.de/go/diecut/dieerr"
)

// BBox is an immutable axis-aligned bounding box. MinX <= MaxX and
// MinY <= MaxY always hold for a validly constructed BBox.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewBBoxFromPoints builds the smallest BBox enclosing every point in
// pts. It returns dieerr.ErrEmptyPointSet if pts is empty.
func NewBBoxFromPoints(pts []Point) (BBox, error) {
	if len(pts) == 0 {
		return BBox{}, dieerr.Invalid(dieerr.ErrEmptyPointSet, "NewBBoxFromPoints")
	}
	b := BBox{MinX: pts[0].X, MaxX: pts[0].X, MinY: pts[0].Y, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b, nil
}

// Width returns the horizontal extent of b.
func (b BBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of b.
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of b.
func (b BBox) Center() Point {
	return Point{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}

// Contains reports whether p lies within b, inclusive of the boundary.
func (b BBox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Margins specifies a possibly-asymmetric expansion of a BBox, one
// value per side. All fields must be non-negative.
type Margins struct {
	Top, Bottom, Left, Right float64
}

// Expand returns b grown by m on each side. It returns
// dieerr.ErrInvalidMargins if any margin is negative.
func (b BBox) Expand(m Margins) (BBox, error) {
	if m.Top < 0 || m.Bottom < 0 || m.Left < 0 || m.Right < 0 {
		return BBox{}, dieerr.Invalid(dieerr.ErrInvalidMargins, "BBox.Expand")
	}
	return BBox{
		MinX: b.MinX - m.Left,
		MinY: b.MinY - m.Bottom,
		MaxX: b.MaxX + m.Right,
		MaxY: b.MaxY + m.Top,
	}, nil
}

// Union returns the smallest BBox enclosing both b and other.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		MinX: math.Min(b.MinX, other.MinX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

// UnionAll returns the bounding box of every entity's Bounds(), or the
// zero BBox and false if entities is empty. Per the bounding-box
// monotonicity property, adding an entity to the list can never shrink
// the result.
func UnionAll(entities []Entity) (BBox, bool) {
	if len(entities) == 0 {
		return BBox{}, false
	}
	b := entities[0].Bounds()
	for _, e := range entities[1:] {
		b = b.Union(e.Bounds())
	}
	return b, true
}

// Disjoint reports whether b and other are separated along either
// axis. Boxes that only touch along an edge or at a corner are not
// disjoint.
func (b BBox) Disjoint(other BBox) bool {
	return b.MaxX < other.MinX || b.MinX > other.MaxX ||
		b.MaxY < other.MinY || b.MinY > other.MaxY
}

// MirrorX reflects b about the vertical line x = axis.
func (b BBox) MirrorX(axis float64) BBox {
	x0 := 2*axis - b.MinX
	x1 := 2*axis - b.MaxX
	return BBox{MinX: math.Min(x0, x1), MaxX: math.Max(x0, x1), MinY: b.MinY, MaxY: b.MaxY}
}

// Translate returns b shifted by (dx, dy).
func (b BBox) Translate(dx, dy float64) BBox {
	return BBox{b.MinX + dx, b.MinY + dy, b.MaxX + dx, b.MaxY + dy}
}
