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

// Category classifies the functional role of a line: cut, crease,
// auxiliary reference, plywood outline, or unknown.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryCut
	CategoryCrease
	CategoryAuxiliary
	CategoryPlywood
)

func (c Category) String() string {
	switch c {
	case CategoryCut:
		return "CUT"
	case CategoryCrease:
		return "CREASE"
	case CategoryAuxiliary:
		return "AUXILIARY"
	case CategoryPlywood:
		return "PLYWOOD"
	default:
		return "UNKNOWN"
	}
}

// Default attribute values, used whenever an entity is constructed
// without explicit layer/color/linetype.
const (
	DefaultLayer    = "0"
	DefaultColor    = 7 // white
	DefaultLinetype = "CONTINUOUS"
)

// Color index constants for the entity classifier's color table (§4.4).
const (
	ColorRed   = 1
	ColorGreen = 3
	ColorBlue  = 5
	ColorWhite = 7
)

// Entity is the tagged-variant interface implemented by Line, Arc,
// Polyline, and Text. The unexported marker method closes the
// interface to this package's four variants, the same closed-set
// pattern used elsewhere in this codebase for small fixed-kind enums.
type Entity interface {
	// Bounds returns the axis-aligned bounding box of the entity.
	Bounds() BBox

	// MirrorX returns a copy of the entity reflected about the
	// vertical line x = axis, with layer/color/linetype/category
	// preserved.
	MirrorX(axis float64) Entity

	// Translate returns a copy of the entity shifted by (dx, dy),
	// with layer/color/linetype/category preserved.
	Translate(dx, dy float64) Entity

	// Attrs returns the entity's shared attributes.
	Attrs() Attrs

	// WithCategory returns a copy of the entity with its category
	// replaced, all other attributes and geometry unchanged.
	WithCategory(c Category) Entity

	isEntity()
}

// Attrs holds the attributes shared by every entity variant.
type Attrs struct {
	Layer    string
	Color    int
	Linetype string
	Category Category
}

// DefaultAttrs returns the zero-value attribute set specified by §3:
// layer "0", color white, linetype CONTINUOUS, category unknown.
func DefaultAttrs() Attrs {
	return Attrs{Layer: DefaultLayer, Color: DefaultColor, Linetype: DefaultLinetype, Category: CategoryUnknown}
}
