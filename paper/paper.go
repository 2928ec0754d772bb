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

// Package paper is the paper size value object: a named width/height
// pair in millimeters, plus the standard catalogue of sheet sizes.
package paper

import (
	"fmt"

	"seehuhn.de/go/diecut/dieerr"
)

const (
	minWidth  = 100.0
	maxWidth  = 2000.0
	minHeight = 100.0
	maxHeight = 3000.0
)

// Size is a named paper size in millimeters.
type Size struct {
	Name          string
	Width, Height float64
}

// Standard catalogue names.
const (
	Gukjeon          = "국전"
	GukBanjeol       = "국반절"
	Guk4Jeol         = "국4절"
	FourBySixJeon    = "4x6전지"
	FourBySixBanjeol = "4x6반절"
	FourBySix4Jeol   = "4x6 4절"
)

var standardSizes = map[string][2]float64{
	Gukjeon:          {636, 939},
	GukBanjeol:       {636, 469},
	Guk4Jeol:         {318, 469},
	FourBySixJeon:    {788, 1091},
	FourBySixBanjeol: {545, 788},
	FourBySix4Jeol:   {394, 545},
	"46판":            {394, 545},
	"A1":              {594, 841},
	"A2":              {420, 594},
	"A3":              {297, 420},
	"A4":              {210, 297},
}

// Standard returns the named standard paper size. The boolean result
// reports whether name is a recognized catalogue entry.
func Standard(name string) (Size, bool) {
	dims, ok := standardSizes[name]
	if !ok {
		return Size{}, false
	}
	return Size{Name: name, Width: dims[0], Height: dims[1]}, true
}

// MustStandard is like Standard but panics if name is unknown; it
// exists for package-level table construction, not for use on
// caller-supplied input.
func MustStandard(name string) Size {
	s, ok := Standard(name)
	if !ok {
		panic("paper: unknown standard size " + name)
	}
	return s
}

// Custom returns a validated custom paper size, auto-named
// "{width}x{height}". Width must be in [100,2000]mm and height in
// [100,3000]mm.
func Custom(width, height float64) (Size, error) {
	if width < minWidth || width > maxWidth {
		return Size{}, dieerr.Invalid(dieerr.ErrPaperSizeOutOfRange, fmt.Sprintf("width %v outside [%v,%v]", width, minWidth, maxWidth))
	}
	if height < minHeight || height > maxHeight {
		return Size{}, dieerr.Invalid(dieerr.ErrPaperSizeOutOfRange, fmt.Sprintf("height %v outside [%v,%v]", height, minHeight, maxHeight))
	}
	return Size{Name: fmt.Sprintf("%gx%g", width, height), Width: width, Height: height}, nil
}

// Area returns width * height.
func (s Size) Area() float64 {
	return s.Width * s.Height
}

// IsLandscape reports whether width exceeds height.
func (s Size) IsLandscape() bool {
	return s.Width > s.Height
}

// IsPortrait reports whether height exceeds width.
func (s Size) IsPortrait() bool {
	return s.Height > s.Width
}

// Rotate returns a copy of s with width and height swapped, renamed to
// reflect the swap.
func (s Size) Rotate() Size {
	return Size{Name: fmt.Sprintf("%s (rotated)", s.Name), Width: s.Height, Height: s.Width}
}

// FitsDrawing reports whether a drawing of the given width and height
// fits within s without rotation.
func (s Size) FitsDrawing(width, height float64) bool {
	return width <= s.Width && height <= s.Height
}
