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

package paper

import (
	"errors"
	"testing"

	"seehuhn.de/go/diecut/dieerr"
)

func TestStandardSizes(t *testing.T) {
	cases := []struct {
		name          string
		width, height float64
	}{
		{Gukjeon, 636, 939},
		{GukBanjeol, 636, 469},
		{Guk4Jeol, 318, 469},
		{FourBySixJeon, 788, 1091},
		{FourBySixBanjeol, 545, 788},
		{FourBySix4Jeol, 394, 545},
		{"46판", 394, 545},
		{"A1", 594, 841},
		{"A2", 420, 594},
		{"A3", 297, 420},
		{"A4", 210, 297},
	}
	for _, c := range cases {
		s, ok := Standard(c.name)
		if !ok {
			t.Fatalf("%s: expected to be recognized", c.name)
		}
		if s.Width != c.width || s.Height != c.height {
			t.Fatalf("%s: got %vx%v, want %vx%v", c.name, s.Width, s.Height, c.width, c.height)
		}
	}
}

func TestUnknownStandardSize(t *testing.T) {
	if _, ok := Standard("B5"); ok {
		t.Fatalf("expected B5 to be unrecognized")
	}
}

func TestCustomValidation(t *testing.T) {
	cases := []struct {
		name          string
		width, height float64
		wantErr       bool
	}{
		{"valid", 500, 700, false},
		{"width too small", 50, 700, true},
		{"width too large", 2500, 700, true},
		{"height too small", 500, 50, true},
		{"height too large", 500, 3500, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Custom(c.width, c.height)
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, c.wantErr)
			}
			if err != nil && !errors.Is(err, dieerr.ErrPaperSizeOutOfRange) {
				t.Fatalf("expected ErrPaperSizeOutOfRange, got %v", err)
			}
		})
	}
}

func TestAreaAndOrientation(t *testing.T) {
	s, _ := Custom(400, 200)
	if s.Area() != 80000 {
		t.Fatalf("expected area 80000, got %v", s.Area())
	}
	if !s.IsLandscape() || s.IsPortrait() {
		t.Fatalf("expected landscape orientation for %+v", s)
	}
}

func TestRotate(t *testing.T) {
	s, _ := Custom(400, 200)
	r := s.Rotate()
	if r.Width != 200 || r.Height != 400 {
		t.Fatalf("expected swapped dimensions, got %+v", r)
	}
	if !r.IsPortrait() {
		t.Fatalf("expected rotated size to be portrait")
	}
}

func TestFitsDrawing(t *testing.T) {
	s := MustStandard("A4")
	if !s.FitsDrawing(200, 280) {
		t.Fatalf("expected drawing to fit within A4")
	}
	if s.FitsDrawing(300, 280) {
		t.Fatalf("expected drawing wider than A4 to not fit")
	}
}
