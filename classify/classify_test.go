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

package classify

import (
	"testing"

	"seehuhn.de/go/diecut/geomx"
)

func lineWith(attrs geomx.Attrs) geomx.Entity {
	return geomx.NewLine(geomx.Point{}, geomx.Point{X: 1}).WithAttrs(attrs)
}

func TestLayerTableTakesPriorityOverColor(t *testing.T) {
	c := New()
	// Blue color normally means CREASE, but a CUT-ish layer name wins.
	e := lineWith(geomx.Attrs{Layer: "DIE-LINE", Color: 5})
	out, counts := c.Classify([]geomx.Entity{e})
	if out[0].Attrs().Category != geomx.CategoryCut {
		t.Fatalf("expected CUT, got %v", out[0].Attrs().Category)
	}
	if counts.Cut != 1 {
		t.Fatalf("expected cut count 1, got %+v", counts)
	}
}

func TestKoreanLayerSubstrings(t *testing.T) {
	c := New()
	cases := []struct {
		layer string
		want  geomx.Category
	}{
		{"칼선", geomx.CategoryCut},
		{"괘선", geomx.CategoryCrease},
		{"보조선", geomx.CategoryAuxiliary},
		{"합판", geomx.CategoryPlywood},
	}
	for _, tc := range cases {
		out, _ := c.Classify([]geomx.Entity{lineWith(geomx.Attrs{Layer: tc.layer})})
		if out[0].Attrs().Category != tc.want {
			t.Fatalf("layer %q: got %v, want %v", tc.layer, out[0].Attrs().Category, tc.want)
		}
	}
}

func TestDefaultLayerFallsBackToColor(t *testing.T) {
	c := New()
	e := lineWith(geomx.Attrs{Layer: geomx.DefaultLayer, Color: geomx.ColorBlue})
	out, _ := c.Classify([]geomx.Entity{e})
	if out[0].Attrs().Category != geomx.CategoryCrease {
		t.Fatalf("expected CREASE from color fallback, got %v", out[0].Attrs().Category)
	}
}

func TestUnknownHandlingKeepUnknown(t *testing.T) {
	c := New()
	c.Unknown = KeepUnknown
	e := lineWith(geomx.Attrs{Layer: geomx.DefaultLayer, Color: 99})
	out, counts := c.Classify([]geomx.Entity{e})
	if len(out) != 1 || out[0].Attrs().Category != geomx.CategoryUnknown {
		t.Fatalf("expected kept UNKNOWN entity, got %+v", out)
	}
	if counts.OriginallyUnclassified != 1 || counts.Unknown != 1 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestUnknownHandlingSkip(t *testing.T) {
	c := New()
	c.Unknown = Skip
	e := lineWith(geomx.Attrs{Layer: geomx.DefaultLayer, Color: 99})
	out, counts := c.Classify([]geomx.Entity{e})
	if len(out) != 0 {
		t.Fatalf("expected skipped entity, got %+v", out)
	}
	if counts.OriginallyUnclassified != 1 {
		t.Fatalf("expected 1 originally-unclassified, got %+v", counts)
	}
}

func TestUnknownHandlingTreatAsCut(t *testing.T) {
	c := New()
	c.Unknown = TreatAsCut
	e := lineWith(geomx.Attrs{Layer: geomx.DefaultLayer, Color: 99})
	out, counts := c.Classify([]geomx.Entity{e})
	if out[0].Attrs().Category != geomx.CategoryCut {
		t.Fatalf("expected promoted CUT, got %v", out[0].Attrs().Category)
	}
	if counts.Cut != 1 || counts.Unknown != 0 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestClassificationPriorityOrder(t *testing.T) {
	// A layer string containing substrings for more than one category
	// should resolve to whichever comes first in CUT -> CREASE ->
	// AUXILIARY -> PLYWOOD scan order.
	c := New()
	e := lineWith(geomx.Attrs{Layer: "DIE-FOLD-FRAME"})
	out, _ := c.Classify([]geomx.Entity{e})
	if out[0].Attrs().Category != geomx.CategoryCut {
		t.Fatalf("expected CUT to win scan order, got %v", out[0].Attrs().Category)
	}
}

func TestEmptyLayerUsesColor(t *testing.T) {
	c := New()
	e := lineWith(geomx.Attrs{Layer: "", Color: geomx.ColorGreen})
	out, _ := c.Classify([]geomx.Entity{e})
	if out[0].Attrs().Category != geomx.CategoryAuxiliary {
		t.Fatalf("expected AUXILIARY from green color, got %v", out[0].Attrs().Category)
	}
}
