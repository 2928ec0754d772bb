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
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBBoxFromPoints(t *testing.T) {
	pts := []Point{{0, 0}, {10, -5}, {3, 8}}
	b, err := NewBBoxFromPoints(pts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.MinX != 0 || b.MaxX != 10 || b.MinY != -5 || b.MaxY != 8 {
		t.Fatalf("unexpected bbox: %+v", b)
	}
}

func TestBBoxFromEmptyPoints(t *testing.T) {
	if _, err := NewBBoxFromPoints(nil); err == nil {
		t.Fatal("expected error for empty point set")
	}
}

func TestBBoxMonotonicity(t *testing.T) {
	a := NewLine(Point{0, 0}, Point{10, 0})
	bx, _ := UnionAll([]Entity{a})
	b := NewLine(Point{20, 20}, Point{30, 30})
	bxy, _ := UnionAll([]Entity{a, b})
	if bxy.Width() < bx.Width() || bxy.Height() < bx.Height() {
		t.Fatalf("union shrank: %+v -> %+v", bx, bxy)
	}
}

func TestLineSplitAtRatios(t *testing.T) {
	l := NewLine(Point{0, 0}, Point{10, 0})
	segs := l.SplitAtRatios([]float64{0.3, 0.7})
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	if !almostEqual(segs[0].Start.X, 0) || !almostEqual(segs[0].End.X, 3) {
		t.Fatalf("unexpected first segment: %+v", segs[0])
	}
	if !almostEqual(segs[2].End.X, 10) {
		t.Fatalf("unexpected last segment end: %+v", segs[2])
	}
}

func TestLineSplitClampsAndDedups(t *testing.T) {
	l := NewLine(Point{0, 0}, Point{10, 0})
	segs := l.SplitAtRatios([]float64{-1, 0.5, 0.5, 2})
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments after clamp+dedup, got %d", len(segs))
	}
}

func TestLineSplitInheritsAttributes(t *testing.T) {
	l := NewLine(Point{0, 0}, Point{10, 0}).WithAttrs(Attrs{Layer: "CUT", Color: ColorRed, Linetype: "DASHED", Category: CategoryCut})
	for _, seg := range l.SplitAtRatios([]float64{0.5}) {
		if seg.Attrs() != l.Attrs() {
			t.Fatalf("attributes not inherited: %+v", seg.Attrs())
		}
	}
}

func TestMirrorInvolution(t *testing.T) {
	axis := 12.5
	cases := []Entity{
		NewLine(Point{1, 2}, Point{9, -3}),
		NewArc(Point{5, 5}, 3, 10, 200),
		NewPolyline([]Vertex{{0, 0, 0.2}, {10, 0, 0}, {10, 10, -0.1}}, true),
		NewText("hi", Point{4, 4}, 3.5, 0),
	}
	for _, e := range cases {
		twice := e.MirrorX(axis).MirrorX(axis)
		if !entitiesAlmostEqual(e, twice) {
			t.Fatalf("mirror involution failed for %#v -> %#v", e, twice)
		}
	}
}

func TestTranslateAdditivity(t *testing.T) {
	l := NewLine(Point{1, 1}, Point{5, 5})
	got := l.Translate(2, 3).Translate(4, -1)
	want := l.Translate(6, 2)
	if !entitiesAlmostEqual(got, want) {
		t.Fatalf("translate additivity failed: %+v != %+v", got, want)
	}
}

func entitiesAlmostEqual(a, b Entity) bool {
	switch av := a.(type) {
	case Line:
		bv := b.(Line)
		return almostEqual(av.Start.X, bv.Start.X) && almostEqual(av.Start.Y, bv.Start.Y) &&
			almostEqual(av.End.X, bv.End.X) && almostEqual(av.End.Y, bv.End.Y)
	case Arc:
		bv := b.(Arc)
		return almostEqual(av.Center.X, bv.Center.X) && almostEqual(av.Center.Y, bv.Center.Y) &&
			almostEqual(av.Radius, bv.Radius) &&
			almostEqual(normalizeAngle(av.StartAngle), normalizeAngle(bv.StartAngle)) &&
			almostEqual(normalizeAngle(av.EndAngle), normalizeAngle(bv.EndAngle))
	case Polyline:
		bv := b.(Polyline)
		if len(av.Vertices) != len(bv.Vertices) {
			return false
		}
		for i := range av.Vertices {
			if !almostEqual(av.Vertices[i].X, bv.Vertices[i].X) ||
				!almostEqual(av.Vertices[i].Y, bv.Vertices[i].Y) ||
				!almostEqual(av.Vertices[i].Bulge, bv.Vertices[i].Bulge) {
				return false
			}
		}
		return true
	case Text:
		bv := b.(Text)
		return almostEqual(av.Position.X, bv.Position.X) && almostEqual(av.Position.Y, bv.Position.Y)
	}
	return false
}

func TestArcBoundsIncludesCardinalExtrema(t *testing.T) {
	a := NewArc(Point{0, 0}, 5, 0, 180)
	b := a.Bounds()
	if !almostEqual(b.MaxY, 5) {
		t.Fatalf("expected top cardinal point included, got %+v", b)
	}
}

func TestArcStartEndPoints(t *testing.T) {
	a := NewArc(Point{0, 0}, 10, 0, 90)
	start := a.StartPoint()
	if !almostEqual(start.X, 10) || !almostEqual(start.Y, 0) {
		t.Fatalf("unexpected start point: %+v", start)
	}
	end := a.EndPoint()
	if !almostEqual(end.X, 0) || !almostEqual(end.Y, 10) {
		t.Fatalf("unexpected end point: %+v", end)
	}
}

func TestPolylineSegmentCount(t *testing.T) {
	open := NewPolyline([]Vertex{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}, false)
	if open.SegmentCount() != 2 {
		t.Fatalf("expected 2 segments for open polyline, got %d", open.SegmentCount())
	}
	closed := open
	closed.Closed = true
	if closed.SegmentCount() != 3 {
		t.Fatalf("expected 3 segments for closed polyline, got %d", closed.SegmentCount())
	}
}
