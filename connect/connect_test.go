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

package connect

import (
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/diecut/dieerr"
	"seehuhn.de/go/diecut/geomx"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestCollinearLinesMerge(t *testing.T) {
	a := geomx.NewLine(geomx.Point{X: 0}, geomx.Point{X: 10})
	b := geomx.NewLine(geomx.Point{X: 10.05}, geomx.Point{X: 20})
	out, count := Connect([]geomx.Entity{a, b}, Default())
	if count != 1 {
		t.Fatalf("expected 1 connection, got %d", count)
	}
	if len(out) != 1 {
		t.Fatalf("expected merge into 1 line, got %d entities", len(out))
	}
	merged := out[0].(geomx.Line)
	if !almostEqual(merged.Length(), 20, 1e-6) {
		t.Fatalf("expected merged length 20, got %v", merged.Length())
	}
}

func TestNonCollinearLinesExtend(t *testing.T) {
	a := geomx.NewLine(geomx.Point{X: 0, Y: 0}, geomx.Point{X: 10, Y: 0})
	b := geomx.NewLine(geomx.Point{X: 10.05, Y: 0.05}, geomx.Point{X: 10, Y: 10})
	out, count := Connect([]geomx.Entity{a, b}, Default())
	if count != 1 {
		t.Fatalf("expected 1 connection, got %d", count)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 entities (both extended), got %d", len(out))
	}
	la := out[0].(geomx.Line)
	lb := out[1].(geomx.Line)
	if la.End != lb.Start {
		t.Fatalf("expected matching endpoints moved to shared midpoint: %+v vs %+v", la.End, lb.Start)
	}
}

func TestOutOfToleranceNotConnected(t *testing.T) {
	a := geomx.NewLine(geomx.Point{X: 0}, geomx.Point{X: 10})
	b := geomx.NewLine(geomx.Point{X: 11}, geomx.Point{X: 20})
	out, count := Connect([]geomx.Entity{a, b}, Default())
	if count != 0 || len(out) != 2 {
		t.Fatalf("expected no connection, got count=%d out=%v", count, out)
	}
}

func TestSameLayerOnlyConstraint(t *testing.T) {
	a := geomx.NewLine(geomx.Point{X: 0}, geomx.Point{X: 10}).WithAttrs(geomx.Attrs{Layer: "CUT"})
	b := geomx.NewLine(geomx.Point{X: 10.05}, geomx.Point{X: 20}).WithAttrs(geomx.Attrs{Layer: "CREASE"})
	out, count := Connect([]geomx.Entity{a, b}, Default())
	if count != 0 || len(out) != 2 {
		t.Fatalf("expected layer mismatch to block connection, got count=%d out=%v", count, out)
	}
}

func TestArcEndpointsLeftUntouched(t *testing.T) {
	arc := geomx.NewArc(geomx.Point{}, 5, 0, 90)
	line := geomx.NewLine(arc.EndPoint().Translate(0.02, 0), geomx.Point{X: 20, Y: 5})
	out, count := Connect([]geomx.Entity{arc, line}, Default())
	if count != 0 {
		t.Fatalf("expected arcs to never be connected, got count=%d", count)
	}
	if len(out) != 2 {
		t.Fatalf("expected both entities preserved untouched, got %d", len(out))
	}
}

func TestConnectStrictReturnsErrorOnArcCandidate(t *testing.T) {
	arc := geomx.NewArc(geomx.Point{}, 5, 0, 90)
	line := geomx.NewLine(arc.EndPoint().Translate(0.02, 0), geomx.Point{X: 20, Y: 5})
	_, _, err := ConnectStrict([]geomx.Entity{arc, line}, Default())
	if !errors.Is(err, dieerr.ErrArcConnectionUnsupported) {
		t.Fatalf("expected ErrArcConnectionUnsupported, got %v", err)
	}
}

func TestAlreadyModifiedEntityNotReusedInLaterCandidate(t *testing.T) {
	a := geomx.NewLine(geomx.Point{X: 0}, geomx.Point{X: 10})
	b := geomx.NewLine(geomx.Point{X: 10.02}, geomx.Point{X: 20})
	c := geomx.NewLine(geomx.Point{X: 10.03}, geomx.Point{X: 5, Y: 10})
	out, count := Connect([]geomx.Entity{a, b, c}, Default())
	if count != 1 {
		t.Fatalf("expected exactly 1 connection (a-b), got %d", count)
	}
	if len(out) != 2 {
		t.Fatalf("expected a+b merged and c untouched, got %d entities", len(out))
	}
}
