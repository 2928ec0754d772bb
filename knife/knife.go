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

// Package knife generates straight-knife extension cuts reaching from
// the drawing's edge out to the plywood edge.
package knife

import (
	"sort"

	"seehuhn.de/go/diecut/bridge"
	"seehuhn.de/go/diecut/geomx"
)

// minSegmentLength is the shortest knife segment worth keeping.
const minSegmentLength = 1.0

// defaultClusterTolerance is FindHorizontalLinePositions's default Y
// tolerance.
const defaultClusterTolerance = 1.0

// attrs returns the fixed knife-entity attributes: layer "CUT", red
// color, category CUT.
func attrs() geomx.Attrs {
	return geomx.Attrs{
		Layer:    "CUT",
		Color:    geomx.ColorRed,
		Linetype: geomx.DefaultLinetype,
		Category: geomx.CategoryCut,
	}
}

// Generate emits, for each Y in ys, the left and right knife segments
// spanning from the plywood bbox edge to the drawing bbox edge,
// discarding any shorter than 1mm. If applyBridges is true, each kept
// segment is split using the supplied bridge settings.
func Generate(drawing, plywood geomx.BBox, ys []float64, applyBridges bool, settings bridge.Settings) []geomx.Line {
	a := attrs()
	var out []geomx.Line
	for _, y := range ys {
		left := geomx.NewLine(geomx.Point{X: plywood.MinX, Y: y}, geomx.Point{X: drawing.MinX, Y: y}).WithAttrs(a)
		right := geomx.NewLine(geomx.Point{X: drawing.MaxX, Y: y}, geomx.Point{X: plywood.MaxX, Y: y}).WithAttrs(a)
		for _, seg := range [2]geomx.Line{left, right} {
			if seg.Length() < minSegmentLength {
				continue
			}
			if applyBridges {
				out = append(out, bridge.Apply(seg, settings)...)
			} else {
				out = append(out, seg)
			}
		}
	}
	return out
}

// CentreY returns the single Y coordinate at the vertical centre of
// the drawing bbox, the default knife Y-position list.
func CentreY(drawing geomx.BBox) []float64 {
	return []float64{drawing.Center().Y}
}

// FindHorizontalLinePositions collects the Y values of lines whose
// endpoints are horizontal (|start.Y - end.Y| < tolerance), sorts
// them, greedily clusters consecutive values within tolerance of each
// other, and returns each cluster's mean.
func FindHorizontalLinePositions(lines []geomx.Line, tolerance float64) []float64 {
	if tolerance <= 0 {
		tolerance = defaultClusterTolerance
	}

	var ys []float64
	for _, l := range lines {
		if abs(l.Start.Y-l.End.Y) < tolerance {
			ys = append(ys, (l.Start.Y+l.End.Y)/2)
		}
	}
	if len(ys) == 0 {
		return nil
	}
	sort.Float64s(ys)

	var clusters []float64
	clusterStart := 0
	for i := 1; i <= len(ys); i++ {
		if i == len(ys) || ys[i]-ys[i-1] >= tolerance {
			clusters = append(clusters, mean(ys[clusterStart:i]))
			clusterStart = i
		}
	}
	return clusters
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
