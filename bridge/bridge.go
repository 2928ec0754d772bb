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

package bridge

import (
	"math"
	"slices"

	"seehuhn.de/go/diecut/geomx"
)

// intervalLowerBound and intervalUpperBound are the domain's fixed
// adjustment thresholds for the bridge interval (millimeters). They
// are design constants, not derived from Settings, and must stay
// exact.
const (
	intervalLowerBound = 50.0
	intervalUpperBound = 70.0
)

// Positions returns the bridge-center ratios (each in (0,1)) along a
// line of the given length, per Settings s.
func Positions(length float64, s Settings) []float64 {
	if length < s.MinLength {
		return nil
	}
	if length < s.SingleBridgeMax {
		return []float64{0.5}
	}

	effective := length - 2*s.EdgeMargin
	if effective <= 0 {
		return []float64{0.5}
	}

	n := max(1, int(math.Round(effective/s.TargetInterval)))
	interval := effective / float64(n)

	if interval > intervalUpperBound && float64(n) < effective/intervalLowerBound {
		n++
		interval = effective / float64(n)
	} else if interval < intervalLowerBound && n > 1 {
		n--
		interval = effective / float64(n)
	}

	positions := make([]float64, n)
	for i := 0; i < n; i++ {
		offsetInEffective := interval/2 + interval*float64(i)
		absolute := s.EdgeMargin + offsetInEffective
		positions[i] = absolute / length
	}
	return positions
}

// Gaps returns the (start, end) ratio pairs spanned by each bridge
// gap, clamped to (0.001, 0.999).
func Gaps(length float64, s Settings) [][2]float64 {
	positions := Positions(length, s)
	if len(positions) == 0 {
		return nil
	}

	gapRatio := s.GapSize / length
	gaps := make([][2]float64, 0, len(positions))
	for _, p := range positions {
		start := math.Max(0.001, p-gapRatio/2)
		end := math.Min(0.999, p+gapRatio/2)
		if start < end {
			gaps = append(gaps, [2]float64{start, end})
		}
	}
	return gaps
}

// gapTolerance is the ratio tolerance used to recognize that a split
// boundary pair exactly bounds a gap, so that sub-range is discarded.
const gapTolerance = 1e-4

// Apply splits line into the segments that remain once each bridge
// gap from Gaps is cut out. Segments are ordered along the line and
// inherit the line's attributes. If every sub-range would be
// discarded as a gap, the original line is returned unchanged.
func Apply(line geomx.Line, s Settings) []geomx.Line {
	gaps := Gaps(line.Length(), s)
	if len(gaps) == 0 {
		return []geomx.Line{line}
	}

	bounds := make([]float64, 0, 2*len(gaps)+2)
	bounds = append(bounds, 0, 1)
	for _, g := range gaps {
		bounds = append(bounds, g[0], g[1])
	}
	slices.Sort(bounds)
	bounds = slices.Compact(bounds)

	segments := make([]geomx.Line, 0, len(bounds))
	for i := 0; i+1 < len(bounds); i++ {
		start, end := bounds[i], bounds[i+1]
		if isGapRange(start, end, gaps) {
			continue
		}
		segments = append(segments, geomx.NewLine(line.PointAtRatio(start), line.PointAtRatio(end)).WithAttrs(line.Attrs()))
	}

	if len(segments) == 0 {
		return []geomx.Line{line}
	}
	return segments
}

func isGapRange(start, end float64, gaps [][2]float64) bool {
	for _, g := range gaps {
		if math.Abs(start-g[0]) < gapTolerance && math.Abs(end-g[1]) < gapTolerance {
			return true
		}
	}
	return false
}
