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

// Package connect joins near-touching line endpoints, either merging
// collinear lines into one or pulling their endpoints together.
package connect

import (
	"math"

	"seehuhn.de/go/diecut/dieerr"
	"seehuhn.de/go/diecut/geomx"
)

// collinearEpsilon is the perpendicular-distance tolerance used by the
// collinearity test.
const collinearEpsilon = 0.01

// Settings configures the connector.
type Settings struct {
	// Tolerance is the maximum endpoint distance (exclusive of zero)
	// that makes two endpoints a connection candidate.
	Tolerance float64
	// SameLayerOnly, if true, restricts candidates to pairs sharing a
	// layer name.
	SameLayerOnly bool
	// SameColorOnly, if true, restricts candidates to pairs sharing a
	// color.
	SameColorOnly bool
}

// Default returns the default connector settings: 0.1mm tolerance,
// both same-layer and same-color constraints enabled.
func Default() Settings {
	return Settings{Tolerance: 0.1, SameLayerOnly: true, SameColorOnly: true}
}

type candidate struct {
	i, j   int
	ei, ej int // 0 = start endpoint, 1 = end endpoint
}

// Connect enumerates endpoint-distance candidates across entities and
// merges or pulls together the lines among them, per Settings. Arcs
// contribute endpoints as candidates but are never modified; a
// candidate pair involving an arc is silently left untouched. Returns
// the resulting entity list and the number of connections applied.
func Connect(entities []geomx.Entity, s Settings) ([]geomx.Entity, int) {
	out, count, _ := connect(entities, s, false)
	return out, count
}

// ConnectStrict behaves like Connect but returns
// dieerr.ErrArcConnectionUnsupported instead of silently skipping a
// candidate pair that involves an arc endpoint.
func ConnectStrict(entities []geomx.Entity, s Settings) ([]geomx.Entity, int, error) {
	return connect(entities, s, true)
}

func connect(entities []geomx.Entity, s Settings, strict bool) ([]geomx.Entity, int, error) {
	n := len(entities)
	points := make([][2]geomx.Point, n)
	connectable := make([]bool, n)
	for i, e := range entities {
		pts, ok := endpoints(e)
		points[i] = pts
		connectable[i] = ok
	}

	var candidates []candidate
	for i := 0; i < n; i++ {
		if !connectable[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if !connectable[j] {
				continue
			}
			if s.SameLayerOnly && entities[i].Attrs().Layer != entities[j].Attrs().Layer {
				continue
			}
			if s.SameColorOnly && entities[i].Attrs().Color != entities[j].Attrs().Color {
				continue
			}
			for ei := 0; ei < 2; ei++ {
				for ej := 0; ej < 2; ej++ {
					d := points[i][ei].Distance(points[j][ej])
					if d > 0 && d <= s.Tolerance {
						candidates = append(candidates, candidate{i, j, ei, ej})
					}
				}
			}
		}
	}

	results := make([]geomx.Entity, n)
	copy(results, entities)
	modified := make([]bool, n)
	dropped := make([]bool, n)
	count := 0

	for _, c := range candidates {
		if modified[c.i] || modified[c.j] {
			continue
		}
		li, okI := results[c.i].(geomx.Line)
		lj, okJ := results[c.j].(geomx.Line)
		if !okI || !okJ {
			if strict {
				return nil, 0, dieerr.Invalid(dieerr.ErrArcConnectionUnsupported, "candidate pair involves an arc endpoint")
			}
			continue
		}

		if collinear(li, lj) {
			results[c.i] = mergeFarthest(li, lj)
			dropped[c.j] = true
		} else {
			pi := endpointPoint(li, c.ei)
			pj := endpointPoint(lj, c.ej)
			mid := pi.Add(pj).Mul(0.5)
			results[c.i] = setEndpoint(li, c.ei, mid)
			results[c.j] = setEndpoint(lj, c.ej, mid)
		}
		modified[c.i] = true
		modified[c.j] = true
		count++
	}

	out := make([]geomx.Entity, 0, n)
	for i, e := range results {
		if dropped[i] {
			continue
		}
		out = append(out, e)
	}
	return out, count, nil
}

// endpoints returns an entity's two connectable endpoints and whether
// the entity contributes endpoints at all (only Line and Arc do).
func endpoints(e geomx.Entity) ([2]geomx.Point, bool) {
	switch v := e.(type) {
	case geomx.Line:
		return [2]geomx.Point{v.Start, v.End}, true
	case geomx.Arc:
		return [2]geomx.Point{v.StartPoint(), v.EndPoint()}, true
	default:
		return [2]geomx.Point{}, false
	}
}

func endpointPoint(l geomx.Line, idx int) geomx.Point {
	if idx == 0 {
		return l.Start
	}
	return l.End
}

func setEndpoint(l geomx.Line, idx int, p geomx.Point) geomx.Line {
	if idx == 0 {
		l.Start = p
	} else {
		l.End = p
	}
	return l
}

// collinear reports whether lines a and b lie on the same infinite
// line, per the cross-product perpendicular-distance test.
func collinear(a, b geomx.Line) bool {
	d := a.End.Sub(a.Start)
	length := d.Length()
	if length < collinearEpsilon {
		return false
	}
	return perpendicularDistance(d, length, a.Start, b.Start) < collinearEpsilon &&
		perpendicularDistance(d, length, a.Start, b.End) < collinearEpsilon
}

func perpendicularDistance(d geomx.Point, dLength float64, origin, p geomx.Point) float64 {
	v := p.Sub(origin)
	cross := d.X*v.Y - d.Y*v.X
	return math.Abs(cross) / dLength
}

// mergeFarthest builds the line spanning the two farthest-apart points
// among a and b's four endpoints, inheriting a's attributes.
func mergeFarthest(a, b geomx.Line) geomx.Line {
	pts := [4]geomx.Point{a.Start, a.End, b.Start, b.End}
	var bestI, bestJ int
	best := -1.0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if d := pts[i].Distance(pts[j]); d > best {
				best = d
				bestI, bestJ = i, j
			}
		}
	}
	return geomx.NewLine(pts[bestI], pts[bestJ]).WithAttrs(a.Attrs())
}
