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

// Vertex is one point of a Polyline, with an optional bulge encoding
// the arc swept to the next vertex. Bulge = tan(theta/4), where theta
// is the signed included angle of the segment; positive means a
// counter-clockwise arc, and |bulge| < 1e-9 means a straight segment.
type Vertex struct {
	X, Y, Bulge float64
}

// Point returns the vertex's position as a Point.
func (v Vertex) Point() Point { return Point{v.X, v.Y} }

// Polyline is an ordered sequence of vertices, optionally closed.
type Polyline struct {
	Vertices []Vertex
	Closed   bool
	attrs    Attrs
}

// NewPolyline returns a Polyline with the default attribute set.
func NewPolyline(vertices []Vertex, closed bool) Polyline {
	return Polyline{Vertices: vertices, Closed: closed, attrs: DefaultAttrs()}
}

func (p Polyline) isEntity() {}

// Attrs returns the polyline's shared attributes.
func (p Polyline) Attrs() Attrs { return p.attrs }

// WithAttrs returns a copy of p with its attributes replaced wholesale.
func (p Polyline) WithAttrs(a Attrs) Polyline {
	p.attrs = a
	return p
}

// WithCategory returns a copy of p with only its category replaced.
func (p Polyline) WithCategory(c Category) Entity {
	p.attrs.Category = c
	return p
}

// SegmentCount returns the number of line/arc segments this polyline
// decomposes into: one per consecutive vertex pair, plus one more for
// the closing wrap-around pair if the polyline is closed.
func (p Polyline) SegmentCount() int {
	n := len(p.Vertices)
	if n < 2 {
		return 0
	}
	count := n - 1
	if p.Closed {
		count++
	}
	return count
}

// Bounds returns the axis-aligned envelope of the polyline's
// vertices. Per the documented open question, bulged segments are
// conservatively bounded by their chord endpoints rather than the
// true arc extrema — this matches the source system's deliberate
// choice and is not changed here.
func (p Polyline) Bounds() BBox {
	pts := make([]Point, len(p.Vertices))
	for i, v := range p.Vertices {
		pts[i] = v.Point()
	}
	b, _ := NewBBoxFromPoints(pts) // caller guarantees a non-empty polyline
	return b
}

// MirrorX reflects the polyline about the vertical line x = axis. X
// is reflected on every vertex and bulge is negated, since reflection
// flips arc handedness.
func (p Polyline) MirrorX(axis float64) Entity {
	vertices := make([]Vertex, len(p.Vertices))
	for i, v := range p.Vertices {
		vertices[i] = Vertex{X: 2*axis - v.X, Y: v.Y, Bulge: -v.Bulge}
	}
	return Polyline{Vertices: vertices, Closed: p.Closed, attrs: p.attrs}
}

// Translate shifts every vertex of the polyline by (dx, dy).
func (p Polyline) Translate(dx, dy float64) Entity {
	vertices := make([]Vertex, len(p.Vertices))
	for i, v := range p.Vertices {
		vertices[i] = Vertex{X: v.X + dx, Y: v.Y + dy, Bulge: v.Bulge}
	}
	return Polyline{Vertices: vertices, Closed: p.Closed, attrs: p.attrs}
}
