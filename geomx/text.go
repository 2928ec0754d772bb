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

// textBBoxWidthFactor approximates glyph advance width as a fraction
// of text height, used only to give Text a bounding box for the
// external-element remover and plywood frame math. It is not a font
// metric and makes no claim of typographic accuracy.
const textBBoxWidthFactor = 0.6

// Text is a single line of annotation text.
type Text struct {
	Content          string
	Position         Point
	Height, Rotation float64
	attrs            Attrs
}

// NewText returns a Text with the default attribute set.
func NewText(content string, position Point, height, rotation float64) Text {
	return Text{Content: content, Position: position, Height: height, Rotation: rotation, attrs: DefaultAttrs()}
}

func (t Text) isEntity() {}

// Attrs returns the text's shared attributes.
func (t Text) Attrs() Attrs { return t.attrs }

// WithAttrs returns a copy of t with its attributes replaced wholesale.
func (t Text) WithAttrs(a Attrs) Text {
	t.attrs = a
	return t
}

// WithCategory returns a copy of t with only its category replaced.
func (t Text) WithCategory(c Category) Entity {
	t.attrs.Category = c
	return t
}

// Bounds returns an approximate bounding box for the text, anchored
// at Position and extending right by an estimated advance width and
// up by Height. Rotation is not accounted for.
func (t Text) Bounds() BBox {
	width := float64(len([]rune(t.Content))) * t.Height * textBBoxWidthFactor
	return BBox{
		MinX: t.Position.X,
		MinY: t.Position.Y,
		MaxX: t.Position.X + width,
		MaxY: t.Position.Y + t.Height,
	}
}

// MirrorX reflects the text's anchor position about the vertical
// line x = axis. Rotation and content are left unchanged.
func (t Text) MirrorX(axis float64) Entity {
	return Text{
		Content:  t.Content,
		Position: t.Position.MirrorX(axis),
		Height:   t.Height,
		Rotation: t.Rotation,
		attrs:    t.attrs,
	}
}

// Translate shifts the text's anchor position by (dx, dy).
func (t Text) Translate(dx, dy float64) Entity {
	return Text{
		Content:  t.Content,
		Position: t.Position.Translate(dx, dy),
		Height:   t.Height,
		Rotation: t.Rotation,
		attrs:    t.attrs,
	}
}
