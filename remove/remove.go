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

// Package remove strips entities that lie wholly outside the plywood
// bbox, subject to a keep set and a removal mode.
package remove

import (
	"strings"

	"seehuhn.de/go/diecut/geomx"
)

// Mode selects which entities are eligible for removal when they lie
// wholly outside the plywood bbox.
type Mode int

const (
	RemoveAll Mode = iota
	KeepAuxiliary
	KeepText
	ConfirmEach
)

// Settings configures the remover. ExcludeLayers is matched
// case-insensitively against an entity's layer name; KeepCategories is
// matched against its category. Either match always keeps the entity,
// regardless of Mode or position.
type Settings struct {
	Mode           Mode
	ExcludeLayers  []string
	KeepCategories []geomx.Category
}

// Default returns the default remover settings: mode REMOVE_ALL,
// exclude layers {"PLYWOOD","TEXT"}, keep categories {PLYWOOD}.
func Default() Settings {
	return Settings{
		Mode:           RemoveAll,
		ExcludeLayers:  []string{"PLYWOOD", "TEXT"},
		KeepCategories: []geomx.Category{geomx.CategoryPlywood},
	}
}

// Remove returns the entities that survive removal against plywood
// bbox P, plus the count of entities actually removed.
func Remove(entities []geomx.Entity, p geomx.BBox, s Settings) ([]geomx.Entity, int) {
	out := make([]geomx.Entity, 0, len(entities))
	removed := 0
	for _, e := range entities {
		if keep(e, p, s) {
			out = append(out, e)
		} else {
			removed++
		}
	}
	return out, removed
}

func keep(e geomx.Entity, p geomx.BBox, s Settings) bool {
	if inKeepSet(e, s) {
		return true
	}
	if s.Mode == ConfirmEach {
		return true
	}
	if !whollyOutside(e, p) {
		return true
	}
	switch s.Mode {
	case KeepAuxiliary:
		return e.Attrs().Category == geomx.CategoryAuxiliary
	case KeepText:
		_, isText := e.(geomx.Text)
		return isText
	default: // RemoveAll
		return false
	}
}

func inKeepSet(e geomx.Entity, s Settings) bool {
	attrs := e.Attrs()
	for _, layer := range s.ExcludeLayers {
		if strings.EqualFold(attrs.Layer, layer) {
			return true
		}
	}
	for _, cat := range s.KeepCategories {
		if attrs.Category == cat {
			return true
		}
	}
	return false
}

// whollyOutside reports whether e's bbox lies entirely outside p. An
// entity whose bbox cannot be determined is treated as kept (not
// wholly outside).
func whollyOutside(e geomx.Entity, p geomx.BBox) bool {
	if pl, ok := e.(geomx.Polyline); ok && len(pl.Vertices) == 0 {
		return false // a polyline without vertices has no bbox
	}
	b := e.Bounds()
	return b.MaxX < p.MinX || b.MinX > p.MaxX || b.MaxY < p.MinY || b.MinY > p.MaxY
}
