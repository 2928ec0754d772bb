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

// Package classify tags entities by functional category using layer
// name first, then color, and applies a caller-chosen policy to
// whatever remains unclassified.
package classify

import (
	"strings"

	"seehuhn.de/go/diecut/geomx"
)

// UnclassifiedHandling controls what happens to an entity that
// neither the layer table nor the color table could classify.
type UnclassifiedHandling int

const (
	TreatAsCut UnclassifiedHandling = iota
	TreatAsCrease
	TreatAsAuxiliary
	KeepUnknown
	Skip
)

// LayerTable maps a category to the substrings (matched
// case-insensitively, anywhere in the layer name) that identify it.
// Scan order is fixed: CUT, CREASE, AUXILIARY, PLYWOOD.
type LayerTable struct {
	Cut, Crease, Auxiliary, Plywood []string
}

// DefaultLayerTable returns the layer-substring table used when no
// caller-supplied table is given, including the Korean terms the
// original drawings use alongside their English equivalents.
func DefaultLayerTable() LayerTable {
	return LayerTable{
		Cut:       []string{"CUT", "KNIFE", "DIE", "칼"},
		Crease:    []string{"CREASE", "FOLD", "SCORE", "괘"},
		Auxiliary: []string{"AUX", "HELPER", "보조"},
		Plywood:   []string{"PLYWOOD", "FRAME", "WOOD", "합판"},
	}
}

// ColorTable maps an ACI color number to a category.
type ColorTable map[int]geomx.Category

// DefaultColorTable returns {red: CUT, blue: CREASE, green: AUXILIARY,
// white: PLYWOOD}.
func DefaultColorTable() ColorTable {
	return ColorTable{
		1: geomx.CategoryCut,
		5: geomx.CategoryCrease,
		3: geomx.CategoryAuxiliary,
		7: geomx.CategoryPlywood,
	}
}

// Classifier tags entities by category per the layer table, then the
// color table, then the unclassified-handling policy.
type Classifier struct {
	Layers  LayerTable
	Colors  ColorTable
	Unknown UnclassifiedHandling
}

// New returns a Classifier with the default layer table, default color
// table, and UnclassifiedHandling TreatAsCut.
func New() *Classifier {
	return &Classifier{
		Layers:  DefaultLayerTable(),
		Colors:  DefaultColorTable(),
		Unknown: TreatAsCut,
	}
}

// Counts reports how many entities ended up in each category, plus
// how many were originally unclassified (before the Unknown policy
// was applied).
type Counts struct {
	Cut, Crease, Auxiliary, Plywood, Unknown int
	OriginallyUnclassified                   int
}

// Classify returns a new entity slice with each entity's category set,
// plus Counts describing the outcome. Entities are never mutated in
// place; WithCategory on a fresh copy is used throughout. An entity
// whose effective policy is Skip is omitted from the result.
func (c *Classifier) Classify(entities []geomx.Entity) ([]geomx.Entity, Counts) {
	out := make([]geomx.Entity, 0, len(entities))
	var counts Counts

	for _, e := range entities {
		category, matched := c.categoryFor(e.Attrs())
		if !matched {
			counts.OriginallyUnclassified++
		}

		if category == geomx.CategoryUnknown {
			promoted, keep := c.applyUnknownPolicy()
			if !keep {
				continue
			}
			category = promoted
		}

		out = append(out, e.WithCategory(category))
		tally(&counts, category)
	}

	return out, counts
}

func tally(counts *Counts, category geomx.Category) {
	switch category {
	case geomx.CategoryCut:
		counts.Cut++
	case geomx.CategoryCrease:
		counts.Crease++
	case geomx.CategoryAuxiliary:
		counts.Auxiliary++
	case geomx.CategoryPlywood:
		counts.Plywood++
	default:
		counts.Unknown++
	}
}

// categoryFor applies the layer table then the color table. The
// second return value reports whether either table actually matched
// (as opposed to falling through to CategoryUnknown).
func (c *Classifier) categoryFor(attrs geomx.Attrs) (geomx.Category, bool) {
	if attrs.Layer != "" && attrs.Layer != geomx.DefaultLayer {
		if cat, ok := matchLayer(attrs.Layer, c.Layers); ok {
			return cat, true
		}
	}
	if cat, ok := c.Colors[attrs.Color]; ok {
		return cat, true
	}
	return geomx.CategoryUnknown, false
}

func matchLayer(layer string, table LayerTable) (geomx.Category, bool) {
	upper := strings.ToUpper(layer)
	if containsAny(upper, table.Cut) {
		return geomx.CategoryCut, true
	}
	if containsAny(upper, table.Crease) {
		return geomx.CategoryCrease, true
	}
	if containsAny(upper, table.Auxiliary) {
		return geomx.CategoryAuxiliary, true
	}
	if containsAny(upper, table.Plywood) {
		return geomx.CategoryPlywood, true
	}
	return geomx.CategoryUnknown, false
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, strings.ToUpper(n)) {
			return true
		}
	}
	return false
}

// applyUnknownPolicy returns the category to promote an UNKNOWN entity
// to (if any) and whether the entity should be kept at all.
func (c *Classifier) applyUnknownPolicy() (geomx.Category, bool) {
	switch c.Unknown {
	case TreatAsCut:
		return geomx.CategoryCut, true
	case TreatAsCrease:
		return geomx.CategoryCrease, true
	case TreatAsAuxiliary:
		return geomx.CategoryAuxiliary, true
	case Skip:
		return geomx.CategoryUnknown, false
	default: // KeepUnknown
		return geomx.CategoryUnknown, true
	}
}
