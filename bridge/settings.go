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

// Package bridge computes bridge placements along a line and splits a
// line into the segments that remain once the bridge gaps are cut.
package bridge

import "seehuhn.de/go/diecut/dieerr"

// Settings configures bridge placement for one line category. All
// fields are in millimeters and must be positive, except EdgeMargin
// which must be non-negative; SingleBridgeMax must be at least
// MinLength.
type Settings struct {
	MinLength       float64
	SingleBridgeMax float64
	TargetInterval  float64
	GapSize         float64
	EdgeMargin      float64
}

// NewSettings validates and returns a Settings value.
func NewSettings(minLength, singleBridgeMax, targetInterval, gapSize, edgeMargin float64) (Settings, error) {
	s := Settings{
		MinLength:       minLength,
		SingleBridgeMax: singleBridgeMax,
		TargetInterval:  targetInterval,
		GapSize:         gapSize,
		EdgeMargin:      edgeMargin,
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	switch {
	case s.MinLength <= 0:
		return dieerr.Invalid(dieerr.ErrBridgeSettingsInvalid, "min length must be positive")
	case s.SingleBridgeMax < s.MinLength:
		return dieerr.Invalid(dieerr.ErrBridgeSettingsInvalid, "single bridge max must be >= min length")
	case s.TargetInterval <= 0:
		return dieerr.Invalid(dieerr.ErrBridgeSettingsInvalid, "target interval must be positive")
	case s.GapSize <= 0:
		return dieerr.Invalid(dieerr.ErrBridgeSettingsInvalid, "gap size must be positive")
	case s.EdgeMargin < 0:
		return dieerr.Invalid(dieerr.ErrBridgeSettingsInvalid, "edge margin must be non-negative")
	}
	return nil
}

// Default returns the default bridge settings (min 20, single-bridge
// max 50, target interval 60, gap 3, edge margin 10).
func Default() Settings {
	s, _ := NewSettings(20, 50, 60, 3, 10)
	return s
}

// ForCut returns the default bridge settings for CUT lines.
func ForCut() Settings {
	s, _ := NewSettings(20, 50, 60, 3, 10)
	return s
}

// ForCrease returns the default bridge settings for CREASE lines,
// which use a tighter target interval and a smaller gap than cut
// lines.
func ForCrease() Settings {
	s, _ := NewSettings(20, 50, 50, 2, 10)
	return s
}
