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

// Package preset loads and saves a TOML-encoded snapshot of
// pipeline.Options, so a batch driver can persist an operator's
// chosen settings between runs. It sits outside the core's import
// graph: pipeline (and everything it depends on) never imports this
// package, only the other direction holds.
//
// The Open/Save shape below is grounded on
// cogentcore-core/base/iox/tomlx/tomlx.go's thin wrapper over
// github.com/pelletier/go-toml/v2, simplified to the one concrete
// type this module needs instead of tomlx's generic [any] adapter.
package preset

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/diecut/annotate"
	"seehuhn.de/go/diecut/bridge"
	"seehuhn.de/go/diecut/paper"
	"seehuhn.de/go/diecut/pipeline"
	"seehuhn.de/go/diecut/plywood"
	"seehuhn.de/go/diecut/remove"
)

// BridgeSettings is the TOML-serializable form of bridge.Settings.
type BridgeSettings struct {
	MinLength       float64 `toml:"min_length"`
	SingleBridgeMax float64 `toml:"single_bridge_max"`
	TargetInterval  float64 `toml:"target_interval"`
	GapSize         float64 `toml:"gap_size"`
	EdgeMargin      float64 `toml:"edge_margin"`
}

func (b BridgeSettings) toSettings() (bridge.Settings, error) {
	return bridge.NewSettings(b.MinLength, b.SingleBridgeMax, b.TargetInterval, b.GapSize, b.EdgeMargin)
}

func fromSettings(s bridge.Settings) BridgeSettings {
	return BridgeSettings{
		MinLength:       s.MinLength,
		SingleBridgeMax: s.SingleBridgeMax,
		TargetInterval:  s.TargetInterval,
		GapSize:         s.GapSize,
		EdgeMargin:      s.EdgeMargin,
	}
}

// Preset is the on-disk, TOML-friendly snapshot of a processing run's
// configuration: plain strings/numbers/bools only, so it can be
// hand-edited. ToOptions resolves it into a pipeline.Options.
type Preset struct {
	Side      string `toml:"side"`       // "front" or "back"
	PlateType string `toml:"plate_type"` // "copper" or "auto"

	ConnectSegments     bool    `toml:"connect_segments"`
	DecomposePolylines  bool    `toml:"decompose_polylines"`
	ApplyBridges        bool    `toml:"apply_bridges"`
	GeneratePlywood     bool    `toml:"generate_plywood"`
	ApplyStraightKnife  bool    `toml:"apply_straight_knife"`
	GenerateText        bool    `toml:"generate_text"`
	RemoveExternal      bool    `toml:"remove_external"`
	SideMarker          bool    `toml:"side_marker"`
	ConnectionTolerance float64 `toml:"connection_tolerance"`

	CutBridge    BridgeSettings `toml:"cut_bridge"`
	CreaseBridge BridgeSettings `toml:"crease_bridge"`

	// PaperSizeName, if non-empty, names a standard catalogue size
	// (paper.Standard). Otherwise PaperWidth/PaperHeight, if both
	// positive, build a custom size (paper.Custom). If neither is
	// set, the pipeline derives the plywood frame from the drawing's
	// bounding box instead of a fixed paper size.
	PaperSizeName string  `toml:"paper_size_name"`
	PaperWidth    float64 `toml:"paper_width"`
	PaperHeight   float64 `toml:"paper_height"`
}

// Default returns a Preset reflecting pipeline.DefaultOptions().
func Default() Preset {
	opts := pipeline.DefaultOptions()
	return Preset{
		Side:                sideName(opts.Side),
		PlateType:           plateName(opts.PlateType),
		ConnectSegments:     opts.ConnectSegments,
		DecomposePolylines:  opts.DecomposePolylines,
		ApplyBridges:        opts.ApplyBridges,
		GeneratePlywood:     opts.GeneratePlywood,
		ApplyStraightKnife:  opts.ApplyStraightKnife,
		GenerateText:        opts.GenerateText,
		RemoveExternal:      opts.RemoveExternal,
		SideMarker:          opts.SideMarker,
		ConnectionTolerance: opts.ConnectionTolerance,
		CutBridge:           fromSettings(opts.CutBridgeSettings),
		CreaseBridge:        fromSettings(opts.CreaseBridgeSettings),
	}
}

// ToOptions resolves p into a pipeline.Options, validating the
// embedded bridge settings and, if named, the paper size. A
// validation failure here is the "validation error" kind from §7:
// it is surfaced eagerly rather than deferred to Run.
func (p Preset) ToOptions() (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()

	side, err := parseSide(p.Side)
	if err != nil {
		return pipeline.Options{}, err
	}
	plate, err := parsePlateType(p.PlateType)
	if err != nil {
		return pipeline.Options{}, err
	}
	opts.Side = side
	opts.PlateType = plate

	opts.ConnectSegments = p.ConnectSegments
	opts.DecomposePolylines = p.DecomposePolylines
	opts.ApplyBridges = p.ApplyBridges
	opts.GeneratePlywood = p.GeneratePlywood
	opts.ApplyStraightKnife = p.ApplyStraightKnife
	opts.GenerateText = p.GenerateText
	opts.RemoveExternal = p.RemoveExternal
	opts.SideMarker = p.SideMarker
	opts.ConnectionTolerance = p.ConnectionTolerance
	opts.PlywoodMargins = plywood.DefaultMargins(plateForMargins(plate))
	opts.RemoveSettings = remove.Default()
	opts.AnnotateSettings = annotate.DefaultSettings()

	cut, err := p.CutBridge.toSettings()
	if err != nil {
		return pipeline.Options{}, fmt.Errorf("preset: cut_bridge: %w", err)
	}
	crease, err := p.CreaseBridge.toSettings()
	if err != nil {
		return pipeline.Options{}, fmt.Errorf("preset: crease_bridge: %w", err)
	}
	opts.CutBridgeSettings = cut
	opts.CreaseBridgeSettings = crease

	size, ok, err := p.resolvePaperSize()
	if err != nil {
		return pipeline.Options{}, err
	}
	if ok {
		opts.PaperSize = &size
	}

	return opts, nil
}

func (p Preset) resolvePaperSize() (paper.Size, bool, error) {
	if p.PaperSizeName != "" {
		size, ok := paper.Standard(p.PaperSizeName)
		if !ok {
			return paper.Size{}, false, fmt.Errorf("preset: unknown standard paper size %q", p.PaperSizeName)
		}
		return size, true, nil
	}
	if p.PaperWidth > 0 && p.PaperHeight > 0 {
		size, err := paper.Custom(p.PaperWidth, p.PaperHeight)
		if err != nil {
			return paper.Size{}, false, fmt.Errorf("preset: custom paper size: %w", err)
		}
		return size, true, nil
	}
	return paper.Size{}, false, nil
}

func sideName(s annotate.Side) string {
	if s == annotate.Front {
		return "front"
	}
	return "back"
}

func parseSide(s string) (annotate.Side, error) {
	switch s {
	case "", "back":
		return annotate.Back, nil
	case "front":
		return annotate.Front, nil
	default:
		return 0, fmt.Errorf("preset: unknown side %q (want \"front\" or \"back\")", s)
	}
}

func plateName(p annotate.PlateType) string {
	if p == annotate.Auto {
		return "auto"
	}
	return "copper"
}

func parsePlateType(s string) (annotate.PlateType, error) {
	switch s {
	case "", "copper":
		return annotate.Copper, nil
	case "auto":
		return annotate.Auto, nil
	default:
		return 0, fmt.Errorf("preset: unknown plate type %q (want \"copper\" or \"auto\")", s)
	}
}

func plateForMargins(p annotate.PlateType) plywood.PlateType {
	if p == annotate.Auto {
		return plywood.PlateAuto
	}
	return plywood.PlateCopper
}

// Open reads a Preset from filename, TOML-encoded.
func Open(filename string) (Preset, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Preset{}, fmt.Errorf("preset: open %s: %w", filename, err)
	}
	var p Preset
	if err := toml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("preset: decode %s: %w", filename, err)
	}
	return p, nil
}

// Save writes p to filename, TOML-encoded, creating or truncating the
// file with mode 0644.
func Save(p Preset, filename string) error {
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("preset: encode: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("preset: save %s: %w", filename, err)
	}
	return nil
}
