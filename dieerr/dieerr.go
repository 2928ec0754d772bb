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

// Package dieerr declares the error kinds raised by the die-cut
// pipeline and a handful of slog-backed helpers for the silent-skip
// policy that invalid geometry requires.
package dieerr

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for the "validation error" kind: raised at
// construction of a value object whose invariants are violated.
// Callers should use [errors.Is] against these, since call sites wrap
// them with detail via [Invalid].
var (
	ErrBridgeSettingsInvalid = errors.New("dieerr: invalid bridge settings")
	ErrPaperSizeOutOfRange   = errors.New("dieerr: paper size out of range")
	ErrUnknownPaperSize      = errors.New("dieerr: unknown standard paper size")
	ErrEmptyPointSet         = errors.New("dieerr: bounding box from empty point set")
	ErrInvalidMargins        = errors.New("dieerr: negative margin")
)

// ErrArcConnectionUnsupported marks the named-but-unimplemented case
// from the segment connector's design notes: arc endpoints are never
// processed by the connector's strict entry point.
var ErrArcConnectionUnsupported = errors.New("dieerr: arc endpoint connection not supported")

// Invalid wraps a sentinel validation error with call-site detail so
// that errors.Is(err, sentinel) still succeeds after wrapping.
func Invalid(sentinel error, detail string) error {
	return fmt.Errorf("dieerr: %s: %w", detail, sentinel)
}

// LogSkip records a silently-dropped invalid-geometry segment at
// Debug level. Invalid geometry must never abort a pipeline run, so
// this is logged, not returned as an error.
func LogSkip(reason string, args ...any) {
	slog.Debug("dieerr: skipping invalid geometry: "+reason, args...)
}
