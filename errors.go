// seehuhn.de/go/heatmap - route density textures for globe rendering
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

package heatmap

import (
	"errors"
	"fmt"
)

// ErrTrailingValues indicates a route batch whose length is not a multiple
// of RouteStride, when the rasterizer is configured to reject such batches.
var ErrTrailingValues = errors.New("route batch has trailing values")

// BatchError describes a malformed route batch.
type BatchError struct {
	Values    int // total number of values in the batch
	Remainder int // number of values after the last complete route
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("heatmap: %d values do not form whole routes (%d trailing)",
		e.Values, e.Remainder)
}

// Unwrap allows errors.Is(err, ErrTrailingValues).
func (e *BatchError) Unwrap() error {
	return ErrTrailingValues
}

// TrailingPolicy selects how a batch with trailing values is handled.
type TrailingPolicy int

const (
	// TrailingIgnore drops the values after the last complete route.
	TrailingIgnore TrailingPolicy = iota

	// TrailingReject fails the computation with a *BatchError.
	TrailingReject
)

func (p TrailingPolicy) String() string {
	switch p {
	case TrailingIgnore:
		return "ignore"
	case TrailingReject:
		return "reject"
	default:
		return fmt.Sprintf("TrailingPolicy(%d)", int(p))
	}
}

// ParseTrailingPolicy converts the output of TrailingPolicy.String back to
// a policy value.
func ParseTrailingPolicy(s string) (TrailingPolicy, error) {
	switch s {
	case "ignore":
		return TrailingIgnore, nil
	case "reject":
		return TrailingReject, nil
	default:
		return 0, fmt.Errorf("unknown trailing policy %q", s)
	}
}
