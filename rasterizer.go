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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/rect"
)

// Default values for rasterizer parameters.  Changing these changes the
// appearance of the generated textures.
const (
	DefaultSamples      = 84
	DefaultKernelRadius = 4
	DefaultKernelSigma  = 2.15
	DefaultTrafficMin   = 0.62
	DefaultTrafficMax   = 1.22
	DefaultBaseWeight   = 0.75
	DefaultTrafficGain  = 0.55
	DefaultGamma        = 0.55
)

// Rasterizer accumulates route density into a grid.  Create one with
// [NewRasterizer] and adjust the exported fields as needed.
//
// A Rasterizer holds only settings.  Every call allocates its own grid and
// output buffer, so a Rasterizer can be used from several goroutines as
// long as its fields are not modified concurrently.
type Rasterizer struct {
	// Samples is the number of points evaluated along each route.
	// Must be at least 2.
	Samples int

	// KernelRadius and KernelSigma define the Gaussian splat kernel, in
	// pixels.  The radius must be non-negative, sigma must be positive.
	KernelRadius int
	KernelSigma  float64

	// TrafficMin and TrafficMax give the range of traffic scores which is
	// mapped to [0, 1] when weighting routes.  TrafficMax must exceed
	// TrafficMin.
	TrafficMin, TrafficMax float64

	// A route with traffic score s and count n has weight
	// n * (BaseWeight + s01 * TrafficGain), where s01 is s mapped to [0, 1].
	BaseWeight, TrafficGain float64

	// Gamma is the exponent applied to normalized density values before
	// quantization.  Values below 1 brighten low densities.
	Gamma float64

	// Trailing selects how batches with an incomplete last route are
	// handled.
	Trailing TrailingPolicy
}

// NewRasterizer returns a Rasterizer with the default settings.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		Samples:      DefaultSamples,
		KernelRadius: DefaultKernelRadius,
		KernelSigma:  DefaultKernelSigma,
		TrafficMin:   DefaultTrafficMin,
		TrafficMax:   DefaultTrafficMax,
		BaseWeight:   DefaultBaseWeight,
		TrafficGain:  DefaultTrafficGain,
		Gamma:        DefaultGamma,
		Trailing:     TrailingIgnore,
	}
}

// Validate checks that the rasterizer settings are usable.
func (r *Rasterizer) Validate() error {
	var errs []error
	if r.Samples < 2 {
		errs = append(errs, fmt.Errorf("samples must be at least 2, got %d", r.Samples))
	}
	if r.KernelRadius < 0 {
		errs = append(errs, fmt.Errorf("kernel radius must be non-negative, got %d", r.KernelRadius))
	}
	if !(r.KernelSigma > 0) || math.IsInf(r.KernelSigma, 0) {
		errs = append(errs, fmt.Errorf("kernel sigma must be positive, got %g", r.KernelSigma))
	}
	if !(r.TrafficMax > r.TrafficMin) {
		errs = append(errs, fmt.Errorf("traffic range [%g, %g] is empty", r.TrafficMin, r.TrafficMax))
	}
	if !(r.Gamma > 0) {
		errs = append(errs, fmt.Errorf("gamma must be positive, got %g", r.Gamma))
	}
	if r.Trailing != TrailingIgnore && r.Trailing != TrailingReject {
		errs = append(errs, fmt.Errorf("invalid trailing policy %s", r.Trailing))
	}
	if len(errs) > 0 {
		return fmt.Errorf("heatmap: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}

// Weight returns the total density contributed by a route.
func (r *Rasterizer) Weight(rt *Route) float64 {
	s01 := clamp((rt.Traffic-r.TrafficMin)/(r.TrafficMax-r.TrafficMin), 0, 1)
	return rt.TrafficCount * (r.BaseWeight + s01*r.TrafficGain)
}

// Grid is an accumulation buffer of density values, stored in row-major
// order.  Row 0 corresponds to v = 0 (the south pole).
type Grid struct {
	Width, Height int
	Cells         []float64
}

// NewGrid allocates a zero grid.  Sizes below 1 are treated as 1.
func NewGrid(width, height int) *Grid {
	width = max(width, 1)
	height = max(height, 1)
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]float64, width*height),
	}
}

// At returns the value of the cell in column x and row y.
func (g *Grid) At(x, y int) float64 {
	return g.Cells[y*g.Width+x]
}

// Bounds returns the rectangle covered by the grid, in pixel units.
func (g *Grid) Bounds() rect.Rect {
	return rect.Rect{URx: float64(g.Width), URy: float64(g.Height)}
}

// Accumulate splats all routes of the batch into a newly allocated grid of
// the given size.  The grid is owned by the caller.
//
// Samples which cannot be projected (zero length or non-finite) are
// skipped.  Routes whose weight is not a positive finite number contribute
// nothing.
func (r *Rasterizer) Accumulate(b Batch, width, height int) (*Grid, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if rem := b.Remainder(); rem != 0 {
		if r.Trailing == TrailingReject {
			Logger().Warn("rejecting route batch", "values", len(b), "trailing", rem)
			return nil, &BatchError{Values: len(b), Remainder: rem}
		}
	}

	g := NewGrid(width, height)
	kernel := BuildKernel(r.KernelRadius, r.KernelSigma)

	var skippedRoutes, skippedSamples int
	for _, rt := range b.All() {
		w := r.Weight(&rt)
		if !(w > 0) || math.IsInf(w, 0) {
			skippedRoutes++
			continue
		}
		perSample := w / float64(r.Samples)
		for p := range rt.Samples(r.Samples) {
			uv, ok := Project(p)
			if !ok {
				skippedSamples++
				continue
			}
			g.splat(kernel, uv.X, uv.Y, perSample)
		}
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("accumulated routes",
			"routes", b.Len(),
			"trailing", b.Remainder(),
			"skipped_routes", skippedRoutes,
			"skipped_samples", skippedSamples,
			"width", g.Width,
			"height", g.Height)
	}
	return g, nil
}

// splat adds the kernel, scaled by amount, around the cell containing
// (u, v).  Columns wrap around, rows are clamped to the grid.
func (g *Grid) splat(kernel Kernel, u, v, amount float64) {
	w, h := g.Width, g.Height
	cx := int(u*float64(w)) % w
	cy := min(int(v*float64(h)), h-1)

	cells := g.Cells
	for _, tap := range kernel {
		x := (cx + tap.DX) % w
		if x < 0 {
			x += w
		}
		y := min(max(cy+tap.DY, 0), h-1)
		cells[y*w+x] += amount * tap.W
	}
}
