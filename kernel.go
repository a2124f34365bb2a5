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
	"math"

	"gonum.org/v1/gonum/floats"
)

// Tap is one entry of a splat kernel: a pixel offset and its weight.
type Tap struct {
	DX, DY int
	W      float64
}

// Kernel is a discrete splat kernel.
type Kernel []Tap

// BuildKernel returns a Gaussian kernel covering the offsets -radius..radius
// in both directions.  Taps are ordered by DY, then by DX.
//
// If the weights have a positive sum, they are normalized to sum to one.
// Otherwise (for example if sigma is zero or NaN) they are returned as
// computed.  A negative radius is treated as zero.
func BuildKernel(radius int, sigma float64) Kernel {
	radius = max(radius, 0)
	side := 2*radius + 1
	denom := 2 * sigma * sigma

	taps := make(Kernel, 0, side*side)
	w := make([]float64, 0, side*side)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := float64(dx*dx + dy*dy)
			wi := math.Exp(-d2 / denom)
			taps = append(taps, Tap{DX: dx, DY: dy, W: wi})
			w = append(w, wi)
		}
	}

	if sum := floats.Sum(w); sum > 0 {
		for i := range taps {
			taps[i].W /= sum
		}
	}
	return taps
}

// Sum returns the total weight of the kernel.
func (k Kernel) Sum() float64 {
	var sum float64
	for _, t := range k {
		sum += t.W
	}
	return sum
}
