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
	"image"
	"math"

	"gonum.org/v1/gonum/floats"
)

// minPeak is the smallest maximum used for normalization.  It keeps an
// empty grid at zero instead of dividing by zero.
const minPeak = 1e-6

// Normalize scales the grid in place so that its largest value becomes 1.
// All values are clamped to [0, 1].
func Normalize(g *Grid) {
	peak := max(floats.Max(g.Cells), minPeak)
	for i, v := range g.Cells {
		g.Cells[i] = clamp(v/peak, 0, 1)
	}
}

// Encode converts a normalized grid to RGBA8 pixels.  Each value is raised
// to the power gamma and quantized to a gray level.  Alpha is always 255.
func Encode(g *Grid, gamma float64) []byte {
	out := make([]byte, 4*len(g.Cells))
	for i, v := range g.Cells {
		b := quantize(math.Pow(v, gamma))
		o := out[4*i : 4*i+4 : 4*i+4]
		o[0] = b
		o[1] = b
		o[2] = b
		o[3] = 255
	}
	return out
}

// quantize maps [0, 1] to a byte, rounding to nearest.
func quantize(x float64) byte {
	x = x*255 + 0.5
	if !(x > 0) {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return byte(x)
}

// Image returns the response pixels as an image, without copying.
// The image has its origin at the first pixel of the response.
func (resp *Response) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    resp.Data,
		Stride: 4 * resp.Width,
		Rect:   image.Rect(0, 0, resp.Width, resp.Height),
	}
}
