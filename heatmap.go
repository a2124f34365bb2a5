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

// Package heatmap rasterizes weighted flight routes into an equirectangular
// density texture.
//
// Each route is a quadratic Bézier curve with control points on or near the
// unit sphere. The curve is sampled at a fixed number of parameter values,
// every sample is projected to texture coordinates and splatted into an
// accumulation grid with a Gaussian kernel. The grid is then normalized by
// its maximum and encoded as RGBA8 with a perceptual gamma curve.
//
// The texture uses the same longitude/latitude convention as [Direction],
// so that it lines up with a globe built from that mapping.
package heatmap

//go:generate go run ./testcases/export

// Request describes one heatmap computation.
type Request struct {
	// Routes holds the packed route batch, RouteStride values per route.
	// See [Batch] for the layout.
	Routes Batch

	// Width and Height give the texture size in pixels.
	// Values below 1 are treated as 1.
	Width, Height int
}

// Response holds the result of a heatmap computation.
type Response struct {
	// Data contains Width*Height RGBA8 pixels in row-major order, starting
	// at the corner with minimal u and v.  The slice is freshly allocated
	// for every response and belongs to the caller.
	Data []byte

	Width, Height int
}

// Compute renders a request using the default rasterizer settings.
func Compute(req Request) (*Response, error) {
	return NewRasterizer().Compute(req)
}

// Compute runs the full pipeline for one request: accumulation,
// normalization and encoding.
func (r *Rasterizer) Compute(req Request) (*Response, error) {
	g, err := r.Accumulate(req.Routes, req.Width, req.Height)
	if err != nil {
		return nil, err
	}
	Normalize(g)
	return &Response{
		Data:   Encode(g, r.Gamma),
		Width:  g.Width,
		Height: g.Height,
	}, nil
}
