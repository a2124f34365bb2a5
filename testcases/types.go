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

// Package testcases defines route batches used for testing and
// benchmarking the heatmap rasterizer.
package testcases

import (
	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/heatmap"
)

// TestCase defines a single heatmap scenario.
type TestCase struct {
	Name   string          // lowercase a-z and _ only
	Routes []heatmap.Route // the routes to render
	Extra  []float32       // values appended after the packed routes
	Width  int             // texture width in pixels
	Height int             // texture height in pixels
}

// Request returns the packed request for the test case.
func (tc TestCase) Request() heatmap.Request {
	b := heatmap.Pack(tc.Routes...)
	b = append(b, tc.Extra...)
	return heatmap.Request{Routes: b, Width: tc.Width, Height: tc.Height}
}

// pt is a helper to create a point from x, y, z coordinates.
func pt(x, y, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, z}
}

// straight returns a route whose control point is the midpoint of its
// end points.
func straight(p0, p2 mgl64.Vec3, traffic, count float64) heatmap.Route {
	return heatmap.Route{
		P0:           p0,
		P1:           p0.Add(p2).Mul(0.5),
		P2:           p2,
		Traffic:      traffic,
		TrafficCount: count,
	}
}

// at returns a route which stays at a single point.
func at(p mgl64.Vec3, traffic, count float64) heatmap.Route {
	return heatmap.Route{P0: p, P1: p, P2: p, Traffic: traffic, TrafficCount: count}
}
