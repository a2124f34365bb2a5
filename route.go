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
	"iter"

	"github.com/go-gl/mathgl/mgl64"
)

// RouteStride is the number of values per route in a packed [Batch].
const RouteStride = 11

// Route is a flight route, drawn as a quadratic Bézier curve.
type Route struct {
	// P0 and P2 are the end points, P1 is the control point.  The points
	// are usually on or slightly above the unit sphere, but this is not
	// required: only the directions of the curve points are used.
	P0, P1, P2 mgl64.Vec3

	// Traffic is a congestion score.  Values outside the configured
	// traffic range are clamped.
	Traffic float64

	// TrafficCount scales the contribution of the route.
	// Routes with a count of zero or less contribute nothing.
	TrafficCount float64
}

// At evaluates the route curve at parameter t.
func (rt *Route) At(t float64) mgl64.Vec3 {
	// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
	omt := 1 - t
	return rt.P0.Mul(omt * omt).Add(rt.P1.Mul(2 * omt * t)).Add(rt.P2.Mul(t * t))
}

// Samples iterates over n points of the curve, evenly spaced in the curve
// parameter.  The first and last points are P0 and P2.
func (rt *Route) Samples(n int) iter.Seq[mgl64.Vec3] {
	return func(yield func(mgl64.Vec3) bool) {
		for i := range n {
			var t float64
			if n > 1 {
				t = float64(i) / float64(n-1)
			}
			if !yield(rt.At(t)) {
				return
			}
		}
	}
}

// ArcRoute returns a route between two positions on the unit sphere.  The
// control point sits above the midpoint of the two end points, at distance
// 1+lift from the origin.  For antipodal end points, the arc passes over a
// point at right angles to both.
func ArcRoute(from, to LatLon, lift, traffic, count float64) Route {
	p0 := Direction(from.Lat, from.Lon, 1)
	p2 := Direction(to.Lat, to.Lon, 1)

	mid := p0.Add(p2)
	if mid.Len() < minSampleLength {
		mid = p0.Cross(mgl64.Vec3{0, 1, 0})
		if mid.Len() < minSampleLength {
			mid = p0.Cross(mgl64.Vec3{1, 0, 0})
		}
	}

	return Route{
		P0:           p0,
		P1:           mid.Normalize().Mul(1 + lift),
		P2:           p2,
		Traffic:      traffic,
		TrafficCount: count,
	}
}

// Batch is a packed sequence of routes, as exchanged with callers.
// Each route occupies RouteStride consecutive values:
//
//	p0x, p0y, p0z, p1x, p1y, p1z, p2x, p2y, p2z, traffic, trafficCount
//
// If the length is not a multiple of RouteStride, the trailing values do
// not form a route.  See [TrailingPolicy] for how these are handled.
type Batch []float32

// Len returns the number of complete routes in the batch.
func (b Batch) Len() int {
	return len(b) / RouteStride
}

// Remainder returns the number of trailing values after the last complete
// route.
func (b Batch) Remainder() int {
	return len(b) % RouteStride
}

// Route decodes the i-th route of the batch.
func (b Batch) Route(i int) Route {
	o := b[i*RouteStride : (i+1)*RouteStride : (i+1)*RouteStride]
	return Route{
		P0:           mgl64.Vec3{float64(o[0]), float64(o[1]), float64(o[2])},
		P1:           mgl64.Vec3{float64(o[3]), float64(o[4]), float64(o[5])},
		P2:           mgl64.Vec3{float64(o[6]), float64(o[7]), float64(o[8])},
		Traffic:      float64(o[9]),
		TrafficCount: float64(o[10]),
	}
}

// All iterates over the complete routes of the batch.
func (b Batch) All() iter.Seq2[int, Route] {
	return func(yield func(int, Route) bool) {
		for i := range b.Len() {
			if !yield(i, b.Route(i)) {
				return
			}
		}
	}
}

// Pack converts routes to the packed batch format.
// Values are rounded to float32.
func Pack(routes ...Route) Batch {
	b := make(Batch, 0, len(routes)*RouteStride)
	for _, rt := range routes {
		for _, p := range [3]mgl64.Vec3{rt.P0, rt.P1, rt.P2} {
			b = append(b, float32(p[0]), float32(p[1]), float32(p[2]))
		}
		b = append(b, float32(rt.Traffic), float32(rt.TrafficCount))
	}
	return b
}
