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

	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/vec"
)

// minSampleLength is the smallest vector length which can be projected.
// Shorter vectors have no meaningful direction.
const minSampleLength = 1e-9

// Project maps a direction in space to equirectangular texture coordinates.
// The vector does not need to be normalized.
//
// The returned vector holds u in X and v in Y.  u is in [0, 1) and grows
// with longitude, starting at longitude -180°.  v is in [0, 1] and grows
// with latitude, from the south pole (0) to the north pole (1).
//
// The second return value is false if p is too short or not finite.  In
// this case no projection exists and the sample must be skipped.
func Project(p mgl64.Vec3) (vec.Vec2, bool) {
	l := p.Len()
	if !(l >= minSampleLength) || math.IsInf(l, 0) {
		return vec.Vec2{}, false
	}
	x, y, z := p[0]/l, p[1]/l, p[2]/l

	// This undoes the longitude offset of 180° applied by Direction.
	u := math.Atan2(z, -x) / (2 * math.Pi)
	u -= math.Floor(u)

	v := math.Asin(clamp(y, -1, 1))/math.Pi + 0.5
	v = clamp(v, 0, 1)

	return vec.Vec2{X: u, Y: v}, true
}

// LatLon is a geographic position in degrees.
type LatLon struct {
	Lat, Lon float64
}

// Direction returns the point at the given latitude and longitude (in
// degrees) on the sphere with the given radius.  This is the mapping used
// to place geometry on the globe; [Project] is its inverse.
func Direction(lat, lon, radius float64) mgl64.Vec3 {
	phi := mgl64.DegToRad(90 - lat)
	theta := mgl64.DegToRad(lon + 180)

	sinPhi := math.Sin(phi)
	return mgl64.Vec3{
		-radius * sinPhi * math.Cos(theta),
		radius * math.Cos(phi),
		radius * sinPhi * math.Sin(theta),
	}
}

// ToLatLon returns the latitude and longitude of the direction p.
// Longitudes are in the range [-180, 180].
func ToLatLon(p mgl64.Vec3) LatLon {
	n := p.Normalize()
	lat := mgl64.RadToDeg(math.Asin(clamp(n[1], -1, 1)))
	lon := mgl64.RadToDeg(math.Atan2(n[2], -n[0])) - 180
	if lon < -180 {
		lon += 360
	}
	return LatLon{Lat: lat, Lon: lon}
}

// clamp limits v to the range [lo, hi].  NaN values are passed through.
func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
