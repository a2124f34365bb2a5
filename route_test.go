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
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
)

func TestRouteAt(t *testing.T) {
	rt := Route{
		P0: mgl64.Vec3{1, 2, 3},
		P1: mgl64.Vec3{-4, 0.5, 7},
		P2: mgl64.Vec3{0.1, -0.2, 0.3},
	}
	if got := rt.At(0); got != rt.P0 {
		t.Errorf("At(0) = %v, want %v", got, rt.P0)
	}
	if got := rt.At(1); got != rt.P2 {
		t.Errorf("At(1) = %v, want %v", got, rt.P2)
	}

	// B(1/2) = (P0 + 2 P1 + P2) / 4
	want := rt.P0.Add(rt.P1.Mul(2)).Add(rt.P2).Mul(0.25)
	if got := rt.At(0.5); !got.ApproxEqualThreshold(want, 1e-12) {
		t.Errorf("At(0.5) = %v, want %v", got, want)
	}
}

func TestRouteSamples(t *testing.T) {
	rt := Route{
		P0: mgl64.Vec3{1, 0, 0},
		P1: mgl64.Vec3{0, 1, 0},
		P2: mgl64.Vec3{-1, 0, 0},
	}

	var pts []mgl64.Vec3
	for p := range rt.Samples(DefaultSamples) {
		pts = append(pts, p)
	}
	if len(pts) != DefaultSamples {
		t.Fatalf("got %d samples, want %d", len(pts), DefaultSamples)
	}
	if pts[0] != rt.P0 || pts[len(pts)-1] != rt.P2 {
		t.Errorf("end points %v, %v", pts[0], pts[len(pts)-1])
	}
	for i := 1; i < len(pts); i++ {
		if !(pts[i][0] < pts[i-1][0]) {
			t.Errorf("x not decreasing at sample %d", i)
		}
	}

	// early exit
	n := 0
	for range rt.Samples(10) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iteration did not stop")
	}
}

func TestBatch(t *testing.T) {
	routes := []Route{
		{
			P0: mgl64.Vec3{1, 0, 0}, P1: mgl64.Vec3{0.5, 0.5, 0}, P2: mgl64.Vec3{0, 1, 0},
			Traffic: 0.75, TrafficCount: 3,
		},
		{
			P0: mgl64.Vec3{0, 0, 1}, P1: mgl64.Vec3{0, 0.25, 1}, P2: mgl64.Vec3{0, 0.5, 0.5},
			Traffic: 1.125, TrafficCount: 0,
		},
	}
	b := Pack(routes...)
	if len(b) != 2*RouteStride {
		t.Fatalf("packed length %d", len(b))
	}
	if b.Len() != 2 || b.Remainder() != 0 {
		t.Errorf("Len = %d, Remainder = %d", b.Len(), b.Remainder())
	}

	var got []Route
	for i, rt := range b.All() {
		if i != len(got) {
			t.Fatalf("index %d out of order", i)
		}
		got = append(got, rt)
	}
	if d := cmp.Diff(routes, got); d != "" {
		t.Errorf("decoded routes differ (-want +got):\n%s", d)
	}

	b = append(b, 9, 9, 9)
	if b.Len() != 2 || b.Remainder() != 3 {
		t.Errorf("with trailing values: Len = %d, Remainder = %d", b.Len(), b.Remainder())
	}
}

func TestArcRoute(t *testing.T) {
	from := LatLon{Lat: 40.6413, Lon: -73.7781}
	to := LatLon{Lat: 51.47, Lon: -0.4543}
	rt := ArcRoute(from, to, 0.2, 1.1, 7)

	for _, c := range []struct {
		p    mgl64.Vec3
		want LatLon
	}{{rt.P0, from}, {rt.P2, to}} {
		got := ToLatLon(c.p)
		if math.Abs(got.Lat-c.want.Lat) > 1e-9 || math.Abs(got.Lon-c.want.Lon) > 1e-9 {
			t.Errorf("end point at %v, want %v", got, c.want)
		}
	}
	if l := rt.P1.Len(); math.Abs(l-1.2) > 1e-12 {
		t.Errorf("control point at distance %g, want 1.2", l)
	}
	if rt.Traffic != 1.1 || rt.TrafficCount != 7 {
		t.Errorf("traffic %g, count %g", rt.Traffic, rt.TrafficCount)
	}

	// antipodal end points still give a usable control point
	rt = ArcRoute(LatLon{0, 0}, LatLon{0, 180}, 0, 1, 1)
	if l := rt.P1.Len(); math.Abs(l-1) > 1e-12 {
		t.Errorf("antipodal: control point at distance %g", l)
	}
	rt = ArcRoute(LatLon{90, 0}, LatLon{-90, 0}, 0, 1, 1)
	if l := rt.P1.Len(); math.Abs(l-1) > 1e-12 {
		t.Errorf("pole to pole: control point at distance %g", l)
	}
}
