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

package testcases

import "seehuhn.de/go/heatmap"

var (
	sfo = heatmap.LatLon{Lat: 37.6213, Lon: -122.379}
	jfk = heatmap.LatLon{Lat: 40.6413, Lon: -73.7781}
	lhr = heatmap.LatLon{Lat: 51.4700, Lon: -0.4543}
	gru = heatmap.LatLon{Lat: -23.4356, Lon: -46.4731}
	hnd = heatmap.LatLon{Lat: 35.5494, Lon: 139.7798}
	syd = heatmap.LatLon{Lat: -33.8688, Lon: 151.2093}
	dxb = heatmap.LatLon{Lat: 25.2528, Lon: 55.3644}
	cdg = heatmap.LatLon{Lat: 48.8566, Lon: 2.3522}
)

var airportCases = []TestCase{
	{
		Name: "transatlantic",
		Routes: []heatmap.Route{
			heatmap.ArcRoute(jfk, lhr, 0.15, 1.2, 40),
			heatmap.ArcRoute(jfk, cdg, 0.15, 1.0, 25),
			heatmap.ArcRoute(sfo, lhr, 0.2, 0.9, 12),
		},
		Width:  512,
		Height: 256,
	},
	{
		Name: "network",
		Routes: []heatmap.Route{
			heatmap.ArcRoute(sfo, hnd, 0.25, 1.1, 18),
			heatmap.ArcRoute(hnd, syd, 0.2, 0.8, 9),
			heatmap.ArcRoute(syd, dxb, 0.25, 0.7, 6),
			heatmap.ArcRoute(dxb, lhr, 0.2, 1.22, 30),
			heatmap.ArcRoute(lhr, gru, 0.2, 0.95, 11),
			heatmap.ArcRoute(gru, jfk, 0.2, 0.75, 8),
			heatmap.ArcRoute(cdg, dxb, 0.15, 1.05, 20),
		},
		Width:  1024,
		Height: 512,
	},
}
