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

var wrapCases = []TestCase{
	{
		// crosses the seam at longitude ±180°
		Name: "dateline",
		Routes: []heatmap.Route{
			straight(heatmap.Direction(10, 170, 1), heatmap.Direction(-10, -170, 1), 1.0, 3),
		},
		Width:  180,
		Height: 90,
	},
	{
		Name: "seam_point",
		Routes: []heatmap.Route{
			at(heatmap.Direction(0, -179.9, 1), 1.0, 1),
		},
		Width:  64,
		Height: 32,
	},
	{
		// kernel wider than the texture
		Name: "narrow",
		Routes: []heatmap.Route{
			at(pt(0, 0, 1), 1.0, 1),
		},
		Width:  3,
		Height: 16,
	},
}

var poleCases = []TestCase{
	{
		Name: "north_pole",
		Routes: []heatmap.Route{
			at(pt(0, 1, 0), 1.0, 1),
		},
		Width:  64,
		Height: 32,
	},
	{
		Name: "south_pole",
		Routes: []heatmap.Route{
			at(pt(0, -1, 0), 1.0, 1),
		},
		Width:  64,
		Height: 32,
	},
	{
		Name: "polar_crossing",
		Routes: []heatmap.Route{
			heatmap.ArcRoute(heatmap.LatLon{Lat: 70, Lon: 0}, heatmap.LatLon{Lat: 70, Lon: 180}, 0.2, 1.1, 8),
		},
		Width:  120,
		Height: 60,
	},
	{
		Name: "flat",
		Routes: []heatmap.Route{
			straight(pt(1, 0.2, 0), pt(0, 0.9, 0.2), 1.0, 2),
		},
		Width:  200,
		Height: 2,
	},
}
