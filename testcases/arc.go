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

var arcCases = []TestCase{
	{
		// arc from the equator over the north pole to the opposite side
		Name: "meridian",
		Routes: []heatmap.Route{
			{P0: pt(1, 0, 0), P1: pt(0, 1, 0), P2: pt(-1, 0, 0), Traffic: 1.0, TrafficCount: 10},
		},
		Width:  360,
		Height: 180,
	},
	{
		Name: "equator_quarter",
		Routes: []heatmap.Route{
			straight(pt(1, 0, 0), pt(0, 0, 1), 0.9, 4),
		},
		Width:  128,
		Height: 64,
	},
	{
		// control points far from the sphere; only directions matter
		Name: "off_sphere",
		Routes: []heatmap.Route{
			{P0: pt(3, 0, 0), P1: pt(0, 3, 0), P2: pt(-3, 0, 0), Traffic: 1.0, TrafficCount: 10},
		},
		Width:  360,
		Height: 180,
	},
	{
		Name: "mixed_traffic",
		Routes: []heatmap.Route{
			straight(pt(1, 0, 0), pt(0.7, 0.7, 0), 0.62, 5),
			straight(pt(-1, 0, 0), pt(-0.7, -0.7, 0), 1.22, 5),
			straight(pt(0, 0, 1), pt(0, 0.5, 0.8), 2.0, 1),
		},
		Width:  256,
		Height: 128,
	},
}
