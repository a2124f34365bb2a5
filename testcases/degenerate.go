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

import (
	"math"

	"seehuhn.de/go/heatmap"
)

var degenerateCases = []TestCase{
	{
		Name:   "empty",
		Width:  32,
		Height: 16,
	},
	{
		Name: "origin",
		Routes: []heatmap.Route{
			at(pt(0, 0, 0), 1.0, 10),
		},
		Width:  32,
		Height: 16,
	},
	{
		Name: "zero_count",
		Routes: []heatmap.Route{
			straight(pt(1, 0, 0), pt(0, 0, 1), 1.0, 0),
			straight(pt(0, 1, 0), pt(0, 0, -1), 0.8, 0),
		},
		Width:  32,
		Height: 16,
	},
	{
		Name: "non_finite",
		Routes: []heatmap.Route{
			straight(pt(1, 0, 0), pt(0, 0, 1), 1.0, 1),
			{P0: pt(1, 0, 0), P1: pt(math.NaN(), 0, 0), P2: pt(0, 1, 0), Traffic: 1, TrafficCount: 100},
			{P0: pt(math.Inf(1), 0, 0), P1: pt(0, 1, 0), P2: pt(0, 1, 0), Traffic: 1, TrafficCount: 100},
			straight(pt(0, 1, 0), pt(0, 0, 1), math.NaN(), 100),
		},
		Width:  64,
		Height: 32,
	},
	{
		Name: "trailing",
		Routes: []heatmap.Route{
			straight(pt(1, 0, 0), pt(0, 0, 1), 1.0, 1),
		},
		Extra:  []float32{1, 0, 0, 0, 1},
		Width:  32,
		Height: 16,
	},
	{
		Name: "minimum_size",
		Routes: []heatmap.Route{
			straight(pt(1, 0, 0), pt(0, 0, 1), 1.0, 1),
		},
		Width:  0,
		Height: -5,
	},
}
