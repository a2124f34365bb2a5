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

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	g := &Grid{Width: 4, Height: 1, Cells: []float64{0, 2, 8, 4}}
	Normalize(g)
	if d := cmp.Diff([]float64{0, 0.25, 1, 0.5}, g.Cells); d != "" {
		t.Errorf("unexpected cells (-want +got):\n%s", d)
	}

	// an all-zero grid stays zero
	g = NewGrid(3, 2)
	Normalize(g)
	for i, v := range g.Cells {
		if v != 0 {
			t.Errorf("cell %d = %g", i, v)
		}
	}

	// tiny values are divided by the floor, not by their own maximum
	g = &Grid{Width: 2, Height: 1, Cells: []float64{1e-7, 5e-7}}
	Normalize(g)
	if math.Abs(g.Cells[1]-0.5) > 1e-12 {
		t.Errorf("got %g, want 0.5", g.Cells[1])
	}
}

func TestEncode(t *testing.T) {
	g := &Grid{Width: 5, Height: 1, Cells: []float64{0, 1, 0.5, 1e-9, 0.25}}
	got := Encode(g, DefaultGamma)
	want := []byte{
		0, 0, 0, 255,
		255, 255, 255, 255,
		byte(math.Pow(0.5, 0.55)*255 + 0.5), byte(math.Pow(0.5, 0.55)*255 + 0.5), byte(math.Pow(0.5, 0.55)*255 + 0.5), 255,
		0, 0, 0, 255,
		byte(math.Pow(0.25, 0.55)*255 + 0.5), byte(math.Pow(0.25, 0.55)*255 + 0.5), byte(math.Pow(0.25, 0.55)*255 + 0.5), 255,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected pixels (-want +got):\n%s", d)
	}
	// 0.5^0.55 = 0.683..., so mid-level density is brightened
	if got[8] != 174 {
		t.Errorf("0.5 encoded as %d, want 174", got[8])
	}
}

func TestQuantize(t *testing.T) {
	for _, c := range []struct {
		x    float64
		want byte
	}{
		{-1, 0}, {0, 0}, {0.6 / 255, 1}, {0.49 / 255, 0}, {0.5, 128}, {1, 255}, {1.5, 255},
		{math.NaN(), 0}, {math.Inf(1), 255},
	} {
		if got := quantize(c.x); got != c.want {
			t.Errorf("quantize(%g) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestResponseImage(t *testing.T) {
	resp := mustCompute(t, NewRasterizer(), Request{Routes: Pack(meridian), Width: 36, Height: 18})
	img := resp.Image()
	if img.Bounds().Dx() != 36 || img.Bounds().Dy() != 18 {
		t.Fatalf("bounds %v", img.Bounds())
	}
	for _, p := range [][2]int{{0, 0}, {18, 9}, {35, 17}, {0, 12}} {
		c := img.RGBAAt(p[0], p[1])
		if [4]byte{c.R, c.G, c.B, c.A} != pixel(resp, p[0], p[1]) {
			t.Errorf("pixel %v differs", p)
		}
	}
	// no copy
	img.Pix[0] = 42
	if resp.Data[0] != 42 {
		t.Error("image does not share the response buffer")
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(0, 7)
	if g.Width != 1 || g.Height != 7 || len(g.Cells) != 7 {
		t.Fatalf("got %dx%d with %d cells", g.Width, g.Height, len(g.Cells))
	}
	b := g.Bounds()
	if b.LLx != 0 || b.LLy != 0 || b.URx != 1 || b.URy != 7 {
		t.Errorf("bounds %v", b)
	}
}
