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
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// MaxDimension is the largest texture width or height accepted by
// DecodeRequest.
const MaxDimension = 1 << 14

// wireRequest is the JSON form of a Request.
type wireRequest struct {
	Routes []float64 `json:"routes"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
}

// wireResponse is the JSON form of a Response.  Data is base64 encoded.
type wireResponse struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Data   []byte `json:"data"`
}

// DecodeRequest reads a JSON request of the form
//
//	{"routes": [...], "width": 1024, "height": 512}
//
// Fractional sizes are rounded down and sizes below 1 become 1.  Route
// values are stored as float32.
func DecodeRequest(r io.Reader) (Request, error) {
	var wr wireRequest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&wr); err != nil {
		return Request{}, fmt.Errorf("decoding request: %w", err)
	}

	width, err := wireDimension("width", wr.Width)
	if err != nil {
		return Request{}, err
	}
	height, err := wireDimension("height", wr.Height)
	if err != nil {
		return Request{}, err
	}

	routes := make(Batch, len(wr.Routes))
	for i, v := range wr.Routes {
		routes[i] = float32(v)
	}
	return Request{Routes: routes, Width: width, Height: height}, nil
}

func wireDimension(name string, x float64) (int, error) {
	x = math.Floor(x)
	if x > MaxDimension {
		return 0, fmt.Errorf("%s %g exceeds maximum %d", name, x, MaxDimension)
	}
	if x < 1 {
		return 1, nil
	}
	return int(x), nil
}

// EncodeRequest writes req in the format read by DecodeRequest.
func EncodeRequest(w io.Writer, req Request) error {
	wr := wireRequest{
		Routes: make([]float64, len(req.Routes)),
		Width:  float64(req.Width),
		Height: float64(req.Height),
	}
	for i, v := range req.Routes {
		wr.Routes[i] = float64(v)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(wr)
}

// EncodeResponse writes resp as JSON, with the pixel data base64 encoded.
func EncodeResponse(w io.Writer, resp *Response) error {
	return json.NewEncoder(w).Encode(wireResponse{
		Width:  resp.Width,
		Height: resp.Height,
		Data:   resp.Data,
	})
}

// DecodeResponse reads a response written by EncodeResponse.
func DecodeResponse(r io.Reader) (*Response, error) {
	var wr wireResponse
	if err := json.NewDecoder(r).Decode(&wr); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(wr.Data) != 4*wr.Width*wr.Height {
		return nil, fmt.Errorf("response has %d bytes of data, want %d",
			len(wr.Data), 4*wr.Width*wr.Height)
	}
	return &Response{Data: wr.Data, Width: wr.Width, Height: wr.Height}, nil
}
