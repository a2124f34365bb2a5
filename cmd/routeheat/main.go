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

// Command routeheat renders a route density texture from a JSON request.
//
// The request has the form {"routes": [...], "width": w, "height": h},
// with 11 values per route.  The result is written as a PNG image, or as a
// JSON response with base64 encoded RGBA pixels.
//
// Usage:
//
//	routeheat [-in request.json] [-out heat.png] [-config tuning.json]
//	          [-format png|json] [-scale 2] [-v]
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"

	"golang.org/x/image/draw"

	"seehuhn.de/go/heatmap"
)

func main() {
	in := flag.String("in", "-", "request file, - for stdin")
	out := flag.String("out", "-", "output file, - for stdout")
	configPath := flag.String("config", "", "JSON file with rasterizer settings")
	format := flag.String("format", "png", "output format: png or json")
	scale := flag.Float64("scale", 1, "scale factor for PNG output")
	verbose := flag.Bool("v", false, "log debug information to stderr")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	heatmap.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	if err := run(*in, *out, *configPath, *format, *scale); err != nil {
		heatmap.Logger().Error("routeheat failed", "err", err)
		os.Exit(1)
	}
}

func run(in, out, configPath, format string, scale float64) (err error) {
	if format != "png" && format != "json" {
		return fmt.Errorf("unknown output format %q", format)
	}
	if !(scale > 0) {
		return fmt.Errorf("scale must be positive, got %g", scale)
	}

	cfg := &heatmap.Config{}
	if configPath != "" {
		cfg, err = heatmap.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}
	r, err := cfg.Rasterizer()
	if err != nil {
		return err
	}
	heatmap.Logger().Debug("settings",
		"samples", cfg.GetSamples(),
		"kernel_radius", cfg.GetKernelRadius(),
		"kernel_sigma", cfg.GetKernelSigma(),
		"gamma", cfg.GetGamma(),
		"trailing", r.Trailing)

	req, err := readRequest(in)
	if err != nil {
		return err
	}
	resp, err := r.Compute(req)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if out != "-" {
		var f *os.File
		f, err = os.Create(out)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	if format == "json" {
		return heatmap.EncodeResponse(w, resp)
	}
	return png.Encode(w, scaleImage(resp.Image(), scale))
}

func readRequest(fname string) (heatmap.Request, error) {
	if fname == "-" {
		return heatmap.DecodeRequest(os.Stdin)
	}
	f, err := os.Open(fname)
	if err != nil {
		return heatmap.Request{}, err
	}
	defer f.Close()
	return heatmap.DecodeRequest(f)
}

// scaleImage resizes img by the given factor.  Horizontally the texture
// is periodic, but the resampling treats the edges as hard boundaries;
// this only affects the outermost columns.
func scaleImage(img *image.RGBA, scale float64) image.Image {
	if scale == 1 {
		return img
	}
	b := img.Bounds()
	w := max(1, int(float64(b.Dx())*scale+0.5))
	h := max(1, int(float64(b.Dy())*scale+0.5))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
