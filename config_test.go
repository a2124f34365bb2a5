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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestEmptyConfig(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, DefaultSamples, cfg.GetSamples())
	assert.Equal(t, DefaultKernelRadius, cfg.GetKernelRadius())
	assert.Equal(t, DefaultKernelSigma, cfg.GetKernelSigma())
	assert.Equal(t, DefaultGamma, cfg.GetGamma())

	r, err := cfg.Rasterizer()
	require.NoError(t, err)
	assert.Equal(t, NewRasterizer(), r)
}

func TestLoadConfig(t *testing.T) {
	p := writeConfig(t, "tuning.json", `{
  "samples": 120,
  "kernel_sigma": 1.5,
  "gamma": 1,
  "trailing": "reject"
}`)

	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.GetSamples())
	assert.Equal(t, DefaultKernelRadius, cfg.GetKernelRadius())
	assert.Equal(t, 1.5, cfg.GetKernelSigma())

	r, err := cfg.Rasterizer()
	require.NoError(t, err)
	assert.Equal(t, 120, r.Samples)
	assert.Equal(t, 1.5, r.KernelSigma)
	assert.Equal(t, 1.0, r.Gamma)
	assert.Equal(t, TrailingReject, r.Trailing)
	assert.Equal(t, DefaultTrafficMin, r.TrafficMin)
	assert.Equal(t, DefaultTrafficMax, r.TrafficMax)
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]string{
		"extension": writeConfig(t, "tuning.yaml", `{}`),
		"syntax":    writeConfig(t, "bad.json", `{"samples": `),
		"type":      writeConfig(t, "type.json", `{"samples": "many"}`),
		"samples":   writeConfig(t, "samples.json", `{"samples": 1}`),
		"sigma":     writeConfig(t, "sigma.json", `{"kernel_sigma": -2}`),
		"range":     writeConfig(t, "range.json", `{"traffic_min": 2, "traffic_max": 1}`),
		"policy":    writeConfig(t, "policy.json", `{"trailing": "truncate"}`),
		"missing":   filepath.Join(t.TempDir(), "missing.json"),
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(p)
			assert.Error(t, err)
		})
	}
}

func TestTrailingPolicyString(t *testing.T) {
	for _, p := range []TrailingPolicy{TrailingIgnore, TrailingReject} {
		q, err := ParseTrailingPolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, q)
	}
	assert.Equal(t, "TrailingPolicy(9)", TrailingPolicy(9).String())
}
