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
	"os"
	"path/filepath"
)

// Config holds rasterizer settings as read from a JSON file.  Fields which
// are absent keep the defaults of [NewRasterizer], so partial files are
// fine.
type Config struct {
	Samples      *int     `json:"samples,omitempty"`
	KernelRadius *int     `json:"kernel_radius,omitempty"`
	KernelSigma  *float64 `json:"kernel_sigma,omitempty"`
	TrafficMin   *float64 `json:"traffic_min,omitempty"`
	TrafficMax   *float64 `json:"traffic_max,omitempty"`
	BaseWeight   *float64 `json:"base_weight,omitempty"`
	TrafficGain  *float64 `json:"traffic_gain,omitempty"`
	Gamma        *float64 `json:"gamma,omitempty"`
	Trailing     *string  `json:"trailing,omitempty"` // "ignore" or "reject"
}

// maxConfigSize limits the size of configuration files.
const maxConfigSize = 1 << 20

// LoadConfig reads a Config from a JSON file and validates it.
func LoadConfig(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fi, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fi.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fi.Size(), maxConfigSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the settings, combined with the defaults for
// missing fields, are usable.
func (c *Config) Validate() error {
	_, err := c.Rasterizer()
	return err
}

// Rasterizer returns a new Rasterizer with the default settings overridden
// by the fields present in c.
func (c *Config) Rasterizer() (*Rasterizer, error) {
	r := NewRasterizer()
	if err := c.Apply(r); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Apply copies the fields present in c to r.
func (c *Config) Apply(r *Rasterizer) error {
	if c.Samples != nil {
		r.Samples = *c.Samples
	}
	if c.KernelRadius != nil {
		r.KernelRadius = *c.KernelRadius
	}
	if c.KernelSigma != nil {
		r.KernelSigma = *c.KernelSigma
	}
	if c.TrafficMin != nil {
		r.TrafficMin = *c.TrafficMin
	}
	if c.TrafficMax != nil {
		r.TrafficMax = *c.TrafficMax
	}
	if c.BaseWeight != nil {
		r.BaseWeight = *c.BaseWeight
	}
	if c.TrafficGain != nil {
		r.TrafficGain = *c.TrafficGain
	}
	if c.Gamma != nil {
		r.Gamma = *c.Gamma
	}
	if c.Trailing != nil {
		p, err := ParseTrailingPolicy(*c.Trailing)
		if err != nil {
			return err
		}
		r.Trailing = p
	}
	return nil
}

// GetSamples returns the configured sample count or the default.
func (c *Config) GetSamples() int {
	if c.Samples == nil {
		return DefaultSamples
	}
	return *c.Samples
}

// GetKernelRadius returns the configured kernel radius or the default.
func (c *Config) GetKernelRadius() int {
	if c.KernelRadius == nil {
		return DefaultKernelRadius
	}
	return *c.KernelRadius
}

// GetKernelSigma returns the configured kernel sigma or the default.
func (c *Config) GetKernelSigma() float64 {
	if c.KernelSigma == nil {
		return DefaultKernelSigma
	}
	return *c.KernelSigma
}

// GetGamma returns the configured gamma or the default.
func (c *Config) GetGamma() float64 {
	if c.Gamma == nil {
		return DefaultGamma
	}
	return *c.Gamma
}
