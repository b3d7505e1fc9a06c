// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package profile

import (
	"embed"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/NVIDIA/envprobe/pkg/errors"
	"github.com/NVIDIA/envprobe/pkg/platform"
	"github.com/NVIDIA/envprobe/pkg/serializer"
)

// BuiltinScheme prefixes the names of profiles shipped with envprobe,
// e.g. builtin:chrome-desktop.
const BuiltinScheme = "builtin:"

//go:embed builtin/*.yaml
var builtinFS embed.FS

// BuiltinNames lists the shipped profiles in sorted order.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	slices.Sort(names)
	return names
}

// Builtin returns a shipped profile by name.
func Builtin(name string) (*Profile, error) {
	f, err := builtinFS.Open(path.Join("builtin", name+".yaml"))
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound, "unknown builtin profile", err,
			map[string]any{"name": name, "available": BuiltinNames()})
	}
	defer f.Close()
	return Decode(serializer.FormatYAML, f)
}

// Load reads a profile from a builtin name, a local file or an http(s) URL.
func Load(source string) (*Profile, error) {
	if name, ok := strings.CutPrefix(source, BuiltinScheme); ok {
		return Builtin(name)
	}
	p, err := serializer.FromFile[Profile](source)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %q: %w", source, err)
	}
	return p, nil
}

// Decode reads and validates a profile from r.
func Decode(format serializer.Format, r io.Reader) (*Profile, error) {
	p, err := serializer.FromReader[Profile](format, r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to decode profile", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate rejects profiles that no real platform could report.
func (p *Profile) Validate() error {
	check := func(field string, v int) error {
		if v < 0 {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"negative value in profile", map[string]any{"field": field, "value": v})
		}
		return nil
	}
	for field, v := range map[string]int{
		"screen.width":                  p.Screen.Width,
		"screen.height":                 p.Screen.Height,
		"screen.availWidth":             p.Screen.AvailWidth,
		"screen.availHeight":            p.Screen.AvailHeight,
		"screen.colorDepth":             p.Screen.ColorDepth,
		"screen.pixelDepth":             p.Screen.PixelDepth,
		"viewport.width":                p.Viewport.Width,
		"viewport.height":               p.Viewport.Height,
		"touch.maxTouchPoints":          p.Touch.MaxTouchPoints,
		"touch.msMaxTouchPoints":        p.Touch.MSMaxTouchPoints,
		"graphics.maxTextureSize":       p.Graphics.MaxTextureSize,
		"navigator.hardwareConcurrency": p.Navigator.HardwareConcurrency,
	} {
		if err := check(field, v); err != nil {
			return err
		}
	}
	if p.Screen.PixelRatio < 0 || p.Navigator.DeviceMemory < 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "negative pixel ratio or device memory in profile")
	}
	if p.Connection != nil && p.Connection.Downlink != nil && *p.Connection.Downlink < 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "negative downlink in profile")
	}

	vendors := slices.Concat([]platform.Vendor{p.Fullscreen.Vendor}, p.Fullscreen.Request, p.Fullscreen.Exit)
	for _, v := range vendors {
		if !slices.Contains(platform.FullscreenVendors, v) {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"unknown fullscreen vendor", map[string]any{"vendor": string(v)})
		}
	}
	return nil
}
