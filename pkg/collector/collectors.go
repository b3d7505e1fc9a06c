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

package collector

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/envprobe/pkg/measurement"
	"github.com/NVIDIA/envprobe/pkg/platform"
	"github.com/NVIDIA/envprobe/pkg/probe"
)

// BrowserCollector reports the browser identity.
type BrowserCollector struct {
	Probe *probe.Probe
}

// Collect returns a Browser measurement with an identity subtype.
func (c *BrowserCollector) Collect(ctx context.Context) (*measurement.Measurement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := c.Probe.DetectBrowser()
	slog.Debug("collected browser identity", "name", b.Name, "version", b.Version)

	return measurement.New(measurement.TypeBrowser,
		measurement.NewSubtype(measurement.SubtypeIdentity, measurement.Fields{
			measurement.KeyName:        b.Name,
			measurement.KeyVersion:     b.Version,
			measurement.KeyIcon:        b.Icon,
			measurement.KeyRecommended: b.IsRecommended,
		})), nil
}

// DisplayCollector reports screen geometry and fullscreen state.
type DisplayCollector struct {
	Probe *probe.Probe
}

// Collect returns a Display measurement with screen and state subtypes.
func (c *DisplayCollector) Collect(ctx context.Context) (*measurement.Measurement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d := c.Probe.GetDisplayInfo()

	return measurement.New(measurement.TypeDisplay,
		measurement.NewSubtype(measurement.SubtypeScreen, measurement.Fields{
			measurement.KeyWidth:       d.Width,
			measurement.KeyHeight:      d.Height,
			measurement.KeyAvailWidth:  d.AvailWidth,
			measurement.KeyAvailHeight: d.AvailHeight,
			measurement.KeyColorDepth:  d.ColorDepth,
			measurement.KeyPixelDepth:  d.PixelDepth,
			measurement.KeyPixelRatio:  d.PixelRatio,
			measurement.KeyOrientation: d.Orientation,
		}),
		measurement.NewSubtype(measurement.SubtypeState, measurement.Fields{
			measurement.KeyFullscreen: c.Probe.IsFullscreen(),
		})), nil
}

// AccelerationCollector reports 3D rendering support. Probe failures are
// recorded in the probe subtype rather than returned.
type AccelerationCollector struct {
	Probe *probe.Probe
}

// Collect returns an Acceleration measurement with webgl and probe subtypes.
func (c *AccelerationCollector) Collect(ctx context.Context) (*measurement.Measurement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := c.Probe.ProbeAcceleration()
	a := r.Info

	return measurement.New(measurement.TypeAcceleration,
		measurement.NewSubtype(measurement.SubtypeWebGL, measurement.Fields{
			measurement.KeySupported:           a.WebGLSupported,
			measurement.KeyWebGL2Supported:     a.WebGL2Supported,
			measurement.KeyHardwareAccelerated: a.HardwareAccelerated,
			measurement.KeyRenderer:            a.Renderer,
			measurement.KeyVendor:              a.Vendor,
			measurement.KeyMaxTextureSize:      a.MaxTextureSize,
			measurement.KeyAntialiasing:        a.Antialiasing,
			measurement.KeyExtensions:          a.Extensions,
			measurement.KeyExtensionCount:      len(a.Extensions),
		}),
		measurement.NewSubtype(measurement.SubtypeProbe, measurement.Fields{
			measurement.KeyOutcome: string(r.Outcome),
			"error":                measurement.ErrorText(r.Err),
		})), nil
}

// DeviceCollector reports touch support and mobile form factor.
type DeviceCollector struct {
	Probe *probe.Probe
}

// Collect returns a Device measurement with an input subtype.
func (c *DeviceCollector) Collect(ctx context.Context) (*measurement.Measurement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return measurement.New(measurement.TypeDevice,
		measurement.NewSubtype(measurement.SubtypeInput, measurement.Fields{
			measurement.KeyTouch:  c.Probe.IsTouchSupported(),
			measurement.KeyMobile: c.Probe.IsMobileDevice(),
		})), nil
}

// NetworkCollector reports connection quality and online state.
type NetworkCollector struct {
	Probe     *probe.Probe
	Navigator platform.Navigator
}

// Collect returns a Network measurement with a connection subtype.
func (c *NetworkCollector) Collect(ctx context.Context) (*measurement.Measurement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return measurement.New(measurement.TypeNetwork,
		measurement.NewSubtype(measurement.SubtypeConnection, measurement.Fields{
			measurement.KeySlow:   c.Probe.IsSlowConnection(),
			measurement.KeyOnline: c.Navigator.Online(),
		})), nil
}

// PlatformCollector reports navigator facts.
type PlatformCollector struct {
	Navigator platform.Navigator
}

// Collect returns a Platform measurement with a navigator subtype.
func (c *PlatformCollector) Collect(ctx context.Context) (*measurement.Measurement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := c.Navigator
	return measurement.New(measurement.TypePlatform,
		measurement.NewSubtype(measurement.SubtypeNavigator, measurement.Fields{
			measurement.KeyCPUCores:       n.HardwareConcurrency(),
			measurement.KeyMemory:         n.DeviceMemory(),
			measurement.KeyPlatform:       n.Platform(),
			measurement.KeyLanguages:      n.Languages(),
			measurement.KeyDoNotTrack:     n.DoNotTrack(),
			measurement.KeyCookiesEnabled: n.CookiesEnabled(),
		})), nil
}
