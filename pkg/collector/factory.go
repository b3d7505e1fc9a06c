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
	"log/slog"

	"github.com/NVIDIA/envprobe/pkg/measurement"
	"github.com/NVIDIA/envprobe/pkg/platform"
	"github.com/NVIDIA/envprobe/pkg/probe"
)

// Factory creates collectors. It exists so snapshotter tests can inject
// failing or slow collectors.
type Factory interface {
	CreateBrowserCollector() Collector
	CreateDisplayCollector() Collector
	CreateAccelerationCollector() Collector
	CreateDeviceCollector() Collector
	CreateNetworkCollector() Collector
	CreatePlatformCollector() Collector
}

// All returns one collector per measurement type, in measurement.Types order.
func All(f Factory) []Collector {
	return []Collector{
		f.CreateBrowserCollector(),
		f.CreateDisplayCollector(),
		f.CreateAccelerationCollector(),
		f.CreateDeviceCollector(),
		f.CreateNetworkCollector(),
		f.CreatePlatformCollector(),
	}
}

// ForType returns the collector for t, or nil for an unknown type.
func ForType(f Factory, t measurement.Type) Collector {
	switch t {
	case measurement.TypeBrowser:
		return f.CreateBrowserCollector()
	case measurement.TypeDisplay:
		return f.CreateDisplayCollector()
	case measurement.TypeAcceleration:
		return f.CreateAccelerationCollector()
	case measurement.TypeDevice:
		return f.CreateDeviceCollector()
	case measurement.TypeNetwork:
		return f.CreateNetworkCollector()
	case measurement.TypePlatform:
		return f.CreatePlatformCollector()
	default:
		return nil
	}
}

// DefaultFactory creates collectors that query a probe over a provider.
type DefaultFactory struct {
	Provider platform.Provider
	Probe    *probe.Probe
}

// Option configures a DefaultFactory.
type Option func(*factoryConfig)

type factoryConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger handed to the underlying probe.
func WithLogger(l *slog.Logger) Option {
	return func(c *factoryConfig) {
		c.logger = l
	}
}

// NewDefaultFactory creates a factory bound to provider.
func NewDefaultFactory(provider platform.Provider, opts ...Option) *DefaultFactory {
	cfg := &factoryConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &DefaultFactory{
		Provider: provider,
		Probe:    probe.New(provider, probe.WithLogger(cfg.logger)),
	}
}

// CreateBrowserCollector creates a browser identity collector.
func (f *DefaultFactory) CreateBrowserCollector() Collector {
	return &BrowserCollector{Probe: f.Probe}
}

// CreateDisplayCollector creates a screen geometry collector.
func (f *DefaultFactory) CreateDisplayCollector() Collector {
	return &DisplayCollector{Probe: f.Probe}
}

// CreateAccelerationCollector creates a 3D acceleration collector.
func (f *DefaultFactory) CreateAccelerationCollector() Collector {
	return &AccelerationCollector{Probe: f.Probe}
}

// CreateDeviceCollector creates a touch and form-factor collector.
func (f *DefaultFactory) CreateDeviceCollector() Collector {
	return &DeviceCollector{Probe: f.Probe}
}

// CreateNetworkCollector creates a connection quality collector.
func (f *DefaultFactory) CreateNetworkCollector() Collector {
	return &NetworkCollector{Probe: f.Probe, Navigator: f.Provider}
}

// CreatePlatformCollector creates a navigator facts collector.
func (f *DefaultFactory) CreatePlatformCollector() Collector {
	return &PlatformCollector{Navigator: f.Provider}
}
