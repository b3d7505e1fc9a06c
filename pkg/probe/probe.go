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

package probe

import (
	"log/slog"

	"github.com/NVIDIA/envprobe/pkg/platform"
)

// Probe answers environment queries against a platform.Provider.
// It holds no state of its own; every call re-queries the provider.
type Probe struct {
	provider platform.Provider
	log      *slog.Logger
}

// Option configures a Probe.
type Option func(*Probe)

// WithLogger sets the logger used for degraded probes.
func WithLogger(l *slog.Logger) Option {
	return func(p *Probe) {
		if l != nil {
			p.log = l
		}
	}
}

// New returns a Probe over provider.
func New(provider platform.Provider, opts ...Option) *Probe {
	p := &Probe{
		provider: provider,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
