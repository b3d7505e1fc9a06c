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

// Package collector turns probe queries into measurements.
//
// Each Collector produces one measurement.Measurement per measurement.Type:
//
//   - Browser: identity (name, version, icon, recommended)
//   - Display: screen geometry and fullscreen state
//   - Acceleration: WebGL support, renderer details and the probe outcome
//   - Device: touch support and mobile form factor
//   - Network: connection quality and online state
//   - Platform: navigator facts (cores, memory, platform, languages)
//
// Collectors are created by a Factory. DefaultFactory binds every
// collector to one platform.Provider:
//
//	f := collector.NewDefaultFactory(provider)
//	for _, c := range collector.All(f) {
//	    m, err := c.Collect(ctx)
//	    ...
//	}
//
// Collectors only fail when ctx is done; degraded capability probes are
// reported as readings.
package collector
