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

// Package probe reports client environment characteristics for a gaming
// benchmark: browser identity, 3D acceleration, display geometry, touch
// and mobile detection, network quality, advisory issues and a minimum
// requirements check.
//
// A Probe is a stateless view over a platform.Provider. Every query asks the
// provider again, so answers track the live environment:
//
//	pr := probe.New(provider, probe.WithLogger(slog.Default()))
//	info := pr.GetSystemInfo()
//	for _, issue := range pr.DetectEnvironmentIssues() {
//		fmt.Println(issue.Severity, issue.Message)
//	}
//
// GetAccelerationInfo never fails. ProbeAcceleration returns the same info
// with an Outcome that separates a platform without WebGL from a probe that
// raised; outcomes are counted in envprobe_capability_probe_total.
//
// Probe methods are synchronous and safe for concurrent use when the
// provider is.
package probe
