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

// Evaluation is one pass over an environment. Every field derives from a
// single acceleration probe, so they agree even on a live provider whose
// answers change between calls.
type Evaluation struct {
	System                   SystemInfo
	Issues                   []Issue
	MeetsMinimumRequirements bool
	Acceleration             AccelerationReport
}

// Evaluate probes acceleration once and derives system info, advisories and
// the requirements check from that reading.
func (p *Probe) Evaluate() Evaluation {
	accel := p.ProbeAcceleration()
	sys := p.systemInfo(accel.Info)
	return Evaluation{
		System:                   sys,
		Issues:                   issuesFor(conditionsOf(sys)),
		MeetsMinimumRequirements: meetsRequirements(accel.Info.WebGLSupported, sys.Browser.Name, sys.CPUCores),
		Acceleration:             accel,
	}
}
