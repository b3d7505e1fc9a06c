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

import "slices"

// SupportedBrowsers may run the benchmark at all.
var SupportedBrowsers = []string{
	BrowserChrome,
	BrowserFirefox,
	BrowserSafari,
	BrowserEdge,
	BrowserOpera,
}

// MinimumCPUCores is the smallest core count that meets requirements.
const MinimumCPUCores = 2

// MeetsMinimumRequirements reports WebGL support, a supported browser and
// at least MinimumCPUCores logical cores. An unknown core count is 0.
func (p *Probe) MeetsMinimumRequirements() bool {
	return meetsRequirements(p.GetAccelerationInfo().WebGLSupported,
		p.DetectBrowser().Name, p.provider.HardwareConcurrency())
}

func meetsRequirements(webgl bool, browser string, cores int) bool {
	return webgl && slices.Contains(SupportedBrowsers, browser) && cores >= MinimumCPUCores
}
