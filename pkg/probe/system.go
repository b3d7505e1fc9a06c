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

// GetSystemInfo runs every query once and aggregates the answers.
func (p *Probe) GetSystemInfo() SystemInfo {
	return p.systemInfo(p.GetAccelerationInfo())
}

func (p *Probe) systemInfo(accel AccelerationInfo) SystemInfo {
	langs := p.provider.Languages()
	if langs == nil {
		langs = []string{}
	}
	return SystemInfo{
		Browser:          p.DetectBrowser(),
		Display:          p.GetDisplayInfo(),
		Acceleration:     accel,
		IsMobile:         p.IsMobileDevice(),
		IsTouch:          p.IsTouchSupported(),
		IsSlowConnection: p.IsSlowConnection(),
		IsFullscreen:     p.IsFullscreen(),
		CPUCores:         p.provider.HardwareConcurrency(),
		Memory:           p.provider.DeviceMemory(),
		Platform:         p.provider.Platform(),
		Languages:        langs,
		DoNotTrack:       p.provider.DoNotTrack(),
		CookiesEnabled:   p.provider.CookiesEnabled(),
		Online:           p.provider.Online(),
	}
}
