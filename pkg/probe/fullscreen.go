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

import "github.com/NVIDIA/envprobe/pkg/platform"

// IsFullscreen reports whether any vendor accessor exposes a fullscreen element.
func (p *Probe) IsFullscreen() bool {
	for _, v := range platform.FullscreenVendors {
		if p.provider.FullscreenElement(v) {
			return true
		}
	}
	return false
}

// ToggleFullscreen requests fullscreen on the root element when not
// fullscreen, otherwise exits it, using the first vendor method available.
// Nothing happens when no method exists. The request is not awaited.
func (p *Probe) ToggleFullscreen() {
	if !p.IsFullscreen() {
		for _, v := range platform.FullscreenVendors {
			if p.provider.CanRequestFullscreen(v) {
				p.provider.RequestFullscreen(v)
				return
			}
		}
		p.log.Debug("no fullscreen request method available")
		return
	}

	for _, v := range platform.FullscreenVendors {
		if p.provider.CanExitFullscreen(v) {
			p.provider.ExitFullscreen(v)
			return
		}
	}
	p.log.Debug("no fullscreen exit method available")
}
