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

import "regexp"

// Viewport bounds at or below which a device is treated as mobile.
const (
	MobileViewportMaxWidth  = 800
	MobileViewportMaxHeight = 600
)

var mobileUserAgent = regexp.MustCompile(`(?i)android|webos|iphone|ipad|ipod|blackberry|iemobile|opera mini`)

// IsTouchSupported reports any of the touch-event hook or a positive
// touch-point count.
func (p *Probe) IsTouchSupported() bool {
	return p.provider.TouchEventSupported() ||
		p.provider.MaxTouchPoints() > 0 ||
		p.provider.MSMaxTouchPoints() > 0
}

// IsMobileDevice reports a mobile token in the identifying string or a small
// viewport. A viewport with a zero dimension is unknown and never small.
func (p *Probe) IsMobileDevice() bool {
	if mobileUserAgent.MatchString(p.provider.UserAgent()) {
		return true
	}
	w, h := p.provider.Viewport()
	return w > 0 && h > 0 && w <= MobileViewportMaxWidth && h <= MobileViewportMaxHeight
}
