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

// OrientationUnknown is reported when the platform has no orientation API.
const OrientationUnknown = "unknown"

// GetDisplayInfo returns the current screen geometry.
func (p *Probe) GetDisplayInfo() DisplayInfo {
	s := p.provider.Screen()
	info := DisplayInfo{
		Width:       s.Width,
		Height:      s.Height,
		AvailWidth:  s.AvailWidth,
		AvailHeight: s.AvailHeight,
		ColorDepth:  s.ColorDepth,
		PixelDepth:  s.PixelDepth,
		PixelRatio:  s.PixelRatio,
		Orientation: s.Orientation,
	}
	if info.Orientation == "" {
		info.Orientation = OrientationUnknown
	}
	return info
}
