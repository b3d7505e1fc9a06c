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

// SlowEffectiveTypes are the effective connection types classified as slow.
var SlowEffectiveTypes = []string{"slow-2g", "2g", "3g"}

// SlowCellularDownlinkMbps is the downlink below which a cellular connection
// is slow when no effective type is reported.
const SlowCellularDownlinkMbps = 1.0

// IsSlowConnection classifies network quality. The first applicable rule
// decides: no connection info is not slow, data saver is slow, a reported
// effective type decides by SlowEffectiveTypes, otherwise a cellular link
// with a reported downlink under SlowCellularDownlinkMbps is slow.
func (p *Probe) IsSlowConnection() bool {
	conn, ok := p.provider.Connection()
	if !ok {
		return false
	}
	if conn.SaveData {
		return true
	}
	if conn.EffectiveType != "" {
		return slices.Contains(SlowEffectiveTypes, conn.EffectiveType)
	}
	return conn.Type == "cellular" && conn.Downlink != nil && *conn.Downlink < SlowCellularDownlinkMbps
}
