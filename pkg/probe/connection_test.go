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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NVIDIA/envprobe/pkg/platform"
)

func mbps(v float64) *float64 { return &v }

func TestIsSlowConnection(t *testing.T) {
	tests := []struct {
		name string
		conn *platform.Connection
		want bool
	}{
		{"no connection info", nil, false},
		{"empty record", &platform.Connection{}, false},
		{"save data", &platform.Connection{SaveData: true, EffectiveType: "4g"}, true},
		{"slow-2g", &platform.Connection{EffectiveType: "slow-2g"}, true},
		{"2g", &platform.Connection{EffectiveType: "2g"}, true},
		{"3g", &platform.Connection{EffectiveType: "3g"}, true},
		{"4g", &platform.Connection{EffectiveType: "4g"}, false},
		{"4g decides over slow cellular downlink", &platform.Connection{EffectiveType: "4g", Type: "cellular", Downlink: mbps(0.5)}, false},
		{"cellular slow downlink", &platform.Connection{Type: "cellular", Downlink: mbps(0.5)}, true},
		{"cellular at threshold", &platform.Connection{Type: "cellular", Downlink: mbps(1)}, false},
		{"cellular unknown downlink", &platform.Connection{Type: "cellular"}, false},
		{"wifi slow downlink", &platform.Connection{Type: "wifi", Downlink: mbps(0.2)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := desktopProfile()
			p.Connection = tt.conn
			assert.Equal(t, tt.want, newProbe(newFake(p)).IsSlowConnection())
		})
	}
}
