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

package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NVIDIA/envprobe/pkg/platform"
	"github.com/NVIDIA/envprobe/pkg/platform/profile"
)

type staticNavigator struct{ cores int }

func (n staticNavigator) HardwareConcurrency() int { return n.cores }
func (staticNavigator) DeviceMemory() float64      { return 32 }
func (staticNavigator) Platform() string           { return "linux" }
func (staticNavigator) Languages() []string        { return []string{"fr-FR"} }
func (staticNavigator) DoNotTrack() string         { return "" }
func (staticNavigator) CookiesEnabled() bool       { return false }
func (staticNavigator) Online() bool               { return true }

func TestOverride(t *testing.T) {
	base := profile.NewProvider(profile.Profile{
		UserAgent: "UA",
		Navigator: profile.Navigator{HardwareConcurrency: 1, Platform: "Win32"},
	})

	c := platform.Override(base, platform.Composite{Navigator: staticNavigator{cores: 24}})

	var p platform.Provider = c
	assert.Equal(t, "UA", p.UserAgent())
	assert.Equal(t, 24, p.HardwareConcurrency())
	assert.Equal(t, "linux", p.Platform())
	assert.Equal(t, []string{"fr-FR"}, p.Languages())
}

func TestOverrideNothing(t *testing.T) {
	base := profile.NewProvider(profile.Profile{Navigator: profile.Navigator{HardwareConcurrency: 4}})
	c := platform.Override(base, platform.Composite{})
	assert.Equal(t, 4, c.HardwareConcurrency())
}
