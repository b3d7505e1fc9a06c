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
	"github.com/NVIDIA/envprobe/pkg/platform/profile"
)

func TestIsFullscreenAnyVendor(t *testing.T) {
	for _, v := range platform.FullscreenVendors {
		t.Run("vendor="+string(v), func(t *testing.T) {
			p := desktopProfile()
			p.Fullscreen.Active = true
			p.Fullscreen.Vendor = v
			assert.True(t, newProbe(newFake(p)).IsFullscreen())
		})
	}

	assert.False(t, newProbe(newFake(desktopProfile())).IsFullscreen())
}

func TestToggleFullscreenRequestPriority(t *testing.T) {
	p := desktopProfile()
	p.Fullscreen.Request = []platform.Vendor{platform.VendorMS, platform.VendorMoz, platform.VendorWebkit}
	f := newFake(p)
	pr := newProbe(f)

	pr.ToggleFullscreen()

	assert.True(t, pr.IsFullscreen())
	assert.Equal(t, platform.VendorWebkit, f.Profile().Fullscreen.Vendor, "webkit precedes moz and ms")
}

func TestToggleFullscreenExit(t *testing.T) {
	p := desktopProfile()
	p.Fullscreen = profile.Fullscreen{
		Active: true,
		Vendor: platform.VendorMoz,
		Exit:   []platform.Vendor{platform.VendorMoz},
	}
	pr := newProbe(newFake(p))

	pr.ToggleFullscreen()
	assert.False(t, pr.IsFullscreen())
}

func TestToggleFullscreenRoundTrip(t *testing.T) {
	pr := newProbe(newFake(desktopProfile()))

	pr.ToggleFullscreen()
	assert.True(t, pr.IsFullscreen())
	pr.ToggleFullscreen()
	assert.False(t, pr.IsFullscreen())
}

func TestToggleFullscreenNoMethods(t *testing.T) {
	p := desktopProfile()
	p.Fullscreen = profile.Fullscreen{Request: []platform.Vendor{}, Exit: []platform.Vendor{}}
	pr := newProbe(newFake(p))

	assert.NotPanics(t, pr.ToggleFullscreen)
	assert.False(t, pr.IsFullscreen())
}
