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
	"errors"
	"io"
	"log/slog"

	"github.com/NVIDIA/envprobe/pkg/platform"
	"github.com/NVIDIA/envprobe/pkg/platform/profile"
)

const (
	uaChrome  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.6099.109 Safari/537.36"
	uaEdge    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36 Edg/121.0.2277.83"
	uaFirefox = "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"
	uaSafari  = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_2) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15"
	uaIPhone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1"
	uaPresto  = "Opera/9.80 (Windows NT 6.1; WOW64) Presto/2.12.388 Version/12.16"
	uaIE11    = "Mozilla/5.0 (Windows NT 10.0; WOW64; Trident/7.0; rv:11.0) like Gecko"
)

// fakeProvider serves a profile and lets tests replace the context factory.
type fakeProvider struct {
	*profile.Provider
	newContext func(platform.ContextKind) (platform.GLContext, error)
	created    int
}

func (f *fakeProvider) NewContext(kind platform.ContextKind) (platform.GLContext, error) {
	if f.newContext != nil {
		return f.newContext(kind)
	}
	ctx, err := f.Provider.NewContext(kind)
	if ctx != nil {
		f.created++
	}
	return ctx, err
}

// brokenContext fails or panics on selected parameters.
type brokenContext struct {
	platform.GLContext
	failOn  platform.Parameter
	panicOn platform.Parameter
}

func (c *brokenContext) StringParameter(p platform.Parameter) (string, error) {
	c.check(p)
	if p == c.failOn {
		return "", errors.New("context lost")
	}
	return c.GLContext.StringParameter(p)
}

func (c *brokenContext) IntParameter(p platform.Parameter) (int, error) {
	c.check(p)
	if p == c.failOn {
		return 0, errors.New("context lost")
	}
	return c.GLContext.IntParameter(p)
}

func (c *brokenContext) check(p platform.Parameter) {
	if p == c.panicOn {
		panic("driver crashed")
	}
}

func desktopProfile() profile.Profile {
	downlink := 25.0
	return profile.Profile{
		UserAgent: uaChrome,
		Fullscreen: profile.Fullscreen{
			Request: platform.FullscreenVendors,
			Exit:    platform.FullscreenVendors,
		},
		Graphics: profile.Graphics{
			WebGL:            true,
			WebGL2:           true,
			Renderer:         "WebKit WebGL",
			Vendor:           "WebKit",
			UnmaskedRenderer: "ANGLE (NVIDIA GeForce RTX 4080)",
			UnmaskedVendor:   "Google Inc. (NVIDIA)",
			MaxTextureSize:   16384,
			Antialias:        true,
			Extensions:       []string{"OES_texture_float", platform.ExtDebugRendererInfo},
		},
		Screen: platform.Screen{
			Width: 2560, Height: 1440, AvailWidth: 2560, AvailHeight: 1400,
			ColorDepth: 24, PixelDepth: 24, PixelRatio: 1.5, Orientation: "landscape-primary",
		},
		Viewport:   profile.Viewport{Width: 2560, Height: 1271},
		Connection: &platform.Connection{Type: "ethernet", Downlink: &downlink},
		Navigator: profile.Navigator{
			HardwareConcurrency: 16,
			DeviceMemory:        8,
			Platform:            "Win32",
			Languages:           []string{"en-US", "en"},
			DoNotTrack:          "1",
			CookiesEnabled:      true,
			Online:              true,
		},
	}
}

func newFake(p profile.Profile) *fakeProvider {
	return &fakeProvider{Provider: profile.NewProvider(p)}
}

func newProbe(f *fakeProvider) *Probe {
	return New(f, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}
