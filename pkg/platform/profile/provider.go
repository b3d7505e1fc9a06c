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

package profile

import (
	"errors"
	"slices"
	"sync"

	"github.com/NVIDIA/envprobe/pkg/platform"
)

// Provider serves a Profile as a platform.Provider. Fullscreen requests
// mutate the provider's copy of the fullscreen state; all other answers are
// static.
type Provider struct {
	profile Profile

	mu         sync.Mutex
	fullscreen Fullscreen
	released   int
}

var _ platform.Provider = (*Provider)(nil)

// NewProvider returns a Provider over a copy of p.
func NewProvider(p Profile) *Provider {
	return &Provider{
		profile:    p,
		fullscreen: p.Fullscreen,
	}
}

// Profile returns the profile with the current fullscreen state.
func (p *Provider) Profile() Profile {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.profile
	out.Fullscreen = p.fullscreen
	return out
}

// Released returns how many rendering contexts have been released.
func (p *Provider) Released() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.released
}

// UserAgent implements platform.Identity.
func (p *Provider) UserAgent() string { return p.profile.UserAgent }

// FullscreenElement implements platform.Document.
func (p *Provider) FullscreenElement(v platform.Vendor) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fullscreen.Active && p.fullscreen.Vendor == v
}

// CanRequestFullscreen implements platform.Document.
func (p *Provider) CanRequestFullscreen(v platform.Vendor) bool {
	return hasVendor(p.profile.Fullscreen.Request, v)
}

// RequestFullscreen implements platform.Document.
func (p *Provider) RequestFullscreen(v platform.Vendor) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fullscreen.Active = true
	p.fullscreen.Vendor = v
}

// CanExitFullscreen implements platform.Document.
func (p *Provider) CanExitFullscreen(v platform.Vendor) bool {
	return hasVendor(p.profile.Fullscreen.Exit, v)
}

// ExitFullscreen implements platform.Document.
func (p *Provider) ExitFullscreen(platform.Vendor) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fullscreen.Active = false
	p.fullscreen.Vendor = platform.VendorStandard
}

func hasVendor(list []platform.Vendor, v platform.Vendor) bool {
	if list == nil {
		return v == platform.VendorStandard
	}
	return slices.Contains(list, v)
}

// NewContext implements platform.Graphics.
func (p *Provider) NewContext(kind platform.ContextKind) (platform.GLContext, error) {
	g := p.profile.Graphics
	if g.Fail != "" {
		return nil, errors.New(g.Fail)
	}
	var ok bool
	switch kind {
	case platform.ContextWebGL:
		ok = g.WebGL
	case platform.ContextExperimentalWebGL:
		ok = g.WebGL || g.ExperimentalWebGL
	case platform.ContextWebGL2:
		ok = g.WebGL2
	}
	if !ok {
		return nil, nil
	}
	return &glContext{graphics: g, owner: p}, nil
}

// Screen implements platform.Display.
func (p *Provider) Screen() platform.Screen { return p.profile.Screen }

// Viewport implements platform.Display.
func (p *Provider) Viewport() (int, int) {
	return p.profile.Viewport.Width, p.profile.Viewport.Height
}

// TouchEventSupported implements platform.Touch.
func (p *Provider) TouchEventSupported() bool { return p.profile.Touch.Events }

// MaxTouchPoints implements platform.Touch.
func (p *Provider) MaxTouchPoints() int { return p.profile.Touch.MaxTouchPoints }

// MSMaxTouchPoints implements platform.Touch.
func (p *Provider) MSMaxTouchPoints() int { return p.profile.Touch.MSMaxTouchPoints }

// Connection implements platform.Network.
func (p *Provider) Connection() (platform.Connection, bool) {
	if p.profile.Connection == nil {
		return platform.Connection{}, false
	}
	return *p.profile.Connection, true
}

// HardwareConcurrency implements platform.Navigator.
func (p *Provider) HardwareConcurrency() int { return p.profile.Navigator.HardwareConcurrency }

// DeviceMemory implements platform.Navigator.
func (p *Provider) DeviceMemory() float64 { return p.profile.Navigator.DeviceMemory }

// Platform implements platform.Navigator.
func (p *Provider) Platform() string { return p.profile.Navigator.Platform }

// Languages implements platform.Navigator.
func (p *Provider) Languages() []string { return slices.Clone(p.profile.Navigator.Languages) }

// DoNotTrack implements platform.Navigator.
func (p *Provider) DoNotTrack() string { return p.profile.Navigator.DoNotTrack }

// CookiesEnabled implements platform.Navigator.
func (p *Provider) CookiesEnabled() bool { return p.profile.Navigator.CookiesEnabled }

// Online implements platform.Navigator.
func (p *Provider) Online() bool { return p.profile.Navigator.Online }

type glContext struct {
	graphics Graphics
	owner    *Provider
}

func (c *glContext) HasExtension(name string) bool {
	return slices.Contains(c.graphics.Extensions, name)
}

func (c *glContext) StringParameter(param platform.Parameter) (string, error) {
	switch param {
	case platform.ParamRenderer:
		return c.graphics.Renderer, nil
	case platform.ParamVendor:
		return c.graphics.Vendor, nil
	case platform.ParamUnmaskedRenderer:
		return c.graphics.UnmaskedRenderer, nil
	case platform.ParamUnmaskedVendor:
		return c.graphics.UnmaskedVendor, nil
	default:
		return "", errUnknownParameter(param)
	}
}

func (c *glContext) IntParameter(param platform.Parameter) (int, error) {
	if param == platform.ParamMaxTextureSize {
		return c.graphics.MaxTextureSize, nil
	}
	return 0, errUnknownParameter(param)
}

func (c *glContext) Antialias() (bool, error) { return c.graphics.Antialias, nil }

func (c *glContext) SupportedExtensions() ([]string, error) {
	return slices.Clone(c.graphics.Extensions), nil
}

func (c *glContext) Release() {
	c.owner.mu.Lock()
	defer c.owner.mu.Unlock()
	c.owner.released++
}

func errUnknownParameter(p platform.Parameter) error {
	return errors.New("unknown parameter " + string(p))
}
