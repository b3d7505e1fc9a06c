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
	"log/slog"

	"github.com/NVIDIA/envprobe/pkg/platform"
)

// Capture reads every capability of src into a Profile. A browser build
// uses it to produce the report it posts to the probe API. Unreadable
// rendering parameters are left empty; a failing context factory is
// recorded in Graphics.Fail.
func Capture(src platform.Provider) *Profile {
	p := &Profile{
		UserAgent: src.UserAgent(),
		Screen:    src.Screen(),
		Touch: Touch{
			Events:           src.TouchEventSupported(),
			MaxTouchPoints:   src.MaxTouchPoints(),
			MSMaxTouchPoints: src.MSMaxTouchPoints(),
		},
		Navigator: Navigator{
			HardwareConcurrency: src.HardwareConcurrency(),
			DeviceMemory:        src.DeviceMemory(),
			Platform:            src.Platform(),
			Languages:           src.Languages(),
			DoNotTrack:          src.DoNotTrack(),
			CookiesEnabled:      src.CookiesEnabled(),
			Online:              src.Online(),
		},
	}

	p.Viewport.Width, p.Viewport.Height = src.Viewport()

	if c, ok := src.Connection(); ok {
		p.Connection = &c
	}

	p.Fullscreen = captureFullscreen(src)
	p.Graphics = captureGraphics(src)
	return p
}

func captureFullscreen(src platform.Document) Fullscreen {
	f := Fullscreen{
		Request: []platform.Vendor{},
		Exit:    []platform.Vendor{},
	}
	for _, v := range platform.FullscreenVendors {
		if !f.Active && src.FullscreenElement(v) {
			f.Active = true
			f.Vendor = v
		}
		if src.CanRequestFullscreen(v) {
			f.Request = append(f.Request, v)
		}
		if src.CanExitFullscreen(v) {
			f.Exit = append(f.Exit, v)
		}
	}
	return f
}

func captureGraphics(src platform.Graphics) Graphics {
	var g Graphics

	ctx, err := src.NewContext(platform.ContextWebGL)
	if err == nil && ctx == nil {
		ctx, err = src.NewContext(platform.ContextExperimentalWebGL)
		g.ExperimentalWebGL = ctx != nil
	} else {
		g.WebGL = ctx != nil
	}
	if err != nil {
		g.Fail = err.Error()
		return g
	}

	if ctx != nil {
		readContext(ctx, &g)
		ctx.Release()
	}

	ctx2, err := src.NewContext(platform.ContextWebGL2)
	if err != nil {
		slog.Debug("webgl2 context factory failed", "error", err)
	} else if ctx2 != nil {
		g.WebGL2 = true
		ctx2.Release()
	}
	return g
}

func readContext(ctx platform.GLContext, g *Graphics) {
	str := func(param platform.Parameter) string {
		v, err := ctx.StringParameter(param)
		if err != nil {
			slog.Debug("context parameter unreadable", "param", string(param), "error", err)
		}
		return v
	}

	g.Renderer = str(platform.ParamRenderer)
	g.Vendor = str(platform.ParamVendor)
	if ctx.HasExtension(platform.ExtDebugRendererInfo) {
		g.UnmaskedRenderer = str(platform.ParamUnmaskedRenderer)
		g.UnmaskedVendor = str(platform.ParamUnmaskedVendor)
	}
	if v, err := ctx.IntParameter(platform.ParamMaxTextureSize); err == nil {
		g.MaxTextureSize = v
	}
	if v, err := ctx.Antialias(); err == nil {
		g.Antialias = v
	}
	if v, err := ctx.SupportedExtensions(); err == nil {
		g.Extensions = v
	}
}
