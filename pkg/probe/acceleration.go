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
	"fmt"
	"strings"

	"github.com/NVIDIA/envprobe/pkg/errors"
	"github.com/NVIDIA/envprobe/pkg/platform"
)

// UnknownValue is reported for renderer and vendor strings that could not be read.
const UnknownValue = "Unknown"

// SoftwareRenderers are lowercase renderer substrings that identify
// software rasterization.
var SoftwareRenderers = []string{
	"swiftshader",
	"llvmpipe",
	"software",
	"mesa",
	"microsoft basic render",
}

// webglContext requests a WebGL context, falling back to the prefixed name.
func (p *Probe) webglContext() (platform.GLContext, error) {
	for _, kind := range []platform.ContextKind{platform.ContextWebGL, platform.ContextExperimentalWebGL} {
		ctx, err := p.provider.NewContext(kind)
		if err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeProbeFailed,
				"failed to create rendering context", err, map[string]any{"context": string(kind)})
		}
		if ctx != nil {
			return ctx, nil
		}
	}
	return nil, nil
}

// IsHardwareAccelerationEnabled reports whether WebGL is available and its
// renderer does not look like a software rasterizer. Without the debug
// renderer extension the renderer cannot be identified and acceleration is
// assumed.
func (p *Probe) IsHardwareAccelerationEnabled() bool {
	ctx, err := p.webglContext()
	if err != nil {
		p.log.Debug("rendering context unavailable", "error", err)
		return false
	}
	if ctx == nil {
		return false
	}
	defer ctx.Release()
	return p.accelerated(ctx)
}

// accelerated applies the software renderer denylist to an open context.
func (p *Probe) accelerated(ctx platform.GLContext) bool {
	if !ctx.HasExtension(platform.ExtDebugRendererInfo) {
		return true
	}

	renderer, err := ctx.StringParameter(platform.ParamUnmaskedRenderer)
	if err != nil {
		p.log.Debug("unmasked renderer unreadable", "error", err)
		return true
	}
	return !isSoftwareRenderer(renderer)
}

func isSoftwareRenderer(renderer string) bool {
	r := strings.ToLower(renderer)
	for _, s := range SoftwareRenderers {
		if strings.Contains(r, s) {
			return true
		}
	}
	return false
}

func newAccelerationInfo() AccelerationInfo {
	return AccelerationInfo{
		Renderer:   UnknownValue,
		Vendor:     UnknownValue,
		Extensions: []string{},
	}
}

// GetAccelerationInfo describes rendering support. It never fails: a probe
// that raises is logged and the fields gathered so far are returned.
func (p *Probe) GetAccelerationInfo() AccelerationInfo {
	return p.ProbeAcceleration().Info
}

// ProbeAcceleration is GetAccelerationInfo with the probe outcome, so
// callers can tell a platform without WebGL from a probe that failed.
func (p *Probe) ProbeAcceleration() (r AccelerationReport) {
	r.Info = newAccelerationInfo()
	r.Outcome = OutcomeOK

	defer func() {
		if rec := recover(); rec != nil {
			r.Outcome = OutcomeFailed
			r.Err = errors.NewWithContext(errors.ErrCodeProbeFailed,
				"acceleration probe panicked", map[string]any{"panic": fmt.Sprint(rec)})
		}
		switch r.Outcome {
		case OutcomeFailed:
			p.log.Warn("acceleration probe failed, returning partial info", "error", r.Err)
		case OutcomeUnsupported:
			p.log.Debug("webgl not supported", "error", r.Err)
		}
		recordOutcome(capabilityAcceleration, r.Outcome)
	}()

	if err := p.fillWebGL(&r.Info); err != nil {
		r.Outcome = OutcomeFailed
		r.Err = err
		return r
	}

	ctx2, err := p.provider.NewContext(platform.ContextWebGL2)
	if err != nil {
		r.Outcome = OutcomeFailed
		r.Err = errors.WrapWithContext(errors.ErrCodeProbeFailed,
			"failed to create rendering context", err, map[string]any{"context": string(platform.ContextWebGL2)})
		return r
	}
	if ctx2 != nil {
		r.Info.WebGL2Supported = true
		ctx2.Release()
	}

	if !r.Info.WebGLSupported {
		r.Outcome = OutcomeUnsupported
		r.Err = errors.New(errors.ErrCodeUnsupported, "webgl rendering context unavailable")
	}
	return r
}

// fillWebGL populates info field by field so a failure keeps what was read.
func (p *Probe) fillWebGL(info *AccelerationInfo) error {
	ctx, err := p.webglContext()
	if err != nil {
		return err
	}
	if ctx == nil {
		return nil
	}
	defer ctx.Release()
	info.WebGLSupported = true

	rendererParam, vendorParam := platform.ParamRenderer, platform.ParamVendor
	if ctx.HasExtension(platform.ExtDebugRendererInfo) {
		rendererParam, vendorParam = platform.ParamUnmaskedRenderer, platform.ParamUnmaskedVendor
	}

	renderer, err := ctx.StringParameter(rendererParam)
	if err != nil {
		return wrapParam(err, rendererParam)
	}
	if renderer != "" {
		info.Renderer = renderer
	}

	vendor, err := ctx.StringParameter(vendorParam)
	if err != nil {
		return wrapParam(err, vendorParam)
	}
	if vendor != "" {
		info.Vendor = vendor
	}

	if info.MaxTextureSize, err = ctx.IntParameter(platform.ParamMaxTextureSize); err != nil {
		return wrapParam(err, platform.ParamMaxTextureSize)
	}

	if info.Antialiasing, err = ctx.Antialias(); err != nil {
		return errors.Wrap(errors.ErrCodeProbeFailed, "failed to read context attributes", err)
	}

	exts, err := ctx.SupportedExtensions()
	if err != nil {
		return errors.Wrap(errors.ErrCodeProbeFailed, "failed to list extensions", err)
	}
	if exts != nil {
		info.Extensions = exts
	}

	info.HardwareAccelerated = p.accelerated(ctx)
	return nil
}

func wrapParam(err error, param platform.Parameter) error {
	return errors.WrapWithContext(errors.ErrCodeProbeFailed,
		"failed to read rendering parameter", err, map[string]any{"parameter": string(param)})
}
