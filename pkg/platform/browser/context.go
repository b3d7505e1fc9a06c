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

//go:build js && wasm

package browser

import (
	"log/slog"
	"syscall/js"

	"github.com/NVIDIA/envprobe/pkg/errors"
	"github.com/NVIDIA/envprobe/pkg/platform"
)

type glContext struct {
	gl     js.Value
	canvas js.Value
}

func (c *glContext) extension(name string) (js.Value, error) {
	return call(func() js.Value { return c.gl.Call("getExtension", name) })
}

func (c *glContext) HasExtension(name string) bool {
	ext, err := c.extension(name)
	return err == nil && present(ext)
}

// enum resolves a parameter name to its GLenum. Unmasked parameters live
// on the debug renderer extension.
func (c *glContext) enum(param platform.Parameter) (js.Value, error) {
	owner := c.gl
	switch param {
	case platform.ParamUnmaskedRenderer, platform.ParamUnmaskedVendor:
		ext, err := c.extension(platform.ExtDebugRendererInfo)
		if err != nil {
			return js.Undefined(), errors.Wrap(errors.ErrCodeProbeFailed, "getExtension raised", err)
		}
		if !present(ext) {
			return js.Undefined(), errors.NewWithContext(errors.ErrCodeUnsupported,
				"debug renderer extension unavailable", map[string]any{"param": string(param)})
		}
		owner = ext
	}
	e := owner.Get(string(param))
	if e.Type() != js.TypeNumber {
		return js.Undefined(), errors.NewWithContext(errors.ErrCodeUnsupported,
			"unknown context parameter", map[string]any{"param": string(param)})
	}
	return e, nil
}

func (c *glContext) parameter(param platform.Parameter) (js.Value, error) {
	e, err := c.enum(param)
	if err != nil {
		return js.Undefined(), err
	}
	v, err := call(func() js.Value { return c.gl.Call("getParameter", e) })
	if err != nil {
		return js.Undefined(), errors.WrapWithContext(errors.ErrCodeProbeFailed, "getParameter raised", err,
			map[string]any{"param": string(param)})
	}
	return v, nil
}

func (c *glContext) StringParameter(param platform.Parameter) (string, error) {
	v, err := c.parameter(param)
	if err != nil {
		return "", err
	}
	return str(v), nil
}

func (c *glContext) IntParameter(param platform.Parameter) (int, error) {
	v, err := c.parameter(param)
	if err != nil {
		return 0, err
	}
	return int(num(v)), nil
}

func (c *glContext) Antialias() (bool, error) {
	attrs, err := call(func() js.Value { return c.gl.Call("getContextAttributes") })
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeProbeFailed, "getContextAttributes raised", err)
	}
	if !present(attrs) {
		return false, errors.New(errors.ErrCodeProbeFailed, "context attributes unavailable, context lost")
	}
	return boolean(attrs.Get("antialias")), nil
}

func (c *glContext) SupportedExtensions() ([]string, error) {
	list, err := call(func() js.Value { return c.gl.Call("getSupportedExtensions") })
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeProbeFailed, "getSupportedExtensions raised", err)
	}
	if !present(list) {
		return nil, errors.New(errors.ErrCodeProbeFailed, "extension list unavailable, context lost")
	}
	out := make([]string, 0, list.Length())
	for i := 0; i < list.Length(); i++ {
		out = append(out, str(list.Index(i)))
	}
	return out, nil
}

// Release loses the context so the browser can reclaim it before garbage
// collection, then shrinks the canvas.
func (c *glContext) Release() {
	if ext, err := c.extension(extLoseContext); err == nil && present(ext) {
		if _, err := call(func() js.Value { return ext.Call("loseContext") }); err != nil {
			slog.Debug("loseContext failed", "error", err)
		}
	}
	c.canvas.Set("width", 0)
	c.canvas.Set("height", 0)
}
