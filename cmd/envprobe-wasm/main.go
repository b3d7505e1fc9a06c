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

// Command envprobe-wasm exposes the probe to JavaScript as globalThis.envprobe.
// Boolean queries return booleans; structured results are JSON strings.
//
//	const go = new Go();
//	const { instance } = await WebAssembly.instantiateStreaming(fetch("envprobe.wasm"), go.importObject);
//	go.run(instance);
//	const info = JSON.parse(envprobe.getSystemInfo());
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"syscall/js"

	"github.com/NVIDIA/envprobe/pkg/api"
	"github.com/NVIDIA/envprobe/pkg/logging"
	"github.com/NVIDIA/envprobe/pkg/platform/browser"
	"github.com/NVIDIA/envprobe/pkg/platform/profile"
	"github.com/NVIDIA/envprobe/pkg/probe"
	"github.com/NVIDIA/envprobe/pkg/snapshotter"
)

const name = "envprobe-wasm"

var version = "dev"

func main() {
	logging.SetDefaultStructuredLogger(name, version)

	provider := browser.New()
	p := probe.New(provider)

	exports := js.Global().Get("Object").New()

	boolFunc := func(fn func() bool) js.Func {
		return js.FuncOf(func(js.Value, []js.Value) any { return fn() })
	}
	jsonFunc := func(fn func() (any, error)) js.Func {
		return js.FuncOf(func(js.Value, []js.Value) any {
			v, err := fn()
			if err != nil {
				return js.Global().Get("Error").New(err.Error())
			}
			b, err := json.Marshal(v)
			if err != nil {
				return js.Global().Get("Error").New(err.Error())
			}
			return string(b)
		})
	}
	value := func(fn func() any) js.Func {
		return jsonFunc(func() (any, error) { return fn(), nil })
	}

	exports.Set("detectBrowser", value(func() any { return p.DetectBrowser() }))
	exports.Set("isFullscreen", boolFunc(p.IsFullscreen))
	exports.Set("toggleFullscreen", js.FuncOf(func(js.Value, []js.Value) any {
		p.ToggleFullscreen()
		return nil
	}))
	exports.Set("isHardwareAccelerationEnabled", boolFunc(p.IsHardwareAccelerationEnabled))
	exports.Set("getAccelerationInfo", value(func() any { return p.GetAccelerationInfo() }))
	exports.Set("isTouchSupported", boolFunc(p.IsTouchSupported))
	exports.Set("getDisplayInfo", value(func() any { return p.GetDisplayInfo() }))
	exports.Set("isMobileDevice", boolFunc(p.IsMobileDevice))
	exports.Set("isSlowConnection", boolFunc(p.IsSlowConnection))
	exports.Set("getSystemInfo", value(func() any { return p.GetSystemInfo() }))
	exports.Set("detectEnvironmentIssues", value(func() any { return p.DetectEnvironmentIssues() }))
	exports.Set("meetsMinimumRequirements", boolFunc(p.MeetsMinimumRequirements))

	// Capability report for POST /v1/probe.
	exports.Set("profile", value(func() any { return profile.Capture(provider) }))
	exports.Set("report", value(func() any { return api.NewReport(provider, "browser", version, slog.Default()) }))
	exports.Set("snapshot", jsonFunc(func() (any, error) {
		es := snapshotter.EnvSnapshotter{
			Version:  version,
			Provider: provider,
			Source:   "browser",
		}
		return es.Capture(context.Background())
	}))

	js.Global().Set("envprobe", exports)
	slog.Info("envprobe ready", "version", version)

	select {}
}
