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
	"fmt"
	"log/slog"
	"syscall/js"

	"github.com/NVIDIA/envprobe/pkg/errors"
	"github.com/NVIDIA/envprobe/pkg/platform"
)

type vendorNames struct {
	element string
	request string
	exit    string
}

var fullscreenNames = map[platform.Vendor]vendorNames{
	platform.VendorStandard: {"fullscreenElement", "requestFullscreen", "exitFullscreen"},
	platform.VendorWebkit:   {"webkitFullscreenElement", "webkitRequestFullscreen", "webkitExitFullscreen"},
	platform.VendorMoz:      {"mozFullScreenElement", "mozRequestFullScreen", "mozCancelFullScreen"},
	platform.VendorMS:       {"msFullscreenElement", "msRequestFullscreen", "msExitFullscreen"},
}

var connectionNames = []string{"connection", "mozConnection", "webkitConnection"}

const (
	extLoseContext = "WEBGL_lose_context"
	elementCanvas  = "canvas"
)

// Provider reads capabilities from the global window.
type Provider struct {
	window    js.Value
	navigator js.Value
	document  js.Value
}

var _ platform.Provider = (*Provider)(nil)

// New returns a Provider over js.Global().
func New() *Provider {
	g := js.Global()
	return &Provider{
		window:    g,
		navigator: g.Get("navigator"),
		document:  g.Get("document"),
	}
}

// call invokes fn and converts a thrown JavaScript exception into an error.
func call(fn func() js.Value) (v js.Value, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if jsErr, ok := rec.(js.Error); ok {
				err = jsErr
				return
			}
			err = fmt.Errorf("%v", rec)
		}
	}()
	return fn(), nil
}

func present(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}

func isFunc(v js.Value) bool {
	return v.Type() == js.TypeFunction
}

func str(v js.Value) string {
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func num(v js.Value) float64 {
	if v.Type() != js.TypeNumber {
		return 0
	}
	return v.Float()
}

func boolean(v js.Value) bool {
	if v.Type() != js.TypeBoolean {
		return false
	}
	return v.Bool()
}

// UserAgent implements platform.Identity.
func (p *Provider) UserAgent() string { return str(p.navigator.Get("userAgent")) }

// FullscreenElement implements platform.Document.
func (p *Provider) FullscreenElement(v platform.Vendor) bool {
	return present(p.document.Get(fullscreenNames[v].element))
}

func (p *Provider) root() js.Value { return p.document.Get("documentElement") }

// CanRequestFullscreen implements platform.Document.
func (p *Provider) CanRequestFullscreen(v platform.Vendor) bool {
	root := p.root()
	return present(root) && isFunc(root.Get(fullscreenNames[v].request))
}

// RequestFullscreen implements platform.Document.
func (p *Provider) RequestFullscreen(v platform.Vendor) {
	if _, err := call(func() js.Value { return p.root().Call(fullscreenNames[v].request) }); err != nil {
		slog.Debug("fullscreen request failed", "vendor", string(v), "error", err)
	}
}

// CanExitFullscreen implements platform.Document.
func (p *Provider) CanExitFullscreen(v platform.Vendor) bool {
	return isFunc(p.document.Get(fullscreenNames[v].exit))
}

// ExitFullscreen implements platform.Document.
func (p *Provider) ExitFullscreen(v platform.Vendor) {
	if _, err := call(func() js.Value { return p.document.Call(fullscreenNames[v].exit) }); err != nil {
		slog.Debug("fullscreen exit failed", "vendor", string(v), "error", err)
	}
}

// NewContext implements platform.Graphics on a detached canvas.
func (p *Provider) NewContext(kind platform.ContextKind) (platform.GLContext, error) {
	canvas, err := call(func() js.Value { return p.document.Call("createElement", elementCanvas) })
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeProbeFailed, "failed to create canvas", err)
	}
	gl, err := call(func() js.Value { return canvas.Call("getContext", string(kind)) })
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeProbeFailed, "getContext raised", err,
			map[string]any{"context": string(kind)})
	}
	if !present(gl) {
		return nil, nil
	}
	return &glContext{gl: gl, canvas: canvas}, nil
}

// Screen implements platform.Display.
func (p *Provider) Screen() platform.Screen {
	s := p.window.Get("screen")
	if !present(s) {
		return platform.Screen{PixelRatio: num(p.window.Get("devicePixelRatio"))}
	}
	out := platform.Screen{
		Width:       int(num(s.Get("width"))),
		Height:      int(num(s.Get("height"))),
		AvailWidth:  int(num(s.Get("availWidth"))),
		AvailHeight: int(num(s.Get("availHeight"))),
		ColorDepth:  int(num(s.Get("colorDepth"))),
		PixelDepth:  int(num(s.Get("pixelDepth"))),
		PixelRatio:  num(p.window.Get("devicePixelRatio")),
	}
	if o := s.Get("orientation"); present(o) {
		out.Orientation = str(o.Get("type"))
	}
	return out
}

// Viewport implements platform.Display.
func (p *Provider) Viewport() (int, int) {
	return int(num(p.window.Get("innerWidth"))), int(num(p.window.Get("innerHeight")))
}

// TouchEventSupported implements platform.Touch. It mirrors
// `"ontouchstart" in window`.
func (p *Provider) TouchEventSupported() bool {
	return !p.window.Get("ontouchstart").IsUndefined()
}

// MaxTouchPoints implements platform.Touch.
func (p *Provider) MaxTouchPoints() int { return int(num(p.navigator.Get("maxTouchPoints"))) }

// MSMaxTouchPoints implements platform.Touch.
func (p *Provider) MSMaxTouchPoints() int { return int(num(p.navigator.Get("msMaxTouchPoints"))) }

// Connection implements platform.Network.
func (p *Provider) Connection() (platform.Connection, bool) {
	for _, name := range connectionNames {
		c := p.navigator.Get(name)
		if !present(c) {
			continue
		}
		out := platform.Connection{
			SaveData:      boolean(c.Get("saveData")),
			EffectiveType: str(c.Get("effectiveType")),
			Type:          str(c.Get("type")),
		}
		if d := c.Get("downlink"); d.Type() == js.TypeNumber {
			v := d.Float()
			out.Downlink = &v
		}
		return out, true
	}
	return platform.Connection{}, false
}

// HardwareConcurrency implements platform.Navigator.
func (p *Provider) HardwareConcurrency() int {
	return int(num(p.navigator.Get("hardwareConcurrency")))
}

// DeviceMemory implements platform.Navigator.
func (p *Provider) DeviceMemory() float64 { return num(p.navigator.Get("deviceMemory")) }

// Platform implements platform.Navigator.
func (p *Provider) Platform() string { return str(p.navigator.Get("platform")) }

// Languages implements platform.Navigator, falling back to the single
// navigator.language.
func (p *Provider) Languages() []string {
	langs := p.navigator.Get("languages")
	if !present(langs) {
		if l := str(p.navigator.Get("language")); l != "" {
			return []string{l}
		}
		return []string{}
	}
	out := make([]string, 0, langs.Length())
	for i := 0; i < langs.Length(); i++ {
		if s := str(langs.Index(i)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// DoNotTrack implements platform.Navigator.
func (p *Provider) DoNotTrack() string {
	for _, v := range []js.Value{
		p.navigator.Get("doNotTrack"),
		p.window.Get("doNotTrack"),
		p.navigator.Get("msDoNotTrack"),
	} {
		if s := str(v); s != "" {
			return s
		}
	}
	return ""
}

// CookiesEnabled implements platform.Navigator.
func (p *Provider) CookiesEnabled() bool { return boolean(p.navigator.Get("cookieEnabled")) }

// Online implements platform.Navigator.
func (p *Provider) Online() bool { return boolean(p.navigator.Get("onLine")) }
