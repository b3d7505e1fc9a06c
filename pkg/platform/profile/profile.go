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
	"encoding/json"

	"github.com/NVIDIA/envprobe/pkg/platform"
)

// Profile is a declarative description of a client environment. Browsers
// post profiles as capability reports; tests and the CLI load them from
// YAML or JSON files.
type Profile struct {
	Name       string               `json:"name,omitempty" yaml:"name,omitempty"`
	UserAgent  string               `json:"userAgent" yaml:"userAgent"`
	Fullscreen Fullscreen           `json:"fullscreen" yaml:"fullscreen"`
	Graphics   Graphics             `json:"graphics" yaml:"graphics"`
	Screen     platform.Screen      `json:"screen" yaml:"screen"`
	Viewport   Viewport             `json:"viewport" yaml:"viewport"`
	Touch      Touch                `json:"touch" yaml:"touch"`
	Connection *platform.Connection `json:"connection,omitempty" yaml:"connection,omitempty"`
	Navigator  Navigator            `json:"navigator" yaml:"navigator"`
}

// Fullscreen describes the fullscreen API surface.
type Fullscreen struct {
	// Active reports whether an element is currently fullscreen.
	Active bool `json:"active" yaml:"active"`
	// Vendor is the accessor that reports the fullscreen element.
	Vendor platform.Vendor `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	// Request lists the vendors whose request method exists. Nil means the
	// standard method only; an empty list means none.
	Request []platform.Vendor `json:"request" yaml:"request"`
	// Exit lists the vendors whose exit method exists, with the same nil
	// semantics as Request.
	Exit []platform.Vendor `json:"exit" yaml:"exit"`
}

// fullscreenWire keeps the nil and empty vendor lists apart on the wire: a
// nil list is omitted, an empty one is written as [].
type fullscreenWire struct {
	Active  bool               `json:"active" yaml:"active"`
	Vendor  platform.Vendor    `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	Request *[]platform.Vendor `json:"request,omitempty" yaml:"request,omitempty"`
	Exit    *[]platform.Vendor `json:"exit,omitempty" yaml:"exit,omitempty"`
}

func (f Fullscreen) wire() fullscreenWire {
	w := fullscreenWire{Active: f.Active, Vendor: f.Vendor}
	if f.Request != nil {
		w.Request = &f.Request
	}
	if f.Exit != nil {
		w.Exit = &f.Exit
	}
	return w
}

// MarshalJSON implements json.Marshaler.
func (f Fullscreen) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.wire())
}

// MarshalYAML implements yaml.Marshaler.
func (f Fullscreen) MarshalYAML() (any, error) {
	return f.wire(), nil
}

// Graphics describes the rendering contexts a surface can provide.
type Graphics struct {
	WebGL bool `json:"webgl" yaml:"webgl"`
	// ExperimentalWebGL makes only the prefixed context name obtainable.
	ExperimentalWebGL bool `json:"experimentalWebgl,omitempty" yaml:"experimentalWebgl,omitempty"`
	WebGL2            bool `json:"webgl2" yaml:"webgl2"`

	Renderer         string   `json:"renderer,omitempty" yaml:"renderer,omitempty"`
	Vendor           string   `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	UnmaskedRenderer string   `json:"unmaskedRenderer,omitempty" yaml:"unmaskedRenderer,omitempty"`
	UnmaskedVendor   string   `json:"unmaskedVendor,omitempty" yaml:"unmaskedVendor,omitempty"`
	MaxTextureSize   int      `json:"maxTextureSize,omitempty" yaml:"maxTextureSize,omitempty"`
	Antialias        bool     `json:"antialias,omitempty" yaml:"antialias,omitempty"`
	Extensions       []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`

	// Fail makes the context factory raise with this message.
	Fail string `json:"fail,omitempty" yaml:"fail,omitempty"`
}

// Viewport is the inner window size.
type Viewport struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Touch describes touch input signals.
type Touch struct {
	Events           bool `json:"events,omitempty" yaml:"events,omitempty"`
	MaxTouchPoints   int  `json:"maxTouchPoints,omitempty" yaml:"maxTouchPoints,omitempty"`
	MSMaxTouchPoints int  `json:"msMaxTouchPoints,omitempty" yaml:"msMaxTouchPoints,omitempty"`
}

// Navigator describes scalar host facts.
type Navigator struct {
	HardwareConcurrency int      `json:"hardwareConcurrency,omitempty" yaml:"hardwareConcurrency,omitempty"`
	DeviceMemory        float64  `json:"deviceMemory,omitempty" yaml:"deviceMemory,omitempty"`
	Platform            string   `json:"platform,omitempty" yaml:"platform,omitempty"`
	Languages           []string `json:"languages,omitempty" yaml:"languages,omitempty"`
	DoNotTrack          string   `json:"doNotTrack,omitempty" yaml:"doNotTrack,omitempty"`
	CookiesEnabled      bool     `json:"cookiesEnabled" yaml:"cookiesEnabled"`
	Online              bool     `json:"online" yaml:"online"`
}
