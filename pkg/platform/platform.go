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

package platform

// Vendor identifies a vendor-prefixed variant of a platform API.
type Vendor string

// Fullscreen API vendors.
const (
	VendorStandard Vendor = ""
	VendorWebkit   Vendor = "webkit"
	VendorMoz      Vendor = "moz"
	VendorMS       Vendor = "ms"
)

// FullscreenVendors is the order in which fullscreen accessors and methods
// are consulted.
var FullscreenVendors = []Vendor{VendorStandard, VendorWebkit, VendorMoz, VendorMS}

// ContextKind names a 3D rendering context.
type ContextKind string

// Rendering context names, as accepted by a canvas.
const (
	ContextWebGL             ContextKind = "webgl"
	ContextExperimentalWebGL ContextKind = "experimental-webgl"
	ContextWebGL2            ContextKind = "webgl2"
)

// Parameter names a queryable rendering context parameter.
type Parameter string

// Rendering context parameters.
const (
	ParamRenderer         Parameter = "RENDERER"
	ParamVendor           Parameter = "VENDOR"
	ParamUnmaskedRenderer Parameter = "UNMASKED_RENDERER_WEBGL"
	ParamUnmaskedVendor   Parameter = "UNMASKED_VENDOR_WEBGL"
	ParamMaxTextureSize   Parameter = "MAX_TEXTURE_SIZE"
)

// ExtDebugRendererInfo exposes the unmasked renderer and vendor strings.
const ExtDebugRendererInfo = "WEBGL_debug_renderer_info"

// Identity exposes the client identifying string.
type Identity interface {
	UserAgent() string
}

// Document exposes the vendor-prefixed fullscreen API.
type Document interface {
	// FullscreenElement reports whether the vendor's current-fullscreen-element
	// accessor is non-null.
	FullscreenElement(v Vendor) bool
	// CanRequestFullscreen reports whether the root element has the vendor's
	// request method.
	CanRequestFullscreen(v Vendor) bool
	// RequestFullscreen invokes the vendor's request method on the root element.
	// The request is not awaited.
	RequestFullscreen(v Vendor)
	// CanExitFullscreen reports whether the document has the vendor's exit method.
	CanExitFullscreen(v Vendor) bool
	// ExitFullscreen invokes the vendor's exit method. The request is not awaited.
	ExitFullscreen(v Vendor)
}

// Graphics creates throwaway rendering surfaces.
type Graphics interface {
	// NewContext creates a fresh offscreen surface and requests a context of
	// the given kind. It returns (nil, nil) when the context is unobtainable and
	// an error when the factory itself fails.
	NewContext(kind ContextKind) (GLContext, error)
}

// GLContext is a 3D rendering context on a throwaway surface.
type GLContext interface {
	// HasExtension reports whether the named extension can be enabled.
	HasExtension(name string) bool
	StringParameter(p Parameter) (string, error)
	IntParameter(p Parameter) (int, error)
	// Antialias reports the antialias flag of the context attributes.
	Antialias() (bool, error)
	// SupportedExtensions lists every extension the context supports.
	SupportedExtensions() ([]string, error)
	// Release discards the context and its surface.
	Release()
}

// Screen is the physical screen geometry.
type Screen struct {
	Width       int     `json:"width" yaml:"width"`
	Height      int     `json:"height" yaml:"height"`
	AvailWidth  int     `json:"availWidth" yaml:"availWidth"`
	AvailHeight int     `json:"availHeight" yaml:"availHeight"`
	ColorDepth  int     `json:"colorDepth" yaml:"colorDepth"`
	PixelDepth  int     `json:"pixelDepth" yaml:"pixelDepth"`
	PixelRatio  float64 `json:"pixelRatio" yaml:"pixelRatio"`
	Orientation string  `json:"orientation,omitempty" yaml:"orientation,omitempty"`
}

// Display exposes screen and viewport geometry.
type Display interface {
	Screen() Screen
	// Viewport returns the inner window size in CSS pixels.
	Viewport() (width, height int)
}

// Touch exposes the touch input signals.
type Touch interface {
	// TouchEventSupported reports the presence of a touch-start event hook.
	TouchEventSupported() bool
	MaxTouchPoints() int
	MSMaxTouchPoints() int
}

// Connection is the network information record.
type Connection struct {
	SaveData      bool   `json:"saveData,omitempty" yaml:"saveData,omitempty"`
	EffectiveType string `json:"effectiveType,omitempty" yaml:"effectiveType,omitempty"`
	Type          string `json:"type,omitempty" yaml:"type,omitempty"`
	// Downlink is the estimated bandwidth in Mbps; nil when not reported.
	Downlink *float64 `json:"downlink,omitempty" yaml:"downlink,omitempty"`
}

// Network exposes network information.
type Network interface {
	// Connection returns the first connection record found under the standard
	// and vendor-prefixed names, and false when none exists.
	Connection() (Connection, bool)
}

// Navigator exposes scalar host facts.
type Navigator interface {
	// HardwareConcurrency returns the logical core count, 0 when unknown.
	HardwareConcurrency() int
	// DeviceMemory returns the approximate memory in GiB, 0 when unknown.
	DeviceMemory() float64
	Platform() string
	Languages() []string
	DoNotTrack() string
	CookiesEnabled() bool
	Online() bool
}

// Provider is the full set of capabilities consulted by a probe.
type Provider interface {
	Identity
	Document
	Graphics
	Display
	Touch
	Network
	Navigator
}
