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

// BrowserInfo identifies the client browser.
type BrowserInfo struct {
	Name          string `json:"name" yaml:"name"`
	Version       string `json:"version" yaml:"version"`
	Icon          string `json:"icon" yaml:"icon"`
	IsRecommended bool   `json:"isRecommended" yaml:"isRecommended"`
}

// AccelerationInfo describes 3D rendering support.
type AccelerationInfo struct {
	WebGLSupported      bool     `json:"webglSupported" yaml:"webglSupported"`
	WebGL2Supported     bool     `json:"webgl2Supported" yaml:"webgl2Supported"`
	HardwareAccelerated bool     `json:"hardwareAccelerated" yaml:"hardwareAccelerated"`
	Renderer            string   `json:"renderer" yaml:"renderer"`
	Vendor              string   `json:"vendor" yaml:"vendor"`
	MaxTextureSize      int      `json:"maxTextureSize" yaml:"maxTextureSize"`
	Antialiasing        bool     `json:"antialiasing" yaml:"antialiasing"`
	Extensions          []string `json:"extensions" yaml:"extensions"`
}

// DisplayInfo is a snapshot of screen geometry.
type DisplayInfo struct {
	Width       int     `json:"width" yaml:"width"`
	Height      int     `json:"height" yaml:"height"`
	AvailWidth  int     `json:"availWidth" yaml:"availWidth"`
	AvailHeight int     `json:"availHeight" yaml:"availHeight"`
	ColorDepth  int     `json:"colorDepth" yaml:"colorDepth"`
	PixelDepth  int     `json:"pixelDepth" yaml:"pixelDepth"`
	PixelRatio  float64 `json:"pixelRatio" yaml:"pixelRatio"`
	Orientation string  `json:"orientation" yaml:"orientation"`
}

// SystemInfo aggregates every probe query.
type SystemInfo struct {
	Browser          BrowserInfo      `json:"browser" yaml:"browser"`
	Display          DisplayInfo      `json:"display" yaml:"display"`
	Acceleration     AccelerationInfo `json:"acceleration" yaml:"acceleration"`
	IsMobile         bool             `json:"isMobile" yaml:"isMobile"`
	IsTouch          bool             `json:"isTouch" yaml:"isTouch"`
	IsSlowConnection bool             `json:"isSlowConnection" yaml:"isSlowConnection"`
	IsFullscreen     bool             `json:"isFullscreen" yaml:"isFullscreen"`
	// CPUCores is 0 when unknown.
	CPUCores int `json:"cpuCores" yaml:"cpuCores"`
	// Memory is in GiB, 0 when unknown.
	Memory         float64  `json:"memory" yaml:"memory"`
	Platform       string   `json:"platform" yaml:"platform"`
	Languages      []string `json:"languages" yaml:"languages"`
	DoNotTrack     string   `json:"doNotTrack" yaml:"doNotTrack"`
	CookiesEnabled bool     `json:"cookiesEnabled" yaml:"cookiesEnabled"`
	Online         bool     `json:"online" yaml:"online"`
}

// Severity grades an Issue.
type Severity string

// Issue severities.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Issue is an advisory about the environment.
type Issue struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
	Code     string   `json:"code" yaml:"code"`
}

// Issue codes, in the order DetectEnvironmentIssues reports them.
const (
	CodeBrowserNotRecommended  = "browser-not-recommended"
	CodeNotFullscreen          = "not-fullscreen"
	CodeNoHardwareAcceleration = "no-hardware-acceleration"
	CodeMobileDevice           = "mobile-device"
	CodeSlowConnection         = "slow-connection"
)

// Outcome classifies a capability probe.
type Outcome string

// Probe outcomes.
const (
	// OutcomeOK means the capability was probed successfully.
	OutcomeOK Outcome = "ok"
	// OutcomeUnsupported means the platform definitively lacks the capability.
	OutcomeUnsupported Outcome = "unsupported"
	// OutcomeFailed means the probe raised and the answer is partial.
	OutcomeFailed Outcome = "failed"
)

// AccelerationReport pairs acceleration info with how it was obtained.
type AccelerationReport struct {
	Info    AccelerationInfo `json:"info" yaml:"info"`
	Outcome Outcome          `json:"outcome" yaml:"outcome"`
	// Err is the cause for unsupported and failed outcomes.
	Err error `json:"-" yaml:"-"`
}
