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

package headers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/NVIDIA/envprobe/pkg/platform"
)

// Request header names consulted by FromRequest.
const (
	HeaderUserAgent         = "User-Agent"
	HeaderPlatform          = "Sec-CH-UA-Platform"
	HeaderViewportWidth     = "Sec-CH-Viewport-Width"
	HeaderViewportHeight    = "Sec-CH-Viewport-Height"
	HeaderDPR               = "Sec-CH-DPR"
	HeaderLegacyDPR         = "DPR"
	HeaderDeviceMemory      = "Sec-CH-Device-Memory"
	HeaderLegacyDeviceMem   = "Device-Memory"
	HeaderSaveData          = "Save-Data"
	HeaderECT               = "ECT"
	HeaderDownlink          = "Downlink"
	HeaderDNT               = "DNT"
	HeaderAcceptLanguage    = "Accept-Language"
	HeaderAcceptClientHints = "Accept-CH"
)

// AcceptCH is the Accept-CH response value that asks browsers for every
// hint FromRequest understands.
var AcceptCH = strings.Join([]string{
	HeaderPlatform,
	HeaderViewportWidth,
	HeaderViewportHeight,
	HeaderDPR,
	HeaderDeviceMemory,
	HeaderECT,
	HeaderDownlink,
	HeaderSaveData,
}, ", ")

// Provider answers probe queries from HTTP request headers. Capabilities a
// request cannot carry (rendering contexts, fullscreen, touch) are reported
// as absent.
type Provider struct {
	userAgent    string
	platform     string
	viewportW    int
	viewportH    int
	pixelRatio   float64
	deviceMemory float64
	connection   *platform.Connection
	doNotTrack   string
	cookies      bool
	languages    []string
}

var _ platform.Provider = (*Provider)(nil)

// FromRequest reads client identity and hints from r.
func FromRequest(r *http.Request) *Provider {
	h := r.Header
	p := &Provider{
		userAgent:  h.Get(HeaderUserAgent),
		platform:   unquote(h.Get(HeaderPlatform)),
		viewportW:  parseInt(h.Get(HeaderViewportWidth)),
		viewportH:  parseInt(h.Get(HeaderViewportHeight)),
		pixelRatio: parseFloat(firstOf(h, HeaderDPR, HeaderLegacyDPR)),
		doNotTrack: h.Get(HeaderDNT),
		cookies:    len(r.Cookies()) > 0,
		languages:  ParseLanguages(h.Get(HeaderAcceptLanguage)),
	}
	p.deviceMemory = parseFloat(firstOf(h, HeaderDeviceMemory, HeaderLegacyDeviceMem))
	p.connection = connectionFrom(h)
	return p
}

func connectionFrom(h http.Header) *platform.Connection {
	saveData, ect, downlink := h.Get(HeaderSaveData), h.Get(HeaderECT), h.Get(HeaderDownlink)
	if saveData == "" && ect == "" && downlink == "" {
		return nil
	}
	c := &platform.Connection{
		SaveData:      strings.EqualFold(strings.TrimSpace(saveData), "on"),
		EffectiveType: strings.ToLower(strings.TrimSpace(ect)),
	}
	if downlink != "" {
		if v, err := strconv.ParseFloat(strings.TrimSpace(downlink), 64); err == nil && v >= 0 {
			c.Downlink = &v
		}
	}
	return c
}

// ParseLanguages returns the Accept-Language tags ordered by preference.
// Malformed headers yield no languages.
func ParseLanguages(header string) []string {
	if strings.TrimSpace(header) == "" {
		return []string{}
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		slog.Debug("malformed accept-language header", "header", header, "error", err)
		return []string{}
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.String())
	}
	return out
}

func firstOf(h http.Header, names ...string) string {
	for _, n := range names {
		if v := h.Get(n); v != "" {
			return v
		}
	}
	return ""
}

func unquote(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}

func parseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// UserAgent implements platform.Identity.
func (p *Provider) UserAgent() string { return p.userAgent }

// FullscreenElement implements platform.Document.
func (p *Provider) FullscreenElement(platform.Vendor) bool { return false }

// CanRequestFullscreen implements platform.Document.
func (p *Provider) CanRequestFullscreen(platform.Vendor) bool { return false }

// RequestFullscreen implements platform.Document.
func (p *Provider) RequestFullscreen(platform.Vendor) {}

// CanExitFullscreen implements platform.Document.
func (p *Provider) CanExitFullscreen(platform.Vendor) bool { return false }

// ExitFullscreen implements platform.Document.
func (p *Provider) ExitFullscreen(platform.Vendor) {}

// NewContext implements platform.Graphics. No context is obtainable from headers.
func (p *Provider) NewContext(platform.ContextKind) (platform.GLContext, error) {
	return nil, nil
}

// Screen implements platform.Display. Only the pixel ratio is hinted.
func (p *Provider) Screen() platform.Screen {
	return platform.Screen{PixelRatio: p.pixelRatio}
}

// Viewport implements platform.Display.
func (p *Provider) Viewport() (int, int) { return p.viewportW, p.viewportH }

// TouchEventSupported implements platform.Touch.
func (p *Provider) TouchEventSupported() bool { return false }

// MaxTouchPoints implements platform.Touch.
func (p *Provider) MaxTouchPoints() int { return 0 }

// MSMaxTouchPoints implements platform.Touch.
func (p *Provider) MSMaxTouchPoints() int { return 0 }

// Connection implements platform.Network.
func (p *Provider) Connection() (platform.Connection, bool) {
	if p.connection == nil {
		return platform.Connection{}, false
	}
	return *p.connection, true
}

// HardwareConcurrency implements platform.Navigator. Not hinted.
func (p *Provider) HardwareConcurrency() int { return 0 }

// DeviceMemory implements platform.Navigator.
func (p *Provider) DeviceMemory() float64 { return p.deviceMemory }

// Platform implements platform.Navigator.
func (p *Provider) Platform() string { return p.platform }

// Languages implements platform.Navigator.
func (p *Provider) Languages() []string { return append([]string{}, p.languages...) }

// DoNotTrack implements platform.Navigator.
func (p *Provider) DoNotTrack() string { return p.doNotTrack }

// CookiesEnabled implements platform.Navigator. A request without cookies
// does not prove they are disabled, so only presence is reported.
func (p *Provider) CookiesEnabled() bool { return p.cookies }

// Online implements platform.Navigator. A client that sent a request is online.
func (p *Provider) Online() bool { return true }
