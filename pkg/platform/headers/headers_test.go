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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/envprobe/pkg/platform"
)

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/probe", nil)
	r.Header.Set(HeaderUserAgent, "Mozilla/5.0 Chrome/120.0.0.0 Safari/537.36")
	r.Header.Set(HeaderPlatform, `"Windows"`)
	r.Header.Set(HeaderViewportWidth, "1536")
	r.Header.Set(HeaderViewportHeight, "864")
	r.Header.Set(HeaderLegacyDPR, "1.25")
	r.Header.Set(HeaderLegacyDeviceMem, "8")
	r.Header.Set(HeaderECT, "3G")
	r.Header.Set(HeaderDownlink, "1.45")
	r.Header.Set(HeaderDNT, "1")
	r.Header.Set(HeaderAcceptLanguage, "de;q=0.7, en-US, fr;q=0.9")
	r.AddCookie(&http.Cookie{Name: "session", Value: "x"})

	p := FromRequest(r)

	assert.Equal(t, "Mozilla/5.0 Chrome/120.0.0.0 Safari/537.36", p.UserAgent())
	assert.Equal(t, "Windows", p.Platform())
	w, h := p.Viewport()
	assert.Equal(t, 1536, w)
	assert.Equal(t, 864, h)
	assert.InDelta(t, 1.25, p.Screen().PixelRatio, 0.001)
	assert.InDelta(t, 8.0, p.DeviceMemory(), 0.001)
	assert.Equal(t, "1", p.DoNotTrack())
	assert.True(t, p.CookiesEnabled())
	assert.True(t, p.Online())
	assert.Equal(t, []string{"en-US", "fr", "de"}, p.Languages())

	c, ok := p.Connection()
	require.True(t, ok)
	assert.Equal(t, "3g", c.EffectiveType)
	require.NotNil(t, c.Downlink)
	assert.InDelta(t, 1.45, *c.Downlink, 0.001)
	assert.False(t, c.SaveData)
}

func TestFromRequestBare(t *testing.T) {
	p := FromRequest(httptest.NewRequest(http.MethodGet, "/", nil))

	_, ok := p.Connection()
	assert.False(t, ok)
	assert.False(t, p.CookiesEnabled())
	assert.Equal(t, []string{}, p.Languages())
	assert.Zero(t, p.HardwareConcurrency())

	ctx, err := p.NewContext(platform.ContextWebGL)
	assert.Nil(t, ctx)
	assert.NoError(t, err)

	for _, v := range platform.FullscreenVendors {
		assert.False(t, p.FullscreenElement(v))
		assert.False(t, p.CanRequestFullscreen(v))
	}
}

func TestSaveData(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(HeaderSaveData, "On")

	c, ok := FromRequest(r).Connection()
	require.True(t, ok)
	assert.True(t, c.SaveData)
	assert.Nil(t, c.Downlink)
}

func TestMalformedHints(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(HeaderViewportWidth, "wide")
	r.Header.Set(HeaderDPR, "-2")
	r.Header.Set(HeaderDownlink, "fast")

	p := FromRequest(r)
	w, _ := p.Viewport()
	assert.Zero(t, w)
	assert.Zero(t, p.Screen().PixelRatio)
	c, ok := p.Connection()
	require.True(t, ok)
	assert.Nil(t, c.Downlink)
}

func TestParseLanguages(t *testing.T) {
	assert.Equal(t, []string{}, ParseLanguages(""))
	assert.Equal(t, []string{"en-GB", "en"}, ParseLanguages("en-GB,en;q=0.8"))
	assert.Equal(t, []string{}, ParseLanguages("en;q=nope"))
}

func TestAcceptCH(t *testing.T) {
	assert.Contains(t, AcceptCH, HeaderViewportWidth)
	assert.Contains(t, AcceptCH, HeaderECT)
}
