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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/envprobe/pkg/errors"
	"github.com/NVIDIA/envprobe/pkg/platform"
	"github.com/NVIDIA/envprobe/pkg/serializer"
)

func TestBuiltinNames(t *testing.T) {
	names := BuiltinNames()
	assert.Contains(t, names, "chrome-desktop")
	assert.Contains(t, names, "safari-iphone")
	assert.IsNonDecreasing(t, names)
}

func TestBuiltinProfilesLoad(t *testing.T) {
	for _, name := range BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			p, err := Load(BuiltinScheme + name)
			require.NoError(t, err)
			assert.Equal(t, name, p.Name)
			assert.NotEmpty(t, p.UserAgent)
		})
	}
}

func TestBuiltinUnknown(t *testing.T) {
	_, err := Builtin("netscape")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, errors.CodeOf(err))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"userAgent": "UA",
		"viewport": {"width": 640, "height": 480},
		"connection": {"saveData": true}
	}`), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "UA", p.UserAgent)
	assert.Equal(t, 640, p.Viewport.Width)
	require.NotNil(t, p.Connection)
	assert.True(t, p.Connection.SaveData)
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"userAgent":`},
		{"negative viewport", `{"viewport":{"width":-1}}`},
		{"negative downlink", `{"connection":{"downlink":-2}}`},
		{"unknown vendor", `{"fullscreen":{"request":["o"]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(serializer.FormatJSON, strings.NewReader(tt.body))
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
		})
	}
}

func TestProviderFullscreen(t *testing.T) {
	p := NewProvider(Profile{
		Fullscreen: Fullscreen{Request: []platform.Vendor{platform.VendorWebkit}},
	})

	assert.False(t, p.CanRequestFullscreen(platform.VendorStandard))
	assert.True(t, p.CanRequestFullscreen(platform.VendorWebkit))
	assert.False(t, p.CanExitFullscreen(platform.VendorWebkit), "nil exit list means standard only")
	assert.True(t, p.CanExitFullscreen(platform.VendorStandard))

	p.RequestFullscreen(platform.VendorWebkit)
	assert.True(t, p.FullscreenElement(platform.VendorWebkit))
	assert.False(t, p.FullscreenElement(platform.VendorStandard))
	assert.True(t, p.Profile().Fullscreen.Active)

	p.ExitFullscreen(platform.VendorStandard)
	assert.False(t, p.FullscreenElement(platform.VendorWebkit))
}

func TestProviderEmptyVendorListMeansNone(t *testing.T) {
	p := NewProvider(Profile{Fullscreen: Fullscreen{Request: []platform.Vendor{}}})
	for _, v := range platform.FullscreenVendors {
		assert.False(t, p.CanRequestFullscreen(v))
	}
}

func TestProviderGraphics(t *testing.T) {
	p := NewProvider(Profile{Graphics: Graphics{
		ExperimentalWebGL: true,
		Renderer:          "R",
		UnmaskedVendor:    "UV",
		MaxTextureSize:    4096,
		Extensions:        []string{platform.ExtDebugRendererInfo},
	}})

	ctx, err := p.NewContext(platform.ContextWebGL)
	require.NoError(t, err)
	assert.Nil(t, ctx)

	ctx, err = p.NewContext(platform.ContextExperimentalWebGL)
	require.NoError(t, err)
	require.NotNil(t, ctx)
	defer ctx.Release()

	assert.True(t, ctx.HasExtension(platform.ExtDebugRendererInfo))
	r, err := ctx.StringParameter(platform.ParamRenderer)
	require.NoError(t, err)
	assert.Equal(t, "R", r)
	v, err := ctx.StringParameter(platform.ParamUnmaskedVendor)
	require.NoError(t, err)
	assert.Equal(t, "UV", v)
	n, err := ctx.IntParameter(platform.ParamMaxTextureSize)
	require.NoError(t, err)
	assert.Equal(t, 4096, n)
	_, err = ctx.IntParameter(platform.ParamRenderer)
	assert.Error(t, err)
}

func TestProviderGraphicsFail(t *testing.T) {
	p := NewProvider(Profile{Graphics: Graphics{WebGL: true, Fail: "context lost"}})
	ctx, err := p.NewContext(platform.ContextWebGL)
	assert.Nil(t, ctx)
	assert.EqualError(t, err, "context lost")
}

func TestProviderReleaseCount(t *testing.T) {
	p := NewProvider(Profile{Graphics: Graphics{WebGL: true, WebGL2: true}})
	for _, k := range []platform.ContextKind{platform.ContextWebGL, platform.ContextWebGL2} {
		ctx, err := p.NewContext(k)
		require.NoError(t, err)
		ctx.Release()
	}
	assert.Equal(t, 2, p.Released())
}

func TestProviderConnection(t *testing.T) {
	_, ok := NewProvider(Profile{}).Connection()
	assert.False(t, ok)

	c, ok := NewProvider(Profile{Connection: &platform.Connection{Type: "wifi"}}).Connection()
	assert.True(t, ok)
	assert.Equal(t, "wifi", c.Type)
}

func TestProviderLanguagesAreCopied(t *testing.T) {
	p := NewProvider(Profile{Navigator: Navigator{Languages: []string{"en"}}})
	langs := p.Languages()
	langs[0] = "xx"
	assert.Equal(t, []string{"en"}, p.Languages())
}
