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

package validator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/envprobe/pkg/header"
	"github.com/NVIDIA/envprobe/pkg/platform/profile"
	"github.com/NVIDIA/envprobe/pkg/snapshotter"
)

func capture(t *testing.T, name string) *snapshotter.Snapshot {
	t.Helper()
	p, err := profile.Builtin(name)
	require.NoError(t, err)
	s := &snapshotter.EnvSnapshotter{Provider: profile.NewProvider(*p), Source: name}
	snap, err := s.Capture(context.Background())
	require.NoError(t, err)
	return snap
}

func TestValidator_Validate(t *testing.T) {
	chrome := capture(t, "chrome-desktop")

	tests := []struct {
		name        string
		constraints []Constraint
		wantStatus  ValidationStatus
		wantPassed  int
		wantFailed  int
		wantSkipped int
	}{
		{
			name: "all constraints pass",
			constraints: []Constraint{
				{Name: "Browser.identity.version", Value: ">= 120"},
				{Name: "Browser.identity.name", Value: "Chrome"},
				{Name: "Acceleration.webgl.max-texture-size", Value: ">= 4096"},
				{Name: "Display.screen.pixel-ratio", Value: ">= 1"},
			},
			wantStatus: ValidationStatusPass,
			wantPassed: 4,
		},
		{
			name: "one failure",
			constraints: []Constraint{
				{Name: "Browser.identity.version", Value: ">= 130"},
				{Name: "Platform.navigator.cpu-cores", Value: ">= 2"},
			},
			wantStatus: ValidationStatusFail,
			wantPassed: 1,
			wantFailed: 1,
		},
		{
			name: "skipped when missing",
			constraints: []Constraint{
				{Name: "Browser.identity.build", Value: "1"},
				{Name: "Device.input.touch", Value: "false"},
			},
			wantStatus:  ValidationStatusPartial,
			wantPassed:  1,
			wantSkipped: 1,
		},
		{
			name: "invalid path and expression skip",
			constraints: []Constraint{
				{Name: "GPU.smi.model", Value: "H100"},
				{Name: "Device.input.touch", Value: "   "},
			},
			wantStatus:  ValidationStatusPartial,
			wantSkipped: 2,
		},
		{
			name: "evaluation error fails",
			constraints: []Constraint{
				{Name: "Device.input.mobile", Value: ">= 1"},
			},
			wantStatus: ValidationStatusFail,
			wantFailed: 1,
		},
	}

	v := New(WithVersion("1.2.3"))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := &ConstraintSet{Name: tt.name, Constraints: tt.constraints}
			result, err := v.Validate(context.Background(), set, chrome)
			require.NoError(t, err)

			assert.Equal(t, header.KindValidationResult, result.Kind)
			assert.Equal(t, "1.2.3", result.Metadata[header.MetaVersion])
			assert.Equal(t, "chrome-desktop", result.SnapshotSource)
			assert.Equal(t, tt.wantStatus, result.Summary.Status)
			assert.Equal(t, tt.wantPassed, result.Summary.Passed)
			assert.Equal(t, tt.wantFailed, result.Summary.Failed)
			assert.Equal(t, tt.wantSkipped, result.Summary.Skipped)
			assert.Equal(t, len(tt.constraints), result.Summary.Total)
			assert.Len(t, result.Results, len(tt.constraints))
		})
	}
}

func TestValidator_NilInputs(t *testing.T) {
	v := New()
	_, err := v.Validate(context.Background(), nil, &snapshotter.Snapshot{})
	assert.Error(t, err)
	_, err = v.Validate(context.Background(), DefaultConstraints(), nil)
	assert.Error(t, err)
}

func TestValidator_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Validate(ctx, DefaultConstraints(), capture(t, "chrome-desktop"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultConstraints(t *testing.T) {
	tests := []struct {
		profile string
		want    ValidationStatus
	}{
		{"chrome-desktop", ValidationStatusPass},
		{"edge-desktop", ValidationStatusPass},
		{"firefox-software", ValidationStatusFail},
		{"safari-iphone", ValidationStatusFail},
	}
	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			result, err := New().Validate(context.Background(), DefaultConstraints(), capture(t, tt.profile))
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Summary.Status, "%+v", result.Results)
		})
	}
}

func TestLoadConstraints(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		set, err := LoadConstraints("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConstraintSetName, set.Name)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "high.yaml")
		content := "name: high\nconstraints:\n  - name: Acceleration.webgl.webgl2-supported\n    value: \"true\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		set, err := LoadConstraints(path)
		require.NoError(t, err)
		assert.Equal(t, "high", set.Name)
		require.Len(t, set.Constraints, 1)
		assert.Equal(t, "true", set.Constraints[0].Value)
	})

	t.Run("empty set rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"name":"none","constraints":[]}`), 0o600))
		_, err := LoadConstraints(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConstraints(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
