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

package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/envprobe/pkg/api"
	"github.com/NVIDIA/envprobe/pkg/measurement"
	"github.com/NVIDIA/envprobe/pkg/probe"
	"github.com/NVIDIA/envprobe/pkg/serializer"
	"github.com/NVIDIA/envprobe/pkg/snapshotter"
	"github.com/NVIDIA/envprobe/pkg/validator"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{"valid yaml format", "yaml", serializer.FormatYAML, false},
		{"valid json format", "json", serializer.FormatJSON, false},
		{"valid table format", "table", serializer.FormatTable, false},
		{"invalid format xml", "xml", "", true},
		{"empty format", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	return newRootCmd().Run(context.Background(), append([]string{name, "--log-level", "error"}, args...))
}

func TestRootCommands(t *testing.T) {
	root := newRootCmd()
	got := make([]string, 0, len(root.Commands))
	for _, c := range root.Commands {
		got = append(got, c.Name)
	}
	assert.ElementsMatch(t,
		[]string{"snapshot", "info", "issues", "check", "validate", "profiles", "serve"}, got)
}

func TestLoadProvider(t *testing.T) {
	ctx := context.Background()

	provider, name, err := loadProvider(ctx, "builtin:edge-desktop", false)
	require.NoError(t, err)
	assert.Equal(t, "edge-desktop", name)
	assert.Equal(t, 12, provider.HardwareConcurrency())

	_, _, err = loadProvider(ctx, "builtin:netscape", false)
	assert.Error(t, err)
}

func TestLoadProvider_HostFacts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping host fact collection in short mode")
	}

	provider, _, err := loadProvider(context.Background(), "builtin:safari-iphone", true)
	require.NoError(t, err)
	assert.Positive(t, provider.HardwareConcurrency())
	assert.Contains(t, provider.UserAgent(), "iPhone")
}

func TestSnapshotCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "snapshot.yaml")

	require.NoError(t, run(t, "snapshot", "--profile", "builtin:chrome-desktop", "--output", out))

	snap, err := snapshotter.Load(out)
	require.NoError(t, err)
	assert.Len(t, snap.Measurements, len(measurement.Types))
	assert.True(t, snap.MeetsMinimumRequirements)
	assert.Equal(t, "chrome-desktop", snap.Metadata[snapshotter.MetaProfile])
}

func TestInfoCommand_MultipleProfiles(t *testing.T) {
	out := filepath.Join(t.TempDir(), "info.json")

	require.NoError(t, run(t, "info",
		"-p", "builtin:ie11-legacy",
		"-p", "builtin:safari-iphone",
		"-t", "json", "-o", out))

	reports, err := serializer.FromFile[[]api.Report](out)
	require.NoError(t, err)
	require.Len(t, *reports, 2)
	assert.Equal(t, probe.BrowserInternetExplorer, (*reports)[0].System.Browser.Name)
	assert.Equal(t, probe.BrowserSafari, (*reports)[1].System.Browser.Name)
}

func TestIssuesCommand(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, run(t, "issues", "-p", "builtin:firefox-software", "-o", filepath.Join(dir, "a.yaml")))

	err := run(t, "issues", "-p", "builtin:firefox-software", "--fail-on-error", "-o", filepath.Join(dir, "b.yaml"))
	assert.Error(t, err)

	got, err := serializer.FromFile[IssuesReport](filepath.Join(dir, "b.yaml"))
	require.NoError(t, err)
	assert.True(t, probe.HasErrors(got.Issues))
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, run(t, "check", "-p", "builtin:chrome-desktop", "-o", filepath.Join(dir, "ok.yaml")))
	assert.Error(t, run(t, "check", "-p", "builtin:ie11-legacy", "-o", filepath.Join(dir, "fail.yaml")))

	res, err := serializer.FromFile[CheckResult](filepath.Join(dir, "fail.yaml"))
	require.NoError(t, err)
	assert.False(t, res.MeetsMinimumRequirements)
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()

	constraints := filepath.Join(dir, "constraints.yaml")
	require.NoError(t, os.WriteFile(constraints, []byte(`name: browser-floor
constraints:
  - name: Browser.identity.version
    value: ">= 100"
  - name: Platform.navigator.cpu-cores
    value: ">= 8"
`), 0o600))

	out := filepath.Join(dir, "result.yaml")
	require.NoError(t, run(t, "validate", "-c", constraints, "-p", "builtin:chrome-desktop", "-o", out))

	res, err := serializer.FromFile[validator.ValidationResult](out)
	require.NoError(t, err)
	assert.Equal(t, "browser-floor", res.ConstraintSet)
	assert.Equal(t, validator.ValidationStatusPass, res.Summary.Status)

	err = run(t, "validate", "-p", "builtin:firefox-software", "--fail-on-error",
		"-o", filepath.Join(dir, "default.yaml"))
	assert.Error(t, err)
}

func TestServerConfig(t *testing.T) {
	cmd := serveCmd()
	cmd.Action = func(_ context.Context, c *cli.Command) error {
		cfg := serverConfig(c)
		assert.Equal(t, 9191, cfg.Port)
		assert.Equal(t, 7, cfg.MaxBulkRequests)
		assert.EqualValues(t, 5, cfg.RateLimit)
		assert.Equal(t, 10, cfg.RateLimitBurst)
		return nil
	}
	require.NoError(t, cmd.Run(context.Background(),
		[]string{"serve", "--port", "9191", "--max-bulk", "7", "--rate-limit", "5"}))
}
