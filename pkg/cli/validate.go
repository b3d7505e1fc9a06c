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
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/envprobe/pkg/snapshotter"
	"github.com/NVIDIA/envprobe/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate a snapshot against a constraint set",
		Description: `Validate environment measurements against constraints.

Constraints use fully qualified measurement paths:
  {Type}.{Subtype}.{Key}

Examples:
  Browser.identity.version               - browser version
  Acceleration.webgl.max-texture-size    - largest texture edge
  Platform.navigator.cpu-cores           - logical cores
  Network.connection.slow                - slow connection flag

# Supported Operators

  ">= 120"   - Greater than or equal (numeric or version comparison)
  "<= 2.0"   - Less than or equal
  "> 1"      - Greater than
  "< 4"      - Less than
  "== true"  - Equal
  "!= Edge"  - Not equal
  "Chrome"   - Exact match (no operator)

Without --constraints the builtin minimum-requirements set is used. Without
--snapshot a snapshot of --profile is captured first.

# Examples

  envprobe validate --profile builtin:firefox-software
  envprobe validate -c constraints.yaml -s snapshot.yaml --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "constraints",
				Aliases: []string{"c"},
				Usage: `Path/URI to a constraint set file.
	Supports: file paths and HTTP/HTTPS URLs.`,
				Sources: cli.EnvVars("ENVPROBE_CONSTRAINTS"),
			},
			&cli.StringFlag{
				Name:    "snapshot",
				Aliases: []string{"s"},
				Usage: `Path/URI to a snapshot file.
	Supports: file paths and HTTP/HTTPS URLs.`,
			},
			profileFlag(),
			hostFactsFlag(),
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any constraint fails",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			constraintsPath := cmd.String("constraints")
			set, err := validator.LoadConstraints(constraintsPath)
			if err != nil {
				return fmt.Errorf("failed to load constraints from %q: %w", constraintsPath, err)
			}

			snap, err := resolveSnapshot(ctx, cmd)
			if err != nil {
				return err
			}

			slog.Info("validating constraints",
				"set", set.Name,
				"constraints", len(set.Constraints))

			result, err := validator.New(validator.WithVersion(version)).Validate(ctx, set, snap)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			if path := cmd.String("snapshot"); path != "" {
				result.SnapshotSource = path
			}

			if err := writeOutput(ctx, cmd, result); err != nil {
				return err
			}

			slog.Info("validation completed",
				"status", result.Summary.Status,
				"passed", result.Summary.Passed,
				"failed", result.Summary.Failed,
				"skipped", result.Summary.Skipped,
				"duration", result.Summary.Duration)

			if cmd.Bool("fail-on-error") && result.Failed() {
				return fmt.Errorf("validation failed: %d constraint(s) did not pass", result.Summary.Failed)
			}
			return nil
		},
	}
}

func resolveSnapshot(ctx context.Context, cmd *cli.Command) (*snapshotter.Snapshot, error) {
	if path := cmd.String("snapshot"); path != "" {
		slog.Info("loading snapshot", "uri", path)
		snap, err := snapshotter.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load snapshot from %q: %w", path, err)
		}
		return snap, nil
	}

	provider, source, err := loadProvider(ctx, cmd.String("profile"), cmd.Bool("host-facts"))
	if err != nil {
		return nil, err
	}
	es := snapshotter.EnvSnapshotter{
		Version:  version,
		Provider: provider,
		Source:   source,
	}
	snap, err := es.Capture(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to capture snapshot: %w", err)
	}
	return snap, nil
}
