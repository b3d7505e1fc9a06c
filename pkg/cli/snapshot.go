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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/envprobe/pkg/defaults"
	"github.com/NVIDIA/envprobe/pkg/serializer"
	"github.com/NVIDIA/envprobe/pkg/snapshotter"
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Capture an environment snapshot",
		Description: `Capture a snapshot of a client environment as typed measurements:

  Browser       identity (name, version, icon, recommended)
  Display       screen geometry and fullscreen state
  Acceleration  WebGL capabilities and probe outcome
  Device        touch and mobile signals
  Network       connection quality and online state
  Platform      navigator facts (cores, memory, platform, languages)

The snapshot also lists environment issues and whether the minimum
requirements are met. It can be validated later with "envprobe validate".

# Examples

Snapshot a builtin profile as YAML:
  envprobe snapshot --profile builtin:safari-iphone

Snapshot a captured profile with this machine's navigator facts:
  envprobe snapshot -p profile.json --host-facts -o snapshot.json -t json

Upload the snapshot:
  envprobe snapshot -p profile.yaml -o https://results.example.com/snapshots`,
		Flags: []cli.Flag{
			profileFlag(),
			hostFactsFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cancel := context.WithTimeout(ctx, defaults.CLISnapshotTimeout)
			defer cancel()

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			provider, source, err := loadProvider(ctx, cmd.String("profile"), cmd.Bool("host-facts"))
			if err != nil {
				return err
			}

			es := snapshotter.EnvSnapshotter{
				Version:    version,
				Provider:   provider,
				Source:     source,
				Serializer: serializer.NewFileWriterOrStdout(outFormat, cmd.String("output")),
			}
			defer func() {
				if closer, ok := es.Serializer.(serializer.Closer); ok {
					_ = closer.Close()
				}
			}()

			if err := es.Measure(ctx); err != nil {
				return fmt.Errorf("failed to capture snapshot: %w", err)
			}
			return nil
		},
	}
}
