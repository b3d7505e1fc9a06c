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

	"github.com/NVIDIA/envprobe/pkg/platform"
	"github.com/NVIDIA/envprobe/pkg/platform/host"
	"github.com/NVIDIA/envprobe/pkg/platform/profile"
	"github.com/NVIDIA/envprobe/pkg/serializer"
)

const defaultProfile = profile.BuiltinScheme + "chrome-desktop"

func profileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "profile",
		Aliases: []string{"p"},
		Usage: `Environment profile to probe.
	Supports: builtin:<name>, file paths and HTTP/HTTPS URLs.`,
		Sources: cli.EnvVars("ENVPROBE_PROFILE"),
		Value:   defaultProfile,
	}
}

func hostFactsFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "host-facts",
		Usage:   "Use this machine's cores, memory, platform, locale and online state",
		Sources: cli.EnvVars("ENVPROBE_HOST_FACTS"),
	}
}

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path or HTTP/HTTPS URL (default: stdout)",
		Sources: cli.EnvVars("ENVPROBE_OUTPUT"),
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   "Output format (json, yaml, table)",
		Sources: cli.EnvVars("ENVPROBE_FORMAT"),
		Value:   string(serializer.FormatYAML),
	}
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// loadProvider resolves a profile source into a provider, overlaying host
// facts when requested. The returned name identifies the environment.
func loadProvider(ctx context.Context, source string, hostFacts bool) (platform.Provider, string, error) {
	p, err := profile.Load(source)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load profile %q: %w", source, err)
	}
	name := p.Name
	if name == "" {
		name = source
	}

	var provider platform.Provider = profile.NewProvider(*p)
	if !hostFacts {
		return provider, name, nil
	}

	h, err := host.New(ctx, provider)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read host facts: %w", err)
	}
	return platform.Override(provider, platform.Composite{Navigator: h}), name, nil
}

// writeOutput serializes v to the --output destination in the --format format.
func writeOutput(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	if err := ser.Serialize(ctx, v); err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}
	return nil
}
