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
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/envprobe/pkg/api"
	"github.com/NVIDIA/envprobe/pkg/platform/profile"
	"github.com/NVIDIA/envprobe/pkg/probe"
)

func infoCmd() *cli.Command {
	return &cli.Command{
		Name:                  "info",
		EnableShellCompletion: true,
		Usage:                 "Report system info, issues and requirements for one or more profiles",
		Description: `Probe each profile and print a report with the aggregated system info,
the environment issues, the minimum requirements verdict and the outcome of
the acceleration probe. Several profiles are probed concurrently and
reported in the order given.

# Examples

  envprobe info --profile builtin:chrome-desktop
  envprobe info -p builtin:edge-desktop -p builtin:ie11-legacy -t json`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "Environment profile to probe (can be repeated)",
				Sources: cli.EnvVars("ENVPROBE_PROFILE"),
				Value:   []string{defaultProfile},
			},
			hostFactsFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			reports, err := buildReports(ctx, cmd.StringSlice("profile"), cmd.Bool("host-facts"))
			if err != nil {
				return err
			}

			if len(reports) == 1 {
				return writeOutput(ctx, cmd, reports[0])
			}
			return writeOutput(ctx, cmd, reports)
		},
	}
}

// buildReports probes each source concurrently, keeping input order.
func buildReports(ctx context.Context, sources []string, hostFacts bool) ([]*api.Report, error) {
	reports := make([]*api.Report, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			provider, name, err := loadProvider(gctx, src, hostFacts)
			if err != nil {
				return err
			}
			reports[i] = api.NewReport(provider, name, version, slog.Default())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// IssuesReport is the output of the issues command.
type IssuesReport struct {
	Profile string        `json:"profile" yaml:"profile"`
	Issues  []probe.Issue `json:"issues" yaml:"issues"`
}

func issuesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "issues",
		EnableShellCompletion: true,
		Usage:                 "List environment issues",
		Description: `List the advisories for an environment in detection order. Error
severity issues block the benchmark; warnings degrade it.

Use --fail-on-error to exit non-zero when any error is present.`,
		Flags: []cli.Flag{
			profileFlag(),
			hostFactsFlag(),
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status when an error severity issue is found",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			provider, name, err := loadProvider(ctx, cmd.String("profile"), cmd.Bool("host-facts"))
			if err != nil {
				return err
			}

			issues := probe.New(provider).DetectEnvironmentIssues()
			if issues == nil {
				issues = []probe.Issue{}
			}
			if err := writeOutput(ctx, cmd, IssuesReport{Profile: name, Issues: issues}); err != nil {
				return err
			}

			if cmd.Bool("fail-on-error") && probe.HasErrors(issues) {
				return fmt.Errorf("environment %q has blocking issues", name)
			}
			return nil
		},
	}
}

// CheckResult is the output of the check command.
type CheckResult struct {
	Profile                  string `json:"profile" yaml:"profile"`
	Browser                  string `json:"browser" yaml:"browser"`
	BrowserVersion           string `json:"browserVersion" yaml:"browserVersion"`
	WebGLSupported           bool   `json:"webglSupported" yaml:"webglSupported"`
	CPUCores                 int    `json:"cpuCores" yaml:"cpuCores"`
	MeetsMinimumRequirements bool   `json:"meetsMinimumRequirements" yaml:"meetsMinimumRequirements"`
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Check the minimum requirements",
		Description: fmt.Sprintf(`Check that the environment supports WebGL, runs a supported browser and
has at least %d logical cores. Exits non-zero when the requirements are not met.`,
			probe.MinimumCPUCores),
		Flags: []cli.Flag{
			profileFlag(),
			hostFactsFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			provider, name, err := loadProvider(ctx, cmd.String("profile"), cmd.Bool("host-facts"))
			if err != nil {
				return err
			}

			p := probe.New(provider)
			browser := p.DetectBrowser()
			res := CheckResult{
				Profile:                  name,
				Browser:                  browser.Name,
				BrowserVersion:           browser.Version,
				WebGLSupported:           p.GetAccelerationInfo().WebGLSupported,
				CPUCores:                 provider.HardwareConcurrency(),
				MeetsMinimumRequirements: p.MeetsMinimumRequirements(),
			}
			if err := writeOutput(ctx, cmd, res); err != nil {
				return err
			}

			if !res.MeetsMinimumRequirements {
				return fmt.Errorf("environment %q does not meet the minimum requirements", name)
			}
			return nil
		},
	}
}

func profilesCmd() *cli.Command {
	return &cli.Command{
		Name:  "profiles",
		Usage: "List builtin profiles",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			names := profile.BuiltinNames()
			refs := make([]string, len(names))
			for i, n := range names {
				refs[i] = profile.BuiltinScheme + n
			}
			return writeOutput(ctx, cmd, refs)
		},
	}
}
