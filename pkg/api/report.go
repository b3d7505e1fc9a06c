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

package api

import (
	"log/slog"

	"github.com/NVIDIA/envprobe/pkg/header"
	"github.com/NVIDIA/envprobe/pkg/platform"
	"github.com/NVIDIA/envprobe/pkg/probe"
	"github.com/NVIDIA/envprobe/pkg/snapshotter"
)

// APIVersion is the schema version of probe reports.
const APIVersion = "envprobe.nvidia.com/v1alpha1"

// Report is the result of probing one client environment.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	System probe.SystemInfo `json:"system" yaml:"system"`

	// Issues are the environment advisories in detection order.
	Issues []probe.Issue `json:"issues" yaml:"issues"`

	MeetsMinimumRequirements bool `json:"meetsMinimumRequirements" yaml:"meetsMinimumRequirements"`

	// AccelerationOutcome tells an unsupported surface from a failed probe.
	AccelerationOutcome probe.Outcome `json:"accelerationOutcome" yaml:"accelerationOutcome"`
	AccelerationError   string        `json:"accelerationError,omitempty" yaml:"accelerationError,omitempty"`
}

// NewReport probes provider and assembles a Report. source names the
// environment (profile name or "request") and is recorded in metadata.
func NewReport(provider platform.Provider, source, version string, logger *slog.Logger) *Report {
	p := probe.New(provider, probe.WithLogger(logger))

	r := &Report{}
	r.Init(header.KindProbeReport, APIVersion, version)
	if source != "" {
		r.Metadata[snapshotter.MetaProfile] = source
	}

	ev := p.Evaluate()
	r.System = ev.System
	r.Issues = ev.Issues
	if r.Issues == nil {
		r.Issues = []probe.Issue{}
	}
	r.MeetsMinimumRequirements = ev.MeetsMinimumRequirements
	r.AccelerationOutcome = ev.Acceleration.Outcome
	if ev.Acceleration.Err != nil {
		r.AccelerationError = ev.Acceleration.Err.Error()
	}
	return r
}
