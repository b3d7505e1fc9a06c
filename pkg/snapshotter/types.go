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

package snapshotter

import (
	"context"

	"github.com/NVIDIA/envprobe/pkg/header"
	"github.com/NVIDIA/envprobe/pkg/measurement"
	"github.com/NVIDIA/envprobe/pkg/probe"
	"github.com/NVIDIA/envprobe/pkg/serializer"
)

// APIVersion is the schema version of snapshot documents.
const APIVersion = "envprobe.nvidia.com/v1alpha1"

// Snapshotter captures and emits environment snapshots.
type Snapshotter interface {
	Measure(ctx context.Context) error
}

// NewSnapshot returns an empty Snapshot with initialized slices.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Measurements: make([]*measurement.Measurement, 0, len(measurement.Types)),
		Issues:       make([]probe.Issue, 0),
	}
}

// Snapshot is a point-in-time reading of a client environment together
// with the advisories derived from it.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	Measurements []*measurement.Measurement `json:"measurements" yaml:"measurements"`

	// Issues are the environment advisories in detection order.
	Issues []probe.Issue `json:"issues" yaml:"issues"`

	MeetsMinimumRequirements bool `json:"meetsMinimumRequirements" yaml:"meetsMinimumRequirements"`
}

// Get resolves a "{Type}.{Subtype}.{Key}" path against the measurements.
func (s *Snapshot) Get(path string) (measurement.Reading, error) {
	return measurement.Lookup(s.Measurements, path)
}

// Load reads a snapshot from a file path or http(s) URL. The format is
// taken from the extension.
func Load(path string) (*Snapshot, error) {
	return serializer.FromFile[Snapshot](path)
}
