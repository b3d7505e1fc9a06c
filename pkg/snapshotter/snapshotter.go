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
	"fmt"
	"log/slog"
	"time"

	"github.com/NVIDIA/envprobe/pkg/collector"
	"github.com/NVIDIA/envprobe/pkg/defaults"
	"github.com/NVIDIA/envprobe/pkg/errors"
	"github.com/NVIDIA/envprobe/pkg/header"
	"github.com/NVIDIA/envprobe/pkg/measurement"
	"github.com/NVIDIA/envprobe/pkg/platform"
	"github.com/NVIDIA/envprobe/pkg/probe"
	"github.com/NVIDIA/envprobe/pkg/serializer"
)

// MetaProfile is the snapshot metadata key naming the source profile.
const MetaProfile = "profile"

// EnvSnapshotter captures a snapshot of the environment behind Provider.
type EnvSnapshotter struct {
	// Version is the tool version recorded in the snapshot header.
	Version string

	// Provider is the environment being probed. Required.
	Provider platform.Provider

	// Source names the environment, e.g. a profile name. Optional.
	Source string

	// Factory creates the collectors. Defaults to a collector.DefaultFactory over Provider.
	Factory collector.Factory

	// Serializer receives the snapshot in Measure. Defaults to JSON on stdout.
	Serializer serializer.Serializer

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

func (s *EnvSnapshotter) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// Capture runs every collector in measurement type order and derives the
// advisories. Collectors run one after another since providers such as
// the live browser are not safe for concurrent use.
func (s *EnvSnapshotter) Capture(ctx context.Context) (*Snapshot, error) {
	if s.Provider == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "snapshotter requires a platform provider")
	}
	log := s.logger()
	factory := s.Factory
	if factory == nil {
		factory = collector.NewDefaultFactory(s.Provider, collector.WithLogger(log))
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.SnapshotTimeout)
	defer cancel()

	start := time.Now()
	defer func() {
		snapshotCollectionDuration.Observe(time.Since(start).Seconds())
	}()

	log.Debug("starting environment snapshot", "source", s.Source)

	snap := NewSnapshot()
	snap.Init(header.KindSnapshot, APIVersion, s.Version)
	if s.Source != "" {
		snap.Metadata[MetaProfile] = s.Source
	}

	for _, c := range collector.All(factory) {
		m, err := s.collect(ctx, c)
		if err != nil {
			snapshotCollectionTotal.WithLabelValues("error").Inc()
			return nil, err
		}
		snap.Measurements = append(snap.Measurements, m)
	}

	ev := probe.New(s.Provider, probe.WithLogger(log)).Evaluate()
	snap.Issues = ev.Issues
	snap.MeetsMinimumRequirements = ev.MeetsMinimumRequirements
	for _, issue := range snap.Issues {
		snapshotIssuesTotal.WithLabelValues(issue.Code).Inc()
	}

	snapshotCollectionTotal.WithLabelValues("success").Inc()
	snapshotMeasurementCount.Set(float64(len(snap.Measurements)))

	log.Debug("snapshot collection complete",
		slog.Int("measurements", len(snap.Measurements)),
		slog.Int("issues", len(snap.Issues)),
		slog.Bool("meetsMinimumRequirements", snap.MeetsMinimumRequirements))

	return snap, nil
}

func (s *EnvSnapshotter) collect(ctx context.Context, c collector.Collector) (*measurement.Measurement, error) {
	cctx, cancel := context.WithTimeout(ctx, defaults.CollectorTimeout)
	defer cancel()

	start := time.Now()
	m, err := c.Collect(cctx)
	if err != nil {
		s.logger().Error("collector failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to collect environment: %w", err)
	}
	if m == nil {
		return nil, errors.New(errors.ErrCodeInternal, "collector returned no measurement")
	}
	snapshotCollectorDuration.WithLabelValues(m.Type.String()).Observe(time.Since(start).Seconds())
	return m, nil
}

// Measure captures a snapshot and writes it to the configured Serializer.
func (s *EnvSnapshotter) Measure(ctx context.Context) error {
	snap, err := s.Capture(ctx)
	if err != nil {
		return err
	}

	if s.Serializer == nil {
		s.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := s.Serializer.Serialize(ctx, snap); err != nil {
		s.logger().Error("failed to serialize", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize: %w", err)
	}
	return nil
}
