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

// Package snapshotter captures point-in-time snapshots of a client
// environment.
//
// A Snapshot carries a header (kind, apiVersion, id, timestamp, tool
// version), one measurement per measurement.Type, the environment
// advisories and the minimum-requirements verdict.
//
// EnvSnapshotter runs the collectors for a platform.Provider:
//
//	p, _ := profile.Builtin("chrome-desktop")
//	s := &snapshotter.EnvSnapshotter{
//	    Version:    version,
//	    Provider:   profile.NewProvider(*p),
//	    Source:     p.Name,
//	    Serializer: serializer.NewFileWriterOrStdout(serializer.FormatYAML, "snap.yaml"),
//	}
//	if err := s.Measure(ctx); err != nil {
//	    return err
//	}
//
// Capture returns the snapshot without serializing it. Load reads a
// previously written snapshot from a file or URL.
//
// Collection records Prometheus metrics: envprobe_snapshot_collection_duration_seconds,
// envprobe_snapshot_collection_total, envprobe_snapshot_collector_duration_seconds,
// envprobe_snapshot_measurements and envprobe_snapshot_issues_total.
package snapshotter
