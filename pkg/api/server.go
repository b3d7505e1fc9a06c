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
	"context"
	"log/slog"

	"github.com/NVIDIA/envprobe/pkg/logging"
	"github.com/NVIDIA/envprobe/pkg/server"
)

const (
	name           = "envprobed"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/envprobe/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve runs the probe API server until ctx is done or the process is
// signaled. A nil cfg uses server.NewConfig.
func Serve(ctx context.Context, cfg *server.Config) error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	if cfg == nil {
		cfg = server.NewConfig()
	}

	s := NewServer(cfg)
	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// NewServer wires the probe routes into a server built from cfg.
func NewServer(cfg *server.Config) *server.Server {
	cfg.Name = name
	cfg.Version = version

	h := NewHandler(version, cfg.MaxBulkRequests)
	return server.New(
		server.WithConfig(cfg),
		server.WithHandler(h.Routes()),
	)
}
