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

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/envprobe/pkg/api"
	"github.com/NVIDIA/envprobe/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the probe API server",
		Description: `Serve probe reports over HTTP:

  GET  /v1/probe       report derived from the request headers
  POST /v1/probe       report for a posted profile
  POST /v1/probe/bulk  reports for several profiles

plus /health, /ready and /metrics. Flags override PORT, RATE_LIMIT and
SHUTDOWN_TIMEOUT_SECONDS.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Usage:   "Listen address",
				Sources: cli.EnvVars("ENVPROBE_ADDRESS"),
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   "Listen port (default: $PORT or 8080)",
				Sources: cli.EnvVars("ENVPROBE_PORT"),
			},
			&cli.IntFlag{
				Name:  "rate-limit",
				Usage: "Requests per second (default: $RATE_LIMIT or 100)",
			},
			&cli.IntFlag{
				Name:  "max-bulk",
				Usage: "Maximum profiles per bulk request",
			},
			&cli.DurationFlag{
				Name:  "shutdown-timeout",
				Usage: "Graceful shutdown timeout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve(ctx, serverConfig(cmd))
		},
	}
}

func serverConfig(cmd *cli.Command) *server.Config {
	cfg := server.NewConfig()
	if v := cmd.String("address"); v != "" {
		cfg.Address = v
	}
	if v := cmd.Int("port"); v > 0 {
		cfg.Port = v
	}
	if v := cmd.Int("rate-limit"); v > 0 {
		cfg.RateLimit = rate.Limit(v)
		cfg.RateLimitBurst = 2 * v
	}
	if v := cmd.Int("max-bulk"); v > 0 {
		cfg.MaxBulkRequests = v
	}
	if v := cmd.Duration("shutdown-timeout"); v > 0 {
		cfg.ShutdownTimeout = v
	}
	return cfg
}
