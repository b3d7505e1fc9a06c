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

// Package server provides the HTTP server shared by envprobe services.
//
// Routes passed with WithHandler are wrapped in a middleware chain:
//
//   - Prometheus request metrics (envprobe_http_*)
//   - API version negotiation via application/vnd.nvidia.envprobe.v1+json
//   - Request ID tracking through the X-Request-Id header
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Debug request logging
//
// The server always exposes:
//
//	GET /health   liveness, always 200
//	GET /ready    readiness, 503 until listening and during shutdown
//	GET /metrics  Prometheus exposition
//	GET /         route listing, unless a "/" handler is supplied
//
// Usage:
//
//	s := server.New(
//	    server.WithName("envprobed"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/probe": handleProbe,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Errors share one JSON shape:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "invalid profile",
//	  "details": {"error": "..."},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// PORT, SHUTDOWN_TIMEOUT_SECONDS and RATE_LIMIT override the defaults.
// When started by systemd with Type=notify the server reports READY and
// STOPPING.
package server
