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

package server

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/NVIDIA/envprobe/pkg/defaults"
)

// Environment variables read by NewConfig.
const (
	EnvPort            = "PORT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
	EnvRateLimit       = "RATE_LIMIT"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Handlers are the API routes; each is wrapped in the middleware chain.
	Handlers map[string]http.HandlerFunc

	Address string
	Port    int

	// Rate limiting
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int

	// MaxBulkRequests caps the number of items in a bulk request.
	MaxBulkRequests int

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns defaults overridden by PORT, SHUTDOWN_TIMEOUT_SECONDS
// and RATE_LIMIT when set. Invalid values are ignored.
func NewConfig() *Config {
	limits := defaults.ListenerTimeouts()
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Port:              8080,
		RateLimit:         100,
		RateLimitBurst:    200,
		MaxBulkRequests:   100,
		ReadTimeout:       limits.Read,
		ReadHeaderTimeout: limits.ReadHeader,
		WriteTimeout:      limits.Write,
		IdleTimeout:       limits.Idle,
		ShutdownTimeout:   limits.Shutdown,
	}

	if v, ok := envInt(EnvPort); ok && v > 0 && v < 65536 {
		cfg.Port = v
	}

	// Match the orchestrator's termination grace period.
	if v, ok := envInt(EnvShutdownTimeout); ok && v > 0 {
		cfg.ShutdownTimeout = time.Duration(v) * time.Second
	}

	if v, ok := envInt(EnvRateLimit); ok && v > 0 {
		cfg.RateLimit = rate.Limit(v)
		cfg.RateLimitBurst = 2 * v
	}

	return cfg
}

func envInt(name string) (int, bool) {
	s := os.Getenv(name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		slog.Warn("ignoring invalid environment value", "name", name, "value", s)
		return 0, false
	}
	return v, true
}
