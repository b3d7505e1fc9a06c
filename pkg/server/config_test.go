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
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/NVIDIA/envprobe/pkg/defaults"
)

func TestNewConfig_Defaults(t *testing.T) {
	for _, k := range []string{EnvPort, EnvShutdownTimeout, EnvRateLimit} {
		t.Setenv(k, "")
	}

	cfg := NewConfig()

	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.RateLimit != 100 || cfg.RateLimitBurst != 200 {
		t.Errorf("unexpected rate limit %v/%d", cfg.RateLimit, cfg.RateLimitBurst)
	}
	if cfg.ShutdownTimeout != defaults.ListenerTimeouts().Shutdown {
		t.Errorf("expected shutdown timeout %v, got %v", defaults.ListenerTimeouts().Shutdown, cfg.ShutdownTimeout)
	}
	if cfg.ReadHeaderTimeout != defaults.ListenerTimeouts().ReadHeader {
		t.Errorf("expected read header timeout %v, got %v", defaults.ListenerTimeouts().ReadHeader, cfg.ReadHeaderTimeout)
	}
}

func TestNewConfig_Env(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		port     int
		shutdown time.Duration
		limit    rate.Limit
	}{
		{
			name:     "all set",
			env:      map[string]string{EnvPort: "9090", EnvShutdownTimeout: "45", EnvRateLimit: "10"},
			port:     9090,
			shutdown: 45 * time.Second,
			limit:    10,
		},
		{
			name:     "invalid values ignored",
			env:      map[string]string{EnvPort: "abc", EnvShutdownTimeout: "-5", EnvRateLimit: "0"},
			port:     8080,
			shutdown: defaults.ListenerTimeouts().Shutdown,
			limit:    100,
		},
		{
			name:     "port out of range",
			env:      map[string]string{EnvPort: "70000", EnvShutdownTimeout: "", EnvRateLimit: ""},
			port:     8080,
			shutdown: defaults.ListenerTimeouts().Shutdown,
			limit:    100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg := NewConfig()
			if cfg.Port != tt.port {
				t.Errorf("port: expected %d, got %d", tt.port, cfg.Port)
			}
			if cfg.ShutdownTimeout != tt.shutdown {
				t.Errorf("shutdown: expected %v, got %v", tt.shutdown, cfg.ShutdownTimeout)
			}
			if cfg.RateLimit != tt.limit {
				t.Errorf("rate limit: expected %v, got %v", tt.limit, cfg.RateLimit)
			}
		})
	}
}
