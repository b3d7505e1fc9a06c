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
	"net/http"
	"time"

	"github.com/NVIDIA/envprobe/pkg/serializer"
)

// Health states reported by /health and /ready.
const (
	StatusHealthy  = "healthy"
	StatusReady    = "ready"
	StatusNotReady = "not_ready"
)

// HealthResponse is the body of the liveness and readiness endpoints.
type HealthResponse struct {
	Status    string    `json:"status" yaml:"status"`
	Service   string    `json:"service,omitempty" yaml:"service,omitempty"`
	Version   string    `json:"version,omitempty" yaml:"version,omitempty"`
	Uptime    string    `json:"uptime,omitempty" yaml:"uptime,omitempty"`
	Clients   int       `json:"rateLimitedClients" yaml:"rateLimitedClients"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// handleHealth reports liveness. It answers as long as the process serves.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondHealth(w, r, StatusHealthy, "")
}

// handleReady reports whether probe traffic is being accepted.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !s.isReady() {
		s.respondHealth(w, r, StatusNotReady, "server is starting or draining")
		return
	}
	s.respondHealth(w, r, StatusReady, "")
}

func (s *Server) respondHealth(w http.ResponseWriter, r *http.Request, status, reason string) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	code := http.StatusOK
	if status == StatusNotReady {
		code = http.StatusServiceUnavailable
	}

	serializer.RespondJSON(w, code, HealthResponse{
		Status:    status,
		Service:   s.config.Name,
		Version:   s.config.Version,
		Uptime:    time.Since(s.started).Round(time.Second).String(),
		Clients:   s.limiter.tracked(),
		Timestamp: time.Now().UTC(),
		Reason:    reason,
	})
}
