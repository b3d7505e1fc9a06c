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
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NVIDIA/envprobe/pkg/errors"
)

func TestNegotiateAPIVersion(t *testing.T) {
	tests := []struct {
		accept string
		want   string
	}{
		{"", DefaultAPIVersion},
		{"application/json", DefaultAPIVersion},
		{"application/vnd.nvidia.envprobe.v1+json", "v1"},
		{"text/html, application/vnd.nvidia.envprobe.v1+json;q=0.9", "v1"},
		{"application/vnd.nvidia.envprobe.v9+json", DefaultAPIVersion},
	}

	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Accept", tt.accept)
			if got := negotiateAPIVersion(req); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestWriteErrorFromErr(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		status    int
		code      string
		retryable bool
	}{
		{"invalid request", errors.New(errors.ErrCodeInvalidRequest, "bad"), http.StatusBadRequest, ErrCodeInvalidRequest, false},
		{"not found", errors.New(errors.ErrCodeNotFound, "missing"), http.StatusNotFound, ErrCodeNotFound, false},
		{"timeout", errors.New(errors.ErrCodeTimeout, "slow"), http.StatusGatewayTimeout, ErrCodeTimeout, true},
		{"wrapped", fmt.Errorf("outer: %w", errors.New(errors.ErrCodeUnavailable, "down")), http.StatusServiceUnavailable, ErrCodeServiceUnavailable, true},
		{"plain", fmt.Errorf("boom"), http.StatusInternalServerError, ErrCodeInternalError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteErrorFromErr(w, httptest.NewRequest(http.MethodGet, "/", nil), tt.err, "", nil)

			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode: %v", err)
			}
			if resp.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, resp.Code)
			}
			if resp.Retryable != tt.retryable {
				t.Errorf("expected retryable %v, got %v", tt.retryable, resp.Retryable)
			}
			if resp.Details["error"] == nil {
				t.Error("expected error detail")
			}
		})
	}
}
