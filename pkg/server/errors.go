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

	"github.com/google/uuid"

	"github.com/NVIDIA/envprobe/pkg/errors"
	"github.com/NVIDIA/envprobe/pkg/serializer"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// Error codes
const (
	ErrCodeNotFound           = string(errors.ErrCodeNotFound)
	ErrCodeRateLimitExceeded  = string(errors.ErrCodeRateLimitExceeded)
	ErrCodeInternalError      = string(errors.ErrCodeInternal)
	ErrCodeServiceUnavailable = string(errors.ErrCodeUnavailable)
	ErrCodeInvalidRequest     = string(errors.ErrCodeInvalidRequest)
	ErrCodeMethodNotAllowed   = string(errors.ErrCodeMethodNotAllowed)
	ErrCodeTimeout            = string(errors.ErrCodeTimeout)
)

// WriteError writes an ErrorResponse with the request ID from the context.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr maps a structured error onto an HTTP status and writes it.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, message string, details map[string]any) {
	code := errors.CodeOf(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status, retryable := statusForCode(code)
	if message == "" {
		message = err.Error()
	}
	if details == nil {
		details = map[string]any{}
	}
	details["error"] = err.Error()
	WriteError(w, r, status, string(code), message, retryable, details)
}

func statusForCode(code errors.ErrorCode) (int, bool) {
	switch code {
	case errors.ErrCodeInvalidRequest, errors.ErrCodeUnsupported:
		return http.StatusBadRequest, false
	case errors.ErrCodeNotFound:
		return http.StatusNotFound, false
	case errors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed, false
	case errors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests, true
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout, true
	case errors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable, true
	default:
		return http.StatusInternalServerError, true
	}
}
