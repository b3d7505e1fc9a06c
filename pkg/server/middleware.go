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
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-Id"

type middleware func(http.HandlerFunc) http.HandlerFunc

// chain wraps h so the first middleware sees the request first.
func chain(h http.HandlerFunc, mws ...middleware) http.HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// withMiddleware wraps an API route. System routes are served bare.
func (s *Server) withMiddleware(h http.HandlerFunc) http.HandlerFunc {
	return chain(h, s.observe, s.annotate, s.recoverPanic, s.throttle)
}

// observe records route metrics and writes one access log line per request.
// The request ID and API version are read back from the response headers
// set further down the chain.
func (s *Server) observe(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		route := s.routeLabel(r.URL.Path)

		inFlight.WithLabelValues(route).Inc()
		defer inFlight.WithLabelValues(route).Dec()

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		elapsed := time.Since(start)
		version := rw.Header().Get(HeaderAPIVersion)
		requests.WithLabelValues(route, r.Method, statusClass(rw.Status()), version).Inc()
		latency.WithLabelValues(route).Observe(elapsed.Seconds())

		level := slog.LevelDebug
		if rw.Status() >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		slog.Log(r.Context(), level, "request served",
			"requestID", rw.Header().Get(HeaderRequestID),
			"apiVersion", version,
			"method", r.Method,
			"route", route,
			"status", rw.Status(),
			"duration", elapsed.String(),
		)
	}
}

// annotate negotiates the API version and assigns the request ID, exposing
// both on the context and the response.
func (s *Server) annotate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := negotiateAPIVersion(r)
		SetAPIVersionHeader(w, version)

		id := r.Header.Get(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		w.Header().Set(HeaderRequestID, id)

		ctx := context.WithValue(r.Context(), contextKeyAPIVersion, version)
		ctx = context.WithValue(ctx, contextKeyRequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func (s *Server) recoverPanic(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				shed.WithLabelValues(shedPanic).Inc()
				slog.Error("handler panic",
					"panic", fmt.Sprint(v),
					"requestID", RequestIDFromContext(r.Context()),
					"path", r.URL.Path,
				)
				WriteError(w, r, http.StatusInternalServerError, ErrCodeInternalError,
					"Internal server error", true, nil)
			}
		}()
		next.ServeHTTP(w, r)
	}
}

// throttle applies the caller's token bucket. A rejected request is told how
// long to wait before its next token.
func (s *Server) throttle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lim := s.limiter.forClient(clientKey(r))
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(int(s.config.RateLimit)))

		res := lim.Reserve()
		if delay := res.Delay(); delay > 0 {
			res.Cancel()
			shed.WithLabelValues(shedRateLimit).Inc()
			retry := int(math.Ceil(delay.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			w.Header().Set("X-RateLimit-Remaining", "0")
			WriteError(w, r, http.StatusTooManyRequests, ErrCodeRateLimitExceeded,
				"Rate limit exceeded", true, map[string]any{
					"limit":      s.config.RateLimit,
					"burst":      s.config.RateLimitBurst,
					"retryAfter": retry,
				})
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(lim.Tokens())))
		next.ServeHTTP(w, r)
	}
}
