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
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reasons a request was refused before its handler completed.
const (
	shedRateLimit = "rate_limit"
	shedPanic     = "panic"
)

var (
	requests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "envprobe_http_requests_total",
			Help: "API requests by route, method, status class and negotiated API version.",
		},
		[]string{"route", "method", "class", "api_version"},
	)

	// Probe evaluation is CPU bound and fast; the buckets stop at one second.
	latency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "envprobe_http_request_duration_seconds",
			Help:    "API request latency by route.",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"route"},
	)

	inFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "envprobe_http_requests_in_flight",
			Help: "API requests currently being served, by route.",
		},
		[]string{"route"},
	)

	shed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "envprobe_http_shed_total",
			Help: "API requests refused by the server rather than the handler.",
		},
		[]string{"reason"},
	)
)

// statusClass folds a status code into its class, e.g. 404 to "4xx".
func statusClass(code int) string {
	if code < 100 || code > 599 {
		return "other"
	}
	return strconv.Itoa(code/100) + "xx"
}

// routeLabel maps a path onto a registered route so unknown paths cannot
// grow label cardinality.
func (s *Server) routeLabel(path string) string {
	if _, ok := s.config.Handlers[path]; ok {
		return path
	}
	return "/"
}
