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
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Report origins used as the source metric label.
const (
	originHeaders = "headers"
	originProfile = "profile"
	originBulk    = "bulk"
)

var (
	reportsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "envprobe_reports_total",
			Help: "Probe reports served, by origin, detected browser, acceleration outcome and requirements verdict.",
		},
		[]string{"origin", "browser", "acceleration", "meets_requirements"},
	)

	reportIssues = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "envprobe_report_issues_total",
			Help: "Environment advisories raised in served reports, by code and severity.",
		},
		[]string{"code", "severity"},
	)

	bulkBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "envprobe_bulk_batch_size",
			Help:    "Profiles per bulk probe request.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		},
	)
)

// recordReport counts a served report. Browser names come from a fixed
// classification table, so the label set stays bounded.
func recordReport(origin string, r *Report) {
	reportsServed.WithLabelValues(
		origin,
		r.System.Browser.Name,
		string(r.AccelerationOutcome),
		strconv.FormatBool(r.MeetsMinimumRequirements),
	).Inc()
	for _, i := range r.Issues {
		reportIssues.WithLabelValues(i.Code, string(i.Severity)).Inc()
	}
}
