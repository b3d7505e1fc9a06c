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

package defaults

import "time"

// Probe budgets. A probe query is a single call into the platform, so these
// bound a hung bridge or graphics driver rather than slow work.
const (
	// CollectorTimeout bounds one measurement collector.
	CollectorTimeout = 2 * time.Second

	// SnapshotTimeout bounds a full snapshot across all collectors.
	SnapshotTimeout = 10 * time.Second

	// ProbeHandlerTimeout bounds a single /v1/probe report.
	ProbeHandlerTimeout = 5 * time.Second

	// BulkProbeHandlerTimeout bounds a whole /v1/probe/bulk batch.
	BulkProbeHandlerTimeout = 30 * time.Second

	// CLISnapshotTimeout also covers fetching a profile from a URL.
	CLISnapshotTimeout = time.Minute
)

// Listener holds the envprobed HTTP server limits.
type Listener struct {
	Read       time.Duration
	ReadHeader time.Duration
	Write      time.Duration
	Idle       time.Duration
	Shutdown   time.Duration
}

// ListenerTimeouts returns the server limits. Write outlasts the bulk
// handler so a timed out batch still receives its error body.
func ListenerTimeouts() Listener {
	return Listener{
		Read:       5 * time.Second,
		ReadHeader: 2 * time.Second,
		Write:      45 * time.Second,
		Idle:       90 * time.Second,
		Shutdown:   15 * time.Second,
	}
}

// Outbound configures the retrying client that fetches profiles and
// uploads snapshots.
type Outbound struct {
	Total          time.Duration
	Connect        time.Duration
	TLSHandshake   time.Duration
	ResponseHeader time.Duration
	ExpectContinue time.Duration
	IdleConn       time.Duration
	KeepAlive      time.Duration

	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// OutboundHTTP returns the outbound client settings.
func OutboundHTTP() Outbound {
	return Outbound{
		Total:          30 * time.Second,
		Connect:        5 * time.Second,
		TLSHandshake:   5 * time.Second,
		ResponseHeader: 10 * time.Second,
		ExpectContinue: time.Second,
		IdleConn:       90 * time.Second,
		KeepAlive:      30 * time.Second,

		RetryMax:     3,
		RetryWaitMin: 500 * time.Millisecond,
		RetryWaitMax: 5 * time.Second,
	}
}
