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

package probe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const capabilityAcceleration = "acceleration"

var probeOutcomes = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "envprobe_capability_probe_total",
		Help: "Capability probes by capability and outcome (ok, unsupported, failed)",
	},
	[]string{"capability", "outcome"},
)

func recordOutcome(capability string, o Outcome) {
	probeOutcomes.WithLabelValues(capability, string(o)).Inc()
}
