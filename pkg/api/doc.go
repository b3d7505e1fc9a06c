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

// Package api serves environment probe reports over HTTP.
//
// Serve configures structured logging and runs pkg/server with the probe
// routes:
//
//	GET  /v1/probe       report derived from request headers
//	POST /v1/probe       report for a posted profile (JSON or YAML)
//	POST /v1/probe/bulk  reports for up to MaxBulkRequests profiles
//
// A GET report can only see what a request carries: the user agent, client
// hints, network hints, DNT and Accept-Language. No rendering context is
// available, so acceleration is reported as unsupported. Responses set
// Accept-CH so that browsers send the hints on later requests.
//
// A posted profile is the capability report a browser build of envprobe
// produces:
//
//	curl -X POST -H 'Content-Type: application/yaml' \
//	  --data-binary @profile.yaml http://localhost:8080/v1/probe
//
// Bulk results keep input order; invalid profiles are reported per item:
//
//	{"results": [{"index": 0, "name": "chrome-desktop", "report": {...}},
//	             {"index": 1, "error": "[INVALID_REQUEST] ..."}],
//	 "failed": 1}
package api
