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

// Package cli implements the envprobe command line.
//
// # Commands
//
//	envprobe snapshot  capture typed measurements, issues and requirements
//	envprobe info      full probe report for one or more profiles
//	envprobe issues    environment advisories (--fail-on-error)
//	envprobe check     minimum requirements; exits 1 when unmet
//	envprobe validate  evaluate a constraint set against a snapshot
//	envprobe profiles  list builtin profiles
//	envprobe serve     run the probe API server
//
// # Global Flags
//
//	--log-level    debug, info, warn, error (ENVPROBE_LOG_LEVEL, LOG_LEVEL)
//
// # Common Flags
//
//	--profile, -p  builtin:<name>, file path or URL (ENVPROBE_PROFILE)
//	--host-facts   overlay this machine's navigator facts (ENVPROBE_HOST_FACTS)
//	--output, -o   output file or URL (default: stdout)
//	--format, -t   yaml (default), json, table
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/envprobe/pkg/cli.version=1.0.0'"
package cli
