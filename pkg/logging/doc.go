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

// Package logging provides structured logging utilities for envprobe components.
//
// It wraps log/slog with a JSON handler writing to stderr, module and version
// attributes on every record, LOG_LEVEL based verbosity and source locations
// for debug output.
//
// Setting the default logger early in main:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("envprobe", version)
//	    slog.Info("starting")
//	}
//
// Explicit level, typically from a --log-level flag:
//
//	logging.SetDefaultStructuredLoggerWithLevel("envprobed", version, "debug")
//
// Supported levels (case-insensitive): debug, info (default), warn/warning, error.
package logging
