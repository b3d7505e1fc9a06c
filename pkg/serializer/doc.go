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

// Package serializer encodes and decodes envprobe documents.
//
// Output formats:
//   - JSON: indented, machine-readable
//   - YAML: human-readable
//   - Table: flattened FIELD/VALUE pairs
//
// Destinations are stdout, files, or http(s) URLs. URL destinations are
// uploaded with a POST through a retrying client (hashicorp/go-retryablehttp):
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatJSON, "https://collector.example/snapshots")
//	if err := w.Serialize(ctx, snap); err != nil {
//		return err
//	}
//
// Inputs are read with FromFile, which accepts local paths and http(s) URLs
// and picks the format from the extension:
//
//	p, err := serializer.FromFile[profile.Profile]("chrome-desktop.yaml")
//
// RespondJSON writes buffered JSON HTTP responses for the API server.
package serializer
