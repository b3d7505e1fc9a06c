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

// Package version parses and compares dotted numeric versions of up to four
// components, as reported by browsers ("120.0.6099.109") and used in
// validation constraints (">= 120").
//
// Comparisons honor the lower precision of the two operands, so a
// constraint of "17" matches every 17.x release:
//
//	v := version.MustParseVersion("17.2")
//	v.Compare(version.MustParseVersion("17")) // 0
package version
