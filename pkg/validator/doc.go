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

// Package validator checks environment snapshots against constraint sets.
//
// A constraint names a measurement by its {Type}.{Subtype}.{Key} path and
// gives an expected-value expression:
//
//	Browser.identity.version            >= 120
//	Acceleration.webgl.max-texture-size >= 4096
//	Acceleration.webgl.supported        true
//	Platform.navigator.cpu-cores        >= 2
//	Browser.identity.name               != Internet Explorer
//
// Supported operators are >=, <=, >, <, ==, != and none (exact match).
// Numeric readings compare as numbers, booleans by value, and strings as
// dotted versions under the ordering operators.
//
// Constraint sets are YAML or JSON:
//
//	name: benchmark-high
//	constraints:
//	  - name: Acceleration.webgl.webgl2-supported
//	    value: "true"
//
// Usage:
//
//	set, err := validator.LoadConstraints("high.yaml")
//	snap, err := snapshotter.Load("snap.json")
//	result, err := validator.New(validator.WithVersion(v)).Validate(ctx, set, snap)
//
// Constraints that cannot be evaluated (unknown path, missing reading,
// malformed expression) are skipped, and the overall status is "partial"
// when nothing failed but something was skipped.
package validator
