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

// Package profile provides a declarative environment profile and a
// platform.Provider that serves it.
//
// Profiles are the wire format of client capability reports posted to the
// API server and the input of the CLI. A handful of profiles ship with
// envprobe and are addressed as builtin:<name>:
//
//	p, err := profile.Load("builtin:chrome-desktop")
//	if err != nil {
//		return err
//	}
//	pr := probe.New(profile.NewProvider(*p))
//
// A Provider keeps its own fullscreen state so toggling is observable, and
// counts released rendering contexts.
package profile
