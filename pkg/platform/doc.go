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

// Package platform defines the capability interfaces an environment probe
// consults: client identity, fullscreen document API, rendering context
// factory, screen and viewport geometry, touch signals, network information
// and navigator facts.
//
// Implementations live in subpackages:
//
//   - profile: a declarative environment profile (YAML or JSON)
//   - headers: facts derivable from an HTTP request
//   - host: native host facts via gopsutil
//   - browser: a live browser provider for js/wasm builds
//
// Composite and Override combine parts of several providers.
package platform
