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

// Package measurement holds typed readings of a client environment in a
// form that serializes flatly and can be addressed by path.
//
// A Measurement has a Type (Browser, Display, Acceleration, Device,
// Network, Platform) and one or more named Subtypes. Each Subtype maps keys
// to Readings, scalar values of int, int64, float64, bool or string.
// Lists are stored as strings joined by ListSeparator.
//
// Build measurements from field literals:
//
//	m := measurement.New(measurement.TypeAcceleration,
//	    measurement.NewSubtype(measurement.SubtypeWebGL, measurement.Fields{
//	        measurement.KeySupported:      true,
//	        measurement.KeyMaxTextureSize: 16384,
//	    }))
//
// Address a single reading across a snapshot with Lookup:
//
//	r, err := measurement.Lookup(ms, "Acceleration.webgl.max-texture-size")
//
// Readings marshal to their bare values in JSON and YAML. Decoding accepts
// the same shape; whole JSON numbers decode as ints.
package measurement
