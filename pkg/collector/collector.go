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

package collector

import (
	"context"

	"github.com/NVIDIA/envprobe/pkg/measurement"
)

// Collector gathers one category of environment readings.
type Collector interface {
	Collect(ctx context.Context) (*measurement.Measurement, error)
}

// Func adapts a function to the Collector interface.
type Func func(ctx context.Context) (*measurement.Measurement, error)

// Collect calls f.
func (f Func) Collect(ctx context.Context) (*measurement.Measurement, error) {
	return f(ctx)
}
