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

package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NVIDIA/envprobe/pkg/platform"
	"github.com/NVIDIA/envprobe/pkg/platform/profile"
)

func TestEvaluateMatchesIndividualQueries(t *testing.T) {
	software := desktopProfile()
	software.UserAgent = uaFirefox
	software.Graphics.UnmaskedRenderer = "llvmpipe (LLVM 15.0.7, 256 bits)"

	noWebGL := desktopProfile()
	noWebGL.Graphics = profile.Graphics{}

	tests := map[string]profile.Profile{
		"gpu":      desktopProfile(),
		"software": software,
		"no webgl": noWebGL,
	}
	for name, prof := range tests {
		t.Run(name, func(t *testing.T) {
			p := newProbe(newFake(prof))
			ev := p.Evaluate()

			assert.Equal(t, p.GetSystemInfo(), ev.System)
			assert.Equal(t, p.DetectEnvironmentIssues(), ev.Issues)
			assert.Equal(t, p.MeetsMinimumRequirements(), ev.MeetsMinimumRequirements)
			assert.Equal(t, ev.Acceleration.Info, ev.System.Acceleration)
		})
	}
}

func TestEvaluateSingleAccelerationReading(t *testing.T) {
	gpu := profile.NewProvider(desktopProfile())
	switched := desktopProfile()
	switched.Graphics.UnmaskedRenderer = "llvmpipe (LLVM 15.0.7, 256 bits)"
	software := profile.NewProvider(switched)

	// the driver changes after the first WebGL context
	f := newFake(desktopProfile())
	kinds := map[platform.ContextKind]int{}
	f.newContext = func(kind platform.ContextKind) (platform.GLContext, error) {
		kinds[kind]++
		if kinds[platform.ContextWebGL] > 1 {
			return software.NewContext(kind)
		}
		return gpu.NewContext(kind)
	}

	ev := newProbe(f).Evaluate()

	assert.Equal(t, 1, kinds[platform.ContextWebGL])
	assert.Equal(t, 1, kinds[platform.ContextWebGL2])
	assert.Equal(t, OutcomeOK, ev.Acceleration.Outcome)
	assert.True(t, ev.System.Acceleration.HardwareAccelerated)
	assert.True(t, ev.MeetsMinimumRequirements)
	for _, i := range ev.Issues {
		assert.NotEqual(t, CodeNoHardwareAcceleration, i.Code)
	}
}
