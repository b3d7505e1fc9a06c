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

package validator

import (
	"github.com/NVIDIA/envprobe/pkg/errors"
	"github.com/NVIDIA/envprobe/pkg/serializer"
)

// Constraint pairs a measurement path with an expected-value expression,
// e.g. {Name: "Acceleration.webgl.max-texture-size", Value: ">= 4096"}.
type Constraint struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// ConstraintSet is a named list of constraints as read from YAML or JSON.
type ConstraintSet struct {
	Name        string       `json:"name,omitempty" yaml:"name,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Constraints []Constraint `json:"constraints" yaml:"constraints"`
}

// DefaultConstraintSetName names the set returned by DefaultConstraints.
const DefaultConstraintSetName = "minimum-requirements"

// DefaultConstraints mirrors the probe's minimum requirements with a few
// benchmark-quality thresholds on top.
func DefaultConstraints() *ConstraintSet {
	return &ConstraintSet{
		Name:        DefaultConstraintSetName,
		Description: "Environment suitable for running the gaming benchmark",
		Constraints: []Constraint{
			{Name: "Acceleration.webgl.supported", Value: "true"},
			{Name: "Acceleration.webgl.hardware-accelerated", Value: "true"},
			{Name: "Acceleration.webgl.max-texture-size", Value: ">= 4096"},
			{Name: "Platform.navigator.cpu-cores", Value: ">= 2"},
			{Name: "Network.connection.slow", Value: "false"},
		},
	}
}

// LoadConstraints reads a constraint set from a file path or http(s) URL.
// An empty path returns DefaultConstraints.
func LoadConstraints(path string) (*ConstraintSet, error) {
	if path == "" {
		return DefaultConstraints(), nil
	}
	set, err := serializer.FromFile[ConstraintSet](path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"failed to load constraints", err, map[string]any{"path": path})
	}
	if len(set.Constraints) == 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"constraint set is empty", map[string]any{"path": path})
	}
	return set, nil
}
