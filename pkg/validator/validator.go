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
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NVIDIA/envprobe/pkg/errors"
	"github.com/NVIDIA/envprobe/pkg/header"
	"github.com/NVIDIA/envprobe/pkg/measurement"
	"github.com/NVIDIA/envprobe/pkg/snapshotter"
)

// APIVersion is the schema version of validation results.
const APIVersion = "envprobe.nvidia.com/v1alpha1"

// detectedPaths are logged at info level when evaluated, so a validation
// run shows which environment it judged.
var detectedPaths = map[string]string{
	"Browser.identity.name":       "browser",
	"Browser.identity.version":    "browser_version",
	"Acceleration.webgl.renderer": "renderer",
	"Platform.navigator.platform": "platform",
}

// Validator evaluates constraint sets against snapshots.
type Validator struct {
	// Version is the tool version recorded in result headers.
	Version string
}

// Option configures a Validator.
type Option func(*Validator)

// WithVersion sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate evaluates every constraint in set against snap. Constraints whose
// path or expression is invalid, or whose reading is absent, are skipped.
func (v *Validator) Validate(ctx context.Context, set *ConstraintSet, snap *snapshotter.Snapshot) (*ValidationResult, error) {
	start := time.Now()

	if set == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "constraint set cannot be nil")
	}
	if snap == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "snapshot cannot be nil")
	}

	result := NewValidationResult()
	result.Init(header.KindValidationResult, APIVersion, v.Version)
	result.ConstraintSet = set.Name
	result.SnapshotSource = snap.Metadata[snapshotter.MetaProfile]

	for _, c := range set.Constraints {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cv := evaluate(c, snap.Measurements)
		result.Results = append(result.Results, cv)

		switch cv.Status {
		case ConstraintStatusPassed:
			result.Summary.Passed++
		case ConstraintStatusFailed:
			result.Summary.Failed++
		case ConstraintStatusSkipped:
			result.Summary.Skipped++
		}
	}

	result.Summary.Total = len(set.Constraints)
	result.Summary.Duration = time.Since(start)

	switch {
	case result.Summary.Failed > 0:
		result.Summary.Status = ValidationStatusFail
	case result.Summary.Skipped > 0:
		result.Summary.Status = ValidationStatusPartial
	default:
		result.Summary.Status = ValidationStatusPass
	}

	slog.Debug("validation completed",
		"set", set.Name,
		"passed", result.Summary.Passed,
		"failed", result.Summary.Failed,
		"skipped", result.Summary.Skipped,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)

	return result, nil
}

func evaluate(c Constraint, ms []*measurement.Measurement) ConstraintValidation {
	cv := ConstraintValidation{
		Name:     c.Name,
		Expected: c.Value,
	}

	reading, err := measurement.Lookup(ms, c.Name)
	if err != nil {
		cv.Status = ConstraintStatusSkipped
		cv.Message = fmt.Sprintf("value not found in snapshot: %v", err)
		slog.Warn("skipping constraint - value not found",
			"name", c.Name,
			"error", err)
		return cv
	}
	cv.Actual = reading.String()

	if attr, ok := detectedPaths[c.Name]; ok {
		slog.Info("detected environment", attr, cv.Actual)
	}

	parsed, err := ParseConstraintExpression(c.Value)
	if err != nil {
		cv.Status = ConstraintStatusSkipped
		cv.Message = fmt.Sprintf("invalid constraint expression: %v", err)
		slog.Warn("skipping constraint with invalid expression",
			"name", c.Name,
			"expression", c.Value,
			"error", err)
		return cv
	}

	passed, err := parsed.Evaluate(reading)
	switch {
	case err != nil:
		cv.Status = ConstraintStatusFailed
		cv.Message = fmt.Sprintf("evaluation failed: %v", err)
	case passed:
		cv.Status = ConstraintStatusPassed
	default:
		cv.Status = ConstraintStatusFailed
		cv.Message = fmt.Sprintf("expected %s, got %s", c.Value, cv.Actual)
	}

	slog.Debug("constraint evaluated",
		"name", c.Name,
		"expected", c.Value,
		"actual", cv.Actual,
		"status", cv.Status)

	return cv
}
