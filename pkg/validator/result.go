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
	"time"

	"github.com/NVIDIA/envprobe/pkg/header"
)

// ValidationStatus is the overall validation outcome.
type ValidationStatus string

const (
	ValidationStatusPass ValidationStatus = "pass"
	ValidationStatusFail ValidationStatus = "fail"

	// ValidationStatusPartial means nothing failed but some constraints were skipped.
	ValidationStatusPartial ValidationStatus = "partial"
)

// ConstraintStatus is the outcome of a single constraint.
type ConstraintStatus string

const (
	ConstraintStatusPassed  ConstraintStatus = "passed"
	ConstraintStatusFailed  ConstraintStatus = "failed"
	ConstraintStatusSkipped ConstraintStatus = "skipped"
)

// ValidationResult is the complete validation outcome.
type ValidationResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// ConstraintSet names the set that was evaluated.
	ConstraintSet string `json:"constraintSet" yaml:"constraintSet"`

	// SnapshotSource is the path, URI or profile the snapshot came from.
	SnapshotSource string `json:"snapshotSource,omitempty" yaml:"snapshotSource,omitempty"`

	Summary ValidationSummary      `json:"summary" yaml:"summary"`
	Results []ConstraintValidation `json:"results" yaml:"results"`
}

// ValidationSummary holds aggregate counts.
type ValidationSummary struct {
	Passed   int              `json:"passed" yaml:"passed"`
	Failed   int              `json:"failed" yaml:"failed"`
	Skipped  int              `json:"skipped" yaml:"skipped"`
	Total    int              `json:"total" yaml:"total"`
	Status   ValidationStatus `json:"status" yaml:"status"`
	Duration time.Duration    `json:"duration" yaml:"duration"`
}

// ConstraintValidation is the result of one constraint.
type ConstraintValidation struct {
	// Name is the measurement path, e.g. "Browser.identity.version".
	Name string `json:"name" yaml:"name"`

	// Expected is the constraint expression, e.g. ">= 120".
	Expected string `json:"expected" yaml:"expected"`

	// Actual is the reading found in the snapshot.
	Actual string `json:"actual" yaml:"actual"`

	Status  ConstraintStatus `json:"status" yaml:"status"`
	Message string           `json:"message,omitempty" yaml:"message,omitempty"`
}

// NewValidationResult returns a result with initialized slices.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Results: make([]ConstraintValidation, 0),
	}
}

// Failed reports whether any constraint failed.
func (r *ValidationResult) Failed() bool {
	return r.Summary.Status == ValidationStatusFail
}
