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
	"strconv"
	"strings"

	"github.com/NVIDIA/envprobe/pkg/errors"
	"github.com/NVIDIA/envprobe/pkg/measurement"
	"github.com/NVIDIA/envprobe/pkg/version"
)

// Operator is a comparison operator in a constraint expression.
type Operator string

const (
	OperatorGTE Operator = ">="
	OperatorLTE Operator = "<="
	OperatorGT  Operator = ">"
	OperatorLT  Operator = "<"
	OperatorEQ  Operator = "=="
	OperatorNE  Operator = "!="

	// OperatorExact is the absent operator: exact match.
	OperatorExact Operator = ""
)

// operators are matched longest first so ">=" is not read as ">".
var operators = []Operator{OperatorGTE, OperatorLTE, OperatorNE, OperatorEQ, OperatorGT, OperatorLT}

func (o Operator) ordering() bool {
	switch o {
	case OperatorGTE, OperatorLTE, OperatorGT, OperatorLT:
		return true
	default:
		return false
	}
}

// ParsedConstraint is a constraint expression split into operator and operand.
type ParsedConstraint struct {
	Operator Operator
	Value    string
}

// ParseConstraintExpression parses expressions such as ">= 120", "!= ie"
// or "true".
func ParseConstraintExpression(expr string) (*ParsedConstraint, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "constraint expression cannot be empty")
	}

	pc := &ParsedConstraint{Operator: OperatorExact, Value: expr}
	for _, op := range operators {
		if rest, ok := strings.CutPrefix(expr, string(op)); ok {
			pc.Operator = op
			pc.Value = strings.TrimSpace(rest)
			break
		}
	}

	if pc.Value == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "constraint value cannot be empty after operator")
	}
	return pc, nil
}

// Evaluate checks the constraint against a reading. Numeric readings are
// compared as numbers, booleans by value, and strings as versions for the
// ordering operators (or for equality when both sides look like versions),
// falling back to exact string comparison.
func (pc *ParsedConstraint) Evaluate(actual measurement.Reading) (bool, error) {
	if actual == nil {
		return false, errors.New(errors.ErrCodeInvalidRequest, "reading is nil")
	}
	switch v := actual.Any().(type) {
	case int:
		return pc.evaluateNumber(float64(v))
	case int64:
		return pc.evaluateNumber(float64(v))
	case float64:
		return pc.evaluateNumber(v)
	case bool:
		return pc.evaluateBool(v)
	default:
		return pc.evaluateString(strings.TrimSpace(actual.String()))
	}
}

func (pc *ParsedConstraint) evaluateNumber(actual float64) (bool, error) {
	expected, err := strconv.ParseFloat(pc.Value, 64)
	if err != nil {
		return false, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"cannot parse expected number", err, map[string]any{"value": pc.Value})
	}
	return compare(pc.Operator, cmpFloat(actual, expected)), nil
}

func (pc *ParsedConstraint) evaluateBool(actual bool) (bool, error) {
	if pc.Operator.ordering() {
		return false, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"ordering operator not applicable to boolean", map[string]any{"operator": pc.Operator})
	}
	expected, err := strconv.ParseBool(pc.Value)
	if err != nil {
		return false, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"cannot parse expected boolean", err, map[string]any{"value": pc.Value})
	}
	if pc.Operator == OperatorNE {
		return actual != expected, nil
	}
	return actual == expected, nil
}

func (pc *ParsedConstraint) evaluateString(actual string) (bool, error) {
	if pc.Operator.ordering() {
		expectedVer, err := version.ParseVersion(pc.Value)
		if err != nil {
			return false, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"cannot parse expected version", err, map[string]any{"version": pc.Value})
		}
		actualVer, err := version.ParseVersion(actual)
		if err != nil {
			return false, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"cannot parse actual version", err, map[string]any{"version": actual})
		}
		return compare(pc.Operator, actualVer.Compare(expectedVer)), nil
	}

	equal := actual == pc.Value
	if pc.Operator != OperatorExact && !equal {
		if ev, err := version.ParseVersion(pc.Value); err == nil {
			if av, err := version.ParseVersion(actual); err == nil {
				equal = av.Compare(ev) == 0
			}
		}
	}
	if pc.Operator == OperatorNE {
		return !equal, nil
	}
	return equal, nil
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compare(op Operator, cmp int) bool {
	switch op {
	case OperatorGTE:
		return cmp >= 0
	case OperatorGT:
		return cmp > 0
	case OperatorLTE:
		return cmp <= 0
	case OperatorLT:
		return cmp < 0
	case OperatorNE:
		return cmp != 0
	default:
		return cmp == 0
	}
}
