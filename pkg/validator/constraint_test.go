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
	"testing"

	"github.com/NVIDIA/envprobe/pkg/measurement"
)

func TestParseConstraintExpression(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantOp      Operator
		wantValue   string
		expectError bool
	}{
		{name: "greater or equal", expression: ">= 120", wantOp: OperatorGTE, wantValue: "120"},
		{name: "less or equal", expression: "<= 17.2", wantOp: OperatorLTE, wantValue: "17.2"},
		{name: "greater than", expression: "> 4096", wantOp: OperatorGT, wantValue: "4096"},
		{name: "less than", expression: "< 2.0", wantOp: OperatorLT, wantValue: "2.0"},
		{name: "equal op", expression: "== Chrome", wantOp: OperatorEQ, wantValue: "Chrome"},
		{name: "not equal", expression: "!= Internet Explorer", wantOp: OperatorNE, wantValue: "Internet Explorer"},
		{name: "exact", expression: "true", wantOp: OperatorExact, wantValue: "true"},
		{name: "no space", expression: ">=2", wantOp: OperatorGTE, wantValue: "2"},
		{name: "padded", expression: "  >=   8  ", wantOp: OperatorGTE, wantValue: "8"},
		{name: "empty", expression: "", expectError: true},
		{name: "only spaces", expression: "   ", expectError: true},
		{name: "operator without value", expression: ">=", expectError: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc, err := ParseConstraintExpression(tt.expression)
			if tt.expectError {
				if err == nil {
					t.Errorf("ParseConstraintExpression(%q) expected error", tt.expression)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseConstraintExpression(%q) = %v", tt.expression, err)
			}
			if pc.Operator != tt.wantOp || pc.Value != tt.wantValue {
				t.Errorf("got {%q %q}, want {%q %q}", pc.Operator, pc.Value, tt.wantOp, tt.wantValue)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		actual  measurement.Reading
		want    bool
		wantErr bool
	}{
		{"int gte pass", ">= 4096", measurement.Int(16384), true, false},
		{"int gte fail", ">= 4096", measurement.Int(2048), false, false},
		{"int exact", "16", measurement.Int(16), true, false},
		{"float compares numerically", ">= 1.25", measurement.Float64(1.5), true, false},
		{"float lt", "< 1", measurement.Float64(0.5), true, false},
		{"int64 ne", "!= 0", measurement.Int64(3), true, false},
		{"number with bad operand", ">= many", measurement.Int(3), false, true},
		{"bool exact", "true", measurement.Bool(true), true, false},
		{"bool ne", "!= true", measurement.Bool(false), true, false},
		{"bool mismatch", "== false", measurement.Bool(true), false, false},
		{"bool ordering", ">= true", measurement.Bool(true), false, true},
		{"bool bad operand", "yes", measurement.Bool(true), false, true},
		{"version gte", ">= 120", measurement.Str("120.0.6099.109"), true, false},
		{"version lt", "< 17.10", measurement.Str("17.2"), true, false},
		{"version unparseable", ">= 120", measurement.Str(""), false, true},
		{"string exact", "Chrome", measurement.Str("Chrome"), true, false},
		{"string exact is strict", "17", measurement.Str("17.0"), false, false},
		{"version equality", "== 17", measurement.Str("17.2"), true, false},
		{"string ne", "!= Internet Explorer", measurement.Str("Edge"), true, false},
		{"string ne same", "!= Edge", measurement.Str("Edge"), false, false},
		{"nil reading", "true", nil, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc, err := ParseConstraintExpression(tt.expr)
			if err != nil {
				t.Fatal(err)
			}
			got, err := pc.Evaluate(tt.actual)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Evaluate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.actual, got, tt.want)
			}
		})
	}
}
