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

package version

import (
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr error
	}{
		{"120", Version{Major: 120, Precision: 1}, nil},
		{"v1.2", Version{Major: 1, Minor: 2, Precision: 2}, nil},
		{"17.2.1", Version{Major: 17, Minor: 2, Patch: 1, Precision: 3}, nil},
		{"120.0.6099.109", Version{Major: 120, Patch: 6099, Build: 109, Precision: 4}, nil},
		{"17.2-beta.1", Version{Major: 17, Minor: 2, Precision: 2, Extras: "-beta.1"}, nil},
		{"", Version{}, ErrEmptyVersion},
		{"1.2.3.4.5", Version{}, ErrTooManyComponents},
		{"1..2", Version{}, ErrNonNumeric},
		{"a.b", Version{}, ErrNonNumeric},
		{"-1", Version{}, ErrNegativeComponent},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVersion(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseVersion(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVersion(%q) = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := map[string]string{
		"120":            "120",
		"1.2":            "1.2",
		"v1.2.3-rc1":     "1.2.3",
		"120.0.6099.109": "120.0.6099.109",
	}
	for in, want := range tests {
		if got := MustParseVersion(in).String(); got != want {
			t.Errorf("String(%q) = %q, want %q", in, got, want)
		}
	}
	if got := (Version{Major: 1}).String(); got != "1.0.0" {
		t.Errorf("zero precision String() = %q, want 1.0.0", got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"120.0.6099.109", "120", 0},
		{"120.0.6099.109", "121", -1},
		{"120.0.6099.109", "120.0.6099.71", 1},
		{"17.2", "17.10", -1},
		{"11", "11.0", 0},
		{"1.2.3", "1.2.3", 0},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			a, b := MustParseVersion(tt.a), MustParseVersion(tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := b.Compare(a); got != -tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestPredicates(t *testing.T) {
	v := MustParseVersion("121.0.2277.83")
	if !v.EqualsOrNewer(MustParseVersion("120")) {
		t.Error("121 should satisfy >= 120")
	}
	if !v.IsNewer(MustParseVersion("120.5")) {
		t.Error("121.0 should be newer than 120.5")
	}
	if v.IsNewer(MustParseVersion("121")) {
		t.Error("121.x should not be newer than 121")
	}
	if v.Equals(MustParseVersion("121")) {
		t.Error("Equals ignores precision")
	}
	if (Version{Major: 1, Precision: 5}).IsValid() {
		t.Error("precision 5 should be invalid")
	}
	if (Version{Major: -1, Precision: 1}).IsValid() {
		t.Error("negative major should be invalid")
	}
}

func TestMustParseVersionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParseVersion("x")
}
