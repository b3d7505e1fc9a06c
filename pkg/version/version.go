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
	"fmt"
	"strconv"
	"strings"
)

// MaxComponents is the number of numeric components a version may carry,
// as in browser builds such as "120.0.6099.109".
const MaxComponents = 4

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 4 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNegativeComponent = errors.New("version component cannot be negative")
)

// Version is a dotted numeric version of one to four components.
// Precision records how many components were given and bounds comparisons,
// so "120" matches any 120.x build.
type Version struct {
	Major int `json:"major,omitempty" yaml:"major,omitempty"`
	Minor int `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch int `json:"patch,omitempty" yaml:"patch,omitempty"`
	Build int `json:"build,omitempty" yaml:"build,omitempty"`

	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`

	// Extras holds a trailing pre-release or build suffix such as "-beta" or "+ios".
	Extras string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// NewVersion returns a three-component version.
func NewVersion(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch, Precision: 3}
}

func (v Version) components() [MaxComponents]int {
	return [MaxComponents]int{v.Major, v.Minor, v.Patch, v.Build}
}

// String formats the significant components. Extras are not included.
func (v Version) String() string {
	c := v.components()
	n := v.Precision
	if n < 1 || n > MaxComponents {
		n = 3
	}
	parts := make([]string, n)
	for i := range n {
		parts[i] = strconv.Itoa(c[i])
	}
	return strings.Join(parts, ".")
}

// ParseVersion parses "1", "1.2", "1.2.3" or "1.2.3.4" with an optional
// "v" prefix. Anything after a '-' or '+' that follows a digit is kept in
// Extras.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}
	s = strings.TrimPrefix(s, "v")

	var v Version
	main := s
	for i := 1; i < len(s); i++ {
		if (s[i] == '-' || s[i] == '+') && s[i-1] >= '0' && s[i-1] <= '9' {
			main, v.Extras = s[:i], s[i:]
			break
		}
	}

	parts := strings.Split(main, ".")
	if len(parts) > MaxComponents {
		return Version{}, ErrTooManyComponents
	}

	var c [MaxComponents]int
	for i, part := range parts {
		if part == "" {
			return Version{}, fmt.Errorf("%w: empty component", ErrNonNumeric)
		}
		num, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		if num < 0 {
			return Version{}, fmt.Errorf("%w: %d", ErrNegativeComponent, num)
		}
		c[i] = num
	}

	v.Major, v.Minor, v.Patch, v.Build = c[0], c[1], c[2], c[3]
	v.Precision = len(parts)
	return v, nil
}

// MustParseVersion is ParseVersion for literals; it panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseVersion: %v", err))
	}
	return v
}

// Compare returns -1, 0 or 1 comparing v to other over the lower of the
// two precisions.
func (v Version) Compare(other Version) int {
	n := min(v.Precision, other.Precision)
	if n < 1 {
		n = MaxComponents
	}
	a, b := v.components(), other.components()
	for i := range n {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// EqualsOrNewer reports whether v >= other within v's precision.
func (v Version) EqualsOrNewer(other Version) bool {
	return v.Compare(other) >= 0
}

// IsNewer reports whether v > other within v's precision.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}

// Equals reports whether all four components match, ignoring precision.
func (v Version) Equals(other Version) bool {
	return v.components() == other.components()
}

// IsValid reports whether components are non-negative and precision is 1-4.
func (v Version) IsValid() bool {
	for _, c := range v.components() {
		if c < 0 {
			return false
		}
	}
	return v.Precision >= 1 && v.Precision <= MaxComponents
}
