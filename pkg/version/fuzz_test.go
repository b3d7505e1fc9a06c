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
	"fmt"
	"strconv"
	"testing"
)

// FuzzBrowserVersion feeds four-component browser build numbers, the shape
// extracted from user agents, with an optional channel suffix.
func FuzzBrowserVersion(f *testing.F) {
	f.Add(uint16(120), uint16(0), uint16(6099), uint16(109), "")
	f.Add(uint16(121), uint16(0), uint16(2277), uint16(83), "")
	f.Add(uint16(17), uint16(2), uint16(0), uint16(0), "beta.1")
	f.Add(uint16(0), uint16(0), uint16(0), uint16(0), "ios")
	f.Add(uint16(65535), uint16(1), uint16(2), uint16(3), "-")

	f.Fuzz(func(t *testing.T, major, minor, build, patch uint16, channel string) {
		raw := fmt.Sprintf("%d.%d.%d.%d", major, minor, build, patch)
		numeric := raw
		if channel != "" {
			raw += "-" + channel
		}

		v, err := ParseVersion(raw)
		if err != nil {
			t.Fatalf("ParseVersion(%q) = %v", raw, err)
		}
		want := [MaxComponents]int{int(major), int(minor), int(build), int(patch)}
		if v.components() != want || v.Precision != MaxComponents {
			t.Fatalf("ParseVersion(%q) = %+v", raw, v)
		}
		if channel != "" && v.Extras != "-"+channel {
			t.Errorf("Extras = %q, want %q", v.Extras, "-"+channel)
		}
		if v.String() != numeric {
			t.Errorf("String() = %q, want %q", v.String(), numeric)
		}

		// a major-only constraint matches every build of that major
		floor := MustParseVersion(strconv.Itoa(int(major)))
		if !v.EqualsOrNewer(floor) || v.Compare(floor) != 0 {
			t.Errorf("%q should match constraint %q", raw, floor)
		}
		next := MustParseVersion(strconv.Itoa(int(major) + 1))
		if v.EqualsOrNewer(next) {
			t.Errorf("%q should be older than %q", raw, next)
		}
	})
}

// FuzzParseVersion checks arbitrary input never panics and that accepted
// versions re-parse from their String form.
func FuzzParseVersion(f *testing.F) {
	for _, seed := range []string{"", "v", "120", "v1.2", "1..2", "1.2.3.4.5", "-1", "17.2-beta", "1.2+ios", " 1.2"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		v, err := ParseVersion(input)
		if err != nil {
			return
		}
		if !v.IsValid() {
			t.Fatalf("ParseVersion(%q) returned invalid %+v", input, v)
		}
		again, err := ParseVersion(v.String())
		if err != nil {
			t.Fatalf("re-parsing %q from %q: %v", v.String(), input, err)
		}
		if !v.Equals(again) || v.Precision != again.Precision {
			t.Errorf("round trip of %q: %+v != %+v", input, v, again)
		}
	})
}
