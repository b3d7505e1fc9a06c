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

package measurement

// Fields holds the readings of one subtype in literal form. A nil value
// leaves its key out, so facts that are not available can be passed
// through without branching at the call site.
type Fields map[string]any

// NewSubtype returns a Subtype named name holding fields. Readings are
// stored as given; float64 values keep their type; everything else goes
// through ToReading.
func NewSubtype(name string, fields Fields) Subtype {
	data := make(map[string]Reading, len(fields))
	for key, v := range fields {
		switch val := v.(type) {
		case nil:
			continue
		case Reading:
			data[key] = val
		case float64:
			data[key] = Float64(val)
		default:
			data[key] = ToReading(val)
		}
	}
	return Subtype{Name: name, Data: data}
}

// NonEmpty returns s, or nil when s is blank.
func NonEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// ErrorText returns err's message, or nil when err is nil.
func ErrorText(err error) any {
	if err == nil {
		return nil
	}
	return err.Error()
}

// New returns a Measurement of type t with subtypes in the given order.
func New(t Type, subtypes ...Subtype) *Measurement {
	return &Measurement{Type: t, Subtypes: subtypes}
}
