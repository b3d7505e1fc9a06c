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

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Measurement keys, grouped by the Type that emits them.
const (
	// Browser
	KeyName        = "name"
	KeyVersion     = "version"
	KeyIcon        = "icon"
	KeyRecommended = "recommended"

	// Display
	KeyWidth       = "width"
	KeyHeight      = "height"
	KeyAvailWidth  = "avail-width"
	KeyAvailHeight = "avail-height"
	KeyColorDepth  = "color-depth"
	KeyPixelDepth  = "pixel-depth"
	KeyPixelRatio  = "pixel-ratio"
	KeyOrientation = "orientation"
	KeyFullscreen  = "fullscreen"

	// Acceleration
	KeySupported           = "supported"
	KeyWebGL2Supported     = "webgl2-supported"
	KeyHardwareAccelerated = "hardware-accelerated"
	KeyRenderer            = "renderer"
	KeyVendor              = "vendor"
	KeyMaxTextureSize      = "max-texture-size"
	KeyAntialiasing        = "antialiasing"
	KeyExtensions          = "extensions"
	KeyExtensionCount      = "extension-count"
	KeyOutcome             = "outcome"

	// Device
	KeyTouch  = "touch"
	KeyMobile = "mobile"

	// Network
	KeySlow   = "slow"
	KeyOnline = "online"

	// Platform
	KeyCPUCores       = "cpu-cores"
	KeyMemory         = "memory"
	KeyPlatform       = "platform"
	KeyLanguages      = "languages"
	KeyDoNotTrack     = "do-not-track"
	KeyCookiesEnabled = "cookies-enabled"
)

// Subtype names emitted by the collectors.
const (
	SubtypeIdentity   = "identity"
	SubtypeScreen     = "screen"
	SubtypeState      = "state"
	SubtypeWebGL      = "webgl"
	SubtypeProbe      = "probe"
	SubtypeInput      = "input"
	SubtypeConnection = "connection"
	SubtypeNavigator  = "navigator"
)

// ListSeparator joins list-valued readings such as extensions and languages.
const ListSeparator = ","

// Type is the category of a measurement.
type Type string

// String returns the string representation of the measurement Type.
func (mt Type) String() string {
	return string(mt)
}

const (
	TypeBrowser      Type = "Browser"
	TypeDisplay      Type = "Display"
	TypeAcceleration Type = "Acceleration"
	TypeDevice       Type = "Device"
	TypeNetwork      Type = "Network"
	TypePlatform     Type = "Platform"
)

// Types lists every measurement type in collection order.
var Types = []Type{
	TypeBrowser,
	TypeDisplay,
	TypeAcceleration,
	TypeDevice,
	TypeNetwork,
	TypePlatform,
}

// ParseType parses a measurement type name, case-insensitively.
func ParseType(s string) (Type, bool) {
	for _, mt := range Types {
		if strings.EqualFold(string(mt), s) {
			return mt, true
		}
	}
	return "", false
}

// Measurement is one category of readings split into named subtypes.
type Measurement struct {
	Type     Type      `json:"type" yaml:"type"`
	Subtypes []Subtype `json:"subtypes,omitempty" yaml:"subtypes,omitempty"`
}

// Subtype is a named group of readings.
type Subtype struct {
	Name string             `json:"subtype" yaml:"subtype"`
	Data map[string]Reading `json:"data" yaml:"data"`
}

type rawSubtype struct {
	Name string         `json:"subtype" yaml:"subtype"`
	Data map[string]any `json:"data" yaml:"data"`
}

func (r rawSubtype) into(st *Subtype) {
	st.Name = r.Name
	st.Data = make(map[string]Reading, len(r.Data))
	for k, v := range r.Data {
		st.Data[k] = ToReading(v)
	}
}

// UnmarshalJSON decodes data values into Readings.
func (st *Subtype) UnmarshalJSON(data []byte) error {
	var raw rawSubtype
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw.into(st)
	return nil
}

// UnmarshalYAML decodes data values into Readings.
func (st *Subtype) UnmarshalYAML(node *yaml.Node) error {
	var raw rawSubtype
	if err := node.Decode(&raw); err != nil {
		return err
	}
	raw.into(st)
	return nil
}

// AllowedScalar constrains the values a Reading may hold.
type AllowedScalar interface {
	~int | ~int64 | ~float64 | ~bool | ~string
}

// Reading is a single scalar value of mixed type.
type Reading interface {
	isReading()
	Any() any
	String() string

	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Scalar wraps an allowed scalar type.
type Scalar[T AllowedScalar] struct {
	V T
}

func (Scalar[T]) isReading() {}

// Any returns the wrapped value.
func (s Scalar[T]) Any() any { return s.V }

// String returns the value formatted with %v.
func (s Scalar[T]) String() string {
	return fmt.Sprintf("%v", s.V)
}

// MarshalJSON encodes the bare value.
func (s Scalar[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.V)
}

// MarshalYAML encodes the bare value.
func (s Scalar[T]) MarshalYAML() (any, error) {
	return s.V, nil
}

// UnmarshalJSON decodes a bare value.
func (s *Scalar[T]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &s.V)
}

// UnmarshalYAML decodes a bare value.
func (s *Scalar[T]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&s.V)
}

// ToReading wraps v. Decoded JSON numbers arrive as float64 and are kept
// as integers when they have no fractional part; unsupported types are
// formatted as strings.
func ToReading(v any) Reading {
	switch val := v.(type) {
	case int:
		return Int(val)
	case int64:
		return Int64(val)
	case uint64:
		return Int64(int64(val)) //nolint:gosec // readings never approach the int64 limit
	case float64:
		if val == float64(int64(val)) && val < 1<<53 && val > -(1<<53) {
			return Int(int(val))
		}
		return Float64(val)
	case bool:
		return Bool(val)
	case string:
		return Str(val)
	case []string:
		return List(val)
	case []any:
		parts := make([]string, 0, len(val))
		for _, p := range val {
			parts = append(parts, fmt.Sprintf("%v", p))
		}
		return List(parts)
	default:
		return Str(fmt.Sprintf("%v", val))
	}
}

// Convenience constructors for each allowed scalar type.
func Int(v int) Reading         { return &Scalar[int]{V: v} }
func Int64(v int64) Reading     { return &Scalar[int64]{V: v} }
func Float64(v float64) Reading { return &Scalar[float64]{V: v} }
func Bool(v bool) Reading       { return &Scalar[bool]{V: v} }
func Str(v string) Reading      { return &Scalar[string]{V: v} }

// List stores a list as a single string joined by ListSeparator.
func List(v []string) Reading { return Str(strings.Join(v, ListSeparator)) }

// Validate checks that the measurement has a type and non-empty subtypes.
func (m *Measurement) Validate() error {
	if m.Type == "" {
		return errors.New("measurement type cannot be empty")
	}
	if len(m.Subtypes) == 0 {
		return errors.New("measurement must have at least one subtype")
	}
	for i := range m.Subtypes {
		if err := m.Subtypes[i].Validate(); err != nil {
			return fmt.Errorf("subtype[%d]: %w", i, err)
		}
	}
	return nil
}

// GetSubtype returns the named subtype, or nil.
func (m *Measurement) GetSubtype(name string) *Subtype {
	for i := range m.Subtypes {
		if m.Subtypes[i].Name == name {
			return &m.Subtypes[i]
		}
	}
	return nil
}

// SubtypeNames returns the subtype names in order.
func (m *Measurement) SubtypeNames() []string {
	names := make([]string, len(m.Subtypes))
	for i, st := range m.Subtypes {
		names[i] = st.Name
	}
	return names
}

// Find returns the measurement of type t in ms, or nil.
func Find(ms []*Measurement, t Type) *Measurement {
	for _, m := range ms {
		if m != nil && m.Type == t {
			return m
		}
	}
	return nil
}

// Lookup resolves a "{Type}.{Subtype}.{Key}" path against ms. The key part
// may itself contain dots.
func Lookup(ms []*Measurement, path string) (Reading, error) {
	parts := strings.SplitN(path, ".", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return nil, fmt.Errorf("invalid measurement path %q: expected {Type}.{Subtype}.{Key}", path)
	}
	t, ok := ParseType(parts[0])
	if !ok {
		return nil, fmt.Errorf("unknown measurement type %q", parts[0])
	}
	m := Find(ms, t)
	if m == nil {
		return nil, fmt.Errorf("measurement %s not present", t)
	}
	st := m.GetSubtype(parts[1])
	if st == nil {
		return nil, fmt.Errorf("subtype %s.%s not present", t, parts[1])
	}
	r := st.Get(parts[2])
	if r == nil {
		return nil, fmt.Errorf("key %q not found in %s.%s", parts[2], t, parts[1])
	}
	return r, nil
}

// Validate checks that the subtype carries data.
func (st *Subtype) Validate() error {
	if st.Name == "" {
		return errors.New("subtype name cannot be empty")
	}
	if len(st.Data) == 0 {
		return errors.New("subtype data cannot be empty")
	}
	return nil
}

// Get returns the reading for key, or nil.
func (st *Subtype) Get(key string) Reading {
	return st.Data[key]
}

// GetString returns a string reading.
func (st *Subtype) GetString(key string) (string, error) {
	return get[string](st, key, "a string")
}

// GetBool returns a bool reading.
func (st *Subtype) GetBool(key string) (bool, error) {
	return get[bool](st, key, "a bool")
}

// GetFloat64 returns a numeric reading as float64. Whole numbers decoded
// from JSON or YAML are stored as ints and are accepted here.
func (st *Subtype) GetFloat64(key string) (float64, error) {
	r := st.Data[key]
	if r == nil {
		return 0, fmt.Errorf("key %q not found", key)
	}
	switch v := r.Any().(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("key %q is not a number", key)
	}
}

// GetInt returns an int reading, accepting int64 storage.
func (st *Subtype) GetInt(key string) (int, error) {
	r := st.Data[key]
	if r == nil {
		return 0, fmt.Errorf("key %q not found", key)
	}
	switch v := r.Any().(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("key %q is not an integer", key)
	}
}

// GetList splits a list reading. An empty string is an empty list.
func (st *Subtype) GetList(key string) ([]string, error) {
	s, err := st.GetString(key)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return []string{}, nil
	}
	return strings.Split(s, ListSeparator), nil
}

func get[T any](st *Subtype, key, kind string) (T, error) {
	var zero T
	r := st.Data[key]
	if r == nil {
		return zero, fmt.Errorf("key %q not found", key)
	}
	v, ok := r.Any().(T)
	if !ok {
		return zero, fmt.Errorf("key %q is not %s", key, kind)
	}
	return v, nil
}
