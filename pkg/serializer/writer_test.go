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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type stringerReading struct{ v int }

func (s stringerReading) String() string { return "reading" }

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{{Name: "a", Value: 1}, {Name: "b", Value: 2}}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 || result[1].Value != 2 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	if err := writer.Serialize(context.Background(), testConfig{Name: "a", Value: 7}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testConfig
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if result.Value != 7 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := struct {
		Browser struct{ Name string }
		Cores   int
		Langs   []string
		Empty   []string
		Reading any
	}{Cores: 8, Langs: []string{"en-US"}, Reading: stringerReading{v: 1}}
	data.Browser.Name = "Chrome"

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"FIELD", "Browser.Name", "Chrome", "Cores", "Langs.[0]", "en-US", "Empty", "[]", "Reading"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriter_SerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatTable, &buf).Serialize(context.Background(), struct{}{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "<empty>" {
		t.Errorf("expected <empty>, got %q", buf.String())
	}
}

func TestWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(Format("xml"), &buf).Serialize(context.Background(), testConfig{Name: "x"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	if err := NewWriter(FormatJSON, &buf).Serialize(ctx, testConfig{}); err == nil {
		t.Fatal("expected error for canceled context")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("empty path is stdout", func(t *testing.T) {
		if _, ok := NewFileWriterOrStdout(FormatJSON, "  ").(*Writer); !ok {
			t.Error("expected *Writer")
		}
	})

	t.Run("url is uploader", func(t *testing.T) {
		if _, ok := NewFileWriterOrStdout(FormatJSON, "https://example.com/in").(*HTTPWriter); !ok {
			t.Error("expected *HTTPWriter")
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.yaml")
		s := NewFileWriterOrStdout(FormatYAML, path)
		if err := s.Serialize(context.Background(), testConfig{Name: "f", Value: 3}); err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		if c, ok := s.(Closer); ok {
			if err := c.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}
			if err := c.Close(); err != nil {
				t.Fatalf("second Close failed: %v", err)
			}
		}
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(b), "name: f") {
			t.Errorf("unexpected file content: %s", b)
		}
	})
}

func TestFormat(t *testing.T) {
	for _, f := range SupportedFormats() {
		if Format(f).IsUnknown() {
			t.Errorf("%s should be known", f)
		}
	}
	if !Format("xml").IsUnknown() {
		t.Error("xml should be unknown")
	}
	if FormatYAML.ContentType() != "application/yaml" || FormatJSON.ContentType() != "application/json" {
		t.Error("unexpected content types")
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"profile.json", FormatJSON},
		{"profile.YAML", FormatYAML},
		{"profile.yml", FormatYAML},
		{"out.table", FormatTable},
		{"out.txt", FormatTable},
		{"https://example.com/p.yaml?rev=2", FormatYAML},
		{"noext", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}
