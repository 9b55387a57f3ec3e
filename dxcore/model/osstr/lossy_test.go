/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package osstr_test

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"dirpx.dev/dxstr/dxcore/errors"
	"dirpx.dev/dxstr/dxcore/model/osstr"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestLossy_Text(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantRuns     osstr.Text
		wantBytes    osstr.Text
		wantSubparts osstr.Text
	}{
		{"valid", "plain", "plain", "plain", "plain"},
		{"empty", "", "", "", ""},
		{"single invalid byte", "a\xffb", "a�b", "a�b", "a�b"},
		{"two invalid bytes", "\xff\xfe", "�", "��", "��"},
		{"encoded surrogate", "\xed\xa0\x80", "�", "���", "���"},
		{"truncated four-byte sequence", "\xf0\x90\x80", "�", "���", "�"},
		{"truncated three-byte sequence then ascii", "\xe6\x97A", "�A", "��A", "�A"},
		{"overlong two-byte form", "\xc0\xaf", "�", "��", "��"},
		{"overlong three-byte form", "\xe0\x80\xaf", "�", "���", "���"},
		{"above U+10FFFF", "\xf4\x90\x80\x80", "�", "����", "����"},
		{"truncated prefix before valid rune", "\xf0\x9f\x98é", "�é", "���é", "�é"},
		{"literal sentinel is kept", "�\xff", "��", "��", "��"},
		{"multibyte neighbours", "é\x80ü", "é�ü", "é�ü", "é�ü"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := osstr.ReplaceRuns.Text(tt.raw); got != tt.wantRuns {
				t.Errorf("ReplaceRuns.Text(%q) = %q, want %q", tt.raw, got, tt.wantRuns)
			}
			if got := osstr.ReplaceBytes.Text(tt.raw); got != tt.wantBytes {
				t.Errorf("ReplaceBytes.Text(%q) = %q, want %q", tt.raw, got, tt.wantBytes)
			}
			if got := osstr.ReplaceSubparts.Text(tt.raw); got != tt.wantSubparts {
				t.Errorf("ReplaceSubparts.Text(%q) = %q, want %q", tt.raw, got, tt.wantSubparts)
			}
		})
	}
}

func TestLossy_InvalidPolicyFallsBackToRuns(t *testing.T) {
	if got := osstr.Lossy(99).Text("\xff\xfe"); got != "�" {
		t.Errorf("Lossy(99).Text() = %q, want %q", got, "�")
	}
}

func TestLossy_PathAndEnvString(t *testing.T) {
	p := osstr.NativePath("\xff\xfe/x")
	if got := osstr.ReplaceBytes.PathToText(p); got != "��/x" {
		t.Errorf("ReplaceBytes.PathToText() = %q", got)
	}

	e := osstr.EnvString("k=\xff\xfe")
	if got := osstr.ReplaceBytes.EnvStringToText(e); got != "k=��" {
		t.Errorf("ReplaceBytes.EnvStringToText() = %q", got)
	}
	if got := osstr.ReplaceRuns.EnvStringToText(e); got != osstr.EnvStringToText(e) {
		t.Errorf("ReplaceRuns.EnvStringToText() = %q, want the default policy result", got)
	}
}

func TestLossy_String(t *testing.T) {
	tests := []struct {
		name   string
		policy osstr.Lossy
		want   string
	}{
		{"ReplaceRuns", osstr.ReplaceRuns, "replace-runs"},
		{"ReplaceBytes", osstr.ReplaceBytes, "replace-bytes"},
		{"ReplaceSubparts", osstr.ReplaceSubparts, "replace-subparts"},
		{"Unknown", osstr.Lossy(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.String(); got != tt.want {
				t.Errorf("Lossy.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLossy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    osstr.Lossy
		wantErr bool
	}{
		{"replace-runs", "replace-runs", osstr.ReplaceRuns, false},
		{"ReplaceRuns", "ReplaceRuns", osstr.ReplaceRuns, false},
		{"replace_runs", "replace_runs", osstr.ReplaceRuns, false},
		{"REPLACE_RUNS", "REPLACE_RUNS", osstr.ReplaceRuns, false},

		{"replace-bytes", "replace-bytes", osstr.ReplaceBytes, false},
		{"ReplaceBytes", "ReplaceBytes", osstr.ReplaceBytes, false},
		{"replace_bytes", "replace_bytes", osstr.ReplaceBytes, false},
		{"REPLACE_BYTES", "REPLACE_BYTES", osstr.ReplaceBytes, false},

		{"replace-subparts", "replace-subparts", osstr.ReplaceSubparts, false},
		{"ReplaceSubparts", "ReplaceSubparts", osstr.ReplaceSubparts, false},
		{"replace_subparts", "replace_subparts", osstr.ReplaceSubparts, false},
		{"REPLACE_SUBPARTS", "REPLACE_SUBPARTS", osstr.ReplaceSubparts, false},

		{"empty", "", osstr.ReplaceRuns, true},
		{"invalid", "replace-all", osstr.ReplaceRuns, true},
		{"number", "1", osstr.ReplaceRuns, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := osstr.ParseLossy(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLossy() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				var pe *errors.ParseError
				if !stderrors.As(err, &pe) {
					t.Errorf("ParseLossy() error type = %T, want *errors.ParseError", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseLossy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLossy_Validate(t *testing.T) {
	if err := osstr.ReplaceRuns.Validate(); err != nil {
		t.Errorf("ReplaceRuns.Validate() = %v", err)
	}
	if err := osstr.ReplaceBytes.Validate(); err != nil {
		t.Errorf("ReplaceBytes.Validate() = %v", err)
	}
	if err := osstr.ReplaceSubparts.Validate(); err != nil {
		t.Errorf("ReplaceSubparts.Validate() = %v", err)
	}
	if err := osstr.Lossy(3).Validate(); err == nil {
		t.Error("Lossy(3).Validate() should fail")
	}

	err := osstr.Lossy(-1).Validate()
	var me *errors.MarshalError
	if !stderrors.As(err, &me) {
		t.Fatalf("Lossy(-1).Validate() = %v, want *errors.MarshalError", err)
	}
	if me.Value != -1 {
		t.Errorf("MarshalError.Value = %d, want -1", me.Value)
	}
}

func TestLossy_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		policy  osstr.Lossy
		want    string
		wantErr bool
	}{
		{"ReplaceRuns", osstr.ReplaceRuns, `"replace-runs"`, false},
		{"ReplaceBytes", osstr.ReplaceBytes, `"replace-bytes"`, false},
		{"ReplaceSubparts", osstr.ReplaceSubparts, `"replace-subparts"`, false},
		{"Invalid", osstr.Lossy(99), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.policy)
			if (err != nil) != tt.wantErr {
				t.Errorf("Lossy.MarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("Lossy.MarshalJSON() = %v, want %v", string(got), tt.want)
			}
		})
	}
}

func TestLossy_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    osstr.Lossy
		wantErr bool
	}{
		{"replace-runs string", `"replace-runs"`, osstr.ReplaceRuns, false},
		{"replace-bytes string", `"replace-bytes"`, osstr.ReplaceBytes, false},
		{"snake case string", `"replace_bytes"`, osstr.ReplaceBytes, false},
		{"numeric 0", `0`, osstr.ReplaceRuns, false},
		{"numeric 1", `1`, osstr.ReplaceBytes, false},
		{"numeric 2", `2`, osstr.ReplaceSubparts, false},

		{"unknown string", `"replace-all"`, osstr.ReplaceRuns, true},
		{"numeric out of range", `7`, osstr.ReplaceRuns, true},
		{"boolean", `true`, osstr.ReplaceRuns, true},
		{"broken string", `"replace`, osstr.ReplaceRuns, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got osstr.Lossy
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Errorf("Lossy.UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Lossy.UnmarshalJSON() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLossy_Text_Marshaling(t *testing.T) {
	data, err := osstr.ReplaceBytes.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(data) != "replace-bytes" {
		t.Errorf("MarshalText() = %q, want %q", data, "replace-bytes")
	}

	var l osstr.Lossy
	if err := l.UnmarshalText([]byte("REPLACE_BYTES")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if l != osstr.ReplaceBytes {
		t.Errorf("UnmarshalText() = %v, want %v", l, osstr.ReplaceBytes)
	}

	if _, err := osstr.Lossy(5).MarshalText(); err == nil {
		t.Error("MarshalText() on invalid policy should fail")
	}
}

func TestLossy_MapKey(t *testing.T) {
	counts := map[osstr.Lossy]int{osstr.ReplaceRuns: 1, osstr.ReplaceBytes: 3}

	data, err := json.Marshal(counts)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var decoded map[osstr.Lossy]int
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal(%s) error = %v", data, err)
	}
	if diff := cmp.Diff(counts, decoded); diff != "" {
		t.Errorf("map round trip mismatch (-want +got):\n%s", diff)
	}
}

// settings is a configuration document that selects a policy.
type settings struct {
	Policy osstr.Lossy      `yaml:"policy" json:"policy"`
	Root   osstr.NativePath `yaml:"root" json:"root"`
}

func TestLossy_YAML_Config(t *testing.T) {
	var s settings
	if err := yaml.Unmarshal([]byte("policy: replace-bytes\nroot: /srv/data\n"), &s); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if s.Policy != osstr.ReplaceBytes {
		t.Errorf("Policy = %v, want %v", s.Policy, osstr.ReplaceBytes)
	}
	if s.Root != "/srv/data" {
		t.Errorf("Root = %q, want %q", s.Root, "/srv/data")
	}

	out, err := yaml.Marshal(s)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	var decoded settings
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(s, decoded); diff != "" {
		t.Errorf("YAML round trip mismatch (-want +got):\n%s", diff)
	}

	if err := yaml.Unmarshal([]byte("policy: replace-all\n"), &s); err == nil {
		t.Error("yaml.Unmarshal() with unknown policy should fail")
	}
	if _, err := yaml.Marshal(settings{Policy: osstr.Lossy(9)}); err == nil {
		t.Error("yaml.Marshal() with invalid policy should fail")
	}
}

func TestLossy_ModelMethods(t *testing.T) {
	if got := osstr.ReplaceBytes.TypeName(); got != "Lossy" {
		t.Errorf("TypeName() = %q, want %q", got, "Lossy")
	}
	if got := osstr.ReplaceBytes.Redacted(); got != "replace-bytes" {
		t.Errorf("Redacted() = %q, want %q", got, "replace-bytes")
	}
	if !osstr.ReplaceRuns.IsZero() || osstr.ReplaceBytes.IsZero() {
		t.Error("IsZero() should be true only for ReplaceRuns")
	}
	if !osstr.ReplaceBytes.Equal(osstr.ReplaceBytes) || osstr.ReplaceBytes.Equal(osstr.ReplaceRuns) {
		t.Error("Equal() mismatch")
	}
}
