package license

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	errs "github.com/matzehuels/noticegen/pkg/errors"
)

func TestRecord_Equal(t *testing.T) {
	a := Record{Name: "serde", Version: "1.0.0", Authors: "A", License: Ptr("MIT")}
	b := Record{Name: "serde", Version: "1.0.0", Authors: "B", Repository: Ptr("https://example.com")}
	c := Record{Name: "serde", Version: "1.0.1", Authors: "A", License: Ptr("MIT")}

	if !a.Equal(b) {
		t.Error("records with the same name and version should be equal")
	}
	if a.Equal(c) {
		t.Error("records with different versions should not be equal")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Record
		want int
	}{
		{"name orders first", Record{Name: "a", Version: "9"}, Record{Name: "b", Version: "1"}, -1},
		{"version breaks ties", Record{Name: "a", Version: "2.0.0"}, Record{Name: "a", Version: "1.0.0"}, 1},
		{"equal", Record{Name: "a", Version: "1"}, Record{Name: "a", Version: "1"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSort(t *testing.T) {
	records := []Record{
		{Name: "zlib", Version: "1.0.0"},
		{Name: "@scope/pkg", Version: "2.0.0"},
		{Name: "anyhow", Version: "1.0.1"},
		{Name: "anyhow", Version: "1.0.0"},
	}
	Sort(records)

	var got []string
	for _, r := range records {
		got = append(got, r.ID())
	}
	want := []string{"@scope/pkg@2.0.0", "anyhow@1.0.0", "anyhow@1.0.1", "zlib@1.0.0"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitKey(t *testing.T) {
	tests := []struct {
		key         string
		wantName    string
		wantVersion string
		wantErr     bool
	}{
		{"@scope/pkg@1.2.3", "@scope/pkg", "1.2.3", false},
		{"plainpkg@2.0.0", "plainpkg", "2.0.0", false},
		{"pkg@1.0.0@beta", "pkg", "1.0.0@beta", false},
		{"pkg@", "pkg", "", false},
		{"noversion", "", "", true},
		{"@scope/noversion", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			name, version, err := SplitKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SplitKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errs.Is(err, errs.ErrCodeFormatParse) {
					t.Errorf("error code = %s, want %s", errs.GetCode(err), errs.ErrCodeFormatParse)
				}
				return
			}
			if name != tt.wantName || version != tt.wantVersion {
				t.Errorf("SplitKey(%q) = (%q, %q), want (%q, %q)", tt.key, name, version, tt.wantName, tt.wantVersion)
			}
		})
	}
}

func TestAuthors(t *testing.T) {
	tests := []struct {
		name      string
		publisher *string
		email     *string
		want      string
	}{
		{"both", Ptr("Jane"), Ptr("jane@example.com"), "Jane <jane@example.com>"},
		{"publisher only", Ptr("Jane"), nil, "Jane"},
		{"email only", nil, Ptr("jane@example.com"), "<jane@example.com>"},
		{"neither", nil, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Authors(tt.publisher, tt.email); got != tt.want {
				t.Errorf("Authors() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLicenses_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		want     string
		multiple bool
		wantErr  bool
	}{
		{`"MIT"`, "MIT", false, false},
		{`["MIT","Apache-2.0"]`, "MIT,Apache-2.0", true, false},
		{`[]`, "", true, false},
		{`42`, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var l Licenses
			err := json.Unmarshal([]byte(tt.input), &l)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := l.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if l.IsMultiple() != tt.multiple {
				t.Errorf("IsMultiple() = %v, want %v", l.IsMultiple(), tt.multiple)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	multi := MultipleLicenses("MIT", "Apache-2.0")
	single := SingleLicense("ISC")
	entries := map[string]Entry{
		"@scope/pkg@1.2.3": {
			Licenses:   &multi,
			Repository: Ptr("https://github.com/scope/pkg"),
			Publisher:  Ptr("Scope"),
			Email:      Ptr("dev@scope.io"),
		},
		"plainpkg@2.0.0": {
			Licenses:       &single,
			LicenseFileAlt: Ptr("/node_modules/plainpkg/LICENSE"),
		},
		"bare@0.1.0": {},
	}

	records, err := Normalize(entries)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	Sort(records)

	want := []Record{
		{
			Name:       "@scope/pkg",
			Version:    "1.2.3",
			Authors:    "Scope <dev@scope.io>",
			Repository: Ptr("https://github.com/scope/pkg"),
			License:    Ptr("MIT,Apache-2.0"),
		},
		{Name: "bare", Version: "0.1.0"},
		{
			Name:        "plainpkg",
			Version:     "2.0.0",
			License:     Ptr("ISC"),
			LicenseFile: Ptr("/node_modules/plainpkg/LICENSE"),
		},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_BadKey(t *testing.T) {
	_, err := Normalize(map[string]Entry{"nover": {}})
	if !errs.Is(err, errs.ErrCodeFormatParse) {
		t.Errorf("Normalize() error = %v, want FORMAT_PARSE", err)
	}
}
