package license

import (
	"encoding/json"
	"fmt"
	"strings"

	errs "github.com/matzehuels/noticegen/pkg/errors"
)

// Licenses is the "licenses" value of a license-checker entry, which is
// either a single SPDX expression or a list of them. Exactly one of the
// two forms is set after decoding.
type Licenses struct {
	Single   string
	Multiple []string
	multi    bool
}

// SingleLicense returns a Licenses holding one license string.
func SingleLicense(s string) Licenses { return Licenses{Single: s} }

// MultipleLicenses returns a Licenses holding a list of license strings.
func MultipleLicenses(v ...string) Licenses { return Licenses{Multiple: v, multi: true} }

// IsMultiple reports whether the list form was decoded.
func (l Licenses) IsMultiple() bool { return l.multi }

// String returns the single license verbatim, or the list joined by ","
// without spaces.
func (l Licenses) String() string {
	if l.multi {
		return strings.Join(l.Multiple, ",")
	}
	return l.Single
}

// UnmarshalJSON resolves the string-or-list form structurally.
func (l *Licenses) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = SingleLicense(s)
		return nil
	}
	var v []string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("licenses: want a string or a list of strings, got %s", data)
	}
	*l = MultipleLicenses(v...)
	return nil
}

// MarshalJSON writes the form that was decoded.
func (l Licenses) MarshalJSON() ([]byte, error) {
	if l.multi {
		return json.Marshal(l.Multiple)
	}
	return json.Marshal(l.Single)
}

// Entry is the value of one "name@version" key in license-checker output.
// license-checker itself writes licenseFile; license_file is accepted as well.
type Entry struct {
	Licenses       *Licenses `json:"licenses,omitempty"`
	Repository     *string   `json:"repository,omitempty"`
	Publisher      *string   `json:"publisher,omitempty"`
	Email          *string   `json:"email,omitempty"`
	LicenseFile    *string   `json:"license_file,omitempty"`
	LicenseFileAlt *string   `json:"licenseFile,omitempty"`
}

func (e Entry) licenseFile() *string {
	if e.LicenseFile != nil {
		return e.LicenseFile
	}
	return e.LicenseFileAlt
}

// SplitKey splits a license-checker key into package name and version.
// Scoped names keep their leading "@":
//
//	SplitKey("@scope/pkg@1.2.3") // "@scope/pkg", "1.2.3"
//	SplitKey("plainpkg@2.0.0")   // "plainpkg", "2.0.0"
//
// A key without a version separator is a FORMAT_PARSE error.
func SplitKey(key string) (name, version string, err error) {
	scoped := strings.HasPrefix(key, "@")
	rest := strings.TrimPrefix(key, "@")
	name, version, ok := strings.Cut(rest, "@")
	if !ok {
		return "", "", errs.New(errs.ErrCodeFormatParse, "key %q has no name@version separator", key)
	}
	if scoped {
		name = "@" + name
	}
	return name, version, nil
}

// Authors builds the authors string from a publisher and an email:
// "publisher <email>", "publisher", "<email>" or "".
func Authors(publisher, email *string) string {
	switch {
	case publisher != nil && email != nil:
		return fmt.Sprintf("%s <%s>", *publisher, *email)
	case publisher != nil:
		return *publisher
	case email != nil:
		return fmt.Sprintf("<%s>", *email)
	default:
		return ""
	}
}

// Normalize converts license-checker entries into records. The result
// follows map iteration order, so callers sort it before use.
func Normalize(entries map[string]Entry) ([]Record, error) {
	records := make([]Record, 0, len(entries))
	for key, e := range entries {
		name, version, err := SplitKey(key)
		if err != nil {
			return nil, err
		}
		r := Record{
			Name:        name,
			Version:     version,
			Authors:     Authors(e.Publisher, e.Email),
			Repository:  e.Repository,
			LicenseFile: e.licenseFile(),
		}
		if e.Licenses != nil {
			r.License = Ptr(e.Licenses.String())
		}
		records = append(records, r)
	}
	return records, nil
}
