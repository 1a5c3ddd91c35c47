package license

import (
	"cmp"
	"slices"
)

// Record is one normalized third-party license entry. It is the element
// type of the cargo-license array shape and the target of [Normalize].
//
// Optional fields are nil when absent from the input; templates render them
// as the empty string.
type Record struct {
	Name        string  `json:"name"`
	Version     string  `json:"version"`
	Authors     string  `json:"authors"`
	Repository  *string `json:"repository"`
	License     *string `json:"license"`
	LicenseFile *string `json:"license_file"`
	Description *string `json:"description"`
}

// Equal reports whether r and other identify the same dependency. Only
// Name and Version take part; the optional metadata may differ between
// sources for the same package.
func (r Record) Equal(other Record) bool {
	return r.Name == other.Name && r.Version == other.Version
}

// ID returns the "name@version" identifier of the record.
func (r Record) ID() string {
	return r.Name + "@" + r.Version
}

// Compare orders records by Name, then by Version.
func Compare(a, b Record) int {
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.Version, b.Version)
}

// Sort sorts records in place using [Compare]. The sort is stable, so
// records that compare equal keep their input order.
func Sort(records []Record) {
	slices.SortStableFunc(records, Compare)
}

// Value dereferences an optional field, returning "" for nil.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Ptr returns a pointer to s. Handy for building records by hand.
func Ptr(s string) *string {
	return &s
}
