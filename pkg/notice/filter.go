package notice

import (
	"regexp"

	errs "github.com/matzehuels/noticegen/pkg/errors"
	"github.com/matzehuels/noticegen/pkg/license"
)

// MatchAll is the default pattern for both filters.
const MatchAll = ".*"

// MatchOptions configures record filtering. Empty patterns mean [MatchAll].
type MatchOptions struct {
	Name          string
	License       string
	InvertName    bool
	InvertLicense bool
}

// Matcher decides which records are kept.
type Matcher struct {
	name          *regexp.Regexp
	license       *regexp.Regexp
	invertName    bool
	invertLicense bool
}

// NewMatcher compiles both patterns. A pattern that does not compile is an
// INVALID_PATTERN error naming the offending flag.
func NewMatcher(opts MatchOptions) (*Matcher, error) {
	name, err := compile("--match-name", opts.Name)
	if err != nil {
		return nil, err
	}
	lic, err := compile("--match-license", opts.License)
	if err != nil {
		return nil, err
	}
	return &Matcher{
		name:          name,
		license:       lic,
		invertName:    opts.InvertName,
		invertLicense: opts.InvertLicense,
	}, nil
}

func compile(flag, pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		pattern = MatchAll
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidPattern, err, "%s, a wrong regex pattern: %s", flag, pattern)
	}
	return re, nil
}

// Match reports whether r passes both filters. The license filter is only
// consulted when the name filter passes; an absent license matches as "".
func (m *Matcher) Match(r license.Record) bool {
	if m.name.MatchString(r.Name) == m.invertName {
		return false
	}
	return m.license.MatchString(license.Value(r.License)) != m.invertLicense
}

// Filter returns the records accepted by m, in input order.
func Filter(records []license.Record, m *Matcher) []license.Record {
	kept := make([]license.Record, 0, len(records))
	for _, r := range records {
		if m.Match(r) {
			kept = append(kept, r)
		}
	}
	return kept
}

// Select filters records with m and sorts the survivors.
func Select(records []license.Record, m *Matcher) []license.Record {
	kept := Filter(records, m)
	license.Sort(kept)
	return kept
}
