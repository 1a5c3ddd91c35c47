package notice

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/matzehuels/noticegen/pkg/license"
)

// Placeholder is a literal token in the body template and the record
// field it is replaced with.
type Placeholder struct {
	Token string
	Value func(license.Record) string
}

// Placeholders lists the body tokens in substitution order.
var Placeholders = []Placeholder{
	{"{name}", func(r license.Record) string { return r.Name }},
	{"{version}", func(r license.Record) string { return r.Version }},
	{"{authors}", func(r license.Record) string { return r.Authors }},
	{"{repository}", func(r license.Record) string { return license.Value(r.Repository) }},
	{"{license}", func(r license.Record) string { return license.Value(r.License) }},
	{"{license_file}", func(r license.Record) string { return license.Value(r.LicenseFile) }},
	{"{description}", func(r license.Record) string { return license.Value(r.Description) }},
}

// RenderOptions tweaks field values before substitution.
type RenderOptions struct {
	// EscapeAuthors turns "<" and ">" in authors into "&lt;" and "&gt;".
	EscapeAuthors bool
	// SanitizeDescription strips HTML markup from descriptions.
	SanitizeDescription bool
}

var authorsEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

var (
	descPolicyOnce sync.Once
	descPolicy     *bluemonday.Policy
)

func descriptionSanitizer() *bluemonday.Policy {
	descPolicyOnce.Do(func() {
		descPolicy = bluemonday.StrictPolicy()
	})
	return descPolicy
}

// prepare applies opts to a copy of r.
func prepare(r license.Record, opts RenderOptions) license.Record {
	if opts.EscapeAuthors {
		r.Authors = authorsEscaper.Replace(r.Authors)
	}
	if opts.SanitizeDescription && r.Description != nil {
		cleaned := strings.TrimSpace(descriptionSanitizer().Sanitize(*r.Description))
		r.Description = &cleaned
	}
	return r
}

// RenderRecord substitutes every occurrence of each placeholder in body
// with the matching field of r. Tokens are replaced one type at a time in
// [Placeholders] order.
func RenderRecord(body string, r license.Record, opts RenderOptions) string {
	r = prepare(r, opts)
	out := body
	for _, p := range Placeholders {
		out = strings.ReplaceAll(out, p.Token, p.Value(r))
	}
	return out
}

// Render renders body once per record.
func Render(body string, records []license.Record, opts RenderOptions) []string {
	bodies := make([]string, len(records))
	for i, r := range records {
		bodies[i] = RenderRecord(body, r, opts)
	}
	return bodies
}

// Assemble joins the rendered bodies with "\n", prefixes the header and a
// newline when the header is not empty, and appends a newline and the
// footer.
func Assemble(s Sections, bodies []string) string {
	var b strings.Builder
	if s.Header != "" {
		b.WriteString(s.Header)
		b.WriteString(EOL)
	}
	b.WriteString(strings.Join(bodies, EOL))
	b.WriteString(EOL)
	b.WriteString(s.Footer)
	return b.String()
}
