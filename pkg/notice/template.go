package notice

import (
	"strings"

	errs "github.com/matzehuels/noticegen/pkg/errors"
)

// EOL joins template lines and rendered bodies.
const EOL = "\n"

// Sections is a template divided into its header, per-record body and
// footer. Header and Footer are emitted once; Body is rendered per record.
type Sections struct {
	Header string
	Body   string
	Footer string
}

// Split divides a template into the first headerLines lines, the last
// footerLines lines and the body in between. Each section is rejoined with
// "\n".
//
// It returns a LINE_RANGE error when the counts are negative or together
// exceed the number of lines in text. Counts are never clamped.
func Split(text string, headerLines, footerLines int) (Sections, error) {
	lines := Lines(text)
	if headerLines < 0 || footerLines < 0 {
		return Sections{}, errs.New(errs.ErrCodeLineRange, "header (%d) and footer (%d) line counts must not be negative", headerLines, footerLines)
	}
	if headerLines+footerLines > len(lines) {
		return Sections{}, errs.New(errs.ErrCodeLineRange,
			"header (%d) + footer (%d) lines exceed the %d lines of the template", headerLines, footerLines, len(lines))
	}

	bodyEnd := len(lines) - footerLines
	return Sections{
		Header: strings.Join(lines[:headerLines], EOL),
		Body:   strings.Join(lines[headerLines:bodyEnd], EOL),
		Footer: strings.Join(lines[bodyEnd:], EOL),
	}, nil
}

// Lines splits text into lines. A final newline does not start an extra
// empty line, and a "\r" before each newline is dropped.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
