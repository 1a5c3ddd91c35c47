// Package pipeline provides the notice generation pipeline for noticegen.
//
// The CLI commands all drive the same stages, so the logic lives here
// rather than in the command handlers.
//
// # Architecture
//
// A run consists of four stages, executed once and synchronously:
//
//  1. Template: read the template file and split it into header, body, footer
//  2. Load: read the input file and decode either license JSON shape
//  3. Select: filter records by name/license patterns and sort them
//  4. Render: substitute each record into the body and assemble the document
//
// The first error aborts the run; nothing is written in that case.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    TemplateFile: "NOTICE.tpl",
//	    InputFile:    "licenses.json",
//	    HeaderLines:  2,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = runner.Write(result, opts, os.Stdout)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/noticegen/pkg/errors"
	"github.com/matzehuels/noticegen/pkg/license"
	"github.com/matzehuels/noticegen/pkg/notice"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultPattern matches every name and license.
	DefaultPattern = notice.MatchAll

	// DefaultHeaderLines is the number of template lines treated as header.
	DefaultHeaderLines = 0

	// DefaultFooterLines is the number of template lines treated as footer.
	DefaultFooterLines = 0
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one notice run.
type Options struct {
	TemplateFile string `json:"template_file" toml:"template-file" yaml:"template-file"`
	InputFile    string `json:"input_file" toml:"input-file" yaml:"input-file"`
	OutputFile   string `json:"output_file,omitempty" toml:"output-file" yaml:"output-file"`

	HeaderLines int `json:"header_lines,omitempty" toml:"header-lines" yaml:"header-lines"`
	FooterLines int `json:"footer_lines,omitempty" toml:"footer-lines" yaml:"footer-lines"`

	MatchName          string `json:"match_name,omitempty" toml:"match-name" yaml:"match-name"`
	MatchLicense       string `json:"match_license,omitempty" toml:"match-license" yaml:"match-license"`
	MatchNameInvert    bool   `json:"match_name_invert,omitempty" toml:"match-name-invert" yaml:"match-name-invert"`
	MatchLicenseInvert bool   `json:"match_license_invert,omitempty" toml:"match-license-invert" yaml:"match-license-invert"`

	EscapeAuthors       bool `json:"escape_authors,omitempty" toml:"escape-authors" yaml:"escape-authors"`
	SanitizeDescription bool `json:"sanitize_description,omitempty" toml:"sanitize-description" yaml:"sanitize-description"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-" yaml:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Records are the selected records in output order.
	Records []license.Record

	// Shape is the detected input layout.
	Shape license.Shape

	// Text is the assembled document.
	Text string

	// Stats contains counts and timings.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Loaded     int
	Selected   int
	LoadTime   time.Duration
	SelectTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset patterns and the logger.
func (o *Options) SetDefaults() {
	if o.MatchName == "" {
		o.MatchName = DefaultPattern
	}
	if o.MatchLicense == "" {
		o.MatchLicense = DefaultPattern
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLoad checks the options needed to read input records.
func (o *Options) ValidateForLoad() error {
	if o.InputFile == "" {
		return errs.New(errs.ErrCodeMissingArgument, "-i(--input-file) argument is required")
	}
	return nil
}

// Validate checks required fields for a full run and applies defaults.
func (o *Options) Validate() error {
	if o.TemplateFile == "" {
		return errs.New(errs.ErrCodeMissingArgument, "-t(--template-file) argument is required")
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if o.HeaderLines < 0 || o.FooterLines < 0 {
		return errs.New(errs.ErrCodeLineRange, "header (%d) and footer (%d) line counts must not be negative", o.HeaderLines, o.FooterLines)
	}
	o.SetDefaults()
	return nil
}

// MatchOptions converts the filter settings.
func (o Options) MatchOptions() notice.MatchOptions {
	return notice.MatchOptions{
		Name:          o.MatchName,
		License:       o.MatchLicense,
		InvertName:    o.MatchNameInvert,
		InvertLicense: o.MatchLicenseInvert,
	}
}

// RenderOptions converts the rendering settings.
func (o Options) RenderOptions() notice.RenderOptions {
	return notice.RenderOptions{
		EscapeAuthors:       o.EscapeAuthors,
		SanitizeDescription: o.SanitizeDescription,
	}
}
