// Package config loads default run options from a TOML or YAML file.
//
// Keys mirror the long command-line flag names:
//
//	template-file = "NOTICE.tpl"
//	input-file    = "licenses.json"
//	header-lines  = 2
//	match-license = "GPL"
//	match-license-invert = true
//
// Values from the file apply to every flag the user did not set explicitly.
package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/noticegen/pkg/errors"
	pkgio "github.com/matzehuels/noticegen/pkg/io"
	"github.com/matzehuels/noticegen/pkg/pipeline"
)

// Load reads path and decodes it by extension: .toml, .yaml or .yml.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (pipeline.Options, error) {
	data, err := pkgio.ReadFile("config", path)
	if err != nil {
		return pipeline.Options{}, err
	}

	var opts pipeline.Options
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = decodeTOML(data, &opts)
	case ".yaml", ".yml":
		err = decodeYAML(data, &opts)
	default:
		return pipeline.Options{}, errs.New(errs.ErrCodeInvalidConfig, "unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}
	if err != nil {
		return pipeline.Options{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "could not parse the config file: %s", path)
	}
	return opts, nil
}

func decodeTOML(data []byte, opts *pipeline.Options) error {
	md, err := toml.Decode(string(data), opts)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(data []byte, opts *pipeline.Options) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(opts)
}

// Apply copies non-zero values from file into opts for every flag that
// changed reports as not set on the command line.
func Apply(opts *pipeline.Options, file pipeline.Options, changed func(flag string) bool) {
	setString := func(flag string, dst *string, v string) {
		if v != "" && !changed(flag) {
			*dst = v
		}
	}
	setInt := func(flag string, dst *int, v int) {
		if v != 0 && !changed(flag) {
			*dst = v
		}
	}
	setBool := func(flag string, dst *bool, v bool) {
		if v && !changed(flag) {
			*dst = v
		}
	}

	setString("template-file", &opts.TemplateFile, file.TemplateFile)
	setString("input-file", &opts.InputFile, file.InputFile)
	setString("output-file", &opts.OutputFile, file.OutputFile)
	setInt("header-lines", &opts.HeaderLines, file.HeaderLines)
	setInt("footer-lines", &opts.FooterLines, file.FooterLines)
	setString("match-name", &opts.MatchName, file.MatchName)
	setString("match-license", &opts.MatchLicense, file.MatchLicense)
	setBool("match-name-invert", &opts.MatchNameInvert, file.MatchNameInvert)
	setBool("match-license-invert", &opts.MatchLicenseInvert, file.MatchLicenseInvert)
	setBool("escape-authors", &opts.EscapeAuthors, file.EscapeAuthors)
	setBool("sanitize-description", &opts.SanitizeDescription, file.SanitizeDescription)
}
