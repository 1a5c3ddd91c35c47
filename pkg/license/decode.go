package license

import (
	"bytes"
	"embed"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	errs "github.com/matzehuels/noticegen/pkg/errors"
)

// Shape identifies which of the two supported JSON layouts an input used.
type Shape int

const (
	// ShapeCargo is a top-level array of records (cargo-license -j).
	ShapeCargo Shape = iota + 1
	// ShapeNPM is a top-level object keyed by "name@version" (license-checker --json).
	ShapeNPM
)

func (s Shape) String() string {
	switch s {
	case ShapeCargo:
		return "cargo-license"
	case ShapeNPM:
		return "license-checker"
	default:
		return "unknown"
	}
}

//go:embed schema/*.json
var schemaFS embed.FS

const schemaBase = "https://noticegen.dev/schema/"

var (
	schemaOnce  sync.Once
	cargoSchema *jsonschema.Schema
	npmSchema   *jsonschema.Schema
	schemaErr   error
)

func schemas() (cargo, npm *jsonschema.Schema, err error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		for _, name := range []string{"cargo.json", "npm.json"} {
			data, err := schemaFS.ReadFile("schema/" + name)
			if err != nil {
				schemaErr = fmt.Errorf("read schema %s: %w", name, err)
				return
			}
			if err := compiler.AddResource(schemaBase+name, bytes.NewReader(data)); err != nil {
				schemaErr = fmt.Errorf("add schema resource %s: %w", name, err)
				return
			}
		}
		if cargoSchema, schemaErr = compiler.Compile(schemaBase + "cargo.json"); schemaErr != nil {
			return
		}
		npmSchema, schemaErr = compiler.Compile(schemaBase + "npm.json")
	})
	return cargoSchema, npmSchema, schemaErr
}

// Decode detects the shape of a license JSON document and returns its
// records. The cargo-license array shape is tried first and passes through
// unchanged; otherwise the license-checker object shape is tried and
// converted with [Normalize].
//
// Input that matches neither shape yields a FORMAT_PARSE error whose cause
// joins both mismatches.
func Decode(data []byte) ([]Record, Shape, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, 0, errs.Wrap(errs.ErrCodeFormatParse, err, "input is not valid JSON")
	}

	cargo, npm, err := schemas()
	if err != nil {
		return nil, 0, errs.Wrap(errs.ErrCodeFormatParse, err, "compile input schemas")
	}

	cargoErr := cargo.Validate(doc)
	if cargoErr == nil {
		var records []Record
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, 0, errs.Wrap(errs.ErrCodeFormatParse, err, "decode %s input", ShapeCargo)
		}
		return records, ShapeCargo, nil
	}

	npmErr := npm.Validate(doc)
	if npmErr == nil {
		var entries map[string]Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, 0, errs.Wrap(errs.ErrCodeFormatParse, err, "decode %s input", ShapeNPM)
		}
		records, err := Normalize(entries)
		if err != nil {
			return nil, 0, err
		}
		return records, ShapeNPM, nil
	}

	cause := stderrors.Join(
		fmt.Errorf("as %s: %w", ShapeCargo, cargoErr),
		fmt.Errorf("as %s: %w", ShapeNPM, npmErr),
	)
	return nil, 0, errs.Wrap(errs.ErrCodeFormatParse, cause, "input matches neither known license shape")
}
