package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	errs "github.com/matzehuels/noticegen/pkg/errors"
	"github.com/matzehuels/noticegen/pkg/license"
)

// WriteJSON encodes records in the cargo-license array shape and writes
// them to w. The output can be re-imported with [ImportRecords] and yields
// the same records. A nil slice is written as an empty array.
func WriteJSON(records []license.Record, w io.Writer) error {
	if records == nil {
		records = []license.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes records to a JSON file at path, overwriting it.
func ExportJSON(records []license.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.ErrCodeFileWrite, err, "could not create the output file: %s", path)
	}
	if err := WriteJSON(records, f); err != nil {
		f.Close()
		return errs.Wrap(errs.ErrCodeFileWrite, err, "could not write the output file: %s", path)
	}
	if err := f.Close(); err != nil {
		return errs.Wrap(errs.ErrCodeFileWrite, err, "could not write the output file: %s", path)
	}
	return nil
}

// WriteText writes text to path, replacing any existing content.
func WriteText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeFileWrite, err, "could not write the output file: %s", path)
	}
	return nil
}

// PrintText writes text followed by a single newline to w.
func PrintText(w io.Writer, text string) error {
	if _, err := fmt.Fprintln(w, text); err != nil {
		return errs.Wrap(errs.ErrCodeFileWrite, err, "could not write to standard output")
	}
	return nil
}
