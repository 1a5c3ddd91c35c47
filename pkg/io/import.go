package io

import (
	"os"

	errs "github.com/matzehuels/noticegen/pkg/errors"
	"github.com/matzehuels/noticegen/pkg/license"
)

// ReadFile reads the whole file at path. The file is closed before
// ReadFile returns. Failures are FILE_READ errors naming the file's role
// ("template", "input") and path.
func ReadFile(role, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeFileRead, err, "could not read the %s file: %s", role, path)
	}
	return data, nil
}

// ReadTemplate reads a template file as text.
func ReadTemplate(path string) (string, error) {
	data, err := ReadFile("template", path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ImportRecords reads a license JSON file in either supported shape and
// returns its records together with the detected shape.
//
// Decoding errors keep the FORMAT_PARSE code and gain the file path.
func ImportRecords(path string) ([]license.Record, license.Shape, error) {
	data, err := ReadFile("input", path)
	if err != nil {
		return nil, 0, err
	}
	records, shape, err := license.Decode(data)
	if err != nil {
		return nil, 0, errs.Wrap(errs.GetCode(err), err, "could not parse the input file: %s", path)
	}
	return records, shape, nil
}
