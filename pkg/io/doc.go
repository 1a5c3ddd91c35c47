// Package io reads license inputs and templates and writes rendered
// notices and normalized records.
//
// All reads are eager: a file is opened, read to the end and closed inside
// one call, so no handle outlives the stage that needs it.
//
// # Import
//
// Use [ImportRecords] to read a license JSON file in either supported shape:
//
//	records, shape, err := io.ImportRecords("licenses.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// [ReadTemplate] reads a template file as text. Both return FILE_READ errors
// that name the file.
//
// # Export
//
// [WriteText] writes a rendered notice to a file, overwriting it;
// [PrintText] writes it to a stream followed by a newline. [WriteJSON] and
// [ExportJSON] write records in the cargo-license array shape, which is how
// license-checker output is converted for other tools:
//
//	err := io.ExportJSON(records, "normalized.json")
package io
