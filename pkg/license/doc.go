// Package license models third-party license records and decodes them from
// the two JSON layouts produced by common license collectors.
//
// # Shapes
//
// The cargo-license shape (cargo license -j) is an array of records:
//
//	[
//	  {"name": "serde", "version": "1.0.0", "authors": "Erick Tryzelaar",
//	   "repository": "https://github.com/serde-rs/serde", "license": "MIT OR Apache-2.0",
//	   "license_file": null, "description": "A serialization framework"}
//	]
//
// The license-checker shape (license-checker --json) is an object keyed by
// "name@version", where the name may carry an npm scope:
//
//	{
//	  "@babel/core@7.22.0": {"licenses": "MIT", "publisher": "The Babel Team"},
//	  "left-pad@1.3.0":     {"licenses": ["WTFPL", "MIT"], "email": "a@b.c"}
//	}
//
// [Decode] detects the layout by validating against embedded JSON Schemas
// and converts license-checker entries into [Record] values with
// [Normalize]. Converted records never carry a description.
//
// # Ordering
//
// Records are identified by name and version ([Record.Equal]) and ordered by
// name, then version ([Compare]). Because license-checker output is an
// unordered object, callers must [Sort] before rendering.
package license
