// Package pkg provides the libraries behind noticegen, a generator for
// third-party license notice files.
//
// # Overview
//
// The pkg directory is organized by pipeline stage:
//
//  1. [license] - Record model and decoding of both license JSON layouts
//  2. [notice] - Template splitting, filtering, token substitution, assembly
//  3. [io] - Reading inputs and writing documents or converted JSON
//  4. [pipeline] - Orchestration (template → load → select → render)
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
//	cargo-license -j / license-checker --json
//	         ↓
//	    [license] package (detect layout, normalize to Record)
//	         ↓
//	    [notice] package (filter, sort, render each record)
//	         ↓
//	    header + bodies + footer
//
// # Quick Start
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    TemplateFile: "NOTICE.tpl",
//	    InputFile:    "licenses.json",
//	})
//	if err != nil {
//	    return err
//	}
//	return runner.Write(result, opts, os.Stdout)
//
// [license]: github.com/matzehuels/noticegen/pkg/license
// [notice]: github.com/matzehuels/noticegen/pkg/notice
// [io]: github.com/matzehuels/noticegen/pkg/io
// [pipeline]: github.com/matzehuels/noticegen/pkg/pipeline
// [errors]: github.com/matzehuels/noticegen/pkg/errors
// [observability]: github.com/matzehuels/noticegen/pkg/observability
// [buildinfo]: github.com/matzehuels/noticegen/pkg/buildinfo
package pkg
