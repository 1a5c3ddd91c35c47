package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	pkgio "github.com/matzehuels/noticegen/pkg/io"
	"github.com/matzehuels/noticegen/pkg/license"
	"github.com/matzehuels/noticegen/pkg/notice"
	"github.com/matzehuels/noticegen/pkg/observability"
)

// Runner executes the notice pipeline. It holds no per-run state, so one
// Runner can serve several runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs template → load → select → render.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	sections, err := r.LoadTemplate(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	loadStart := time.Now()
	records, shape, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Shape = shape
	result.Stats.Loaded = len(records)
	result.Stats.LoadTime = time.Since(loadStart)

	selectStart := time.Now()
	selected, err := r.Select(ctx, records, opts)
	if err != nil {
		return nil, err
	}
	result.Records = selected
	result.Stats.Selected = len(selected)
	result.Stats.SelectTime = time.Since(selectStart)

	renderStart := time.Now()
	result.Text = r.Render(ctx, sections, selected, opts)
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Debug("rendered notice",
		"records", result.Stats.Selected,
		"bytes", len(result.Text),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadTemplate reads the template file and splits it by the configured
// header and footer line counts.
func (r *Runner) LoadTemplate(ctx context.Context, opts Options) (notice.Sections, error) {
	text, err := pkgio.ReadTemplate(opts.TemplateFile)
	if err != nil {
		return notice.Sections{}, err
	}
	sections, err := notice.Split(text, opts.HeaderLines, opts.FooterLines)
	if err != nil {
		return notice.Sections{}, fmt.Errorf("%s: %w", opts.TemplateFile, err)
	}
	r.Logger.Debug("loaded template",
		"path", opts.TemplateFile,
		"header_lines", opts.HeaderLines,
		"footer_lines", opts.FooterLines)
	return sections, nil
}

// Load reads and decodes the input file.
func (r *Runner) Load(ctx context.Context, opts Options) ([]license.Record, license.Shape, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, 0, err
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.InputFile)

	start := time.Now()
	records, shape, err := pkgio.ImportRecords(opts.InputFile)
	hooks.OnLoadComplete(ctx, opts.InputFile, shape.String(), len(records), time.Since(start), err)
	if err != nil {
		return nil, 0, err
	}

	r.Logger.Info("loaded licenses",
		"path", opts.InputFile,
		"shape", shape,
		"records", len(records))
	return records, shape, nil
}

// Select compiles the filter patterns, filters records and sorts the
// survivors. Pattern errors are returned before any record is inspected.
func (r *Runner) Select(ctx context.Context, records []license.Record, opts Options) ([]license.Record, error) {
	start := time.Now()
	m, err := notice.NewMatcher(opts.MatchOptions())
	if err != nil {
		observability.Pipeline().OnSelectComplete(ctx, 0, len(records), time.Since(start), err)
		return nil, err
	}
	selected := notice.Select(records, m)
	observability.Pipeline().OnSelectComplete(ctx, len(selected), len(records), time.Since(start), nil)

	if dropped := len(records) - len(selected); dropped > 0 {
		r.Logger.Info("filtered licenses", "kept", len(selected), "dropped", dropped)
	}
	return selected, nil
}

// Render substitutes each record into the body and assembles the document.
func (r *Runner) Render(ctx context.Context, sections notice.Sections, records []license.Record, opts Options) string {
	start := time.Now()
	bodies := notice.Render(sections.Body, records, opts.RenderOptions())
	text := notice.Assemble(sections, bodies)
	observability.Pipeline().OnRenderComplete(ctx, len(bodies), len(text), time.Since(start), nil)
	return text
}

// Write delivers the document: to opts.OutputFile when set, replacing its
// content byte for byte, otherwise to stdout followed by a newline.
func (r *Runner) Write(result *Result, opts Options, stdout io.Writer) error {
	if opts.OutputFile == "" {
		return pkgio.PrintText(stdout, result.Text)
	}
	if err := pkgio.WriteText(opts.OutputFile, result.Text); err != nil {
		return err
	}
	r.Logger.Info("wrote notice", "path", opts.OutputFile, "records", len(result.Records))
	return nil
}
