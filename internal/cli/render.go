package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/noticegen/pkg/pipeline"
)

// renderFlags holds the command-line flags for the root render command.
// Line counts are parsed as unsigned so negative values are rejected by
// the flag parser.
type renderFlags struct {
	sharedFlags
	headerLines uint
	footerLines uint
}

// renderCommand creates the root command, which renders the notice document.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Generate third-party license notices from license JSON",
		Long: `noticegen reads cargo-license (-j) or license-checker (--json) output,
filters and sorts the dependencies, and renders each one into a text template.

The template is split into header, body and footer by line counts. The body
is repeated per dependency with these tokens replaced:

  {name} {version} {authors} {repository} {license} {license_file} {description}`,
		Example: `  noticegen -t NOTICE.tpl -i licenses.json -o NOTICE -h 2 -f 1
  noticegen -t NOTICE.tpl -i licenses.json --match-license GPL --match-license-invert`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.opts.HeaderLines = int(flags.headerLines)
			flags.opts.FooterLines = int(flags.footerLines)
			opts, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return c.runRender(withLogger(cmd.Context(), c.Logger), opts)
		},
	}

	fs := cmd.Flags()
	flags.bind(fs)
	fs.StringVarP(&flags.opts.TemplateFile, "template-file", "t", "", "a template file (required)")
	fs.StringVarP(&flags.opts.OutputFile, "output-file", "o", "", "an output file (default: stdout)")
	fs.UintVarP(&flags.headerLines, "header-lines", "h", pipeline.DefaultHeaderLines, "the number of template lines used as header")
	fs.UintVarP(&flags.footerLines, "footer-lines", "f", pipeline.DefaultFooterLines, "the number of template lines used as footer")
	fs.BoolVar(&flags.opts.EscapeAuthors, "escape-authors", false, "escape < and > in the {authors} value")
	fs.BoolVar(&flags.opts.SanitizeDescription, "sanitize-description", false, "strip HTML markup from the {description} value")
	fs.Bool("help", false, "help for "+appName)

	return cmd
}

// runRender executes the full pipeline and writes the document.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger
	prog := newProgress(logger)

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	if err := runner.Write(result, opts, c.Out); err != nil {
		return err
	}

	if opts.OutputFile != "" {
		prog.done("Rendered " + pluralize(result.Stats.Selected, "license"))
	}
	return nil
}
