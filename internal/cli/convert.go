package cli

import (
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/noticegen/pkg/io"
)

// convertCommand creates the convert command, which writes the selected
// records in the cargo-license array layout. Converting license-checker
// output this way lets one template serve both ecosystems.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		flags  sharedFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert license JSON to the cargo-license array layout",
		Example: `  noticegen convert -i npm-licenses.json -o licenses.json
  noticegen convert -i npm-licenses.json --match-license MIT`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			records, err := c.selectRecords(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if output == "" {
				return pkgio.WriteJSON(records, c.Out)
			}
			if err := pkgio.ExportJSON(records, output); err != nil {
				return err
			}
			printSuccess(c.Err, "Converted %s", pluralize(len(records), "license"))
			printFile(c.Err, output)
			return nil
		},
	}

	flags.bind(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output-file", "o", "", "an output JSON file (default: stdout)")

	return cmd
}
