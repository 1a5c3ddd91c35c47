package cli

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/noticegen/pkg/license"
	"github.com/matzehuels/noticegen/pkg/pipeline"
)

// listCommand creates the list command, which prints the selected records
// as a table instead of rendering a template.
func (c *CLI) listCommand() *cobra.Command {
	var (
		flags   sharedFlags
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the licenses selected by the filter flags",
		Example: `  noticegen list -i licenses.json
  noticegen list -i licenses.json --summary`,
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
			if len(records) == 0 {
				printWarning(c.Err, "No licenses matched")
				return nil
			}
			if summary {
				fmt.Fprintln(c.Out, summaryTable(records))
			} else {
				fmt.Fprintln(c.Out, recordTable(records))
			}
			fmt.Fprintln(c.Out, StyleDim.Render(pluralize(len(records), "license")))
			return nil
		},
	}

	flags.bind(cmd.Flags())
	cmd.Flags().BoolVar(&summary, "summary", false, "show the number of packages per license instead")

	return cmd
}

// selectRecords loads the input and applies the filter flags.
func (c *CLI) selectRecords(ctx context.Context, opts pipeline.Options) ([]license.Record, error) {
	runner := c.newRunner()
	records, _, err := runner.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	return runner.Select(ctx, records, opts)
}

// headerRow is the row index lipgloss passes to StyleFunc for the header.
const headerRow = -1

// recordTable renders one row per record.
func recordTable(records []license.Record) string {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			r.Name,
			r.Version,
			orDash(license.Value(r.License)),
			orDash(r.Authors),
			orDash(license.Value(r.Repository)),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Version", "License", "Authors", "Repository").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == headerRow:
				return styleHeader
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorCyan)
			case col == 4:
				return lipgloss.NewStyle().Foreground(colorBlue)
			default:
				return lipgloss.NewStyle().Foreground(colorGray)
			}
		})
	return t.Render()
}

// licenseCount is one row of the summary table.
type licenseCount struct {
	License string
	Count   int
}

// countLicenses groups records by their license string, most common first.
// Records without a license are counted under "—".
func countLicenses(records []license.Record) []licenseCount {
	counts := map[string]int{}
	for _, r := range records {
		counts[orDash(license.Value(r.License))]++
	}
	out := make([]licenseCount, 0, len(counts))
	for l, n := range counts {
		out = append(out, licenseCount{License: l, Count: n})
	}
	slices.SortFunc(out, func(a, b licenseCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.License, b.License)
	})
	return out
}

// summaryTable renders package counts per license.
func summaryTable(records []license.Record) string {
	counts := countLicenses(records)
	rows := make([][]string, len(counts))
	for i, lc := range counts {
		rows[i] = []string{lc.License, fmt.Sprintf("%d", lc.Count)}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("License", "Packages").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleHeader
			}
			if col == 1 {
				return StyleNumber.Align(lipgloss.Right)
			}
			return StyleValue
		})
	return t.Render()
}

// pluralize formats a count with a noun, adding "s" when n != 1.
func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
