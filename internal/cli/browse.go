package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/noticegen/pkg/license"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	detailPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// browseCommand creates the browse command, an interactive view of the
// selected records.
func (c *CLI) browseCommand() *cobra.Command {
	var flags sharedFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the selected licenses interactively",
		Args:  cobra.NoArgs,
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

			p := tea.NewProgram(NewLicenseListModel(records), tea.WithContext(cmd.Context()), tea.WithOutput(c.Out))
			_, err = p.Run()
			return err
		},
	}

	flags.bind(cmd.Flags())
	return cmd
}

// =============================================================================
// LicenseListModel - Interactive license browsing
// =============================================================================

// LicenseListModel is the bubbletea model for browsing records. Enter
// toggles a detail pane for the record under the cursor.
type LicenseListModel struct {
	Records    []license.Record
	Cursor     int
	Offset     int
	Height     int
	ShowDetail bool
}

// NewLicenseListModel creates a new license list model.
func NewLicenseListModel(records []license.Record) LicenseListModel {
	return LicenseListModel{
		Records: records,
		Height:  15,
	}
}

func (m LicenseListModel) Init() tea.Cmd {
	return nil
}

func (m LicenseListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Records)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = len(m.Records) - 1
			m.Offset = max(0, m.Cursor-m.Height+1)
		case "enter", " ":
			m.ShowDetail = !m.ShowDetail
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m LicenseListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Licenses"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Records))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Records[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, r.Name, r.Version, orDash(license.Value(r.License))})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Name", "Version", "License").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col == 2 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	list := t.Render()
	if m.ShowDetail && len(m.Records) > 0 {
		list = lipgloss.JoinHorizontal(lipgloss.Top, list, " ", detailPaneStyle.Render(detailView(m.Records[m.Cursor])))
	}
	b.WriteString(list)
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Records))))

	return b.String()
}

// detailView lists every field of r, one per line.
func detailView(r license.Record) string {
	lines := []string{
		StyleTitle.Render(r.ID()),
		keyValue("authors", orDash(r.Authors)),
		keyValue("license", orDash(license.Value(r.License))),
		keyValue("license file", orDash(license.Value(r.LicenseFile))),
		styleKey.Render("repository") + " " + StyleLink.Render(orDash(license.Value(r.Repository))),
		keyValue("description", orDash(license.Value(r.Description))),
	}
	return strings.Join(lines, "\n")
}
