package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disiqueira/gotree/v3"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "trecsweep.dev/pkg/trecsweep/internal/model"
)

const bannerWidth = 60

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// SimpleUI implements UI using the cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayBanner prints the separator shown before each project in a
// recursive scan.
func (s *SimpleUI) DisplayBanner(document m.Path) {
	rule := strings.Repeat("=", bannerWidth)
	s.printf("\n%s\n%s\n%s\n",
		bannerStyle.Render(rule),
		bannerStyle.Render("Processing: "+string(document)),
		bannerStyle.Render(rule))
}

// DisplayScanStart announces the document and directory being scanned.
func (s *SimpleUI) DisplayScanStart(document, dir m.Path) {
	s.printf("Processing project file: %s\n", document)
	s.printf("Looking for unused files in directory: %s\n", dir)
}

// DisplayDiagnostic renders one structured diagnostic record.
func (s *SimpleUI) DisplayDiagnostic(d m.Diagnostic) {
	message := d.Message
	if d.Path != "" {
		message = fmt.Sprintf("%s: %s", d.Path, message)
	}

	if d.Err != nil {
		message = fmt.Sprintf("%s: %v", message, d.Err)
	}

	switch d.Severity {
	case m.SeverityWarning:
		s.printf("%s\n", warningStyle.Render("Warning: "+message))
	case m.SeverityError:
		s.printf("%s\n", errorStyle.Render("Error: "+message))
	default:
		s.printf("%s\n", message)
	}
}

// DisplayReferenced lists the resolved reference set of a report, marking
// entries that are referenced but absent from the directory.
func (s *SimpleUI) DisplayReferenced(report m.ScanReport) {
	s.printf("Files used in project %s:\n", report.Project)

	missing := m.NewRefSet(report.Missing...)

	rows := make([][]string, 0, len(report.Referenced))
	for _, name := range report.Referenced {
		status := "present"
		if missing.Contains(name) {
			status = "referenced but not found in directory"
		}

		rows = append(rows, []string{name, status})
	}

	s.printf("%s", renderTable([]string{"File", "Status"}, rows, nil))
}

// DisplayUnused renders the deletion set and per-file outcomes.
func (s *SimpleUI) DisplayUnused(report m.ScanReport) {
	if len(report.Unused) == 0 {
		if report.Mode == m.TypedOnly {
			s.printf("No unused %s files found in %s\n", m.RecordingExt, report.Dir)
		} else {
			s.printf("No unused files found in %s\n", report.Dir)
		}

		return
	}

	s.printf("Found %d unused files in %s:\n", len(report.Unused), report.Dir)
	s.printf("%s", renderTable([]string{"File", "Action"}, unusedRows(report), nil))
}

// DisplaySummary renders the tally of a recursive scan as a tree.
func (s *SimpleUI) DisplaySummary(summary m.ScanSummary) {
	tree := gotree.New(string(summary.Root))

	for _, project := range summary.Projects {
		label := fmt.Sprintf("%s (%d unused", project.Document, project.Unused)
		if project.Trashed > 0 {
			label += fmt.Sprintf(", %d trashed", project.Trashed)
		}

		if project.Failed > 0 {
			label += fmt.Sprintf(", %d failed", project.Failed)
		}

		tree.Add(label + ")")
	}

	s.printf("\n%s", tree.Print())
	s.printf("Processed %d project files\n", len(summary.Projects))
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.cmd.Printf(format, args...)
}

// unusedRows derives the per-file action column from the report outcome.
func unusedRows(report m.ScanReport) [][]string {
	trashed := m.NewRefSet(report.Trashed...)
	failed := m.NewRefSet(report.Failed...)

	rows := make([][]string, 0, len(report.Unused))

	for _, name := range report.Unused {
		action := "would send to trash"

		switch {
		case trashed.Contains(name):
			action = "sent to trash"
		case failed.Contains(name):
			action = "failed to trash"
		case !report.DryRun:
			action = "skipped"
		}

		rows = append(rows, []string{name, action})
	}

	return rows
}

func renderTable(header []string, rows [][]string, footer []string) string {
	var buffer bytes.Buffer

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader(header)
	table.SetBorder(false)
	// Keep each cell on one line so report output stays greppable.
	table.SetAutoWrapText(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, row := range rows {
		table.Append(row)
	}

	if footer != nil {
		table.SetFooter(footer)
	}

	table.Render()

	return buffer.String()
}
