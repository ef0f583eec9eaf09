package controller

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "trecsweep.dev/pkg/trecsweep/internal/model"
)

// viewChrome is the number of non-list lines (title, blank, footer) the
// paginated view needs.
const viewChrome = 4

// TUI implements UI for interactive terminals. Small results render
// exactly like SimpleUI; deletion sets taller than the terminal open a
// scrollable Bubble Tea view instead of flooding the screen.
type TUI struct {
	simple *SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{simple: NewSimpleUI(cmd)}
}

// DisplayBanner delegates to the plain renderer.
func (t *TUI) DisplayBanner(document m.Path) {
	t.simple.DisplayBanner(document)
}

// DisplayScanStart delegates to the plain renderer.
func (t *TUI) DisplayScanStart(document, dir m.Path) {
	t.simple.DisplayScanStart(document, dir)
}

// DisplayDiagnostic delegates to the plain renderer.
func (t *TUI) DisplayDiagnostic(d m.Diagnostic) {
	t.simple.DisplayDiagnostic(d)
}

// DisplayReferenced delegates to the plain renderer.
func (t *TUI) DisplayReferenced(report m.ScanReport) {
	t.simple.DisplayReferenced(report)
}

// DisplayUnused paginates large deletion sets; small ones print as a table.
func (t *TUI) DisplayUnused(report m.ScanReport) {
	height := terminalHeight()

	if len(report.Unused) == 0 || height <= 0 || len(report.Unused)+viewChrome <= height {
		t.simple.DisplayUnused(report)
		return
	}

	model := newUnusedListModel(report, height)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		// The terminal refused the interactive view; plain text still works.
		t.simple.DisplayUnused(report)
	}
}

// DisplaySummary delegates to the plain renderer.
func (t *TUI) DisplaySummary(summary m.ScanSummary) {
	t.simple.DisplaySummary(summary)
}

func terminalHeight() int {
	_, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}

	return height
}

// unusedListModel is the Bubble Tea model for scrolling through a large
// deletion set.
type unusedListModel struct {
	title  string
	rows   []string
	height int
	offset int
}

func newUnusedListModel(report m.ScanReport, height int) unusedListModel {
	title := fmt.Sprintf("Found %d unused files in %s", len(report.Unused), report.Dir)

	rows := make([]string, 0, len(report.Unused))
	for _, row := range unusedRows(report) {
		rows = append(rows, fmt.Sprintf("%s  [%s]", row[0], row[1]))
	}

	return unusedListModel{title: title, rows: rows, height: height}
}

// Init implements tea.Model.
func (um unusedListModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (um unusedListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		um.height = msg.Height
		um.clampOffset()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return um, tea.Quit
		case "up", "k":
			um.offset--
		case "down", "j":
			um.offset++
		case "pgup":
			um.offset -= um.pageSize()
		case "pgdown", " ":
			um.offset += um.pageSize()
		case "home":
			um.offset = 0
		case "end":
			um.offset = len(um.rows)
		}

		um.clampOffset()
	}

	return um, nil
}

// View implements tea.Model.
func (um unusedListModel) View() string {
	var b strings.Builder

	b.WriteString(bannerStyle.Render(um.title))
	b.WriteString("\n\n")

	end := um.offset + um.pageSize()
	if end > len(um.rows) {
		end = len(um.rows)
	}

	for _, row := range um.rows[um.offset:end] {
		b.WriteString("  ")
		b.WriteString(row)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%d-%d of %d  (j/k scroll, q to close)\n",
		um.offset+1, end, len(um.rows))

	return b.String()
}

func (um unusedListModel) pageSize() int {
	size := um.height - viewChrome
	if size < 1 {
		size = 1
	}

	return size
}

func (um *unusedListModel) clampOffset() {
	max := len(um.rows) - um.pageSize()
	if max < 0 {
		max = 0
	}

	if um.offset > max {
		um.offset = max
	}

	if um.offset < 0 {
		um.offset = 0
	}
}
