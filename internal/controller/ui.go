// Package controller provides output adapters for rendering scan results.
package controller

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "trecsweep.dev/pkg/trecsweep/internal/model"
)

// UI renders the structured results produced by the workflow.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayBanner prints the separator shown before each project in a
	// recursive scan.
	DisplayBanner(document m.Path)
	// DisplayScanStart announces the document and directory being scanned.
	DisplayScanStart(document, dir m.Path)
	// DisplayDiagnostic renders one structured diagnostic record.
	DisplayDiagnostic(d m.Diagnostic)
	// DisplayReferenced lists the resolved reference set of a report.
	DisplayReferenced(report m.ScanReport)
	// DisplayUnused renders the deletion set and per-file outcomes.
	DisplayUnused(report m.ScanReport)
	// DisplaySummary renders the tally of a recursive scan.
	DisplaySummary(summary m.ScanSummary)
}

// NewUI picks the UI implementation for the current terminal: interactive
// pagination when stdout is a TTY, plain text otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
