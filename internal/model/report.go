package model

// Mode selects which files are eligible for deletion.
type Mode int

const (
	// TypedOnly restricts cleanup to unreferenced recording (.trec) files.
	TypedOnly Mode = iota
	// AllUnused considers every unreferenced file that is not itself a
	// project or config document.
	AllUnused
)

// String returns a human-readable mode name for reports and logs.
func (m Mode) String() string {
	switch m {
	case TypedOnly:
		return "typed-only"
	case AllUnused:
		return "all-unused"
	}

	return "unknown"
}

// Severity classifies a diagnostic record.
type Severity int

const (
	// SeverityInfo marks informational notices (nothing found, fallbacks taken).
	SeverityInfo Severity = iota
	// SeverityWarning marks degraded processing that still produced a report.
	SeverityWarning
	// SeverityError marks a failure isolated to one document or file.
	SeverityError
)

// Diagnostic is a structured notice produced while scanning. The core
// never prints; the controller decides how each record is rendered.
type Diagnostic struct {
	Severity Severity
	Message  string
	Path     Path
	Err      error
}

// ScanReport is the outcome of scanning a single project document.
type ScanReport struct {
	Project     Path // full path to the document
	Dir         Path // directory that was inventoried
	Mode        Mode
	DryRun      bool
	Referenced  []string // effective reference set, sorted
	Missing     []string // referenced but absent from the directory, sorted
	Unused      []string // deletion set, sorted
	Trashed     []string
	Failed      []string
	Diagnostics []Diagnostic
}

// ProjectOutcome summarizes one project inside a recursive scan.
type ProjectOutcome struct {
	Document Path
	Unused   int
	Trashed  int
	Failed   int
}

// ScanSummary tallies a recursive scan across a directory tree.
type ScanSummary struct {
	Root     Path
	Projects []ProjectOutcome
}
