package domain

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"trecsweep.dev/pkg/trecsweep/internal/adapter"
	"trecsweep.dev/pkg/trecsweep/internal/controller"
	m "trecsweep.dev/pkg/trecsweep/internal/model"
)

// ScanArgs carries the per-invocation options of a scan.
type ScanArgs struct {
	Root      m.Path
	Mode      m.Mode
	Trash     bool // actually move files to the trash; otherwise report only
	ListUsed  bool // print the reference set instead of resolving deletions
	Recursive bool
}

// Workflow orchestrates locating documents, extracting references,
// resolving unused files and applying the trash step.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) error
}

type workflow struct {
	fs      adapter.ProjectFSAdapter
	trasher adapter.Trasher
	ui      controller.UI
}

// NewWorkflow wires a Workflow from its collaborators.
func NewWorkflow(fs adapter.ProjectFSAdapter, trasher adapter.Trasher, ui controller.UI) Workflow {
	return &workflow{fs: fs, trasher: trasher, ui: ui}
}

// Scan runs the single-project flow, or once per discovered document when
// args.Recursive is set. Failures are isolated to the document or file
// that produced them and surface as diagnostics; Scan itself only returns
// an error when the context is cancelled.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	if args.Recursive {
		return w.scanTree(ctx, args)
	}

	document, err := w.locateDocument(args.Root)
	if err != nil {
		w.report(nil, m.Diagnostic{
			Severity: m.SeverityError,
			Path:     args.Root,
			Message:  "skipping",
			Err:      err,
		})

		return nil
	}

	w.scanOne(document, args)

	return nil
}

// scanTree walks the tree under args.Root and runs the single-project
// flow for every document found, then renders the tally.
func (w *workflow) scanTree(ctx context.Context, args ScanArgs) error {
	documents, ok := w.discoverDocuments(args.Root)
	if !ok {
		return nil
	}

	summary := m.ScanSummary{Root: args.Root}

	for _, document := range documents {
		if err := ctx.Err(); err != nil {
			return err
		}

		w.ui.DisplayBanner(document)
		report := w.scanOne(document, args)

		summary.Projects = append(summary.Projects, m.ProjectOutcome{
			Document: document,
			Unused:   len(report.Unused),
			Trashed:  len(report.Trashed),
			Failed:   len(report.Failed),
		})
	}

	if len(summary.Projects) == 0 {
		w.report(nil, m.Diagnostic{
			Severity: m.SeverityInfo,
			Path:     args.Root,
			Message:  "no " + m.ProjectExt + " files found here or in any subdirectory",
		})

		return nil
	}

	w.ui.DisplaySummary(summary)

	return nil
}

// discoverDocuments collects every project document under root. A plain
// file path is accepted as-is when it has the project extension.
func (w *workflow) discoverDocuments(root m.Path) ([]m.Path, bool) {
	info, err := w.fs.FileInfo(root)
	if err != nil {
		w.report(nil, m.Diagnostic{
			Severity: m.SeverityError,
			Path:     root,
			Message:  "skipping",
			Err:      &PathResolutionError{Path: root, Reason: "not a valid directory or file", Cause: err},
		})

		return nil, false
	}

	if !info.IsDir() {
		if !hasExt(string(root), m.ProjectExt) {
			w.report(nil, m.Diagnostic{
				Severity: m.SeverityError,
				Path:     root,
				Message:  "skipping",
				Err:      &PathResolutionError{Path: root, Reason: "not a " + m.ProjectExt + " file"},
			})

			return nil, false
		}

		return []m.Path{root}, true
	}

	var documents []m.Path

	walkErr := w.fs.Walk(root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			// Unreadable subtrees are skipped, the walk continues.
			return nil
		}

		if hasExt(path, m.ProjectExt) {
			documents = append(documents, m.Path(path))
		}

		return nil
	})
	if walkErr != nil {
		w.report(nil, m.Diagnostic{Severity: m.SeverityError, Path: root, Message: "walk aborted", Err: walkErr})
	}

	return documents, true
}

// locateDocument resolves the user-supplied path to a project document:
// the path itself, a same-named document inside the directory, or the
// first document found directly inside it.
func (w *workflow) locateDocument(root m.Path) (m.Path, error) {
	info, err := w.fs.FileInfo(root)
	if err != nil {
		return "", &PathResolutionError{Path: root, Reason: "not a valid directory or file", Cause: err}
	}

	if !info.IsDir() {
		if !hasExt(string(root), m.ProjectExt) {
			return "", &PathResolutionError{Path: root, Reason: "not a " + m.ProjectExt + " file"}
		}

		return root, nil
	}

	base := filepath.Base(filepath.Clean(string(root)))
	if !hasExt(base, m.ProjectExt) {
		base += m.ProjectExt
	}

	candidate := w.fs.JoinPath(string(root), base)
	if info, err := w.fs.FileInfo(candidate); err == nil && !info.IsDir() {
		w.report(nil, m.Diagnostic{Severity: m.SeverityInfo, Message: "Found matching project file: " + base})
		return candidate, nil
	}

	names, err := w.fs.ListFiles(root)
	if err != nil {
		return "", &PathResolutionError{Path: root, Reason: "cannot list directory", Cause: err}
	}

	for _, name := range names {
		if hasExt(name, m.ProjectExt) {
			w.report(nil, m.Diagnostic{Severity: m.SeverityInfo, Message: "Using first project file found: " + name})
			return w.fs.JoinPath(string(root), name), nil
		}
	}

	return "", &PathResolutionError{Path: root, Reason: "no " + m.ProjectExt + " file found"}
}

// scanOne runs the full flow for a single document and returns its report.
func (w *workflow) scanOne(document m.Path, args ScanArgs) m.ScanReport {
	dir := m.Path(filepath.Dir(string(document)))
	projectFile := filepath.Base(string(document))

	report := m.ScanReport{
		Project: document,
		Dir:     dir,
		Mode:    args.Mode,
		DryRun:  !args.Trash,
	}

	w.ui.DisplayScanStart(m.Path(projectFile), dir)
	slog.Debug("scanning project", "document", document, "mode", args.Mode.String())

	listing, err := w.fs.ListFiles(dir)
	if err != nil {
		w.report(&report, m.Diagnostic{
			Severity: m.SeverityError,
			Path:     dir,
			Message:  "skipping",
			Err:      &PathResolutionError{Path: dir, Reason: "cannot list directory", Cause: err},
		})

		return report
	}

	// Typed-only cleanup has nothing to do in a directory without
	// recordings; all-unused mode always resolves.
	if args.Mode == m.TypedOnly && !args.ListUsed && !containsRecording(listing) {
		w.report(&report, m.Diagnostic{
			Severity: m.SeverityInfo,
			Message:  "no " + m.RecordingExt + " files found in " + string(dir),
		})

		return report
	}

	typed, all := w.extractReferences(document, &report)

	// The document's own filename is always retained.
	keep := all.Union(m.NewRefSet(projectFile))
	report.Referenced = keep.Sorted()

	present := m.NewRefSet(listing...)
	for _, name := range report.Referenced {
		if !present.Contains(name) {
			report.Missing = append(report.Missing, name)
		}
	}

	if args.ListUsed {
		w.ui.DisplayReferenced(report)
		return report
	}

	report.Unused = Resolve(listing, typed, all, projectFile, args.Mode)

	if !report.DryRun {
		w.applyTrash(&report)
	}

	w.ui.DisplayUnused(report)
	slog.Info("scan complete",
		"document", document,
		"unused", len(report.Unused),
		"trashed", len(report.Trashed),
		"failed", len(report.Failed))

	return report
}

// extractReferences decodes the document and extracts its reference sets.
// A read or decode failure degrades to empty sets so the directory report
// still runs.
func (w *workflow) extractReferences(document m.Path, report *m.ScanReport) (typed, all m.RefSet) {
	data, err := w.fs.ReadFile(document)
	if err == nil {
		var doc m.ProjectDocument
		if err = json.Unmarshal(data, &doc); err == nil {
			return Extract(&doc)
		}
	}

	w.report(report, m.Diagnostic{
		Severity: m.SeverityWarning,
		Path:     document,
		Message:  "treating every file as unreferenced",
		Err:      &DocumentReadError{Document: document, Cause: err},
	})

	return m.NewRefSet(), m.NewRefSet()
}

// applyTrash moves every file of the deletion set to the trash,
// continuing past per-file failures.
func (w *workflow) applyTrash(report *m.ScanReport) {
	for _, name := range report.Unused {
		target := w.fs.JoinPath(string(report.Dir), name)

		if err := w.trasher.Trash(target); err != nil {
			report.Failed = append(report.Failed, name)
			w.report(report, m.Diagnostic{
				Severity: m.SeverityError,
				Path:     m.Path(name),
				Message:  "kept on disk",
				Err:      &DeletionError{File: target, Cause: err},
			})

			continue
		}

		report.Trashed = append(report.Trashed, name)
		slog.Debug("sent to trash", "file", target)
	}
}

// report records a diagnostic on the report (when one is in scope) and
// hands it to the UI.
func (w *workflow) report(report *m.ScanReport, d m.Diagnostic) {
	if report != nil {
		report.Diagnostics = append(report.Diagnostics, d)
	}

	w.ui.DisplayDiagnostic(d)
}

func containsRecording(listing []string) bool {
	for _, name := range listing {
		if IsRecording(name) {
			return true
		}
	}

	return false
}
