package domain

import (
	"fmt"
	"strings"

	m "trecsweep.dev/pkg/trecsweep/internal/model"
)

// DocumentReadError reports a project document that could not be opened
// or decoded. Extraction falls back to empty reference sets so the
// directory report can still run.
type DocumentReadError struct {
	Document m.Path
	Cause    error
}

func (e *DocumentReadError) Error() string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "cannot read project document %s", e.Document)
	if e.Cause != nil {
		fmt.Fprint(&msg, ": ", e.Cause)
	}

	return msg.String()
}

func (e *DocumentReadError) Unwrap() error {
	return e.Cause
}

// PathResolutionError reports a path that is neither a project document
// nor a directory containing one.
type PathResolutionError struct {
	Path   m.Path
	Reason string
	Cause  error
}

func (e *PathResolutionError) Error() string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "%s: %s", e.Path, e.Reason)
	if e.Cause != nil {
		fmt.Fprint(&msg, ": ", e.Cause)
	}

	return msg.String()
}

func (e *PathResolutionError) Unwrap() error {
	return e.Cause
}

// DeletionError reports a single file that could not be moved to the
// trash. The rest of the deletion set is still attempted.
type DeletionError struct {
	File  m.Path
	Cause error
}

func (e *DeletionError) Error() string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "cannot send %s to trash", e.File)
	if e.Cause != nil {
		fmt.Fprint(&msg, ": ", e.Cause)
	}

	return msg.String()
}

func (e *DeletionError) Unwrap() error {
	return e.Cause
}
