// Package domain holds the reference extraction and unused-file
// resolution logic for trecsweep. Everything here is pure; filesystem
// and trash access live behind the adapter interfaces.
package domain

import (
	"path/filepath"
	"strings"

	m "trecsweep.dev/pkg/trecsweep/internal/model"
)

// Extract walks the document's source bin and returns the referenced
// filenames. typed holds only recording references, all holds every
// reference; typed is always a subset of all. Missing optional fields
// contribute nothing, never an error.
func Extract(doc *m.ProjectDocument) (typed, all m.RefSet) {
	typed = m.NewRefSet()
	all = m.NewRefSet()

	if doc == nil {
		return typed, all
	}

	for _, source := range doc.SourceBin {
		if source.Src != nil {
			addReference(typed, all, *source.Src)
		}

		for _, track := range source.SourceTracks {
			// Metadata is only a filename list when it contains a
			// semicolon; plain strings mean something else.
			if !track.MetaData.OK || !strings.Contains(track.MetaData.Value, ";") {
				continue
			}

			for _, name := range SplitMetadataList(track.MetaData.Value) {
				addReference(typed, all, name)
			}
		}
	}

	return typed, all
}

func addReference(typed, all m.RefSet, name string) {
	all.Add(name)

	if IsRecording(name) {
		typed.Add(name)
	}
}

// SplitMetadataList splits a semicolon-delimited metadata value into
// trimmed, non-empty pieces.
func SplitMetadataList(value string) []string {
	pieces := strings.Split(value, ";")
	names := make([]string, 0, len(pieces))

	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}

		names = append(names, piece)
	}

	return names
}

// IsRecording reports whether name carries the recording extension,
// ignoring case.
func IsRecording(name string) bool {
	return hasExt(name, m.RecordingExt)
}

// IsDocument reports whether name looks like a project or config
// document. All-unused mode never deletes these.
func IsDocument(name string) bool {
	return hasExt(name, m.ProjectExt) || hasExt(name, ".json")
}

func hasExt(name, ext string) bool {
	return strings.EqualFold(filepath.Ext(name), ext)
}
