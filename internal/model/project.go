package model

import "encoding/json"

// Path represents a file system path.
type Path string

// File extensions the cleanup pass cares about.
const (
	// RecordingExt is the extension of auxiliary recording files, the
	// primary cleanup candidates.
	RecordingExt = ".trec"

	// ProjectExt is the extension of project documents.
	ProjectExt = ".tscproj"
)

// ProjectDocument is the decoded form of a project file. Only the fields
// the reference extraction reads are modeled; everything else in the
// document passes through the decoder untouched. Every field is optional
// in documents found in the wild.
type ProjectDocument struct {
	SourceBin []SourceEntry `json:"sourceBin"`
}

// SourceEntry describes one imported media asset and its tracks.
type SourceEntry struct {
	Src          *string       `json:"src"`
	SourceTracks []SourceTrack `json:"sourceTracks"`
}

// SourceTrack carries per-track metadata. The metadata value sometimes
// encodes a semicolon-delimited filename list.
type SourceTrack struct {
	MetaData MetaString `json:"metaData"`
}

// MetaString is an optional string field. Tracks occasionally carry
// structured (non-string) metadata; those decode to an absent value
// instead of failing the whole document.
type MetaString struct {
	Value string
	OK    bool
}

// UnmarshalJSON accepts any JSON value and records a string when it sees one.
func (m *MetaString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*m = MetaString{}
		return nil
	}

	*m = MetaString{Value: s, OK: true}

	return nil
}
