package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "trecsweep.dev/pkg/trecsweep/internal/model"
)

func strptr(s string) *string {
	return &s
}

func TestExtract_EmptyDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  *m.ProjectDocument
	}{
		{"nil document", nil},
		{"no source bin", &m.ProjectDocument{}},
		{"empty source bin", &m.ProjectDocument{SourceBin: []m.SourceEntry{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typed, all := Extract(tt.doc)
			assert.Empty(t, typed)
			assert.Empty(t, all)
		})
	}
}

func TestExtract_PrimaryReference(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantTyped bool
	}{
		{"recording", "clip1.trec", true},
		{"recording uppercase extension", "clip1.TREC", true},
		{"video", "clip1.mp4", false},
		{"audio", "music.wav", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &m.ProjectDocument{SourceBin: []m.SourceEntry{{Src: strptr(tt.src)}}}

			typed, all := Extract(doc)

			assert.True(t, all.Contains(tt.src), "all refs")
			assert.Equal(t, tt.wantTyped, typed.Contains(tt.src), "typed refs")
		})
	}
}

func TestExtract_TrackMetadata(t *testing.T) {
	doc := &m.ProjectDocument{SourceBin: []m.SourceEntry{{
		SourceTracks: []m.SourceTrack{
			{MetaData: m.MetaString{Value: "a.trec; b.wav ; c.trec", OK: true}},
		},
	}}}

	typed, all := Extract(doc)

	for _, name := range []string{"a.trec", "b.wav", "c.trec"} {
		assert.True(t, all.Contains(name), "all refs should hold %s", name)
	}

	assert.ElementsMatch(t, []string{"a.trec", "c.trec"}, typed.Sorted())
}

func TestExtract_MetadataWithoutSemicolonIgnored(t *testing.T) {
	doc := &m.ProjectDocument{SourceBin: []m.SourceEntry{{
		SourceTracks: []m.SourceTrack{
			{MetaData: m.MetaString{Value: "lonely.trec", OK: true}},
		},
	}}}

	typed, all := Extract(doc)

	assert.Empty(t, typed)
	assert.Empty(t, all)
}

func TestExtract_NonStringMetadataIgnored(t *testing.T) {
	doc := &m.ProjectDocument{SourceBin: []m.SourceEntry{{
		SourceTracks: []m.SourceTrack{{MetaData: m.MetaString{}}},
	}}}

	typed, all := Extract(doc)

	assert.Empty(t, typed)
	assert.Empty(t, all)
}

func TestExtract_MalformedEntriesContributeNothing(t *testing.T) {
	doc := &m.ProjectDocument{SourceBin: []m.SourceEntry{
		{}, // no src, no tracks
		{SourceTracks: []m.SourceTrack{{}}},
		{Src: strptr("real.trec")},
	}}

	typed, all := Extract(doc)

	assert.Equal(t, []string{"real.trec"}, typed.Sorted())
	assert.Equal(t, []string{"real.trec"}, all.Sorted())
}

func TestExtract_TypedIsSubsetOfAll(t *testing.T) {
	doc := &m.ProjectDocument{SourceBin: []m.SourceEntry{
		{Src: strptr("clip.trec")},
		{Src: strptr("clip.mp4")},
		{SourceTracks: []m.SourceTrack{
			{MetaData: m.MetaString{Value: "x.trec;y.png", OK: true}},
		}},
	}}

	typed, all := Extract(doc)

	require.NotEmpty(t, typed)
	for name := range typed {
		assert.True(t, all.Contains(name), "%s in typed but not in all", name)
	}
}

func TestSplitMetadataList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"plain list", "a.trec;b.wav", []string{"a.trec", "b.wav"}},
		{"whitespace trimmed", " a.trec ; b.wav ", []string{"a.trec", "b.wav"}},
		{"empty pieces dropped", "a.trec;;  ;b.wav;", []string{"a.trec", "b.wav"}},
		{"only separators", ";;;", []string{}},
		{"empty string", "", []string{}},
		{"single piece", "a.trec", []string{"a.trec"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitMetadataList(tt.value))
		})
	}
}

func TestIsRecording(t *testing.T) {
	assert.True(t, IsRecording("a.trec"))
	assert.True(t, IsRecording("a.TREC"))
	assert.False(t, IsRecording("a.mp4"))
	assert.False(t, IsRecording("trec"))
}

func TestIsDocument(t *testing.T) {
	assert.True(t, IsDocument("proj.tscproj"))
	assert.True(t, IsDocument("settings.JSON"))
	assert.False(t, IsDocument("a.trec"))
}
