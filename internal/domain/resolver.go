package domain

import (
	"sort"

	m "trecsweep.dev/pkg/trecsweep/internal/model"
)

// Resolve computes the deletion set for one project directory. listing is
// the non-recursive file inventory, projectFile the document's own base
// name; both reference sets come from Extract. The result is sorted
// lexicographically so reports are independent of enumeration order.
// Resolve never touches the filesystem.
func Resolve(listing []string, typed, all m.RefSet, projectFile string, mode m.Mode) []string {
	// The document itself is never eligible, whatever the mode claims.
	keep := all.Union(m.NewRefSet(projectFile))

	unused := make([]string, 0)

	for _, name := range listing {
		if name == projectFile {
			continue
		}

		switch mode {
		case m.TypedOnly:
			if IsRecording(name) && !typed.Contains(name) {
				unused = append(unused, name)
			}
		case m.AllUnused:
			if !keep.Contains(name) && !IsDocument(name) {
				unused = append(unused, name)
			}
		}
	}

	sort.Strings(unused)

	return unused
}
