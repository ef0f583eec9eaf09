// Package adapter contains filesystem and trash adapters for the
// trecsweep CLI.
package adapter

import (
	"os"
	"path/filepath"
	"sort"

	m "trecsweep.dev/pkg/trecsweep/internal/model"
)

// ProjectFSAdapter abstracts the filesystem operations the domain layer
// relies on when scanning project directories. It intentionally hides
// direct `os` access so the workflow logic can be tested without touching
// the disk.
type ProjectFSAdapter interface {
	// ListFiles returns the base names of the plain files directly inside
	// dir (no subdirectories, no recursion), sorted lexicographically.
	ListFiles(dir m.Path) ([]string, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the domain can check
	// existence or distinguish files from directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into
// the domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalProjectFSAdapter backs ProjectFSAdapter with the local filesystem.
type LocalProjectFSAdapter struct{}

// NewLocalProjectFSAdapter constructs a LocalProjectFSAdapter ready to be
// wired into the workflow.
func NewLocalProjectFSAdapter() *LocalProjectFSAdapter {
	return &LocalProjectFSAdapter{}
}

// ListFiles returns the sorted base names of the plain files in dir.
func (a *LocalProjectFSAdapter) ListFiles(dir m.Path) ([]string, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		names = append(names, entry.Name())
	}

	sort.Strings(names)

	return names, nil
}

// ReadFile loads file contents from disk.
func (a *LocalProjectFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalProjectFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalProjectFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// JoinPath joins path elements into a single path.
func (a *LocalProjectFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
