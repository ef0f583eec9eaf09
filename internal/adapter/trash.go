package adapter

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	m "trecsweep.dev/pkg/trecsweep/internal/model"
)

// Trasher moves files to the platform trash store. Each call is
// independent; a failure for one file never affects another.
type Trasher interface {
	Trash(path m.Path) error
}

// XDGTrash implements Trasher following the freedesktop.org Trash
// specification: the file is renamed into $XDG_DATA_HOME/Trash/files and
// a companion .trashinfo record is written so desktop environments can
// restore it.
type XDGTrash struct{}

// NewXDGTrash constructs an XDGTrash.
func NewXDGTrash() *XDGTrash {
	return &XDGTrash{}
}

// Trash moves the file at path into the user's trash store.
func (t *XDGTrash) Trash(path m.Path) error {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return err
	}

	if _, err := os.Stat(abs); err != nil {
		return err
	}

	filesDir, infoDir, err := trashDirs()
	if err != nil {
		return err
	}

	name, err := reserveTrashName(filesDir, infoDir, filepath.Base(abs))
	if err != nil {
		return err
	}

	info := trashInfoRecord(abs, time.Now())
	infoPath := filepath.Join(infoDir, name+".trashinfo")

	if err := os.WriteFile(infoPath, []byte(info), 0o600); err != nil {
		return err
	}

	if err := moveFile(abs, filepath.Join(filesDir, name)); err != nil {
		_ = os.Remove(infoPath)
		return err
	}

	return nil
}

// trashDirs resolves and creates the Trash/files and Trash/info
// directories under the user's XDG data home.
func trashDirs() (filesDir, infoDir string, err error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", "", err
		}

		dataHome = filepath.Join(home, ".local", "share")
	}

	trashDir := filepath.Join(dataHome, "Trash")
	filesDir = filepath.Join(trashDir, "files")
	infoDir = filepath.Join(trashDir, "info")

	for _, dir := range []string{filesDir, infoDir} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", "", err
		}
	}

	return filesDir, infoDir, nil
}

// reserveTrashName picks a base name that collides with neither an
// existing trashed file nor an existing info record.
func reserveTrashName(filesDir, infoDir, base string) (string, error) {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	name := base
	for i := 2; ; i++ {
		_, fileErr := os.Lstat(filepath.Join(filesDir, name))
		_, infoErr := os.Lstat(filepath.Join(infoDir, name+".trashinfo"))

		if os.IsNotExist(fileErr) && os.IsNotExist(infoErr) {
			return name, nil
		}

		if fileErr != nil && !os.IsNotExist(fileErr) {
			return "", fileErr
		}

		if infoErr != nil && !os.IsNotExist(infoErr) {
			return "", infoErr
		}

		name = fmt.Sprintf("%s.%d%s", stem, i, ext)
	}
}

// trashInfoRecord renders the .trashinfo payload with the original
// location URL-escaped as freedesktop.org requires.
func trashInfoRecord(abs string, deleted time.Time) string {
	escaped := (&url.URL{Path: abs}).EscapedPath()

	return fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		escaped, deleted.Format("2006-01-02T15:04:05"))
}

// moveFile renames src to dst, falling back to copy-and-remove when the
// trash store lives on a different device.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := copyFile(src, dst); err != nil {
		return err
	}

	return os.Remove(src)
}

// copyFile copies a single file preserving its mode.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return os.Chmod(dst, info.Mode())
}
