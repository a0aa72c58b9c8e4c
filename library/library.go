// Package library manages the VEX source files of a library folder: listing,
// creating, renaming and deleting them.
//
// Create and Rename never fail loudly. Problems are logged and the caller gets
// back the path it would otherwise have had, so an unchanged path means "the
// operation did not happen, see the log".
package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/fivemoreminix/vexed/internal/log"
	"go.uber.org/zap"
)

// Extension is the extension of every VEX source file in a library.
const Extension = ".vfl"

const invalidChars = `<>:"/\|?*`

// IsValidFileName reports whether name can be used as a single path element
// on every platform Houdini runs on.
func IsValidFileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.TrimSpace(name) != name || strings.HasSuffix(name, ".") {
		return false
	}
	for _, r := range name {
		if unicode.IsControl(r) || strings.ContainsRune(invalidChars, r) {
			return false
		}
	}
	return true
}

// withExtension appends Extension to name unless it already ends with it.
func withExtension(name string) string {
	if strings.HasSuffix(name, Extension) {
		return name
	}
	return name + Extension
}

// stem returns name without its extension.
func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Create makes an empty VEX file called name in parentPath and returns its
// path. If the file already exists it is left alone, a warning is logged, and
// its path is returned.
func Create(parentPath, name string) string {
	path := filepath.Join(parentPath, withExtension(name))

	if _, err := os.Stat(path); err == nil {
		log.L().Warn("file already exists", zap.String("name", name), zap.String("path", path))
		return path
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		log.L().Error("create file", zap.String("path", path), zap.Error(err))
		return path
	}
	f.Close()

	log.L().Debug("created file", zap.String("path", path))
	return path
}

// CreateFolder makes a folder called name in parentPath.
func CreateFolder(parentPath, name string) (string, error) {
	if !IsValidFileName(name) {
		return "", fmt.Errorf("%q: %w", name, ErrInvalidName)
	}

	path := filepath.Join(parentPath, name)
	if err := os.Mkdir(path, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return path, fmt.Errorf("%s: %w", path, ErrExists)
		}
		return path, err
	}

	log.L().Debug("created folder", zap.String("path", path))
	return path, nil
}

// Rename gives the VEX file at filePath the name newName, appending Extension
// when it is missing, and returns the new path. The original path is returned,
// and the reason logged, when newName is not a valid file name, filePath does
// not exist or is a directory, or another entry in the same folder already
// uses the name. Renaming a file to its own name does nothing.
func Rename(filePath, newName string) string {
	newName = withExtension(newName)

	newPath, err := checkRename(filePath, newName)
	switch {
	case err != nil:
		log.L().Error("rename refused", zap.String("path", filePath), zap.String("name", newName), zap.Error(err))
		return filePath
	case filepath.Clean(newPath) == filepath.Clean(filePath):
		log.L().Debug("rename to the same name", zap.String("path", filePath))
		return filePath
	}

	if err := os.Rename(filePath, newPath); err != nil {
		log.L().Error("rename file", zap.String("path", filePath), zap.Error(err))
		return filePath
	}

	log.L().Debug("renamed file", zap.String("from", filePath), zap.String("to", newPath))
	return newPath
}

// checkRename validates a rename and returns the path the file would get.
func checkRename(filePath, newName string) (string, error) {
	if !IsValidFileName(newName) {
		return "", fmt.Errorf("%q: %w", newName, ErrInvalidName)
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filePath, ErrNotExist)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s: %w", filePath, ErrIsDirectory)
	}

	dir := filepath.Dir(filePath)
	newPath := filepath.Join(dir, newName)
	if filepath.Clean(newPath) == filepath.Clean(filePath) {
		return newPath, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		name := entry.Name()
		if name == filepath.Base(filePath) {
			continue
		}
		// A folder named like the file's stem would read as the same entry
		// in the explorer.
		if name == newName || (entry.IsDir() && name == stem(newName)) {
			return "", fmt.Errorf("%s: %w", filepath.Join(dir, name), ErrExists)
		}
	}

	return newPath, nil
}

// Delete removes the file or folder at path, folders with their contents. The
// library root itself is never removed.
func Delete(root, path string) error {
	if filepath.Clean(path) == filepath.Clean(root) {
		return ErrLibraryRoot
	}
	if _, err := os.Lstat(path); err != nil {
		return fmt.Errorf("%s: %w", path, ErrNotExist)
	}

	if err := os.RemoveAll(path); err != nil {
		return err
	}

	log.L().Debug("deleted", zap.String("path", path))
	return nil
}

// An Entry is a VEX file or a folder in a library.
type Entry struct {
	Name     string
	Path     string
	IsDir    bool
	Children []Entry // Only for folders
}

// List returns the folders and VEX files under root, folders first, each
// group sorted by name. Files with other extensions are left out.
func List(root string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, de := range dirEntries {
		path := filepath.Join(root, de.Name())
		switch {
		case de.IsDir():
			children, err := List(path)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Entry{de.Name(), path, true, children})
		case filepath.Ext(de.Name()) == Extension:
			entries = append(entries, Entry{Name: de.Name(), Path: path})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}
