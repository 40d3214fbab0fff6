package scripts

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/temirov/scriptdash/internal/filesystem"
)

const (
	defaultScriptExtensionConstant     = ".py"
	extensionSeparatorConstant         = "."
	directoryNotFoundMessageConstant   = "directory not found"
	directoryNotFoundTemplateConstant  = "%w: %s"
	directoryReadErrorTemplateConstant = "failed to read directory %s: %w"
)

// ErrDirectoryNotFound indicates an enumerated directory does not exist.
var ErrDirectoryNotFound = errors.New(directoryNotFoundMessageConstant)

// Catalog lists subfolders and scripts from the live filesystem.
type Catalog struct {
	fileSystem      filesystem.FileSystem
	scriptExtension string
}

// NewCatalog constructs a Catalog matching files with scriptExtension. A blank extension selects ".py".
func NewCatalog(fileSystem filesystem.FileSystem, scriptExtension string) *Catalog {
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}
	return &Catalog{fileSystem: fileSystem, scriptExtension: NormalizeExtension(scriptExtension)}
}

// ListSubfolders returns the names of the immediate subdirectories of directory, sorted lexicographically.
func (catalog *Catalog) ListSubfolders(directory string) ([]string, error) {
	return catalog.listEntries(directory, func(entryMode fs.FileMode, _ string) bool {
		return entryMode.IsDir()
	})
}

// ListScripts returns the names of the regular files in directory carrying the script extension, sorted
// lexicographically.
func (catalog *Catalog) ListScripts(directory string) ([]string, error) {
	return catalog.listEntries(directory, func(entryMode fs.FileMode, entryName string) bool {
		return entryMode.IsRegular() && strings.HasSuffix(entryName, catalog.scriptExtension)
	})
}

func (catalog *Catalog) listEntries(directory string, include func(entryMode fs.FileMode, entryName string) bool) ([]string, error) {
	entries, readError := catalog.fileSystem.ReadDir(directory)
	if readError != nil {
		if errors.Is(readError, fs.ErrNotExist) {
			return nil, fmt.Errorf(directoryNotFoundTemplateConstant, ErrDirectoryNotFound, directory)
		}
		return nil, fmt.Errorf(directoryReadErrorTemplateConstant, directory, readError)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		entryMode, resolved := catalog.resolveMode(directory, entry)
		if !resolved {
			continue
		}
		if include(entryMode, entry.Name()) {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}

// resolveMode follows symbolic links so linked folders and scripts are listed like their targets.
func (catalog *Catalog) resolveMode(directory string, entry fs.DirEntry) (fs.FileMode, bool) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.Type(), true
	}
	targetInfo, statError := catalog.fileSystem.Stat(filepath.Join(directory, entry.Name()))
	if statError != nil {
		return 0, false
	}
	return targetInfo.Mode(), true
}

// NormalizeExtension trims the extension and ensures it starts with a dot.
func NormalizeExtension(extension string) string {
	trimmedExtension := strings.TrimSpace(extension)
	if len(trimmedExtension) == 0 {
		return defaultScriptExtensionConstant
	}
	if !strings.HasPrefix(trimmedExtension, extensionSeparatorConstant) {
		trimmedExtension = extensionSeparatorConstant + trimmedExtension
	}
	return trimmedExtension
}
