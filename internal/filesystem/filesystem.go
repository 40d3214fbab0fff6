// Package filesystem abstracts the operating system calls used by the task
// store and the script catalog so both can be exercised against fakes.
package filesystem

import (
	"io/fs"
	"os"
)

const defaultFilePermissionsConstant fs.FileMode = 0o644

// FileSystem describes the filesystem operations the dashboard depends on.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, permissions fs.FileMode) error
	ReadDir(path string) ([]fs.DirEntry, error)
}

// OSFileSystem implements FileSystem using the operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads file contents.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file with the supplied permissions, truncating existing content.
func (OSFileSystem) WriteFile(path string, data []byte, permissions fs.FileMode) error {
	if permissions == 0 {
		permissions = defaultFilePermissionsConstant
	}
	return os.WriteFile(path, data, permissions)
}

// ReadDir lists directory entries sorted by file name.
func (OSFileSystem) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}
