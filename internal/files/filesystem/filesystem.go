package filesystem

import (
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File represents an individual file with its metadata and content accessor
type File interface {
	// Path returns the absolute path to the file
	Path() string

	// RelativePath returns the path relative to the walked directory
	RelativePath() string

	// Info returns file metadata
	Info() FileInfo

	// ReadContent returns the file's content
	ReadContent() ([]byte, error)
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk visits the directory tree in lexical order. If fn returns an
	// error, walking stops.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider gives access to directories and files.
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// OpenFile opens a regular file for streaming reads.
	OpenFile(path string) (io.ReadCloser, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}

// DocumentExt is the extension of MDTO documents.
const DocumentExt = ".xml"

// FindDocuments returns the paths of every *.xml file under root, sorted.
// A root that is a file is returned as is, whatever its extension.
func FindDocuments(provider FileSystemProvider, root string) ([]string, error) {
	info, err := provider.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	dir, err := provider.Open(root)
	if err != nil {
		return nil, err
	}
	var paths []string
	err = dir.Walk(func(f File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if f.Info().IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(f.Path()), DocumentExt) {
			paths = append(paths, f.Path())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
