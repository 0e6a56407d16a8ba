// Package archive provides uniform read-only access to the compressed
// containers a chapter can be stored in. ZIP-family (.zip, .cbz) and
// RAR-family (.rar, .cbr) containers are supported behind one interface;
// reading an entry never inflates the rest of the container.
package archive

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupported is returned when a file extension is not a known
	// container format.
	ErrUnsupported = errors.New("unsupported archive format")

	// ErrCorrupt is returned when a container cannot be opened or parsed.
	ErrCorrupt = errors.New("archive cannot be parsed")

	// ErrEntryNotFound is returned when a named entry is absent from the
	// container. Hitting it means the listing and the container disagree.
	ErrEntryNotFound = errors.New("entry not found in archive")
)

// Archive is a read-only view of one compressed container.
type Archive interface {
	// Entries returns the file entry names in the container's native
	// listing order. Directory entries are omitted.
	Entries() ([]string, error)

	// Read returns the raw bytes of the named entry, or ErrEntryNotFound.
	Read(name string) ([]byte, error)

	// Close releases the underlying file handle.
	Close() error
}

// Open opens the container at path, dispatching on its file extension.
func Open(path string) (Archive, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip", ".cbz":
		return openZip(path)
	case ".rar", ".cbr":
		return openRar(path)
	default:
		return nil, ErrUnsupported
	}
}

// IsArchivePath reports whether path has a supported container extension.
func IsArchivePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip", ".cbz", ".rar", ".cbr":
		return true
	default:
		return false
	}
}
