package archive

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/nwaples/rardecode/v2"
)

// rarArchive reads rar and cbr containers. RAR has no central directory,
// so each operation walks the entry headers from the start; rardecode
// skips over the bodies of entries that are not read, so only the target
// entry is ever decompressed.
type rarArchive struct {
	path string
}

func openRar(path string) (Archive, error) {
	// Open once up front so a corrupt container fails at Open time like
	// the zip variant does.
	reader, err := rardecode.OpenReader(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	reader.Close()

	return &rarArchive{path: path}, nil
}

func (a *rarArchive) Entries() ([]string, error) {
	reader, err := rardecode.OpenReader(a.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	defer reader.Close()

	var entries []string
	for {
		header, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if header.IsDir {
			continue
		}
		entries = append(entries, header.Name)
	}
	return entries, nil
}

func (a *rarArchive) Read(name string) ([]byte, error) {
	reader, err := rardecode.OpenReader(a.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	defer reader.Close()

	for {
		header, err := reader.Next()
		if err == io.EOF {
			return nil, ErrEntryNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if header.IsDir || header.Name != name {
			continue
		}
		return io.ReadAll(reader)
	}
}

func (a *rarArchive) Close() error {
	return nil
}
