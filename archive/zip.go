package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// zipArchive reads zip and cbz containers. The central directory gives
// random access, so Read only inflates the requested entry.
type zipArchive struct {
	reader *zip.ReadCloser
}

func openZip(path string) (Archive, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &zipArchive{reader: reader}, nil
}

func (a *zipArchive) Entries() ([]string, error) {
	var entries []string
	for _, file := range a.reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		entries = append(entries, file.Name)
	}
	return entries, nil
}

func (a *zipArchive) Read(name string) ([]byte, error) {
	for _, file := range a.reader.File {
		if file.Name != name {
			continue
		}
		src, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		defer src.Close()

		return io.ReadAll(src)
	}
	return nil, ErrEntryNotFound
}

func (a *zipArchive) Close() error {
	return a.reader.Close()
}
