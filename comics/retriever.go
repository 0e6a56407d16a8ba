// Package comics resolves (title, chapter, page) coordinates into raw
// image bytes, reading from archive containers or chapter directories.
package comics

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"comicvault/archive"
	"comicvault/models"
	"comicvault/utils"
)

// ErrPageOutOfRange is returned when a page index falls outside the
// chapter's enumerated entry list.
var ErrPageOutOfRange = errors.New("page index out of range")

// Page is the resolved result of one retrieval: raw image bytes plus a
// content type derived from the entry's extension.
type Page struct {
	Data        []byte
	ContentType string
}

// Retriever serves individual comic pages out of the catalog's backing
// storage. It holds no per-request state; concurrent retrievals are safe.
type Retriever struct {
	store *models.Store
}

// NewRetriever creates a Retriever bound to a catalog store.
func NewRetriever(store *models.Store) *Retriever {
	return &Retriever{store: store}
}

// GetPage returns the raw bytes and content type of one page.
//
// The chapter's page list is re-enumerated on every call; only the page
// count is cached from scan time. Absent titles, absent chapters,
// locations missing from disk, and out-of-range indexes all surface as
// models.ErrNotFound / ErrPageOutOfRange.
func (r *Retriever) GetPage(titleID int64, chapterNumber, pageIndex int) (*Page, error) {
	title, err := r.store.GetTitle(titleID)
	if err != nil {
		return nil, err
	}

	chapter, err := r.store.FindChapterByNumber(titleID, chapterNumber)
	if err != nil {
		return nil, err
	}

	location := filepath.Join(title.Path, chapter.File)

	images, err := utils.ListImages(location, chapter.IsArchive)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("chapter location %s: %w", location, models.ErrNotFound)
		}
		return nil, err
	}

	if pageIndex < 0 || pageIndex >= len(images) {
		return nil, fmt.Errorf("page %d of %d: %w", pageIndex, len(images), ErrPageOutOfRange)
	}
	entry := images[pageIndex]

	var data []byte
	if chapter.IsArchive {
		data, err = readArchivePage(location, entry)
	} else {
		data, err = os.ReadFile(filepath.Join(location, entry))
		if err != nil && errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("page file %s: %w", entry, models.ErrNotFound)
		}
	}
	if err != nil {
		return nil, err
	}

	return &Page{Data: data, ContentType: utils.ContentTypeForFile(entry)}, nil
}

// readArchivePage opens the container, reads one entry, and closes the
// handle again. Handles are never cached across retrievals.
func readArchivePage(location, entry string) ([]byte, error) {
	container, err := archive.Open(location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("archive %s: %w", location, models.ErrNotFound)
		}
		return nil, err
	}
	defer container.Close()

	return container.Read(entry)
}
