// Package indexer walks the library root and rebuilds the catalog:
// one title per direct subdirectory, one chapter per directory or
// archive inside it.
package indexer

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"comicvault/archive"
	"comicvault/models"
	"comicvault/utils"
)

// ErrScanInProgress is returned when a scan is requested while another
// one is still running. Scans are mutually exclusive; callers retry.
var ErrScanInProgress = errors.New("a library scan is already running")

// Indexer rebuilds the catalog from the library root. A scan is a full
// drop-and-rebuild executed inside one store transaction, so readers
// keep the previous catalog until the new one commits.
type Indexer struct {
	store *models.Store
	root  string
	mu    sync.Mutex
}

// New creates an Indexer for the given catalog store and library root.
func New(store *models.Store, libraryRoot string) *Indexer {
	return &Indexer{store: store, root: libraryRoot}
}

// Root returns the library root this indexer scans.
func (idx *Indexer) Root() string {
	return idx.root
}

// Scan replaces the whole catalog with the current state of the library
// root. Unreadable titles and chapters are logged and skipped; an
// unreadable library root aborts the scan with the previous catalog
// intact.
func (idx *Indexer) Scan() error {
	if !idx.mu.TryLock() {
		return ErrScanInProgress
	}
	defer idx.mu.Unlock()

	start := time.Now()
	log.Infof("Starting library scan of '%s'", idx.root)

	entries, err := os.ReadDir(idx.root)
	if err != nil {
		return err
	}

	titles := 0
	err = idx.store.WithTx(func(tx *models.Store) error {
		if err := tx.DropTitles(); err != nil {
			return err
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			titlePath := filepath.Join(idx.root, entry.Name())
			if err := indexTitle(tx, titlePath); err != nil {
				log.Errorf("Failed to index title at '%s': %s", titlePath, err)
				continue
			}
			titles++
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Infof("Library scan completed: %d titles in %s", titles, time.Since(start))
	return nil
}

// indexTitle registers one title directory and all of its chapters.
func indexTitle(tx *models.Store, titlePath string) error {
	name, author := ParseTitleMetadata(filepath.Base(titlePath))

	titleID, err := tx.CreateTitle(models.Title{
		Name:   name,
		Author: author,
		Path:   titlePath,
	})
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(titlePath)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		isArchive := false
		switch {
		case entry.IsDir():
		case archive.IsArchivePath(entry.Name()):
			isArchive = true
		default:
			// Loose files that are not chapter containers are ignored.
			continue
		}

		if err := indexChapter(tx, titleID, titlePath, entry.Name(), isArchive); err != nil {
			log.Errorf("Failed to index chapter '%s' of '%s': %s", entry.Name(), name, err)
		}
	}

	return nil
}

// indexChapter classifies one chapter, counts its pages, and persists it.
// The page count is cached here and never re-derived at retrieval time.
func indexChapter(tx *models.Store, titleID int64, titlePath, fileName string, isArchive bool) error {
	number, chapterName := ClassifyChapter(fileName)

	pageCount, err := utils.CountImages(filepath.Join(titlePath, fileName), isArchive)
	if err != nil {
		return err
	}

	_, err = tx.AppendChapter(models.Chapter{
		TitleID:   titleID,
		Number:    number,
		Name:      chapterName,
		File:      fileName,
		PageCount: pageCount,
		IsArchive: isArchive,
	})
	return err
}
