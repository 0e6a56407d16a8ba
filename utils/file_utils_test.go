package utils

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeChapterZip(t *testing.T, path string, names []string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for _, name := range names {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(name))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		fileName string
		expected bool
	}{
		{"page.jpg", true},
		{"page.JPEG", true},
		{"page.png", true},
		{"page.gif", true},
		{"page.webp", false},
		{"page.bmp", false},
		{"page.txt", false},
		{"page", false},
		{"ComicInfo.xml", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsImageFile(tt.fileName), tt.fileName)
	}
}

func TestContentTypeForFile(t *testing.T) {
	tests := []struct {
		fileName string
		expected string
	}{
		{"p.jpg", "image/jpeg"},
		{"p.JPEG", "image/jpeg"},
		{"p.png", "image/png"},
		{"p.gif", "image/gif"},
		{"p.unknown", "application/octet-stream"},
		{"p", "application/octet-stream"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ContentTypeForFile(tt.fileName), tt.fileName)
	}
}

func TestListImagesDirectorySortsLexicographically(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"03.png", "01.jpg", "02.jpg", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "extras"), 0755))

	images, err := ListImages(dir, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"01.jpg", "02.jpg", "03.png"}, images)

	// Re-running on an unchanged directory is idempotent.
	again, err := ListImages(dir, false)
	require.NoError(t, err)
	assert.Equal(t, images, again)
}

func TestListImagesArchiveKeepsListingOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ch.cbz")
	writeChapterZip(t, path, []string{"cover.png", "002.jpg", "001.jpg", "readme.txt", "thumbs.db"})

	images, err := ListImages(path, true)
	require.NoError(t, err)
	// Native listing order, filtered but never re-sorted.
	assert.Equal(t, []string{"cover.png", "002.jpg", "001.jpg"}, images)
}

func TestCountImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.jpg", "b.gif", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}

	count, err := CountImages(dir, false)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	archivePath := filepath.Join(dir, "ch.zip")
	writeChapterZip(t, archivePath, []string{"1.jpg", "2.jpg", "3.jpg"})

	count, err = CountImages(archivePath, true)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestListImagesMissingLocation(t *testing.T) {
	_, err := ListImages(filepath.Join(t.TempDir(), "gone"), false)
	assert.Error(t, err)
}
