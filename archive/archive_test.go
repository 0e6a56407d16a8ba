package archive

import (
	"archive/zip"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeZip builds a zip file whose entries appear in the given order.
func writeZip(t *testing.T, path string, entries map[string][]byte, order []string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for _, name := range order {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write(entries[name])
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func TestOpenDispatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chapter.cbz")
	writeZip(t, path, map[string][]byte{"001.jpg": []byte("x")}, []string{"001.jpg"})

	container, err := Open(path)
	require.NoError(t, err)
	defer container.Close()

	_, err = Open(filepath.Join(dir, "chapter.7z"))
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Open(filepath.Join(dir, "chapter.txt"))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "gone.cbz"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.False(t, errors.Is(err, ErrCorrupt))
}

func TestOpenCorruptZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.cbz")
	require.NoError(t, os.WriteFile(path, []byte("this is not a zip file"), 0644))

	_, err := Open(path)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestZipEntriesKeepNativeOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chapter.zip")
	// Deliberately not in lexicographic order.
	order := []string{"b.jpg", "a.png", "c.gif"}
	writeZip(t, path, map[string][]byte{
		"b.jpg": []byte("bee"),
		"a.png": []byte("ay"),
		"c.gif": []byte("see"),
	}, order)

	container, err := Open(path)
	require.NoError(t, err)
	defer container.Close()

	entries, err := container.Entries()
	require.NoError(t, err)
	assert.Equal(t, order, entries)
}

func TestZipReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chapter.cbz")
	payload := []byte{0xFF, 0xD8, 0xFF, 0x00, 0x01, 0x02}
	writeZip(t, path, map[string][]byte{
		"001.jpg": payload,
		"002.jpg": []byte("second"),
	}, []string{"001.jpg", "002.jpg"})

	container, err := Open(path)
	require.NoError(t, err)
	defer container.Close()

	// Bytes must match what an independent reader sees.
	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer reader.Close()
	independent, err := reader.File[0].Open()
	require.NoError(t, err)
	defer independent.Close()

	data, err := container.Read("001.jpg")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestZipReadEntryNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chapter.cbz")
	writeZip(t, path, map[string][]byte{"001.jpg": []byte("x")}, []string{"001.jpg"})

	container, err := Open(path)
	require.NoError(t, err)
	defer container.Close()

	_, err = container.Read("999.jpg")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestIsArchivePath(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"ch1.zip", true},
		{"ch1.CBZ", true},
		{"ch1.rar", true},
		{"ch1.cbr", true},
		{"ch1.tar", false},
		{"ch1", false},
		{"ch1.jpg", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsArchivePath(tt.path), tt.path)
	}
}

func TestRarCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.cbr")
	require.NoError(t, os.WriteFile(path, []byte("not a rar archive"), 0644))

	_, err := Open(path)
	assert.ErrorIs(t, err, ErrCorrupt)
}
