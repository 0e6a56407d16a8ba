package utils

import (
	"os"
	"sort"
	"strings"

	"comicvault/archive"
)

// ListImages returns the ordered page entry names of a chapter location.
//
// Directory chapters are sorted lexicographically ascending, so producers
// must zero-pad filenames for numeric order to hold. Archive chapters
// keep the container's native listing order unchanged; the two orderings
// are intentionally not unified.
func ListImages(location string, isArchive bool) ([]string, error) {
	if isArchive {
		return listImagesInArchive(location)
	}
	return listImagesInDirectory(location)
}

// CountImages returns the number of image entries in a chapter location.
func CountImages(location string, isArchive bool) (int, error) {
	images, err := ListImages(location, isArchive)
	if err != nil {
		return 0, err
	}
	return len(images), nil
}

func listImagesInDirectory(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var images []string
	for _, entry := range entries {
		if !entry.IsDir() && IsImageFile(entry.Name()) {
			images = append(images, entry.Name())
		}
	}
	sort.Strings(images)
	return images, nil
}

func listImagesInArchive(archivePath string) ([]string, error) {
	container, err := archive.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer container.Close()

	entries, err := container.Entries()
	if err != nil {
		return nil, err
	}

	var images []string
	for _, entry := range entries {
		if IsImageFile(entry) {
			images = append(images, entry)
		}
	}
	return images, nil
}

// IsImageFile checks if a file is a servable page image based on its
// extension.
func IsImageFile(fileName string) bool {
	lastDotIndex := strings.LastIndex(fileName, ".")
	if lastDotIndex == -1 {
		return false
	}
	ext := strings.ToLower(fileName[lastDotIndex+1:])
	switch ext {
	case "jpg", "jpeg", "png", "gif":
		return true
	default:
		return false
	}
}

// ContentTypeForFile determines the MIME type of a page image from its
// extension, defaulting to a generic binary type.
func ContentTypeForFile(fileName string) string {
	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".jpg"), strings.HasSuffix(lowerName, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(lowerName, ".png"):
		return "image/png"
	case strings.HasSuffix(lowerName, ".gif"):
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
