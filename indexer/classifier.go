package indexer

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// ClassifyChapter derives a chapter's ordering number and display title
// from its file or directory name. Every decimal digit found in the name
// (extension excluded) is concatenated and parsed as one integer, so
// "chapter_010" is 10 but "vol1ch2" is 12. Names without digits, and
// digit runs too long to fit an int, classify as chapter 0.
func ClassifyChapter(name string) (int, string) {
	base := strings.TrimSuffix(name, filepath.Ext(name))

	var digits strings.Builder
	for _, r := range base {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	number := 0
	if digits.Len() > 0 {
		if parsed, err := strconv.Atoi(digits.String()); err == nil {
			number = parsed
		}
	}

	return number, fmt.Sprintf("Chapter %d", number)
}

// ParseTitleMetadata extracts a display title and author from a title
// directory name of the form "<title>_<author>". Missing tokens default
// to "Unknown".
func ParseTitleMetadata(dirName string) (title, author string) {
	parts := strings.Split(dirName, "_")

	title = "Unknown"
	if len(parts) > 0 && parts[0] != "" {
		title = parts[0]
	}

	author = "Unknown"
	if len(parts) > 1 && parts[1] != "" {
		author = parts[1]
	}

	return title, author
}
