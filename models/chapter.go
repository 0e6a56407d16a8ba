package models

import "database/sql"

// Chapter is one ordered unit of pages within a Title, backed by either
// a directory of images or a compressed archive.
type Chapter struct {
	ID        int64  `json:"id"`
	TitleID   int64  `json:"title_id"`
	Number    int    `json:"number"`
	Name      string `json:"name"`
	File      string `json:"file"`
	PageCount int    `json:"page_count"`
	IsArchive bool   `json:"is_archive"`
}

// AppendChapter adds a chapter to its title and returns the number of
// rows written.
func (s *Store) AppendChapter(chapter Chapter) (int64, error) {
	query := `
	INSERT INTO chapters (title_id, number, name, file, page_count, is_archive)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.q.Exec(query, chapter.TitleID, chapter.Number, chapter.Name, chapter.File, chapter.PageCount, chapter.IsArchive)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// GetChapters retrieves all chapters of a title ordered by number, with
// insertion order as the tie-break for duplicate numbers.
func (s *Store) GetChapters(titleID int64) ([]Chapter, error) {
	query := `
	SELECT id, title_id, number, name, file, page_count, is_archive
	FROM chapters WHERE title_id = ? ORDER BY number, id
	`

	rows, err := s.q.Query(query, titleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chapters []Chapter
	for rows.Next() {
		var chapter Chapter
		if err := rows.Scan(&chapter.ID, &chapter.TitleID, &chapter.Number, &chapter.Name, &chapter.File, &chapter.PageCount, &chapter.IsArchive); err != nil {
			return nil, err
		}
		chapters = append(chapters, chapter)
	}
	return chapters, rows.Err()
}

// FindChapterByNumber retrieves the chapter with the given number within
// a title. The classifier can assign the same number to two files; the
// first one written at scan time wins.
func (s *Store) FindChapterByNumber(titleID int64, number int) (*Chapter, error) {
	query := `
	SELECT id, title_id, number, name, file, page_count, is_archive
	FROM chapters WHERE title_id = ? AND number = ? ORDER BY id LIMIT 1
	`

	row := s.q.QueryRow(query, titleID, number)

	var chapter Chapter
	err := row.Scan(&chapter.ID, &chapter.TitleID, &chapter.Number, &chapter.Name, &chapter.File, &chapter.PageCount, &chapter.IsArchive)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &chapter, nil
}
