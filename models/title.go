package models

import (
	"database/sql"
	"time"
)

// Title represents one comic series: a catalog record backed by a
// directory under the library root.
type Title struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Author    string    `json:"author"`
	Path      string    `json:"path"`
	Chapters  []Chapter `json:"chapters,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateTitle adds a new Title to the catalog and returns its id.
func (s *Store) CreateTitle(title Title) (int64, error) {
	now := time.Now()

	query := `
	INSERT INTO titles (name, author, path, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.q.Exec(query, title.Name, title.Author, title.Path, now.Unix(), now.Unix())
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// GetTitle retrieves a single Title by id, with its chapters ordered by
// number. Chapters sharing a number keep their insertion order.
func (s *Store) GetTitle(id int64) (*Title, error) {
	query := `SELECT id, name, author, path, created_at, updated_at FROM titles WHERE id = ?`

	row := s.q.QueryRow(query, id)

	var title Title
	var createdAt, updatedAt int64
	err := row.Scan(&title.ID, &title.Name, &title.Author, &title.Path, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	title.CreatedAt = time.Unix(createdAt, 0)
	title.UpdatedAt = time.Unix(updatedAt, 0)

	chapters, err := s.GetChapters(id)
	if err != nil {
		return nil, err
	}
	title.Chapters = chapters

	return &title, nil
}

// GetTitles retrieves all Titles from the catalog, without their chapters.
func (s *Store) GetTitles() ([]Title, error) {
	query := `SELECT id, name, author, path, created_at, updated_at FROM titles ORDER BY name`

	rows, err := s.q.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []Title
	for rows.Next() {
		var title Title
		var createdAt, updatedAt int64
		if err := rows.Scan(&title.ID, &title.Name, &title.Author, &title.Path, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		title.CreatedAt = time.Unix(createdAt, 0)
		title.UpdatedAt = time.Unix(updatedAt, 0)
		titles = append(titles, title)
	}
	return titles, rows.Err()
}

// DropTitles removes every title and chapter from the catalog. The
// scanner calls this at the start of a rebuild.
func (s *Store) DropTitles() error {
	if _, err := s.q.Exec(`DELETE FROM chapters`); err != nil {
		return err
	}
	_, err := s.q.Exec(`DELETE FROM titles`)
	return err
}
