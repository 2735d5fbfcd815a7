package repository

import (
	"context"
	"database/sql"
)

// Note mirrors the 'note' table.  CategoryID is a pointer because a note
// may belong to no category; the column is nullable and the client expects
// JSON null rather than 0.  CreationDate is stored and served as the
// ISO-8601 string written once at creation.
type Note struct {
	ID           uint64  `json:"id"`
	Title        string  `json:"title"`
	Text         string  `json:"text"`
	UserID       uint64  `json:"userId"`
	CategoryID   *uint64 `json:"categoryId"`
	Pinned       bool    `json:"pinned"`
	CreationDate string  `json:"creationDate"`
}

// NoteSnippet is the reduced projection used by the list view.
type NoteSnippet struct {
	ID           uint64 `json:"id"`
	Title        string `json:"title"`
	Text         string `json:"text"`
	Pinned       bool   `json:"pinned"`
	CreationDate string `json:"creationDate"`
}

type NoteRepo struct{ DB *sql.DB }

func NewNoteRepo(db *sql.DB) *NoteRepo { return &NoteRepo{DB: db} }

// ListSnippets returns the snippet projection of every note owned by the user.
func (r *NoteRepo) ListSnippets(ctx context.Context, userID uint64) ([]NoteSnippet, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, title, text, pinned, creationDate FROM note WHERE userId = ?", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snippets := []NoteSnippet{}
	for rows.Next() {
		var s NoteSnippet
		if err := rows.Scan(&s.ID, &s.Title, &s.Text, &s.Pinned, &s.CreationDate); err != nil {
			return nil, err
		}
		snippets = append(snippets, s)
	}
	return snippets, rows.Err()
}

// GetByID fetches a single note filtered by id AND owner.  A note that
// exists but belongs to someone else is indistinguishable from a missing
// one: both are sql.ErrNoRows.
func (r *NoteRepo) GetByID(ctx context.Context, id, userID uint64) (Note, error) {
	var n Note
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, title, text, userId, categoryId, pinned, creationDate FROM note WHERE id = ? AND userId = ? LIMIT 1",
		id, userID).Scan(&n.ID, &n.Title, &n.Text, &n.UserID, &n.CategoryID, &n.Pinned, &n.CreationDate)
	return n, err
}

// ListByCategory returns every note of the user within one category.
func (r *NoteRepo) ListByCategory(ctx context.Context, categoryID, userID uint64) ([]Note, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, title, text, userId, categoryId, pinned, creationDate FROM note WHERE categoryId = ? AND userId = ?",
		categoryID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []Note{}
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Text, &n.UserID, &n.CategoryID, &n.Pinned, &n.CreationDate); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Create inserts the note and fills in its assigned ID.
func (r *NoteRepo) Create(ctx context.Context, n *Note) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO note (title, text, userId, categoryId, pinned, creationDate) VALUES (?, ?, ?, ?, ?, ?)",
		n.Title, n.Text, n.UserID, n.CategoryID, n.Pinned, n.CreationDate)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	n.ID = uint64(id)
	return nil
}

// Update rewrites the mutable columns of a note filtered by id AND owner,
// then reads the row back.  The re-read (rather than RowsAffected) decides
// whether the note matched: MySQL reports zero affected rows for a no-op
// update even when the row exists.
func (r *NoteRepo) Update(ctx context.Context, n Note, userID uint64) (Note, error) {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE note SET title = ?, text = ?, categoryId = ?, pinned = ? WHERE id = ? AND userId = ?",
		n.Title, n.Text, n.CategoryID, n.Pinned, n.ID, userID)
	if err != nil {
		return Note{}, err
	}
	return r.GetByID(ctx, n.ID, userID)
}

// SetPinned writes the pinned flag, scoped by id AND owner.
func (r *NoteRepo) SetPinned(ctx context.Context, id, userID uint64, pinned bool) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE note SET pinned = ? WHERE id = ? AND userId = ?", pinned, id, userID)
	return err
}

// Delete removes a note scoped by id AND owner.  Deleting a note that does
// not match (missing or foreign) affects zero rows and is not an error.
func (r *NoteRepo) Delete(ctx context.Context, id, userID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM note WHERE id = ? AND userId = ?", id, userID)
	return err
}
