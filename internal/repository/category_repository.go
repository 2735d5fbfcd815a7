package repository

import (
	"context"
	"database/sql"
)

// Category mirrors the 'category' table.  Colors are opaque strings chosen
// by the client (hex codes in practice); the server never interprets them.
type Category struct {
	ID              uint64 `json:"id"`
	Name            string `json:"name"`
	BackgroundColor string `json:"backgroundColor"`
	NameColor       string `json:"nameColor"`
	UserID          uint64 `json:"userId"`
}

// CategorySnippet is the reduced projection used by list views.
type CategorySnippet struct {
	ID              uint64 `json:"id"`
	Name            string `json:"name"`
	BackgroundColor string `json:"backgroundColor"`
	NameColor       string `json:"nameColor"`
}

type CategoryRepo struct{ DB *sql.DB }

func NewCategoryRepo(db *sql.DB) *CategoryRepo { return &CategoryRepo{DB: db} }

// ListSnippets returns the snippet projection of every category owned by the user.
func (r *CategoryRepo) ListSnippets(ctx context.Context, userID uint64) ([]CategorySnippet, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, backgroundColor, nameColor FROM category WHERE userId = ?", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snippets := []CategorySnippet{}
	for rows.Next() {
		var s CategorySnippet
		if err := rows.Scan(&s.ID, &s.Name, &s.BackgroundColor, &s.NameColor); err != nil {
			return nil, err
		}
		snippets = append(snippets, s)
	}
	return snippets, rows.Err()
}

// GetByID fetches a single category scoped by id AND owner.
func (r *CategoryRepo) GetByID(ctx context.Context, id, userID uint64) (Category, error) {
	var cat Category
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, backgroundColor, nameColor, userId FROM category WHERE id = ? AND userId = ? LIMIT 1",
		id, userID).Scan(&cat.ID, &cat.Name, &cat.BackgroundColor, &cat.NameColor, &cat.UserID)
	return cat, err
}

// GetSnippetByID fetches the snippet projection of one category, scoped by
// id AND owner.
func (r *CategoryRepo) GetSnippetByID(ctx context.Context, id, userID uint64) (CategorySnippet, error) {
	var s CategorySnippet
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, backgroundColor, nameColor FROM category WHERE id = ? AND userId = ? LIMIT 1",
		id, userID).Scan(&s.ID, &s.Name, &s.BackgroundColor, &s.NameColor)
	return s, err
}

// Create inserts the category and fills in its assigned ID.
func (r *CategoryRepo) Create(ctx context.Context, cat *Category) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO category (name, backgroundColor, nameColor, userId) VALUES (?, ?, ?, ?)",
		cat.Name, cat.BackgroundColor, cat.NameColor, cat.UserID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	cat.ID = uint64(id)
	return nil
}

// Update rewrites the mutable columns scoped by id AND owner and reads the
// row back; sql.ErrNoRows when nothing matched (see NoteRepo.Update).
func (r *CategoryRepo) Update(ctx context.Context, cat Category, userID uint64) (Category, error) {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE category SET name = ?, backgroundColor = ?, nameColor = ? WHERE id = ? AND userId = ?",
		cat.Name, cat.BackgroundColor, cat.NameColor, cat.ID, userID)
	if err != nil {
		return Category{}, err
	}
	return r.GetByID(ctx, cat.ID, userID)
}

// Delete removes a category scoped by id AND owner.  Zero matched rows is
// not an error.  Notes referencing the category keep their categoryId; the
// database side is responsible for any referential action.
func (r *CategoryRepo) Delete(ctx context.Context, id, userID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM category WHERE id = ? AND userId = ?", id, userID)
	return err
}
