package repository

import (
	"context"
	"database/sql"
)

// User mirrors the 'user' table.  The password column holds the credential
// exactly as the client sent it; sign-in compares by equality.
type User struct {
	ID       uint64 `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// FindByEmail returns every row matching the email.  Sign-up uses this to
// check for an existing account, so an empty slice (not an error) is the
// "email is free" answer.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) ([]User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, email, password FROM user WHERE email = ?", email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.Password); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetByEmail fetches the single user owning the email; sql.ErrNoRows when
// no account exists.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, email, password FROM user WHERE email = ? LIMIT 1",
		email).Scan(&u.ID, &u.Email, &u.Password)
	return u, err
}

// Create inserts a user and returns its ID.
func (r *UserRepo) Create(ctx context.Context, email, password string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO user (email, password) VALUES (?, ?)", email, password)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
