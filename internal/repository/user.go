package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talentflow/talentflow/pkg/model"
)

// CreateUser inserts a new user and returns the generated id.
func (r *Repository) CreateUser(ctx context.Context, u *model.User) (string, error) {
	const q = `
INSERT INTO users (name, email, password_hash, role, phone, organization)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING user_id
`
	var id string
	row := r.db.QueryRow(ctx, q, u.Name, u.Email, u.PasswordHash, u.Role, u.Phone, u.Organization)
	if err := row.Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("email %s: %w", u.Email, ErrDuplicate)
		}
		return "", fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	const q = `
SELECT user_id, name, email, password_hash, role, phone, organization, created_at, updated_at
FROM users
WHERE email = $1
`
	var u model.User
	row := r.db.QueryRow(ctx, q, email)
	if err := row.Scan(&u.UserID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.Phone, &u.Organization, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, fmt.Errorf("user by email: %w", ErrNotFound)
		}
		return model.User{}, fmt.Errorf("scan user by email: %w", err)
	}
	return u, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (model.User, error) {
	const q = `
SELECT user_id, name, email, password_hash, role, phone, organization, created_at, updated_at
FROM users
WHERE user_id = $1
`
	var u model.User
	row := r.db.QueryRow(ctx, q, id)
	if err := row.Scan(&u.UserID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.Phone, &u.Organization, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, fmt.Errorf("user by id: %w", ErrNotFound)
		}
		return model.User{}, fmt.Errorf("scan user by id: %w", err)
	}
	return u, nil
}
