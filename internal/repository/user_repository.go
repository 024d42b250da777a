package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ChrisRistoff/RecipeHub/internal/auth"
	"github.com/ChrisRistoff/RecipeHub/internal/domain"
)

// UserRepository is the persistence boundary for user records. Missing rows
// surface as pgx.ErrNoRows; a username collision on Create surfaces as
// auth.ErrDuplicateUsername.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateBio(ctx context.Context, id int64, bio string) (*domain.User, error)
	UpdateProfileImg(ctx context.Context, id int64, img string) (*domain.User, error)
	UpdateName(ctx context.Context, id int64, name string) (*domain.User, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

const uniqueViolation = "23505"

const userColumns = `id, username, name, profile_img, bio, password_hash, status, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (username, name, profile_img, bio, password_hash, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Name,
		user.ProfileImg,
		user.Bio,
		user.PasswordHash,
		user.Status,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return auth.ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username=$1`
	return r.scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *userRepository) UpdateBio(ctx context.Context, id int64, bio string) (*domain.User, error) {
	const query = `
        UPDATE users SET bio=$1, updated_at=NOW() WHERE id=$2
        RETURNING ` + userColumns
	return r.scanUser(r.db.QueryRow(ctx, query, bio, id))
}

func (r *userRepository) UpdateProfileImg(ctx context.Context, id int64, img string) (*domain.User, error) {
	const query = `
        UPDATE users SET profile_img=$1, updated_at=NOW() WHERE id=$2
        RETURNING ` + userColumns
	return r.scanUser(r.db.QueryRow(ctx, query, img, id))
}

func (r *userRepository) UpdateName(ctx context.Context, id int64, name string) (*domain.User, error) {
	const query = `
        UPDATE users SET name=$1, updated_at=NOW() WHERE id=$2
        RETURNING ` + userColumns
	return r.scanUser(r.db.QueryRow(ctx, query, name, id))
}

func (r *userRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.ProfileImg,
		&user.Bio,
		&user.PasswordHash,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
