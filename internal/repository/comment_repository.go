package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ChrisRistoff/RecipeHub/internal/domain"
)

// CommentRepository defines persistence access for recipe comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Comment, error)
	UpdateBody(ctx context.Context, id int64, body string) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type commentRepository struct {
	db DB
}

// NewCommentRepository returns a Postgres-backed implementation.
func NewCommentRepository(db DB) CommentRepository {
	return &commentRepository{db: db}
}

const commentColumns = `id, recipe_id, user_id, author, body, created_at, updated_at`

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	const query = `
        INSERT INTO recipe_comments (recipe_id, user_id, author, body)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		comment.RecipeID,
		comment.UserID,
		comment.Author,
		comment.Body,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	const query = `SELECT ` + commentColumns + ` FROM recipe_comments WHERE id=$1`
	return scanComment(r.db.QueryRow(ctx, query, id))
}

func (r *commentRepository) ListByRecipe(ctx context.Context, recipeID int64) ([]domain.Comment, error) {
	const query = `
        SELECT ` + commentColumns + `
        FROM recipe_comments WHERE recipe_id=$1
        ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *comment)
	}
	return comments, rows.Err()
}

func (r *commentRepository) UpdateBody(ctx context.Context, id int64, body string) (*domain.Comment, error) {
	const query = `
        UPDATE recipe_comments SET body=$1, updated_at=NOW() WHERE id=$2
        RETURNING ` + commentColumns
	return scanComment(r.db.QueryRow(ctx, query, body, id))
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM recipe_comments WHERE id=$1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var comment domain.Comment
	if err := row.Scan(
		&comment.ID,
		&comment.RecipeID,
		&comment.UserID,
		&comment.Author,
		&comment.Body,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &comment, nil
}
