package repository

import (
	"context"

	"github.com/ChrisRistoff/RecipeHub/internal/domain"
)

// CuisineRepository defines persistence access for the cuisine reference table.
type CuisineRepository interface {
	Create(ctx context.Context, cuisine *domain.Cuisine) error
	GetByID(ctx context.Context, id int64) (*domain.Cuisine, error)
	ListAll(ctx context.Context) ([]domain.Cuisine, error)
}

type cuisineRepository struct {
	db DB
}

// NewCuisineRepository returns a Postgres-backed implementation.
func NewCuisineRepository(db DB) CuisineRepository {
	return &cuisineRepository{db: db}
}

func (r *cuisineRepository) Create(ctx context.Context, cuisine *domain.Cuisine) error {
	const query = `
        INSERT INTO cuisines (name, cuisine_img)
        VALUES ($1, $2)
        ON CONFLICT (name) DO UPDATE SET cuisine_img = EXCLUDED.cuisine_img
        RETURNING id`

	return r.db.QueryRow(ctx, query, cuisine.Name, cuisine.CuisineImg).Scan(&cuisine.ID)
}

func (r *cuisineRepository) GetByID(ctx context.Context, id int64) (*domain.Cuisine, error) {
	const query = `SELECT id, name, cuisine_img FROM cuisines WHERE id=$1`

	var cuisine domain.Cuisine
	if err := r.db.QueryRow(ctx, query, id).Scan(&cuisine.ID, &cuisine.Name, &cuisine.CuisineImg); err != nil {
		return nil, err
	}
	return &cuisine, nil
}

func (r *cuisineRepository) ListAll(ctx context.Context) ([]domain.Cuisine, error) {
	const query = `SELECT id, name, cuisine_img FROM cuisines ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cuisines := make([]domain.Cuisine, 0)
	for rows.Next() {
		var cuisine domain.Cuisine
		if err := rows.Scan(&cuisine.ID, &cuisine.Name, &cuisine.CuisineImg); err != nil {
			return nil, err
		}
		cuisines = append(cuisines, cuisine)
	}
	return cuisines, rows.Err()
}
