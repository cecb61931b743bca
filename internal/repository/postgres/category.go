package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bridal-backend/internal/domain"
	"bridal-backend/internal/repository"

	"github.com/lib/pq"
)

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, cat *domain.Category) error {
	query := `INSERT INTO categories (name, sub_categories, created_on, updated_on) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		cat.Name, pq.Array(cat.SubCategories), time.Now(), time.Now()).Scan(&cat.ID)
}

func (r *categoryRepository) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	cat := &domain.Category{}
	query := `SELECT id, name, sub_categories, created_on, updated_on FROM categories WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&cat.ID, &cat.Name, pq.Array(&cat.SubCategories), &cat.CreatedOn, &cat.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return cat, nil
}

func (r *categoryRepository) Update(ctx context.Context, cat *domain.Category) error {
	query := `UPDATE categories SET name=$1, sub_categories=$2, updated_on=$3 WHERE id=$4`
	result, err := r.db.ExecContext(ctx, query, cat.Name, pq.Array(cat.SubCategories), time.Now(), cat.ID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *categoryRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, sub_categories, created_on, updated_on FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var cat domain.Category
		if err := rows.Scan(&cat.ID, &cat.Name, pq.Array(&cat.SubCategories), &cat.CreatedOn, &cat.UpdatedOn); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}
