package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bridal-backend/internal/domain"
	"bridal-backend/internal/repository"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, name, description, rental_cost, quantity, category_id, sub_category, size, color, status, primary_photo, created_on, updated_on`

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `INSERT INTO items (name, description, rental_cost, quantity, category_id, sub_category, size, color, status, primary_photo, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		item.Name, item.Description, item.RentalCost, item.Quantity, item.CategoryID,
		item.SubCategory, item.Size, item.Color, item.Status, item.PrimaryPhoto,
		time.Now(), time.Now()).Scan(&item.ID)
}

func (r *itemRepository) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	item := &domain.Item{}
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.RentalCost, &item.Quantity,
		&item.CategoryID, &item.SubCategory, &item.Size, &item.Color, &item.Status,
		&item.PrimaryPhoto, &item.CreatedOn, &item.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *itemRepository) Update(ctx context.Context, item *domain.Item) error {
	query := `UPDATE items SET name=$1, description=$2, rental_cost=$3, quantity=$4, category_id=$5, sub_category=$6, size=$7, color=$8, status=$9, primary_photo=$10, updated_on=$11 WHERE id=$12`
	result, err := r.db.ExecContext(ctx, query,
		item.Name, item.Description, item.RentalCost, item.Quantity, item.CategoryID,
		item.SubCategory, item.Size, item.Color, item.Status, item.PrimaryPhoto,
		time.Now(), item.ID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *itemRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *itemRepository) List(ctx context.Context, query string, page, pageSize int32) ([]domain.Item, int32, error) {
	where := ""
	args := []interface{}{}
	argIdx := 1
	if query != "" {
		where = fmt.Sprintf(" WHERE name ILIKE $%d OR sub_category ILIKE $%d", argIdx, argIdx)
		args = append(args, "%"+query+"%")
		argIdx++
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM items`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	listQuery := fmt.Sprintf(`SELECT `+itemColumns+` FROM items%s ORDER BY created_on DESC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func (r *itemRepository) ListAll(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func scanItems(rows *sql.Rows) ([]domain.Item, error) {
	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.RentalCost, &item.Quantity,
			&item.CategoryID, &item.SubCategory, &item.Size, &item.Color, &item.Status,
			&item.PrimaryPhoto, &item.CreatedOn, &item.UpdatedOn); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
