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

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, name, surname, address, phone, email, id_number, wedding_date, wedding_time, wedding_city, wedding_venue, notes, created_on, updated_on`

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (name, surname, address, phone, email, id_number, wedding_date, wedding_time, wedding_city, wedding_venue, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		c.Name, c.Surname, c.Address, c.Phone, c.Email, c.IDNumber,
		c.WeddingDate, c.WeddingTime, c.WeddingCity, c.WeddingVenue, c.Notes,
		time.Now(), time.Now()).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Surname, &c.Address, &c.Phone, &c.Email, &c.IDNumber,
		&c.WeddingDate, &c.WeddingTime, &c.WeddingCity, &c.WeddingVenue, &c.Notes,
		&c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name=$1, surname=$2, address=$3, phone=$4, email=$5, id_number=$6, wedding_date=$7, wedding_time=$8, wedding_city=$9, wedding_venue=$10, notes=$11, updated_on=$12 WHERE id=$13`
	result, err := r.db.ExecContext(ctx, query,
		c.Name, c.Surname, c.Address, c.Phone, c.Email, c.IDNumber,
		c.WeddingDate, c.WeddingTime, c.WeddingCity, c.WeddingVenue, c.Notes,
		time.Now(), c.ID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *customerRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *customerRepository) List(ctx context.Context, query string, page, pageSize int32) ([]domain.Customer, int32, error) {
	where := ""
	args := []interface{}{}
	argIdx := 1
	if query != "" {
		where = fmt.Sprintf(" WHERE name ILIKE $%d OR surname ILIKE $%d OR phone ILIKE $%d", argIdx, argIdx, argIdx)
		args = append(args, "%"+query+"%")
		argIdx++
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM customers`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	listQuery := fmt.Sprintf(`SELECT `+customerColumns+` FROM customers%s ORDER BY created_on DESC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Surname, &c.Address, &c.Phone, &c.Email, &c.IDNumber,
			&c.WeddingDate, &c.WeddingTime, &c.WeddingCity, &c.WeddingVenue, &c.Notes,
			&c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}
	return customers, count, rows.Err()
}

func (r *customerRepository) ListAll(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Surname, &c.Address, &c.Phone, &c.Email, &c.IDNumber,
			&c.WeddingDate, &c.WeddingTime, &c.WeddingCity, &c.WeddingVenue, &c.Notes,
			&c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// requireRow maps zero affected rows to ErrNotFound.
func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
