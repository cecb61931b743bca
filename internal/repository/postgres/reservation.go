package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bridal-backend/internal/domain"
	"bridal-backend/internal/repository"

	"github.com/lib/pq"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `r.id, r.client_id, r.type, r.status, r.wedding_date, r.buffer_before, r.buffer_after, r.availability,
	r.pickup_date, r.return_date, r.availability_date, r.pickup_time, r.return_time, r.availability_time,
	r.fitting_date, r.fitting_time, r.additional_cost, r.travel_cost, r.discount,
	r.security_deposit_percentage, r.advance_percentage, r.security_deposit_amount, r.advance_amount,
	r.items_total, r.subtotal, r.security_deposit, r.advance, r.total, r.notes, r.created_on, r.updated_on,
	coalesce(array_agg(ri.item_id) FILTER (WHERE ri.item_id IS NOT NULL), '{}') AS item_ids`

const reservationJoin = ` FROM reservations r LEFT JOIN reservation_items ri ON ri.reservation_id = r.id`

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO reservations (client_id, type, status, wedding_date, buffer_before, buffer_after, availability,
	            pickup_date, return_date, availability_date, pickup_time, return_time, availability_time,
	            fitting_date, fitting_time, additional_cost, travel_cost, discount,
	            security_deposit_percentage, advance_percentage, security_deposit_amount, advance_amount,
	            items_total, subtotal, security_deposit, advance, total, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)
	          RETURNING id`
	err = tx.QueryRowContext(ctx, query,
		res.ClientID, res.Type, res.Status, res.WeddingDate, res.BufferBefore, res.BufferAfter, res.Availability,
		res.PickupDate, res.ReturnDate, res.AvailabilityDate, res.PickupTime, res.ReturnTime, res.AvailabilityTime,
		res.FittingDate, res.FittingTime, res.AdditionalCost, res.TravelCost, res.Discount,
		res.SecurityDepositPercentage, res.AdvancePercentage, res.SecurityDepositAmount, res.AdvanceAmount,
		res.ItemsTotal, res.Subtotal, res.SecurityDeposit, res.Advance, res.Total, res.Notes,
		time.Now(), time.Now()).Scan(&res.ID)
	if err != nil {
		return err
	}

	if err := insertReservationItems(ctx, tx, res.ID, res.ItemIDs); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	query := `SELECT ` + reservationColumns + reservationJoin + ` WHERE r.id = $1 GROUP BY r.id`
	err := r.db.QueryRowContext(ctx, query, id).Scan(scanReservationDest(res)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE reservations SET client_id=$1, type=$2, status=$3, wedding_date=$4, buffer_before=$5, buffer_after=$6, availability=$7,
	            pickup_date=$8, return_date=$9, availability_date=$10, pickup_time=$11, return_time=$12, availability_time=$13,
	            fitting_date=$14, fitting_time=$15, additional_cost=$16, travel_cost=$17, discount=$18,
	            security_deposit_percentage=$19, advance_percentage=$20, security_deposit_amount=$21, advance_amount=$22,
	            items_total=$23, subtotal=$24, security_deposit=$25, advance=$26, total=$27, notes=$28, updated_on=$29
	          WHERE id=$30`
	result, err := tx.ExecContext(ctx, query,
		res.ClientID, res.Type, res.Status, res.WeddingDate, res.BufferBefore, res.BufferAfter, res.Availability,
		res.PickupDate, res.ReturnDate, res.AvailabilityDate, res.PickupTime, res.ReturnTime, res.AvailabilityTime,
		res.FittingDate, res.FittingTime, res.AdditionalCost, res.TravelCost, res.Discount,
		res.SecurityDepositPercentage, res.AdvancePercentage, res.SecurityDepositAmount, res.AdvanceAmount,
		res.ItemsTotal, res.Subtotal, res.SecurityDeposit, res.Advance, res.Total, res.Notes,
		time.Now(), res.ID)
	if err != nil {
		return err
	}
	if err := requireRow(result); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM reservation_items WHERE reservation_id = $1`, res.ID); err != nil {
		return err
	}
	if err := insertReservationItems(ctx, tx, res.ID, res.ItemIDs); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *reservationRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *reservationRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	where := ""
	args := []interface{}{}
	argIdx := 1
	if status != "" {
		where = fmt.Sprintf(" WHERE r.status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM reservations r`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := fmt.Sprintf(`SELECT `+reservationColumns+reservationJoin+`%s GROUP BY r.id ORDER BY r.created_on DESC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reservations, err := scanReservations(rows)
	if err != nil {
		return nil, 0, err
	}
	return reservations, count, nil
}

func (r *reservationRepository) ListByClient(ctx context.Context, clientID int32) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + reservationJoin + ` WHERE r.client_id = $1 GROUP BY r.id ORDER BY r.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func (r *reservationRepository) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + reservationJoin + ` GROUP BY r.id ORDER BY r.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReservations(rows)
}

func insertReservationItems(ctx context.Context, tx *sql.Tx, reservationID int32, itemIDs []int32) error {
	for _, itemID := range itemIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO reservation_items (reservation_id, item_id) VALUES ($1, $2)`,
			reservationID, itemID); err != nil {
			return err
		}
	}
	return nil
}

func scanReservationDest(res *domain.Reservation) []interface{} {
	return []interface{}{
		&res.ID, &res.ClientID, &res.Type, &res.Status, &res.WeddingDate,
		&res.BufferBefore, &res.BufferAfter, &res.Availability,
		&res.PickupDate, &res.ReturnDate, &res.AvailabilityDate,
		&res.PickupTime, &res.ReturnTime, &res.AvailabilityTime,
		&res.FittingDate, &res.FittingTime,
		&res.AdditionalCost, &res.TravelCost, &res.Discount,
		&res.SecurityDepositPercentage, &res.AdvancePercentage,
		&res.SecurityDepositAmount, &res.AdvanceAmount,
		&res.ItemsTotal, &res.Subtotal, &res.SecurityDeposit, &res.Advance, &res.Total,
		&res.Notes, &res.CreatedOn, &res.UpdatedOn,
		pq.Array(&res.ItemIDs),
	}
}

func scanReservations(rows *sql.Rows) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(scanReservationDest(&res)...); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}
