package jobs

import (
	"context"
	"time"

	"bridal-backend/internal/booking"
	"bridal-backend/internal/logger"
)

// MarkOverdueReturns notifies clients whose confirmed reservations are
// past their return date and have not been picked back up.
func (jr *JobRunner) MarkOverdueReturns() {
	jr.runWithRecovery("MarkOverdueReturns", func() {
		ctx := context.Background()

		query := `
			SELECT r.id, r.return_date, c.name, c.surname, c.email,
			       coalesce(string_agg(i.name, ', '), '')
			FROM reservations r
			JOIN customers c ON c.id = r.client_id
			LEFT JOIN reservation_items ri ON ri.reservation_id = r.id
			LEFT JOIN items i ON i.id = ri.item_id
			WHERE r.status = 'Confirmed'
			  AND r.type = 'Final'
			  AND r.return_date <> ''
			  AND r.return_date < $1
			GROUP BY r.id, c.name, c.surname, c.email
		`

		today := time.Now().Format(booking.DateLayout)
		rows, err := jr.db.QueryContext(ctx, query, today)
		if err != nil {
			logger.Error("Failed to find overdue returns", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id         int32
				returnDate string
				name       string
				surname    string
				email      string
				itemList   string
			)
			if err := rows.Scan(&id, &returnDate, &name, &surname, &email, &itemList); err != nil {
				logger.Error("Failed to scan overdue reservation", "error", err)
				continue
			}
			count++

			if email == "" {
				logger.Debug("Overdue reservation has no client email", "reservation_id", id)
				continue
			}
			if err := jr.services.Email.SendReturnOverdueNotice(ctx, email, name+" "+surname, itemList, returnDate); err != nil {
				logger.Error("Failed to send overdue notice",
					"reservation_id", id, "error", err)
			}
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue reservations", "error", err)
			return
		}

		logger.Info("Processed overdue returns", "count", count)
	})
}

// SendPickupReminders emails clients whose pickup date is tomorrow.
func (jr *JobRunner) SendPickupReminders() {
	jr.runWithRecovery("SendPickupReminders", func() {
		ctx := context.Background()

		query := `
			SELECT r.id, r.pickup_date, r.pickup_time, c.name, c.surname, c.email,
			       coalesce(string_agg(i.name, ', '), '')
			FROM reservations r
			JOIN customers c ON c.id = r.client_id
			LEFT JOIN reservation_items ri ON ri.reservation_id = r.id
			LEFT JOIN items i ON i.id = ri.item_id
			WHERE r.status = 'Confirmed'
			  AND r.type = 'Final'
			  AND r.pickup_date = $1
			GROUP BY r.id, c.name, c.surname, c.email
		`

		tomorrow := time.Now().AddDate(0, 0, 1).Format(booking.DateLayout)
		rows, err := jr.db.QueryContext(ctx, query, tomorrow)
		if err != nil {
			logger.Error("Failed to find upcoming pickups", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id         int32
				pickupDate string
				pickupTime string
				name       string
				surname    string
				email      string
				itemList   string
			)
			if err := rows.Scan(&id, &pickupDate, &pickupTime, &name, &surname, &email, &itemList); err != nil {
				logger.Error("Failed to scan upcoming pickup", "error", err)
				continue
			}
			count++

			if email == "" {
				logger.Debug("Upcoming pickup has no client email", "reservation_id", id)
				continue
			}
			if err := jr.services.Email.SendPickupReminder(ctx, email, name+" "+surname, itemList, pickupDate, pickupTime); err != nil {
				logger.Error("Failed to send pickup reminder",
					"reservation_id", id, "error", err)
			}
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating upcoming pickups", "error", err)
			return
		}

		logger.Info("Sent pickup reminders", "count", count)
	})
}
