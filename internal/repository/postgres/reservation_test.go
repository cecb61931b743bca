package postgres_test

import (
	"context"
	"testing"
	"time"

	"bridal-backend/internal/domain"
	"bridal-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "client_id", "type", "status", "wedding_date", "buffer_before", "buffer_after", "availability",
		"pickup_date", "return_date", "availability_date", "pickup_time", "return_time", "availability_time",
		"fitting_date", "fitting_time", "additional_cost", "travel_cost", "discount",
		"security_deposit_percentage", "advance_percentage", "security_deposit_amount", "advance_amount",
		"items_total", "subtotal", "security_deposit", "advance", "total", "notes", "created_on", "updated_on",
		"item_ids",
	})
}

func TestReservationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := reservationRows().AddRow(
			1, 2, "Final", "Confirmed", "2024-06-15", 5, 3, 2,
			"2024-06-10", "2024-06-18", "2024-06-20", "10:00", "18:00", "",
			"", "", 0.0, 0.0, 0.0,
			30.0, 50.0, nil, nil,
			1000.0, 1000.0, 300.0, 500.0, 1300.0, "", time.Now(), time.Now(),
			pq.Array([]int32{4, 7}))

		mock.ExpectQuery("SELECT (.+) FROM reservations r LEFT JOIN reservation_items").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		res, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Equal(t, domain.ReservationTypeFinal, res.Type)
		assert.Equal(t, "2024-06-10", res.PickupDate)
		assert.Equal(t, "2024-06-20", res.AvailabilityDate)
		assert.Equal(t, []int32{4, 7}, res.ItemIDs)
	})
}

func TestReservationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	t.Run("InsertsItemLinks", func(t *testing.T) {
		res := &domain.Reservation{
			ClientID:     2,
			Type:         domain.ReservationTypeFinal,
			Status:       domain.ReservationStatusDraft,
			ItemIDs:      []int32{4, 7},
			WeddingDate:  "2024-06-15",
			BufferBefore: 5,
			BufferAfter:  3,
			Availability: 2,
			PickupDate:   "2024-06-10",
			ReturnDate:   "2024-06-18",
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO reservations").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
		mock.ExpectExec("INSERT INTO reservation_items").
			WithArgs(int32(5), int32(4)).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO reservation_items").
			WithArgs(int32(5), int32(7)).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		err := repo.Create(ctx, res)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), res.ID)
	})
}
