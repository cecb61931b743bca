package service

import (
	"context"
	"testing"

	"bridal-backend/internal/cache"
	"bridal-backend/internal/config"
	"bridal-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newReservationFixture() (*MockReservationRepo, *MockPaymentRepo, *MockCustomerRepo, *MockItemRepo, *cache.Snapshot, ReservationService) {
	reservationRepo := new(MockReservationRepo)
	paymentRepo := new(MockPaymentRepo)
	customerRepo := new(MockCustomerRepo)
	itemRepo := new(MockItemRepo)
	snapshot := cache.NewSnapshot()
	defaults := config.BookingConfig{
		BufferBeforeDays:   2,
		BufferAfterDays:    2,
		AvailabilityDays:   1,
		Currency:           "MAD",
		SecurityDepositPct: 30,
		AdvancePct:         50,
	}
	svc := NewReservationService(reservationRepo, paymentRepo, customerRepo, itemRepo, snapshot, defaults)
	return reservationRepo, paymentRepo, customerRepo, itemRepo, snapshot, svc
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("DerivesWindowAndFinancials", func(t *testing.T) {
		reservationRepo, _, customerRepo, _, snapshot, svc := newReservationFixture()
		snapshot.UpsertItem(domain.Item{ID: 4, Name: "Aurora Gown", RentalCost: 1000, Quantity: 1, Status: domain.ItemStatusPublished})

		customerRepo.On("GetByID", ctx, int32(2)).Return(&domain.Customer{ID: 2}, nil)
		reservationRepo.On("Create", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil)

		res := &domain.Reservation{
			ClientID:                  2,
			Type:                      domain.ReservationTypeFinal,
			ItemIDs:                   []int32{4},
			WeddingDate:               "2024-06-15",
			BufferBefore:              5,
			BufferAfter:               3,
			Availability:              2,
			SecurityDepositPercentage: 30,
			AdvancePercentage:         50,
		}
		err := svc.CreateReservation(ctx, res)
		assert.NoError(t, err)

		assert.Equal(t, "2024-06-10", res.PickupDate)
		assert.Equal(t, "2024-06-18", res.ReturnDate)
		assert.Equal(t, "2024-06-20", res.AvailabilityDate)
		assert.Equal(t, 1000.0, res.Subtotal)
		assert.Equal(t, 300.0, res.SecurityDeposit)
		assert.Equal(t, 500.0, res.Advance)
		assert.Equal(t, 1300.0, res.Total)
		assert.Equal(t, domain.ReservationStatusDraft, res.Status)

		assert.Len(t, snapshot.Reservations(), 1)
		reservationRepo.AssertExpectations(t)
	})

	t.Run("FillsConfiguredDefaults", func(t *testing.T) {
		reservationRepo, _, customerRepo, _, snapshot, svc := newReservationFixture()
		snapshot.UpsertItem(domain.Item{ID: 4, Name: "Aurora Gown", RentalCost: 1000, Quantity: 1, Status: domain.ItemStatusPublished})

		customerRepo.On("GetByID", ctx, int32(2)).Return(&domain.Customer{ID: 2}, nil)
		reservationRepo.On("Create", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil)

		// No buffers or percentages supplied by the caller.
		res := &domain.Reservation{
			ClientID:    2,
			Type:        domain.ReservationTypeFinal,
			ItemIDs:     []int32{4},
			WeddingDate: "2024-06-15",
		}
		err := svc.CreateReservation(ctx, res)
		assert.NoError(t, err)

		assert.Equal(t, 2, res.BufferBefore)
		assert.Equal(t, 2, res.BufferAfter)
		assert.Equal(t, 1, res.Availability)
		assert.Equal(t, "2024-06-13", res.PickupDate)
		assert.Equal(t, "2024-06-18", res.AvailabilityDate)
		assert.Equal(t, 30.0, res.SecurityDepositPercentage)
		assert.Equal(t, 50.0, res.AdvancePercentage)
		assert.Equal(t, 300.0, res.SecurityDeposit)
		assert.Equal(t, 500.0, res.Advance)
	})

	t.Run("AmountOverridesSkipDefaultPercentages", func(t *testing.T) {
		reservationRepo, _, customerRepo, _, snapshot, svc := newReservationFixture()
		snapshot.UpsertItem(domain.Item{ID: 4, Name: "Aurora Gown", RentalCost: 1000, Quantity: 1, Status: domain.ItemStatusPublished})

		customerRepo.On("GetByID", ctx, int32(2)).Return(&domain.Customer{ID: 2}, nil)
		reservationRepo.On("Create", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil)

		deposit := 250.0
		res := &domain.Reservation{
			ClientID:              2,
			Type:                  domain.ReservationTypeFinal,
			ItemIDs:               []int32{4},
			WeddingDate:           "2024-06-15",
			SecurityDepositAmount: &deposit,
		}
		err := svc.CreateReservation(ctx, res)
		assert.NoError(t, err)

		// The explicit amount wins over the configured default percentage.
		assert.Equal(t, 250.0, res.SecurityDeposit)
		assert.Equal(t, 25.0, res.SecurityDepositPercentage)
		// The advance had neither an amount nor a percentage, so the
		// default applies.
		assert.Equal(t, 500.0, res.Advance)
	})

	t.Run("RejectsWhenItemFullyBooked", func(t *testing.T) {
		reservationRepo, _, customerRepo, _, snapshot, svc := newReservationFixture()
		snapshot.UpsertItem(domain.Item{ID: 4, Name: "Aurora Gown", RentalCost: 1000, Quantity: 1, Status: domain.ItemStatusPublished})
		snapshot.UpsertReservation(domain.Reservation{
			ID:               9,
			Type:             domain.ReservationTypeFinal,
			ItemIDs:          []int32{4},
			PickupDate:       "2024-06-12",
			AvailabilityDate: "2024-06-22",
		})

		customerRepo.On("GetByID", ctx, int32(2)).Return(&domain.Customer{ID: 2}, nil)

		res := &domain.Reservation{
			ClientID:     2,
			Type:         domain.ReservationTypeFinal,
			ItemIDs:      []int32{4},
			WeddingDate:  "2024-06-15",
			BufferBefore: 5,
			BufferAfter:  3,
			Availability: 2,
		}
		err := svc.CreateReservation(ctx, res)
		assert.ErrorIs(t, err, ErrItemUnavailable)
		reservationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("FittingResetsBuffersAndHoldsNoStock", func(t *testing.T) {
		reservationRepo, _, customerRepo, _, snapshot, svc := newReservationFixture()
		snapshot.UpsertItem(domain.Item{ID: 4, Name: "Aurora Gown", RentalCost: 1000, Quantity: 1, Status: domain.ItemStatusPublished})
		// Another final reservation already holds the only unit.
		snapshot.UpsertReservation(domain.Reservation{
			ID:               9,
			Type:             domain.ReservationTypeFinal,
			ItemIDs:          []int32{4},
			PickupDate:       "2024-06-12",
			AvailabilityDate: "2024-06-22",
		})

		customerRepo.On("GetByID", ctx, int32(2)).Return(&domain.Customer{ID: 2}, nil)
		reservationRepo.On("Create", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil)

		res := &domain.Reservation{
			ClientID:     2,
			Type:         domain.ReservationTypeFitting,
			ItemIDs:      []int32{4},
			WeddingDate:  "2024-06-15",
			BufferBefore: 5,
			BufferAfter:  3,
			Availability: 2,
			FittingDate:  "2024-05-20",
		}
		err := svc.CreateReservation(ctx, res)
		assert.NoError(t, err)

		assert.Equal(t, 0, res.BufferBefore)
		assert.Equal(t, 0, res.BufferAfter)
		assert.Equal(t, 0, res.Availability)
		assert.Empty(t, res.PickupDate)
		assert.Empty(t, res.AvailabilityDate)
	})

	t.Run("RejectsEmptyItemList", func(t *testing.T) {
		_, _, _, _, _, svc := newReservationFixture()

		err := svc.CreateReservation(ctx, &domain.Reservation{
			ClientID:    2,
			Type:        domain.ReservationTypeFinal,
			WeddingDate: "2024-06-15",
		})
		assert.ErrorIs(t, err, ErrNoItemsSelected)
	})
}

func TestQuote(t *testing.T) {
	ctx := context.Background()

	_, _, _, _, snapshot, svc := newReservationFixture()
	snapshot.UpsertItem(domain.Item{ID: 4, Name: "Aurora Gown", RentalCost: 1000, Quantity: 2, Status: domain.ItemStatusPublished})

	quote, err := svc.Quote(ctx, &domain.Reservation{
		Type:                      domain.ReservationTypeFinal,
		ItemIDs:                   []int32{4},
		WeddingDate:               "2024-06-15",
		BufferBefore:              5,
		BufferAfter:               3,
		Availability:              2,
		SecurityDepositPercentage: 30,
	})
	assert.NoError(t, err)
	assert.Equal(t, "2024-06-10", quote.Window.PickupDate)
	assert.Equal(t, 1300.0, quote.Financials.Total)
	assert.Equal(t, int32(2), quote.Available[4])
}

func TestPaymentSummary(t *testing.T) {
	ctx := context.Background()

	reservationRepo, paymentRepo, _, _, _, svc := newReservationFixture()
	reservationRepo.On("GetByID", ctx, int32(7)).Return(&domain.Reservation{ID: 7, Total: 1300}, nil)
	paymentRepo.On("ListByReservation", ctx, int32(7)).Return([]domain.Payment{
		{ID: 1, ReservationID: 7, Amount: 500, Type: domain.PaymentTypeAdvance},
		{ID: 2, ReservationID: 7, Amount: 300, Type: domain.PaymentTypeSecurity},
	}, nil)

	summary, err := svc.PaymentSummary(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, 800.0, summary.TotalPaid)
	assert.Equal(t, 500.0, summary.Remaining)
	assert.Equal(t, domain.PaymentStatusPartial, summary.Status)
}
