package service

import (
	"context"
	"errors"
	"fmt"

	"bridal-backend/internal/booking"
	"bridal-backend/internal/cache"
	"bridal-backend/internal/config"
	"bridal-backend/internal/domain"
	"bridal-backend/internal/logger"
	"bridal-backend/internal/repository"
)

var (
	ErrNoItemsSelected = errors.New("reservation needs at least one item")
	ErrItemUnavailable = errors.New("item is not available over the rental window")
	ErrUnknownClient   = errors.New("unknown client")
	ErrInvalidDate     = errors.New("invalid wedding date")
	ErrInvalidType     = errors.New("unknown reservation type")
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	paymentRepo     repository.PaymentRepository
	customerRepo    repository.CustomerRepository
	itemRepo        repository.ItemRepository
	snapshot        *cache.Snapshot
	defaults        config.BookingConfig
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	paymentRepo repository.PaymentRepository,
	customerRepo repository.CustomerRepository,
	itemRepo repository.ItemRepository,
	snapshot *cache.Snapshot,
	defaults config.BookingConfig,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		customerRepo:    customerRepo,
		itemRepo:        itemRepo,
		snapshot:        snapshot,
		defaults:        defaults,
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, res *domain.Reservation) error {
	if err := s.prepare(ctx, res); err != nil {
		return err
	}
	if err := s.checkAvailability(res); err != nil {
		return err
	}
	if err := s.reservationRepo.Create(ctx, res); err != nil {
		return err
	}
	s.snapshot.UpsertReservation(*res)
	logger.WithService("reservation").InfoContext(ctx, "reservation created",
		"id", res.ID, "client_id", res.ClientID, "type", res.Type)
	return nil
}

func (s *reservationService) GetReservation(ctx context.Context, id int32) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *reservationService) UpdateReservation(ctx context.Context, res *domain.Reservation) error {
	if err := s.prepare(ctx, res); err != nil {
		return err
	}
	if err := s.checkAvailability(res); err != nil {
		return err
	}
	if err := s.reservationRepo.Update(ctx, res); err != nil {
		return err
	}
	s.snapshot.UpsertReservation(*res)
	return nil
}

func (s *reservationService) DeleteReservation(ctx context.Context, id int32) error {
	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.snapshot.RemoveReservation(id)
	return nil
}

func (s *reservationService) ListReservations(ctx context.Context, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	return s.reservationRepo.List(ctx, status, page, pageSize)
}

func (s *reservationService) ListClientReservations(ctx context.Context, clientID int32) ([]domain.Reservation, error) {
	return s.reservationRepo.ListByClient(ctx, clientID)
}

func (s *reservationService) Quote(ctx context.Context, res *domain.Reservation) (*ReservationQuote, error) {
	items, err := s.resolveItems(ctx, res.ItemIDs)
	if err != nil {
		return nil, err
	}

	s.applyDefaults(res)
	before, after, avail := booking.NormalizeBuffers(res.Type, res.BufferBefore, res.BufferAfter, res.Availability)
	window, _ := booking.DeriveWindow(res.WeddingDate, before, after, avail)

	breakdown := booking.ComputeFinancials(booking.FinancialInput{
		Items:                     items,
		AdditionalCost:            res.AdditionalCost,
		TravelCost:                res.TravelCost,
		Discount:                  res.Discount,
		SecurityDepositPercentage: res.SecurityDepositPercentage,
		AdvancePercentage:         res.AdvancePercentage,
		SecurityDepositAmount:     res.SecurityDepositAmount,
		AdvanceAmount:             res.AdvanceAmount,
	})

	available := make(map[int32]int32, len(items))
	reservations := s.snapshot.Reservations()
	for _, item := range items {
		available[item.ID] = booking.FreeQuantity(item, reservations, window.PickupDate, window.AvailabilityDate, res.ID)
	}

	return &ReservationQuote{
		Window:     window,
		Financials: breakdown,
		Available:  available,
	}, nil
}

func (s *reservationService) PaymentSummary(ctx context.Context, reservationID int32) (*booking.PaymentSummary, error) {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	summary := booking.SummarizePayments(booking.FinancialBreakdown{Total: res.Total}, payments)
	return &summary, nil
}

// prepare normalizes the buffers, derives the rental window and
// recomputes the financial snapshot before any write.
func (s *reservationService) prepare(ctx context.Context, res *domain.Reservation) error {
	switch res.Type {
	case domain.ReservationTypeFinal, domain.ReservationTypeFitting:
	default:
		return ErrInvalidType
	}
	if len(res.ItemIDs) == 0 {
		return ErrNoItemsSelected
	}
	if _, err := s.customerRepo.GetByID(ctx, res.ClientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnknownClient
		}
		return err
	}
	if res.Status == "" {
		res.Status = domain.ReservationStatusDraft
	}

	s.applyDefaults(res)
	res.BufferBefore, res.BufferAfter, res.Availability =
		booking.NormalizeBuffers(res.Type, res.BufferBefore, res.BufferAfter, res.Availability)

	if res.Type == domain.ReservationTypeFinal {
		window, ok := booking.DeriveWindow(res.WeddingDate, res.BufferBefore, res.BufferAfter, res.Availability)
		if !ok {
			return ErrInvalidDate
		}
		res.PickupDate = window.PickupDate
		res.ReturnDate = window.ReturnDate
		res.AvailabilityDate = window.AvailabilityDate
	} else {
		// Fittings hold no stock: leaving the derived dates empty keeps
		// them out of every availability computation.
		res.PickupDate = ""
		res.ReturnDate = ""
		res.AvailabilityDate = ""
	}

	items, err := s.resolveItems(ctx, res.ItemIDs)
	if err != nil {
		return err
	}
	breakdown := booking.ComputeFinancials(booking.FinancialInput{
		Items:                     items,
		AdditionalCost:            res.AdditionalCost,
		TravelCost:                res.TravelCost,
		Discount:                  res.Discount,
		SecurityDepositPercentage: res.SecurityDepositPercentage,
		AdvancePercentage:         res.AdvancePercentage,
		SecurityDepositAmount:     res.SecurityDepositAmount,
		AdvanceAmount:             res.AdvanceAmount,
	})
	res.ItemsTotal = breakdown.ItemsTotal
	res.Subtotal = breakdown.Subtotal
	res.SecurityDeposit = breakdown.SecurityDeposit
	res.SecurityDepositPercentage = breakdown.SecurityDepositPercentage
	res.Advance = breakdown.Advance
	res.AdvancePercentage = breakdown.AdvancePercentage
	res.Total = breakdown.Total
	return nil
}

// checkAvailability rejects the write when any selected item has no free
// unit left over the reservation's own window. The reservation's ID is
// excluded so edits do not collide with their own holds.
func (s *reservationService) checkAvailability(res *domain.Reservation) error {
	if res.Type != domain.ReservationTypeFinal {
		return nil
	}
	reservations := s.snapshot.Reservations()
	for _, item := range s.snapshot.Items() {
		if !containsID(res.ItemIDs, item.ID) {
			continue
		}
		free := booking.FreeQuantity(item, reservations, res.PickupDate, res.AvailabilityDate, res.ID)
		if free <= 0 {
			return fmt.Errorf("%w: %s", ErrItemUnavailable, item.Name)
		}
	}
	return nil
}

// applyDefaults fills the buffers and percentages from the configured
// booking defaults when the caller left them unset. Percentages are
// only defaulted when no explicit amount override is present either.
func (s *reservationService) applyDefaults(res *domain.Reservation) {
	if res.BufferBefore == 0 {
		res.BufferBefore = s.defaults.BufferBeforeDays
	}
	if res.BufferAfter == 0 {
		res.BufferAfter = s.defaults.BufferAfterDays
	}
	if res.Availability == 0 {
		res.Availability = s.defaults.AvailabilityDays
	}
	if res.SecurityDepositPercentage == 0 && res.SecurityDepositAmount == nil {
		res.SecurityDepositPercentage = s.defaults.SecurityDepositPct
	}
	if res.AdvancePercentage == 0 && res.AdvanceAmount == nil {
		res.AdvancePercentage = s.defaults.AdvancePct
	}
}

func (s *reservationService) resolveItems(ctx context.Context, itemIDs []int32) ([]domain.Item, error) {
	cached := make(map[int32]domain.Item)
	for _, it := range s.snapshot.Items() {
		cached[it.ID] = it
	}

	items := make([]domain.Item, 0, len(itemIDs))
	for _, id := range itemIDs {
		if it, ok := cached[id]; ok {
			items = append(items, it)
			continue
		}
		it, err := s.itemRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", id, err)
		}
		items = append(items, *it)
	}
	return items, nil
}

func containsID(ids []int32, id int32) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
