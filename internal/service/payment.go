package service

import (
	"context"

	"bridal-backend/internal/cache"
	"bridal-backend/internal/domain"
	"bridal-backend/internal/repository"
)

type paymentService struct {
	paymentRepo     repository.PaymentRepository
	reservationRepo repository.ReservationRepository
	snapshot        *cache.Snapshot
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	reservationRepo repository.ReservationRepository,
	snapshot *cache.Snapshot,
) PaymentService {
	return &paymentService{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		snapshot:        snapshot,
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, p *domain.Payment) error {
	res, err := s.reservationRepo.GetByID(ctx, p.ReservationID)
	if err != nil {
		return err
	}
	// Payments always belong to the reservation's client.
	p.ClientID = res.ClientID

	if err := s.paymentRepo.Create(ctx, p); err != nil {
		return err
	}
	s.snapshot.UpsertPayment(*p)
	return nil
}

func (s *paymentService) GetPayment(ctx context.Context, id int32) (*domain.Payment, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

func (s *paymentService) UpdatePayment(ctx context.Context, p *domain.Payment) error {
	if err := s.paymentRepo.Update(ctx, p); err != nil {
		return err
	}
	s.snapshot.UpsertPayment(*p)
	return nil
}

func (s *paymentService) DeletePayment(ctx context.Context, id int32) error {
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.snapshot.RemovePayment(id)
	return nil
}

func (s *paymentService) ListPayments(ctx context.Context, page, pageSize int32) ([]domain.Payment, int32, error) {
	return s.paymentRepo.List(ctx, page, pageSize)
}

func (s *paymentService) ListReservationPayments(ctx context.Context, reservationID int32) ([]domain.Payment, error) {
	return s.paymentRepo.ListByReservation(ctx, reservationID)
}
