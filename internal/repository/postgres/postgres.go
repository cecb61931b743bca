package postgres

import (
	"context"
	"database/sql"

	"bridal-backend/internal/domain"
	"bridal-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CustomerRepository
	repository.ItemRepository
	repository.CategoryRepository
	repository.ReservationRepository
	repository.PaymentRepository
	repository.UserRepository
	repository.AttachmentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		CustomerRepository:    NewCustomerRepository(db),
		ItemRepository:        NewItemRepository(db),
		CategoryRepository:    NewCategoryRepository(db),
		ReservationRepository: NewReservationRepository(db),
		PaymentRepository:     NewPaymentRepository(db),
		UserRepository:        NewUserRepository(db),
		AttachmentRepository:  NewAttachmentRepository(db),
	}
}

// Explicit wrappers keep the promoted ListAll selectors unambiguous and
// satisfy repository.Store for the entity cache.

func (s *Store) ListAllItems(ctx context.Context) ([]domain.Item, error) {
	return s.ItemRepository.ListAll(ctx)
}

func (s *Store) ListAllReservations(ctx context.Context) ([]domain.Reservation, error) {
	return s.ReservationRepository.ListAll(ctx)
}

func (s *Store) ListAllCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.CustomerRepository.ListAll(ctx)
}

func (s *Store) ListAllPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.PaymentRepository.ListAll(ctx)
}
