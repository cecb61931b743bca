package repository

import (
	"context"
	"errors"

	"bridal-backend/internal/domain"
)

// ErrNotFound is returned by Get/Update/Delete when no row matches.
var ErrNotFound = errors.New("not found")

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, query string, page, pageSize int32) ([]domain.Customer, int32, error)
	ListAll(ctx context.Context) ([]domain.Customer, error)
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int32) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, query string, page, pageSize int32) ([]domain.Item, int32, error)
	ListAll(ctx context.Context) ([]domain.Item, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, cat *domain.Category) error
	GetByID(ctx context.Context, id int32) (*domain.Category, error)
	Update(ctx context.Context, cat *domain.Category) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Category, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Reservation, int32, error)
	ListByClient(ctx context.Context, clientID int32) ([]domain.Reservation, error)
	ListAll(ctx context.Context) ([]domain.Reservation, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Payment, int32, error)
	ListByReservation(ctx context.Context, reservationID int32) ([]domain.Payment, error)
	ListAll(ctx context.Context) ([]domain.Payment, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.User, error)
}

type AttachmentRepository interface {
	Create(ctx context.Context, a *domain.Attachment) error
	GetByID(ctx context.Context, id int32) (*domain.Attachment, error)
	GetByKey(ctx context.Context, key string) (*domain.Attachment, error)
	ListByOwner(ctx context.Context, ownerType domain.AttachmentOwner, ownerID int32) ([]domain.Attachment, error)
	Delete(ctx context.Context, id int32) error
}

// Store is the read surface the entity cache loads from at startup.
type Store interface {
	ListAllItems(ctx context.Context) ([]domain.Item, error)
	ListAllReservations(ctx context.Context) ([]domain.Reservation, error)
	ListAllCustomers(ctx context.Context) ([]domain.Customer, error)
	ListAllPayments(ctx context.Context) ([]domain.Payment, error)
}
