package service

import (
	"context"
	"io"

	"bridal-backend/internal/booking"
	"bridal-backend/internal/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, string, error) // user, access token
}

type UserService interface {
	CreateUser(ctx context.Context, name, email, password string, role domain.UserRole) (*domain.User, error)
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	UpdateUser(ctx context.Context, id int32, name, email, password string, role domain.UserRole) (*domain.User, error)
	DeleteUser(ctx context.Context, id int32) error
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, c *domain.Customer) error
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, c *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int32) error
	ListCustomers(ctx context.Context, query string, page, pageSize int32) ([]domain.Customer, int32, error)
}

type ItemService interface {
	CreateItem(ctx context.Context, item *domain.Item) error
	GetItem(ctx context.Context, id int32) (*domain.Item, error)
	UpdateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, id int32) error
	ListItems(ctx context.Context, query string, page, pageSize int32) ([]domain.Item, int32, error)
	// AvailableItems returns published items with free stock over the
	// window derived from the wedding date and buffers, filtered by the
	// text query. excludeReservationID ignores one reservation's own
	// holds when editing.
	AvailableItems(ctx context.Context, weddingDate string, bufferBefore, bufferAfter, availability int, query string, excludeReservationID int32) ([]domain.Item, error)
}

type CategoryService interface {
	CreateCategory(ctx context.Context, cat *domain.Category) error
	GetCategory(ctx context.Context, id int32) (*domain.Category, error)
	UpdateCategory(ctx context.Context, cat *domain.Category) error
	DeleteCategory(ctx context.Context, id int32) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type ReservationService interface {
	CreateReservation(ctx context.Context, res *domain.Reservation) error
	GetReservation(ctx context.Context, id int32) (*domain.Reservation, error)
	UpdateReservation(ctx context.Context, res *domain.Reservation) error
	DeleteReservation(ctx context.Context, id int32) error
	ListReservations(ctx context.Context, status string, page, pageSize int32) ([]domain.Reservation, int32, error)
	ListClientReservations(ctx context.Context, clientID int32) ([]domain.Reservation, error)
	// Quote derives the window and financial breakdown for a draft
	// reservation without persisting anything.
	Quote(ctx context.Context, res *domain.Reservation) (*ReservationQuote, error)
	PaymentSummary(ctx context.Context, reservationID int32) (*booking.PaymentSummary, error)
}

type PaymentService interface {
	CreatePayment(ctx context.Context, p *domain.Payment) error
	GetPayment(ctx context.Context, id int32) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, p *domain.Payment) error
	DeletePayment(ctx context.Context, id int32) error
	ListPayments(ctx context.Context, page, pageSize int32) ([]domain.Payment, int32, error)
	ListReservationPayments(ctx context.Context, reservationID int32) ([]domain.Payment, error)
}

type AttachmentService interface {
	Upload(ctx context.Context, ownerType domain.AttachmentOwner, ownerID int32, fileName, mimeType string, content io.Reader) (*domain.Attachment, error)
	Download(ctx context.Context, storageKey string) (*domain.Attachment, io.ReadCloser, error)
	ListByOwner(ctx context.Context, ownerType domain.AttachmentOwner, ownerID int32) ([]domain.Attachment, error)
	Delete(ctx context.Context, id int32) error
}

type ContractService interface {
	// RenderContract produces the contract HTML for a reservation.
	RenderContract(ctx context.Context, reservationID int32) ([]byte, error)
	// GenerateContractPDF prints the contract to PDF via headless Chrome.
	GenerateContractPDF(ctx context.Context, reservationID int32) ([]byte, error)
}

type EmailService interface {
	SendPickupReminder(ctx context.Context, email, name, itemList, pickupDate, pickupTime string) error
	SendReturnOverdueNotice(ctx context.Context, email, name, itemList, returnDate string) error
}

// ReservationQuote is the non-persisted preview returned while an
// operator is composing a reservation.
type ReservationQuote struct {
	Window     booking.Window             `json:"window"`
	Financials booking.FinancialBreakdown `json:"financials"`
	Available  map[int32]int32            `json:"available"` // item id -> free quantity over the window
}
