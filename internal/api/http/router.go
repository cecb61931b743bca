package http

import (
	"net/http"

	"bridal-backend/internal/security"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth        *AuthHandler
	Customer    *CustomerHandler
	Item        *ItemHandler
	Category    *CategoryHandler
	User        *UserHandler
	Reservation *ReservationHandler
	Payment     *PaymentHandler
	Attachment  *AttachmentHandler
}

// NewRouter wires the REST API under /api/v1. Everything except login
// and the contract render page sits behind the auth middleware; user
// management additionally requires the admin role.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)

	// The contract render page is fetched by headless Chrome, which
	// carries no session.
	api.HandleFunc("/reservations/{id}/contract/render", h.Reservation.RenderContract).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))

	// Customers
	authed.HandleFunc("/customers", h.Customer.List).Methods(http.MethodGet)
	authed.HandleFunc("/customers", h.Customer.Create).Methods(http.MethodPost)
	authed.HandleFunc("/customers/{id}", h.Customer.Get).Methods(http.MethodGet)
	authed.HandleFunc("/customers/{id}", h.Customer.Update).Methods(http.MethodPut)
	authed.HandleFunc("/customers/{id}", h.Customer.Delete).Methods(http.MethodDelete)
	authed.HandleFunc("/customers/{id}/reservations", h.Customer.Reservations).Methods(http.MethodGet)

	// Items and categories
	authed.HandleFunc("/items", h.Item.List).Methods(http.MethodGet)
	authed.HandleFunc("/items", h.Item.Create).Methods(http.MethodPost)
	authed.HandleFunc("/items/available", h.Item.Available).Methods(http.MethodGet)
	authed.HandleFunc("/items/{id}", h.Item.Get).Methods(http.MethodGet)
	authed.HandleFunc("/items/{id}", h.Item.Update).Methods(http.MethodPut)
	authed.HandleFunc("/items/{id}", h.Item.Delete).Methods(http.MethodDelete)

	authed.HandleFunc("/categories", h.Category.List).Methods(http.MethodGet)
	authed.HandleFunc("/categories", h.Category.Create).Methods(http.MethodPost)
	authed.HandleFunc("/categories/{id}", h.Category.Get).Methods(http.MethodGet)
	authed.HandleFunc("/categories/{id}", h.Category.Update).Methods(http.MethodPut)
	authed.HandleFunc("/categories/{id}", h.Category.Delete).Methods(http.MethodDelete)

	// Reservations
	authed.HandleFunc("/reservations", h.Reservation.List).Methods(http.MethodGet)
	authed.HandleFunc("/reservations", h.Reservation.Create).Methods(http.MethodPost)
	authed.HandleFunc("/reservations/quote", h.Reservation.Quote).Methods(http.MethodPost)
	authed.HandleFunc("/reservations/{id}", h.Reservation.Get).Methods(http.MethodGet)
	authed.HandleFunc("/reservations/{id}", h.Reservation.Update).Methods(http.MethodPut)
	authed.HandleFunc("/reservations/{id}", h.Reservation.Delete).Methods(http.MethodDelete)
	authed.HandleFunc("/reservations/{id}/payments", h.Payment.ListByReservation).Methods(http.MethodGet)
	authed.HandleFunc("/reservations/{id}/payments/summary", h.Reservation.PaymentSummary).Methods(http.MethodGet)
	authed.HandleFunc("/reservations/{id}/contract", h.Reservation.ContractPDF).Methods(http.MethodGet)

	// Payments
	authed.HandleFunc("/payments", h.Payment.List).Methods(http.MethodGet)
	authed.HandleFunc("/payments", h.Payment.Create).Methods(http.MethodPost)
	authed.HandleFunc("/payments/{id}", h.Payment.Get).Methods(http.MethodGet)
	authed.HandleFunc("/payments/{id}", h.Payment.Update).Methods(http.MethodPut)
	authed.HandleFunc("/payments/{id}", h.Payment.Delete).Methods(http.MethodDelete)

	// Attachments, owner is payments or customers
	authed.HandleFunc("/{owner:payments|customers}/{id}/attachments", h.Attachment.Upload).Methods(http.MethodPost)
	authed.HandleFunc("/{owner:payments|customers}/{id}/attachments", h.Attachment.ListByOwner).Methods(http.MethodGet)
	authed.HandleFunc("/attachments/{key}", h.Attachment.Download).Methods(http.MethodGet)
	authed.HandleFunc("/attachments/{id}", h.Attachment.Delete).Methods(http.MethodDelete)

	// User management, admin only
	admin := api.NewRoute().Subrouter()
	admin.Use(AuthMiddleware(tokens))
	admin.Use(RequireAdmin)
	admin.Handle("/users", http.HandlerFunc(h.User.List)).Methods(http.MethodGet)
	admin.Handle("/users", http.HandlerFunc(h.User.Create)).Methods(http.MethodPost)
	admin.Handle("/users/{id}", http.HandlerFunc(h.User.Get)).Methods(http.MethodGet)
	admin.Handle("/users/{id}", http.HandlerFunc(h.User.Update)).Methods(http.MethodPut)
	admin.Handle("/users/{id}", http.HandlerFunc(h.User.Delete)).Methods(http.MethodDelete)

	return r
}
