package http

import (
	"net/http"

	"bridal-backend/internal/domain"
	"bridal-backend/internal/service"
)

type CustomerHandler struct {
	customerSvc    service.CustomerService
	reservationSvc service.ReservationService
}

func NewCustomerHandler(customerSvc service.CustomerService, reservationSvc service.ReservationService) *CustomerHandler {
	return &CustomerHandler{
		customerSvc:    customerSvc,
		reservationSvc: reservationSvc,
	}
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c domain.Customer
	if !decodeBody(w, r, &c) {
		return
	}
	if c.Name == "" || c.Surname == "" {
		writeBadRequest(w, "name and surname are required")
		return
	}
	if err := h.customerSvc.CreateCustomer(r.Context(), &c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid customer id")
		return
	}
	c, err := h.customerSvc.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid customer id")
		return
	}
	var c domain.Customer
	if !decodeBody(w, r, &c) {
		return
	}
	c.ID = id
	if err := h.customerSvc.UpdateCustomer(r.Context(), &c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid customer id")
		return
	}
	if err := h.customerSvc.DeleteCustomer(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	query := r.URL.Query().Get("q")

	customers, total, err := h.customerSvc.ListCustomers(r.Context(), query, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	writeJSON(w, http.StatusOK, listResponse{Data: customers, Total: total, Page: page, PageSize: pageSize})
}

// Reservations lists the reservation history of one customer.
func (h *CustomerHandler) Reservations(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid customer id")
		return
	}
	reservations, err := h.reservationSvc.ListClientReservations(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if reservations == nil {
		reservations = []domain.Reservation{}
	}
	writeJSON(w, http.StatusOK, reservations)
}
