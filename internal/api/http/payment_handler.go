package http

import (
	"net/http"

	"bridal-backend/internal/domain"
	"bridal-backend/internal/service"
)

type PaymentHandler struct {
	paymentSvc service.PaymentService
}

func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p domain.Payment
	if !decodeBody(w, r, &p) {
		return
	}
	if p.ReservationID == 0 {
		writeBadRequest(w, "reservationId is required")
		return
	}
	if p.Amount <= 0 {
		writeBadRequest(w, "amount must be positive")
		return
	}
	if err := h.paymentSvc.CreatePayment(r.Context(), &p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid payment id")
		return
	}
	p, err := h.paymentSvc.GetPayment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PaymentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid payment id")
		return
	}
	var p domain.Payment
	if !decodeBody(w, r, &p) {
		return
	}
	p.ID = id
	if err := h.paymentSvc.UpdatePayment(r.Context(), &p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid payment id")
		return
	}
	if err := h.paymentSvc.DeletePayment(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	payments, total, err := h.paymentSvc.ListPayments(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	writeJSON(w, http.StatusOK, listResponse{Data: payments, Total: total, Page: page, PageSize: pageSize})
}

// ListByReservation returns every payment recorded for a reservation.
func (h *PaymentHandler) ListByReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid reservation id")
		return
	}
	payments, err := h.paymentSvc.ListReservationPayments(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}
