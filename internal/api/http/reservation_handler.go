package http

import (
	"fmt"
	"net/http"

	"bridal-backend/internal/domain"
	"bridal-backend/internal/service"
)

type ReservationHandler struct {
	reservationSvc service.ReservationService
	contractSvc    service.ContractService
}

func NewReservationHandler(reservationSvc service.ReservationService, contractSvc service.ContractService) *ReservationHandler {
	return &ReservationHandler{
		reservationSvc: reservationSvc,
		contractSvc:    contractSvc,
	}
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var res domain.Reservation
	if !decodeBody(w, r, &res) {
		return
	}
	if err := h.reservationSvc.CreateReservation(r.Context(), &res); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid reservation id")
		return
	}
	res, err := h.reservationSvc.GetReservation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid reservation id")
		return
	}
	var res domain.Reservation
	if !decodeBody(w, r, &res) {
		return
	}
	res.ID = id
	if err := h.reservationSvc.UpdateReservation(r.Context(), &res); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid reservation id")
		return
	}
	if err := h.reservationSvc.DeleteReservation(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := r.URL.Query().Get("status")

	reservations, total, err := h.reservationSvc.ListReservations(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	if reservations == nil {
		reservations = []domain.Reservation{}
	}
	writeJSON(w, http.StatusOK, listResponse{Data: reservations, Total: total, Page: page, PageSize: pageSize})
}

// Quote previews the derived window, financial breakdown and per-item
// availability without persisting anything.
func (h *ReservationHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var res domain.Reservation
	if !decodeBody(w, r, &res) {
		return
	}
	quote, err := h.reservationSvc.Quote(r.Context(), &res)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *ReservationHandler) PaymentSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid reservation id")
		return
	}
	summary, err := h.reservationSvc.PaymentSummary(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// RenderContract serves the contract as a standalone HTML page, used
// both directly and as the print source for the PDF export.
func (h *ReservationHandler) RenderContract(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid reservation id")
		return
	}
	html, err := h.contractSvc.RenderContract(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

func (h *ReservationHandler) ContractPDF(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid reservation id")
		return
	}
	pdf, err := h.contractSvc.GenerateContractPDF(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=contract-%d.pdf", id))
	w.Write(pdf)
}
