package http

import (
	"net/http"
	"strconv"

	"bridal-backend/internal/domain"
	"bridal-backend/internal/service"
)

type ItemHandler struct {
	itemSvc     service.ItemService
	categorySvc service.CategoryService
}

func NewItemHandler(itemSvc service.ItemService, categorySvc service.CategoryService) *ItemHandler {
	return &ItemHandler{
		itemSvc:     itemSvc,
		categorySvc: categorySvc,
	}
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item domain.Item
	if !decodeBody(w, r, &item) {
		return
	}
	if item.Name == "" {
		writeBadRequest(w, "item name is required")
		return
	}
	if item.Quantity < 0 {
		writeBadRequest(w, "quantity cannot be negative")
		return
	}
	if err := h.itemSvc.CreateItem(r.Context(), &item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid item id")
		return
	}
	item, err := h.itemSvc.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid item id")
		return
	}
	var item domain.Item
	if !decodeBody(w, r, &item) {
		return
	}
	item.ID = id
	if err := h.itemSvc.UpdateItem(r.Context(), &item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid item id")
		return
	}
	if err := h.itemSvc.DeleteItem(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	query := r.URL.Query().Get("q")

	items, total, err := h.itemSvc.ListItems(r.Context(), query, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.Item{}
	}
	writeJSON(w, http.StatusOK, listResponse{Data: items, Total: total, Page: page, PageSize: pageSize})
}

// Available returns published items with free stock over the window
// derived from the wedding date and buffer parameters.
func (h *ItemHandler) Available(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	weddingDate := q.Get("weddingDate")
	bufferBefore := intQuery(q.Get("bufferBefore"))
	bufferAfter := intQuery(q.Get("bufferAfter"))
	availability := intQuery(q.Get("availability"))
	excludeID := int32(intQuery(q.Get("excludeReservationId")))

	items, err := h.itemSvc.AvailableItems(r.Context(), weddingDate, bufferBefore, bufferAfter, availability, q.Get("q"), excludeID)
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

func intQuery(raw string) int {
	v, _ := strconv.Atoi(raw)
	return v
}
