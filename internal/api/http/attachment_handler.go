package http

import (
	"io"
	"net/http"

	"bridal-backend/internal/domain"
	"bridal-backend/internal/logger"
	"bridal-backend/internal/service"

	"github.com/gorilla/mux"
)

type AttachmentHandler struct {
	attachmentSvc service.AttachmentService
	maxFileSizeMB int64
}

func NewAttachmentHandler(attachmentSvc service.AttachmentService, maxFileSizeMB int64) *AttachmentHandler {
	return &AttachmentHandler{
		attachmentSvc: attachmentSvc,
		maxFileSizeMB: maxFileSizeMB,
	}
}

// Upload accepts a multipart form with a "file" part and attaches it to
// the owner named in the path (payment or customer).
func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ownerType, ok := ownerFromPath(r)
	if !ok {
		writeBadRequest(w, "unknown attachment owner")
		return
	}
	ownerID, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid owner id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSizeMB<<20)
	if err := r.ParseMultipartForm(h.maxFileSizeMB << 20); err != nil {
		writeBadRequest(w, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeBadRequest(w, "missing file part")
		return
	}
	defer file.Close()

	attachment, err := h.attachmentSvc.Upload(r.Context(), ownerType, ownerID,
		header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, attachment)
}

func (h *AttachmentHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		writeBadRequest(w, "missing storage key")
		return
	}

	attachment, reader, err := h.attachmentSvc.Download(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}
	defer reader.Close()

	contentType := attachment.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+attachment.FileName+"\"")
	if _, err := io.Copy(w, reader); err != nil {
		logger.WithHandler("attachment").Error("failed to stream attachment",
			"key", key, "error", err)
	}
}

func (h *AttachmentHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerType, ok := ownerFromPath(r)
	if !ok {
		writeBadRequest(w, "unknown attachment owner")
		return
	}
	ownerID, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid owner id")
		return
	}

	attachments, err := h.attachmentSvc.ListByOwner(r.Context(), ownerType, ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	if attachments == nil {
		attachments = []domain.Attachment{}
	}
	writeJSON(w, http.StatusOK, attachments)
}

func (h *AttachmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid attachment id")
		return
	}
	if err := h.attachmentSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func ownerFromPath(r *http.Request) (domain.AttachmentOwner, bool) {
	switch mux.Vars(r)["owner"] {
	case "payments":
		return domain.AttachmentOwnerPayment, true
	case "customers":
		return domain.AttachmentOwnerCustomer, true
	}
	return "", false
}
