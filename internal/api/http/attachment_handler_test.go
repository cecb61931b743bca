package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bridal-backend/internal/domain"
	"bridal-backend/internal/repository"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type stubAttachmentService struct {
	attachments []domain.Attachment
	content     []byte
	deletedID   int32
}

func (s *stubAttachmentService) Upload(ctx context.Context, ownerType domain.AttachmentOwner, ownerID int32, fileName, mimeType string, content io.Reader) (*domain.Attachment, error) {
	return &domain.Attachment{ID: 1, OwnerType: ownerType, OwnerID: ownerID, FileName: fileName}, nil
}

func (s *stubAttachmentService) Download(ctx context.Context, storageKey string) (*domain.Attachment, io.ReadCloser, error) {
	for _, a := range s.attachments {
		if a.StorageKey == storageKey {
			return &a, io.NopCloser(bytes.NewReader(s.content)), nil
		}
	}
	return nil, nil, repository.ErrNotFound
}

func (s *stubAttachmentService) ListByOwner(ctx context.Context, ownerType domain.AttachmentOwner, ownerID int32) ([]domain.Attachment, error) {
	return s.attachments, nil
}

func (s *stubAttachmentService) Delete(ctx context.Context, id int32) error {
	for _, a := range s.attachments {
		if a.ID == id {
			s.deletedID = id
			return nil
		}
	}
	return repository.ErrNotFound
}

func newAttachmentRouter(svc *stubAttachmentService) *mux.Router {
	h := NewAttachmentHandler(svc, 10)
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/attachments/{key}", h.Download).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/attachments/{id}", h.Delete).Methods(http.MethodDelete)
	return r
}

func TestAttachmentHandler_Download(t *testing.T) {
	svc := &stubAttachmentService{
		attachments: []domain.Attachment{{ID: 7, FileName: "receipt.png", StorageKey: "abc123.png", MimeType: "image/png"}},
		content:     []byte("png bytes"),
	}
	router := newAttachmentRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attachments/abc123.png", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="receipt.png"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "png bytes", rec.Body.String())
}

func TestAttachmentHandler_Delete(t *testing.T) {
	svc := &stubAttachmentService{
		attachments: []domain.Attachment{{ID: 7, StorageKey: "abc123.png"}},
	}
	router := newAttachmentRouter(svc)

	t.Run("ByIDOnly", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/attachments/7", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, int32(7), svc.deletedID)
	})

	t.Run("NotFound", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/attachments/99", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
