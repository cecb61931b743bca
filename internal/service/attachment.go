package service

import (
	"context"
	"io"

	"bridal-backend/internal/domain"
	"bridal-backend/internal/repository"
	"bridal-backend/internal/storage"
)

type attachmentService struct {
	attachmentRepo repository.AttachmentRepository
	store          storage.Storage
}

func NewAttachmentService(attachmentRepo repository.AttachmentRepository, store storage.Storage) AttachmentService {
	return &attachmentService{
		attachmentRepo: attachmentRepo,
		store:          store,
	}
}

func (s *attachmentService) Upload(ctx context.Context, ownerType domain.AttachmentOwner, ownerID int32, fileName, mimeType string, content io.Reader) (*domain.Attachment, error) {
	key := storage.NewKey(fileName)
	if err := s.store.Save(key, content); err != nil {
		return nil, err
	}

	_, size, err := s.store.Exists(key)
	if err != nil {
		return nil, err
	}

	attachment := &domain.Attachment{
		OwnerType:  ownerType,
		OwnerID:    ownerID,
		FileName:   fileName,
		StorageKey: key,
		MimeType:   mimeType,
		FileSize:   size,
	}
	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		// The row failed, do not leave the file orphaned.
		_ = s.store.Delete(key)
		return nil, err
	}
	return attachment, nil
}

func (s *attachmentService) Download(ctx context.Context, storageKey string) (*domain.Attachment, io.ReadCloser, error) {
	attachment, err := s.attachmentRepo.GetByKey(ctx, storageKey)
	if err != nil {
		return nil, nil, err
	}
	reader, err := s.store.Open(storageKey)
	if err != nil {
		return nil, nil, err
	}
	return attachment, reader, nil
}

func (s *attachmentService) ListByOwner(ctx context.Context, ownerType domain.AttachmentOwner, ownerID int32) ([]domain.Attachment, error) {
	return s.attachmentRepo.ListByOwner(ctx, ownerType, ownerID)
}

// Delete removes the row and its stored file. The key comes from the
// row itself, never from the caller.
func (s *attachmentService) Delete(ctx context.Context, id int32) error {
	attachment, err := s.attachmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.attachmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(attachment.StorageKey)
}
