package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bridal-backend/internal/domain"
	"bridal-backend/internal/repository"
)

type attachmentRepository struct {
	db *sql.DB
}

func NewAttachmentRepository(db *sql.DB) repository.AttachmentRepository {
	return &attachmentRepository{db: db}
}

const attachmentColumns = `id, owner_type, owner_id, file_name, storage_key, mime_type, file_size, created_on`

func (r *attachmentRepository) Create(ctx context.Context, a *domain.Attachment) error {
	query := `INSERT INTO attachments (owner_type, owner_id, file_name, storage_key, mime_type, file_size, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		a.OwnerType, a.OwnerID, a.FileName, a.StorageKey, a.MimeType, a.FileSize, time.Now()).Scan(&a.ID)
}

func (r *attachmentRepository) GetByID(ctx context.Context, id int32) (*domain.Attachment, error) {
	query := `SELECT ` + attachmentColumns + ` FROM attachments WHERE id = $1`
	return r.getBy(ctx, query, id)
}

func (r *attachmentRepository) GetByKey(ctx context.Context, key string) (*domain.Attachment, error) {
	query := `SELECT ` + attachmentColumns + ` FROM attachments WHERE storage_key = $1`
	return r.getBy(ctx, query, key)
}

func (r *attachmentRepository) getBy(ctx context.Context, query string, arg interface{}) (*domain.Attachment, error) {
	a := &domain.Attachment{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&a.ID, &a.OwnerType, &a.OwnerID, &a.FileName, &a.StorageKey, &a.MimeType, &a.FileSize, &a.CreatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *attachmentRepository) ListByOwner(ctx context.Context, ownerType domain.AttachmentOwner, ownerID int32) ([]domain.Attachment, error) {
	query := `SELECT ` + attachmentColumns + ` FROM attachments WHERE owner_type = $1 AND owner_id = $2 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, ownerType, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attachments []domain.Attachment
	for rows.Next() {
		var a domain.Attachment
		if err := rows.Scan(&a.ID, &a.OwnerType, &a.OwnerID, &a.FileName, &a.StorageKey, &a.MimeType, &a.FileSize, &a.CreatedOn); err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, rows.Err()
}

func (r *attachmentRepository) Delete(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM attachments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}
