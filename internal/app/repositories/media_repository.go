package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
	"github.com/kerem/hostelhub/internal/pkg/dberrors"
)

// MediaRepository handles database operations for uploaded media assets
type MediaRepository struct {
	db *pgxpool.Pool
}

// NewMediaRepository creates a new MediaRepository
func NewMediaRepository(db *pgxpool.Pool) *MediaRepository {
	return &MediaRepository{db: db}
}

// Create inserts a media asset record
func (r *MediaRepository) Create(ctx context.Context, m *models.MediaAsset) error {
	query := `
		INSERT INTO media_assets (url, object_key, folder, mime_type, width, height, size_bytes, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		m.URL, m.ObjectKey, m.Folder, m.MimeType, m.Width, m.Height, m.SizeBytes, m.UploadedBy,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating media asset: %w", err)
	}

	return nil
}

// GetByID retrieves a media asset by ID
func (r *MediaRepository) GetByID(ctx context.Context, id int64) (*models.MediaAsset, error) {
	query := `
		SELECT id, url, object_key, folder, mime_type, width, height, size_bytes, uploaded_by, created_at
		FROM media_assets
		WHERE id = $1
	`

	var m models.MediaAsset
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.URL, &m.ObjectKey, &m.Folder, &m.MimeType,
		&m.Width, &m.Height, &m.SizeBytes, &m.UploadedBy, &m.CreatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.NewResourceNotFoundError("Media asset not found")
		}
		return nil, fmt.Errorf("error retrieving media asset: %w", err)
	}

	return &m, nil
}

// GetByURL retrieves a media asset by its public URL
func (r *MediaRepository) GetByURL(ctx context.Context, url string) (*models.MediaAsset, error) {
	query := `
		SELECT id, url, object_key, folder, mime_type, width, height, size_bytes, uploaded_by, created_at
		FROM media_assets
		WHERE url = $1
	`

	var m models.MediaAsset
	err := r.db.QueryRow(ctx, query, url).Scan(
		&m.ID, &m.URL, &m.ObjectKey, &m.Folder, &m.MimeType,
		&m.Width, &m.Height, &m.SizeBytes, &m.UploadedBy, &m.CreatedAt,
	)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.NewResourceNotFoundError("Media asset not found")
		}
		return nil, fmt.Errorf("error retrieving media asset: %w", err)
	}

	return &m, nil
}

// List retrieves media assets newest first, optionally filtered by folder
func (r *MediaRepository) List(ctx context.Context, folder string) ([]*models.MediaAsset, error) {
	query := `
		SELECT id, url, object_key, folder, mime_type, width, height, size_bytes, uploaded_by, created_at
		FROM media_assets
	`
	args := []any{}
	if folder != "" {
		query += ` WHERE folder = $1`
		args = append(args, folder)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing media assets: %w", err)
	}
	defer rows.Close()

	var assets []*models.MediaAsset
	for rows.Next() {
		var m models.MediaAsset
		if err := rows.Scan(
			&m.ID, &m.URL, &m.ObjectKey, &m.Folder, &m.MimeType,
			&m.Width, &m.Height, &m.SizeBytes, &m.UploadedBy, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		assets = append(assets, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assets, nil
}

// Delete removes a media asset record
func (r *MediaRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM media_assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting media asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Media asset not found")
	}
	return nil
}
