package services

import (
	"context"
	"mime/multipart"

	"github.com/kerem/hostelhub/internal/app/models"
	"github.com/kerem/hostelhub/internal/pkg/apperrors"
	"github.com/kerem/hostelhub/internal/pkg/logger"
	"github.com/kerem/hostelhub/internal/pkg/mediastore"
)

// IMediaRepository is the media asset persistence surface
type IMediaRepository interface {
	Create(ctx context.Context, m *models.MediaAsset) error
	GetByID(ctx context.Context, id int64) (*models.MediaAsset, error)
	GetByURL(ctx context.Context, url string) (*models.MediaAsset, error)
	List(ctx context.Context, folder string) ([]*models.MediaAsset, error)
	Delete(ctx context.Context, id int64) error
}

// MediaService handles uploads to the configured media backend and
// tracks each stored object
type MediaService struct {
	mediaRepo IMediaRepository
	store     mediastore.MediaStore
}

// NewMediaService creates a new MediaService
func NewMediaService(mediaRepo IMediaRepository, store mediastore.MediaStore) *MediaService {
	return &MediaService{
		mediaRepo: mediaRepo,
		store:     store,
	}
}

// Upload stores a file and records the resulting asset. The caller picks
// a folder so related uploads group together in the backend.
func (s *MediaService) Upload(ctx context.Context, fileHeader *multipart.FileHeader, folder string, uploadedBy int64) (*models.MediaAsset, error) {
	result, err := s.store.Upload(ctx, fileHeader, folder)
	if err != nil {
		logger.Error().Err(err).Str("folder", folder).Msg("Media upload failed")
		return nil, apperrors.NewCustomError(apperrors.ErrStorage, "Failed to store uploaded file")
	}

	asset := &models.MediaAsset{
		URL:        result.URL,
		ObjectKey:  result.ObjectKey,
		Folder:     folder,
		MimeType:   result.MimeType,
		Width:      result.Width,
		Height:     result.Height,
		SizeBytes:  result.SizeBytes,
		UploadedBy: uploadedBy,
	}

	if err := s.mediaRepo.Create(ctx, asset); err != nil {
		// The record failed; drop the orphaned object
		if delErr := s.store.Delete(ctx, result.ObjectKey); delErr != nil {
			logger.Warn().Err(delErr).Str("object_key", result.ObjectKey).Msg("Failed to clean up orphaned upload")
		}
		return nil, err
	}

	return asset, nil
}

// GetAsset retrieves a media asset by ID
func (s *MediaService) GetAsset(ctx context.Context, id int64) (*models.MediaAsset, error) {
	return s.mediaRepo.GetByID(ctx, id)
}

// ListAssets retrieves media assets, optionally filtered by folder
func (s *MediaService) ListAssets(ctx context.Context, folder string) ([]*models.MediaAsset, error) {
	return s.mediaRepo.List(ctx, folder)
}

// CleanupByURL best-effort deletes the asset behind a URL when a content
// entity referencing it is removed. URLs that were never uploaded through
// the media endpoint are simply skipped; failures are logged, not returned.
func (s *MediaService) CleanupByURL(ctx context.Context, url string) {
	if url == "" {
		return
	}

	asset, err := s.mediaRepo.GetByURL(ctx, url)
	if err != nil {
		return
	}

	if err := s.mediaRepo.Delete(ctx, asset.ID); err != nil {
		logger.Warn().Err(err).Str("url", url).Msg("Failed to delete media record during cleanup")
		return
	}
	if err := s.store.Delete(ctx, asset.ObjectKey); err != nil {
		logger.Warn().Err(err).Str("object_key", asset.ObjectKey).Msg("Failed to delete stored object during cleanup")
	}
}

// DeleteAsset removes the record and then the stored object. A backend
// that has already lost the object is treated as deleted.
func (s *MediaService) DeleteAsset(ctx context.Context, id int64) error {
	asset, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.mediaRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, asset.ObjectKey); err != nil {
		logger.Warn().Err(err).Str("object_key", asset.ObjectKey).Msg("Failed to delete stored object")
	}

	return nil
}
