package mediastore

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/kerem/hostelhub/internal/pkg/logger"
)

// LocalStore keeps media objects on the local filesystem and serves them
// through the static uploads route. The object key is the path relative
// to the base directory.
type LocalStore struct {
	basePath string
	baseURL  string
}

// NewLocalStore creates a LocalStore rooted at basePath. baseURL is
// prepended to object keys to build public URLs.
func NewLocalStore(basePath, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStore{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

var _ MediaStore = (*LocalStore)(nil)

// Upload saves the file under a unique name inside the folder hint.
func (s *LocalStore) Upload(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (*UploadResult, error) {
	if fileHeader == nil {
		return nil, fmt.Errorf("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dirPath := s.basePath
	if folder != "" {
		dirPath = filepath.Join(s.basePath, folder)
		if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create folder %s: %w", folder, err)
		}
	}

	// Unique name to prevent collisions
	ext := filepath.Ext(fileHeader.Filename)
	objectName := uuid.New().String() + ext
	dstPath := filepath.Join(dirPath, objectName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	objectKey := objectName
	if folder != "" {
		objectKey = folder + "/" + objectName
	}

	width, height := probeDimensions(fileHeader)

	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("objectKey", objectKey).
		Msg("File stored locally")

	return &UploadResult{
		URL:       s.baseURL + "/" + objectKey,
		ObjectKey: objectKey,
		MimeType:  fileHeader.Header.Get("Content-Type"),
		SizeBytes: fileHeader.Size,
		Width:     width,
		Height:    height,
	}, nil
}

// Delete removes a stored object. A missing object is not an error.
func (s *LocalStore) Delete(ctx context.Context, objectKey string) error {
	if objectKey == "" {
		return nil
	}

	fullPath := filepath.Join(s.basePath, filepath.Clean(objectKey))
	if !strings.HasPrefix(fullPath, filepath.Clean(s.basePath)) {
		return fmt.Errorf("object key %q escapes storage root", objectKey)
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete object %s: %w", objectKey, err)
	}
	return nil
}
