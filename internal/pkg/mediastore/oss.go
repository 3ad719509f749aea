package mediastore

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	"github.com/kerem/hostelhub/internal/pkg/logger"
)

// OSSConfig holds the Aliyun OSS connection settings.
type OSSConfig struct {
	Endpoint        string
	Bucket          string
	AccessKeyID     string
	AccessKeySecret string
	// PublicBaseURL overrides the generated bucket URL, for CDN fronting.
	PublicBaseURL string
}

// OSSStore keeps media objects in an Aliyun OSS bucket.
type OSSStore struct {
	bucket  *oss.Bucket
	baseURL string
}

// NewOSSStore connects to the configured bucket.
func NewOSSStore(cfg OSSConfig) (*OSSStore, error) {
	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create oss client: %w", err)
	}

	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to open oss bucket %s: %w", cfg.Bucket, err)
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.%s", cfg.Bucket, strings.TrimPrefix(cfg.Endpoint, "https://"))
	}

	return &OSSStore{
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

var _ MediaStore = (*OSSStore)(nil)

// Upload streams the file into the bucket under a unique object key.
func (s *OSSStore) Upload(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (*UploadResult, error) {
	if fileHeader == nil {
		return nil, fmt.Errorf("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	objectKey := uuid.New().String() + ext
	if folder != "" {
		objectKey = strings.Trim(folder, "/") + "/" + objectKey
	}

	contentType := fileHeader.Header.Get("Content-Type")
	options := []oss.Option{}
	if contentType != "" {
		options = append(options, oss.ContentType(contentType))
	}

	if err := s.bucket.PutObject(objectKey, file, options...); err != nil {
		return nil, fmt.Errorf("failed to upload object %s: %w", objectKey, err)
	}

	width, height := probeDimensions(fileHeader)

	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("objectKey", objectKey).
		Msg("File uploaded to OSS")

	return &UploadResult{
		URL:       s.baseURL + "/" + objectKey,
		ObjectKey: objectKey,
		MimeType:  contentType,
		SizeBytes: fileHeader.Size,
		Width:     width,
		Height:    height,
	}, nil
}

// Delete removes an object from the bucket. OSS treats deleting a
// missing object as success, which matches the best-effort contract.
func (s *OSSStore) Delete(ctx context.Context, objectKey string) error {
	if objectKey == "" {
		return nil
	}
	if err := s.bucket.DeleteObject(objectKey); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", objectKey, err)
	}
	return nil
}
