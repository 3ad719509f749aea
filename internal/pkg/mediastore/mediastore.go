package mediastore

import (
	"context"
	"image"
	"mime/multipart"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// UploadResult describes a stored media object: its public URL, the
// opaque key needed to delete it later, and probed image dimensions.
type UploadResult struct {
	URL       string
	ObjectKey string
	MimeType  string
	SizeBytes int64
	Width     *int
	Height    *int
}

// MediaStore defines the media hosting capability: accept an upload with
// a folder hint, return URL plus identifier, and delete by identifier.
type MediaStore interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (*UploadResult, error)
	Delete(ctx context.Context, objectKey string) error
}

// probeDimensions decodes just the image header to find width/height.
// Non-image uploads return nil dimensions without error.
func probeDimensions(fileHeader *multipart.FileHeader) (*int, *int) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return nil, nil
	}
	return &cfg.Width, &cfg.Height
}
