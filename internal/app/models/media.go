package models

import "time"

// MediaAsset defines an externally hosted media object based on the
// 'media_assets' table. ObjectKey is the opaque identifier the media
// store needs for deletion.
type MediaAsset struct {
	ID         int64     `json:"id" db:"id"`
	URL        string    `json:"url" db:"url"`
	ObjectKey  string    `json:"objectKey" db:"object_key"`
	Folder     string    `json:"folder" db:"folder"`
	MimeType   string    `json:"mimeType" db:"mime_type"`
	Width      *int      `json:"width,omitempty" db:"width"`
	Height     *int      `json:"height,omitempty" db:"height"`
	SizeBytes  int64     `json:"sizeBytes" db:"size_bytes"`
	UploadedBy int64     `json:"uploadedBy" db:"uploaded_by"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
