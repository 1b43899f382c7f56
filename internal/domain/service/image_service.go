package service

import (
	"context"
	"io"
)

// ImageUploadService uploads a single image and returns its public URL.
// Implementations: Cloudinary for listing photos, Cloud Storage for chat
// attachments and avatars.
type ImageUploadService interface {
	Upload(ctx context.Context, file io.Reader) (string, error)
}

// ImageDeleter removes an uploaded image by its public URL. Deletion is
// best effort; orphaned files are acceptable, dangling references are not.
type ImageDeleter interface {
	DeleteFile(ctx context.Context, fileURL string) error
}
