package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// CloudStorageClient uploads under the app's fixed path conventions:
// products/<listingID>/image_<n>.jpg, chat_images/<conversationID>/<uuid>.jpg
// and avatars/<userID>/<uuid>.jpg.
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// Upload stores an image under the generic uploads prefix and returns its
// public URL.
func (c *CloudStorageClient) Upload(ctx context.Context, file io.Reader) (string, error) {
	objectName := fmt.Sprintf("uploads/%s.jpg", uuid.New().String())
	return c.upload(ctx, file, objectName)
}

// UploadListingImage stores one numbered listing image and returns its
// public URL.
func (c *CloudStorageClient) UploadListingImage(ctx context.Context, file io.Reader, listingID string, index int) (string, error) {
	objectName := fmt.Sprintf("products/%s/image_%d.jpg", listingID, index)
	return c.upload(ctx, file, objectName)
}

func (c *CloudStorageClient) UploadChatImage(ctx context.Context, file io.Reader, conversationID string) (string, error) {
	objectName := fmt.Sprintf("chat_images/%s/%s.jpg", conversationID, uuid.New().String())
	return c.upload(ctx, file, objectName)
}

func (c *CloudStorageClient) UploadAvatar(ctx context.Context, file io.Reader, userID string) (string, error) {
	objectName := fmt.Sprintf("avatars/%s/%s.jpg", userID, uuid.New().String())
	return c.upload(ctx, file, objectName)
}

func (c *CloudStorageClient) upload(ctx context.Context, file io.Reader, objectName string) (string, error) {
	obj := c.client.Bucket(c.bucketName).Object(objectName)
	wc := obj.NewWriter(ctx)
	wc.ContentType = "image/jpeg"
	wc.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(wc, file); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to copy file to GCS: %v", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to set ACL: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName), nil
}

// DeleteFile removes an object given the public URL returned by an upload.
func (c *CloudStorageClient) DeleteFile(ctx context.Context, fileURL string) error {
	const prefix = "https://storage.googleapis.com/"
	if !strings.HasPrefix(fileURL, prefix) {
		return fmt.Errorf("invalid GCS URL format")
	}

	path := fileURL[len(prefix):]
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] != c.bucketName {
		return fmt.Errorf("invalid GCS URL format or bucket mismatch")
	}

	obj := c.client.Bucket(c.bucketName).Object(parts[1])
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}

	return nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
