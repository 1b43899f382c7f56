package imagehost

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryClient is the alternative image pipeline used for listing
// photos. Credentials come from configuration, never from source.
type CloudinaryClient struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryClient(cloudName, apiKey, apiSecret, folder string) (*CloudinaryClient, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials are not configured")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %v", err)
	}

	return &CloudinaryClient{
		cld:    cld,
		folder: folder,
	}, nil
}

// Upload sends raw image bytes and returns the hosted secure URL.
func (c *CloudinaryClient) Upload(ctx context.Context, file io.Reader) (string, error) {
	result, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   c.folder,
		PublicID: uuid.New().String(),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %v", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload failed: %s", result.Error.Message)
	}

	return result.SecureURL, nil
}

// DeleteFile destroys an asset given the delivery URL returned by Upload.
func (c *CloudinaryClient) DeleteFile(ctx context.Context, fileURL string) error {
	publicID, err := publicIDFromURL(fileURL)
	if err != nil {
		return err
	}

	result, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed: %v", err)
	}
	if result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("cloudinary destroy failed: %s", result.Result)
	}

	return nil
}

// publicIDFromURL extracts the public ID from a delivery URL: the path
// after the /upload/ segment, minus the version prefix and file extension.
func publicIDFromURL(fileURL string) (string, error) {
	_, after, found := strings.Cut(fileURL, "/upload/")
	if !found {
		return "", fmt.Errorf("invalid cloudinary URL format")
	}

	if parts := strings.SplitN(after, "/", 2); len(parts) == 2 && strings.HasPrefix(parts[0], "v") {
		after = parts[1]
	}
	if ext := path.Ext(after); ext != "" {
		after = strings.TrimSuffix(after, ext)
	}
	if after == "" {
		return "", fmt.Errorf("invalid cloudinary URL format")
	}

	return after, nil
}
