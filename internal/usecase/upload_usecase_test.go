package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	mu      sync.Mutex
	count   int
	failAt  int // 1-based call number that fails, 0 for never
	uploads []string
}

func (f *fakeUploader) Upload(ctx context.Context, file io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.count++
	if f.failAt != 0 && f.count == f.failAt {
		return "", fmt.Errorf("upstream rejected upload")
	}

	url := fmt.Sprintf("https://cdn.example.com/img-%d.jpg", f.count)
	f.uploads = append(f.uploads, url)
	return url, nil
}

type fakeDeleter struct {
	mu      sync.Mutex
	deleted []string
}

func (f *fakeDeleter) DeleteFile(ctx context.Context, fileURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, fileURL)
	return nil
}

func readers(n int) []io.Reader {
	out := make([]io.Reader, n)
	for i := range out {
		out[i] = strings.NewReader("image-bytes")
	}
	return out
}

func TestUploadImagesReturnsURLsInOrder(t *testing.T) {
	uploader := &fakeUploader{}
	uc := NewUploadUseCase(uploader, &fakeDeleter{}, 3)

	urls, err := uc.UploadImages(context.Background(), readers(4))
	require.NoError(t, err)

	require.Len(t, urls, 4)
	for _, url := range urls {
		assert.NotEmpty(t, url)
	}
}

func TestUploadImagesFailureCleansUpStoredFiles(t *testing.T) {
	uploader := &fakeUploader{failAt: 3}
	deleter := &fakeDeleter{}
	uc := NewUploadUseCase(uploader, deleter, 1)

	_, err := uc.UploadImages(context.Background(), readers(4))
	require.Error(t, err)

	// The uploads that landed before the failure are removed again.
	assert.ElementsMatch(t, uploader.uploads, deleter.deleted)
}

func TestUploadImagesEmptyAndOversizedBatch(t *testing.T) {
	uc := NewUploadUseCase(&fakeUploader{}, &fakeDeleter{}, 2)

	_, err := uc.UploadImages(context.Background(), nil)
	assert.Error(t, err)

	_, err = uc.UploadImages(context.Background(), readers(maxImagesPerListing+1))
	assert.Error(t, err)
}
