package usecase

import (
	"context"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"souqly/internal/domain/service"
	"souqly/pkg/errors"
	"souqly/pkg/logger"
)

const maxImagesPerListing = 6

type UploadUseCase struct {
	uploader service.ImageUploadService
	deleter  service.ImageDeleter
	parallel int
}

func NewUploadUseCase(uploader service.ImageUploadService, deleter service.ImageDeleter, parallel int) *UploadUseCase {
	if parallel < 1 {
		parallel = 1
	}
	return &UploadUseCase{
		uploader: uploader,
		deleter:  deleter,
		parallel: parallel,
	}
}

// UploadImages uploads a batch of images with bounded concurrency. The first
// failure cancels the in-flight uploads, already-stored files are cleaned up
// best effort, and the whole batch fails. URLs come back in input order.
func (uc *UploadUseCase) UploadImages(ctx context.Context, files []io.Reader) ([]string, error) {
	if len(files) == 0 {
		return nil, errors.BadRequest("No images provided", nil)
	}
	if len(files) > maxImagesPerListing {
		return nil, errors.BadRequest("Too many images", nil)
	}

	urls := make([]string, len(files))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.parallel)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			url, err := uc.uploader.Upload(gctx, file)
			if err != nil {
				return err
			}
			mu.Lock()
			urls[i] = url
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.cleanup(urls)
		return nil, errors.Internal("Failed to upload images", err)
	}

	return urls, nil
}

func (uc *UploadUseCase) DeleteImage(ctx context.Context, fileURL string) error {
	if uc.deleter == nil {
		return nil
	}
	return uc.deleter.DeleteFile(ctx, fileURL)
}

// cleanup removes the files that made it before the batch failed. The
// caller's context may already be cancelled, so this uses its own.
func (uc *UploadUseCase) cleanup(urls []string) {
	if uc.deleter == nil {
		return
	}
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := uc.deleter.DeleteFile(context.Background(), url); err != nil {
			logger.Warn("Failed to clean up uploaded image %s: %v", url, err)
		}
	}
}
