package handler

import (
	"io"
	"mime/multipart"

	"github.com/labstack/echo/v4"

	"souqly/internal/usecase"
	"souqly/pkg/errors"
	"souqly/pkg/response"
)

const maxUploadSize = 10 << 20 // 10 MB per file

type UploadHandler struct {
	uploadUseCase *usecase.UploadUseCase
}

func NewUploadHandler(uploadUseCase *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{
		uploadUseCase: uploadUseCase,
	}
}

// UploadImages accepts a multipart form with one or more "images" parts and
// returns the public URLs in the order the parts were sent.
func (h *UploadHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid multipart form", err))
	}

	fileHeaders := form.File["images"]
	if len(fileHeaders) == 0 {
		return response.Error(c, errors.BadRequest("No images provided", nil))
	}

	var opened []multipart.File
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	readers := make([]io.Reader, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		if header.Size > maxUploadSize {
			return response.Error(c, errors.BadRequest("Image exceeds the maximum size", nil))
		}

		file, err := header.Open()
		if err != nil {
			return response.Error(c, errors.Internal("Failed to read uploaded file", err))
		}
		opened = append(opened, file)
		readers = append(readers, file)
	}

	urls, err := h.uploadUseCase.UploadImages(c.Request().Context(), readers)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{"urls": urls})
}

type deleteImageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

func (h *UploadHandler) DeleteImage(c echo.Context) error {
	var req deleteImageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.uploadUseCase.DeleteImage(c.Request().Context(), req.URL); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}
