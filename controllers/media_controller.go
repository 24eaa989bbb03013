package controllers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ssamratd571/localexplorer/models"
	"github.com/ssamratd571/localexplorer/services"
	"github.com/ssamratd571/localexplorer/utils"
)

// MediaController handles standalone media uploads
type MediaController struct {
	cloud *services.CloudinaryService
}

// NewMediaController creates a new media controller
func NewMediaController(cloud *services.CloudinaryService) *MediaController {
	return &MediaController{cloud: cloud}
}

// readMultipartFile loads one uploaded file into memory.
func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}

// uploadFormImages resolves every file under the given form field to a
// canonical media ref. Any single failure aborts the whole batch so a
// listing is never written with a partial gallery.
func uploadFormImages(cloud *services.CloudinaryService, c echo.Context, field string) ([]models.MediaRef, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil // no multipart body; plain JSON create
	}

	files := form.File[field]
	refs := make([]models.MediaRef, 0, len(files))
	for _, fh := range files {
		if err := utils.ValidateFileType(fh.Filename, "image"); err != nil {
			return nil, err
		}
		data, err := readMultipartFile(fh)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", fh.Filename, err)
		}
		ref, err := cloud.Upload(data, fh.Filename, "image")
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", fh.Filename, err)
		}
		refs = append(refs, *ref)

		// Thumbnails are best-effort for locally stored galleries
		if !cloud.Configured() {
			if _, err := utils.GenerateImageThumbnail(data, fh.Filename); err != nil {
				log.Printf("Thumbnail generation failed for %s: %v", fh.Filename, err)
			}
		}
	}
	return refs, nil
}

// uploadFormVideo resolves an optional single video under the given field.
func uploadFormVideo(cloud *services.CloudinaryService, c echo.Context, field string) (*models.MediaRef, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	files := form.File[field]
	if len(files) == 0 {
		return nil, nil
	}

	fh := files[0]
	if err := utils.ValidateFileType(fh.Filename, "video"); err != nil {
		return nil, err
	}
	data, err := readMultipartFile(fh)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fh.Filename, err)
	}
	ref, err := cloud.Upload(data, fh.Filename, "video")
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", fh.Filename, err)
	}

	if !cloud.Configured() {
		if _, err := utils.GenerateVideoThumbnail(ref.URL); err != nil {
			log.Printf("Video thumbnail generation failed for %s: %v", fh.Filename, err)
		}
	}
	return ref, nil
}

// Upload accepts a multipart file and returns its canonical media ref.
func (mc *MediaController) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Missing file",
		})
	}

	resourceType := c.FormValue("resourceType")
	if resourceType == "" {
		resourceType = "image"
	}
	if err := utils.ValidateFileType(fh.Filename, resourceType); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	data, err := readMultipartFile(fh)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Failed to read file: " + err.Error(),
		})
	}

	ref, err := mc.cloud.Upload(data, fh.Filename, resourceType)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Upload failed: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "File uploaded",
		Data:    ref,
	})
}
