package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ssamratd571/localexplorer/models"
	"github.com/ssamratd571/localexplorer/utils"
)

// CloudinaryService uploads media to Cloudinary using an unsigned upload
// preset. When Cloudinary is not configured, uploads fall back to local
// disk storage so the rest of the system keeps working.
type CloudinaryService struct {
	cloudName    string
	uploadPreset string
	client       *http.Client
}

// NewCloudinaryService creates a new Cloudinary service instance
func NewCloudinaryService() *CloudinaryService {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	uploadPreset := os.Getenv("CLOUDINARY_UPLOAD_PRESET")

	if cloudName == "" || uploadPreset == "" {
		log.Printf("WARNING: Cloudinary not fully configured:")
		if cloudName == "" {
			log.Printf("  - CLOUDINARY_CLOUD_NAME is missing")
		}
		if uploadPreset == "" {
			log.Printf("  - CLOUDINARY_UPLOAD_PRESET is missing")
		}
		log.Printf("Media uploads will be stored on local disk")
	} else {
		log.Printf("Cloudinary Service Configuration:")
		log.Printf("  Cloud name: %s", cloudName)
		log.Printf("  Upload preset: [CONFIGURED]")
	}

	return &CloudinaryService{
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		client:       &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether remote uploads are possible.
func (s *CloudinaryService) Configured() bool {
	return s.cloudName != "" && s.uploadPreset != ""
}

// cloudinaryUploadResponse is the subset of the upload API response we use.
type cloudinaryUploadResponse struct {
	URL          string `json:"url"`
	SecureURL    string `json:"secure_url"`
	PublicID     string `json:"public_id"`
	ResourceType string `json:"resource_type"`
	Error        struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload stores one file and returns its canonical media reference.
// resourceType is "image" or "video".
func (s *CloudinaryService) Upload(fileData []byte, filename, resourceType string) (*models.MediaRef, error) {
	if !s.Configured() {
		return s.uploadLocal(fileData, filename, resourceType)
	}

	url := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/%s/upload", s.cloudName, resourceType)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	if _, err := part.Write(fileData); err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	if err := writer.WriteField("upload_preset", s.uploadPreset); err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cloudinary request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read cloudinary response: %w", err)
	}

	var result cloudinaryUploadResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse cloudinary response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := result.Error.Message
		if msg == "" {
			msg = string(respBody)
		}
		return nil, fmt.Errorf("cloudinary upload failed (%d): %s", resp.StatusCode, msg)
	}

	return &models.MediaRef{
		URL:          result.URL,
		SecureURL:    result.SecureURL,
		PublicID:     result.PublicID,
		ResourceType: result.ResourceType,
	}, nil
}

// uploadLocal is the disk fallback; the uuid prefix keeps filenames unique.
func (s *CloudinaryService) uploadLocal(fileData []byte, filename, resourceType string) (*models.MediaRef, error) {
	uniqueName := fmt.Sprintf("%s-%s", uuid.New().String(), filepath.Base(filename))
	url, err := utils.UploadFileToPath(fileData, uniqueName, resourceType, "listings")
	if err != nil {
		return nil, err
	}
	return &models.MediaRef{
		URL:          url,
		SecureURL:    url,
		PublicID:     uniqueName,
		ResourceType: resourceType,
	}, nil
}
