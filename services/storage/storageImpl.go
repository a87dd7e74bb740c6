package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"dharmachain/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const cloudinaryImageFolder = "dharmachain/about"

// CloudinaryUploader stores section images on Cloudinary.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader initializes a Cloudinary client from credentials.
func NewCloudinaryUploader(cloudName, apiKey, apiSecret string) (*CloudinaryUploader, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

// Upload sends the image into the section's folder and returns the secure URL.
func (s *CloudinaryUploader) Upload(ctx context.Context, sectionID string, file models.ImageFile) (string, error) {
	if _, err := ValidateImage(file); err != nil {
		return "", err
	}
	publicID := strings.TrimSuffix(objectName(cloudinaryImageFolder, sectionID, file.Filename), extension(file.Filename))
	params := uploader.UploadParams{
		PublicID: publicID,
	}
	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(file.Data), params)
	if err != nil {
		return "", fmt.Errorf("cloudinary: failed to upload file: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary: no secure URL returned")
	}
	return result.SecureURL, nil
}

func extension(filename string) string {
	if i := strings.LastIndex(filename, "."); i > 0 && !strings.ContainsAny(filename[i:], `/\`) {
		return filename[i:]
	}
	return ""
}
