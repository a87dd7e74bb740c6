package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dharmachain/models"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageBytes is the largest accepted section image.
const MaxImageBytes = 5 * 1024 * 1024

var (
	ErrNotAnImage    = errors.New("please select an image file")
	ErrImageTooLarge = errors.New("image size should be less than 5MB")
	ErrEmptyImage    = errors.New("image file is empty")
)

// ImageUploader stores an image for a section and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, sectionID string, file models.ImageFile) (string, error)
}

// ValidateImage checks size and sniffs the payload; the declared content type is not trusted.
// It returns the detected MIME type.
func ValidateImage(file models.ImageFile) (string, error) {
	if len(file.Data) == 0 {
		return "", ErrEmptyImage
	}
	if len(file.Data) > MaxImageBytes {
		return "", ErrImageTooLarge
	}
	detected := mimetype.Detect(file.Data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotAnImage, detected.String())
	}
	return detected.String(), nil
}

// objectName is the storage path of a section image.
func objectName(folder, sectionID, filename string) string {
	name := strings.TrimSpace(filename)
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		name = "image"
	}
	return folder + "/" + sectionID + "/" + name
}
