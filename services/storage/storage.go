package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"dharmachain/models"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
)

const firebaseImageFolder = "about/images"

// FirebaseUploader stores section images in the Firebase Storage bucket.
type FirebaseUploader struct {
	bucket     *storage.BucketHandle
	bucketName string
}

// NewFirebaseUploader uses the default bucket of the Firebase app (or bucketName when set).
func NewFirebaseUploader(ctx context.Context, app *firebase.App, bucketName string) (*FirebaseUploader, error) {
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	var bucket *storage.BucketHandle
	if bucketName != "" {
		bucket, err = client.Bucket(bucketName)
	} else {
		bucket, err = client.DefaultBucket()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open storage bucket: %w", err)
	}
	attrs, err := bucket.Attrs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read bucket attributes: %w", err)
	}
	return &FirebaseUploader{bucket: bucket, bucketName: attrs.Name}, nil
}

// Upload writes the image with a download token and returns its token URL.
func (s *FirebaseUploader) Upload(ctx context.Context, sectionID string, file models.ImageFile) (string, error) {
	contentType, err := ValidateImage(file)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	objectPath := objectName(firebaseImageFolder, sectionID, file.Filename)
	downloadToken := uuid.NewString()
	w := s.bucket.Object(objectPath).NewWriter(ctx)
	w.ObjectAttrs.ContentType = contentType
	w.ObjectAttrs.Metadata = map[string]string{
		"firebaseStorageDownloadTokens": downloadToken,
		"sectionId":                     sectionID,
	}

	if _, err := w.Write(file.Data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to copy file to storage: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return downloadURL(s.bucketName, objectPath, downloadToken), nil
}

// downloadURL is the token URL Firebase serves an object under. The object path is a
// single escaped segment: spaces become %20 and slashes %2F.
func downloadURL(bucket, objectPath, token string) string {
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		bucket, strings.ReplaceAll(url.PathEscape(objectPath), "/", "%2F"), url.QueryEscape(token))
}
