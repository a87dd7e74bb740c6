package contentRepo

import (
	"context"
	"errors"

	"dharmachain/models"
)

// ErrDocumentNotFound is returned by Get when the About document was never written.
var ErrDocumentNotFound = errors.New("about content document not found")

// ContentRepository reads and merge-writes the single About page document.
type ContentRepository interface {
	// Get returns the stored document or ErrDocumentNotFound.
	Get(ctx context.Context) (*models.AboutDocument, error)
	// Merge writes only the fields present in patch, creating the document if needed.
	Merge(ctx context.Context, patch models.AboutContentPatch) error
	// Ping checks the backend is reachable.
	Ping(ctx context.Context) error
}
