package contentRepo

import (
	"context"
	"sync"

	"dharmachain/models"
)

// MemoryContentRepo keeps the About document in process memory. Used for local runs and tests.
type MemoryContentRepo struct {
	mu  sync.RWMutex
	doc *models.AboutDocument
}

// NewMemoryContentRepo creates an empty in-memory repository. A non-nil seed is stored as-is.
func NewMemoryContentRepo(seed *models.AboutDocument) *MemoryContentRepo {
	r := &MemoryContentRepo{}
	if seed != nil {
		cp := cloneDocument(*seed)
		r.doc = &cp
	}
	return r
}

func (r *MemoryContentRepo) Get(ctx context.Context) (*models.AboutDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.doc == nil {
		return nil, ErrDocumentNotFound
	}
	cp := cloneDocument(*r.doc)
	return &cp, nil
}

func (r *MemoryContentRepo) Merge(ctx context.Context, patch models.AboutContentPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doc == nil {
		r.doc = &models.AboutDocument{}
	}
	r.doc.Apply(patch)
	return nil
}

func (r *MemoryContentRepo) Ping(ctx context.Context) error {
	return nil
}

func cloneDocument(d models.AboutDocument) models.AboutDocument {
	if d.Sections != nil {
		sections := make([]models.AboutSection, len(d.Sections))
		copy(sections, d.Sections)
		d.Sections = sections
	}
	return d
}
