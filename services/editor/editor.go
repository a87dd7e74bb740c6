// Package editor keeps per-admin drafts of the About page and persists them on save.
package editor

import (
	"context"
	"strings"
	"sync"

	"dharmachain/models"
	"dharmachain/services/content"
	"dharmachain/services/sections"
	"dharmachain/services/storage"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// Direction is the way MoveSection moves a section.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Editor holds one draft per admin. Mutations are serialized by a single lock; store
// reads and writes happen outside it.
type Editor struct {
	store    content.Store
	uploader storage.ImageUploader
	policy   *bluemonday.Policy
	logger   *zap.Logger
	newID    func() string

	mu     sync.Mutex
	drafts map[string]*Draft
}

// New builds an Editor. A nil uploader disables image uploads.
func New(store content.Store, uploader storage.ImageUploader, logger *zap.Logger) *Editor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Editor{
		store:    store,
		uploader: uploader,
		policy:   bluemonday.UGCPolicy(),
		logger:   logger,
		drafts:   make(map[string]*Draft),
	}
}

// WithIDGenerator sets the section id source of drafts opened afterwards.
func (e *Editor) WithIDGenerator(gen func() string) *Editor {
	e.newID = gen
	return e
}

// acquire returns the admin's draft with e.mu held; the caller unlocks. The store is
// read without the lock, and a stale draft nobody has edited yet is rebuilt.
func (e *Editor) acquire(ctx context.Context, email string) *Draft {
	e.mu.Lock()
	if d, ok := e.drafts[email]; ok && !d.refreshable() {
		return d
	}
	e.mu.Unlock()

	c, err := e.store.LoadWithStatus(ctx)

	e.mu.Lock()
	if d, ok := e.drafts[email]; ok && !d.refreshable() {
		return d
	}
	e.install(email, c, err)
	return e.drafts[email]
}

// install replaces the admin's draft, keeping running upload marks. Must be called
// with e.mu held.
func (e *Editor) install(email string, c models.AboutContent, loadErr error) {
	d := newDraft(c, e.newID)
	if old, ok := e.drafts[email]; ok {
		d.uploading = old.uploading
	}
	if loadErr != nil {
		d.stale = true
		e.logger.Warn("about draft built from defaults", zap.String("admin", email), zap.Error(loadErr))
	}
	e.drafts[email] = d
}

// Open returns the current draft of the admin.
func (e *Editor) Open(ctx context.Context, email string) DraftView {
	d := e.acquire(ctx, email)
	defer e.mu.Unlock()
	return d.view()
}

// Reload discards unsaved edits and reads the stored content again.
// Uploads still running keep their marks.
func (e *Editor) Reload(ctx context.Context, email string) DraftView {
	c, err := e.store.LoadWithStatus(ctx)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.install(email, c, err)
	return e.drafts[email].view()
}

// UpdateMain edits the page-level fields.
func (e *Editor) UpdateMain(ctx context.Context, email string, patch models.MainInfoPatch) DraftView {
	d := e.acquire(ctx, email)
	defer e.mu.Unlock()
	if patch.MainHeading != nil {
		d.MainHeading = *patch.MainHeading
	}
	if patch.MainDescription != nil {
		d.MainDescription = *patch.MainDescription
	}
	if patch.LocationLink != nil {
		d.LocationLink = *patch.LocationLink
	}
	d.edited = true
	return d.view()
}

// InsertSection appends an empty section.
func (e *Editor) InsertSection(ctx context.Context, email string) (models.AboutSection, DraftView) {
	d := e.acquire(ctx, email)
	defer e.mu.Unlock()
	s := d.Sections.Insert()
	d.edited = true
	return s, d.view()
}

// UpdateSection merges a partial edit. Rich content is sanitized before it is kept.
func (e *Editor) UpdateSection(ctx context.Context, email, id string, patch models.SectionPatch) (DraftView, error) {
	if patch.Content != nil {
		clean := e.policy.Sanitize(*patch.Content)
		patch.Content = &clean
	}
	d := e.acquire(ctx, email)
	defer e.mu.Unlock()
	if _, err := d.Sections.Update(id, patch); err != nil {
		return d.view(), err
	}
	d.edited = true
	return d.view(), nil
}

// RemoveSection deletes a section. Removing an unknown id is a no-op.
func (e *Editor) RemoveSection(ctx context.Context, email, id string) DraftView {
	d := e.acquire(ctx, email)
	defer e.mu.Unlock()
	if d.Sections.Remove(id) {
		d.edited = true
	}
	return d.view()
}

// MoveSection swaps a section with its neighbour in the given direction.
func (e *Editor) MoveSection(ctx context.Context, email, id string, dir Direction) (DraftView, error) {
	d := e.acquire(ctx, email)
	defer e.mu.Unlock()
	var moved bool
	switch dir {
	case Up:
		moved = d.Sections.MoveUp(id)
	case Down:
		moved = d.Sections.MoveDown(id)
	default:
		return d.view(), ErrUnknownDirection
	}
	if moved {
		d.edited = true
	}
	return d.view(), nil
}

// Save writes the draft as captured at call time. On failure the draft is kept so the
// admin can retry. A stale draft is never written: it would replace the stored page
// with defaults.
func (e *Editor) Save(ctx context.Context, email string) (DraftView, error) {
	d := e.acquire(ctx, email)
	view := d.view()
	if d.stale {
		e.mu.Unlock()
		return view, ErrStaleDraft
	}
	if strings.TrimSpace(d.MainHeading) == "" {
		e.mu.Unlock()
		return view, ErrMainHeadingRequired
	}
	patch := d.patch()
	e.mu.Unlock()

	if err := e.store.Save(ctx, patch); err != nil {
		e.logger.Error("about save failed", zap.String("admin", email), zap.Error(err))
		return e.Open(ctx, email), err
	}
	e.logger.Info("about content saved", zap.String("admin", email), zap.Int("sections", len(*patch.Sections)))
	return e.Open(ctx, email), nil
}

// UploadImage uploads an image for a section and attaches its URL. The uploading mark
// is cleared whether the upload succeeds or fails.
func (e *Editor) UploadImage(ctx context.Context, email, sectionID string, file models.ImageFile) (DraftView, error) {
	if e.uploader == nil {
		return e.Open(ctx, email), &UploadError{SectionID: sectionID, Err: ErrUploadsDisabled}
	}
	if _, err := storage.ValidateImage(file); err != nil {
		return e.Open(ctx, email), &UploadError{SectionID: sectionID, Err: err}
	}

	d := e.acquire(ctx, email)
	if _, ok := d.Sections.Get(sectionID); !ok {
		view := d.view()
		e.mu.Unlock()
		return view, sections.ErrSectionNotFound
	}
	if _, busy := d.uploading[sectionID]; busy {
		view := d.view()
		e.mu.Unlock()
		return view, &UploadError{SectionID: sectionID, Err: ErrUploadInProgress}
	}
	d.uploading[sectionID] = struct{}{}
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		if cur, ok := e.drafts[email]; ok {
			delete(cur.uploading, sectionID)
		}
		e.mu.Unlock()
	}()

	url, err := e.uploader.Upload(ctx, sectionID, file)
	if err != nil {
		e.logger.Warn("Failed to upload image", zap.String("section", sectionID), zap.Error(err))
		return e.viewAfterUpload(ctx, email, sectionID), &UploadError{SectionID: sectionID, Err: err}
	}

	cur := e.acquire(ctx, email)
	_, updateErr := cur.Sections.Update(sectionID, models.SectionPatch{Image: &url})
	if updateErr == nil {
		cur.edited = true
	}
	delete(cur.uploading, sectionID)
	view := cur.view()
	e.mu.Unlock()
	if updateErr != nil {
		// The section was removed while its image was uploading.
		return view, &UploadError{SectionID: sectionID, Err: updateErr}
	}
	return view, nil
}

func (e *Editor) viewAfterUpload(ctx context.Context, email, sectionID string) DraftView {
	d := e.acquire(ctx, email)
	defer e.mu.Unlock()
	delete(d.uploading, sectionID)
	return d.view()
}

// IsUploading reports whether a section has an upload in flight.
func (e *Editor) IsUploading(email, sectionID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	d, ok := e.drafts[email]
	if !ok {
		return false
	}
	_, busy := d.uploading[sectionID]
	return busy
}
