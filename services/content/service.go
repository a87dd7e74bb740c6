// Package content loads and merge-writes the About page document.
package content

import (
	"context"
	"errors"

	contentRepo "dharmachain/database/repository/content"
	"dharmachain/models"

	"go.uber.org/zap"
)

// Store is the About page persistence boundary.
type Store interface {
	// Load never fails: an absent or unreadable document yields the defaults.
	Load(ctx context.Context) models.AboutContent
	// LoadWithStatus is Load that also reports a failed read as *PersistenceError.
	// The content is the defaults in that case. An absent document is not an error.
	LoadWithStatus(ctx context.Context) (models.AboutContent, error)
	// Save merge-writes the provided fields. Failures are *PersistenceError.
	Save(ctx context.Context, patch models.AboutContentPatch) error
}

// DefaultContentService is the production Store.
type DefaultContentService struct {
	Repo   contentRepo.ContentRepository
	Cache  Cache // optional
	Logger *zap.Logger
}

// NewContentService wires a Store over a repository and an optional cache.
func NewContentService(repo contentRepo.ContentRepository, cache Cache, logger *zap.Logger) *DefaultContentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultContentService{Repo: repo, Cache: cache, Logger: logger}
}

func (s *DefaultContentService) Load(ctx context.Context) models.AboutContent {
	c, _ := s.LoadWithStatus(ctx)
	return c
}

func (s *DefaultContentService) LoadWithStatus(ctx context.Context) (models.AboutContent, error) {
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx)
		if err == nil {
			return *cached, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			s.Logger.Warn("content cache read failed", zap.Error(err))
		}
	}

	doc, err := s.Repo.Get(ctx)
	if errors.Is(err, contentRepo.ErrDocumentNotFound) {
		return DefaultContent(), nil
	}
	if err != nil {
		perr := &PersistenceError{Op: "load", Err: err}
		s.Logger.Error("Error fetching about content", zap.Error(perr))
		return DefaultContent(), perr
	}

	resolved := resolveDocument(doc).toContent()
	if s.Cache != nil {
		if err := s.Cache.Set(ctx, resolved); err != nil {
			s.Logger.Warn("content cache write failed", zap.Error(err))
		}
	}
	return resolved, nil
}

func (s *DefaultContentService) Save(ctx context.Context, patch models.AboutContentPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	if err := s.Repo.Merge(ctx, patch); err != nil {
		perr := &PersistenceError{Op: "save", Err: err}
		s.Logger.Error("Error updating about content", zap.Error(perr))
		return perr
	}
	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx); err != nil {
			s.Logger.Warn("content cache invalidation failed", zap.Error(err))
		}
	}
	s.Logger.Info("About content updated", zap.Int("fields", len(patch.Fields())))
	return nil
}
