// Package ai suggests wording for donation appeals.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dharmachain/models"

	"go.uber.org/zap"
)

// ErrInvalidAppealRequest is returned when category or priority is missing.
var ErrInvalidAppealRequest = errors.New("category and priority are required")

// TextGenerator completes a prompt.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type AppealService interface {
	GenerateAppeal(ctx context.Context, req models.AppealRequest) (*models.AppealResponse, error)
}

type DefaultAppealService struct {
	generator TextGenerator
	store     AppealStore // optional
	logger    *zap.Logger
}

func NewAppealService(generator TextGenerator, store AppealStore, logger *zap.Logger) *DefaultAppealService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultAppealService{generator: generator, store: store, logger: logger}
}

const appealPrompt = `You are a fundraising expert specializing in crafting compelling donation appeals.

Given the donation category and the specific fundraising priority, generate a suggestion for impactful wording to communicate the need to potential donors.

Category: %s
Fundraising Priority: %s

Appeal Suggestion:`

func buildAppealPrompt(req models.AppealRequest) string {
	return fmt.Sprintf(appealPrompt, req.Category, req.Priority)
}

func (s *DefaultAppealService) GenerateAppeal(ctx context.Context, req models.AppealRequest) (*models.AppealResponse, error) {
	req.Category = strings.TrimSpace(req.Category)
	req.Priority = strings.TrimSpace(req.Priority)
	if req.Category == "" || req.Priority == "" {
		return nil, ErrInvalidAppealRequest
	}

	if s.store != nil {
		text, err := s.store.Get(ctx, req)
		if err == nil {
			return &models.AppealResponse{AppealText: text, Cached: true}, nil
		}
		if !errors.Is(err, ErrAppealNotCached) {
			s.logger.Warn("appeal cache read failed", zap.Error(err))
		}
	}

	text, err := s.generator.GenerateContent(ctx, buildAppealPrompt(req))
	if err != nil {
		s.logger.Error("Failed to generate donation appeal", zap.String("category", req.Category), zap.Error(err))
		return nil, err
	}
	text = strings.TrimSpace(text)

	if s.store != nil {
		if err := s.store.Set(ctx, req, text); err != nil {
			s.logger.Warn("appeal cache write failed", zap.Error(err))
		}
	}
	return &models.AppealResponse{AppealText: text}, nil
}
