package ai

import (
	"context"
	"errors"
	"testing"

	"dharmachain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedGenerator struct {
	prompts []string
	reply   string
	err     error
}

func (g *scriptedGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

type mapStore map[string]string

func (m mapStore) Get(ctx context.Context, req models.AppealRequest) (string, error) {
	if v, ok := m[appealKey(req)]; ok {
		return v, nil
	}
	return "", ErrAppealNotCached
}

func (m mapStore) Set(ctx context.Context, req models.AppealRequest, text string) error {
	m[appealKey(req)] = text
	return nil
}

func TestGenerateAppealUsesPrompt(t *testing.T) {
	gen := &scriptedGenerator{reply: "  Give shelter today.  "}
	svc := NewAppealService(gen, nil, nil)

	resp, err := svc.GenerateAppeal(context.Background(), models.AppealRequest{Category: "Gowshala", Priority: "Winter fodder"})
	require.NoError(t, err)
	assert.Equal(t, "Give shelter today.", resp.AppealText)
	assert.False(t, resp.Cached)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Category: Gowshala")
	assert.Contains(t, gen.prompts[0], "Fundraising Priority: Winter fodder")
}

func TestGenerateAppealRequiresInput(t *testing.T) {
	svc := NewAppealService(&scriptedGenerator{}, nil, nil)
	_, err := svc.GenerateAppeal(context.Background(), models.AppealRequest{Category: "Orphanage", Priority: " "})
	assert.ErrorIs(t, err, ErrInvalidAppealRequest)
}

func TestGenerateAppealIsCached(t *testing.T) {
	gen := &scriptedGenerator{reply: "Restore sight."}
	svc := NewAppealService(gen, mapStore{}, nil)
	ctx := context.Background()

	_, err := svc.GenerateAppeal(ctx, models.AppealRequest{Category: "Eye Camps", Priority: "Cataract surgery"})
	require.NoError(t, err)
	resp, err := svc.GenerateAppeal(ctx, models.AppealRequest{Category: "eye camps ", Priority: "CATARACT SURGERY"})
	require.NoError(t, err)
	assert.True(t, resp.Cached)
	assert.Equal(t, "Restore sight.", resp.AppealText)
	assert.Len(t, gen.prompts, 1)
}

func TestGenerateAppealFailureIsNotCached(t *testing.T) {
	store := mapStore{}
	svc := NewAppealService(&scriptedGenerator{err: errors.New("quota")}, store, nil)
	_, err := svc.GenerateAppeal(context.Background(), models.AppealRequest{Category: "Orphanage", Priority: "Books"})
	assert.Error(t, err)
	assert.Empty(t, store)
}
