package causeRepo

import (
	"context"
	"testing"

	"dharmachain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicCauses(t *testing.T) {
	causes := PublicCauses()
	require.Len(t, causes, 7)
	ids := make([]string, 0, len(causes))
	for _, c := range causes {
		ids = append(ids, c.ID)
		assert.NotEmpty(t, c.Description)
	}
	assert.Equal(t, []string{"orphanage", "gowshala", "vridha-ashram", "health-centre", "samuhik-vivah", "pooja-path", "eye-camps"}, ids)
}

func TestMemoryCategoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCategoryRepo(SeedCategories())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Medical Care", list[0].Title)

	created, err := repo.Create(ctx, models.DonationCategoryInput{Title: "Eye Camps", Description: "Cataract surgeries", TargetAmount: 20000})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	updated, err := repo.Update(ctx, created.ID, models.DonationCategoryInput{Title: "Eye Camps", Description: "Cataract surgeries", TargetAmount: 20000, CurrentAmount: 500})
	require.NoError(t, err)
	assert.Equal(t, int64(500), updated.CurrentAmount)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)

	require.NoError(t, repo.DeleteByID(ctx, "1"))
	list, _ = repo.List(ctx)
	assert.Len(t, list, 2)
	assert.Equal(t, "Education Support", list[0].Title)

	assert.ErrorIs(t, repo.DeleteByID(ctx, "1"), ErrCategoryNotFound)
	_, err = repo.Update(ctx, "nope", models.DonationCategoryInput{})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestSeedIsCopied(t *testing.T) {
	seed := SeedCategories()
	repo := NewMemoryCategoryRepo(seed)
	seed[0].Title = "changed"
	list, _ := repo.List(context.Background())
	assert.Equal(t, "Medical Care", list[0].Title)
}
