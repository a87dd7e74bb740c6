package causeRepo

import (
	"context"
	"sync"

	"dharmachain/models"

	"github.com/google/uuid"
)

// MemoryCategoryRepo keeps categories in process memory, in insertion order.
type MemoryCategoryRepo struct {
	mu    sync.RWMutex
	items []models.DonationCategory
}

func NewMemoryCategoryRepo(seed []models.DonationCategory) *MemoryCategoryRepo {
	items := make([]models.DonationCategory, len(seed))
	copy(items, seed)
	return &MemoryCategoryRepo{items: items}
}

func (r *MemoryCategoryRepo) List(ctx context.Context) ([]models.DonationCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.DonationCategory, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryCategoryRepo) GetByID(ctx context.Context, id string) (*models.DonationCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (r *MemoryCategoryRepo) Create(ctx context.Context, in models.DonationCategoryInput) (*models.DonationCategory, error) {
	c := in.ToCategory(uuid.New().String())
	r.mu.Lock()
	r.items = append(r.items, c)
	r.mu.Unlock()
	return &c, nil
}

func (r *MemoryCategoryRepo) Update(ctx context.Context, id string, in models.DonationCategoryInput) (*models.DonationCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i] = in.ToCategory(id)
			c := r.items[i]
			return &c, nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (r *MemoryCategoryRepo) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrCategoryNotFound
}
