package causeRepo

import (
	"context"
	"errors"

	"dharmachain/models"
)

// ErrCategoryNotFound is returned when no donation category has the given id.
var ErrCategoryNotFound = errors.New("donation category not found")

// CategoryRepository stores the donation categories managed from the admin dashboard.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.DonationCategory, error)
	GetByID(ctx context.Context, id string) (*models.DonationCategory, error)
	Create(ctx context.Context, in models.DonationCategoryInput) (*models.DonationCategory, error)
	Update(ctx context.Context, id string, in models.DonationCategoryInput) (*models.DonationCategory, error)
	DeleteByID(ctx context.Context, id string) error
}

// SeedCategories are loaded into an empty store.
func SeedCategories() []models.DonationCategory {
	return []models.DonationCategory{
		{
			ID:            "1",
			Title:         "Medical Care",
			Description:   "Providing medical assistance to those in need",
			Image:         "https://placehold.co/600x400.png",
			TargetAmount:  100000,
			CurrentAmount: 25000,
		},
		{
			ID:            "2",
			Title:         "Education Support",
			Description:   "Supporting education for underprivileged children",
			Image:         "https://placehold.co/600x400.png",
			TargetAmount:  50000,
			CurrentAmount: 12000,
		},
	}
}

// PublicCauses are the causes shown on the home page.
func PublicCauses() []models.Cause {
	return []models.Cause{
		{ID: "orphanage", Title: "Orphanage", Icon: "heart-handshake", Image: "https://placehold.co/600x400.png",
			Description: "Provide a safe and nurturing home for children in need. Your support helps with food, education, and care."},
		{ID: "gowshala", Title: "Gowshala (Cow Shelter)", Icon: "gowshala", Image: "https://placehold.co/600x400.png",
			Description: "Help care for and protect sacred cows. Your donation provides shelter, food, and medical attention."},
		{ID: "vridha-ashram", Title: "Vridha Ashram (Old Age Home)", Icon: "users", Image: "https://placehold.co/600x400.png",
			Description: "Support our elderly with dignity and care. Contributions ensure they have a comfortable and respectful life."},
		{ID: "health-centre", Title: "Help Health Centre", Icon: "heart-pulse", Image: "https://placehold.co/600x400.png",
			Description: "Fund essential medical supplies and services for underprivileged communities. Your help saves lives."},
		{ID: "samuhik-vivah", Title: "Samuhik Vivah (Mass Marriages)", Icon: "gem", Image: "https://placehold.co/600x400.png",
			Description: "Sponsor weddings for young couples from low-income families, helping them start their new lives together."},
		{ID: "pooja-path", Title: "Pooja-Path (Religious Services)", Icon: "hand", Image: "https://placehold.co/600x400.png",
			Description: "Contribute to religious ceremonies and services that bring peace and spiritual well-being to the community."},
		{ID: "eye-camps", Title: "Eye Camps", Icon: "eye", Image: "https://placehold.co/600x400.png",
			Description: "Sponsor free eye check-ups and cataract surgeries to restore sight and hope for those who cannot afford it."},
	}
}
