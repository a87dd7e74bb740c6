package causeRepo

import (
	"context"
	"errors"

	"dharmachain/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const categoryCollection = "donation_categories"

type mongoCategoryRepo struct {
	coll *mongo.Collection
}

// NewMongoCategoryRepo returns a CategoryRepository backed by MongoDB.
func NewMongoCategoryRepo(db *mongo.Database) CategoryRepository {
	return &mongoCategoryRepo{coll: db.Collection(categoryCollection)}
}

// SeedIfEmpty inserts the seed categories when the collection holds none.
func SeedIfEmpty(ctx context.Context, repo CategoryRepository, seed []models.DonationCategory) error {
	m, ok := repo.(*mongoCategoryRepo)
	if !ok {
		return nil
	}
	n, err := m.coll.CountDocuments(ctx, bson.M{})
	if err != nil || n > 0 {
		return err
	}
	docs := make([]interface{}, 0, len(seed))
	for _, c := range seed {
		docs = append(docs, c)
	}
	_, err = m.coll.InsertMany(ctx, docs)
	return err
}

func (r *mongoCategoryRepo) List(ctx context.Context) ([]models.DonationCategory, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []models.DonationCategory{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *mongoCategoryRepo) GetByID(ctx context.Context, id string) (*models.DonationCategory, error) {
	var c models.DonationCategory
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoCategoryRepo) Create(ctx context.Context, in models.DonationCategoryInput) (*models.DonationCategory, error) {
	c := in.ToCategory(uuid.New().String())
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoCategoryRepo) Update(ctx context.Context, id string, in models.DonationCategoryInput) (*models.DonationCategory, error) {
	c := in.ToCategory(id)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": id}, c)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrCategoryNotFound
	}
	return &c, nil
}

func (r *mongoCategoryRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
