package contentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dharmachain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 5 * time.Second

// MongoContentRepo stores the About document as {_id: "main"} in the about-content collection.
type MongoContentRepo struct {
	coll *mongo.Collection
}

// NewMongoContentRepo creates a ContentRepository backed by MongoDB.
func NewMongoContentRepo(client *mongo.Client, database string) ContentRepository {
	coll := client.Database(database).Collection(models.AboutContentCollection)
	return &MongoContentRepo{coll: coll}
}

func (r *MongoContentRepo) Get(ctx context.Context) (*models.AboutDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var raw bson.Raw
	err := r.coll.FindOne(ctx, bson.M{"_id": models.AboutContentKey}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find about content: %w", err)
	}

	var doc models.AboutDocument
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode about content: %w", err)
	}
	_, lookupErr := raw.LookupErr("sections")
	doc.HasSections = lookupErr == nil
	return &doc, nil
}

func (r *MongoContentRepo) Merge(ctx context.Context, patch models.AboutContentPatch) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": models.AboutContentKey}
	update := bson.M{"$set": bson.M(patch.Fields())}
	if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to merge about content: %w", err)
	}
	return nil
}

func (r *MongoContentRepo) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, nil)
}
