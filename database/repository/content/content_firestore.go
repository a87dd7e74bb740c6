package contentRepo

import (
	"context"
	"fmt"

	"dharmachain/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreContentRepo stores the About document at about-content/main.
type FirestoreContentRepo struct {
	client *firestore.Client
	ref    *firestore.DocumentRef
}

// NewFirestoreContentRepo creates a ContentRepository backed by Firestore.
func NewFirestoreContentRepo(client *firestore.Client) ContentRepository {
	return &FirestoreContentRepo{
		client: client,
		ref:    client.Collection(models.AboutContentCollection).Doc(models.AboutContentKey),
	}
}

func (r *FirestoreContentRepo) Get(ctx context.Context) (*models.AboutDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	snap, err := r.ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("firestore get %s/%s: %w", models.AboutContentCollection, models.AboutContentKey, err)
	}
	if !snap.Exists() {
		return nil, ErrDocumentNotFound
	}

	var doc models.AboutDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("firestore decode %s/%s: %w", models.AboutContentCollection, models.AboutContentKey, err)
	}
	_, doc.HasSections = snap.Data()["sections"]
	return &doc, nil
}

func (r *FirestoreContentRepo) Merge(ctx context.Context, patch models.AboutContentPatch) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.ref.Set(ctx, patch.Fields(), firestore.MergeAll); err != nil {
		return fmt.Errorf("firestore merge %s/%s: %w", models.AboutContentCollection, models.AboutContentKey, err)
	}
	return nil
}

func (r *FirestoreContentRepo) Ping(ctx context.Context) error {
	_, err := r.ref.Get(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return err
	}
	return nil
}
