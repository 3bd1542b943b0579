package reviews

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/electromart/electromart-backend/pkg/enums"
	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/firestore"
	"github.com/electromart/electromart-backend/pkg/models"
)

// Repository handles review persistence. Reviews live in a "reviews"
// subcollection under the target document; the doc id is the reviewer uid.
type Repository struct {
	conn *fs.Client
}

// NewRepository binds a Firestore client to review operations.
func NewRepository(conn *fs.Client) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) target(target enums.ReviewTarget, targetID string) *fs.DocumentRef {
	return r.conn.Collection(target.String()).Doc(targetID)
}

func (r *Repository) reviews(target enums.ReviewTarget, targetID string) *fs.CollectionRef {
	return r.target(target, targetID).Collection(firestore.CollectionReviews)
}

// Upsert overwrites the reviewer's review under the target.
func (r *Repository) Upsert(ctx context.Context, target enums.ReviewTarget, targetID string, review models.Review) error {
	if _, err := r.reviews(target, targetID).Doc(review.ReviewerID).Set(ctx, review); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save review")
	}
	return nil
}

// ListAll returns every review under the target with no ordering guarantee.
// Used by the aggregate recompute.
func (r *Repository) ListAll(ctx context.Context, target enums.ReviewTarget, targetID string) ([]models.Review, error) {
	return r.collect(r.reviews(target, targetID).Documents(ctx))
}

// ListByCreated returns the target's reviews, newest first.
func (r *Repository) ListByCreated(ctx context.Context, target enums.ReviewTarget, targetID string) ([]models.Review, error) {
	return r.collect(r.reviews(target, targetID).OrderBy("createdAt", fs.Desc).Documents(ctx))
}

func (r *Repository) collect(iter *fs.DocumentIterator) ([]models.Review, error) {
	defer iter.Stop()

	out := []models.Review{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list reviews")
		}
		var review models.Review
		if err := snap.DataTo(&review); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode review")
		}
		out = append(out, review)
	}
	return out, nil
}

// SetAggregates writes the recomputed rating fields onto the target document.
// Update rather than a merged Set, so reviewing a nonexistent target fails
// instead of minting a phantom document.
func (r *Repository) SetAggregates(ctx context.Context, target enums.ReviewTarget, targetID string, average float64, count int) error {
	_, err := r.target(target, targetID).Update(ctx, []fs.Update{
		{Path: "averageRating", Value: average},
		{Path: "reviewCount", Value: count},
	})
	if err != nil {
		if firestore.IsNotFound(err) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "review target not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write review aggregates")
	}
	return nil
}
