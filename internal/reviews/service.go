package reviews

import (
	"context"
	"fmt"
	"time"

	"github.com/electromart/electromart-backend/pkg/enums"
	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/models"
)

type reviewRepository interface {
	Upsert(ctx context.Context, target enums.ReviewTarget, targetID string, review models.Review) error
	ListAll(ctx context.Context, target enums.ReviewTarget, targetID string) ([]models.Review, error)
	ListByCreated(ctx context.Context, target enums.ReviewTarget, targetID string) ([]models.Review, error)
	SetAggregates(ctx context.Context, target enums.ReviewTarget, targetID string, average float64, count int) error
}

// Service exposes review submission and listing.
type Service interface {
	Submit(ctx context.Context, target enums.ReviewTarget, targetID, reviewerID string, rating int, comment string) (*models.Review, error)
	List(ctx context.Context, target enums.ReviewTarget, targetID string) ([]models.Review, error)
}

type service struct {
	repo reviewRepository
	now  func() time.Time
}

// NewService builds the review service.
func NewService(repo reviewRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("review repository required")
	}
	return &service{repo: repo, now: time.Now}, nil
}

// Submit upserts the reviewer's review and recomputes the target's rating
// aggregates. Resubmission replaces the reviewer's previous rating and
// comment; the review count stays flat.
func (s *service) Submit(ctx context.Context, target enums.ReviewTarget, targetID, reviewerID string, rating int, comment string) (*models.Review, error) {
	if !target.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid review target")
	}
	if targetID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "target id is required")
	}
	if rating < 1 || rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}

	review := models.Review{
		ReviewerID: reviewerID,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Upsert(ctx, target, targetID, review); err != nil {
		return nil, err
	}

	if err := s.recompute(ctx, target, targetID); err != nil {
		return nil, err
	}
	return &review, nil
}

// recompute reads every review under the target and writes back the mean and
// count. Full scan on each submission, chosen for correctness over
// throughput. Concurrent submissions can race here; last writer wins.
func (s *service) recompute(ctx context.Context, target enums.ReviewTarget, targetID string) error {
	all, err := s.repo.ListAll(ctx, target, targetID)
	if err != nil {
		return err
	}

	average := 0.0
	if len(all) > 0 {
		sum := 0
		for _, review := range all {
			sum += review.Rating
		}
		average = float64(sum) / float64(len(all))
	}
	return s.repo.SetAggregates(ctx, target, targetID, average, len(all))
}

func (s *service) List(ctx context.Context, target enums.ReviewTarget, targetID string) ([]models.Review, error) {
	if !target.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid review target")
	}
	if targetID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "target id is required")
	}
	return s.repo.ListByCreated(ctx, target, targetID)
}
