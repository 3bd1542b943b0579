package shops

import (
	"context"
	"time"

	fs "cloud.google.com/go/firestore"

	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/firestore"
	"github.com/electromart/electromart-backend/pkg/models"
)

// Repository handles shop persistence. Documents are keyed by the owning
// vendor's uid.
type Repository struct {
	conn *fs.Client
}

// NewRepository binds a Firestore client to shop operations.
func NewRepository(conn *fs.Client) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) doc(vendorID string) *fs.DocumentRef {
	return r.conn.Collection(firestore.CollectionShops).Doc(vendorID)
}

// Get loads a shop by its vendor uid.
func (r *Repository) Get(ctx context.Context, vendorID string) (*models.Shop, error) {
	snap, err := r.doc(vendorID).Get(ctx)
	if err != nil {
		if firestore.IsNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "shop not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shop")
	}
	var shop models.Shop
	if err := snap.DataTo(&shop); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode shop")
	}
	return &shop, nil
}

// UpsertProfile merge-writes the vendor-editable fields. Rating fields are
// deliberately absent so a profile save never clobbers the review aggregates;
// approved drops back to false so edited shops go through approval again.
func (r *Repository) UpsertProfile(ctx context.Context, shop models.Shop) error {
	fields := map[string]any{
		"vendorId":       shop.VendorID,
		"name":           shop.Name,
		"category":       shop.Category,
		"description":    shop.Description,
		"whatsappNumber": shop.WhatsappNumber,
		"location":       shop.Location,
		"logoUrl":        shop.LogoURL,
		"coverPhotoUrl":  shop.CoverPhotoURL,
		"approved":       false,
		"updatedAt":      shop.UpdatedAt,
	}
	if _, err := r.doc(shop.VendorID).Set(ctx, fields, fs.MergeAll); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save shop")
	}
	return nil
}

// Approve flips the approval flag. Fails when the shop does not exist.
func (r *Repository) Approve(ctx context.Context, vendorID string, at time.Time) error {
	_, err := r.doc(vendorID).Update(ctx, []fs.Update{
		{Path: "approved", Value: true},
		{Path: "approvedAt", Value: at},
	})
	if err != nil {
		if firestore.IsNotFound(err) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "shop not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "approve shop")
	}
	return nil
}
