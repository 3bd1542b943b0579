package cart

import (
	"context"

	fs "cloud.google.com/go/firestore"

	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/firestore"
	"github.com/electromart/electromart-backend/pkg/models"
)

// Repository handles cart persistence. One document per customer, keyed by
// the customer uid.
type Repository struct {
	conn *fs.Client
}

// NewRepository binds a Firestore client to cart operations.
func NewRepository(conn *fs.Client) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) doc(ownerID string) *fs.DocumentRef {
	return r.conn.Collection(firestore.CollectionCarts).Doc(ownerID)
}

// Get loads the customer's cart document.
func (r *Repository) Get(ctx context.Context, ownerID string) (*models.Cart, error) {
	snap, err := r.doc(ownerID).Get(ctx)
	if err != nil {
		if firestore.IsNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "cart not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	var cart models.Cart
	if err := snap.DataTo(&cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode cart")
	}
	cart.OwnerID = snap.Ref.ID
	return &cart, nil
}

// SetItemsMerge merge-writes the item list, leaving any other cart fields
// untouched.
func (r *Repository) SetItemsMerge(ctx context.Context, ownerID string, items []models.CartItem) error {
	if _, err := r.doc(ownerID).Set(ctx, map[string]any{"items": items}, fs.MergeAll); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return nil
}

// ReplaceItems overwrites the whole cart document with the given item list.
func (r *Repository) ReplaceItems(ctx context.Context, ownerID string, items []models.CartItem) error {
	if _, err := r.doc(ownerID).Set(ctx, map[string]any{"items": items}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "replace cart")
	}
	return nil
}
