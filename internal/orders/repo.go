package orders

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/firestore"
	"github.com/electromart/electromart-backend/pkg/models"
)

// Repository handles order persistence. Orders are immutable once written.
type Repository struct {
	conn *fs.Client
}

// NewRepository binds a Firestore client to order operations.
func NewRepository(conn *fs.Client) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) collection() *fs.CollectionRef {
	return r.conn.Collection(firestore.CollectionOrders)
}

// Add persists a new order under a generated id and returns the id.
func (r *Repository) Add(ctx context.Context, order models.Order) (string, error) {
	doc := r.collection().NewDoc()
	if _, err := doc.Set(ctx, order); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}
	return doc.ID, nil
}

// Get loads a single order.
func (r *Repository) Get(ctx context.Context, id string) (*models.Order, error) {
	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if firestore.IsNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	var order models.Order
	if err := snap.DataTo(&order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode order")
	}
	order.ID = snap.Ref.ID
	return &order, nil
}

// ListByUser returns the customer's orders, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	iter := r.collection().
		Where("userId", "==", userID).
		OrderBy("createdAt", fs.Desc).
		Documents(ctx)
	defer iter.Stop()

	out := []models.Order{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
		}
		var order models.Order
		if err := snap.DataTo(&order); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode order")
		}
		order.ID = snap.Ref.ID
		out = append(out, order)
	}
	return out, nil
}
