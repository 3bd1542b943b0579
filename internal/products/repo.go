package products

import (
	"context"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/firestore"
	"github.com/electromart/electromart-backend/pkg/models"
)

// Repository handles product persistence.
type Repository struct {
	conn *fs.Client
}

// NewRepository binds a Firestore client to product operations.
func NewRepository(conn *fs.Client) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) collection() *fs.CollectionRef {
	return r.conn.Collection(firestore.CollectionProducts)
}

// Create persists a new product under a generated id.
func (r *Repository) Create(ctx context.Context, product models.Product) (string, error) {
	doc := r.collection().NewDoc()
	if _, err := doc.Set(ctx, product); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}
	return doc.ID, nil
}

// Get loads a product by id.
func (r *Repository) Get(ctx context.Context, id string) (*models.Product, error) {
	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if firestore.IsNotFound(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	var product models.Product
	if err := snap.DataTo(&product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode product")
	}
	product.ID = snap.Ref.ID
	return &product, nil
}

// UpdateFields partially updates the listed fields on a product document.
func (r *Repository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	updates := make([]fs.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, fs.Update{Path: path, Value: value})
	}
	if _, err := r.collection().Doc(id).Update(ctx, updates); err != nil {
		if firestore.IsNotFound(err) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	return nil
}

// ListByShop returns every product listed under the given shop.
func (r *Repository) ListByShop(ctx context.Context, shopID string) ([]models.Product, error) {
	iter := r.collection().Where("shopId", "==", shopID).Documents(ctx)
	defer iter.Stop()

	out := []models.Product{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
		}
		var product models.Product
		if err := snap.DataTo(&product); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode product")
		}
		product.ID = snap.Ref.ID
		out = append(out, product)
	}
	return out, nil
}
