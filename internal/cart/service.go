package cart

import (
	"context"
	"fmt"

	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/models"
)

type cartRepository interface {
	Get(ctx context.Context, ownerID string) (*models.Cart, error)
	SetItemsMerge(ctx context.Context, ownerID string, items []models.CartItem) error
	ReplaceItems(ctx context.Context, ownerID string, items []models.CartItem) error
}

// Service exposes cart operations for the owning customer.
type Service interface {
	Get(ctx context.Context, ownerID string) (*models.Cart, error)
	Upsert(ctx context.Context, ownerID string, item models.CartItem) (*models.Cart, error)
	Remove(ctx context.Context, ownerID, productID string) (*models.Cart, error)
}

type service struct {
	repo cartRepository
}

// NewService builds the cart service.
func NewService(repo cartRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	return &service{repo: repo}, nil
}

// Get returns the customer's cart. A customer who never added anything gets
// an empty cart, not an error.
func (s *service) Get(ctx context.Context, ownerID string) (*models.Cart, error) {
	cart, err := s.repo.Get(ctx, ownerID)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
			return &models.Cart{OwnerID: ownerID, Items: []models.CartItem{}}, nil
		}
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

// Upsert adds the item, or replaces the stored quantity when the product is
// already in the cart. Quantity is absolute, not additive, so retried
// requests land on the same state. Items from a second shop are rejected;
// checkout produces a single per-shop order.
func (s *service) Upsert(ctx context.Context, ownerID string, item models.CartItem) (*models.Cart, error) {
	if item.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	cart, err := s.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID {
			cart.Items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		if len(cart.Items) > 0 && cart.Items[0].ShopID != item.ShopID {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart items must belong to a single shop")
		}
		cart.Items = append(cart.Items, item)
	}

	if err := s.repo.SetItemsMerge(ctx, ownerID, cart.Items); err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove drops the product from the cart. Removing a product that is not in
// the cart leaves it unchanged; removing from a cart that was never created
// is a not-found.
func (s *service) Remove(ctx context.Context, ownerID, productID string) (*models.Cart, error) {
	cart, err := s.repo.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	kept := make([]models.CartItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	cart.Items = kept

	if err := s.repo.ReplaceItems(ctx, ownerID, cart.Items); err != nil {
		return nil, err
	}
	return cart, nil
}
