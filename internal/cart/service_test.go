package cart

import (
	"context"
	"testing"

	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/models"
)

type stubCartRepo struct {
	cart    *models.Cart
	getErr  error
	saved   []models.CartItem
	savedOK bool
}

func (s *stubCartRepo) Get(ctx context.Context, ownerID string) (*models.Cart, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.cart == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart not found")
	}
	cp := *s.cart
	return &cp, nil
}

func (s *stubCartRepo) SetItemsMerge(ctx context.Context, ownerID string, items []models.CartItem) error {
	s.saved = items
	s.savedOK = true
	return nil
}

func (s *stubCartRepo) ReplaceItems(ctx context.Context, ownerID string, items []models.CartItem) error {
	s.saved = items
	s.savedOK = true
	return nil
}

func TestServiceGetMissingCartReturnsEmpty(t *testing.T) {
	t.Parallel()

	repo := &stubCartRepo{}
	svc := newTestService(t, repo)

	cart, err := svc.Get(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.OwnerID != "cust-1" {
		t.Fatalf("unexpected owner: %q", cart.OwnerID)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(cart.Items))
	}
}

func TestServiceUpsertRejectsZeroQuantity(t *testing.T) {
	t.Parallel()

	repo := &stubCartRepo{}
	svc := newTestService(t, repo)

	_, err := svc.Upsert(context.Background(), "cust-1", models.CartItem{ProductID: "p1", Quantity: 0})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.savedOK {
		t.Fatal("cart should not be written")
	}
}

func TestServiceUpsertReplacesQuantity(t *testing.T) {
	t.Parallel()

	repo := &stubCartRepo{cart: &models.Cart{
		OwnerID: "cust-1",
		Items:   []models.CartItem{{ProductID: "p1", Title: "Kettle", Quantity: 2, Price: 10, ShopID: "shop-1"}},
	}}
	svc := newTestService(t, repo)

	got, err := svc.Upsert(context.Background(), "cust-1", models.CartItem{
		ProductID: "p1", Title: "Kettle", Quantity: 5, Price: 10, ShopID: "shop-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(got.Items))
	}
	if got.Items[0].Quantity != 5 {
		t.Fatalf("quantity not replaced: %d", got.Items[0].Quantity)
	}
	if len(repo.saved) != 1 || repo.saved[0].Quantity != 5 {
		t.Fatalf("persisted items wrong: %+v", repo.saved)
	}
}

func TestServiceUpsertIsIdempotent(t *testing.T) {
	t.Parallel()

	item := models.CartItem{ProductID: "p1", Title: "Kettle", Quantity: 3, Price: 10, ShopID: "shop-1"}
	repo := &stubCartRepo{cart: &models.Cart{OwnerID: "cust-1", Items: []models.CartItem{item}}}
	svc := newTestService(t, repo)

	got, err := svc.Upsert(context.Background(), "cust-1", item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 3 {
		t.Fatalf("retried upsert changed state: %+v", got.Items)
	}
}

func TestServiceUpsertRejectsSecondShop(t *testing.T) {
	t.Parallel()

	repo := &stubCartRepo{cart: &models.Cart{
		OwnerID: "cust-1",
		Items:   []models.CartItem{{ProductID: "p1", Quantity: 1, ShopID: "shop-1"}},
	}}
	svc := newTestService(t, repo)

	_, err := svc.Upsert(context.Background(), "cust-1", models.CartItem{ProductID: "p2", Quantity: 1, ShopID: "shop-2"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestServiceRemoveMissingProductIsNoOp(t *testing.T) {
	t.Parallel()

	repo := &stubCartRepo{cart: &models.Cart{
		OwnerID: "cust-1",
		Items:   []models.CartItem{{ProductID: "p1", Quantity: 1, ShopID: "shop-1"}},
	}}
	svc := newTestService(t, repo)

	got, err := svc.Remove(context.Background(), "cust-1", "p9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != 1 {
		t.Fatalf("expected cart unchanged, got %+v", got.Items)
	}
}

func TestServiceRemoveMissingCart(t *testing.T) {
	t.Parallel()

	repo := &stubCartRepo{}
	svc := newTestService(t, repo)

	_, err := svc.Remove(context.Background(), "cust-1", "p1")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestServiceRemoveDropsProduct(t *testing.T) {
	t.Parallel()

	repo := &stubCartRepo{cart: &models.Cart{
		OwnerID: "cust-1",
		Items: []models.CartItem{
			{ProductID: "p1", Quantity: 1, ShopID: "shop-1"},
			{ProductID: "p2", Quantity: 2, ShopID: "shop-1"},
		},
	}}
	svc := newTestService(t, repo)

	got, err := svc.Remove(context.Background(), "cust-1", "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].ProductID != "p2" {
		t.Fatalf("unexpected items: %+v", got.Items)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("persisted items wrong: %+v", repo.saved)
	}
}

func newTestService(t *testing.T, repo cartRepository) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}
