package checkout

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/logger"
	"github.com/electromart/electromart-backend/pkg/models"
	"github.com/electromart/electromart-backend/pkg/whatsapp"
)

type cartStore interface {
	Get(ctx context.Context, ownerID string) (*models.Cart, error)
	ReplaceItems(ctx context.Context, ownerID string, items []models.CartItem) error
}

type orderStore interface {
	Add(ctx context.Context, order models.Order) (string, error)
	Get(ctx context.Context, id string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
}

type shopLoader interface {
	Get(ctx context.Context, vendorID string) (*models.Shop, error)
}

// Result is what the customer gets back from checkout: the persisted order
// id and a pre-filled WhatsApp link to the vendor.
type Result struct {
	OrderID     string  `json:"orderId"`
	WhatsAppURL string  `json:"whatsappUrl"`
	Total       float64 `json:"total"`
}

// Service converts carts into orders.
type Service interface {
	Checkout(ctx context.Context, userID string) (*Result, error)
	GetOrder(ctx context.Context, userID, orderID string) (*models.Order, error)
	ListOrders(ctx context.Context, userID string) ([]models.Order, error)
}

type service struct {
	carts  cartStore
	orders orderStore
	shops  shopLoader
	logg   *logger.Logger
	now    func() time.Time
}

// NewService builds the checkout service.
func NewService(carts cartStore, orders orderStore, shops shopLoader, logg *logger.Logger) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if orders == nil {
		return nil, fmt.Errorf("order store required")
	}
	if shops == nil {
		return nil, fmt.Errorf("shop loader required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{carts: carts, orders: orders, shops: shops, logg: logg, now: time.Now}, nil
}

// Checkout snapshots the cart into an order, builds the vendor contact link
// and clears the cart. The shop is taken from the first item; the cart layer
// guarantees a single-shop cart. The sequence is not transactional: a crash
// between the order write and the cart clear leaves a stale cart behind.
func (s *service) Checkout(ctx context.Context, userID string) (*Result, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	shopID := cart.Items[0].ShopID
	total := 0.0
	for _, item := range cart.Items {
		total += item.Price * float64(item.Quantity)
	}

	order := models.Order{
		UserID:    userID,
		Items:     cart.Items,
		ShopID:    shopID,
		Total:     total,
		CreatedAt: s.now().UTC(),
	}
	orderID, err := s.orders.Add(ctx, order)
	if err != nil {
		return nil, err
	}

	shop, err := s.shops.Get(ctx, shopID)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "shop not found")
		}
		return nil, err
	}

	link := whatsapp.OrderLink(shop.WhatsappNumber, cart.Items, total)

	if err := s.carts.ReplaceItems(ctx, userID, []models.CartItem{}); err != nil {
		logCtx := s.logg.WithField(s.logg.WithUserID(ctx, userID), "order_id", orderID)
		s.logg.Error(logCtx, "checkout.cart_clear_failed", err)
	}

	return &Result{OrderID: orderID, WhatsAppURL: link, Total: total}, nil
}

// GetOrder loads one of the caller's orders. Another customer's order reads
// as missing rather than forbidden, so order ids cannot be probed.
func (s *service) GetOrder(ctx context.Context, userID, orderID string) (*models.Order, error) {
	if orderID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}

func (s *service) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}
