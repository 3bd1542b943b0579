package products

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/models"
)

type productRepository interface {
	Create(ctx context.Context, product models.Product) (string, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	ListByShop(ctx context.Context, shopID string) ([]models.Product, error)
}

type shopLoader interface {
	Get(ctx context.Context, vendorID string) (*models.Shop, error)
}

type vendorDirectory interface {
	GetByID(ctx context.Context, uid string) (*models.User, error)
}

type productMailer interface {
	SendProductCreated(ctx context.Context, to string, product models.Product)
}

// Service exposes product listing operations.
type Service interface {
	Create(ctx context.Context, vendorID string, input CreateInput) (*models.Product, error)
	Update(ctx context.Context, vendorID, productID string, input UpdateInput) (*models.Product, error)
	ListByShop(ctx context.Context, shopID string) ([]models.Product, error)
}

// CreateInput captures a new listing.
type CreateInput struct {
	Title        string
	Description  string
	Price        float64
	Stock        int
	Images       []string
	Category     string
	SubCategory  string
	Manufacturer string
	Features     string
}

// UpdateInput carries the mutable listing fields; nil means leave unchanged.
// ID, ShopID and VendorID are immutable after creation.
type UpdateInput struct {
	Title        *string
	Description  *string
	Price        *float64
	Stock        *int
	Images       *[]string
	Category     *string
	SubCategory  *string
	Manufacturer *string
	Features     *string
}

type service struct {
	repo  productRepository
	shops shopLoader
	users vendorDirectory
	mail  productMailer
	now   func() time.Time
}

// NewService builds the product service.
func NewService(repo productRepository, shops shopLoader, users vendorDirectory, mail productMailer) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if shops == nil {
		return nil, fmt.Errorf("shop loader required")
	}
	return &service{repo: repo, shops: shops, users: users, mail: mail, now: time.Now}, nil
}

// Create lists a product under the vendor's shop. The vendor must have a
// shop; the product's shopId is derived from it, never from the request.
func (s *service) Create(ctx context.Context, vendorID string, input CreateInput) (*models.Product, error) {
	shop, err := s.shops.Get(ctx, vendorID)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor has no shop")
		}
		return nil, err
	}

	now := s.now().UTC()
	product := models.Product{
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		Stock:        input.Stock,
		Images:       input.Images,
		Category:     input.Category,
		SubCategory:  input.SubCategory,
		Manufacturer: input.Manufacturer,
		Features:     input.Features,
		ShopID:       shop.VendorID,
		VendorID:     vendorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id

	if s.mail != nil && s.users != nil {
		if vendor, err := s.users.GetByID(ctx, vendorID); err == nil {
			s.mail.SendProductCreated(ctx, vendor.Email, product)
		}
	}
	return &product, nil
}

// Update mutates a listing after checking the caller owns it.
func (s *service) Update(ctx context.Context, vendorID, productID string, input UpdateInput) (*models.Product, error) {
	existing, err := s.repo.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if existing.VendorID != vendorID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "access denied")
	}

	fields := map[string]any{"updatedAt": s.now().UTC()}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Stock != nil {
		fields["stock"] = *input.Stock
	}
	if input.Images != nil {
		fields["images"] = *input.Images
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.SubCategory != nil {
		fields["subCategory"] = *input.SubCategory
	}
	if input.Manufacturer != nil {
		fields["manufacturer"] = *input.Manufacturer
	}
	if input.Features != nil {
		fields["features"] = *input.Features
	}

	if err := s.repo.UpdateFields(ctx, productID, fields); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, productID)
}

func (s *service) ListByShop(ctx context.Context, shopID string) ([]models.Product, error) {
	if shopID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shop id is required")
	}
	return s.repo.ListByShop(ctx, shopID)
}
