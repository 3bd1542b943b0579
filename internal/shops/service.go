package shops

import (
	"context"
	"fmt"
	"time"

	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/models"
)

type shopRepository interface {
	Get(ctx context.Context, vendorID string) (*models.Shop, error)
	UpsertProfile(ctx context.Context, shop models.Shop) error
	Approve(ctx context.Context, vendorID string, at time.Time) error
}

type accountDirectory interface {
	GetByID(ctx context.Context, uid string) (*models.User, error)
	AdminEmails(ctx context.Context) ([]string, error)
}

type shopMailer interface {
	SendShopSaved(ctx context.Context, to string, shop models.Shop)
	SendApprovalRequest(ctx context.Context, adminEmails []string, shop models.Shop)
	SendShopApproved(ctx context.Context, to string, shop models.Shop)
}

// Service exposes shop operations.
type Service interface {
	Upsert(ctx context.Context, vendorID string, input UpsertInput) (*models.Shop, error)
	Get(ctx context.Context, vendorID string) (*models.Shop, error)
	Approve(ctx context.Context, vendorID string) (*models.Shop, error)
}

// UpsertInput captures the vendor-editable shop fields.
type UpsertInput struct {
	Name           string
	Category       string
	Description    string
	WhatsappNumber string
	Location       string
	LogoURL        string
	CoverPhotoURL  string
}

type service struct {
	repo  shopRepository
	users accountDirectory
	mail  shopMailer
	now   func() time.Time
}

// NewService builds the shop service.
func NewService(repo shopRepository, users accountDirectory, mail shopMailer) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shop repository required")
	}
	if users == nil {
		return nil, fmt.Errorf("account directory required")
	}
	return &service{repo: repo, users: users, mail: mail, now: time.Now}, nil
}

// Upsert saves the vendor's storefront, keyed by the vendor uid so each
// vendor owns at most one shop. Every save drops the shop back to pending
// approval and notifies the admins.
func (s *service) Upsert(ctx context.Context, vendorID string, input UpsertInput) (*models.Shop, error) {
	shop := models.Shop{
		VendorID:       vendorID,
		Name:           input.Name,
		Category:       input.Category,
		Description:    input.Description,
		WhatsappNumber: input.WhatsappNumber,
		Location:       input.Location,
		LogoURL:        input.LogoURL,
		CoverPhotoURL:  input.CoverPhotoURL,
		Approved:       false,
		UpdatedAt:      s.now().UTC(),
	}
	if err := s.repo.UpsertProfile(ctx, shop); err != nil {
		return nil, err
	}

	if s.mail != nil {
		if vendor, err := s.users.GetByID(ctx, vendorID); err == nil {
			s.mail.SendShopSaved(ctx, vendor.Email, shop)
		}
		if admins, err := s.users.AdminEmails(ctx); err == nil {
			s.mail.SendApprovalRequest(ctx, admins, shop)
		}
	}
	return &shop, nil
}

func (s *service) Get(ctx context.Context, vendorID string) (*models.Shop, error) {
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}
	return s.repo.Get(ctx, vendorID)
}

// Approve marks the shop live and tells the vendor.
func (s *service) Approve(ctx context.Context, vendorID string) (*models.Shop, error) {
	if err := s.repo.Approve(ctx, vendorID, s.now().UTC()); err != nil {
		return nil, err
	}

	shop, err := s.repo.Get(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if s.mail != nil {
		if vendor, err := s.users.GetByID(ctx, vendorID); err == nil {
			s.mail.SendShopApproved(ctx, vendor.Email, *shop)
		}
	}
	return shop, nil
}
