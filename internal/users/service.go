package users

import (
	"context"
	"fmt"

	"github.com/electromart/electromart-backend/pkg/enums"
	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/models"
)

type userRepository interface {
	Get(ctx context.Context, uid string) (*models.User, error)
	UpsertMerge(ctx context.Context, user models.User) error
	UpdateRole(ctx context.Context, uid string, role enums.Role) error
	List(ctx context.Context) ([]models.User, error)
	EmailsByRole(ctx context.Context, role enums.Role) ([]string, error)
}

type welcomeMailer interface {
	SendWelcome(ctx context.Context, to, name, role string)
}

// Service exposes user account operations.
type Service interface {
	Register(ctx context.Context, uid string, input RegisterInput) (*models.User, error)
	SetRole(ctx context.Context, uid string, role string) (enums.Role, error)
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, uid string) (*models.User, error)
	AdminEmails(ctx context.Context) ([]string, error)
	Resolve(ctx context.Context, uid string) (enums.Role, error)
}

// RegisterInput captures the profile supplied after identity-provider signup.
type RegisterInput struct {
	Name  string
	Email string
	Role  string
}

type service struct {
	repo userRepository
	mail welcomeMailer
}

// NewService builds the user service.
func NewService(repo userRepository, mail welcomeMailer) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	return &service{repo: repo, mail: mail}, nil
}

// Register merge-upserts the profile keyed by the authenticated uid. The role
// must be one a user may pick for themselves; admin is never self-assigned.
func (s *service) Register(ctx context.Context, uid string, input RegisterInput) (*models.User, error) {
	role, err := enums.ParseRole(input.Role)
	if err != nil || !role.IsRegistrable() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}

	user := models.User{
		UID:   uid,
		Email: input.Email,
		Name:  input.Name,
		Role:  role,
	}
	if err := s.repo.UpsertMerge(ctx, user); err != nil {
		return nil, err
	}

	if s.mail != nil {
		s.mail.SendWelcome(ctx, user.Email, user.Name, role.String())
	}
	return &user, nil
}

// SetRole assigns any known role to an existing user. Admin-gated at the
// route level; the lookup-per-request authorize stage picks the change up on
// the target's next request.
func (s *service) SetRole(ctx context.Context, uid string, role string) (enums.Role, error) {
	parsed, err := enums.ParseRole(role)
	if err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}
	if uid == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "uid is required")
	}
	if err := s.repo.UpdateRole(ctx, uid, parsed); err != nil {
		return "", err
	}
	return parsed, nil
}

func (s *service) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, uid string) (*models.User, error) {
	return s.repo.Get(ctx, uid)
}

// AdminEmails lists the addresses approval requests go to.
func (s *service) AdminEmails(ctx context.Context) ([]string, error) {
	return s.repo.EmailsByRole(ctx, enums.RoleAdmin)
}

// Resolve implements the middleware role lookup: one user read per request.
func (s *service) Resolve(ctx context.Context, uid string) (enums.Role, error) {
	user, err := s.repo.Get(ctx, uid)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}
