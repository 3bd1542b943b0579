package users

import (
	"context"
	"testing"

	"github.com/electromart/electromart-backend/pkg/enums"
	pkgerrors "github.com/electromart/electromart-backend/pkg/errors"
	"github.com/electromart/electromart-backend/pkg/models"
)

type stubUserRepo struct {
	users    map[string]models.User
	upserted *models.User
	roleSet  map[string]enums.Role
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]models.User{}, roleSet: map[string]enums.Role{}}
}

func (s *stubUserRepo) Get(ctx context.Context, uid string) (*models.User, error) {
	user, ok := s.users[uid]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return &user, nil
}

func (s *stubUserRepo) UpsertMerge(ctx context.Context, user models.User) error {
	cp := user
	s.upserted = &cp
	s.users[user.UID] = user
	return nil
}

func (s *stubUserRepo) UpdateRole(ctx context.Context, uid string, role enums.Role) error {
	if _, ok := s.users[uid]; !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	s.roleSet[uid] = role
	return nil
}

func (s *stubUserRepo) List(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		out = append(out, user)
	}
	return out, nil
}

func (s *stubUserRepo) EmailsByRole(ctx context.Context, role enums.Role) ([]string, error) {
	out := []string{}
	for _, user := range s.users {
		if user.Role == role && user.Email != "" {
			out = append(out, user.Email)
		}
	}
	return out, nil
}

type stubWelcomeMailer struct {
	to   string
	role string
}

func (s *stubWelcomeMailer) SendWelcome(ctx context.Context, to, name, role string) {
	s.to = to
	s.role = role
}

func TestRegisterPersistsProfileAndMails(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepo()
	mail := &stubWelcomeMailer{}
	svc := newTestService(t, repo, mail)

	user, err := svc.Register(context.Background(), "uid-1", RegisterInput{
		Name: "Ada", Email: "ada@example.com", Role: "customer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.UID != "uid-1" || user.Role != enums.RoleCustomer {
		t.Fatalf("unexpected user: %+v", user)
	}
	if repo.upserted == nil || repo.upserted.Email != "ada@example.com" {
		t.Fatalf("profile not persisted: %+v", repo.upserted)
	}
	if mail.to != "ada@example.com" || mail.role != "customer" {
		t.Fatalf("welcome mail not dispatched: %+v", mail)
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepo()
	svc := newTestService(t, repo, nil)

	for _, role := range []string{"admin", "superuser", ""} {
		_, err := svc.Register(context.Background(), "uid-1", RegisterInput{Role: role})
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("role %q: unexpected error: %v", role, err)
		}
	}
	if repo.upserted != nil {
		t.Fatal("invalid role must not be persisted")
	}
}

func TestSetRole(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepo()
	repo.users["uid-1"] = models.User{UID: "uid-1", Role: enums.RoleCustomer}
	svc := newTestService(t, repo, nil)

	role, err := svc.SetRole(context.Background(), "uid-1", "vendor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != enums.RoleVendor || repo.roleSet["uid-1"] != enums.RoleVendor {
		t.Fatalf("role not applied: %v %v", role, repo.roleSet)
	}

	if _, err := svc.SetRole(context.Background(), "uid-1", "root"); pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.SetRole(context.Background(), "missing", "vendor"); err == nil {
		t.Fatal("expected not found for unknown uid")
	}
}

func TestResolveReturnsStoredRole(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepo()
	repo.users["uid-1"] = models.User{UID: "uid-1", Role: enums.RoleVendor}
	svc := newTestService(t, repo, nil)

	role, err := svc.Resolve(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != enums.RoleVendor {
		t.Fatalf("unexpected role: %v", role)
	}

	if _, err := svc.Resolve(context.Background(), "ghost"); err == nil {
		t.Fatal("expected error for unknown uid")
	}
}

func TestAdminEmails(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepo()
	repo.users["a"] = models.User{UID: "a", Email: "admin@example.com", Role: enums.RoleAdmin}
	repo.users["b"] = models.User{UID: "b", Email: "vendor@example.com", Role: enums.RoleVendor}
	svc := newTestService(t, repo, nil)

	emails, err := svc.AdminEmails(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(emails) != 1 || emails[0] != "admin@example.com" {
		t.Fatalf("unexpected emails: %v", emails)
	}
}

func newTestService(t *testing.T, repo userRepository, mail welcomeMailer) Service {
	t.Helper()
	svc, err := NewService(repo, mail)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}
