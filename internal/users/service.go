package users

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/davidcastanon/shopmart-backend/pkg/db"
	"github.com/davidcastanon/shopmart-backend/pkg/db/models"
	pkgerrors "github.com/davidcastanon/shopmart-backend/pkg/errors"
	"github.com/google/uuid"
)

const avatarURLFormat = "https://api.dicebear.com/7.x/avataaars/svg?seed=%s"

// Service exposes identity operations to the auth layer and seeder.
type Service interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	CreateCredentialUser(ctx context.Context, email, password, name string) (*models.User, error)
	UpsertOAuthUser(ctx context.Context, stableID, email, name, image, provider string) (*models.User, error)
	VerifyCredentials(ctx context.Context, email, password string) (*models.User, error)
}

type service struct {
	repo *Repository
}

// NewService builds a user service over the provided repository.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "user repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repo.FindByEmail(ctx, normalizeEmail(email))
}

func (s *service) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateCredentialUser registers a local account. The unique constraint on
// email is the only duplicate check; a violation surfaces as CONFLICT.
func (s *service) CreateCredentialUser(ctx context.Context, email, password, name string) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password is required")
	}

	pw := password
	user, err := s.repo.Create(ctx, CreateUserDTO{
		ID:       uuid.NewString(),
		Email:    email,
		Password: &pw,
		Name:     name,
		Image:    AvatarURL(email),
		Provider: "credentials",
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
	}
	return user, nil
}

// UpsertOAuthUser maps an external identity onto a stable internal row.
// Repeated sign-ins with the same stableID refresh the profile fields but
// never change the primary key, so the identity stays stable across sessions.
func (s *service) UpsertOAuthUser(ctx context.Context, stableID, email, name, image, provider string) (*models.User, error) {
	if strings.TrimSpace(stableID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stable id is required")
	}
	if strings.TrimSpace(provider) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "provider is required")
	}

	user, err := s.repo.Upsert(ctx, CreateUserDTO{
		ID:       stableID,
		Email:    normalizeEmail(email),
		Password: nil, // OAuth users never store a password
		Name:     name,
		Image:    image,
		Provider: provider,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "upsert oauth user")
	}
	return user, nil
}

// VerifyCredentials returns the user only on an exact password match.
// Any mismatch, including an unknown email, yields (nil, nil) so callers
// cannot tell which part failed.
//
// Passwords are compared in plaintext. This mirrors the historical store and
// is a known weakness: hash-and-salt is a required hardening item before any
// real deployment.
func (s *service) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}
	if user == nil || user.Password == nil || *user.Password != password {
		return nil, nil
	}
	return user, nil
}

// AvatarURL derives the deterministic avatar for a credential signup.
func AvatarURL(email string) string {
	return fmt.Sprintf(avatarURLFormat, url.QueryEscape(email))
}

// StableOAuthID composes the internal id for an external identity.
func StableOAuthID(provider, providerAccountID string) string {
	return fmt.Sprintf("%s-%s", provider, providerAccountID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
