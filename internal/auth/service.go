package auth

import (
	"context"
	"time"

	"github.com/davidcastanon/shopmart-backend/internal/users"
	pkgauth "github.com/davidcastanon/shopmart-backend/pkg/auth"
	"github.com/davidcastanon/shopmart-backend/pkg/auth/session"
	"github.com/davidcastanon/shopmart-backend/pkg/config"
	pkgerrors "github.com/davidcastanon/shopmart-backend/pkg/errors"
)

// Session is what a successful sign-in hands back to the controller.
type Session struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	User      *users.UserDTO `json:"user"`
}

// Service drives signup, sign-in and sign-out for both credential and OAuth
// identities.
type Service interface {
	// SignUp registers a credential account and opens a session.
	SignUp(ctx context.Context, email, password, name string) (*Session, error)
	// SignIn authenticates a credential account. Bad email or password
	// both surface as UNAUTHORIZED with the same message.
	SignIn(ctx context.Context, email, password string) (*Session, error)
	// AuthCodeURL returns the provider redirect for the OAuth flow.
	AuthCodeURL(state string) string
	// ExchangeOAuth completes the OAuth flow: the code becomes a provider
	// profile, the profile is upserted onto a stable local identity, and
	// a session opens for it.
	ExchangeOAuth(ctx context.Context, code string) (*Session, error)
	// SignOut revokes the session behind the token. Revoking an already
	// dead session is a no-op.
	SignOut(ctx context.Context, token string) error
}

// SessionRegistry is the slice of the session manager this service needs.
// *session.Manager satisfies it.
type SessionRegistry interface {
	Create(ctx context.Context, sessionID, userID string) error
	Revoke(ctx context.Context, sessionID string) error
}

type service struct {
	users    users.Service
	sessions SessionRegistry
	provider Provider
	jwt      config.JWTConfig
	now      func() time.Time
}

type ServiceParams struct {
	Users    users.Service
	Sessions SessionRegistry
	Provider Provider
	JWT      config.JWTConfig
}

func NewService(params ServiceParams) (Service, error) {
	if params.Users == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "user service is required")
	}
	if params.Sessions == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session manager is required")
	}
	if params.JWT.Secret == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "jwt secret is required")
	}
	return &service{
		users:    params.Users,
		sessions: params.Sessions,
		provider: params.Provider,
		jwt:      params.JWT,
		now:      time.Now,
	}, nil
}

func (s *service) SignUp(ctx context.Context, email, password, name string) (*Session, error) {
	user, err := s.users.CreateCredentialUser(ctx, email, password, name)
	if err != nil {
		return nil, err
	}
	return s.openSession(ctx, users.FromModel(user))
}

func (s *service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.VerifyCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
	}
	return s.openSession(ctx, users.FromModel(user))
}

func (s *service) AuthCodeURL(state string) string {
	if s.provider == nil {
		return ""
	}
	return s.provider.AuthCodeURL(state)
}

func (s *service) ExchangeOAuth(ctx context.Context, code string) (*Session, error) {
	if s.provider == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "oauth provider is not configured")
	}
	if code == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "authorization code is required")
	}

	profile, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "oauth exchange failed")
	}

	stableID := users.StableOAuthID(profile.Provider, profile.AccountID)
	user, err := s.users.UpsertOAuthUser(ctx, stableID, profile.Email, profile.Name, profile.Image, profile.Provider)
	if err != nil {
		return nil, err
	}
	return s.openSession(ctx, users.FromModel(user))
}

func (s *service) SignOut(ctx context.Context, token string) error {
	claims, err := pkgauth.ParseSessionToken(s.jwt, token)
	if err != nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid session token")
	}
	if err := s.sessions.Revoke(ctx, claims.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
	}
	return nil
}

// openSession mints the JWT and records its jti so the token can be revoked
// before expiry.
func (s *service) openSession(ctx context.Context, user *users.UserDTO) (*Session, error) {
	now := s.now().UTC()
	sessionID := session.NewSessionID()

	token, err := pkgauth.MintSessionToken(s.jwt, now, pkgauth.SessionPayload{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Image:  user.Image,
		JTI:    sessionID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint session token")
	}

	if err := s.sessions.Create(ctx, sessionID, user.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "register session")
	}

	return &Session{
		Token:     token,
		ExpiresAt: now.Add(s.jwt.SessionTTL()),
		User:      user,
	}, nil
}
