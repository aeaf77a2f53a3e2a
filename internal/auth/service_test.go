package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/davidcastanon/shopmart-backend/internal/users"
	pkgauth "github.com/davidcastanon/shopmart-backend/pkg/auth"
	"github.com/davidcastanon/shopmart-backend/pkg/config"
	"github.com/davidcastanon/shopmart-backend/pkg/db/models"
	pkgerrors "github.com/davidcastanon/shopmart-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeRegistry struct {
	created map[string]string
	revoked []string
	fail    error
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{created: map[string]string{}}
}

func (f *fakeRegistry) Create(_ context.Context, sessionID, userID string) error {
	if f.fail != nil {
		return f.fail
	}
	f.created[sessionID] = userID
	return nil
}

func (f *fakeRegistry) Revoke(_ context.Context, sessionID string) error {
	if f.fail != nil {
		return f.fail
	}
	f.revoked = append(f.revoked, sessionID)
	delete(f.created, sessionID)
	return nil
}

type fakeProvider struct {
	profile *Profile
	err     error
}

func (f *fakeProvider) Name() string                 { return ProviderGitHub }
func (f *fakeProvider) AuthCodeURL(state string) string { return "https://example.test/authorize?state=" + state }

func (f *fakeProvider) Exchange(context.Context, string) (*Profile, error) {
	return f.profile, f.err
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "test-secret", Issuer: "shopmart", ExpirationMinutes: 60}
}

func newTestService(t *testing.T, provider Provider) (Service, users.Service, *fakeRegistry) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.User{}, &models.Product{}, &models.WishlistEntry{}); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	userSvc, err := users.NewService(users.NewRepository(conn))
	if err != nil {
		t.Fatalf("failed to build user service: %v", err)
	}

	registry := newFakeRegistry()
	svc, err := NewService(ServiceParams{
		Users:    userSvc,
		Sessions: registry,
		Provider: provider,
		JWT:      testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("failed to build auth service: %v", err)
	}
	return svc, userSvc, registry
}

func TestSignUpOpensSession(t *testing.T) {
	svc, _, registry := newTestService(t, nil)

	sess, err := svc.SignUp(context.Background(), "new@example.com", "secret", "New User")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if sess.Token == "" {
		t.Fatal("expected a session token")
	}
	if sess.User == nil || sess.User.Email != "new@example.com" {
		t.Fatalf("unexpected user in session: %+v", sess.User)
	}

	claims, err := pkgauth.ParseSessionToken(testJWTConfig(), sess.Token)
	if err != nil {
		t.Fatalf("minted token must parse: %v", err)
	}
	if registry.created[claims.ID] != sess.User.ID {
		t.Fatalf("session %s not registered for user %s", claims.ID, sess.User.ID)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	if _, err := svc.SignUp(context.Background(), "dup@example.com", "secret", "A"); err != nil {
		t.Fatalf("first SignUp: %v", err)
	}
	_, err := svc.SignUp(context.Background(), "dup@example.com", "other", "B")
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestSignIn(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	if _, err := svc.SignUp(context.Background(), "user@example.com", "secret", "User"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		sess, err := svc.SignIn(context.Background(), "user@example.com", "secret")
		if err != nil {
			t.Fatalf("SignIn: %v", err)
		}
		if sess.Token == "" {
			t.Fatal("expected a session token")
		}
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		_, errWrongPw := svc.SignIn(context.Background(), "user@example.com", "nope")
		_, errNoUser := svc.SignIn(context.Background(), "ghost@example.com", "secret")

		for _, err := range []error{errWrongPw, errNoUser} {
			appErr := pkgerrors.As(err)
			if appErr == nil || appErr.Code() != pkgerrors.CodeUnauthorized {
				t.Fatalf("expected UNAUTHORIZED, got %v", err)
			}
			if appErr.Message() != "invalid email or password" {
				t.Fatalf("mismatch reasons must not be distinguishable, got %q", appErr.Message())
			}
		}
	})
}

func TestExchangeOAuth(t *testing.T) {
	provider := &fakeProvider{profile: &Profile{
		AccountID: "12345",
		Email:     "octo@example.com",
		Name:      "Octo",
		Image:     "https://avatars.example/octo.png",
		Provider:  ProviderGitHub,
	}}
	svc, userSvc, _ := newTestService(t, provider)

	sess, err := svc.ExchangeOAuth(context.Background(), "code-abc")
	if err != nil {
		t.Fatalf("ExchangeOAuth: %v", err)
	}
	if sess.User.ID != "github-12345" {
		t.Fatalf("expected stable provider id, got %s", sess.User.ID)
	}

	// Repeat sign-in refreshes the profile but keeps the identity.
	provider.profile.Name = "Octo Updated"
	again, err := svc.ExchangeOAuth(context.Background(), "code-def")
	if err != nil {
		t.Fatalf("repeat ExchangeOAuth: %v", err)
	}
	if again.User.ID != sess.User.ID {
		t.Fatalf("identity changed across sign-ins: %s vs %s", again.User.ID, sess.User.ID)
	}
	if again.User.Name != "Octo Updated" {
		t.Fatalf("profile not refreshed: %+v", again.User)
	}

	stored, err := userSvc.FindByID(context.Background(), "github-12345")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored == nil || stored.Password != nil {
		t.Fatalf("oauth user must exist without password, got %+v", stored)
	}
}

func TestExchangeOAuthWithoutProvider(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	_, err := svc.ExchangeOAuth(context.Background(), "code")
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected DEPENDENCY error, got %v", err)
	}
}

func TestSignOut(t *testing.T) {
	svc, _, registry := newTestService(t, nil)

	sess, err := svc.SignUp(context.Background(), "out@example.com", "secret", "Out")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if err := svc.SignOut(context.Background(), sess.Token); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if len(registry.revoked) != 1 {
		t.Fatalf("expected one revoked session, got %d", len(registry.revoked))
	}

	if err := svc.SignOut(context.Background(), "not-a-token"); err == nil {
		t.Fatal("expected error for a malformed token")
	}
}
