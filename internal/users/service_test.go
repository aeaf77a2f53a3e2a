package users

import (
	"context"
	"strings"
	"testing"

	pkgerrors "github.com/davidcastanon/shopmart-backend/pkg/errors"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(NewRepository(openTestDB(t)))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestCreateCredentialUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.CreateCredentialUser(ctx, "Test@Example.com", "password123", "Test User")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected a generated id")
	}
	if user.Email != "test@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.Provider != "credentials" {
		t.Fatalf("expected credentials provider, got %q", user.Provider)
	}
	if !strings.Contains(user.Image, "api.dicebear.com") || !strings.Contains(user.Image, "test%40example.com") {
		t.Fatalf("expected deterministic avatar url, got %q", user.Image)
	}
}

func TestCreateCredentialUserDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateCredentialUser(ctx, "dup@example.com", "pw", "First"); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.CreateCredentialUser(ctx, "dup@example.com", "pw2", "Second")
	if err == nil {
		t.Fatal("expected conflict for duplicate email")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected CONFLICT code, got %v", err)
	}
}

func TestVerifyCredentials(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCredentialUser(ctx, "login@example.com", "secret", "Login User")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("exact match", func(t *testing.T) {
		user, err := svc.VerifyCredentials(ctx, "login@example.com", "secret")
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if user == nil || user.ID != created.ID {
			t.Fatalf("expected matching user, got %+v", user)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		user, err := svc.VerifyCredentials(ctx, "login@example.com", "wrong")
		if err != nil {
			t.Fatalf("verify should not error on mismatch: %v", err)
		}
		if user != nil {
			t.Fatal("expected nil user on wrong password")
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		user, err := svc.VerifyCredentials(ctx, "nobody@example.com", "secret")
		if err != nil {
			t.Fatalf("verify should not error on unknown email: %v", err)
		}
		if user != nil {
			t.Fatal("expected nil user on unknown email")
		}
	})
}

func TestUpsertOAuthUserIsStableAcrossSignIns(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	stableID := StableOAuthID("github", "12345")

	first, err := svc.UpsertOAuthUser(ctx, stableID, "octo@example.com", "Octo", "https://a/1.png", "github")
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.Password != nil {
		t.Fatal("oauth users must never store a password")
	}

	second, err := svc.UpsertOAuthUser(ctx, stableID, "octo@example.com", "Octo Cat", "https://a/2.png", "github")
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected stable internal id, got %q then %q", first.ID, second.ID)
	}
	if second.Name != "Octo Cat" || second.Image != "https://a/2.png" {
		t.Fatalf("expected refreshed profile fields, got %+v", second)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("created_at must survive the upsert: %v vs %v", first.CreatedAt, second.CreatedAt)
	}
}

func TestFindByEmailMissingIsNotAnError(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.FindByEmail(context.Background(), "ghost@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Fatal("expected nil for missing user")
	}
}
