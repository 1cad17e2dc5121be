package auth

import (
	"errors"
	"testing"
	"time"

	"peritaje_crm/internal/domain/entities"
)

var testSecret = []byte("test-secret")

func TestIssueAndVerifyToken(t *testing.T) {
	id := Identity{Subject: "user-1", Role: entities.RolePerito, Name: "Ana"}

	token, err := IssueToken(testSecret, id, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	got, err := VerifyToken(testSecret, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != id {
		t.Fatalf("expected %+v, got %+v", id, got)
	}
}

func TestVerifyTokenFailures(t *testing.T) {
	id := Identity{Subject: "user-1", Role: entities.RoleComercial, Name: "Luis"}

	t.Run("wrong secret", func(t *testing.T) {
		token, err := IssueToken(testSecret, id, time.Hour)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := VerifyToken([]byte("other-secret"), token); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		token, err := IssueToken(testSecret, id, -time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := VerifyToken(testSecret, token); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		for _, raw := range []string{"", "garbage", "a.b.c"} {
			if _, err := VerifyToken(testSecret, raw); !errors.Is(err, ErrUnauthenticated) {
				t.Fatalf("token %q: expected ErrUnauthenticated, got %v", raw, err)
			}
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		token, err := IssueToken(testSecret, Identity{Role: entities.RolePerito}, time.Hour)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := VerifyToken(testSecret, token); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("missing role", func(t *testing.T) {
		token, err := IssueToken(testSecret, Identity{Subject: "user-1"}, time.Hour)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := VerifyToken(testSecret, token); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})
}
