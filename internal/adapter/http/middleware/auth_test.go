package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"peritaje_crm/internal/auth"
	"peritaje_crm/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var testSecret = []byte("test-secret")

func securedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	secured := r.Group("/v1", RequireAuth(testSecret), RequirePermission())
	secured.GET("/quotes/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"caller": CallerID(c)})
	})
	secured.GET("/settings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"caller": CallerID(c)})
	})
	return r
}

func issue(t *testing.T, id auth.Identity) string {
	t.Helper()
	token, err := auth.IssueToken(testSecret, id, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func TestRequireAuth(t *testing.T) {
	r := securedRouter()

	t.Run("no credential", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("garbage bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid bearer token", func(t *testing.T) {
		token := issue(t, auth.Identity{Subject: "user-1", Role: entities.RoleComercial, Name: "Luis"})

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("crm cookie", func(t *testing.T) {
		token := issue(t, auth.Identity{Subject: "user-1", Role: entities.RoleComercial, Name: "Luis"})

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		req.AddCookie(&http.Cookie{Name: "crm-token", Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("x-user-id honored for admin only", func(t *testing.T) {
		adminToken := issue(t, auth.Identity{Subject: auth.AdminSubject, Role: entities.RoleAdmin, Name: "Administrador"})

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		req.Header.Set("x-user-id", "user-7")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"caller":"user-7"}` {
			t.Fatalf("unexpected body: %s", body)
		}

		crmToken := issue(t, auth.Identity{Subject: "user-1", Role: entities.RoleComercial, Name: "Luis"})

		req = httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		req.Header.Set("Authorization", "Bearer "+crmToken)
		req.Header.Set("x-user-id", "user-7")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"caller":"user-1"}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})
}

func TestRequirePermission(t *testing.T) {
	r := securedRouter()

	t.Run("role without permission", func(t *testing.T) {
		token := issue(t, auth.Identity{Subject: "user-1", Role: entities.RolePerito, Name: "Ana"})

		req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("role with permission", func(t *testing.T) {
		token := issue(t, auth.Identity{Subject: "user-1", Role: entities.RoleComercial, Name: "Luis"})

		req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("admin bypasses the table", func(t *testing.T) {
		token := issue(t, auth.Identity{Subject: auth.AdminSubject, Role: entities.RoleAdmin, Name: "Administrador"})

		req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
