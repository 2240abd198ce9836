package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/internal/auth"
	"backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newTestRouter(tokens *auth.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Authenticate(tokens), func(c *gin.Context) {
		claims, ok := Identity(c)
		if !ok {
			c.String(http.StatusInternalServerError, "identity not bound")
			return
		}
		c.String(http.StatusOK, claims.Username)
	})
	r.GET("/admin", Authenticate(tokens), RequireAdmin(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	// RequireAdmin without a preceding Authenticate: must fail safe.
	r.GET("/miswired", RequireAdmin(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func issueFor(t *testing.T, tokens *auth.TokenService, role string) string {
	t.Helper()
	token, err := tokens.Issue(&model.User{
		ID:       uuid.New(),
		Username: "tester",
		Email:    "tester@example.com",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return token
}

func get(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateMissingHeader(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	r := newTestRouter(tokens)

	if w := get(r, "/protected", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", w.Code)
	}
}

func TestAuthenticateBadScheme(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	r := newTestRouter(tokens)

	for _, header := range []string{"Basic abc", "Bearer", "token-without-scheme"} {
		if w := get(r, "/protected", header); w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: got %d, want 401", header, w.Code)
		}
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	r := newTestRouter(tokens)

	if w := get(r, "/protected", "Bearer not-a-token"); w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", w.Code)
	}

	foreign := auth.NewTokenService("other-secret", time.Hour)
	if w := get(r, "/protected", "Bearer "+issueFor(t, foreign, model.RoleUser)); w.Code != http.StatusUnauthorized {
		t.Fatalf("foreign signature: got %d, want 401", w.Code)
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	live := auth.NewTokenService("test-secret", time.Hour)
	expired := auth.NewTokenService("test-secret", -time.Minute)
	r := newTestRouter(live)

	if w := get(r, "/protected", "Bearer "+issueFor(t, expired, model.RoleUser)); w.Code != http.StatusUnauthorized {
		t.Fatalf("expired token: got %d, want 401", w.Code)
	}
}

func TestAuthenticateBindsIdentity(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	r := newTestRouter(tokens)

	w := get(r, "/protected", "Bearer "+issueFor(t, tokens, model.RoleUser))
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (%s)", w.Code, w.Body.String())
	}
	if w.Body.String() != "tester" {
		t.Fatalf("identity: got %q, want %q", w.Body.String(), "tester")
	}
}

func TestRequireAdminForbidsUserRole(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	r := newTestRouter(tokens)

	if w := get(r, "/admin", "Bearer "+issueFor(t, tokens, model.RoleUser)); w.Code != http.StatusForbidden {
		t.Fatalf("user role: got %d, want 403", w.Code)
	}
	if w := get(r, "/admin", "Bearer "+issueFor(t, tokens, model.RoleAdmin)); w.Code != http.StatusOK {
		t.Fatalf("admin role: got %d, want 200", w.Code)
	}
}

func TestRequireAdminFailsSafeWithoutIdentity(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	r := newTestRouter(tokens)

	if w := get(r, "/miswired", ""); w.Code != http.StatusForbidden {
		t.Fatalf("missing identity: got %d, want 403", w.Code)
	}
}
