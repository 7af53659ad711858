package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	auth "github.com/phillip/volunteerease-go/auth"
	middleware "github.com/phillip/volunteerease-go/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type sessionSet map[string]bool

func (s sessionSet) Active(ctx context.Context, sessionID string) (bool, error) {
	return s[sessionID], nil
}

func router(secret string, sessions sessionSet) *gin.Engine {
	r := gin.New()
	r.GET("/whoami", middleware.AuthMiddleware(secret, sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":      c.GetString("user_id"),
			"account_kind": c.GetString("account_kind"),
		})
	})
	return r
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token, err := auth.GenerateToken("secret", auth.Claims{
		UserID:      "cred-1",
		SessionID:   "sess-1",
		AccountKind: "organization",
		Username:    "Green Earth",
	})
	if err != nil {
		t.Fatal(err)
	}

	r := router("secret", sessionSet{"sess-1": true})
	rec := get(r, "Bearer "+token)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body = %s", rec.Code, rec.Body.String())
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := router("secret", sessionSet{})
	if rec := get(r, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddleware_BadFormat(t *testing.T) {
	r := router("secret", sessionSet{})
	if rec := get(r, "Token abc"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddleware_SignedOutSession(t *testing.T) {
	token, err := auth.GenerateToken("secret", auth.Claims{UserID: "cred-1", SessionID: "sess-1"})
	if err != nil {
		t.Fatal(err)
	}

	r := router("secret", sessionSet{}) // sess-1 not live
	if rec := get(r, "Bearer "+token); rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("other-secret", auth.Claims{UserID: "cred-1", SessionID: "sess-1"})
	if err != nil {
		t.Fatal(err)
	}

	r := router("secret", sessionSet{"sess-1": true})
	if rec := get(r, "Bearer "+token); rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
