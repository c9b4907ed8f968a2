package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/velesk/theatre-booking/internal/auth"
)

func newAuthRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(secret), func(ctx *gin.Context) {
		claims, _ := currentUser(ctx)
		ctx.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	r.GET("/admin", Auth(secret), StaffOnly(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	return r
}

func getWithToken(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter("secret")

	token, err := auth.NewAccessToken("secret", 7, false)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	if w := getWithToken(r, "/me", token); w.Code != http.StatusOK {
		t.Errorf("valid token: status = %d, want 200", w.Code)
	}
	if w := getWithToken(r, "/me", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("missing token: status = %d, want 401", w.Code)
	}
	if w := getWithToken(r, "/me", "garbage"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}

	forged, err := auth.NewAccessToken("other-secret", 7, true)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if w := getWithToken(r, "/me", forged); w.Code != http.StatusUnauthorized {
		t.Errorf("forged token: status = %d, want 401", w.Code)
	}
}

func TestStaffOnlyMiddleware(t *testing.T) {
	r := newAuthRouter("secret")

	staff, err := auth.NewAccessToken("secret", 1, true)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	regular, err := auth.NewAccessToken("secret", 2, false)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	if w := getWithToken(r, "/admin", staff); w.Code != http.StatusOK {
		t.Errorf("staff token: status = %d, want 200", w.Code)
	}
	if w := getWithToken(r, "/admin", regular); w.Code != http.StatusForbidden {
		t.Errorf("regular token: status = %d, want 403", w.Code)
	}
}
