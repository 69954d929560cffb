package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/placementprep/placement-api/pkg/helpers"
)

func authTestRouter(rdb *redis.Client, jwt *helpers.JWTManager, handlerHit *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(rdb, jwt), func(c *gin.Context) {
		*handlerHit = true
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuthRejectsMissingCookie(t *testing.T) {
	jwt := helpers.NewJWTManager("a", "r", time.Minute, time.Hour)
	var hit bool
	r := authTestRouter(nil, jwt, &hit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if hit {
		t.Fatal("handler must not run without a token")
	}
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	jwt := helpers.NewJWTManager("a", "r", time.Minute, time.Hour)
	var hit bool
	r := authTestRouter(nil, jwt, &hit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "not-a-jwt"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if hit {
		t.Fatal("handler must not run with an unparseable token")
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	jwt := helpers.NewJWTManager("a", "r", -time.Minute, time.Hour)
	token, _, err := jwt.GenerateAccessToken("507f1f77bcf86cd799439011", "sid-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var hit bool
	r := authTestRouter(nil, jwt, &hit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if hit {
		t.Fatal("handler must not run with an expired token")
	}
}

func TestAuthRejectsTokenWithoutSession(t *testing.T) {
	jwt := helpers.NewJWTManager("a", "r", time.Minute, time.Hour)
	token, _, err := jwt.GenerateAccessToken("507f1f77bcf86cd799439011", "sid-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Unreachable redis: the session lookup fails, so a valid token alone is
	// not enough.
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
	})
	defer func() { _ = rdb.Close() }()

	var hit bool
	r := authTestRouter(rdb, jwt, &hit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if hit {
		t.Fatal("handler must not run without an active session")
	}
}
